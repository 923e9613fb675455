package filter

import (
	"strings"
)

// Apply returns the records matching filter, preserving order. A nil
// filter matches everything.
func Apply(filter Filter, records []Record) []Record {
	if filter == nil {
		return records
	}

	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if filter.Evaluate(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Resolve picks the filter for a command: an explicit expression wins over
// a named preset. Both empty yields a nil filter, which matches everything.
func Resolve(m *Manager, expression, preset string) (Filter, error) {
	if strings.TrimSpace(expression) != "" {
		return m.Compile(expression)
	}
	if preset != "" {
		return m.GetFilter(preset)
	}
	return nil, nil
}
