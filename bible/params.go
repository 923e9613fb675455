package bible

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// decimalPattern is a plain decimal, optionally with an exponent. Go-only
// literal forms such as 0x10 or 1_000 are rejected.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Params is the options bag accepted by every operation. Keys are the
// logical option names below; values may be strings, booleans, numbers or
// string slices. Unknown keys are ignored.
type Params map[string]any

// Option names understood by the endpoint table
const (
	ParamLanguage                   = "language"
	ParamAbbreviation               = "abbreviation"
	ParamName                       = "name"
	ParamIDs                        = "ids"
	ParamIncludeChapters            = "includeChapters"
	ParamIncludeChaptersAndSections = "includeChaptersAndSections"
	ParamContentType                = "contentType"
	ParamIncludeNotes               = "includeNotes"
	ParamIncludeTitles              = "includeTitles"
	ParamIncludeChapterNumbers      = "includeChapterNumbers"
	ParamIncludeVerseNumbers        = "includeVerseNumbers"
	ParamIncludeVerseSpans          = "includeVerseSpans"
	ParamParallels                  = "parallels"
	ParamQuery                      = "query"
	ParamLimit                      = "limit"
	ParamOffset                     = "offset"
)

// ContentType selects how the API renders scripture text
type ContentType string

const (
	ContentTypeJSON ContentType = "json"
	ContentTypeHTML ContentType = "html"
	ContentTypeText ContentType = "text"
)

// ResolveContentType matches v case-insensitively against json, html and
// text. Anything else, including nil, resolves to json.
func ResolveContentType(v any) ContentType {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case ContentType:
		s = string(t)
	default:
		return ContentTypeJSON
	}

	switch ct := ContentType(strings.ToLower(strings.TrimSpace(s))); ct {
	case ContentTypeJSON, ContentTypeHTML, ContentTypeText:
		return ct
	}
	return ContentTypeJSON
}

// lookup returns the first present value among the given keys
func (p Params) lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := p[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// boolValue reports whether v enables a boolean field. Strings are parsed
// with strconv.ParseBool; an unparsable string counts as unset.
func boolValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	}
	if f, ok := toFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return false
}

// stringValue renders v for a free-text field. ok is false for values
// that should be left out of the query (nil, empty, false, zero).
func stringValue(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		t = strings.TrimSpace(t)
		return t, t != ""
	case []string:
		parts := make([]string, 0, len(t))
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ","), len(parts) > 0
	case bool:
		if t {
			return "true", true
		}
		return "", false
	case fmt.Stringer:
		s := strings.TrimSpace(t.String())
		return s, s != ""
	}
	if f, ok := toFloat(v); ok {
		if f == 0 || math.IsNaN(f) {
			return "", false
		}
		return formatNumber(v), true
	}
	return "", false
}

// numericValue returns v formatted for a numeric query field when v is a
// finite, positive decimal given as a string or a number. Zero counts as
// unset so the field's default applies.
func numericValue(v any) (string, bool) {
	if !isNumeric(v) {
		return "", false
	}

	var (
		s string
		f float64
	)
	if str, ok := v.(string); ok {
		s = strings.TrimSpace(str)
		f, _ = strconv.ParseFloat(s, 64)
	} else {
		f, _ = toFloat(v)
		s = formatNumber(v)
	}

	if f <= 0 {
		return "", false
	}
	return s, true
}

// isNumeric reports whether v parses as a finite decimal number
func isNumeric(v any) bool {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if !decimalPattern.MatchString(s) {
			return false
		}
		f, err := strconv.ParseFloat(s, 64)
		return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	f, ok := toFloat(v)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func formatNumber(v any) string {
	switch n := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
