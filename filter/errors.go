package filter

import (
	"fmt"
)

// CompilationError indicates a filter expression could not be compiled
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compilation error in '%s': %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// PresetNotFoundError is returned when a named preset is not registered
type PresetNotFoundError struct {
	Name string
}

func (e *PresetNotFoundError) Error() string {
	return fmt.Sprintf("preset '%s' not found in config", e.Name)
}
