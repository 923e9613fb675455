package filter

// Record is one decoded API object, such as an element of a list
// response's data array
type Record = map[string]any

// Filter defines the basic interface for record filters
type Filter interface {
	// Evaluate checks if a record matches the filter criteria
	Evaluate(record Record) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}
