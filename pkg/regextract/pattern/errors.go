package pattern

import "fmt"

// ValidationError reports a file-level problem such as an unsupported
// version or an empty pattern list.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// PatternError reports a problem with a single pattern entry.
type PatternError struct {
	Index   int    // 0-based index of the pattern in the file
	Name    string // may be empty if the name field is missing
	Field   string
	Message string
	Cause   error // e.g. the regexp compile error
}

func (e *PatternError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("pattern %q: %s: %s", e.Name, e.Field, e.Message)
	}
	return fmt.Sprintf("pattern[%d]: %s: %s", e.Index, e.Field, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *PatternError) Unwrap() error {
	return e.Cause
}
