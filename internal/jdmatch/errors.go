package jdmatch

import "fmt"

// ValidationError signals input text too short to score meaningfully. The
// message names the offending field and the minimum so callers can surface it
// directly.
type ValidationError struct {
	Field     string
	MinLength int
	Actual    int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s must be at least %d characters (got %d)",
		e.Field, e.MinLength, e.Actual)
}
