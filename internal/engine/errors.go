package engine

import "fmt"

// ValidationError indicates an out-of-range or malformed preference value.
// Missing values are never an error; only present-but-invalid ones are.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
