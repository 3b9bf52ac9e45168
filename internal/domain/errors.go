package domain

import "fmt"

// ValidationError reports a malformed field. It is the only error class the
// caller ever sees; everything downstream of validation is swallowed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
