package cleanrun

import "fmt"

// UsageError describes a problem with the user's invocation of the
// program: an unknown or malformed flag, a missing required argument,
// or surplus arguments. Usage errors are always recoverable by fixing
// the invocation and are reported with exit code 2.
type UsageError struct {
	// Message is the text shown to the user.
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// BadUsagef builds a *UsageError from a format string.
func badUsagef(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}
