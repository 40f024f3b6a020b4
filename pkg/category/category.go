package category

import "fmt"

// Category is a spending category. User categories carry a server-assigned
// id; default categories are synthesized client-side with ID equal to their
// name and are never persisted by the backend.
type Category struct {
	ID   string
	Name string
}

// ValidationError is a client-side guard rejection raised before any backend
// call is attempted (empty name, duplicate name, touching a default category).
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
