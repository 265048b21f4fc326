package services

import "fmt"

// ErrNotFound is returned when a record with the requested id does not exist.
var ErrNotFound = fmt.Errorf("record not found")

// ValidationError wraps a user-facing validation message. Handlers turn it
// into a 400 instead of a 500.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }
