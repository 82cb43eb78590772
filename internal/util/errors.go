package util

import "fmt"

// Error taxonomy for the suggestion/reconciler endpoints. Each type maps
// to one HTTP status in RespondError; persistence failures echo their
// detail to the caller since this is an internal admin tool.

// ValidationError is missing or malformed request input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError is an unknown user or business.
type NotFoundError struct {
	Resource string
	ID       interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

// BusinessAssociationError means the user has no tenant membership, so
// the record cannot be attributed to a business.
type BusinessAssociationError struct {
	UserID uint
}

func (e *BusinessAssociationError) Error() string {
	return fmt.Sprintf("user %d has no business association", e.UserID)
}

// ConfigurationError means a record cannot be routed, e.g. a business
// without an owning admin.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// PersistenceError wraps an underlying write failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
