package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so that
// errors.Is(NotFound("Claim"), ErrNotFound) holds.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NotFound returns a NOT_FOUND error naming the missing entity
func NotFound(entity string) *DomainError {
	return NewDomainError("NOT_FOUND", fmt.Sprintf("%s not found", entity))
}

// AlreadyExists returns an ALREADY_EXISTS error for a duplicated unique field
func AlreadyExists(entity, field string) *DomainError {
	return NewDomainError("ALREADY_EXISTS", fmt.Sprintf("%s with this %s already exists", entity, field))
}

// InvalidInput returns an INVALID_INPUT error with a custom message
func InvalidInput(message string) *DomainError {
	return NewDomainError("INVALID_INPUT", message)
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized  = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden     = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState  = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)
