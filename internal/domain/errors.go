// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Identity-related errors
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")

	// Project-related errors
	ErrProjectNotFound = errors.New("project not found")

	// Role/permission-related errors
	ErrRoleNotFound      = errors.New("role not found")
	ErrRoleInUse         = errors.New("role is referenced by project members")
	ErrUnknownPermission = errors.New("unknown permission code")

	// Membership-related errors
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrMemberNotFound      = errors.New("project member not found")
	ErrMemberAlreadyExists = errors.New("employee is already a member of this project")

	// Ticket-related errors
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrTicketColumnNotFound = errors.New("ticket column not found")
)

// FieldError describes a single business-rule violation tied to a field
// or batch item.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every violation found in a request so the
// client sees all problems in one round-trip instead of one at a time.
type ValidationError struct {
	Violations []FieldError
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Violations: []FieldError{{Field: field, Message: message}}}
}

// Add appends a violation and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Violations = append(e.Violations, FieldError{Field: field, Message: message})
	return e
}

// HasViolations reports whether any violation was recorded.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Details(), "; ")
}

// Details returns the violation messages for API responses.
func (e *ValidationError) Details() []string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return msgs
}
