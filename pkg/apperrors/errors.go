package apperrors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of application errors
type ErrorType string

const (
	ErrorTypeNotFound           ErrorType = "not_found"
	ErrorTypeValidation         ErrorType = "validation"
	ErrorTypeRegistrationLocked ErrorType = "registration_locked"
	ErrorTypeTooEarly           ErrorType = "too_early"
	ErrorTypeTooLate            ErrorType = "too_late"
	ErrorTypeUnknownCode        ErrorType = "unknown_code"
	ErrorTypeNotRegistered      ErrorType = "not_registered"
	ErrorTypeNotPermitted       ErrorType = "not_permitted"
	ErrorTypeInfrastructure     ErrorType = "infrastructure"
)

// AppError represents a structured application error. Errors are terminal
// for the operation that produced them and surfaced verbatim to the caller;
// none are retried automatically. Temporal errors resolve themselves once
// the activity's time window changes.
type AppError struct {
	Type     ErrorType              `json:"type"`
	Message  string                 `json:"message"`
	Temporal bool                   `json:"temporal"`
	Internal error                  `json:"-"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Internal.Error())
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Internal
}

// NewNotFound reports an unknown activity or member. Permanent.
func NewNotFound(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewValidation reports a referential-integrity failure such as a branch
// outside the enumerated set or a malformed wall-clock time.
func NewValidation(message string, details map[string]interface{}) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Details: details,
	}
}

// NewRegistrationLocked reports a registration change inside the lock
// window. Temporal: the caller must wait, not retry.
func NewRegistrationLocked(message string) *AppError {
	return &AppError{
		Type:     ErrorTypeRegistrationLocked,
		Message:  message,
		Temporal: true,
	}
}

// NewTooEarly reports an attendance confirmation before the activity start.
func NewTooEarly(message string) *AppError {
	return &AppError{
		Type:     ErrorTypeTooEarly,
		Message:  message,
		Temporal: true,
	}
}

// NewTooLate reports an attendance confirmation after the activity end.
func NewTooLate(message string) *AppError {
	return &AppError{
		Type:     ErrorTypeTooLate,
		Message:  message,
		Temporal: true,
	}
}

// NewUnknownCode reports a scanned or typed code that resolves to no member.
func NewUnknownCode(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnknownCode,
		Message: message,
	}
}

// NewNotRegistered reports an attendance confirmation for a member who never
// registered. Surfaced prominently: it indicates a process gap, not a bug.
func NewNotRegistered(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotRegistered,
		Message: message,
	}
}

// NewNotPermitted reports a verifier whose role does not allow confirming
// attendance on behalf of another member.
func NewNotPermitted(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotPermitted,
		Message: message,
	}
}

// NewInfrastructure reports a persistence-layer failure, kept distinct from
// logic errors so callers can tell a broken store from a broken request.
func NewInfrastructure(message string, internal error) *AppError {
	return &AppError{
		Type:     ErrorTypeInfrastructure,
		Message:  message,
		Internal: internal,
	}
}

// TypeOf returns the ErrorType of err, or an empty string when err is not
// an AppError.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, t ErrorType) bool {
	return TypeOf(err) == t
}
