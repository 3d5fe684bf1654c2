// Package domainerrors provides coded errors for the billing domain.
//
// Services and validators return these so transport layers can map a code to
// an HTTP status without inspecting message text. Stores return sentinel
// errors (pkg/platform/sentinel) instead; services translate at the boundary.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies the class of a domain error. The string value is the wire
// form written into JSON error responses.
type Code string

const (
	CodeBadRequest           Code = "bad_request"
	CodeNotFound             Code = "not_found"
	CodeInternal             Code = "internal_error"
	CodeInvariantViolation   Code = "invariant_violation"
	CodeMissingField         Code = "missing_field"
	CodeInvalidQuantityOrRate Code = "invalid_quantity_or_rate"
	CodeInvalidContactFormat Code = "invalid_contact_format"
	CodeRenderFailure        Code = "render_failure"
)

// Error is a coded domain error. Field is set by the validation gate so the
// caller can refocus the offending input; it is empty for non-field errors.
type Error struct {
	Code    Code
	Message string
	Field   string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a domain error with the given code and user-facing message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewField creates a validation error tied to a specific input field.
func NewField(code Code, field, message string) *Error {
	return &Error{Code: code, Message: message, Field: field}
}

// Wrap attaches a code and message to an underlying error while keeping the
// cause reachable through errors.Is/As.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// CodeOf extracts the code from a domain error, or CodeInternal when err is
// not a domain error. Transport layers use this to pick a status without
// leaking internals.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// FieldOf extracts the offending field name from a domain error, if any.
func FieldOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Field
	}
	return ""
}
