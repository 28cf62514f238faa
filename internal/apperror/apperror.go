// Package apperror defines the failure values shared by the repositories.
//
// Expected failures (bad input, not found, duplicates, storage limits) are
// returned as *Error values wrapping one of the sentinels below so callers
// can branch with errors.Is without parsing messages.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrDuplicate     = errors.New("duplicate")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	ErrStorage       = errors.New("storage failure")
	ErrUnauthorized  = errors.New("not authenticated")
)

// Field values route a failure to the form field that caused it.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldGeneral  = "general"
)

type Error struct {
	Err     error  // sentinel
	Message string // user-facing message
	Field   string // optional field discriminator for form errors
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(resource string) *Error {
	return &Error{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Field:   FieldGeneral,
	}
}

func Validation(field, message string) *Error {
	return &Error{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func Duplicate(field, message string) *Error {
	return &Error{
		Err:     ErrDuplicate,
		Message: message,
		Field:   field,
	}
}

func QuotaExceeded(message string) *Error {
	return &Error{
		Err:     ErrQuotaExceeded,
		Message: message,
		Field:   FieldGeneral,
	}
}

func Storage(message string) *Error {
	return &Error{
		Err:     ErrStorage,
		Message: message,
		Field:   FieldGeneral,
	}
}

func Unauthorized(message string) *Error {
	return &Error{
		Err:     ErrUnauthorized,
		Message: message,
		Field:   FieldGeneral,
	}
}

// FieldOf reports the field discriminator of err, or "general" when err does
// not carry one.
func FieldOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Field != "" {
		return ae.Field
	}
	return FieldGeneral
}
