// Package apperror defines the error kinds services return and controllers map to
// HTTP status codes.
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrTooManyRequests = errors.New("too many requests")
)

type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(entity string) error {
	return newError(ErrNotFound, "%s not found", entity)
}

func Conflict(format string, args ...interface{}) error {
	return newError(ErrConflict, format, args...)
}

func BadRequest(format string, args ...interface{}) error {
	return newError(ErrBadRequest, format, args...)
}

func Unauthorized(message string) error {
	return newError(ErrUnauthorized, "%s", message)
}

func Forbidden(message string) error {
	return newError(ErrForbidden, "%s", message)
}

func TooManyRequests(message string) error {
	return newError(ErrTooManyRequests, "%s", message)
}

// ValidationError carries per-field messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func Validation(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// Field is shorthand for a single-field validation error.
func Field(field, message string) error {
	return Validation(map[string]string{field: message})
}

// Fields returns the field map of a validation error, or nil.
func Fields(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
