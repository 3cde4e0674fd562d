package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// NotFoundError reports a missing resource. Rendered as 404.
type NotFoundError struct {
	Message string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Error() string { return e.Message }

// HTTPError is an explicit rejection carrying its own status and reason.
type HTTPError struct {
	Status int
	Reason string
}

func NewHTTPError(status int, reason string) *HTTPError {
	return &HTTPError{Status: status, Reason: reason}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Reason)
}

// NewBadRequestError is shorthand for a 400 HTTPError.
func NewBadRequestError(reason string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, reason)
}

// InternalError is a framework-level failure; Status defaults to 500 when zero.
type InternalError struct {
	Status int
	Err    error
}

func NewInternalError(status int, err error) *InternalError {
	return &InternalError{Status: status, Err: err}
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return http.StatusText(e.StatusCode())
	}
	return e.Err.Error()
}

func (e *InternalError) Unwrap() error { return e.Err }

// StatusCode returns Status, or 500 when unset.
func (e *InternalError) StatusCode() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// FieldError is one failed constraint on one request field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects field errors in the order they were found.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldNames joins the offending field names with ", ".
func (e *ValidationError) FieldNames() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return strings.Join(names, ", ")
}

// Messages joins the field messages with ", ".
func (e *ValidationError) Messages() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, ", ")
}

// Append adds the fields of other, prefixing each name.
func (e *ValidationError) Append(prefix string, other *ValidationError) {
	for _, f := range other.Fields {
		e.Fields = append(e.Fields, FieldError{Field: prefix + f.Field, Message: f.Message})
	}
}
