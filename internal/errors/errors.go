// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidArgument indicates an input validation error
	// (negative or zero where a positive value is required)
	TypeInvalidArgument Type = "INVALID_ARGUMENT"

	// TypeNotFound indicates an unknown catalog entry
	// (scenario, tier, industry with no documented default)
	TypeNotFound Type = "NOT_FOUND"

	// TypeUndefined indicates a computation with no defined result
	// (e.g. payback period when monthly savings are not positive)
	TypeUndefined Type = "UNDEFINED"

	// TypeConfig indicates a configuration or catalog loading error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// TypeOf returns the domain type of an error, or TypeInternal
// for errors that did not originate in this module
func TypeOf(err error) Type {
	if e, ok := err.(*Error); ok {
		return e.Type
	}
	return TypeInternal
}

// InvalidArgument creates an input validation error
func InvalidArgument(message string) *Error {
	return New(TypeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted input validation error
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(TypeInvalidArgument, format, args...)
}

// NotFound creates a not found error
func NotFound(entryType, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", entryType, identifier)
}

// Undefined creates an undefined-result error
func Undefined(message string) *Error {
	return New(TypeUndefined, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
