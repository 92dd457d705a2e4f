// Package errors provides structured error types for oaiview.
//
// Every package in the module reports failures through [Error] so that the
// CLI and the preview server can map them to user-facing messages without
// string matching. Underlying causes are always preserved and reachable with
// errors.Is and errors.As.
//
// # Error Codes
//
//   - INVALID_*: malformed input (XML, RDF, flags, configuration)
//   - *_NOT_FOUND: lookups that found nothing
//   - NETWORK_ERROR, OAI_ERROR, TOO_MANY_REQUESTS: harvesting failures
//   - RENDER_FAILED: the graph rasterizer rejected a description
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "unknown view: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidXML, parseErr, "parse record %s", id)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidXML      Code = "INVALID_XML"
	ErrCodeInvalidRDF      Code = "INVALID_RDF"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidEndpoint Code = "INVALID_ENDPOINT"

	// Lookup errors
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeMetadataNotFound Code = "METADATA_NOT_FOUND"

	// Harvesting errors
	ErrCodeNetwork         Code = "NETWORK_ERROR"
	ErrCodeOAI             Code = "OAI_ERROR"
	ErrCodeTooManyRequests Code = "TOO_MANY_REQUESTS"

	// Rendering errors
	ErrCodeRender Code = "RENDER_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// HTTPStatus maps a code to the status the preview server answers with.
// Failures caused by the upstream repository become 502.
func (c Code) HTTPStatus() int {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidEndpoint:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeMetadataNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidRDF:
		return http.StatusUnprocessableEntity
	case ErrCodeNetwork, ErrCodeOAI, ErrCodeInvalidXML, ErrCodeTooManyRequests:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Error carries a Code, a message for humans and the failure it wraps.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// GetCode returns the code of the outermost Error in err's chain, or "" if
// there is none.
func GetCode(err error) Code {
	if e := outermost(err); e != nil {
		return e.Code
	}
	return ""
}

// Is reports whether the outermost Error in err's chain has code. Codes of
// wrapped inner Errors are not consulted.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// UserMessage returns the message of the outermost Error without its code,
// or err.Error() for foreign errors.
func UserMessage(err error) string {
	if e := outermost(err); e != nil {
		return e.Message
	}
	return err.Error()
}

func outermost(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
