// Package apperr provides the classified error taxonomy used at the
// service boundary. Every public operation either succeeds or returns an
// *Error with a known Kind; unclassified failures never cross the handlers.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for boundary handling.
type Kind string

const (
	// KindValidation marks client-caused conditions: empty query text,
	// unsupported report type, malformed date range. Never retried.
	KindValidation Kind = "validation"
	// KindExternalFetch marks data source unavailability or timeout.
	KindExternalFetch Kind = "external_fetch"
	// KindResourceGap marks a missing locale string even after the English
	// fallback: a configuration defect, not a runtime condition.
	KindResourceGap Kind = "resource_gap"
	// KindInternal marks any unexpected failure caught at the boundary.
	KindInternal Kind = "internal"
)

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s[%s]: %s: %v", e.Kind, e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s[%s]: %s", e.Kind, e.Code, e.Message)
}

// Unwrap exposes the cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// Validation creates a client-caused error.
func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

// ExternalFetch wraps a data source failure.
func ExternalFetch(code string, cause error) *Error {
	return &Error{Kind: KindExternalFetch, Code: code, Message: "external data source failed", cause: cause}
}

// ResourceGap marks a missing locale resource.
func ResourceGap(key string) *Error {
	return &Error{Kind: KindResourceGap, Code: "MISSING_RESOURCE", Message: "missing locale resource " + key}
}

// Internal wraps an unexpected failure.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Code: "INTERNAL", Message: "internal error", cause: cause}
}

// KindOf returns the Kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// CodeOf returns the Code of err, or "INTERNAL" for unclassified errors.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "INTERNAL"
}

// Validation error codes.
const (
	CodeEmptyQuery        = "EMPTY_QUERY"
	CodeUnknownReportType = "UNKNOWN_REPORT_TYPE"
	CodeInvalidDateRange  = "INVALID_DATE_RANGE"
	CodeUnknownFormat     = "UNKNOWN_FORMAT"
	CodeUnknownVariant    = "UNKNOWN_VARIANT"
)
