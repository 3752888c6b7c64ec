// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error type for the OpenJam SDK.

It bridges low-level failures (bad arguments, rejected documents, backend
status codes) and the typed errors callers inspect.

Architecture:

  - AppError: machine-readable Code plus a caller-safe Message.
  - Details: per-field failures produced by the validation layer.
  - Mapping: explicit mapping between AppError and HTTP status codes, used in
    both directions (backend responses in, mock backend responses out).

Every error that leaves a service or interactor is an [AppError] so that
callers can branch on [AppError.Code] with [As].
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes shared by the SDK and the mock backend.
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeUpstream        = "UPSTREAM_ERROR"
	CodeInternal        = "INTERNAL_ERROR"
)

// AppError is the canonical error type for the OpenJam SDK.
//
// It carries an HTTP status code, a machine-readable code, a caller-safe
// message, and an optional slice of field-level validation errors.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND").
	Code string `json:"code"`
	// Message is a human-readable description.
	Message string `json:"error"`
	// HTTPStatus is the HTTP status associated with the error.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, kept for logging and errors.Is.
	Cause error `json:"-"`
	// Details holds per-field failures for VALIDATION_ERROR.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Rule names the violated rule (e.g. "string.max", "any.required").
	Rule string `json:"rule,omitempty"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the caller-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Caller Errors

// InvalidArgument creates an [AppError] for a broken call contract, such as
// a missing collection name or a negative page size.
func InvalidArgument(msg string) *AppError {
	return &AppError{
		Code:       CodeInvalidArgument,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Track") // Returns "Track not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Conflict creates a 409 [AppError] for duplicate identifiers.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// # Backend Errors

// Upstream creates an [AppError] for a failed exchange with the backend.
// status is the backend's HTTP status, or 0 when no response was received.
func Upstream(status int, msg string, cause error) *AppError {
	httpStatus := status
	if httpStatus == 0 {
		httpStatus = http.StatusBadGateway
	}
	return &AppError{
		Code:       CodeUpstream,
		Message:    msg,
		HTTPStatus: httpStatus,
		Cause:      cause,
	}
}

// FromStatus maps a non-2xx backend response to an [AppError].
//
// A 404 keeps the NOT_FOUND code so callers can tell a missing document
// from a broken backend. Everything else is an UPSTREAM_ERROR carrying the
// original status.
func FromStatus(status int, message string) *AppError {
	if message == "" {
		message = http.StatusText(status)
	}

	if status == http.StatusNotFound {
		return &AppError{
			Code:       CodeNotFound,
			Message:    message,
			HTTPStatus: status,
		}
	}

	return Upstream(status, fmt.Sprintf("backend responded %d: %s", status, message), nil)
}

// Internal creates a 500 [AppError] wrapping an unexpected error.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err carries an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
