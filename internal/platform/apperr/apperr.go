// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

/*
Package apperr defines the centralized error handling framework for Meibo.

It provides a rich error type that bridges the gap between low-level
filesystem/parsing errors and high-level operation outcomes.

Architecture:

  - AppError: A struct containing a machine-readable Code and user-friendly messages.
  - Details: Per-field validation failures attached to VALIDATION_ERROR values.
  - Cause chain: The underlying error is preserved for [errors.Is]/[errors.As].

Every error that leaves the repository or store layer should be wrapped as an
[AppError] to ensure consistent reporting across the CLI and bulk-import paths.
*/
package apperr

import (
	"errors"
	"fmt"
)

// AppError is the canonical error type for the Meibo core.
//
// It carries a machine-readable code, a human-readable message, and an
// optional slice of field-level validation errors.
//
// # Logging
//
// The Cause field is for structured logging only and is never folded into the
// message shown to the operator, to avoid leaking raw OS error text.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "IO_ERROR").
	Code string `json:"code"`
	// Message is a human-readable description safe to show the operator.
	Message string `json:"error"`
	// Cause is the underlying error, used for structured logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR values.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the column/field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the operator-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Recoverable Errors

// NotFound creates a NOT_FOUND [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Record SS00645") // Returns "Record SS00645 not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: resource + " not found",
	}
}

// Conflict creates a CONFLICT [AppError] for duplicate-identifier violations.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: msg,
	}
}

// ValidationError creates a VALIDATION_ERROR [AppError] with optional
// per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: msg,
		Details: details,
	}
}

// Capacity creates a CAPACITY_EXCEEDED [AppError] reporting an over-ceiling
// record count. The collection itself is never truncated; callers decide.
func Capacity(count, limit int) *AppError {
	return &AppError{
		Code:    "CAPACITY_EXCEEDED",
		Message: fmt.Sprintf("Record count %d exceeds the configured maximum of %d", count, limit),
	}
}

// # Fatal Errors

// IO creates an IO_ERROR [AppError] wrapping a filesystem failure. The cause
// is stored for logging but never shown verbatim to the operator.
func IO(action string, cause error) *AppError {
	return &AppError{
		Code:    "IO_ERROR",
		Message: "File access failed while trying to " + action,
		Cause:   cause,
	}
}

// Internal creates an INTERNAL_ERROR [AppError] wrapping an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "An unexpected error occurred",
		Cause:   cause,
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

// IsFatal reports whether err represents an unrecoverable store failure
// (I/O or internal), as opposed to validation/duplicate conditions that are
// always returned as data.
func IsFatal(err error) bool {
	ae := As(err)
	if ae == nil {
		return err != nil
	}
	return ae.Code == "IO_ERROR" || ae.Code == "INTERNAL_ERROR"
}
