// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

/*
Package validation implements the per-field validation and normalization
pipeline applied to every record before it enters or leaves the store.

# Architecture

  - Validator: one implementation per field, exposing Preprocess (normalize)
    and Validate (accept/reject). Preprocess always runs before Validate.
  - Service: orchestrates a field-name→validator map against a
    field-name→raw-value map, producing a per-field [Outcome].
  - The same validator set serves both interactive form input and bulk file
    import, so a record is held to identical rules at both entry points.

Validators are independent value types. Shared normalization logic lives in
[github.com/meibo-app/meibo/pkg/jptext] rather than in a type hierarchy.
*/
package validation

// Validator checks one field of a record.
//
// # Contract
//
// Preprocess is a pure, total function: it never fails and returns its best
// normalization of the raw input. Validate judges only preprocessed values.
// An empty input fails validation for required fields and passes for
// optional fields, where it means "no value".
type Validator interface {
	// FieldName returns the column/field name this validator owns.
	FieldName() string

	// Preprocess normalizes raw input (width folding, kana conversion,
	// delimiter cleanup). Preprocessing an already-normalized value returns
	// it unchanged.
	Preprocess(raw string) string

	// Validate reports whether the preprocessed value is acceptable.
	Validate(normalized string) bool

	// ErrorMessage returns the human-readable message recorded when
	// Validate rejects a value.
	ErrorMessage() string
}
