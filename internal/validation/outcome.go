// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package validation

import (
	"sort"
	"strings"

	"github.com/meibo-app/meibo/internal/platform/apperr"
)

// Outcome is the result of running the validation pipeline over one set of
// raw inputs. It is created fresh per validation call and treated as
// immutable once returned.
type Outcome struct {
	// Errors maps field name to error message. Empty means every field passed.
	Errors map[string]string

	// Values maps field name to its accepted, normalized value. Only fields
	// that passed validation appear here.
	Values map[string]string
}

// NewOutcome creates an empty outcome ready to collect results.
func NewOutcome() *Outcome {
	return &Outcome{
		Errors: make(map[string]string),
		Values: make(map[string]string),
	}
}

// Valid reports whether no field failed validation.
func (o *Outcome) Valid() bool {
	return len(o.Errors) == 0
}

// Value returns the normalized value recorded for field, or the empty string.
func (o *Outcome) Value(field string) string {
	return o.Values[field]
}

// Summary returns all field errors joined into a single human-readable line,
// sorted by field name so the text is deterministic.
func (o *Outcome) Summary() string {
	if len(o.Errors) == 0 {
		return ""
	}

	fields := make([]string, 0, len(o.Errors))
	for field := range o.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+o.Errors[field])
	}
	return strings.Join(parts, "; ")
}

// Err converts a failed outcome into a [apperr.AppError] with per-field
// details. It returns nil when the outcome is valid.
func (o *Outcome) Err() error {
	if o.Valid() {
		return nil
	}

	fields := make([]string, 0, len(o.Errors))
	for field := range o.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]apperr.FieldError, 0, len(fields))
	for _, field := range fields {
		details = append(details, apperr.FieldError{Field: field, Message: o.Errors[field]})
	}
	return apperr.ValidationError("One or more fields failed validation", details...)
}
