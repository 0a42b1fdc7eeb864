// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package validation

import (
	"strings"
	"time"

	"github.com/meibo-app/meibo/internal/platform/constants"
	"github.com/meibo-app/meibo/pkg/jptext"
)

// DateValidator validates a date field against the canonical YYYY-MM-DD
// layout and an inclusive [min, today] range.
//
// now is injected so tests can pin the upper bound; production code passes
// [time.Now].
type DateValidator struct {
	field string
	min   time.Time
	now   func() time.Time
}

// NewDateValidator creates a date validator for the given field with the
// given inclusive lower bound.
func NewDateValidator(field string, min time.Time, now func() time.Time) *DateValidator {
	if now == nil {
		now = time.Now
	}
	return &DateValidator{field: field, min: min, now: now}
}

func (v *DateValidator) FieldName() string { return v.field }

// Preprocess folds full-width digits and normalizes the common delimiter
// variants "2001/04/01" and "2001.04.01" to "2001-04-01", zero-padding
// single-digit month and day.
func (v *DateValidator) Preprocess(raw string) string {
	s := jptext.FoldWidth(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, ".", "-")

	// Re-format parses like "2001-4-1" into the canonical zero-padded form.
	// Unparsable input is returned as-is for Validate to reject.
	if t, err := time.Parse("2006-1-2", s); err == nil {
		return t.Format(constants.DateLayout)
	}
	return s
}

func (v *DateValidator) Validate(normalized string) bool {
	t, err := time.Parse(constants.DateLayout, normalized)
	if err != nil {
		return false
	}

	if t.Before(v.min) {
		return false
	}

	// Upper bound is the end of today; a date later than today is rejected.
	// Compare in UTC because time.Parse yields UTC values.
	y, m, d := v.now().Date()
	endOfToday := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return t.Before(endOfToday)
}

func (v *DateValidator) ErrorMessage() string {
	return "Must be a date in YYYY-MM-DD form between " +
		v.min.Format(constants.DateLayout) + " and today"
}
