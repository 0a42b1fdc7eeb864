// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package validation

import (
	"strings"

	"github.com/meibo-app/meibo/pkg/jptext"
)

// FreeTextValidator validates an optional free-text field against a length
// bound measured in Unicode code points, so characters outside the basic
// multilingual plane count as one.
//
// Emoji and format-control characters are either stripped during
// preprocessing (lenient mode) or cause rejection (strict mode), depending
// on configuration.
type FreeTextValidator struct {
	field  string
	maxLen int
	strict bool
}

// NewFreeTextValidator creates a free-text validator for the given field.
// In strict mode emoji and format controls are rejected; otherwise they are
// silently removed.
func NewFreeTextValidator(field string, maxLen int, strict bool) *FreeTextValidator {
	return &FreeTextValidator{field: field, maxLen: maxLen, strict: strict}
}

func (v *FreeTextValidator) FieldName() string { return v.field }

func (v *FreeTextValidator) Preprocess(raw string) string {
	s := strings.TrimSpace(raw)
	if !v.strict {
		s = jptext.StripSymbols(s)
	}
	return s
}

func (v *FreeTextValidator) Validate(normalized string) bool {
	if normalized == "" {
		return true
	}
	if v.strict && jptext.ContainsSymbols(normalized) {
		return false
	}
	return jptext.CountCodePoints(normalized) <= v.maxLen
}

func (v *FreeTextValidator) ErrorMessage() string {
	if v.strict {
		return "Must not contain emoji or control characters, and must fit the length limit"
	}
	return "Must fit the length limit"
}
