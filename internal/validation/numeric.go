// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/meibo-app/meibo/internal/platform/constants"
	"github.com/meibo-app/meibo/pkg/jptext"
)

// YearsExperienceValidator validates the years-of-experience field: digits
// only after width folding, integer within
// [constants.MinYearsExperience, constants.MaxYearsExperience].
type YearsExperienceValidator struct{}

func (v YearsExperienceValidator) FieldName() string { return constants.ColYearsExperience }

func (v YearsExperienceValidator) Preprocess(raw string) string {
	return jptext.FoldWidth(strings.TrimSpace(raw))
}

func (v YearsExperienceValidator) Validate(normalized string) bool {
	// strconv.Atoi alone would accept "+3" and "-0"; require plain digits.
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return false
		}
	}

	n, err := strconv.Atoi(normalized)
	if err != nil {
		return false
	}
	return n >= constants.MinYearsExperience && n <= constants.MaxYearsExperience
}

func (v YearsExperienceValidator) ErrorMessage() string {
	return "Must be a whole number of years between 0 and 50"
}

// RatingValidator validates one of the four optional rating fields. An empty
// value passes and means "not rated". A present value must be a number in
// [1.0, 5.0] landing exactly on a 0.5 step, within a small tolerance for
// floating-point representation.
type RatingValidator struct {
	field string
}

// NewRatingValidator creates a rating validator for the given field.
func NewRatingValidator(field string) *RatingValidator {
	return &RatingValidator{field: field}
}

func (v *RatingValidator) FieldName() string { return v.field }

func (v *RatingValidator) Preprocess(raw string) string {
	return jptext.FoldWidth(strings.TrimSpace(raw))
}

func (v *RatingValidator) Validate(normalized string) bool {
	if normalized == "" {
		return true
	}

	f, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return false
	}
	if f < constants.MinRating || f > constants.MaxRating {
		return false
	}

	nearest := math.Round(f/constants.RatingStep) * constants.RatingStep
	return math.Abs(f-nearest) <= constants.RatingEpsilon
}

func (v *RatingValidator) ErrorMessage() string {
	return "Must be between 1.0 and 5.0 in 0.5 steps"
}
