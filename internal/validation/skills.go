// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package validation

import (
	"strings"

	"github.com/meibo-app/meibo/internal/platform/constants"
)

// SkillsValidator validates the semicolon-delimited skill-tag list. At least
// one non-empty entry is required.
type SkillsValidator struct{}

func (v SkillsValidator) FieldName() string { return constants.ColSkills }

// Preprocess trims each entry and drops empty ones, so " Go ;; Java "
// normalizes to "Go;Java".
func (v SkillsValidator) Preprocess(raw string) string {
	parts := strings.Split(raw, constants.ListDelimiter)
	kept := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, constants.ListDelimiter)
}

func (v SkillsValidator) Validate(normalized string) bool {
	return normalized != ""
}

func (v SkillsValidator) ErrorMessage() string {
	return "At least one skill tag is required"
}
