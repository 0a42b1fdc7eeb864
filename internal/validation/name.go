// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package validation

import (
	"strings"

	"github.com/meibo-app/meibo/internal/platform/constants"
	"github.com/meibo-app/meibo/pkg/jptext"
)

// NameValidator validates the full-name field: Han, hiragana, or katakana
// characters only, at most [constants.MaxNameLen] code points.
type NameValidator struct{}

func (v NameValidator) FieldName() string { return constants.ColName }

func (v NameValidator) Preprocess(raw string) string {
	return strings.TrimSpace(raw)
}

func (v NameValidator) Validate(normalized string) bool {
	if !jptext.IsNameScript(normalized) {
		return false
	}
	return jptext.CountCodePoints(normalized) <= constants.MaxNameLen
}

func (v NameValidator) ErrorMessage() string {
	return "Must be kanji or kana, at most 20 characters"
}

// KanaValidator validates the phonetic-name field. Hiragana input is
// auto-converted to katakana during preprocessing, so either reading script
// is accepted at entry but only katakana is stored.
type KanaValidator struct{}

func (v KanaValidator) FieldName() string { return constants.ColKana }

func (v KanaValidator) Preprocess(raw string) string {
	return jptext.HiraganaToKatakana(strings.TrimSpace(raw))
}

func (v KanaValidator) Validate(normalized string) bool {
	if !jptext.IsKatakana(normalized) {
		return false
	}
	return jptext.CountCodePoints(normalized) <= constants.MaxNameLen
}

func (v KanaValidator) ErrorMessage() string {
	return "Must be katakana, at most 20 characters"
}
