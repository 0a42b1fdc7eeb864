// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

// Package jptext provides Japanese-text normalization and classification
// helpers for the validation pipeline.
//
// # Usage
//
// Field validators normalize raw input before checking it: full-width digits
// are folded to ASCII, hiragana readings are converted to katakana, and
// free text can be cleared of emoji and format-control characters. All
// operations are pure functions of their input.
package jptext

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// formatControls removes format-control characters (Unicode category Cf),
// which includes zero-width joiners and directional marks.
var formatControls = runes.Remove(runes.In(unicode.Cf))

// FoldWidth converts full-width ASCII variants to their half-width forms and
// half-width katakana to full-width, e.g. "ＳＳ００１" becomes "SS001".
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// HiraganaToKatakana converts every hiragana rune to its katakana
// counterpart, leaving all other runes untouched.
//
// # Transformation
//
// The two scripts are parallel Unicode blocks offset by 0x60, so the
// conversion is a rune shift over U+3041..U+3096 plus the iteration marks
// U+309D/U+309E.
func HiraganaToKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'ぁ' && r <= 'ゖ') || r == 'ゝ' || r == 'ゞ' {
			return r + 0x60
		}
		return r
	}, s)
}

// IsKatakana reports whether every rune of s is katakana, the prolonged
// sound mark, the middle dot, or a space. An empty string is not katakana.
func IsKatakana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.In(r, unicode.Katakana) || r == 'ー' || r == '・' || r == ' ' || r == '　' {
			continue
		}
		return false
	}
	return true
}

// IsNameScript reports whether every rune of s belongs to the character
// class accepted for personal names: Han, hiragana, katakana, the prolonged
// sound mark, iteration marks, the middle dot, or a space. An empty string
// does not qualify.
func IsNameScript(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana) {
			continue
		}
		switch r {
		case 'ー', '々', 'ゝ', 'ゞ', 'ヽ', 'ヾ', '・', ' ', '　':
			continue
		}
		return false
	}
	return true
}

// CountCodePoints returns the length of s in Unicode code points, not bytes,
// so characters outside the basic multilingual plane count as one.
func CountCodePoints(s string) int {
	return utf8.RuneCountInString(s)
}

// StripSymbols removes emoji and format-control characters from s.
//
// # Transformation Pipeline
//
// 1. Drops format-control runes (category Cf, e.g. zero-width joiner).
// 2. Drops emoji and pictographic symbols, including variation selectors.
func StripSymbols(s string) string {
	cleaned, _, err := transform.String(formatControls, s)
	if err != nil {
		cleaned = s
	}

	var b strings.Builder
	b.Grow(len(cleaned))
	for _, r := range cleaned {
		if isEmoji(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ContainsSymbols reports whether s contains emoji or format-control runes.
func ContainsSymbols(s string) bool {
	for _, r := range s {
		if isEmoji(r) || unicode.In(r, unicode.Cf) {
			return true
		}
	}
	return false
}

// isEmoji reports whether r falls in the pictographic ranges used by emoji,
// or is a variation selector that alters emoji presentation.
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF: // Mahjong tiles through symbols-extended
		return true
	case r >= 0x2600 && r <= 0x27BF: // Misc symbols and dingbats
		return true
	case r == 0xFE0E || r == 0xFE0F: // Variation selectors
		return true
	}
	return false
}
