// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package jptext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meibo-app/meibo/pkg/jptext"
)

/*
TestFoldWidth checks full-width to half-width conversion of ASCII variants.
*/
func TestFoldWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"fullwidth_digits", "１２３４５", "12345"},
		{"fullwidth_letters", "ＳＳ", "SS"},
		{"mixed", "ＳＳ００６４５", "SS00645"},
		{"already_halfwidth", "SS00645", "SS00645"},
		{"kanji_untouched", "山田太郎", "山田太郎"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jptext.FoldWidth(tt.in))
		})
	}
}

/*
TestHiraganaToKatakana verifies the script conversion used for phonetic names.
*/
func TestHiraganaToKatakana(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain_hiragana", "やまだたろう", "ヤマダタロウ"},
		{"already_katakana", "ヤマダタロウ", "ヤマダタロウ"},
		{"mixed_scripts", "やまだタロウ", "ヤマダタロウ"},
		{"small_kana", "きょう", "キョウ"},
		{"prolonged_mark_kept", "すずきいちろー", "スズキイチロー"},
		{"non_kana_untouched", "abc123", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jptext.HiraganaToKatakana(tt.in))
		})
	}
}

/*
TestIsKatakana checks the strict katakana classification.
*/
func TestIsKatakana(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"pure_katakana", "ヤマダタロウ", true},
		{"with_prolonged_mark", "スズキイチロー", true},
		{"with_middle_dot", "ジャン・ポール", true},
		{"with_space", "ヤマダ タロウ", true},
		{"hiragana", "やまだ", false},
		{"kanji", "山田", false},
		{"latin", "Yamada", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jptext.IsKatakana(tt.in))
		})
	}
}

/*
TestIsNameScript checks the character class accepted for personal names.
*/
func TestIsNameScript(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"kanji", "山田太郎", true},
		{"hiragana", "やまだたろう", true},
		{"katakana", "ヤマダタロウ", true},
		{"iteration_mark", "佐々木", true},
		{"full_width_space", "山田　太郎", true},
		{"latin", "Yamada", false},
		{"digits", "山田2", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jptext.IsNameScript(tt.in))
		})
	}
}

/*
TestCountCodePoints verifies lengths are counted in code points, not bytes or
UTF-16 code units, so characters outside the BMP count once.
*/
func TestCountCodePoints(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"ascii", "abc", 3},
		{"kanji", "山田太郎", 4},
		{"outside_bmp", "𩸽", 1}, // CJK extension B, a surrogate pair in UTF-16
		{"mixed", "a𩸽b", 3},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jptext.CountCodePoints(tt.in))
		})
	}
}

/*
TestStripSymbols checks removal of emoji and format-control characters.
*/
func TestStripSymbols(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"emoji_removed", "研修済み🎉", "研修済み"},
		{"zero_width_joiner_removed", "a‍b", "ab"},
		{"variation_selector_removed", "☺️", ""},
		{"plain_text_untouched", "金融系案件", "金融系案件"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jptext.StripSymbols(tt.in))
		})
	}
}

/*
TestContainsSymbols checks detection without modification.
*/
func TestContainsSymbols(t *testing.T) {
	assert.True(t, jptext.ContainsSymbols("ok🎉"))
	assert.True(t, jptext.ContainsSymbols("a‍b"))
	assert.False(t, jptext.ContainsSymbols("大規模案件"))
	assert.False(t, jptext.ContainsSymbols(""))
}
