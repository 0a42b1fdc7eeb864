// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meibo-app/meibo/internal/platform/config"
	"github.com/meibo-app/meibo/internal/platform/constants"
	"github.com/meibo-app/meibo/internal/validation"
)

// fixedNow pins "today" for date-range tests.
func fixedNow() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func testConfig() *config.Config {
	return &config.Config{
		DataDir:      "./data",
		FileName:     "roster.csv",
		MaxRecords:   1000,
		MinBirthDate: "1935-01-01",
		MinJoinDate:  "1970-01-01",
	}
}

/*
TestEmployeeIDValidator covers canonicalization, the reserved sentinel, and
the construction-time uniqueness set.
*/
func TestEmployeeIDValidator(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		raw      string
		wantNorm string
		wantOK   bool
	}{
		{"canonical", nil, "SS00645", "SS00645", true},
		{"lowercase_folded", nil, "ss00645", "SS00645", true},
		{"fullwidth_folded", nil, "ＳＳ００６４５", "SS00645", true},
		{"surrounding_space", nil, "  SS00645  ", "SS00645", true},
		{"too_few_digits", nil, "SS0064", "SS0064", false},
		{"too_many_digits", nil, "SS006450", "SS006450", false},
		{"one_letter_prefix", nil, "S00645", "S00645", false},
		{"reserved_sentinel", nil, "ZZ99999", "ZZ99999", false},
		{"already_taken", []string{"SS00645"}, "SS00645", "SS00645", false},
		{"taken_checked_canonically", []string{"ss00645"}, "ＳＳ００６４５", "SS00645", false},
		{"empty", nil, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validation.NewEmployeeIDValidator(tt.existing)
			norm := v.Preprocess(tt.raw)
			assert.Equal(t, tt.wantNorm, norm)
			assert.Equal(t, tt.wantOK, v.Validate(norm))
		})
	}
}

/*
TestNameValidator checks the script class and the 20-code-point bound.
*/
func TestNameValidator(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
	}{
		{"kanji_name", "山田太郎", true},
		{"exactly_20_chars", strings.Repeat("山", 20), true},
		{"21_chars", strings.Repeat("山", 21), false},
		{"latin_rejected", "Yamada", false},
		{"empty_rejected", "", false},
		{"whitespace_only_rejected", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validation.NameValidator{}
			assert.Equal(t, tt.wantOK, v.Validate(v.Preprocess(tt.raw)))
		})
	}
}

/*
TestKanaValidator checks hiragana auto-conversion and katakana-only enforcement.
*/
func TestKanaValidator(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantNorm string
		wantOK   bool
	}{
		{"katakana", "ヤマダタロウ", "ヤマダタロウ", true},
		{"hiragana_converted", "やまだたろう", "ヤマダタロウ", true},
		{"exactly_20", strings.Repeat("ア", 20), strings.Repeat("ア", 20), true},
		{"21_rejected", strings.Repeat("ア", 21), strings.Repeat("ア", 21), false},
		{"kanji_rejected", "山田", "山田", false},
		{"empty_rejected", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validation.KanaValidator{}
			norm := v.Preprocess(tt.raw)
			assert.Equal(t, tt.wantNorm, norm)
			assert.Equal(t, tt.wantOK, v.Validate(norm))
		})
	}
}

/*
TestDateValidator checks delimiter normalization and the [min, today] range.
*/
func TestDateValidator(t *testing.T) {
	min := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	v := validation.NewDateValidator(constants.ColJoinDate, min, fixedNow)

	tests := []struct {
		name     string
		raw      string
		wantNorm string
		wantOK   bool
	}{
		{"canonical", "2010-04-01", "2010-04-01", true},
		{"slash_delimiters", "2010/04/01", "2010-04-01", true},
		{"dot_delimiters", "2010.04.01", "2010-04-01", true},
		{"unpadded", "2010/4/1", "2010-04-01", true},
		{"fullwidth_digits", "２０１０－０４－０１", "2010-04-01", true},
		{"today_accepted", "2026-08-30", "2026-08-30", true},
		{"tomorrow_rejected", "2026-08-31", "2026-08-31", false},
		{"below_min_rejected", "1969-12-31", "1969-12-31", false},
		{"at_min_accepted", "1970-01-01", "1970-01-01", true},
		{"garbage_rejected", "not-a-date", "not-a-date", false},
		{"empty_rejected", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			norm := v.Preprocess(tt.raw)
			assert.Equal(t, tt.wantNorm, norm)
			assert.Equal(t, tt.wantOK, v.Validate(norm))
		})
	}
}

/*
TestYearsExperienceValidator exercises the 0..50 boundary exactly.
*/
func TestYearsExperienceValidator(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
	}{
		{"zero", "0", true},
		{"max", "50", true},
		{"over_max", "51", false},
		{"negative", "-1", false},
		{"fullwidth_digits", "１５", true},
		{"plus_sign_rejected", "+3", false},
		{"not_a_number", "ten", false},
		{"empty_rejected", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validation.YearsExperienceValidator{}
			assert.Equal(t, tt.wantOK, v.Validate(v.Preprocess(tt.raw)))
		})
	}
}

/*
TestRatingValidator checks the optional 1.0-5.0 half-step grid.
*/
func TestRatingValidator(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
	}{
		{"empty_means_unrated", "", true},
		{"on_step", "3.5", true},
		{"whole_number", "4", true},
		{"min_boundary", "1.0", true},
		{"max_boundary", "5.0", true},
		{"off_step", "3.3", false},
		{"below_min", "0.5", false},
		{"above_max", "5.5", false},
		{"not_a_number", "high", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validation.NewRatingValidator(constants.ColRatingTechnical)
			assert.Equal(t, tt.wantOK, v.Validate(v.Preprocess(tt.raw)))
		})
	}
}

/*
TestFreeTextValidator checks code-point bounds and both symbol policies.
*/
func TestFreeTextValidator(t *testing.T) {
	t.Run("lenient_strips_emoji", func(t *testing.T) {
		v := validation.NewFreeTextValidator(constants.ColNote, 10, false)
		norm := v.Preprocess("研修済み🎉")
		assert.Equal(t, "研修済み", norm)
		assert.True(t, v.Validate(norm))
	})

	t.Run("strict_rejects_emoji", func(t *testing.T) {
		v := validation.NewFreeTextValidator(constants.ColNote, 10, true)
		norm := v.Preprocess("研修済み🎉")
		assert.False(t, v.Validate(norm))
	})

	t.Run("empty_passes", func(t *testing.T) {
		v := validation.NewFreeTextValidator(constants.ColNote, 10, true)
		assert.True(t, v.Validate(v.Preprocess("")))
	})

	t.Run("length_in_code_points", func(t *testing.T) {
		v := validation.NewFreeTextValidator(constants.ColNote, 3, false)
		assert.True(t, v.Validate("𩸽𩸽𩸽"))  // 3 code points, 12 bytes
		assert.False(t, v.Validate("𩸽𩸽𩸽𩸽")) // 4 code points
	})
}

/*
TestSkillsValidator checks the non-empty list invariant and entry cleanup.
*/
func TestSkillsValidator(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantNorm string
		wantOK   bool
	}{
		{"single_entry", "Go", "Go", true},
		{"multiple_entries", "Go;Java;SQL", "Go;Java;SQL", true},
		{"entries_trimmed", " Go ; Java ", "Go;Java", true},
		{"empty_entries_dropped", "Go;;Java", "Go;Java", true},
		{"only_delimiters_rejected", ";;;", "", false},
		{"empty_rejected", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validation.SkillsValidator{}
			norm := v.Preprocess(tt.raw)
			assert.Equal(t, tt.wantNorm, norm)
			assert.Equal(t, tt.wantOK, v.Validate(norm))
		})
	}
}

/*
TestPreprocessIdempotent asserts preprocess(preprocess(x)) == preprocess(x)
for every validator in the standard set, over a spread of inputs.
*/
func TestPreprocessIdempotent(t *testing.T) {
	inputs := []string{
		"", "  SS00645 ", "ＳＳ００６４５", "やまだたろう", "ヤマダタロウ",
		"山田太郎", "2010/4/1", "２０１０．４．１", "１５", "3.5",
		" Go ;; Java ", "note🎉with‍symbols", strings.Repeat("あ", 30),
	}

	for field, v := range validation.RecordValidators(testConfig(), nil) {
		t.Run(field, func(t *testing.T) {
			for _, in := range inputs {
				once := v.Preprocess(in)
				assert.Equal(t, once, v.Preprocess(once), "input %q", in)
			}
		})
	}
}
