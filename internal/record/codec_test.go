// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package record_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meibo-app/meibo/internal/platform/constants"
	"github.com/meibo-app/meibo/internal/record"
	"github.com/meibo-app/meibo/pkg/pointer"
)

// buildRecord builds a record for codec tests, failing the test on error.
func buildRecord(t *testing.T, mutate func(*record.Builder) *record.Builder) *record.Record {
	t.Helper()
	b := completeBuilder().RegisteredAt(time.Date(2010, 4, 1, 9, 0, 0, 0, time.UTC))
	if mutate != nil {
		b = mutate(b)
	}
	rec, err := b.Build()
	require.NoError(t, err)
	return rec
}

// roundTrip serializes a record to one line and parses it back through the
// same path the store read uses.
func roundTrip(t *testing.T, rec *record.Record) *record.Record {
	t.Helper()

	line := record.MarshalLine(rec)
	assert.NotContains(t, line, "\n", "one record must occupy exactly one physical line")
	assert.NotContains(t, line, "\r", "one record must occupy exactly one physical line")

	fields, err := record.SplitLine(line)
	require.NoError(t, err)

	raw := record.RawMap(fields)
	parsed, err := record.FromValues(raw, raw[constants.ColRegisteredAt])
	require.NoError(t, err)
	return parsed
}

/*
TestRoundTrip_PlainRecord verifies parse(serialize(record)) == record for a
record without special characters.
*/
func TestRoundTrip_PlainRecord(t *testing.T) {
	rec := buildRecord(t, func(b *record.Builder) *record.Builder {
		return b.
			RatingTechnical(pointer.To(4.0)).
			RatingCommunication(pointer.To(3.5)).
			Note("中途入社")
	})

	assert.Equal(t, rec, roundTrip(t, rec))
}

/*
TestRoundTrip_SkillListSizes covers single-element and multi-element skill lists.
*/
func TestRoundTrip_SkillListSizes(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
	}{
		{"single_skill", []string{"Go"}},
		{"many_skills", []string{"Go", "Java", "SQL", "AWS"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := buildRecord(t, func(b *record.Builder) *record.Builder {
				return b.Skills(tt.skills)
			})
			assert.Equal(t, tt.skills, roundTrip(t, rec).Skills)
		})
	}
}

/*
TestRoundTrip_SpecialCharacters covers free text containing the delimiter,
quotes, newlines, carriage returns, and backslashes.
*/
func TestRoundTrip_SpecialCharacters(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"comma", "保守, 運用, 開発"},
		{"double_quotes", `顧客曰く"最高"の評価`},
		{"newline", "一行目\n二行目"},
		{"carriage_return", "一行目\r二行目"},
		{"crlf", "一行目\r\n二行目"},
		{"quotes_and_commas", `"a",b,"c"`},
		{"backslash", `C:\Users\yamada`},
		{"backslash_n_literal", `リテラル\n文字列`},
		{"backslash_r_literal", `リテラル\r文字列`},
		{"everything", "a,\"b\"\r\nc\\d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := buildRecord(t, func(b *record.Builder) *record.Builder {
				return b.Note(tt.text).CareerHistory(tt.text)
			})

			parsed := roundTrip(t, rec)
			assert.Equal(t, tt.text, parsed.Note)
			assert.Equal(t, tt.text, parsed.CareerHistory)
		})
	}
}

/*
TestSplitLine_Errors covers structural failures: unbalanced quotes and wrong
column counts.
*/
func TestSplitLine_Errors(t *testing.T) {
	t.Run("unbalanced_quote", func(t *testing.T) {
		_, err := record.SplitLine(`SS00645,"broken`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unbalanced quote")
	})

	t.Run("too_few_columns", func(t *testing.T) {
		_, err := record.SplitLine("SS00645,山田太郎")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "columns")
	})

	t.Run("too_many_columns", func(t *testing.T) {
		line := strings.Repeat(",", constants.ColumnCount)
		_, err := record.SplitLine(line)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "columns")
	})
}

/*
TestHeaderLine verifies the header matches the fixed column order.
*/
func TestHeaderLine(t *testing.T) {
	header := record.HeaderLine()
	assert.Equal(t, strings.Join(constants.Columns, ","), header)
	assert.Equal(t, constants.ColumnCount, len(strings.Split(header, ",")))
}

/*
TestMarshalLine_EmptyOptionals verifies blank rating and text columns render
as empty fields and parse back to their zero forms.
*/
func TestMarshalLine_EmptyOptionals(t *testing.T) {
	rec := buildRecord(t, nil)

	parsed := roundTrip(t, rec)
	assert.Nil(t, parsed.RatingTechnical)
	assert.Nil(t, parsed.RatingCommunication)
	assert.Nil(t, parsed.RatingLeadership)
	assert.Nil(t, parsed.RatingAttitude)
	assert.Equal(t, "", parsed.Note)
	assert.Equal(t, "", parsed.CareerHistory)
}
