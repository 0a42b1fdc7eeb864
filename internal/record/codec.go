// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/meibo-app/meibo/internal/platform/constants"
	"github.com/meibo-app/meibo/pkg/pointer"
	"github.com/meibo-app/meibo/pkg/slice"
)

// # Line Encoding
//
// One record always occupies exactly one physical line. Fields containing
// the delimiter, quotes, or newlines are double-quoted with internal quotes
// doubled; newlines are escaped to the literal two-character sequence \n
// and carriage returns to \r before quoting, and backslashes are doubled so
// the escape is reversible.

// HeaderLine returns the fixed header row of the backing file.
func HeaderLine() string {
	return strings.Join(constants.Columns, constants.FieldDelimiter)
}

// MarshalLine serializes a record into one physical line (without trailing
// newline), in the fixed column order.
func MarshalLine(r *Record) string {
	fields := []string{
		r.EmployeeID,
		r.Name,
		r.Kana,
		r.BirthDate.Format(constants.DateLayout),
		r.JoinDate.Format(constants.DateLayout),
		strconv.Itoa(r.YearsExperience),
		strings.Join(r.Skills, constants.ListDelimiter),
		r.CareerHistory,
		r.TrainingHistory,
		formatRating(r.RatingTechnical),
		formatRating(r.RatingCommunication),
		formatRating(r.RatingLeadership),
		formatRating(r.RatingAttitude),
		r.Note,
		r.RegisteredAt.Format(constants.TimestampLayout),
	}

	return strings.Join(slice.Map(fields, encodeField), constants.FieldDelimiter)
}

// encodeField escapes and, when necessary, quotes a single field value.
func encodeField(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, "\n", constants.NewlineEscape)
	v = strings.ReplaceAll(v, "\r", constants.CarriageReturnEscape)

	if strings.Contains(v, constants.FieldDelimiter) || strings.Contains(v, `"`) {
		v = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}

// decodeField reverses the escaping applied by encodeField. Quote stripping
// has already happened in SplitLine.
func decodeField(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		if v[i] == '\\' && i+1 < len(v) {
			switch v[i+1] {
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 'r':
				b.WriteByte('\r')
				i++
				continue
			}
		}
		b.WriteByte(v[i])
	}
	return b.String()
}

// SplitLine splits one physical line into its fields, honoring quoted fields
// that may contain the delimiter, and reversing field escaping. It returns
// an error for unbalanced quotes or a wrong field count.
func SplitLine(line string) ([]string, error) {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case r == '"' && inQuotes:
			// Doubled quote inside a quoted field is a literal quote.
			if i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
				continue
			}
			inQuotes = false
		case r == '"':
			inQuotes = true
		case r == ',' && !inQuotes:
			fields = append(fields, decodeField(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}

	if inQuotes {
		return nil, fmt.Errorf("unbalanced quote in line")
	}

	fields = append(fields, decodeField(cur.String()))

	if len(fields) != constants.ColumnCount {
		return nil, fmt.Errorf("expected %d columns, got %d", constants.ColumnCount, len(fields))
	}
	return fields, nil
}

// RawMap maps split fields onto their column names, the shape the validation
// service consumes.
func RawMap(fields []string) map[string]string {
	raw := make(map[string]string, len(fields))
	for i, col := range constants.Columns {
		raw[col] = fields[i]
	}
	return raw
}

// # Record Assembly

// FromValues assembles a record from normalized field values (the Values map
// of a passing validation outcome) plus the raw registered_at column, which
// is not validator-governed. A missing or unparsable registration timestamp
// defaults to the current time.
func FromValues(values map[string]string, registeredAtRaw string) (*Record, error) {
	birth, err := time.Parse(constants.DateLayout, values[constants.ColBirthDate])
	if err != nil {
		return nil, fmt.Errorf("birth date: %w", err)
	}
	join, err := time.Parse(constants.DateLayout, values[constants.ColJoinDate])
	if err != nil {
		return nil, fmt.Errorf("join date: %w", err)
	}
	years, err := strconv.Atoi(values[constants.ColYearsExperience])
	if err != nil {
		return nil, fmt.Errorf("years of experience: %w", err)
	}

	builder := NewBuilder().
		EmployeeID(values[constants.ColEmployeeID]).
		Name(values[constants.ColName]).
		Kana(values[constants.ColKana]).
		BirthDate(birth).
		JoinDate(join).
		YearsExperience(years).
		Skills(strings.Split(values[constants.ColSkills], constants.ListDelimiter)).
		CareerHistory(values[constants.ColCareerHistory]).
		TrainingHistory(values[constants.ColTrainingHistory]).
		RatingTechnical(parseRating(values[constants.ColRatingTechnical])).
		RatingCommunication(parseRating(values[constants.ColRatingComms])).
		RatingLeadership(parseRating(values[constants.ColRatingLeader])).
		RatingAttitude(parseRating(values[constants.ColRatingAttitude])).
		Note(values[constants.ColNote]).
		RegisteredAt(parseTimestamp(registeredAtRaw))

	return builder.Build()
}

// formatRating renders an optional rating with one decimal place, or the
// empty string for nil.
func formatRating(r *float64) string {
	if r == nil {
		return ""
	}
	return strconv.FormatFloat(pointer.Val(r), 'f', 1, 64)
}

// parseRating parses an optional rating column; empty or garbage yields nil.
// Range checking happened during validation.
func parseRating(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return pointer.To(f)
}

// parseTimestamp parses the registered_at column, accepting the full
// timestamp layout or a bare date. Anything else defaults to now.
func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(constants.TimestampLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(constants.DateLayout, s); err == nil {
		return t
	}
	return time.Now().Truncate(time.Second)
}
