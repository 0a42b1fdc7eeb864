// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package record

import (
	"time"

	"github.com/meibo-app/meibo/internal/platform/apperr"
	"github.com/meibo-app/meibo/internal/platform/constants"
	"github.com/meibo-app/meibo/internal/validation"
)

// Builder assembles a [Record] through staged setters and enforces the
// "all required fields set" invariant at build time.
//
// Setters for fields that are normalized at entry (the identifier) apply the
// same canonicalization as the corresponding validator, so a Record can be
// built directly from already-normalized values without re-deriving them.
//
// # Concurrency
//
// Builder is not safe for concurrent use. Create a new instance per record.
type Builder struct {
	rec      Record
	yearsSet bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// EmployeeID sets the identifier, canonicalizing it to XX##### form.
func (b *Builder) EmployeeID(id string) *Builder {
	b.rec.EmployeeID = validation.CanonicalEmployeeID(id)
	return b
}

// Name sets the full name.
func (b *Builder) Name(name string) *Builder {
	b.rec.Name = name
	return b
}

// Kana sets the phonetic name.
func (b *Builder) Kana(kana string) *Builder {
	b.rec.Kana = kana
	return b
}

// BirthDate sets the birth date.
func (b *Builder) BirthDate(t time.Time) *Builder {
	b.rec.BirthDate = t
	return b
}

// JoinDate sets the join date.
func (b *Builder) JoinDate(t time.Time) *Builder {
	b.rec.JoinDate = t
	return b
}

// YearsExperience sets the years-of-experience count.
func (b *Builder) YearsExperience(years int) *Builder {
	b.rec.YearsExperience = years
	b.yearsSet = true
	return b
}

// Skills sets the skill-tag list.
func (b *Builder) Skills(skills []string) *Builder {
	b.rec.Skills = skills
	return b
}

// CareerHistory sets the optional career-history text.
func (b *Builder) CareerHistory(s string) *Builder {
	b.rec.CareerHistory = s
	return b
}

// TrainingHistory sets the optional training-history text.
func (b *Builder) TrainingHistory(s string) *Builder {
	b.rec.TrainingHistory = s
	return b
}

// RatingTechnical sets the optional technical rating.
func (b *Builder) RatingTechnical(r *float64) *Builder {
	b.rec.RatingTechnical = r
	return b
}

// RatingCommunication sets the optional communication rating.
func (b *Builder) RatingCommunication(r *float64) *Builder {
	b.rec.RatingCommunication = r
	return b
}

// RatingLeadership sets the optional leadership rating.
func (b *Builder) RatingLeadership(r *float64) *Builder {
	b.rec.RatingLeadership = r
	return b
}

// RatingAttitude sets the optional attitude rating.
func (b *Builder) RatingAttitude(r *float64) *Builder {
	b.rec.RatingAttitude = r
	return b
}

// Note sets the optional free-text note.
func (b *Builder) Note(s string) *Builder {
	b.rec.Note = s
	return b
}

// RegisteredAt overrides the registration timestamp. When never called,
// Build stamps the record with the current time.
func (b *Builder) RegisteredAt(t time.Time) *Builder {
	b.rec.RegisteredAt = t
	return b
}

// Build re-checks every required-field invariant and returns the completed,
// immutable record. On failure it returns a validation error naming the
// first missing or invalid required attribute, in column order.
func (b *Builder) Build() (*Record, error) {
	switch {
	case !validation.IsCanonicalEmployeeID(b.rec.EmployeeID):
		return nil, buildErr(constants.ColEmployeeID, "missing or malformed identifier")
	case b.rec.EmployeeID == constants.ReservedEmployeeID:
		return nil, buildErr(constants.ColEmployeeID, "identifier is reserved")
	case b.rec.Name == "":
		return nil, buildErr(constants.ColName, "name is required")
	case b.rec.Kana == "":
		return nil, buildErr(constants.ColKana, "phonetic name is required")
	case b.rec.BirthDate.IsZero():
		return nil, buildErr(constants.ColBirthDate, "birth date is required")
	case b.rec.JoinDate.IsZero():
		return nil, buildErr(constants.ColJoinDate, "join date is required")
	case !b.yearsSet || b.rec.YearsExperience < 0:
		return nil, buildErr(constants.ColYearsExperience, "years of experience is required and must be non-negative")
	case len(b.rec.Skills) == 0:
		return nil, buildErr(constants.ColSkills, "at least one skill tag is required")
	}

	if b.rec.RegisteredAt.IsZero() {
		b.rec.RegisteredAt = time.Now().Truncate(time.Second)
	}

	// Copy out so later builder reuse cannot alias the returned record.
	built := b.rec
	built.Skills = append([]string(nil), b.rec.Skills...)
	return &built, nil
}

func buildErr(field, msg string) error {
	return apperr.ValidationError("Cannot build record", apperr.FieldError{
		Field:   field,
		Message: msg,
	})
}
