// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

/*
Package record defines the personnel Record entity, its invariant-enforcing
builder, and the wire codec between records and backing-file lines.

# Architecture

  - Record: one immutable personnel entry. Never mutated in place; an update
    replaces the whole entity.
  - Builder: staged construction that re-checks every required-field
    invariant at build time.
  - Codec: serialize/parse one record to/from exactly one physical line of
    the comma-delimited backing file.
*/
package record

import (
	"time"
)

// Record represents one personnel entry in the store.
//
// Required fields are non-zero for any Record produced by [Builder.Build].
// The four rating fields are optional; nil means "not rated".
type Record struct {
	// EmployeeID is the canonical XX##### identifier, unique across the store.
	EmployeeID string `json:"employee_id"`

	Name string `json:"name"`
	Kana string `json:"kana"`

	BirthDate time.Time `json:"birth_date"`
	JoinDate  time.Time `json:"join_date"`

	// YearsExperience is whole years, 0 through 50.
	YearsExperience int `json:"years_experience"`

	// Skills holds at least one skill tag.
	Skills []string `json:"skills"`

	CareerHistory   string `json:"career_history"`
	TrainingHistory string `json:"training_history"`

	RatingTechnical     *float64 `json:"rating_technical"`
	RatingCommunication *float64 `json:"rating_communication"`
	RatingLeadership    *float64 `json:"rating_leadership"`
	RatingAttitude      *float64 `json:"rating_attitude"`

	Note string `json:"note"`

	// RegisteredAt defaults to build time, truncated to whole seconds to
	// match the on-disk timestamp resolution.
	RegisteredAt time.Time `json:"registered_at"`
}

// RejectedRow is a row of the backing file that failed structural parsing or
// field validation during a read. The read itself still succeeds; rejected
// rows ride along in the outcome for reporting.
type RejectedRow struct {
	// Line is the 1-based physical line number in the backing file.
	Line int `json:"line"`
	// Raw is the original, unparsed line text.
	Raw string `json:"raw"`
	// Reason is the concatenated per-field error text.
	Reason string `json:"reason"`
}
