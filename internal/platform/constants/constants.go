// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines the backing-file schema, field limits, delimiters, and cross-cutting
keys that are shared between different layers of the system.

Categories:

  - File Schema: Column names and their fixed order in the backing CSV file.
  - Field Limits: Length, range, and capacity ceilings enforced by validation.
  - Delimiters: Primary (column) and secondary (list) separators.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "meibo"
	AppVersion = "0.1.0-dev"
)

// # File Schema

// Column names of the backing file, also used as validation field names.
const (
	ColEmployeeID      = "employee_id"
	ColName            = "name"
	ColKana            = "kana"
	ColBirthDate       = "birth_date"
	ColJoinDate        = "join_date"
	ColYearsExperience = "years_experience"
	ColSkills          = "skills"
	ColCareerHistory   = "career_history"
	ColTrainingHistory = "training_history"
	ColRatingTechnical = "rating_technical"
	ColRatingComms     = "rating_communication"
	ColRatingLeader    = "rating_leadership"
	ColRatingAttitude  = "rating_attitude"
	ColNote            = "note"
	ColRegisteredAt    = "registered_at"
)

// Columns is the fixed column order of the backing file. Every physical
// record line must have exactly this many fields.
var Columns = []string{
	ColEmployeeID,
	ColName,
	ColKana,
	ColBirthDate,
	ColJoinDate,
	ColYearsExperience,
	ColSkills,
	ColCareerHistory,
	ColTrainingHistory,
	ColRatingTechnical,
	ColRatingComms,
	ColRatingLeader,
	ColRatingAttitude,
	ColNote,
	ColRegisteredAt,
}

// ColumnCount is the number of columns in one record line.
const ColumnCount = 15

// # Delimiters

const (
	// FieldDelimiter separates columns within one record line.
	FieldDelimiter = ","

	// ListDelimiter separates entries of a list-valued field (skills)
	// inside a single column.
	ListDelimiter = ";"

	// NewlineEscape is the literal two-character sequence that replaces a
	// newline inside a quoted field, so one record always occupies exactly
	// one physical line.
	NewlineEscape = `\n`

	// CarriageReturnEscape replaces a carriage return inside a quoted field.
	// It is distinct from NewlineEscape so CR, LF, and CRLF all survive a
	// serialize/parse cycle unchanged.
	CarriageReturnEscape = `\r`
)

// # Field Limits

const (
	// MaxNameLen is the maximum length of the name and kana fields,
	// counted in Unicode code points.
	MaxNameLen = 20

	// MaxHistoryLen bounds the career and training history fields.
	MaxHistoryLen = 200

	// MaxNoteLen bounds the free-text note field.
	MaxNoteLen = 400

	// MinYearsExperience and MaxYearsExperience bound the experience field.
	MinYearsExperience = 0
	MaxYearsExperience = 50

	// MinRating and MaxRating bound the four rating fields. Ratings must
	// land exactly on a half-point step.
	MinRating     = 1.0
	MaxRating     = 5.0
	RatingStep    = 0.5
	RatingEpsilon = 0.001
)

// ReservedEmployeeID is a sentinel identifier reserved by import tooling for
// placeholder rows and never accepted as a real record identifier.
const ReservedEmployeeID = "ZZ99999"

// # Date Handling

const (
	// DateLayout is the canonical on-disk and display date format.
	DateLayout = "2006-01-02"

	// TimestampLayout is the format of the registered_at column.
	TimestampLayout = "2006-01-02 15:04:05"
)

// # Store Timing

const (
	// DefaultOperationTimeout is the deadline for a single dispatched store
	// operation (read or write).
	DefaultOperationTimeout = 30 * time.Second

	// MaxConcurrentOperations bounds the number of in-flight file operations
	// per store instance.
	MaxConcurrentOperations = 4
)
