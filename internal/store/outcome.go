// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package store

import (
	"github.com/meibo-app/meibo/internal/record"
	"github.com/meibo-app/meibo/pkg/slice"
)

// Duplicate is a validated row whose identifier already appeared earlier in
// the same read. It carries the later payload so an "overwrite" resolution
// can replace the first occurrence.
type Duplicate struct {
	EmployeeID string
	// Line is the 1-based physical line number of the later occurrence.
	Line   int
	Record *record.Record
}

// FileAccessOutcome is the result of one store read, partitioned into
// accepted, rejected, and duplicate sets plus a fatal-error indicator.
//
// It is constructed by [Store.Read], may be mutated exactly once by
// [FileAccessOutcome.Resolve], and is treated as immutable afterwards.
type FileAccessOutcome struct {
	// Accepted holds every valid record, first occurrence per identifier.
	Accepted []*record.Record

	// Rejected holds rows that failed structural parsing or validation,
	// each annotated with its error text.
	Rejected []record.RejectedRow

	// Duplicates holds later occurrences of identifiers already accepted
	// within this same read.
	Duplicates []Duplicate

	// Fatal indicates the read failed entirely; Accepted and Rejected are
	// empty and FatalMessage describes the cause.
	Fatal        bool
	FatalMessage string

	// OverwriteConfirmed records that the duplicate-resolution policy chose
	// to overwrite first occurrences with later payloads.
	OverwriteConfirmed bool

	// CapacityExceeded flags an accepted-record count above the configured
	// ceiling. The collection is reported in full, never truncated.
	CapacityExceeded bool

	resolved bool
}

// DuplicateIDs returns the distinct duplicated identifiers in first-seen order.
func (o *FileAccessOutcome) DuplicateIDs() []string {
	seen := make(map[string]struct{}, len(o.Duplicates))
	var ids []string
	for _, d := range o.Duplicates {
		if _, ok := seen[d.EmployeeID]; ok {
			continue
		}
		seen[d.EmployeeID] = struct{}{}
		ids = append(ids, d.EmployeeID)
	}
	return ids
}

// HasDuplicates reports whether the read surfaced any duplicate identifiers.
func (o *FileAccessOutcome) HasDuplicates() bool {
	return len(o.Duplicates) > 0
}

// Resolve applies the duplicate-resolution decision exactly once.
//
// With overwrite true, the last duplicate payload per identifier replaces
// the first-seen record in the accepted set. With overwrite false ("keep
// first"), the later occurrences are simply discarded; the accepted set
// already holds the first occurrence of each identifier.
func (o *FileAccessOutcome) Resolve(overwrite bool) {
	if o.resolved {
		return
	}
	o.resolved = true

	if !overwrite {
		o.Duplicates = nil
		return
	}

	latest := make(map[string]*record.Record, len(o.Duplicates))
	for _, d := range o.Duplicates {
		latest[d.EmployeeID] = d.Record
	}

	o.Accepted = slice.Map(o.Accepted, func(r *record.Record) *record.Record {
		if replacement, ok := latest[r.EmployeeID]; ok {
			return replacement
		}
		return r
	})

	o.Duplicates = nil
	o.OverwriteConfirmed = true
}

// fatalOutcome builds an outcome for an unrecoverable read failure, with
// empty accepted and rejected partitions.
func fatalOutcome(msg string) *FileAccessOutcome {
	return &FileAccessOutcome{
		Fatal:        true,
		FatalMessage: msg,
	}
}
