// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

/*
Package roster composes the file store, validation service, and record
builder into the CRUD surface consumed by the CLI and import/export flows.

# Architecture

Every mutating operation is read-modify-write over the whole collection: the
current set is read through the store, transformed in memory, and written
back as a full-file rewrite. There are no targeted line edits. Save and
Update do not re-validate the incoming record; validation happens at the
form/import boundary before a record is ever built.
*/
package roster

import (
	"context"
	"log/slog"
	"slices"

	"github.com/meibo-app/meibo/internal/platform/apperr"
	"github.com/meibo-app/meibo/internal/platform/config"
	"github.com/meibo-app/meibo/internal/record"
	"github.com/meibo-app/meibo/internal/store"
	"github.com/meibo-app/meibo/internal/validation"
	"github.com/meibo-app/meibo/pkg/slice"
)

// DuplicateResolver decides how duplicate identifiers surfaced by a read are
// handled. It is an external collaborator, typically an interactive
// confirmation prompt.
type DuplicateResolver interface {
	// Overwrite returns true when later occurrences should replace the
	// first-seen record, false to keep the first occurrence of each.
	Overwrite(ids []string) bool
}

// KeepFirst is the non-interactive default policy: the first occurrence of
// each duplicated identifier wins.
type KeepFirst struct{}

func (KeepFirst) Overwrite([]string) bool { return false }

// Repository provides CRUD operations over the personnel record collection.
type Repository struct {
	store    *store.Store
	resolver DuplicateResolver
	max      int
	logger   *slog.Logger
}

// NewRepository creates a repository over the given store.
func NewRepository(st *store.Store, resolver DuplicateResolver, cfg *config.Config, logger *slog.Logger) *Repository {
	if resolver == nil {
		resolver = KeepFirst{}
	}
	return &Repository{
		store:    st,
		resolver: resolver,
		max:      cfg.MaxRecords,
		logger:   logger,
	}
}

// # Queries

// FindAll reads the whole collection. Duplicate identifiers are resolved
// through the injected policy before the outcome is returned, and an
// over-ceiling record count is flagged, never truncated.
func (repository *Repository) FindAll(ctx context.Context) (*store.FileAccessOutcome, error) {
	outcome, err := repository.store.Read(ctx)
	if err != nil {
		return outcome, err
	}

	if outcome.HasDuplicates() {
		ids := outcome.DuplicateIDs()
		repository.logger.Warn("duplicate_identifiers_found", slog.Any("ids", ids))
		outcome.Resolve(repository.resolver.Overwrite(ids))
	}

	if len(outcome.Accepted) > repository.max {
		repository.logger.Warn("capacity_exceeded",
			slog.Int("count", len(outcome.Accepted)),
			slog.Int("limit", repository.max),
		)
		outcome.CapacityExceeded = true
	}

	return outcome, nil
}

// FindByID returns the record with the given identifier, canonicalized
// before lookup. A missing record is an [apperr.AppError] with code
// NOT_FOUND.
func (repository *Repository) FindByID(ctx context.Context, id string) (*record.Record, error) {
	canonical := validation.CanonicalEmployeeID(id)

	outcome, err := repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range outcome.Accepted {
		if rec.EmployeeID == canonical {
			return rec, nil
		}
	}
	return nil, apperr.NotFound("Record " + canonical)
}

// # Mutations

// Save appends a new record to the collection. Saving an identifier that
// already exists is a CONFLICT error; nothing is written in that case.
func (repository *Repository) Save(ctx context.Context, rec *record.Record) error {
	outcome, err := repository.FindAll(ctx)
	if err != nil {
		return err
	}

	if containsID(outcome.Accepted, rec.EmployeeID) {
		return apperr.Conflict("Record " + rec.EmployeeID + " already exists")
	}

	updated := append(outcome.Accepted, rec)
	if err := repository.store.Write(ctx, updated, false); err != nil {
		return err
	}

	repository.logger.Info("record_saved", slog.String("employee_id", rec.EmployeeID))
	return nil
}

// Update replaces the record sharing the incoming record's identifier.
// The entity is replaced wholesale; records are never mutated in place.
func (repository *Repository) Update(ctx context.Context, rec *record.Record) error {
	outcome, err := repository.FindAll(ctx)
	if err != nil {
		return err
	}

	if !containsID(outcome.Accepted, rec.EmployeeID) {
		return apperr.NotFound("Record " + rec.EmployeeID)
	}

	updated := slice.Map(outcome.Accepted, func(r *record.Record) *record.Record {
		if r.EmployeeID == rec.EmployeeID {
			return rec
		}
		return r
	})

	if err := repository.store.Write(ctx, updated, false); err != nil {
		return err
	}

	repository.logger.Info("record_updated", slog.String("employee_id", rec.EmployeeID))
	return nil
}

// DeleteAll removes every record whose identifier appears in ids and returns
// the number of records removed. Identifiers are canonicalized first;
// unknown identifiers are ignored.
func (repository *Repository) DeleteAll(ctx context.Context, ids []string) (int, error) {
	outcome, err := repository.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	doomed := slice.Map(ids, validation.CanonicalEmployeeID)
	kept := slice.Filter(outcome.Accepted, func(r *record.Record) bool {
		return !slices.Contains(doomed, r.EmployeeID)
	})

	removed := len(outcome.Accepted) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if err := repository.store.Write(ctx, kept, false); err != nil {
		return 0, err
	}

	repository.logger.Warn("records_deleted", slog.Int("count", removed))
	return removed, nil
}

func containsID(records []*record.Record, id string) bool {
	return slices.ContainsFunc(records, func(r *record.Record) bool {
		return r.EmployeeID == id
	})
}
