// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package roster

import (
	"context"
	"log/slog"
	"slices"

	"github.com/meibo-app/meibo/internal/platform/apperr"
	"github.com/meibo-app/meibo/internal/record"
	"github.com/meibo-app/meibo/pkg/slice"
)

// ImportReport summarizes one bulk import.
type ImportReport struct {
	// Imported counts newly added records.
	Imported int
	// Replaced counts existing records overwritten by the import.
	Replaced int
	// Skipped counts source records dropped because their identifier already
	// existed and the policy kept the stored version.
	Skipped int
	// Rejected holds source rows that failed parsing or validation.
	Rejected []record.RejectedRow
}

// ImportFile bulk-loads records from a roster-format file at srcPath.
//
// The source passes through the same validation pipeline as interactive
// input. Duplicates within the source are resolved by the injected policy;
// identifiers that collide with stored records are likewise overwritten or
// skipped per that policy. With appendMode true and nothing to overwrite,
// the new rows are appended to the backing file instead of rewriting it.
//
// An import that would push the collection past the configured ceiling is
// refused with a CAPACITY_EXCEEDED error; nothing is written.
func (repository *Repository) ImportFile(ctx context.Context, srcPath string, appendMode bool) (*ImportReport, error) {
	source, err := repository.store.ReadFile(ctx, srcPath)
	if err != nil {
		return nil, err
	}

	if source.HasDuplicates() {
		ids := source.DuplicateIDs()
		repository.logger.Warn("import_duplicates_found", slog.Any("ids", ids))
		source.Resolve(repository.resolver.Overwrite(ids))
	}

	current, err := repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{Rejected: source.Rejected}

	var fresh []*record.Record
	var colliding []string
	for _, rec := range source.Accepted {
		if containsID(current.Accepted, rec.EmployeeID) {
			colliding = append(colliding, rec.EmployeeID)
			continue
		}
		fresh = append(fresh, rec)
	}

	overwrite := false
	if len(colliding) > 0 {
		overwrite = repository.resolver.Overwrite(colliding)
	}

	merged := current.Accepted
	if overwrite {
		replacements := slice.Filter(source.Accepted, func(r *record.Record) bool {
			return slices.Contains(colliding, r.EmployeeID)
		})
		byID := make(map[string]*record.Record, len(replacements))
		for _, r := range replacements {
			byID[r.EmployeeID] = r
		}
		merged = slice.Map(merged, func(r *record.Record) *record.Record {
			if repl, ok := byID[r.EmployeeID]; ok {
				return repl
			}
			return r
		})
		report.Replaced = len(replacements)
	} else {
		report.Skipped = len(colliding)
	}
	report.Imported = len(fresh)

	total := len(merged) + len(fresh)
	if total > repository.max {
		return nil, apperr.Capacity(total, repository.max)
	}

	if appendMode && !overwrite {
		if err := repository.store.Write(ctx, fresh, true); err != nil {
			return nil, err
		}
	} else {
		if err := repository.store.Write(ctx, append(merged, fresh...), false); err != nil {
			return nil, err
		}
	}

	repository.logger.Info("import_complete",
		slog.Int("imported", report.Imported),
		slog.Int("replaced", report.Replaced),
		slog.Int("skipped", report.Skipped),
		slog.Int("rejected", len(report.Rejected)),
	)
	return report, nil
}

// ExportFile writes the full accepted collection to a roster-format file at
// dstPath and returns the number of records written. The export stream is
// opened through the store so the resource registry tracks it.
func (repository *Repository) ExportFile(ctx context.Context, dstPath string) (int, error) {
	outcome, err := repository.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	if err := repository.store.WriteFile(ctx, dstPath, outcome.Accepted); err != nil {
		return 0, err
	}

	repository.logger.Info("export_complete",
		slog.String("path", dstPath),
		slog.Int("records", len(outcome.Accepted)),
	)
	return len(outcome.Accepted), nil
}
