// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

/*
Package store implements the concurrent file engine over the backing CSV file.

# Architecture

  - PathResolver: locates or materializes the backing file (existing file →
    embedded seed → header-only file).
  - Store: the locking, reading, parsing, and writing engine. One
    read/write mutex guards the one backing file; multiple concurrent reads
    are allowed, a write excludes everything else.
  - FileAccessOutcome: the structured result of a read, partitioned into
    accepted, rejected, and duplicate sets.

# Concurrency

Each operation runs as a dispatched unit of work bounded by a worker-slot
semaphore; the caller blocks on the result. The lock is acquired immediately
before the I/O section and released in a deferred block, never held across
validation or any caller prompt, so CPU-bound row processing does not
serialize with other readers or writers.
*/
package store

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meibo-app/meibo/internal/platform/apperr"
	"github.com/meibo-app/meibo/internal/platform/config"
	"github.com/meibo-app/meibo/internal/platform/constants"
	"github.com/meibo-app/meibo/internal/platform/fserr"
	"github.com/meibo-app/meibo/internal/platform/resource"
	"github.com/meibo-app/meibo/internal/record"
	"github.com/meibo-app/meibo/internal/validation"
	"github.com/meibo-app/meibo/pkg/slice"
)

// rawLine is one physical data line captured under the read lock, processed
// after the lock is released.
type rawLine struct {
	num  int
	text string
}

// Store is the concurrent file engine for one backing file.
type Store struct {
	resolver  *PathResolver
	registry  *resource.Registry
	service   *validation.Service
	validator map[string]validation.Validator
	logger    *slog.Logger

	lock  *FileLock
	slots chan struct{}
}

// New creates a store over the resolver's backing file.
//
// The validator map is the same per-field set used for interactive input,
// minus the uniqueness set: duplicate detection across the whole file is the
// read path's own job.
func New(
	cfg *config.Config,
	resolver *PathResolver,
	registry *resource.Registry,
	service *validation.Service,
	logger *slog.Logger,
) *Store {
	return &Store{
		resolver:  resolver,
		registry:  registry,
		service:   service,
		validator: validation.RecordValidators(cfg, nil),
		logger:    logger,
		lock:      NewFileLock(),
		slots:     make(chan struct{}, constants.MaxConcurrentOperations),
	}
}

// # Read Path

// Read streams the backing file and returns its contents partitioned into
// accepted records, rejected rows, and duplicate identifiers.
//
// A missing file is not fatal: the resolver fallback chain runs once and the
// read is retried, yielding an empty (freshly initialized) result at worst.
// Unreadable files and uncreatable directories surface as a fatal outcome
// plus an error; validation and duplicate conditions are always returned as
// data, never as errors.
func (s *Store) Read(ctx context.Context) (*FileAccessOutcome, error) {
	return dispatch(ctx, s.slots, func() (*FileAccessOutcome, error) {
		return s.read(s.resolver.Path(), true)
	})
}

// ReadFile reads an arbitrary roster-format file, such as a bulk-import
// source. The resolver fallback chain is not applied: a missing source file
// is a fatal outcome.
func (s *Store) ReadFile(ctx context.Context, path string) (*FileAccessOutcome, error) {
	return dispatch(ctx, s.slots, func() (*FileAccessOutcome, error) {
		return s.read(path, false)
	})
}

func (s *Store) read(path string, allowInit bool) (*FileAccessOutcome, error) {
	lines, err := s.readLines(path, allowInit)
	if err != nil {
		s.logger.Error("store_read_failed", slog.Any("error", err))
		return fatalOutcome(err.Error()), err
	}

	// The read lock has been released; row validation happens lock-free.
	outcome := &FileAccessOutcome{}
	seen := make(map[string]int) // employee ID → index in Accepted

	for _, line := range lines {
		fields, serr := record.SplitLine(line.text)
		if serr != nil {
			outcome.Rejected = append(outcome.Rejected, record.RejectedRow{
				Line:   line.num,
				Raw:    line.text,
				Reason: serr.Error(),
			})
			continue
		}

		raw := record.RawMap(fields)
		result := s.service.Run(raw, s.validator)
		if !result.Valid() {
			outcome.Rejected = append(outcome.Rejected, record.RejectedRow{
				Line:   line.num,
				Raw:    line.text,
				Reason: result.Summary(),
			})
			continue
		}

		rec, berr := record.FromValues(result.Values, raw[constants.ColRegisteredAt])
		if berr != nil {
			outcome.Rejected = append(outcome.Rejected, record.RejectedRow{
				Line:   line.num,
				Raw:    line.text,
				Reason: berr.Error(),
			})
			continue
		}

		if _, dup := seen[rec.EmployeeID]; dup {
			outcome.Duplicates = append(outcome.Duplicates, Duplicate{
				EmployeeID: rec.EmployeeID,
				Line:       line.num,
				Record:     rec,
			})
			continue
		}

		seen[rec.EmployeeID] = len(outcome.Accepted)
		outcome.Accepted = append(outcome.Accepted, rec)
	}

	s.logger.Debug("store_read_complete",
		slog.Int("accepted", len(outcome.Accepted)),
		slog.Int("rejected", len(outcome.Rejected)),
		slog.Int("duplicates", len(outcome.Duplicates)),
	)
	return outcome, nil
}

// readLines captures the raw data lines of the backing file under the shared
// lock. The lock is scoped to this function so it is guaranteed to be
// released before any validation work starts.
func (s *Store) readLines(path string, allowInit bool) ([]rawLine, error) {
	if _, err := os.Stat(path); allowInit && fserr.IsNotExist(err) {
		// Missing file at read time is not fatal: run the fallback chain
		// once under the exclusive lock, then retry the read below.
		if ierr := s.initialize(); ierr != nil {
			return nil, ierr
		}
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fserr.Wrap(err, "stat the backing file")
	}
	if info.IsDir() {
		return nil, apperr.IO("read the backing file", errDirectory(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fserr.Wrap(err, "open the backing file")
	}
	key := s.registry.Register(f)
	defer func() {
		f.Close()
		s.registry.Release(key)
	}()

	var lines []rawLine
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	num := 0
	for scanner.Scan() {
		num++
		if num == 1 {
			// Fixed header row.
			continue
		}
		text := scanner.Text()
		if text == "" {
			continue
		}
		lines = append(lines, rawLine{num: num, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, apperr.IO("read the backing file", err)
	}

	return lines, nil
}

// initialize runs the resolver fallback chain under the exclusive lock.
func (s *Store) initialize() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	_, err := s.resolver.Resolve()
	return err
}

// # Write Path

// Write replaces the entire backing file with the header plus the given
// records. With appendMode true, used by incremental-import flows, the rows
// are appended instead and the header is only written when the file is new.
func (s *Store) Write(ctx context.Context, records []*record.Record, appendMode bool) error {
	_, err := dispatch(ctx, s.slots, func() (*FileAccessOutcome, error) {
		return nil, s.write(records, appendMode)
	})
	return err
}

// WriteFile writes the header plus the given records to an arbitrary
// roster-format file, such as a bulk-export target. The backing-file lock is
// not taken: the target is outside the store's own file.
func (s *Store) WriteFile(ctx context.Context, path string, records []*record.Record) error {
	_, err := dispatch(ctx, s.slots, func() (*FileAccessOutcome, error) {
		return nil, s.writeTo(path, records)
	})
	return err
}

func (s *Store) writeTo(path string, records []*record.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fserr.Wrap(err, "create the export file")
	}
	key := s.registry.Register(f)
	defer func() {
		f.Close()
		s.registry.Release(key)
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(record.HeaderLine() + "\n"); err != nil {
		return apperr.IO("write the export file", err)
	}
	for _, line := range slice.Map(records, record.MarshalLine) {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return apperr.IO("write the export file", err)
		}
	}
	if err := w.Flush(); err != nil {
		return apperr.IO("flush the export file", err)
	}
	return nil
}

func (s *Store) write(records []*record.Record, appendMode bool) error {
	path := s.resolver.Path()

	s.lock.Lock()
	defer s.lock.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperr.IO("create the data directory", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	writeHeader := true
	if appendMode {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		if info, err := os.Stat(path); err == nil && info.Size() > 0 {
			writeHeader = false
		}
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fserr.Wrap(err, "open the backing file for writing")
	}
	key := s.registry.Register(f)
	defer func() {
		f.Close()
		s.registry.Release(key)
	}()

	w := bufio.NewWriter(f)
	if writeHeader {
		if _, err := w.WriteString(record.HeaderLine() + "\n"); err != nil {
			return apperr.IO("write the backing file", err)
		}
	}
	for _, line := range slice.Map(records, record.MarshalLine) {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return apperr.IO("write the backing file", err)
		}
	}
	if err := w.Flush(); err != nil {
		return apperr.IO("flush the backing file", err)
	}
	if err := f.Sync(); err != nil {
		return apperr.IO("sync the backing file", err)
	}

	s.logger.Debug("store_write_complete",
		slog.Int("records", len(records)),
		slog.Bool("append", appendMode),
	)
	return nil
}

// # Dispatch

// dispatch runs op as its own unit of work, bounded by the store's worker
// slots, and blocks the caller until it completes or ctx is done. Each unit
// carries the default operation deadline on top of whatever deadline the
// caller's context already has.
func dispatch(ctx context.Context, slots chan struct{}, op func() (*FileAccessOutcome, error)) (*FileAccessOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultOperationTimeout)
	defer cancel()

	select {
	case slots <- struct{}{}:
	case <-ctx.Done():
		return nil, apperr.Internal(ctx.Err())
	}

	type result struct {
		out *FileAccessOutcome
		err error
	}
	done := make(chan result, 1)

	go func() {
		defer func() { <-slots }()
		out, err := op()
		done <- result{out: out, err: err}
	}()

	select {
	case r := <-done:
		return r.out, r.err
	case <-ctx.Done():
		// The unit of work is never cancelled mid-flight; the caller just
		// stops waiting for it.
		return nil, apperr.Internal(ctx.Err())
	}
}
