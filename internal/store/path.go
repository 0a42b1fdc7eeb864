// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package store

import (
	"bufio"
	"embed"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meibo-app/meibo/internal/platform/apperr"
	"github.com/meibo-app/meibo/internal/platform/config"
	"github.com/meibo-app/meibo/internal/record"
)

// seedFS bundles the read-only initial dataset shipped with the binary.
//
//go:embed seed/roster_seed.csv
var seedFS embed.FS

const seedName = "seed/roster_seed.csv"

// PathResolver determines and, on first use, materializes the backing file.
//
// # Fallback Chain
//
// 1. An existing regular file at the configured location is used as-is.
// 2. Otherwise the embedded seed dataset is copied in, decoded as UTF-8 and
// written line-by-line so a failed copy never leaves a half-written file
// followed by a successful-looking return.
// 3. With no seed available, a new file containing only the header row is
// created.
//
// A directory-creation failure is fatal: the store cannot operate without a
// target path, so the error is propagated, never retried.
type PathResolver struct {
	dataDir  string
	fileName string
	logger   *slog.Logger
}

// NewPathResolver creates a resolver for the configured data location.
func NewPathResolver(cfg *config.Config, logger *slog.Logger) *PathResolver {
	return &PathResolver{
		dataDir:  cfg.DataDir,
		fileName: cfg.FileName,
		logger:   logger,
	}
}

// Path returns the backing file's location without touching the filesystem.
func (p *PathResolver) Path() string {
	return filepath.Join(p.dataDir, p.fileName)
}

// Resolve returns the backing file's path, materializing the file first if
// it does not exist yet.
func (p *PathResolver) Resolve() (string, error) {
	path := p.Path()

	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return path, nil
	}

	if err := os.MkdirAll(p.dataDir, 0o755); err != nil {
		return "", apperr.IO("create the data directory", err)
	}

	if err := p.copySeed(path); err == nil {
		p.logger.Info("backing_file_seeded", slog.String("path", path))
		return path, nil
	}

	if err := p.writeHeaderOnly(path); err != nil {
		return "", err
	}
	p.logger.Info("backing_file_created", slog.String("path", path))
	return path, nil
}

// copySeed copies the embedded seed dataset to path, line by line.
func (p *PathResolver) copySeed(path string) error {
	seed, err := seedFS.Open(seedName)
	if err != nil {
		return err
	}
	defer seed.Close()

	out, err := os.Create(path)
	if err != nil {
		return apperr.IO("create the backing file", err)
	}

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(seed)
	for scanner.Scan() {
		if _, werr := w.WriteString(scanner.Text() + "\n"); werr != nil {
			out.Close()
			os.Remove(path)
			return apperr.IO("copy the seed dataset", werr)
		}
	}
	if serr := scanner.Err(); serr != nil {
		out.Close()
		os.Remove(path)
		return apperr.IO("read the seed dataset", serr)
	}

	if err := w.Flush(); err != nil {
		out.Close()
		os.Remove(path)
		return apperr.IO("flush the backing file", err)
	}
	return out.Close()
}

// writeHeaderOnly creates a fresh backing file containing only the header row.
func (p *PathResolver) writeHeaderOnly(path string) error {
	if err := os.WriteFile(path, []byte(record.HeaderLine()+"\n"), 0o644); err != nil {
		return apperr.IO("create the backing file", err)
	}
	return nil
}
