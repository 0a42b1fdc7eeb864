// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meibo-app/meibo/internal/platform/apperr"
	"github.com/meibo-app/meibo/internal/record"
	"github.com/meibo-app/meibo/internal/store"
)

/*
TestPathResolver_ExistingFile verifies an existing backing file is used as-is.
*/
func TestPathResolver_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "custom content\n")

	resolver := store.NewPathResolver(testConfig(dir), testLogger())
	path, err := resolver.Resolve()
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom content\n", string(data))
}

/*
TestPathResolver_SeedsNewFile verifies the embedded seed dataset materializes
a missing backing file, including the data directory.
*/
func TestPathResolver_SeedsNewFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	resolver := store.NewPathResolver(testConfig(dir), testLogger())
	path, err := resolver.Resolve()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "roster.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, record.HeaderLine(), lines[0])
	assert.Greater(t, len(lines), 1, "seed rows expected after the header")
}

/*
TestPathResolver_DirectoryCreationFailure verifies an uncreatable data
directory is a fatal, propagated error.
*/
func TestPathResolver_DirectoryCreationFailure(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o644))

	// The configured data dir descends through a regular file.
	cfg := testConfig(filepath.Join(blocker, "data"))
	resolver := store.NewPathResolver(cfg, testLogger())

	_, err := resolver.Resolve()
	require.Error(t, err)
	assert.True(t, apperr.IsFatal(err))
}

/*
TestPathResolver_Idempotent verifies a second resolve returns the same path
without rewriting the file.
*/
func TestPathResolver_Idempotent(t *testing.T) {
	dir := t.TempDir()
	resolver := store.NewPathResolver(testConfig(dir), testLogger())

	first, err := resolver.Resolve()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(first, []byte("modified\n"), 0o644))

	second, err := resolver.Resolve()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "modified\n", string(data), "existing file must not be reseeded")
}
