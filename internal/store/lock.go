// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package store

import (
	"fmt"
	"sync"
)

// FileLock is the read/write mutual-exclusion lock scoped to one backing
// file instance. Multiple readers may hold it simultaneously; a writer
// excludes all readers and other writers.
//
// # Discipline
//
// Acquire immediately before the I/O section, release via defer. The lock is
// never held across validation or the duplicate-resolution prompt.
// Correctness holds only within a single process instance; there is no
// cross-process locking.
type FileLock struct {
	mu sync.RWMutex
}

// NewFileLock creates an unlocked file lock.
func NewFileLock() *FileLock {
	return &FileLock{}
}

// RLock acquires the shared read lock.
func (l *FileLock) RLock() { l.mu.RLock() }

// RUnlock releases the shared read lock.
func (l *FileLock) RUnlock() { l.mu.RUnlock() }

// Lock acquires the exclusive write lock.
func (l *FileLock) Lock() { l.mu.Lock() }

// Unlock releases the exclusive write lock.
func (l *FileLock) Unlock() { l.mu.Unlock() }

// errDirectory describes a backing-file path that is a directory.
func errDirectory(path string) error {
	return fmt.Errorf("%s is a directory, not a file", path)
}
