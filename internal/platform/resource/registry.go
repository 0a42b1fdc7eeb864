// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

/*
Package resource tracks open file handles and streams for orderly shutdown.

Every stream the store opens is registered here under a unique key. Whichever
code path closes the stream, normal or error, removes its entry. Anything
still registered at shutdown is force-closed by [Registry.CloseAll], so an
operation that failed mid-flight cannot leak a descriptor past process exit.

# Architecture

The registry is an explicitly constructed service object passed by reference
to the components that need it. There is no package-level singleton; tests
instantiate isolated registries per test case.
*/
package resource

import (
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Registry is a concurrency-safe map of open resources keyed by unique string.
type Registry struct {
	mu     sync.Mutex
	open   map[string]io.Closer
	logger *slog.Logger
}

// NewRegistry creates an empty resource registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		open:   make(map[string]io.Closer),
		logger: logger,
	}
}

// Register records an open resource and returns the key that must be passed
// to [Registry.Release] once the resource has been closed.
func (r *Registry) Register(c io.Closer) string {
	key := uuid.NewString()

	r.mu.Lock()
	r.open[key] = c
	r.mu.Unlock()

	return key
}

// Release removes a registry entry without closing the resource. It is called
// by the code path that closed the stream itself. Releasing an unknown key is
// a no-op.
func (r *Registry) Release(key string) {
	r.mu.Lock()
	delete(r.open, key)
	r.mu.Unlock()
}

// Count returns the number of currently registered resources.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.open)
}

// CloseAll force-closes every still-registered resource. It is the orderly
// shutdown path's last line of defense against descriptor leaks and returns
// the number of resources it had to close.
func (r *Registry) CloseAll() int {
	r.mu.Lock()
	leaked := make(map[string]io.Closer, len(r.open))
	for key, c := range r.open {
		leaked[key] = c
	}
	r.open = make(map[string]io.Closer)
	r.mu.Unlock()

	for key, c := range leaked {
		if err := c.Close(); err != nil {
			r.logger.Warn("resource_force_close_failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
			continue
		}
		r.logger.Warn("resource_force_closed", slog.String("key", key))
	}

	return len(leaked)
}
