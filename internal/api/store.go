// Package api serves a graph model over HTTP.
package api

import (
	"context"
	"sync"
	"time"

	"github.com/mlenz/cellgraph/pkg/model"
	"github.com/mlenz/cellgraph/pkg/observability"
)

// Store holds the served model behind a read-write lock. The model
// itself is not safe for concurrent use, so every handler accesses it
// through Read or Write, and Reload swaps in a freshly loaded model
// under the write lock.
type Store struct {
	mu        sync.RWMutex
	m         *model.Model
	loader    func() (*model.Model, error)
	loadedAt  time.Time
	unobserve func()
}

// NewStore performs the initial load and returns the store.
func NewStore(loader func() (*model.Model, error)) (*Store, error) {
	m, err := loader()
	if err != nil {
		return nil, err
	}
	return &Store{
		m:         m,
		loader:    loader,
		loadedAt:  time.Now(),
		unobserve: observe(m),
	}, nil
}

// observe subscribes a handler that forwards the model's mutation
// events to the registered observability hooks. It returns the
// subscription's cancel function.
func observe(m *model.Model) func() {
	return m.OnEvent(func(ev model.Event) {
		ctx := context.Background()
		switch ev.Name {
		case model.EventNodeAdded:
			observability.Model().OnCellAdded(ctx, "node")
		case model.EventEdgeAdded:
			observability.Model().OnCellAdded(ctx, "edge")
		case model.EventNodeRemoved:
			observability.Model().OnCellRemoved(ctx, "node")
		case model.EventEdgeRemoved:
			observability.Model().OnCellRemoved(ctx, "edge")
		case model.EventBatchStop:
			observability.Model().OnBatch(ctx, ev.Batch)
		}
	})
}

// Read runs fn with shared access to the model. fn must not mutate it.
func (s *Store) Read(fn func(*model.Model)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.m)
}

// Write runs fn with exclusive access to the model.
func (s *Store) Write(fn func(*model.Model) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.m)
}

// Reload re-runs the loader and swaps in the new model. The old model
// keeps serving if loading fails.
func (s *Store) Reload() error {
	m, err := s.loader()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.unobserve()
	s.m = m
	s.loadedAt = time.Now()
	s.unobserve = observe(m)
	s.mu.Unlock()
	return nil
}

// LoadedAt returns when the current model was loaded.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
