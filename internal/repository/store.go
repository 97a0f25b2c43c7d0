package repository

import (
	"context"
	"fmt"
	"sync"
)

// Store serialises access to a Directory. Update runs exclusively, View
// shares the lock with other readers. Every ledger operation must run inside
// one of them so multi-account workflows are never interleaved.
type Store struct {
	dir *Directory
	mu  sync.RWMutex
}

// NewStore wraps dir.
func NewStore(dir *Directory) *Store {
	return &Store{dir: dir}
}

// Update runs fn with exclusive access to the directory.
func (s *Store) Update(fn func(repo CustomerRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.dir)
}

// View runs fn with shared access to the directory. fn must not mutate.
func (s *Store) View(fn func(repo CustomerRepository) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.dir)
}

// PingContext reports whether the store can be read before ctx is done.
func (s *Store) PingContext(ctx context.Context) error {
	acquired := make(chan struct{})
	go func() {
		s.mu.RLock()
		s.mu.RUnlock()
		close(acquired)
	}()

	select {
	case <-acquired:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("ledger store unavailable: %w", ctx.Err())
	}
}
