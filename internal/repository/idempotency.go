package repository

import (
	"context"
	"sync"
	"time"

	"github.com/benx421/bank-ledger/internal/models"
)

type idempotencyEntryKey struct {
	key  string
	path string
}

// IdempotencyRepository keeps replayable responses in memory
type IdempotencyRepository struct {
	now     func() time.Time
	entries map[idempotencyEntryKey]models.IdempotencyKey
	ttl     time.Duration
	mu      sync.Mutex
}

// NewIdempotencyRepository creates a repository whose entries expire after
// ttl. A ttl of zero keeps entries forever.
func NewIdempotencyRepository(ttl time.Duration) *IdempotencyRepository {
	return &IdempotencyRepository{
		entries: make(map[idempotencyEntryKey]models.IdempotencyKey),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the stored response for key and path, or nil when there is none.
func (r *IdempotencyRepository) Get(_ context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := idempotencyEntryKey{key: key, path: requestPath}
	entry, ok := r.entries[k]
	if !ok {
		return nil, nil
	}

	if r.expired(entry) {
		delete(r.entries, k)
		return nil, nil
	}

	return &entry, nil
}

// Store saves a response. The first response stored for a key wins.
func (r *IdempotencyRepository) Store(_ context.Context, idemKey *models.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := idempotencyEntryKey{key: idemKey.Key, path: idemKey.RequestPath}
	if existing, ok := r.entries[k]; ok && !r.expired(existing) {
		return nil
	}

	entry := *idemKey
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now()
	}
	r.entries[k] = entry
	return nil
}

func (r *IdempotencyRepository) expired(entry models.IdempotencyKey) bool {
	return r.ttl > 0 && r.now().Sub(entry.CreatedAt) > r.ttl
}
