package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/riskibarqy/demonlist/internal/domain/txn"
)

var errReadOnly = errors.New("memory store: write attempted in read unit")

// Store keeps the whole demonlist in process. Committed datasets are never
// mutated: reads run against the dataset current when they start, writes run
// against a private clone that replaces the current dataset only when the
// unit of work succeeds.
type Store struct {
	mu      sync.RWMutex
	current *dataset

	writeMu sync.Mutex
}

var _ txn.Manager = (*Store)(nil)

func NewStore(seed Seed) *Store {
	return &Store{current: seed.build()}
}

func (s *Store) Read(ctx context.Context, fn txn.Func) error {
	s.mu.RLock()
	snapshot := s.current
	s.mu.RUnlock()

	return fn(ctx, snapshot.repositories(true))
}

// Write serializes every write unit regardless of lock, which is stricter
// than the per-scope exclusion the interface promises.
func (s *Store) Write(ctx context.Context, _ txn.Lock, fn txn.Func) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	draft := s.current.clone()
	s.mu.RUnlock()

	if err := fn(ctx, draft.repositories(false)); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = draft
	s.mu.Unlock()
	return nil
}
