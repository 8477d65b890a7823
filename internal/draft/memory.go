package draft

import (
	"context"
	"sync"

	"github.com/sellandashawn/fignite/internal/domain"
)

// MemoryStore is a process-local Store used in tests and when no Redis
// address is configured.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string]domain.Draft
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		slots: make(map[string]domain.Draft),
	}
}

func (s *MemoryStore) Save(_ context.Context, key string, d domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = d

	return nil
}

func (s *MemoryStore) Read(_ context.Context, key string) (domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.slots[key]
	if !ok {
		return domain.Draft{}, ErrNotFound
	}

	return d, nil
}

func (s *MemoryStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)

	return nil
}
