package macrostate

import (
	"context"
	"strings"
	"sync"

	gocache "github.com/patrickmn/go-cache"
)

type memoryStore struct {
	cache *gocache.Cache
	mu    sync.Mutex
}

func newMemoryStore() Store {
	// Build state never expires on its own; stale epochs simply stop being
	// addressed.
	return &memoryStore{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

func (s *memoryStore) Driver() Driver {
	return DriverMemory
}

func (s *memoryStore) Get(_ context.Context, name string) ([]byte, bool, error) {
	item, ok := s.cache.Get(name)
	if !ok {
		return nil, false, nil
	}
	body, ok := item.([]byte)
	if !ok {
		return nil, false, nil
	}
	clone := make([]byte, len(body))
	copy(clone, body)
	return clone, true, nil
}

func (s *memoryStore) Set(_ context.Context, name string, value []byte) error {
	clone := make([]byte, len(value))
	copy(clone, value)
	s.cache.Set(name, clone, gocache.NoExpiration)
	return nil
}

func (s *memoryStore) Append(ctx context.Context, name string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, _, err := s.Get(ctx, name)
	if err != nil {
		return err
	}
	s.cache.Set(name, append(existing, value...), gocache.NoExpiration)
	return nil
}

func (s *memoryStore) Delete(_ context.Context, name string) error {
	s.cache.Delete(name)
	return nil
}

func (s *memoryStore) Flush(_ context.Context) error {
	for name := range s.cache.Items() {
		if strings.HasPrefix(name, statePrefix) {
			s.cache.Delete(name)
		}
	}
	return nil
}
