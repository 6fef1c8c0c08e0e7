package memory

import (
	"context"
	"sync"

	"github.com/MrSnakeDoc/folio/internal/store"
)

// Backend keeps values in process memory. Used by tests and FOLIO_STORAGE=memory.
type Backend struct {
	mu     sync.RWMutex
	values map[string][]byte
	puts   int
}

func New() *Backend {
	return &Backend{values: make(map[string][]byte)}
}

func (b *Backend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.values[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (b *Backend) Put(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.values[key] = append([]byte(nil), value...)
	b.puts++
	return nil
}

// Puts returns how many writes the backend has accepted.
func (b *Backend) Puts() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.puts
}

func (b *Backend) Ping(context.Context) error { return nil }
func (b *Backend) Close() error               { return nil }
