package collections

import (
	"context"
	"sync"

	"github.com/mmynk/teamtally/internal/storage"
)

// Ensure MemoryProvider implements storage.Provider
var _ storage.Provider = (*MemoryProvider)(nil)

// MemoryProvider keeps collections in process memory.
type MemoryProvider struct {
	mu   sync.RWMutex
	data map[storage.Collection][]byte
}

// NewMemoryProvider creates an empty MemoryProvider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{data: make(map[storage.Collection][]byte)}
}

// LoadCollection returns a copy of the stored collection, or nil.
func (p *MemoryProvider) LoadCollection(_ context.Context, name storage.Collection) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	data, ok := p.data[name]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

// SaveCollection replaces the stored collection.
func (p *MemoryProvider) SaveCollection(_ context.Context, name storage.Collection, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data[name] = append([]byte(nil), data...)
	return nil
}
