// Package collections implements storage.Store on top of a storage.Provider
// that only knows how to get and set whole collections.
//
// # Limitation
//
// An update is three independent writes (groups, members, tasks, in that
// order). If the provider fails part way, the collections already written
// stay written and the store is left mutually inconsistent, for example a
// group whose TaskCount includes a task that was never saved. This package
// does not detect or repair that state. Use sqlstore when updates must be
// all-or-nothing.
package collections

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmynk/teamtally/internal/models"
	"github.com/mmynk/teamtally/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store over a storage.Provider.
type Store struct {
	mu       sync.Mutex
	provider storage.Provider
}

// New creates a Store that persists through provider.
func New(provider storage.Provider) *Store {
	return &Store{provider: provider}
}

// Load reads all three collections.
func (s *Store) Load(ctx context.Context) (*storage.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Update reads all collections, applies fn and writes each collection back.
func (s *Store) Update(ctx context.Context, fn func(*storage.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}

	for _, name := range storage.AllCollections {
		var records any
		switch name {
		case storage.Groups:
			records = nonNil(snap.Groups)
		case storage.Members:
			records = nonNil(snap.Members)
		case storage.Tasks:
			records = nonNil(snap.Tasks)
		}
		data, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", name, err)
		}
		if err := s.provider.SaveCollection(ctx, name, data); err != nil {
			return fmt.Errorf("failed to save %s: %w", name, err)
		}
	}
	return nil
}

// Close is a no-op; the provider owns its resources.
func (s *Store) Close() error {
	return nil
}

func (s *Store) load(ctx context.Context) (*storage.Snapshot, error) {
	snap := &storage.Snapshot{}
	if err := loadInto(ctx, s.provider, storage.Groups, &snap.Groups); err != nil {
		return nil, err
	}
	if err := loadInto(ctx, s.provider, storage.Members, &snap.Members); err != nil {
		return nil, err
	}
	if err := loadInto(ctx, s.provider, storage.Tasks, &snap.Tasks); err != nil {
		return nil, err
	}
	return snap, nil
}

// loadInto decodes one collection. A missing collection is empty; so is a
// corrupt one, which is logged and will be overwritten on the next update.
func loadInto[T any](ctx context.Context, p storage.Provider, name storage.Collection, dst *[]T) error {
	data, err := p.LoadCollection(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", name, err)
	}
	if len(data) == 0 {
		*dst = nil
		return nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("Discarding unreadable collection", "collection", name, "error", err)
		*dst = nil
		return nil
	}
	*dst = records
	return nil
}

func nonNil[T models.Group | models.Member | models.Task](records []T) []T {
	if records == nil {
		return []T{}
	}
	return records
}
