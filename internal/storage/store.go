// Package storage provides abstractions for persistent data storage.
package storage

import "context"

// Collection names one of the three persisted record sequences.
type Collection string

const (
	Groups  Collection = "groups"
	Members Collection = "members"
	Tasks   Collection = "tasks"
)

// AllCollections lists the collections in the order they are written.
var AllCollections = []Collection{Groups, Members, Tasks}

// Store defines the interface for tracker storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// Redis, in-memory) without changing the tracker.
type Store interface {
	// Load returns a copy of all three collections.
	Load(ctx context.Context) (*Snapshot, error)

	// Update loads all collections, calls fn with them and persists the
	// result as full replacement collections. If fn returns an error
	// nothing is written and the error is returned unchanged.
	//
	// Whether the three writes are atomic is up to the implementation;
	// see collections.Store and sqlstore.Store.
	Update(ctx context.Context, fn func(*Snapshot) error) error

	// Close releases any resources held by the store.
	Close() error
}

// Provider is a key-based store of whole collections. LoadCollection returns
// the JSON array last saved under name, or nil if nothing was saved.
// SaveCollection replaces the collection; there is no merge.
type Provider interface {
	LoadCollection(ctx context.Context, name Collection) ([]byte, error)
	SaveCollection(ctx context.Context, name Collection, data []byte) error
}
