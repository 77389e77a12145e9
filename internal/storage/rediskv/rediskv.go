// Package rediskv provides a storage.Provider backed by Redis.
// Each collection is stored as one JSON string under "<prefix>:<collection>".
package rediskv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mmynk/teamtally/internal/storage"
)

// DefaultPrefix is used when no key prefix is configured.
const DefaultPrefix = "teamtally"

// Ensure Provider implements storage.Provider
var _ storage.Provider = (*Provider)(nil)

// Provider implements storage.Provider using Redis GET/SET.
type Provider struct {
	client *redis.Client
	prefix string
}

// New creates a Provider using an existing client.
func New(client *redis.Client, prefix string) *Provider {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Provider{client: client, prefix: prefix}
}

// Open connects to the Redis server at url (redis://…) and verifies the
// connection.
func Open(ctx context.Context, url, prefix string) (*Provider, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return New(client, prefix), nil
}

// LoadCollection returns the stored collection, or nil if the key is absent.
func (p *Provider) LoadCollection(ctx context.Context, name storage.Collection) ([]byte, error) {
	data, err := p.client.Get(ctx, p.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", name, err)
	}
	return data, nil
}

// SaveCollection replaces the stored collection.
func (p *Provider) SaveCollection(ctx context.Context, name storage.Collection, data []byte) error {
	if err := p.client.Set(ctx, p.key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", name, err)
	}
	return nil
}

// Close closes the underlying client.
func (p *Provider) Close() error {
	return p.client.Close()
}

func (p *Provider) key(name storage.Collection) string {
	return p.prefix + ":" + string(name)
}
