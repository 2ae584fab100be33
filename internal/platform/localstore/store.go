// Package localstore persists whole record collections as JSON strings under fixed keys.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Keys used by the storefront collections.
const (
	KeyProducts  = "productos"
	KeyCustomers = "clientes"
	KeyOrders    = "pedidos"
	KeyCart      = "cartHuerto"
	KeyToken     = "token"
)

// ErrNotConfigured is returned by adapters that were built without a backing connection.
var ErrNotConfigured = errors.New("local store not configured")

// Store is a persistent key-value string store.
type Store interface {
	// Get returns the value under key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Load returns the collection stored under key. When the key is missing, empty, or does not
// decode as an array of T, the store is seeded with def and def is returned.
func Load[T any](ctx context.Context, store Store, key string, def []T) ([]T, error) {
	if store == nil {
		return nil, ErrNotConfigured
	}
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", key, err)
	}
	if ok {
		var items []T
		if err := json.Unmarshal([]byte(raw), &items); err == nil && len(items) > 0 {
			return items, nil
		}
	}
	seed := append([]T{}, def...)
	if err := Save(ctx, store, key, seed); err != nil {
		return nil, err
	}
	return seed, nil
}

// Save overwrites key with the serialized collection.
func Save[T any](ctx context.Context, store Store, key string, items []T) error {
	if store == nil {
		return ErrNotConfigured
	}
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := store.Set(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

// Collection binds a key and its seed to a store and serialises load-mutate-save cycles.
type Collection[T any] struct {
	mu       sync.Mutex
	store    Store
	key      string
	defaults func() []T
}

// NewCollection wires a collection. defaults is evaluated lazily each time a seed is needed.
func NewCollection[T any](store Store, key string, defaults func() []T) *Collection[T] {
	if defaults == nil {
		defaults = func() []T { return nil }
	}
	return &Collection[T]{store: store, key: key, defaults: defaults}
}

// Key returns the storage key of the collection.
func (c *Collection[T]) Key() string { return c.key }

// All loads the full collection.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Load(ctx, c.store, c.key, c.defaults())
}

// Mutate loads the collection, applies fn and persists the result. When fn fails nothing is written.
func (c *Collection[T]) Mutate(ctx context.Context, fn func([]T) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	current, err := Load(ctx, c.store, c.key, c.defaults())
	if err != nil {
		return nil, err
	}
	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	if err := Save(ctx, c.store, c.key, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Reset removes the persisted collection so the next load reseeds it.
func (c *Collection[T]) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		return ErrNotConfigured
	}
	return c.store.Delete(ctx, c.key)
}
