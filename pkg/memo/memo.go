// Package memo provides single-flight memoized values.
package memo

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Keyed memoizes one value per key. Concurrent first callers for a key share a single
// computation; failures are not cached so a later call retries.
type Keyed[K comparable, V any] struct {
	compute func(context.Context, K) (V, error)

	group  singleflight.Group
	mu     sync.RWMutex
	values map[K]V
}

// NewKeyed constructs a Keyed memo around compute.
func NewKeyed[K comparable, V any](compute func(context.Context, K) (V, error)) *Keyed[K, V] {
	return &Keyed[K, V]{
		compute: compute,
		values:  make(map[K]V),
	}
}

// Get returns the memoized value for key, computing it at most once.
func (m *Keyed[K, V]) Get(ctx context.Context, key K) (V, error) {
	if v, ok := m.lookup(key); ok {
		return v, nil
	}

	res, err, _ := m.group.Do(fmt.Sprint(key), func() (any, error) {
		if v, ok := m.lookup(key); ok {
			return v, nil
		}
		v, err := m.compute(ctx, key)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.values[key] = v
		m.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

func (m *Keyed[K, V]) lookup(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Value is a single memoized value.
type Value[V any] struct {
	keyed *Keyed[struct{}, V]
}

// NewValue constructs a Value around compute.
func NewValue[V any](compute func(context.Context) (V, error)) *Value[V] {
	return &Value[V]{
		keyed: NewKeyed(func(ctx context.Context, _ struct{}) (V, error) {
			return compute(ctx)
		}),
	}
}

// Get returns the memoized value, computing it at most once.
func (v *Value[V]) Get(ctx context.Context) (V, error) {
	return v.keyed.Get(ctx, struct{}{})
}
