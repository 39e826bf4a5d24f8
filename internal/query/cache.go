// Package query provides a keyed cache around remote fetch calls with
// in-flight deduplication. It is deliberately not a full cache: entries have
// no TTL and no eviction policy, and they live until explicitly invalidated
// or refetched.
//
// Write operations elsewhere in the codebase bypass this cache entirely and
// do NOT invalidate read entries. Callers that mutate a resource must call
// Refetch (or Invalidate) on the affected key themselves; a key that is
// never refetched after a write serves stale data indefinitely.
package query

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"shophub/internal/logging"
)

// FetchFunc loads the value for one query identity.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Cache memoizes fetch results by query identity and collapses concurrent
// identical fetches into a single network round trip.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
	group   singleflight.Group
}

// NewCache returns an empty cache.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[string]T)}
}

// Key builds a query identity from its parameters, e.g.
// Key("products", 5, "desc") -> "products/5/desc".
func Key(parts ...any) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = fmt.Sprint(p)
	}
	return strings.Join(strs, "/")
}

// Get returns the cached value for key, issuing fetch on a miss. Concurrent
// calls for the same key share one in-flight fetch; the second caller
// attaches to the first caller's request. Errors are not cached - the next
// Get retries.
func (c *Cache[T]) Get(ctx context.Context, key string, fetch FetchFunc[T]) (T, error) {
	c.mu.RLock()
	if v, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		logging.QueryDebug("hit %q", key)
		return v, nil
	}
	c.mu.RUnlock()

	v, err, shared := c.group.Do(key, func() (any, error) {
		// Another caller may have populated the entry while this one
		// waited on the flight group.
		c.mu.RLock()
		if v, ok := c.entries[key]; ok {
			c.mu.RUnlock()
			return v, nil
		}
		c.mu.RUnlock()

		logging.QueryDebug("miss %q, fetching", key)
		result, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = result
		c.mu.Unlock()
		return result, nil
	})
	if shared {
		logging.QueryDebug("attached to in-flight fetch for %q", key)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Refetch drops any cached entry for key and forces a new round trip.
func (c *Cache[T]) Refetch(ctx context.Context, key string, fetch FetchFunc[T]) (T, error) {
	c.group.Forget(key)
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	logging.Query("refetch %q", key)
	return c.Get(ctx, key, fetch)
}

// Invalidate drops the cached entry for key, if any.
func (c *Cache[T]) Invalidate(key string) {
	c.group.Forget(key)
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear drops all cached entries.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]T)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
