package manifold

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// cacheEntry stores one resolved closure with an optional expiry.
type cacheEntry struct {
	resolved  []ResolvedAttribute
	expiresAt time.Time // zero means no expiry
}

// ClosureCache memoizes closures keyed on the identity of the root
// set. Resolution is pure, so caching is purely a performance layer:
// switching between manifest views recomputes the same closures over
// and over on a large schema, and the cache makes the repeat visits
// O(1).
//
// The cache is exact-match only and safe for concurrent use. Entries
// grow unbounded within the TTL window; Clear discards everything when
// a new schema is loaded.
type ClosureCache struct {
	mu    sync.RWMutex
	items map[string]cacheEntry
	ttl   time.Duration // 0 means no expiry
}

// CacheOption configures a ClosureCache.
type CacheOption func(*ClosureCache)

// WithTTL sets the time-to-live for cache entries. A TTL of 0 (the
// default) means entries never expire within the cache's lifetime,
// which suits the immutable-per-load schema model.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *ClosureCache) {
		c.ttl = ttl
	}
}

// NewClosureCache creates an empty closure cache.
func NewClosureCache(opts ...CacheOption) *ClosureCache {
	c := &ClosureCache{
		items: make(map[string]cacheEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CachedClosureFor resolves the combined closure of the manifests,
// consulting the cache first. The key is canonical over the root set,
// so manifest order does not fragment the cache.
//
// The returned slice is shared between callers and must be treated as
// read-only, matching the read-only contract of resolution output.
func (r *Resolver) CachedClosureFor(cache *ClosureCache, manifests ...Manifest) []ResolvedAttribute {
	key := manifestSetKey(manifests)

	if resolved, ok := cache.get(key); ok {
		return resolved
	}

	resolved := r.ClosureFor(manifests...)
	cache.set(key, resolved)
	return resolved
}

// manifestSetKey builds the canonical cache key for a root set: each
// manifest's name with its root ids, sorted so that order of the
// arguments does not matter.
func manifestSetKey(manifests []Manifest) string {
	parts := make([]string, 0, len(manifests))
	for _, m := range manifests {
		roots := make([]string, 0, len(m.Roots))
		for _, id := range m.Roots {
			roots = append(roots, id.String())
		}
		sort.Strings(roots)
		parts = append(parts, m.Name.String()+"="+strings.Join(roots, ","))
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}

func (c *ClosureCache) get(key string) ([]ResolvedAttribute, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}

	return entry.resolved, true
}

func (c *ClosureCache) set(key string, resolved []ResolvedAttribute) {
	entry := cacheEntry{resolved: resolved}
	if c.ttl > 0 {
		entry.expiresAt = time.Now().Add(c.ttl)
	}

	c.mu.Lock()
	c.items[key] = entry
	c.mu.Unlock()
}

// Size returns the number of cached closures.
func (c *ClosureCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Clear removes all entries. Call it after loading a new schema; cached
// closures from the previous schema are not valid against the new one.
func (c *ClosureCache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]cacheEntry)
	c.mu.Unlock()
}
