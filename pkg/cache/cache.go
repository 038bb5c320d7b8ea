package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clima-api/pkg/log"
)

// Policy controls the lifetime of one cache entry. An entry younger than
// StaleAfter is served without refetching; between StaleAfter and EvictAfter
// it is still served, but a read triggers a background refresh; past
// EvictAfter the sweep discards it.
type Policy struct {
	StaleAfter time.Duration
	EvictAfter time.Duration
}

// NewPolicy creates a policy with the given freshness window and eviction floor.
func NewPolicy(staleAfter, evictAfter time.Duration) Policy {
	return Policy{StaleAfter: staleAfter, EvictAfter: evictAfter}
}

// Loader fetches the value for a key when the cache has nothing fresh.
type Loader func(ctx context.Context) (any, error)

// pending is the shared handle for one in-flight load. Every caller waiting
// on the same key blocks on done and reads the same outcome.
type pending struct {
	done  chan struct{}
	value any
	err   error
}

type entry struct {
	value     any
	hasValue  bool
	fetchedAt time.Time
	policy    Policy
	// pending serializes loads per key: a load starts only while pending is
	// nil and is cleared under mu before its result is applied, so an older
	// load can never overwrite a newer one.
	pending *pending
}

// Cache is an in-process keyed cache with request deduplication and
// stale-while-revalidate semantics. It is written only by its own loaders;
// consumers never mutate returned values.
type Cache struct {
	mu            sync.Mutex
	entries       map[string]*entry
	policies      map[string]Policy
	defaultPolicy Policy
}

// New creates a cache with the given default policy.
func New(defaultPolicy Policy) *Cache {
	return &Cache{
		entries:       make(map[string]*entry),
		policies:      make(map[string]Policy),
		defaultPolicy: defaultPolicy,
	}
}

// RegisterPolicy sets the policy used for keys under the given cache name.
func (c *Cache) RegisterPolicy(name string, policy Policy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.policies[name] = policy
}

// buildCacheKey constructs the full cache key using name::key format.
func buildCacheKey(name, key string) string {
	return name + "::" + key
}

func (c *Cache) policyFor(name string) Policy {
	if policy, ok := c.policies[name]; ok {
		return policy
	}
	return c.defaultPolicy
}

// GetOrFetch is the single read entry point. It returns a fresh cached value
// directly, serves a stale value while refreshing it in the background, and
// otherwise runs the loader, deduplicating concurrent callers of the same key.
func (c *Cache) GetOrFetch(ctx context.Context, name, key string, loader Loader) (any, error) {
	fullKey := buildCacheKey(name, key)

	c.mu.Lock()
	e, ok := c.entries[fullKey]
	if !ok {
		e = &entry{policy: c.policyFor(name)}
		c.entries[fullKey] = e
	}

	if e.hasValue {
		age := time.Since(e.fetchedAt)
		if age < e.policy.StaleAfter {
			value := e.value
			c.mu.Unlock()
			return value, nil
		}

		// Stale hit: serve what we have, refresh behind the caller's back.
		value := e.value
		if e.pending == nil {
			c.startLoadLocked(ctx, fullKey, e, loader, true)
		}
		c.mu.Unlock()
		return value, nil
	}

	// Nothing cached: join the in-flight load or start one.
	if e.pending == nil {
		c.startLoadLocked(ctx, fullKey, e, loader, false)
	}
	p := e.pending
	c.mu.Unlock()

	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// startLoadLocked launches the loader for an entry. The caller must hold the
// cache mutex. Background loads are detached from the triggering request's
// cancellation so an abandoned page load cannot kill a shared refresh.
func (c *Cache) startLoadLocked(ctx context.Context, fullKey string, e *entry, loader Loader, background bool) {
	p := &pending{done: make(chan struct{})}
	e.pending = p

	loadCtx := context.WithoutCancel(ctx)

	go func() {
		value, err := loader(loadCtx)

		c.mu.Lock()
		if current, ok := c.entries[fullKey]; ok && current == e {
			if e.pending == p {
				e.pending = nil
			}
			if err == nil {
				e.value = value
				e.hasValue = true
				e.fetchedAt = time.Now()
			}
		}
		c.mu.Unlock()

		if err != nil && background {
			log.Warnw("background cache refresh failed", "key", fullKey, "error", err)
		}

		p.value = value
		p.err = err
		close(p.done)
	}()
}

// Invalidate drops the cached value for a key, leaving any in-flight load to
// complete and repopulate it.
func (c *Cache) Invalidate(name, key string) {
	fullKey := buildCacheKey(name, key)
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[fullKey]; ok {
		e.hasValue = false
		e.value = nil
	}
}

// Sweep evicts entries whose age passed the eviction floor. Entries with an
// in-flight load are kept. It returns the number of evicted entries.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	now := time.Now()
	for key, e := range c.entries {
		if e.pending != nil {
			continue
		}
		if !e.hasValue || now.Sub(e.fetchedAt) >= e.policy.EvictAfter {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// String describes the cache for health reporting.
func (c *Cache) String() string {
	return fmt.Sprintf("cache{entries=%d}", c.Len())
}
