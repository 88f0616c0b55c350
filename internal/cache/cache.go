// Package cache implements the in-memory TTL store backing SEO enrichment.
//
// The key space is small and bounded (regions x page kinds plus the
// characters crawlers actually visit), so there is no size cap and no
// background sweeper. Eviction is lazy: an expired entry is removed the
// next time its key is read. That read-side eviction is what keeps a
// cached upstream failure from being served past its error window.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/arenahub/prerender/internal/core/observability"
)

type entry struct {
	value     any
	expiresAt time.Time
}

type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time // for tests
}

func New() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the live value for key. An expired entry is deleted as a side
// effect and reported as a miss. A cached nil is a valid hit.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set overwrites unconditionally.
func (s *Store) Set(key string, v any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: v, expiresAt: s.now().Add(ttl)}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

type Options struct {
	TTL      time.Duration
	ErrorTTL time.Duration
}

// Fetcher wraps a Store with the fetch-through policy used by every
// enrichment call: hit short-circuits, miss fetches once (concurrent misses
// for the same key are collapsed), success is cached for TTL, failure is
// cached as nil for the shorter ErrorTTL so a broken upstream is retried at
// a bounded rate instead of per request.
type Fetcher struct {
	store  *Store
	logger *slog.Logger
	sf     singleflight.Group
}

func NewFetcher(store *Store, logger *slog.Logger) *Fetcher {
	return &Fetcher{store: store, logger: logger}
}

func (f *Fetcher) Store() *Store { return f.store }

// Fetch never returns an error: an upstream failure degrades to nil.
// kind labels the cache metrics (player, ladder, cutoffs, meta).
func (f *Fetcher) Fetch(ctx context.Context, kind, key string, fn func(context.Context) (any, error), opt Options) any {
	if v, ok := f.store.Get(key); ok {
		observability.IncCacheHit(kind)
		return v
	}

	v, _, _ := f.sf.Do(key, func() (any, error) {
		// another flight may have filled the key while we queued
		if v, ok := f.store.Get(key); ok {
			observability.IncCacheHit(kind)
			return v, nil
		}
		// a miss is only a miss once it actually reaches the fetcher;
		// callers collapsed into this flight share its single count
		observability.IncCacheMiss(kind)
		v, err := fn(ctx)
		if err != nil {
			f.logger.Warn("enrichment fetch failed", "kind", kind, "key", key, "err", err)
			observability.IncCacheError(kind)
			f.store.Set(key, nil, opt.ErrorTTL)
			return nil, nil
		}
		f.store.Set(key, v, opt.TTL)
		return v, nil
	})
	return v
}
