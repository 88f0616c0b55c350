package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/arenahub/prerender/internal/logger"
)

func testLogger() *slog.Logger {
	zl := zerolog.New(io.Discard)
	return logger.NewSlog(&zl)
}

func TestStore_ExpiryOnRead(t *testing.T) {
	now := time.Now()
	s := New()
	s.now = func() time.Time { return now }

	s.Set("k", "v", time.Minute)

	if v, ok := s.Get("k"); !ok || v != "v" {
		t.Fatalf("expected live hit, got %v %v", v, ok)
	}

	now = now.Add(time.Minute + time.Millisecond)
	if _, ok := s.Get("k"); ok {
		t.Fatal("expected miss after expiry")
	}
	if s.Len() != 0 {
		t.Fatalf("expired entry not evicted, len=%d", s.Len())
	}
}

func TestStore_CachedNilIsAHit(t *testing.T) {
	s := New()
	s.Set("k", nil, time.Minute)
	v, ok := s.Get("k")
	if !ok {
		t.Fatal("cached nil must be a hit")
	}
	if v != nil {
		t.Fatalf("got %v, want nil", v)
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	s := New()
	s.Set("k", 1, time.Minute)
	s.Set("k", 2, time.Minute)
	if v, _ := s.Get("k"); v != 2 {
		t.Fatalf("got %v, want 2", v)
	}
}

func TestFetch_ExpiryTriggersExactlyOneRefetch(t *testing.T) {
	now := time.Now()
	s := New()
	s.now = func() time.Time { return now }
	f := NewFetcher(s, testLogger())
	opt := Options{TTL: time.Minute, ErrorTTL: time.Second}

	var calls int32
	fn := func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return "data", nil
	}

	for range 3 {
		if v := f.Fetch(context.Background(), "t", "k", fn, opt); v != "data" {
			t.Fatalf("got %v", v)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("fetcher called %d times before expiry, want 1", n)
	}

	now = now.Add(time.Minute + time.Millisecond)
	for range 3 {
		f.Fetch(context.Background(), "t", "k", fn, opt)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("fetcher called %d times after expiry, want 2", n)
	}
}

func TestFetch_FailureIsStickyForErrorTTL(t *testing.T) {
	now := time.Now()
	s := New()
	s.now = func() time.Time { return now }
	f := NewFetcher(s, testLogger())
	opt := Options{TTL: time.Minute, ErrorTTL: 10 * time.Second}

	var calls int32
	fn := func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return nil, errors.New("upstream down")
	}

	for range 5 {
		if v := f.Fetch(context.Background(), "t", "k", fn, opt); v != nil {
			t.Fatalf("got %v, want nil", v)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("fetcher retried %d times inside error window, want 1", n)
	}

	now = now.Add(10*time.Second + time.Millisecond)
	f.Fetch(context.Background(), "t", "k", fn, opt)
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("fetcher called %d times after error window, want 2", n)
	}
}

// cacheResultCount reads seo_cache_results_total for one outcome/kind pair
// from the default registry.
func cacheResultCount(t *testing.T, outcome, kind string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "seo_cache_results_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["outcome"] == outcome && labels["kind"] == kind {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestFetch_CollapsedCallersShareOneMiss(t *testing.T) {
	s := New()
	f := NewFetcher(s, testLogger())
	opt := Options{TTL: time.Minute, ErrorTTL: time.Second}
	const kind = "collapse-metrics"

	release := make(chan struct{})
	fn := func(context.Context) (any, error) {
		<-release
		return "data", nil
	}

	const n = 8
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Fetch(context.Background(), kind, "k", fn, opt)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := cacheResultCount(t, "miss", kind); got != 1 {
		t.Fatalf("collapsed misses counted %v times, want 1", got)
	}

	f.Fetch(context.Background(), kind, "k", fn, opt)
	if got := cacheResultCount(t, "hit", kind); got < 1 {
		t.Fatalf("cached read not counted as a hit, got %v", got)
	}
	if got := cacheResultCount(t, "miss", kind); got != 1 {
		t.Fatalf("cached read recounted as a miss, got %v", got)
	}
}

func TestFetch_ConcurrentMissesCollapse(t *testing.T) {
	s := New()
	f := NewFetcher(s, testLogger())
	opt := Options{TTL: time.Minute, ErrorTTL: time.Second}

	var calls int32
	release := make(chan struct{})
	fn := func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "data", nil
	}

	const n = 8
	var wg sync.WaitGroup
	results := make([]any, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = f.Fetch(context.Background(), "t", "k", fn, opt)
		}()
	}

	// give every goroutine time to reach the flight
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("%d upstream calls for concurrent misses, want 1", got)
	}
	for i, v := range results {
		if v != "data" {
			t.Fatalf("result %d = %v, want data", i, v)
		}
	}
}
