package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// cache effectiveness. It is intentionally simple so tests can assert against
// it without a metrics backend; when otel instruments are attached the same
// events are exported.
type Recorder struct {
	mu       sync.Mutex
	provider map[string]*providerStats
	cache    map[string]*cacheStats
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		provider: make(map[string]*providerStats),
		cache:    make(map[string]*cacheStats),
		otel:     otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureProvider(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit.
func (r *Recorder) RecordRateLimit(provider string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureProvider(provider).rateLimitHits++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider)
	}
}

// RecordCacheLookup tracks a cache hit or miss for the given lookup kind
// (e.g. "games", "odds").
func (r *Recorder) RecordCacheLookup(lookup string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureCache(lookup)
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(lookup, hit)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderSnapshot is a copy of the current stats for one provider.
type ProviderSnapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastCallLatency time.Duration
}

// CacheSnapshot is a copy of the current stats for one lookup kind.
type CacheSnapshot struct {
	Hits   int
	Misses int
}

func (r *Recorder) ProviderSnapshot(provider string) ProviderSnapshot {
	if r == nil {
		return ProviderSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.ensureProvider(provider)
	return ProviderSnapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) CacheSnapshot(lookup string) CacheSnapshot {
	if r == nil {
		return CacheSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.ensureCache(lookup)
	return CacheSnapshot{Hits: stats.hits, Misses: stats.misses}
}

func (r *Recorder) ensureProvider(provider string) *providerStats {
	stats, ok := r.provider[provider]
	if !ok {
		stats = &providerStats{}
		r.provider[provider] = stats
	}
	return stats
}

func (r *Recorder) ensureCache(lookup string) *cacheStats {
	stats, ok := r.cache[lookup]
	if !ok {
		stats = &cacheStats{}
		r.cache[lookup] = stats
	}
	return stats
}
