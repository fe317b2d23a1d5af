package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	quotaWaits      int
	lastQuotaWait   time.Duration
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder captures lightweight, in-memory metrics about provider calls, cache lookups and
// fallbacks, mirroring them to OpenTelemetry instruments when those are configured.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*providerStats
	caches    map[string]*cacheStats
	fallbacks map[string]int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:     make(map[string]*providerStats),
		caches:    make(map[string]*cacheStats),
		fallbacks: make(map[string]int),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
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

// RecordQuotaWait tracks time a call spent blocked on the local quota guard.
func (r *Recorder) RecordQuotaWait(provider string, waited time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.quotaWaits++
	if waited > 0 {
		stats.lastQuotaWait = waited
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordQuotaWait(provider, waited)
	}
}

// RecordCacheLookup counts a hit or miss for the named cache.
func (r *Recorder) RecordCacheLookup(cache string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.caches[cache]
	if !ok {
		stats = &cacheStats{}
		r.caches[cache] = stats
	}
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(cache, hit)
	}
}

// RecordFallback counts a response served from static fallback data.
func (r *Recorder) RecordFallback(dataset string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.fallbacks[dataset]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFallback(dataset)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// QuotaWaits returns how many calls went through the quota guard for a provider.
func (r *Recorder) QuotaWaits(provider string) int {
	return r.Snapshot(provider).QuotaWaits
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// CacheHits returns the hit count for a cache.
func (r *Recorder) CacheHits(cache string) int {
	hits, _ := r.cacheCounts(cache)
	return hits
}

// CacheMisses returns the miss count for a cache.
func (r *Recorder) CacheMisses(cache string) int {
	_, misses := r.cacheCounts(cache)
	return misses
}

// Fallbacks returns how many times fallback data was served for a dataset.
func (r *Recorder) Fallbacks(dataset string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fallbacks[dataset]
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	QuotaWaits      int
	LastQuotaWait   time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		QuotaWaits:      stats.quotaWaits,
		LastQuotaWait:   stats.lastQuotaWait,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) cacheCounts(cache string) (int, int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.caches[cache]; ok {
		return stats.hits, stats.misses
	}
	return 0, 0
}
