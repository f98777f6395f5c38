package metrics

import (
	"sync"
	"time"
)

type fetchStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream fetches and
// cache lookups, mirroring everything into OpenTelemetry when configured.
// A nil Recorder is safe to call.
type Recorder struct {
	mu      sync.Mutex
	fetches map[string]*fetchStats
	lookups map[string]int
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		fetches: make(map[string]*fetchStats),
		lookups: make(map[string]int),
		otel:    otel,
	}
}

// RecordFetchAttempt increments counters for an upstream schedule fetch and
// stores the last observed latency.
func (r *Recorder) RecordFetchAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.fetches[provider]
	if !ok {
		stats = &fetchStats{}
		r.fetches[provider] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetchAttempt(provider, duration, err)
	}
}

// RecordCacheLookup tracks the outcome of one schedule cache request
// (hit, miss, live, error).
func (r *Recorder) RecordCacheLookup(outcome string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.lookups[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(outcome)
	}
}

// FetchCalls returns the total fetch attempts recorded for a provider.
func (r *Recorder) FetchCalls(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.fetches[provider]; ok {
		return stats.calls
	}
	return 0
}

// FetchErrors returns the total failed fetch attempts recorded for a provider.
func (r *Recorder) FetchErrors(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.fetches[provider]; ok {
		return stats.errors
	}
	return 0
}

// LastFetchLatency returns the last recorded latency for a provider fetch.
func (r *Recorder) LastFetchLatency(provider string) time.Duration {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.fetches[provider]; ok {
		return stats.lastCallLatency
	}
	return 0
}

// CacheLookups returns the count recorded for a lookup outcome.
func (r *Recorder) CacheLookups(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookups[outcome]
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks backfill poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}
