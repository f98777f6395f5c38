package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecordFetchAttemptCountsCallsAndErrors(t *testing.T) {
	rec := NewRecorder()

	rec.RecordFetchAttempt("nhle", 120*time.Millisecond, nil)
	rec.RecordFetchAttempt("nhle", 80*time.Millisecond, errors.New("boom"))

	if got := rec.FetchCalls("nhle"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.FetchErrors("nhle"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastFetchLatency("nhle"); got != 80*time.Millisecond {
		t.Fatalf("expected last latency recorded, got %v", got)
	}
}

func TestRecordCacheLookupCountsByOutcome(t *testing.T) {
	rec := NewRecorder()

	rec.RecordCacheLookup(CacheHit)
	rec.RecordCacheLookup(CacheHit)
	rec.RecordCacheLookup(CacheMiss)
	rec.RecordCacheLookup(CacheLive)

	if got := rec.CacheLookups(CacheHit); got != 2 {
		t.Fatalf("expected 2 hits, got %d", got)
	}
	if got := rec.CacheLookups(CacheMiss); got != 1 {
		t.Fatalf("expected 1 miss, got %d", got)
	}
	if got := rec.CacheLookups(CacheError); got != 0 {
		t.Fatalf("expected 0 errors, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder

	rec.RecordFetchAttempt("nhle", time.Second, nil)
	rec.RecordCacheLookup(CacheHit)
	rec.RecordHTTPRequest("GET", "/api/v1/games/2025-01-10", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Second, nil)

	if rec.FetchCalls("nhle") != 0 || rec.CacheLookups(CacheHit) != 0 {
		t.Fatal("expected zero stats from nil recorder")
	}
}

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if handler != nil {
		t.Fatal("expected no handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
}

func TestSetupEnabledWiresPrometheus(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, ServiceName: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer shutdown(context.Background())

	if rec == nil || handler == nil {
		t.Fatal("expected recorder and prometheus handler")
	}

	// Instruments should accept records without panicking.
	rec.RecordFetchAttempt("nhle", time.Millisecond, nil)
	rec.RecordCacheLookup(CacheMiss)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Second, errors.New("cycle failed"))
}
