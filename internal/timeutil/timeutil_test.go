package timeutil

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2025-03-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(parsed); got != "2025-03-09" {
		t.Fatalf("expected round-trip, got %s", got)
	}
}

func TestParseDateRejectsTimestamps(t *testing.T) {
	if _, err := ParseDate("2025-03-09T18:00:00Z"); err == nil {
		t.Fatal("expected error for timestamp input")
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	utc := time.Date(2025, 3, 10, 1, 30, 0, 0, time.UTC)
	if got := FormatDate(utc); got != "2025-03-10" {
		t.Fatalf("expected 2025-03-10, got %s", got)
	}
}

func TestAddDays(t *testing.T) {
	cases := []struct {
		date string
		days int
		want string
	}{
		{"2025-03-01", -1, "2025-02-28"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2025-12-31", 1, "2026-01-01"},
		{"not-a-date", -1, "not-a-date"},
	}
	for _, tc := range cases {
		if got := AddDays(tc.date, tc.days); got != tc.want {
			t.Fatalf("AddDays(%s, %d) = %s, want %s", tc.date, tc.days, got, tc.want)
		}
	}
}
