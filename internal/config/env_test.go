package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	const key = "TEST_ENV_OR_DEFAULT"
	if got := envOrDefault(key, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
	t.Setenv(key, "value")
	if got := envOrDefault(key, "fallback"); got != "value" {
		t.Fatalf("expected value, got %s", got)
	}
}

func TestDurationEnvOrDefaultRejectsBadValues(t *testing.T) {
	const key = "TEST_DURATION_ENV"
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"", time.Minute},
		{"nonsense", time.Minute},
		{"-5s", time.Minute},
		{"90s", 90 * time.Second},
	}
	for _, tc := range cases {
		t.Setenv(key, tc.raw)
		if got := durationEnvOrDefault(key, time.Minute); got != tc.want {
			t.Fatalf("raw %q: expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}

func TestIntEnvOrDefaultRejectsBadValues(t *testing.T) {
	const key = "TEST_INT_ENV"
	cases := []struct {
		raw  string
		want int
	}{
		{"", 7},
		{"abc", 7},
		{"-2", 7},
		{"0", 7},
		{"14", 14},
	}
	for _, tc := range cases {
		t.Setenv(key, tc.raw)
		if got := intEnvOrDefault(key, 7); got != tc.want {
			t.Fatalf("raw %q: expected %d, got %d", tc.raw, tc.want, got)
		}
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	const key = "TEST_BOOL_ENV"
	cases := []struct {
		raw  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"YES", true},
		{"0", false},
		{"garbage", false},
	}
	for _, tc := range cases {
		t.Setenv(key, tc.raw)
		if got := boolEnvOrDefault(key, false); got != tc.want {
			t.Fatalf("raw %q: expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}
