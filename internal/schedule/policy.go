package schedule

import (
	"time"

	"github.com/sven-0414/nhl-data-service/internal/timeutil"
)

// RequiresLiveFetch reports whether games for the given calendar date
// (YYYY-MM-DD) must come from the upstream API rather than the store. Today
// and future dates are live-required: their games may still change score,
// clock, and state. Only strictly-past dates are stable enough to cache.
// The comparison is calendar-date only; the time-of-day of now is irrelevant.
func RequiresLiveFetch(date string, now time.Time) bool {
	// ISO dates order lexicographically.
	return date >= timeutil.FormatDate(now)
}
