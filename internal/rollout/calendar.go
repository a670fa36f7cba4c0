package rollout

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// ClockFromClockwork adapts a clockwork.Clock (real or fake) to the
// Clock interface this package consumes, truncating to a UTC calendar
// date. Production callers pass clockwork.NewRealClock(); tests pass
// clockwork.NewFakeClock() for deterministic calendar-gate behavior —
// the same pattern the teacher uses across telemetry/global-monitor and
// telemetry/flow-ingest.
func ClockFromClockwork(c clockwork.Clock) Clock {
	return clockworkClock{c: c}
}

type clockworkClock struct {
	c clockwork.Clock
}

func (w clockworkClock) Today() time.Time {
	now := w.c.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// weekPassed is the Calendar Gate (C4): it reports whether the
// half-open interval (releaseStart, today] contains a Monday, i.e.
// whether a wait_for_next_week stage may proceed.
//
// Grounded on stage_checks.rs::week_passed.
func weekPassed(releaseStart, today time.Time) bool {
	day := releaseStart.AddDate(0, 0, 1)
	for !day.After(today) {
		if day.Weekday() == time.Monday {
			return true
		}
		day = day.AddDate(0, 0, 1)
	}
	return false
}

// dayIsSkipped reports whether today's weekday is in the rollout's
// skip-day list (spec.md §4.4).
func dayIsSkipped(rollout Rollout, today time.Time) bool {
	return rollout.skips(today.Weekday())
}
