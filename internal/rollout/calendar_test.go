package rollout

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestWeekPassed(t *testing.T) {
	start := utcDate(2024, 1, 3) // Wednesday

	tests := []struct {
		name  string
		today time.Time
		want  bool
	}{
		{"same day as start", start, false},
		{"saturday same week", utcDate(2024, 1, 6), false},
		{"monday crossed", utcDate(2024, 1, 8), true},
		{"following wednesday", utcDate(2024, 1, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, weekPassed(start, tt.today))
		})
	}
}

func TestDayIsSkipped(t *testing.T) {
	rollout := Rollout{SkipDays: []time.Weekday{time.Saturday, time.Sunday}}
	require.True(t, dayIsSkipped(rollout, utcDate(2024, 1, 6)))  // Saturday
	require.False(t, dayIsSkipped(rollout, utcDate(2024, 1, 3))) // Wednesday
}

func TestClockFromClockwork_TruncatesToUTCMidnight(t *testing.T) {
	// 23:30 local at UTC-3 is 02:30 the next day in UTC; Today() must
	// report the UTC calendar date, not the local one.
	local := time.Date(2024, 1, 3, 23, 30, 0, 0, time.FixedZone("X", -3*3600))
	fake := clockwork.NewFakeClockAt(local)
	clock := ClockFromClockwork(fake)
	require.Equal(t, utcDate(2024, 1, 4), clock.Today())
}
