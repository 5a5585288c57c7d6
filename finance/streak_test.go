package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var streakNow = time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return streakNow.AddDate(0, 0, -n)
}

func TestCurrentStreakCountsBackFromToday(t *testing.T) {
	// Active today, yesterday and two days ago; gap on day three.
	times := []time.Time{daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(4)}
	assert.Equal(t, 3, CurrentStreak(streakNow, times))
}

func TestCurrentStreakSurvivesThroughToday(t *testing.T) {
	// Nothing logged today yet; the walk starts from yesterday.
	times := []time.Time{daysAgo(1), daysAgo(2)}
	assert.Equal(t, 2, CurrentStreak(streakNow, times))
}

func TestCurrentStreakBrokenBySkippedDay(t *testing.T) {
	times := []time.Time{daysAgo(2), daysAgo(3)}
	assert.Equal(t, 0, CurrentStreak(streakNow, times))
}

func TestCurrentStreakNoRecords(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(streakNow, nil))
}

func TestCurrentStreakSameDayCountsOnce(t *testing.T) {
	times := []time.Time{
		daysAgo(0),
		daysAgo(0).Add(-2 * time.Hour),
		daysAgo(0).Add(-5 * time.Hour),
	}
	assert.Equal(t, 1, CurrentStreak(streakNow, times))
}

func TestCurrentStreakUsesViewerLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 23:30 UTC on the 27th is already the 28th in Tokyo. An activity
	// stamped then must bucket into the viewer's "today".
	now := time.Date(2026, 8, 28, 8, 0, 0, 0, tokyo)
	activity := time.Date(2026, 8, 27, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, 1, CurrentStreak(now, []time.Time{activity}))
}

func TestWeekMaskShape(t *testing.T) {
	times := []time.Time{daysAgo(0), daysAgo(2), daysAgo(6)}
	mask := WeekMask(streakNow, times)
	require.Len(t, mask, 7)

	// Oldest first, ending today.
	assert.Equal(t, "2026-08-22", mask[0].Date)
	assert.Equal(t, "2026-08-28", mask[6].Date)
	assert.Equal(t, "Fri", mask[6].Day)

	active := make([]bool, 0, 7)
	for _, d := range mask {
		active = append(active, d.Active)
	}
	assert.Equal(t, []bool{true, false, false, false, true, false, true}, active)
}

func TestWeekMaskAllInactive(t *testing.T) {
	for _, d := range WeekMask(streakNow, nil) {
		assert.False(t, d.Active)
	}
}
