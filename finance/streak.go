package finance

import "time"

// StreakCategory is the income category that counts toward the hustle
// streak. Only gig work qualifies.
const StreakCategory = "gig"

// DayActivity is one day of the 7-day activity mask shown on the
// dashboard.
type DayActivity struct {
	Day    string `json:"day"`  // short weekday label, e.g. "Mon"
	Date   string `json:"date"` // 2006-01-02
	Active bool   `json:"active"`
}

const dayFormat = "2006-01-02"

// activeDays buckets timestamps into distinct calendar days of the given
// location. Multiple records on the same day collapse into one entry.
func activeDays(times []time.Time, loc *time.Location) map[string]bool {
	days := make(map[string]bool, len(times))
	for _, t := range times {
		days[t.In(loc).Format(dayFormat)] = true
	}
	return days
}

// midnight normalizes t to the start of its calendar day in loc.
func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// CurrentStreak counts consecutive active calendar days ending today or
// yesterday. If today has activity the walk starts there; otherwise it
// starts from yesterday, so a streak survives through the current day
// until the user actually skips a full day. All bucketing uses
// now.Location() so the activity lookup and the "today" reference share
// one clock.
func CurrentStreak(now time.Time, times []time.Time) int {
	loc := now.Location()
	active := activeDays(times, loc)

	day := midnight(now, loc)
	if !active[day.Format(dayFormat)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for active[day.Format(dayFormat)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// WeekMask reports activity for the last 7 calendar days ending today,
// oldest first. Display only; the streak walk does not use it.
func WeekMask(now time.Time, times []time.Time) []DayActivity {
	loc := now.Location()
	active := activeDays(times, loc)
	today := midnight(now, loc)

	mask := make([]DayActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		key := d.Format(dayFormat)
		mask = append(mask, DayActivity{
			Day:    d.Weekday().String()[:3],
			Date:   key,
			Active: active[key],
		})
	}
	return mask
}
