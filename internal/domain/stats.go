package domain

import "time"

// ProfileStats summarizes a user's saved activities.
type ProfileStats struct {
	TotalSessions int
	TotalMinutes  int
	CurrentStreak int // consecutive days with at least one session
}

// TotalHours returns TotalMinutes in whole hours, rounded down.
func (s ProfileStats) TotalHours() int {
	return s.TotalMinutes / 60
}

// ComputeStats aggregates activities. The streak counts consecutive
// calendar days (in now's location) ending today, or yesterday if nothing
// has been logged yet today.
func ComputeStats(activities []*Activity, now time.Time) ProfileStats {
	var s ProfileStats
	days := make(map[time.Time]bool, len(activities))
	for _, a := range activities {
		s.TotalSessions++
		s.TotalMinutes += a.DurationMinutes
		days[dayOf(a.CreatedAt.In(now.Location()))] = true
	}

	day := dayOf(now)
	if !days[day] {
		day = day.AddDate(0, 0, -1)
	}
	for days[day] {
		s.CurrentStreak++
		day = day.AddDate(0, 0, -1)
	}
	return s
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
