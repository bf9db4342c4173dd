package catalog

import "time"

// StartingSoon reports whether a course start date falls inside the
// inclusive window [today, today+7d] at calendar-day granularity. Both
// times are truncated to midnight before comparing, so a course starting
// later today still counts. The caller supplies "now" so the rule stays
// deterministic under test.
func StartingSoon(start, now time.Time) bool {
	today := midnight(now)
	weekAhead := today.AddDate(0, 0, 7)
	day := midnight(start)
	return !day.Before(today) && !day.After(weekAhead)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
