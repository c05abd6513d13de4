package analytics

import "time"

// Streak counts consecutive practice days walking back from today in loc and
// stops at the first day without practice. When today has no practice yet the
// walk starts from yesterday, but only a chain of at least two days survives
// that way: a lone practice day yesterday, after a gap, is a broken streak.
// Several submissions on one day count once.
func Streak(submissions []time.Time, now time.Time, loc *time.Location) int {
	if len(submissions) == 0 {
		return 0
	}

	practiced := make(map[string]bool, len(submissions))
	for _, ts := range submissions {
		practiced[civilDay(ts, loc).Format(DayLayout)] = true
	}

	today := civilDay(now, loc)
	if practiced[today.Format(DayLayout)] {
		return chainLength(practiced, today)
	}
	if n := chainLength(practiced, today.AddDate(0, 0, -1)); n >= 2 {
		return n
	}
	return 0
}

// chainLength counts practiced days from day backwards until the first gap.
func chainLength(practiced map[string]bool, day time.Time) int {
	n := 0
	for practiced[day.Format(DayLayout)] {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}
