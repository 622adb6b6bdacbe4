package entries

import (
	"sort"
	"time"
)

// Streak returns the count of consecutive calendar days ending today or
// yesterday on which at least one entry was logged. A day without an entry
// breaks the streak, but the current day is tolerated so the streak does not
// reset before the user has logged anything today. Accepts the entry list in
// any order; multiple entries on one day count once.
func Streak(list []Entry, now time.Time) int {
	if len(list) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{}, len(list))
	for _, e := range list {
		seen[dayOf(e.Timestamp.In(now.Location()))] = struct{}{}
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := dayOf(now)
	yesterday := today.AddDate(0, 0, -1)
	if !days[0].Equal(today) && !days[0].Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			break
		}
		streak++
	}
	return streak
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
