package entries

import (
	"sort"
	"time"
)

// Gaps above this many hours are treated as data-entry outliers (a forgotten
// logging stretch, not a fast) and excluded from all fasting aggregates.
const FastOutlierHours = 100

// FastGaps returns the hour gaps between consecutive meal entries,
// newest-first, with non-positive and outlier gaps removed. Each surviving
// gap is one completed fast.
func FastGaps(list []Entry) []float64 {
	meals := make([]time.Time, 0, len(list))
	for _, e := range list {
		if e.Type == TypeMeal {
			meals = append(meals, e.Timestamp)
		}
	}
	sort.Slice(meals, func(i, j int) bool { return meals[i].After(meals[j]) })

	gaps := make([]float64, 0, len(meals))
	for i := 0; i+1 < len(meals); i++ {
		h := meals[i].Sub(meals[i+1]).Hours()
		if h <= 0 || h >= FastOutlierHours {
			continue
		}
		gaps = append(gaps, h)
	}
	return gaps
}

// MaxFastHours returns the longest completed fast in hours, 0 when none.
func MaxFastHours(list []Entry) float64 {
	max := 0.0
	for _, g := range FastGaps(list) {
		if g > max {
			max = g
		}
	}
	return max
}

// LatestMeal returns the timestamp of the most recent meal entry, nil when
// the log contains no meals.
func LatestMeal(list []Entry) *time.Time {
	var latest *time.Time
	for i := range list {
		if list[i].Type != TypeMeal {
			continue
		}
		if latest == nil || list[i].Timestamp.After(*latest) {
			t := list[i].Timestamp
			latest = &t
		}
	}
	return latest
}
