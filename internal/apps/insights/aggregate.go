package insights

import (
	"sort"
	"time"

	"github.com/lifetrackhq/lifetrack-backend/internal/apps/entries"
)

const (
	trendMaxPoints = 14
	topCategories  = 6
	heatmapDays    = 28
)

type DayActivity struct {
	Date   string         `json:"date"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// WeeklyActivity counts entries per type for each of the last 7 calendar
// days, oldest-first.
func WeeklyActivity(list []entries.Entry, now time.Time) []DayActivity {
	days := make([]DayActivity, 0, 7)
	index := make(map[string]int, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		index[date] = len(days)
		days = append(days, DayActivity{Date: date, Counts: map[string]int{}})
	}

	for _, e := range list {
		date := e.Timestamp.In(now.Location()).Format("2006-01-02")
		if i, ok := index[date]; ok {
			days[i].Counts[e.Type]++
			days[i].Total++
		}
	}
	return days
}

// FastingTrend returns the most recent qualifying fast durations in hours,
// oldest-first for charting, capped at 14 points. Outlier gaps are already
// filtered by the entries pass.
func FastingTrend(list []entries.Entry) []float64 {
	gaps := entries.FastGaps(list)
	if len(gaps) > trendMaxPoints {
		gaps = gaps[:trendMaxPoints]
	}
	trend := make([]float64, len(gaps))
	for i, g := range gaps {
		trend[len(gaps)-1-i] = g
	}
	return trend
}

type CategorySpend struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// SpendingBreakdown sums current-month expense entries by category, sorted
// descending, top 6 kept. Income entries are excluded; the returned total is
// the expense total used for percentage rendering.
func SpendingBreakdown(list []entries.Entry, now time.Time) ([]CategorySpend, float64) {
	byCategory := map[string]float64{}
	total := 0.0

	for _, e := range list {
		if e.Type != entries.TypeFinance || e.Amount == nil {
			continue
		}
		if e.IsExpense == nil || !*e.IsExpense {
			continue
		}
		ts := e.Timestamp.In(now.Location())
		if ts.Year() != now.Year() || ts.Month() != now.Month() {
			continue
		}
		category := "Uncategorized"
		if e.Category != nil && *e.Category != "" {
			category = *e.Category
		}
		byCategory[category] += *e.Amount
		total += *e.Amount
	}

	breakdown := make([]CategorySpend, 0, len(byCategory))
	for c, amount := range byCategory {
		breakdown = append(breakdown, CategorySpend{Category: c, Amount: amount})
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].Amount > breakdown[j].Amount })
	if len(breakdown) > topCategories {
		breakdown = breakdown[:topCategories]
	}
	return breakdown, total
}

type HeatmapCell struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Tier  int    `json:"tier"`
}

// ConsistencyHeatmap buckets per-day entry counts over the trailing 28 days
// into four density tiers (0, 1-2, 3-4, 5+), oldest-first.
func ConsistencyHeatmap(list []entries.Entry, now time.Time) []HeatmapCell {
	cells := make([]HeatmapCell, 0, heatmapDays)
	index := make(map[string]int, heatmapDays)
	for i := heatmapDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		index[date] = len(cells)
		cells = append(cells, HeatmapCell{Date: date})
	}

	for _, e := range list {
		date := e.Timestamp.In(now.Location()).Format("2006-01-02")
		if i, ok := index[date]; ok {
			cells[i].Count++
		}
	}

	for i := range cells {
		cells[i].Tier = densityTier(cells[i].Count)
	}
	return cells
}

func densityTier(count int) int {
	switch {
	case count == 0:
		return 0
	case count <= 2:
		return 1
	case count <= 4:
		return 2
	default:
		return 3
	}
}
