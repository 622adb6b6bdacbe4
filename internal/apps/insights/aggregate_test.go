package insights

import (
	"testing"
	"time"

	"github.com/lifetrackhq/lifetrack-backend/internal/apps/entries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyActivity(t *testing.T) {
	now := time.Date(2026, 8, 26, 18, 0, 0, 0, time.UTC)

	list := []entries.Entry{
		{Type: entries.TypeMeal, Timestamp: now.Add(-2 * time.Hour)},
		{Type: entries.TypeMeal, Timestamp: now.Add(-4 * time.Hour)},
		{Type: entries.TypeWorkout, Timestamp: now.AddDate(0, 0, -3)},
		{Type: entries.TypeJournal, Timestamp: now.AddDate(0, 0, -10)}, // outside window
	}

	days := WeeklyActivity(list, now)
	require.Len(t, days, 7)

	assert.Equal(t, "2026-08-20", days[0].Date)
	assert.Equal(t, "2026-08-26", days[6].Date)

	assert.Equal(t, 2, days[6].Counts[entries.TypeMeal])
	assert.Equal(t, 2, days[6].Total)
	assert.Equal(t, 1, days[3].Counts[entries.TypeWorkout])
	assert.Zero(t, days[0].Total)
}

func TestFastingTrend(t *testing.T) {
	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)

	t.Run("oldest-first with outliers excluded", func(t *testing.T) {
		list := []entries.Entry{
			{Type: entries.TypeMeal, Timestamp: base},
			{Type: entries.TypeMeal, Timestamp: base.Add(16 * time.Hour)},
			{Type: entries.TypeMeal, Timestamp: base.Add(16*time.Hour + 150*time.Hour)}, // gap too large
			{Type: entries.TypeMeal, Timestamp: base.Add(16*time.Hour + 150*time.Hour + 18*time.Hour)},
		}
		trend := FastingTrend(list)
		require.Len(t, trend, 2)
		assert.InDelta(t, 16, trend[0], 0.001)
		assert.InDelta(t, 18, trend[1], 0.001)
	})

	t.Run("capped at fourteen points keeping the newest", func(t *testing.T) {
		list := make([]entries.Entry, 0, 21)
		ts := base
		for i := 0; i < 21; i++ {
			list = append(list, entries.Entry{Type: entries.TypeMeal, Timestamp: ts})
			ts = ts.Add(time.Duration(10+i) * time.Hour)
		}
		trend := FastingTrend(list)
		require.Len(t, trend, 14)
		// The newest gap (10+19 = 29h) survives; the oldest six are dropped.
		assert.InDelta(t, 29, trend[13], 0.001)
		assert.InDelta(t, 16, trend[0], 0.001)
	})

	t.Run("no meals yields empty trend", func(t *testing.T) {
		assert.Empty(t, FastingTrend(nil))
	})
}

func TestSpendingBreakdown(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	expense := func(category string, amount float64, ts time.Time) entries.Entry {
		yes := true
		return entries.Entry{Type: entries.TypeFinance, Timestamp: ts, Amount: &amount, IsExpense: &yes, Category: &category}
	}
	income := func(amount float64, ts time.Time) entries.Entry {
		no := false
		return entries.Entry{Type: entries.TypeFinance, Timestamp: ts, Amount: &amount, IsExpense: &no}
	}

	t.Run("income excluded and categories summed", func(t *testing.T) {
		list := []entries.Entry{
			expense("Food", 50, now.Add(-time.Hour)),
			expense("Food", 30, now.Add(-48*time.Hour)),
			expense("Transport", 20, now.Add(-24*time.Hour)),
			income(1000, now.Add(-time.Hour)),
		}
		breakdown, total := SpendingBreakdown(list, now)
		require.Len(t, breakdown, 2)
		assert.Equal(t, CategorySpend{Category: "Food", Amount: 80}, breakdown[0])
		assert.Equal(t, CategorySpend{Category: "Transport", Amount: 20}, breakdown[1])
		assert.InDelta(t, 100, total, 0.001)
	})

	t.Run("previous month excluded", func(t *testing.T) {
		list := []entries.Entry{
			expense("Food", 50, time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)),
		}
		breakdown, total := SpendingBreakdown(list, now)
		assert.Empty(t, breakdown)
		assert.Zero(t, total)
	})

	t.Run("missing category buckets as Uncategorized and top six kept", func(t *testing.T) {
		list := make([]entries.Entry, 0, 8)
		for i, c := range []string{"A", "B", "C", "D", "E", "F", "G"} {
			list = append(list, expense(c, float64(100-i*10), now))
		}
		yes := true
		amount := 5.0
		list = append(list, entries.Entry{Type: entries.TypeFinance, Timestamp: now, Amount: &amount, IsExpense: &yes})

		breakdown, total := SpendingBreakdown(list, now)
		require.Len(t, breakdown, 6)
		assert.Equal(t, "A", breakdown[0].Category)
		assert.InDelta(t, 495, total, 0.001, "total counts categories dropped from the top list")
	})
}

func TestConsistencyHeatmap(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	list := make([]entries.Entry, 0, 8)
	addOnDay := func(offset, n int) {
		for i := 0; i < n; i++ {
			list = append(list, entries.Entry{Type: entries.TypeJournal, Timestamp: now.AddDate(0, 0, -offset)})
		}
	}
	addOnDay(0, 6)
	addOnDay(1, 3)
	addOnDay(2, 1)

	cells := ConsistencyHeatmap(list, now)
	require.Len(t, cells, 28)

	last := cells[27]
	assert.Equal(t, "2026-08-28", last.Date)
	assert.Equal(t, 6, last.Count)
	assert.Equal(t, 3, last.Tier)

	assert.Equal(t, 2, cells[26].Tier)
	assert.Equal(t, 1, cells[25].Tier)
	assert.Equal(t, 0, cells[24].Tier)
}

func TestDensityTier(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {12, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, densityTier(tt.count), "count %d", tt.count)
	}
}
