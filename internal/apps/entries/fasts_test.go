package entries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mealAt(t time.Time) Entry {
	return Entry{Type: TypeMeal, Timestamp: t}
}

func TestFastGaps(t *testing.T) {
	base := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)

	t.Run("consecutive meals produce newest-first gaps", func(t *testing.T) {
		list := []Entry{
			mealAt(base),
			mealAt(base.Add(16 * time.Hour)),
			mealAt(base.Add(16*time.Hour + 18*time.Hour)),
		}
		gaps := FastGaps(list)
		require.Len(t, gaps, 2)
		assert.InDelta(t, 18, gaps[0], 0.001)
		assert.InDelta(t, 16, gaps[1], 0.001)
	})

	t.Run("outlier gap is dropped", func(t *testing.T) {
		list := []Entry{
			mealAt(base),
			mealAt(base.Add(150 * time.Hour)), // forgot to log for a week
			mealAt(base.Add(150*time.Hour + 14*time.Hour)),
		}
		gaps := FastGaps(list)
		require.Len(t, gaps, 1)
		assert.InDelta(t, 14, gaps[0], 0.001)
	})

	t.Run("non-meal entries are ignored", func(t *testing.T) {
		list := []Entry{
			mealAt(base),
			{Type: TypeWorkout, Timestamp: base.Add(4 * time.Hour)},
			mealAt(base.Add(12 * time.Hour)),
		}
		gaps := FastGaps(list)
		require.Len(t, gaps, 1)
		assert.InDelta(t, 12, gaps[0], 0.001)
	})

	t.Run("fewer than two meals yields no gaps", func(t *testing.T) {
		assert.Empty(t, FastGaps(nil))
		assert.Empty(t, FastGaps([]Entry{mealAt(base)}))
	})
}

func TestMaxFastHours(t *testing.T) {
	base := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	list := []Entry{
		mealAt(base),
		mealAt(base.Add(13 * time.Hour)),
		mealAt(base.Add(13*time.Hour + 19*time.Hour)),
	}

	assert.InDelta(t, 19, MaxFastHours(list), 0.001)
	assert.Zero(t, MaxFastHours(nil))
}

func TestLatestMeal(t *testing.T) {
	base := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)

	assert.Nil(t, LatestMeal(nil))
	assert.Nil(t, LatestMeal([]Entry{{Type: TypeJournal, Timestamp: base}}))

	list := []Entry{
		mealAt(base),
		mealAt(base.Add(30 * time.Hour)),
		mealAt(base.Add(5 * time.Hour)),
	}
	got := LatestMeal(list)
	require.NotNil(t, got)
	assert.True(t, got.Equal(base.Add(30*time.Hour)))
}
