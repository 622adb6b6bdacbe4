package trophies

import (
	"testing"
	"time"

	"github.com/lifetrackhq/lifetrack-backend/internal/apps/entries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogPredicatesComplete(t *testing.T) {
	for _, a := range Catalog {
		_, ok := predicates[a.ID]
		assert.True(t, ok, "achievement %q has no predicate", a.ID)
	}
	assert.Len(t, predicates, len(Catalog))
}

func TestPredicates(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	typed := func(entryType string, n int) []entries.Entry {
		list := make([]entries.Entry, n)
		for i := range list {
			list[i] = entries.Entry{Type: entryType, Timestamp: now.Add(-time.Duration(i) * time.Minute)}
		}
		return list
	}

	tests := []struct {
		name string
		id   string
		ctx  EvalContext
		want bool
	}{
		{"first_steps on one entry", "first_steps", EvalContext{Entries: typed(entries.TypeMeal, 1), Now: now}, true},
		{"first_steps on empty log", "first_steps", EvalContext{Now: now}, false},
		{"first_workout needs a workout", "first_workout", EvalContext{Entries: typed(entries.TypeMeal, 5), Now: now}, false},
		{"first_workout unlocks", "first_workout", EvalContext{Entries: typed(entries.TypeWorkout, 1), Now: now}, true},
		{"first_fast below threshold", "first_fast", EvalContext{MaxFastHours: 11.9, Now: now}, false},
		{"first_fast at threshold", "first_fast", EvalContext{MaxFastHours: 12, Now: now}, true},
		{"breath_of_life at ten sessions", "breath_of_life", EvalContext{Entries: typed(entries.TypeBreathwork, 10), Now: now}, true},
		{"fat_burner at sixteen hours", "fat_burner", EvalContext{MaxFastHours: 16.2, Now: now}, true},
		{"journal_keeper at nine entries", "journal_keeper", EvalContext{Entries: typed(entries.TypeJournal, 9), Now: now}, false},
		{"budget_hawk at twenty", "budget_hawk", EvalContext{Entries: typed(entries.TypeFinance, 20), Now: now}, true},
		{"autophagy_master", "autophagy_master", EvalContext{MaxFastHours: 24.5, Now: now}, true},
		{"iron_will at fifty workouts", "iron_will", EvalContext{Entries: typed(entries.TypeWorkout, 50), Now: now}, true},
		{"century_club at 99", "century_club", EvalContext{Entries: typed(entries.TypeMeal, 99), Now: now}, false},
		{"marathon_faster", "marathon_faster", EvalContext{MaxFastHours: 48, Now: now}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, predicates[tt.id](tt.ctx))
		})
	}
}

func TestDeepWorkerSumsDurations(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	session := func(minutes int) entries.Entry {
		return entries.Entry{Type: entries.TypeWorkSession, Timestamp: now, Duration: &minutes}
	}

	short := EvalContext{Entries: []entries.Entry{session(200), session(300)}, Now: now}
	assert.False(t, predicates["deep_worker"](short))

	long := EvalContext{Entries: []entries.Entry{session(200), session(300), session(100)}, Now: now}
	assert.True(t, predicates["deep_worker"](long))
}

func TestEvaluateCatalog(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	list := []entries.Entry{
		{Type: entries.TypeWorkout, Timestamp: now.Add(-time.Hour)},
	}

	t.Run("fresh log unlocks in catalog order", func(t *testing.T) {
		got := EvaluateCatalog(list, nil, now)
		require.Len(t, got, 2)
		assert.Equal(t, "first_steps", got[0].ID)
		assert.Equal(t, "first_workout", got[1].ID)
	})

	t.Run("already-unlocked achievements never repeat", func(t *testing.T) {
		got := EvaluateCatalog(list, []string{"first_steps", "first_workout"}, now)
		assert.Empty(t, got)
	})

	t.Run("partial unlock set only returns the remainder", func(t *testing.T) {
		got := EvaluateCatalog(list, []string{"first_steps"}, now)
		require.Len(t, got, 1)
		assert.Equal(t, "first_workout", got[0].ID)
	})

	t.Run("empty log unlocks nothing", func(t *testing.T) {
		assert.Empty(t, EvaluateCatalog(nil, nil, now))
	})
}
