package finance

import (
	"testing"
	"time"

	"github.com/lifetrackhq/lifetrack-backend/internal/apps/entries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextDue(t *testing.T) {
	from := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		frequency string
		want      time.Time
	}{
		{"weekly", FreqWeekly, time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)},
		{"biweekly", FreqBiweekly, time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)},
		{"monthly rolls over short month", FreqMonthly, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
		{"yearly", FreqYearly, time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)},
		{"unknown falls back to monthly", "fortnightly", time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, NextDue(tt.frequency, from).Equal(tt.want))
		})
	}
}

func TestNextDueAdvancesFromDueDateNotToday(t *testing.T) {
	// A weekly template 30 days overdue advances exactly one period from the
	// stored due date, so it stays due and converges over successive runs.
	due := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	next := NextDue(FreqWeekly, due)
	assert.True(t, next.Equal(time.Date(2026, 7, 8, 0, 0, 0, 0, time.UTC)))
	assert.True(t, next.Before(now), "overdue template should still be due after one advance")
}

func TestMaterializedEntry(t *testing.T) {
	now := time.Date(2026, 8, 26, 3, 30, 0, 0, time.UTC)
	tmpl := &RecurringTemplate{
		Title:     "Rent",
		Amount:    1200,
		IsExpense: true,
		Category:  "Housing",
		Frequency: FreqMonthly,
	}

	req := materializedEntry(tmpl, now)

	assert.Equal(t, entries.TypeFinance, req.Type)
	assert.Equal(t, "Rent", req.Title)
	assert.Equal(t, []string{"recurring"}, req.Tags)
	require.NotNil(t, req.Timestamp)
	assert.True(t, req.Timestamp.Equal(now), "entry timestamp comes from the run clock")
	require.NotNil(t, req.Amount)
	assert.Equal(t, 1200.0, *req.Amount)
	require.NotNil(t, req.IsExpense)
	assert.True(t, *req.IsExpense)
	require.NotNil(t, req.Category)
	assert.Equal(t, "Housing", *req.Category)
}

func TestIsValidFrequency(t *testing.T) {
	for _, f := range Frequencies {
		assert.True(t, isValidFrequency(f), f)
	}
	assert.False(t, isValidFrequency("daily"))
	assert.False(t, isValidFrequency(""))
	assert.False(t, isValidFrequency("Weekly"))
}
