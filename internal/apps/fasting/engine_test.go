package fasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveLabels(t *testing.T) {
	now := time.Date(2026, 8, 26, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"just ate", 30 * time.Minute, LabelDigesting},
		{"three hours", 3 * time.Hour, LabelDigesting},
		{"four hours", 4 * time.Hour, LabelNormal},
		{"eleven hours", 11 * time.Hour, LabelNormal},
		{"twelve hours", 12 * time.Hour, LabelFatBurning},
		{"seventeen hours", 17 * time.Hour, LabelFatBurning},
		{"eighteen hours", 18 * time.Hour, LabelFatBurning},
		{"nineteen hours", 19 * time.Hour, LabelAutophagy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meal := now.Add(-tt.elapsed)
			got := Derive(&meal, 16, now)
			assert.Equal(t, tt.want, got.Label)
			assert.True(t, got.Active)
		})
	}
}

func TestDeriveNoMeals(t *testing.T) {
	now := time.Date(2026, 8, 26, 20, 0, 0, 0, time.UTC)

	got := Derive(nil, 16, now)
	assert.False(t, got.Active)
	assert.Equal(t, LabelNotStarted, got.Label)
	assert.Nil(t, got.StartedAt)
	assert.Zero(t, got.Progress)
	assert.Equal(t, 16, got.GoalHours)
}

func TestDeriveProgress(t *testing.T) {
	now := time.Date(2026, 8, 26, 20, 0, 0, 0, time.UTC)

	t.Run("halfway", func(t *testing.T) {
		meal := now.Add(-8 * time.Hour)
		got := Derive(&meal, 16, now)
		assert.InDelta(t, 50, got.Progress, 0.001)
	})

	t.Run("clamped at 100", func(t *testing.T) {
		meal := now.Add(-40 * time.Hour)
		got := Derive(&meal, 16, now)
		assert.Equal(t, 100.0, got.Progress)
	})

	t.Run("zero goal falls back to default", func(t *testing.T) {
		meal := now.Add(-8 * time.Hour)
		got := Derive(&meal, 0, now)
		assert.Equal(t, 16, got.GoalHours)
		assert.InDelta(t, 50, got.Progress, 0.001)
	})

	t.Run("meal in the future clamps to zero elapsed", func(t *testing.T) {
		meal := now.Add(2 * time.Hour)
		got := Derive(&meal, 16, now)
		assert.Zero(t, got.Progress)
		assert.Zero(t, got.Hours)
		assert.Equal(t, LabelDigesting, got.Label)
	})
}

func TestDeriveClock(t *testing.T) {
	meal := time.Date(2026, 8, 26, 8, 0, 0, 0, time.UTC)
	now := meal.Add(14*time.Hour + 25*time.Minute + 9*time.Second)

	got := Derive(&meal, 16, now)
	assert.Equal(t, 14, got.Hours)
	assert.Equal(t, 25, got.Minutes)
	assert.Equal(t, 9, got.Seconds)
	require.NotNil(t, got.StartedAt)
	assert.True(t, got.StartedAt.Equal(meal))
}

func TestCurrentBioPhase(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2026, 8, 26, hour, 30, 0, 0, time.UTC)
	}

	tests := []struct {
		hour int
		want BioPhase
	}{
		{7, BioPhase{Phase: 1, Name: "Deep Work"}},
		{14, BioPhase{Phase: 1, Name: "Deep Work"}},
		{15, BioPhase{Phase: 2, Name: "Creative"}},
		{22, BioPhase{Phase: 2, Name: "Creative"}},
		{23, BioPhase{Phase: 3, Name: "Rest"}},
		{3, BioPhase{Phase: 3, Name: "Rest"}},
		{6, BioPhase{Phase: 3, Name: "Rest"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CurrentBioPhase(at(tt.hour)), "hour %d", tt.hour)
	}
}
