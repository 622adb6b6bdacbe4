package coach

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/lifetrackhq/lifetrack-backend/internal/apps/entries"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/fasting"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/settings"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestBuildSystemPrompt(t *testing.T) {
	now := time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC) // Wednesday

	profile := &settings.Profile{
		DisplayName:        "Alex",
		FitnessGoal:        "Build muscle",
		DietGoal:           "High protein",
		DietaryPreferences: "No dairy",
	}
	meal := now.Add(-14 * time.Hour)
	fast := fasting.Derive(&meal, 16, now)
	phase := fasting.CurrentBioPhase(now)

	list := []entries.Entry{
		{Type: entries.TypeMeal, Title: "Oatmeal", Timestamp: meal},
		{
			Type:      entries.TypeWorkout,
			Title:     "Push day",
			Timestamp: now.Add(-20 * time.Hour),
			Exercises: datatypes.JSONSlice[entries.Exercise]{{Name: "Bench", Weight: 80, Reps: 8}},
		},
		{Type: entries.TypeJournal, Title: "Morning pages", Note: "Felt focused", Timestamp: now.Add(-26 * time.Hour)},
	}

	prompt := BuildSystemPrompt(profile, fast, phase, list, now)

	assert.Contains(t, prompt, "coach for Alex")
	assert.Contains(t, prompt, "Fitness goal: Build muscle")
	assert.Contains(t, prompt, "Diet goal: High protein")
	assert.Contains(t, prompt, "Dietary preferences: No dairy")
	assert.NotContains(t, prompt, "Active detox")

	assert.Contains(t, prompt, "Current time: Wednesday 10:30")
	assert.Contains(t, prompt, "Bio-phase: 1 (Deep Work)")
	assert.Contains(t, prompt, "Fasting: 14h 0m elapsed")
	assert.Contains(t, prompt, "Fat Burning Zone")

	assert.Contains(t, prompt, "Recent meals:\n- Aug 25 20:30: Oatmeal")
	assert.Contains(t, prompt, "Push day (Bench 80kg x8)")
	assert.Contains(t, prompt, "Morning pages - Felt focused")
}

func TestBuildSystemPromptDefaults(t *testing.T) {
	now := time.Date(2026, 8, 26, 2, 0, 0, 0, time.UTC)

	prompt := BuildSystemPrompt(&settings.Profile{}, fasting.Derive(nil, 16, now), fasting.CurrentBioPhase(now), nil, now)

	assert.Contains(t, prompt, "coach for the user")
	assert.Contains(t, prompt, "Fasting: not started")
	assert.Contains(t, prompt, "Bio-phase: 3 (Rest)")
	assert.NotContains(t, prompt, "Recent meals")
	assert.NotContains(t, prompt, "Recent workouts")
	assert.NotContains(t, prompt, "Recent journal entries")
}

func TestWriteSectionWindowing(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	list := make([]entries.Entry, 0, 30)
	for i := 0; i < 30; i++ {
		list = append(list, entries.Entry{
			Type:      entries.TypeMeal,
			Title:     fmt.Sprintf("Meal %d", i),
			Timestamp: now.Add(-time.Duration(i) * time.Hour),
		})
	}

	var b strings.Builder
	writeSection(&b, "Recent meals", list, entries.TypeMeal, summarizeBasic)
	out := b.String()

	assert.Equal(t, maxLogLines, strings.Count(out, "\n- "))
	assert.Contains(t, out, "Meal 0")
	assert.Contains(t, out, "Meal 14")
	assert.NotContains(t, out, "Meal 15")
}

func TestClampLine(t *testing.T) {
	short := "a short line"
	assert.Equal(t, short, clampLine(short))

	long := strings.Repeat("x", 300)
	clamped := clampLine(long)
	assert.Len(t, clamped, maxLineLen)
	assert.True(t, strings.HasSuffix(clamped, "..."))

	exact := strings.Repeat("y", maxLineLen)
	assert.Equal(t, exact, clampLine(exact))
}

func TestClampLineMultiByte(t *testing.T) {
	// 3 bytes per rune, so the byte cutoff lands mid-rune unless the clamp
	// backs up to a rune boundary.
	long := strings.Repeat("日", 100)
	clamped := clampLine(long)

	assert.True(t, utf8.ValidString(clamped))
	assert.LessOrEqual(t, len(clamped), maxLineLen)
	assert.True(t, strings.HasSuffix(clamped, "..."))
}
