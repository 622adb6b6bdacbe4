package coach

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lifetrackhq/lifetrack-backend/internal/apps/entries"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/fasting"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/settings"
)

// Context window bounds. The coach prompt is deliberately capped: the most
// recent entries per category, a clamped line per entry, and a limited number
// of prior conversation turns.
const (
	maxLogLines     = 15
	maxLineLen      = 140
	maxHistoryTurns = 20
)

// BuildSystemPrompt assembles the coaching context: profile, wall-clock
// time, bio-phase, live fasting state, and windowed summaries of meals,
// workouts and journal entries.
func BuildSystemPrompt(profile *settings.Profile, fast fasting.Status, phase fasting.BioPhase, list []entries.Entry, now time.Time) string {
	var b strings.Builder

	name := profile.DisplayName
	if name == "" {
		name = "the user"
	}

	b.WriteString("You are a supportive personal lifestyle coach for ")
	b.WriteString(name)
	b.WriteString(". Be concise, encouraging and practical.\n\n")

	b.WriteString("Profile:\n")
	if profile.FitnessGoal != "" {
		fmt.Fprintf(&b, "- Fitness goal: %s\n", profile.FitnessGoal)
	}
	if profile.DietGoal != "" {
		fmt.Fprintf(&b, "- Diet goal: %s\n", profile.DietGoal)
	}
	if profile.DietaryPreferences != "" {
		fmt.Fprintf(&b, "- Dietary preferences: %s\n", profile.DietaryPreferences)
	}
	if profile.ActiveDetox != "" {
		fmt.Fprintf(&b, "- Active detox: %s\n", profile.ActiveDetox)
	}

	fmt.Fprintf(&b, "\nCurrent time: %s\n", now.Format("Monday 15:04"))
	fmt.Fprintf(&b, "Bio-phase: %d (%s)\n", phase.Phase, phase.Name)

	if fast.Active {
		fmt.Fprintf(&b, "Fasting: %dh %dm elapsed, %.0f%% of a %dh goal, phase: %s\n",
			fast.Hours, fast.Minutes, fast.Progress, fast.GoalHours, fast.Label)
	} else {
		b.WriteString("Fasting: not started\n")
	}

	writeSection(&b, "Recent meals", list, entries.TypeMeal, summarizeBasic)
	writeSection(&b, "Recent workouts", list, entries.TypeWorkout, summarizeWorkout)
	writeSection(&b, "Recent journal entries", list, entries.TypeJournal, summarizeJournal)

	return b.String()
}

func writeSection(b *strings.Builder, header string, list []entries.Entry, entryType string, summarize func(entries.Entry) string) {
	lines := make([]string, 0, maxLogLines)
	for _, e := range list {
		if e.Type != entryType {
			continue
		}
		lines = append(lines, clampLine(summarize(e)))
		if len(lines) == maxLogLines {
			break
		}
	}
	if len(lines) == 0 {
		return
	}

	b.WriteString("\n")
	b.WriteString(header)
	b.WriteString(":\n")
	for _, l := range lines {
		b.WriteString("- ")
		b.WriteString(l)
		b.WriteString("\n")
	}
}

func summarizeBasic(e entries.Entry) string {
	return fmt.Sprintf("%s: %s", e.Timestamp.Format("Jan 2 15:04"), e.Title)
}

func summarizeWorkout(e entries.Entry) string {
	if len(e.Exercises) == 0 {
		return summarizeBasic(e)
	}
	parts := make([]string, 0, len(e.Exercises))
	for _, ex := range e.Exercises {
		parts = append(parts, fmt.Sprintf("%s %gkg x%d", ex.Name, ex.Weight, ex.Reps))
	}
	return fmt.Sprintf("%s: %s (%s)", e.Timestamp.Format("Jan 2 15:04"), e.Title, strings.Join(parts, ", "))
}

func summarizeJournal(e entries.Entry) string {
	s := summarizeBasic(e)
	if e.Note != "" {
		s += " - " + e.Note
	}
	return s
}

func clampLine(s string) string {
	if len(s) <= maxLineLen {
		return s
	}
	// Truncate on a rune boundary so multi-byte titles stay valid UTF-8.
	cut := maxLineLen - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
