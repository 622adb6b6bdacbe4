package fasting

import (
	"math"
	"time"

	"github.com/lifetrackhq/lifetrack-backend/internal/apps/settings"
)

// Phase labels by elapsed whole hours. Evaluated as successive overrides:
// the 12-18h window keeps the default label, >18h overrides it.
const (
	LabelNotStarted = "Ready to Fast"
	LabelDigesting  = "Digesting"
	LabelNormal     = "Normal State"
	LabelFatBurning = "Fat Burning Zone"
	LabelAutophagy  = "Autophagy"
)

// Status is the derived fasting state. The fast's start boundary is the most
// recent meal entry; explicit fast_start/fast_end entries stay in the log but
// do not drive this engine.
type Status struct {
	Active    bool       `json:"active"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	Hours     int        `json:"hours"`
	Minutes   int        `json:"minutes"`
	Seconds   int        `json:"seconds"`
	Progress  float64    `json:"progress"`
	Label     string     `json:"label"`
	GoalHours int        `json:"goal_hours"`
}

// Derive computes the fasting state from the latest meal time and goal.
// Progress is clamped to [0, 100] and never NaN or Inf.
func Derive(lastMeal *time.Time, goalHours int, now time.Time) Status {
	if goalHours <= 0 {
		goalHours = settings.DefaultFastingGoal
	}

	if lastMeal == nil {
		return Status{Label: LabelNotStarted, GoalHours: goalHours}
	}

	elapsed := now.Sub(*lastMeal)
	if elapsed < 0 {
		elapsed = 0
	}

	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) % 60
	seconds := int(elapsed.Seconds()) % 60

	progress := elapsed.Hours() / float64(goalHours) * 100
	if math.IsNaN(progress) || math.IsInf(progress, 0) {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	if progress < 0 {
		progress = 0
	}

	label := LabelFatBurning
	switch {
	case hours < 4:
		label = LabelDigesting
	case hours <= 11:
		label = LabelNormal
	case hours > 18:
		label = LabelAutophagy
	}

	started := *lastMeal
	return Status{
		Active:    true,
		StartedAt: &started,
		Hours:     hours,
		Minutes:   minutes,
		Seconds:   seconds,
		Progress:  progress,
		Label:     label,
		GoalHours: goalHours,
	}
}

// BioPhase is a clock-hour-derived coaching label, independent of the log.
type BioPhase struct {
	Phase int    `json:"phase"`
	Name  string `json:"name"`
}

// CurrentBioPhase maps the local hour to a coaching phase:
// 7-14 deep work, 15-22 creative, otherwise rest.
func CurrentBioPhase(now time.Time) BioPhase {
	hour := now.Hour()
	switch {
	case hour >= 7 && hour <= 14:
		return BioPhase{Phase: 1, Name: "Deep Work"}
	case hour >= 15 && hour <= 22:
		return BioPhase{Phase: 2, Name: "Creative"}
	default:
		return BioPhase{Phase: 3, Name: "Rest"}
	}
}
