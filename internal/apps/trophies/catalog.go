package trophies

import (
	"time"

	"github.com/lifetrackhq/lifetrack-backend/internal/apps/entries"
)

type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierDiamond  Tier = "diamond"
)

// Achievement is catalog data only; evaluation logic lives in the predicate
// table below so each rule can be tested in isolation.
type Achievement struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Desc   string `json:"desc"`
	Tier   Tier   `json:"tier"`
	Points int    `json:"points"`
}

// EvalContext carries everything a predicate may inspect.
type EvalContext struct {
	Entries      []entries.Entry
	MaxFastHours float64
	Now          time.Time
}

type Predicate func(ctx EvalContext) bool

var Catalog = []Achievement{
	{ID: "first_steps", Title: "First Steps", Desc: "Log your first entry", Tier: TierBronze, Points: 10},
	{ID: "first_workout", Title: "Warming Up", Desc: "Log your first workout", Tier: TierBronze, Points: 10},
	{ID: "first_fast", Title: "Fasting Initiate", Desc: "Complete a 12-hour fast", Tier: TierBronze, Points: 15},
	{ID: "breath_of_life", Title: "Breath of Life", Desc: "Log 10 breathwork sessions", Tier: TierBronze, Points: 15},
	{ID: "consistent_week", Title: "Consistent Week", Desc: "Keep a 7-day logging streak", Tier: TierSilver, Points: 30},
	{ID: "fat_burner", Title: "Fat Burner", Desc: "Complete a 16-hour fast", Tier: TierSilver, Points: 30},
	{ID: "journal_keeper", Title: "Journal Keeper", Desc: "Write 10 journal entries", Tier: TierSilver, Points: 25},
	{ID: "deep_worker", Title: "Deep Worker", Desc: "Accumulate 10 hours of deep work", Tier: TierSilver, Points: 30},
	{ID: "budget_hawk", Title: "Budget Hawk", Desc: "Track 20 financial transactions", Tier: TierSilver, Points: 25},
	{ID: "autophagy_master", Title: "Autophagy Master", Desc: "Complete a 24-hour fast", Tier: TierGold, Points: 60},
	{ID: "iron_will", Title: "Iron Will", Desc: "Log 50 workouts", Tier: TierGold, Points: 70},
	{ID: "consistent_month", Title: "Habit Architect", Desc: "Keep a 28-day logging streak", Tier: TierGold, Points: 80},
	{ID: "century_club", Title: "Century Club", Desc: "Log 100 entries", Tier: TierPlatinum, Points: 120},
	{ID: "marathon_faster", Title: "Marathon Faster", Desc: "Complete a 48-hour fast", Tier: TierDiamond, Points: 150},
}

// predicates maps achievement ids to their evaluation rules.
var predicates = map[string]Predicate{
	"first_steps":      func(ctx EvalContext) bool { return len(ctx.Entries) >= 1 },
	"first_workout":    func(ctx EvalContext) bool { return countType(ctx.Entries, entries.TypeWorkout) >= 1 },
	"first_fast":       func(ctx EvalContext) bool { return ctx.MaxFastHours >= 12 },
	"breath_of_life":   func(ctx EvalContext) bool { return countType(ctx.Entries, entries.TypeBreathwork) >= 10 },
	"consistent_week":  func(ctx EvalContext) bool { return entries.Streak(ctx.Entries, ctx.Now) >= 7 },
	"fat_burner":       func(ctx EvalContext) bool { return ctx.MaxFastHours >= 16 },
	"journal_keeper":   func(ctx EvalContext) bool { return countType(ctx.Entries, entries.TypeJournal) >= 10 },
	"deep_worker":      func(ctx EvalContext) bool { return totalDuration(ctx.Entries, entries.TypeWorkSession) >= 600 },
	"budget_hawk":      func(ctx EvalContext) bool { return countType(ctx.Entries, entries.TypeFinance) >= 20 },
	"autophagy_master": func(ctx EvalContext) bool { return ctx.MaxFastHours >= 24 },
	"iron_will":        func(ctx EvalContext) bool { return countType(ctx.Entries, entries.TypeWorkout) >= 50 },
	"consistent_month": func(ctx EvalContext) bool { return entries.Streak(ctx.Entries, ctx.Now) >= 28 },
	"century_club":     func(ctx EvalContext) bool { return len(ctx.Entries) >= 100 },
	"marathon_faster":  func(ctx EvalContext) bool { return ctx.MaxFastHours >= 48 },
}

func countType(list []entries.Entry, entryType string) int {
	n := 0
	for _, e := range list {
		if e.Type == entryType {
			n++
		}
	}
	return n
}

func totalDuration(list []entries.Entry, entryType string) int {
	total := 0
	for _, e := range list {
		if e.Type == entryType && e.Duration != nil {
			total += *e.Duration
		}
	}
	return total
}
