package settings

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DefaultFastingGoal is the fallback fasting goal in hours when the stored
// value is missing or non-positive.
const DefaultFastingGoal = 16

// Profile is the single per-user settings document, created lazily on first
// read and only ever written through the SettingsService.
type Profile struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	DisplayName   string  `gorm:"size:100" json:"display_name"`
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Gender        string  `gorm:"size:20" json:"gender"`
	ActivityLevel string  `gorm:"size:30" json:"activity_level"`

	FastingGoal        int     `gorm:"default:16" json:"fasting_goal"`
	FitnessGoal        string  `gorm:"size:100" json:"fitness_goal"`
	DietGoal           string  `gorm:"size:100" json:"diet_goal"`
	DietaryPreferences string  `gorm:"size:255" json:"dietary_preferences"`
	MonthlyBudget      float64 `json:"monthly_budget"`

	UnlockedAchievements datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"unlocked_achievements"`
	XP                   int                         `gorm:"default:0" json:"xp"`
	Level                int                         `gorm:"default:1" json:"level"`

	ActiveDetox string `gorm:"size:100" json:"active_detox"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GoalHours returns the fasting goal, falling back to the default when the
// stored value is non-positive.
func (p *Profile) GoalHours() int {
	if p.FastingGoal <= 0 {
		return DefaultFastingGoal
	}
	return p.FastingGoal
}

// --- DTOs ---

// UpdateSettingsRequest merges only the provided fields into the profile.
type UpdateSettingsRequest struct {
	DisplayName        *string  `json:"display_name"`
	Age                *int     `json:"age"`
	Weight             *float64 `json:"weight"`
	Height             *float64 `json:"height"`
	Gender             *string  `json:"gender"`
	ActivityLevel      *string  `json:"activity_level"`
	FastingGoal        *int     `json:"fasting_goal"`
	FitnessGoal        *string  `json:"fitness_goal"`
	DietGoal           *string  `json:"diet_goal"`
	DietaryPreferences *string  `json:"dietary_preferences"`
	MonthlyBudget      *float64 `json:"monthly_budget"`
	ActiveDetox        *string  `json:"active_detox"`
}

// ReplaceSettingsRequest rewrites the whole profile document, preserving the
// gamification fields which are owned by the trophies evaluator.
type ReplaceSettingsRequest struct {
	DisplayName        string  `json:"display_name"`
	Age                int     `json:"age"`
	Weight             float64 `json:"weight"`
	Height             float64 `json:"height"`
	Gender             string  `json:"gender"`
	ActivityLevel      string  `json:"activity_level"`
	FastingGoal        int     `json:"fasting_goal"`
	FitnessGoal        string  `json:"fitness_goal"`
	DietGoal           string  `json:"diet_goal"`
	DietaryPreferences string  `json:"dietary_preferences"`
	MonthlyBudget      float64 `json:"monthly_budget"`
	ActiveDetox        string  `json:"active_detox"`
}
