package entries

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Entry types. An entry is immutable once created; the only mutation is delete.
const (
	TypeMeal        = "meal"
	TypeWorkout     = "workout"
	TypeJournal     = "journal"
	TypeWorkSession = "work_session"
	TypeBreathwork  = "breathwork"
	TypeWeight      = "weight"
	TypeFinance     = "finance"
	TypeFastStart   = "fast_start"
	TypeFastEnd     = "fast_end"
)

var EntryTypes = []string{
	TypeMeal, TypeWorkout, TypeJournal, TypeWorkSession, TypeBreathwork,
	TypeWeight, TypeFinance, TypeFastStart, TypeFastEnd,
}

// Exercise is one movement inside a workout entry.
type Exercise struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

type Entry struct {
	ID        uuid.UUID                     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID                     `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string                        `gorm:"size:20;not null;index" json:"type"`
	Timestamp time.Time                     `gorm:"not null;index" json:"timestamp"`
	Title     string                        `gorm:"size:255" json:"title"`
	Note      string                        `gorm:"type:text" json:"note"`
	Tags      datatypes.JSONSlice[string]   `gorm:"type:jsonb" json:"tags"`
	Exercises datatypes.JSONSlice[Exercise] `gorm:"type:jsonb" json:"exercises,omitempty"`
	Duration  *int                          `json:"duration,omitempty"`
	Amount    *float64                      `json:"amount,omitempty"`
	IsExpense *bool                         `json:"is_expense,omitempty"`
	Category  *string                       `gorm:"size:50" json:"category,omitempty"`
	Weight    *float64                      `json:"weight,omitempty"`
	Mood      *int                          `json:"mood,omitempty"`
	Energy    *int                          `json:"energy,omitempty"`
	CreatedAt time.Time                     `json:"created_at"`
	DeletedAt gorm.DeletedAt                `gorm:"index" json:"-"`
}

// --- DTOs ---

type CreateEntryRequest struct {
	Type      string     `json:"type"`
	Timestamp *time.Time `json:"timestamp"`
	Title     string     `json:"title"`
	Note      string     `json:"note"`
	Tags      []string   `json:"tags"`
	Exercises []Exercise `json:"exercises"`
	Duration  *int       `json:"duration"`
	Amount    *float64   `json:"amount"`
	IsExpense *bool      `json:"is_expense"`
	Category  *string    `json:"category"`
	Weight    *float64   `json:"weight"`
	Mood      *int       `json:"mood"`
	Energy    *int       `json:"energy"`
}

type EntriesListResponse struct {
	Entries []Entry `json:"entries"`
	Total   int64   `json:"total"`
	Limit   int     `json:"limit"`
	Offset  int     `json:"offset"`
}

type StreakResponse struct {
	Streak int `json:"streak"`
}
