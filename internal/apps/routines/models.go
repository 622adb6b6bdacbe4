package routines

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TypeDiet     = "diet"
	TypeExercise = "exercise"
	TypeMindset  = "mindset"
)

var RoutineTypes = []string{TypeDiet, TypeExercise, TypeMindset}

// Routine is a recurring checklist template. Days holds weekday indices 0-6
// (Sunday = 0); an empty set means every day. CompletedDates holds the
// YYYY-MM-DD dates on which the routine was checked off.
type Routine struct {
	ID             uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user_id"`
	Title          string                      `gorm:"size:255;not null" json:"title"`
	Type           string                      `gorm:"size:20;not null" json:"type"`
	Days           datatypes.JSONSlice[int]    `gorm:"type:jsonb" json:"days"`
	CompletedDates datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"completed_dates"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
	DeletedAt      gorm.DeletedAt              `gorm:"index" json:"-"`
}

// DueOn reports whether the routine is scheduled for the given day.
func (r *Routine) DueOn(t time.Time) bool {
	if len(r.Days) == 0 {
		return true
	}
	weekday := int(t.Weekday())
	for _, d := range r.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// CompletedOn reports whether the routine was checked off on the given day.
func (r *Routine) CompletedOn(t time.Time) bool {
	day := t.Format("2006-01-02")
	for _, d := range r.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// --- DTOs ---

type CreateRoutineRequest struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	Days  []int  `json:"days"`
}

type RoutineResponse struct {
	Routine
	DueToday       bool `json:"due_today"`
	CompletedToday bool `json:"completed_today"`
}

type RoutinesListResponse struct {
	Routines []RoutineResponse `json:"routines"`
}
