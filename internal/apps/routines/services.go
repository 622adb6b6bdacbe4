package routines

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack-backend/internal/scope"
	"gorm.io/gorm"
)

var (
	ErrInvalidRoutineType = errors.New("invalid routine type")
	ErrInvalidWeekday     = errors.New("weekday indices must be between 0 and 6")
	ErrRoutineNotFound    = errors.New("routine not found")
)

type RoutineService struct {
	db *gorm.DB
}

func NewRoutineService(db *gorm.DB) *RoutineService {
	return &RoutineService{db: db}
}

func (s *RoutineService) CreateRoutine(userID uuid.UUID, req CreateRoutineRequest) (*Routine, error) {
	if !isValidRoutineType(req.Type) {
		return nil, ErrInvalidRoutineType
	}
	for _, d := range req.Days {
		if d < 0 || d > 6 {
			return nil, ErrInvalidWeekday
		}
	}

	days := req.Days
	if days == nil {
		days = []int{}
	}

	routine := Routine{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          req.Title,
		Type:           req.Type,
		Days:           days,
		CompletedDates: []string{},
	}

	if err := s.db.Create(&routine).Error; err != nil {
		return nil, fmt.Errorf("failed to create routine: %w", err)
	}
	return &routine, nil
}

func (s *RoutineService) GetRoutines(userID uuid.UUID, now time.Time) ([]RoutineResponse, error) {
	var list []Routine
	err := s.db.Scopes(scope.ForUser(userID)).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}

	resp := make([]RoutineResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, RoutineResponse{
			Routine:        r,
			DueToday:       r.DueOn(now),
			CompletedToday: r.CompletedOn(now),
		})
	}
	return resp, nil
}

// ToggleCompletion adds today's date to the routine's completion list, or
// removes it when already present. The list never holds duplicates.
func (s *RoutineService) ToggleCompletion(userID uuid.UUID, routineID uuid.UUID, now time.Time) (*Routine, error) {
	var routine Routine
	err := s.db.Scopes(scope.ForUser(userID)).First(&routine, "id = ?", routineID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoutineNotFound
	}
	if err != nil {
		return nil, err
	}

	today := now.Format("2006-01-02")
	dates := make([]string, 0, len(routine.CompletedDates)+1)
	removed := false
	for _, d := range routine.CompletedDates {
		if d == today {
			removed = true
			continue
		}
		dates = append(dates, d)
	}
	if !removed {
		dates = append(dates, today)
	}
	routine.CompletedDates = dates

	if err := s.db.Save(&routine).Error; err != nil {
		return nil, fmt.Errorf("failed to toggle routine: %w", err)
	}
	return &routine, nil
}

func (s *RoutineService) DeleteRoutine(userID uuid.UUID, routineID uuid.UUID) error {
	result := s.db.Scopes(scope.ForUser(userID)).Where("id = ?", routineID).Delete(&Routine{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete routine: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

func isValidRoutineType(t string) bool {
	for _, valid := range RoutineTypes {
		if t == valid {
			return true
		}
	}
	return false
}
