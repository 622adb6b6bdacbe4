package entries

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack-backend/internal/scope"
	"gorm.io/gorm"
)

var (
	ErrInvalidType   = errors.New("invalid entry type")
	ErrEntryNotFound = errors.New("entry not found")
)

type EntryService struct {
	db *gorm.DB
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{db: db}
}

// CreateEntry appends a new immutable entry to the user's log. The timestamp
// is user-suppliable at creation time and defaults to now.
func (s *EntryService) CreateEntry(userID uuid.UUID, req CreateEntryRequest) (*Entry, error) {
	if !isValidType(req.Type) {
		return nil, ErrInvalidType
	}

	ts := time.Now().UTC()
	if req.Timestamp != nil {
		ts = req.Timestamp.UTC()
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	entry := Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      req.Type,
		Timestamp: ts,
		Title:     req.Title,
		Note:      req.Note,
		Tags:      tags,
		Exercises: req.Exercises,
		Duration:  req.Duration,
		Amount:    req.Amount,
		IsExpense: req.IsExpense,
		Category:  req.Category,
		Weight:    req.Weight,
		Mood:      req.Mood,
		Energy:    req.Energy,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	return &entry, nil
}

// GetEntries returns the user's log newest-first, optionally filtered by type.
func (s *EntryService) GetEntries(userID uuid.UUID, entryType string, limit, offset int) ([]Entry, int64, error) {
	var list []Entry
	var total int64

	q := s.db.Model(&Entry{}).Scopes(scope.ForUser(userID))
	if entryType != "" {
		q = q.Where("type = ?", entryType)
	}
	q.Count(&total)

	err := q.Order("timestamp DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error

	return list, total, err
}

// GetAll returns the full log newest-first. Derived computations (streak,
// fasting, achievements, insights) work over the whole history.
func (s *EntryService) GetAll(userID uuid.UUID) ([]Entry, error) {
	var list []Entry
	err := s.db.Scopes(scope.ForUser(userID)).
		Order("timestamp DESC").
		Find(&list).Error
	return list, err
}

// DeleteEntry soft-deletes an entry only if owned by the user.
func (s *EntryService) DeleteEntry(userID uuid.UUID, entryID uuid.UUID) error {
	result := s.db.Scopes(scope.ForUser(userID)).Where("id = ?", entryID).Delete(&Entry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// GetStreak computes the consecutive-day logging streak from the full log.
func (s *EntryService) GetStreak(userID uuid.UUID, now time.Time) (int, error) {
	list, err := s.GetAll(userID)
	if err != nil {
		return 0, err
	}
	return Streak(list, now), nil
}

func isValidType(t string) bool {
	for _, valid := range EntryTypes {
		if t == valid {
			return true
		}
	}
	return false
}
