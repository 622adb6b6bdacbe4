package finance

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/entries"
	"github.com/lifetrackhq/lifetrack-backend/internal/scope"
	"gorm.io/gorm"
)

var (
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidDueDate   = errors.New("next_due_date must be YYYY-MM-DD")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrTemplateNotFound = errors.New("recurring template not found")
)

type RecurringService struct {
	db           *gorm.DB
	entryService *entries.EntryService
}

func NewRecurringService(db *gorm.DB) *RecurringService {
	return &RecurringService{db: db, entryService: entries.NewEntryService(db)}
}

// CreateTemplate stores a new recurring definition and immediately runs a
// processing pass for the user, so a template created with a past due date
// materializes its first transaction right away.
func (s *RecurringService) CreateTemplate(userID uuid.UUID, req CreateTemplateRequest) (*RecurringTemplate, error) {
	if !isValidFrequency(req.Frequency) {
		return nil, ErrInvalidFrequency
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := time.Parse(DateLayout, req.NextDueDate); err != nil {
		return nil, ErrInvalidDueDate
	}

	isExpense := true
	if req.IsExpense != nil {
		isExpense = *req.IsExpense
	}

	tmpl := RecurringTemplate{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Amount:      req.Amount,
		IsExpense:   isExpense,
		Category:    req.Category,
		Frequency:   req.Frequency,
		NextDueDate: req.NextDueDate,
	}

	if err := s.db.Create(&tmpl).Error; err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	if _, err := s.ProcessDueForUser(userID, time.Now().UTC()); err != nil {
		slog.Error("recurring processing after create failed", "error", err, "user_id", userID.String())
	}

	var fresh RecurringTemplate
	if err := s.db.First(&fresh, "id = ?", tmpl.ID).Error; err != nil {
		return &tmpl, nil
	}
	return &fresh, nil
}

func (s *RecurringService) GetTemplates(userID uuid.UUID) ([]RecurringTemplate, error) {
	var list []RecurringTemplate
	err := s.db.Scopes(scope.ForUser(userID)).
		Order("next_due_date ASC").
		Find(&list).Error
	return list, err
}

func (s *RecurringService) DeleteTemplate(userID uuid.UUID, templateID uuid.UUID) error {
	result := s.db.Scopes(scope.ForUser(userID)).Where("id = ?", templateID).Delete(&RecurringTemplate{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

// ProcessDueForUser materializes at most one transaction per due template
// and advances each processed template by exactly one period. An overdue
// template converges over successive runs rather than catching up in one.
func (s *RecurringService) ProcessDueForUser(userID uuid.UUID, now time.Time) (int, error) {
	var due []RecurringTemplate
	err := s.db.Scopes(scope.ForUser(userID)).
		Where("next_due_date <= ?", now.Format(DateLayout)).
		Find(&due).Error
	if err != nil {
		return 0, err
	}
	return s.process(due, now)
}

// ProcessAllDue is the nightly pass over every user's templates.
func (s *RecurringService) ProcessAllDue(now time.Time) (int, error) {
	var due []RecurringTemplate
	err := s.db.Where("next_due_date <= ?", now.Format(DateLayout)).Find(&due).Error
	if err != nil {
		return 0, err
	}
	return s.process(due, now)
}

func (s *RecurringService) process(due []RecurringTemplate, now time.Time) (int, error) {
	processed := 0
	for i := range due {
		if err := s.processOne(&due[i], now); err != nil {
			slog.Error("recurring template processing failed",
				"error", err,
				"template_id", due[i].ID.String(),
				"user_id", due[i].UserID.String())
			continue
		}
		processed++
	}
	return processed, nil
}

func (s *RecurringService) processOne(tmpl *RecurringTemplate, now time.Time) error {
	if _, err := s.entryService.CreateEntry(tmpl.UserID, materializedEntry(tmpl, now)); err != nil {
		return fmt.Errorf("failed to materialize entry: %w", err)
	}

	prev, err := time.Parse(DateLayout, tmpl.NextDueDate)
	if err != nil {
		return fmt.Errorf("stored due date is malformed: %w", err)
	}

	next := NextDue(tmpl.Frequency, prev)
	processedAt := now
	return s.db.Model(tmpl).Updates(map[string]interface{}{
		"next_due_date":  next.Format(DateLayout),
		"last_processed": &processedAt,
	}).Error
}

// materializedEntry builds the create request for one recurring
// materialization. The run clock stamps the entry so it matches the
// template's lastProcessed.
func materializedEntry(tmpl *RecurringTemplate, now time.Time) entries.CreateEntryRequest {
	amount := tmpl.Amount
	isExpense := tmpl.IsExpense
	category := tmpl.Category
	ts := now
	return entries.CreateEntryRequest{
		Type:      entries.TypeFinance,
		Timestamp: &ts,
		Title:     tmpl.Title,
		Tags:      []string{"recurring"},
		Amount:    &amount,
		IsExpense: &isExpense,
		Category:  &category,
	}
}

// NextDue advances a due date by exactly one frequency period, computed from
// the previous due date rather than from today.
func NextDue(frequency string, from time.Time) time.Time {
	switch frequency {
	case FreqWeekly:
		return from.AddDate(0, 0, 7)
	case FreqBiweekly:
		return from.AddDate(0, 0, 14)
	case FreqMonthly:
		return from.AddDate(0, 1, 0)
	case FreqYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

func isValidFrequency(f string) bool {
	for _, valid := range Frequencies {
		if f == valid {
			return true
		}
	}
	return false
}
