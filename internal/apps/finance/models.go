package finance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FreqWeekly   = "weekly"
	FreqBiweekly = "biweekly"
	FreqMonthly  = "monthly"
	FreqYearly   = "yearly"
)

var Frequencies = []string{FreqWeekly, FreqBiweekly, FreqMonthly, FreqYearly}

// DateLayout is the wire and storage format for due dates.
const DateLayout = "2006-01-02"

// RecurringTemplate is a stored definition that periodically materializes a
// finance entry without user action. NextDueDate only ever moves forward, by
// exactly one frequency period per processing run.
type RecurringTemplate struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string         `gorm:"size:255;not null" json:"title"`
	Amount        float64        `gorm:"not null" json:"amount"`
	IsExpense     bool           `gorm:"default:true" json:"is_expense"`
	Category      string         `gorm:"size:50" json:"category"`
	Frequency     string         `gorm:"size:10;not null" json:"frequency"`
	NextDueDate   string         `gorm:"size:10;not null;index" json:"next_due_date"`
	LastProcessed *time.Time     `json:"last_processed,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// --- DTOs ---

type CreateTemplateRequest struct {
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	IsExpense   *bool   `json:"is_expense"`
	Category    string  `json:"category"`
	Frequency   string  `json:"frequency"`
	NextDueDate string  `json:"next_due_date"`
}

type TemplatesListResponse struct {
	Templates []RecurringTemplate `json:"templates"`
}

type ProcessResponse struct {
	Processed int `json:"processed"`
}
