package insights

import (
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/entries"
	"gorm.io/gorm"
)

type InsightService struct {
	entryService *entries.EntryService
}

func NewInsightService(db *gorm.DB) *InsightService {
	return &InsightService{entryService: entries.NewEntryService(db)}
}

type SummaryResponse struct {
	WeeklyActivity []DayActivity   `json:"weekly_activity"`
	FastingTrend   []float64       `json:"fasting_trend"`
	Spending       []CategorySpend `json:"spending"`
	MonthlySpend   float64         `json:"monthly_spend"`
	Heatmap        []HeatmapCell   `json:"heatmap"`
	Streak         int             `json:"streak"`
}

// GetSummary recomputes every chart series from the full log. Nothing is
// cached; the aggregation is a handful of linear passes.
func (s *InsightService) GetSummary(userID uuid.UUID, now time.Time) (*SummaryResponse, error) {
	list, err := s.entryService.GetAll(userID)
	if err != nil {
		return nil, err
	}

	spending, monthlyTotal := SpendingBreakdown(list, now)
	return &SummaryResponse{
		WeeklyActivity: WeeklyActivity(list, now),
		FastingTrend:   FastingTrend(list),
		Spending:       spending,
		MonthlySpend:   monthlyTotal,
		Heatmap:        ConsistencyHeatmap(list, now),
		Streak:         entries.Streak(list, now),
	}, nil
}
