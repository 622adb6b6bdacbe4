package insights

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lifetrackhq/lifetrack-backend/internal/config"
	"gorm.io/gorm"
)

type InsightsPlugin struct{}

func New() *InsightsPlugin {
	return &InsightsPlugin{}
}

func (p *InsightsPlugin) ID() string { return "insights" }

// Models returns nil; insights are derived from the entry log.
func (p *InsightsPlugin) Models() []interface{} {
	return nil
}

func (p *InsightsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewInsightService(db)
	handler := NewInsightHandler(svc)

	router.Get("/insights", handler.GetSummary)
}
