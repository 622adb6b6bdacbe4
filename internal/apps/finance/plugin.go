package finance

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lifetrackhq/lifetrack-backend/internal/config"
	"gorm.io/gorm"
)

type FinancePlugin struct{}

func New() *FinancePlugin {
	return &FinancePlugin{}
}

func (p *FinancePlugin) ID() string { return "finance" }

func (p *FinancePlugin) Models() []interface{} {
	return []interface{}{
		&RecurringTemplate{},
	}
}

func (p *FinancePlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewRecurringService(db)
	handler := NewRecurringHandler(svc)

	router.Post("/recurring", handler.CreateTemplate)
	router.Get("/recurring", handler.GetTemplates)
	router.Post("/recurring/process", handler.Process)
	router.Delete("/recurring/:id", handler.DeleteTemplate)
}
