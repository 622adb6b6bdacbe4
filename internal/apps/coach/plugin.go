package coach

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lifetrackhq/lifetrack-backend/internal/config"
	"gorm.io/gorm"
)

type CoachPlugin struct{}

func New() *CoachPlugin {
	return &CoachPlugin{}
}

func (p *CoachPlugin) ID() string { return "coach" }

func (p *CoachPlugin) Models() []interface{} {
	return []interface{}{
		&Message{},
	}
}

func (p *CoachPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewCoachService(db, cfg)
	handler := NewCoachHandler(svc)

	router.Get("/coach/messages", handler.GetHistory)
	router.Post("/coach/messages", handler.SendMessage)
	router.Delete("/coach/messages", handler.ClearHistory)
}
