package fasting

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lifetrackhq/lifetrack-backend/internal/config"
	"gorm.io/gorm"
)

type FastingPlugin struct{}

func New() *FastingPlugin {
	return &FastingPlugin{}
}

func (p *FastingPlugin) ID() string { return "fasting" }

// Models returns nil; the engine derives everything from entries and settings.
func (p *FastingPlugin) Models() []interface{} {
	return nil
}

func (p *FastingPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewFastingService(db)
	handler := NewFastingHandler(svc)

	router.Get("/fasting/status", handler.GetStatus)
}
