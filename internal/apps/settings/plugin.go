package settings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lifetrackhq/lifetrack-backend/internal/config"
	"gorm.io/gorm"
)

type SettingsPlugin struct{}

func New() *SettingsPlugin {
	return &SettingsPlugin{}
}

func (p *SettingsPlugin) ID() string { return "settings" }

func (p *SettingsPlugin) Models() []interface{} {
	return []interface{}{
		&Profile{},
	}
}

func (p *SettingsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewSettingsService(db)
	handler := NewSettingsHandler(svc)

	router.Get("/settings", handler.GetSettings)
	router.Patch("/settings", handler.UpdateSettings)
	router.Put("/settings", handler.ReplaceSettings)
}
