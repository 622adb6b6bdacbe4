package trophies

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lifetrackhq/lifetrack-backend/internal/config"
	"gorm.io/gorm"
)

type TrophiesPlugin struct{}

func New() *TrophiesPlugin {
	return &TrophiesPlugin{}
}

func (p *TrophiesPlugin) ID() string { return "trophies" }

// Models returns nil; unlocked ids live inside the settings profile.
func (p *TrophiesPlugin) Models() []interface{} {
	return nil
}

func (p *TrophiesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewTrophyService(db)
	handler := NewTrophyHandler(svc)

	router.Get("/trophies", handler.GetCatalog)
	router.Post("/trophies/evaluate", handler.Evaluate)
}
