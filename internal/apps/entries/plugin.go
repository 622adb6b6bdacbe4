package entries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lifetrackhq/lifetrack-backend/internal/config"
	"gorm.io/gorm"
)

type EntriesPlugin struct{}

func New() *EntriesPlugin {
	return &EntriesPlugin{}
}

func (p *EntriesPlugin) ID() string { return "entries" }

func (p *EntriesPlugin) Models() []interface{} {
	return []interface{}{
		&Entry{},
	}
}

func (p *EntriesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewEntryService(db)
	handler := NewEntryHandler(svc)

	router.Post("/entries", handler.CreateEntry)
	router.Get("/entries", handler.GetEntries)
	router.Get("/entries/streak", handler.GetStreak)
	router.Delete("/entries/:id", handler.DeleteEntry)
}
