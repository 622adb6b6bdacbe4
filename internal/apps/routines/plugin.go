package routines

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lifetrackhq/lifetrack-backend/internal/config"
	"gorm.io/gorm"
)

type RoutinesPlugin struct{}

func New() *RoutinesPlugin {
	return &RoutinesPlugin{}
}

func (p *RoutinesPlugin) ID() string { return "routines" }

func (p *RoutinesPlugin) Models() []interface{} {
	return []interface{}{
		&Routine{},
	}
}

func (p *RoutinesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewRoutineService(db)
	handler := NewRoutineHandler(svc)

	router.Post("/routines", handler.CreateRoutine)
	router.Get("/routines", handler.GetRoutines)
	router.Post("/routines/:id/toggle", handler.ToggleCompletion)
	router.Delete("/routines/:id", handler.DeleteRoutine)
}
