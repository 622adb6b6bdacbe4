package trophies

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lifetrackhq/lifetrack-backend/internal/dto"
	"github.com/lifetrackhq/lifetrack-backend/internal/scope"
)

type TrophyHandler struct {
	trophyService *TrophyService
}

func NewTrophyHandler(trophyService *TrophyService) *TrophyHandler {
	return &TrophyHandler{trophyService: trophyService}
}

// GetCatalog handles GET /trophies.
func (h *TrophyHandler) GetCatalog(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.trophyService.GetCatalog(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch achievements",
		})
	}

	return c.JSON(resp)
}

// Evaluate handles POST /trophies/evaluate.
func (h *TrophyHandler) Evaluate(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.trophyService.Evaluate(userID, time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to evaluate achievements",
		})
	}

	return c.JSON(resp)
}
