package fasting

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lifetrackhq/lifetrack-backend/internal/dto"
	"github.com/lifetrackhq/lifetrack-backend/internal/scope"
)

type FastingHandler struct {
	fastingService *FastingService
}

func NewFastingHandler(fastingService *FastingService) *FastingHandler {
	return &FastingHandler{fastingService: fastingService}
}

// GetStatus handles GET /fasting/status.
func (h *FastingHandler) GetStatus(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	status, err := h.fastingService.GetStatus(userID, time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to derive fasting status",
		})
	}

	return c.JSON(status)
}
