package insights

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lifetrackhq/lifetrack-backend/internal/dto"
	"github.com/lifetrackhq/lifetrack-backend/internal/scope"
)

type InsightHandler struct {
	insightService *InsightService
}

func NewInsightHandler(insightService *InsightService) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GetSummary handles GET /insights.
func (h *InsightHandler) GetSummary(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	summary, err := h.insightService.GetSummary(userID, time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute insights",
		})
	}

	return c.JSON(summary)
}
