package coach

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lifetrackhq/lifetrack-backend/internal/dto"
	"github.com/lifetrackhq/lifetrack-backend/internal/scope"
)

type CoachHandler struct {
	coachService *CoachService
}

func NewCoachHandler(coachService *CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// GetHistory handles GET /coach/messages.
func (h *CoachHandler) GetHistory(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	messages, err := h.coachService.GetHistory(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch messages",
		})
	}

	return c.JSON(HistoryResponse{Messages: messages})
}

// SendMessage handles POST /coach/messages.
func (h *CoachHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.coachService.SendMessage(userID, req.Content, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyMessage):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, ErrMissingAPIKey):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, ErrAIFailure):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to send message",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ClearHistory handles DELETE /coach/messages.
func (h *CoachHandler) ClearHistory(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.coachService.ClearHistory(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to clear history",
		})
	}

	return c.JSON(fiber.Map{"message": "History cleared"})
}
