package finance

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack-backend/internal/dto"
	"github.com/lifetrackhq/lifetrack-backend/internal/scope"
)

type RecurringHandler struct {
	recurringService *RecurringService
}

func NewRecurringHandler(recurringService *RecurringService) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService}
}

// CreateTemplate handles POST /recurring.
func (h *RecurringHandler) CreateTemplate(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	tmpl, err := h.recurringService.CreateTemplate(userID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidFrequency) || errors.Is(err, ErrInvalidDueDate) || errors.Is(err, ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create template",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(tmpl)
}

// GetTemplates handles GET /recurring.
func (h *RecurringHandler) GetTemplates(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	list, err := h.recurringService.GetTemplates(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch templates",
		})
	}

	return c.JSON(TemplatesListResponse{Templates: list})
}

// Process handles POST /recurring/process - on-demand pass for the caller.
func (h *RecurringHandler) Process(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	processed, err := h.recurringService.ProcessDueForUser(userID, time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to process recurring templates",
		})
	}

	return c.JSON(ProcessResponse{Processed: processed})
}

// DeleteTemplate handles DELETE /recurring/:id.
func (h *RecurringHandler) DeleteTemplate(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid template id",
		})
	}

	if err := h.recurringService.DeleteTemplate(userID, templateID); err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete template",
		})
	}

	return c.JSON(fiber.Map{"message": "Template deleted"})
}
