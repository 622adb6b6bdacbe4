package entries

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack-backend/internal/dto"
	"github.com/lifetrackhq/lifetrack-backend/internal/scope"
)

type EntryHandler struct {
	entryService *EntryService
}

func NewEntryHandler(entryService *EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// CreateEntry handles POST /entries.
func (h *EntryHandler) CreateEntry(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req CreateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.entryService.CreateEntry(userID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create entry",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// GetEntries handles GET /entries - newest-first, optional ?type= filter.
func (h *EntryHandler) GetEntries(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit := c.QueryInt("limit", 100)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	entryType := c.Query("type", "")
	if entryType != "" && !isValidType(entryType) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "invalid entry type",
		})
	}

	list, total, err := h.entryService.GetEntries(userID, entryType, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch entries",
		})
	}

	return c.JSON(EntriesListResponse{
		Entries: list,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// GetStreak handles GET /entries/streak.
func (h *EntryHandler) GetStreak(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	streak, err := h.entryService.GetStreak(userID, time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute streak",
		})
	}

	return c.JSON(StreakResponse{Streak: streak})
}

// DeleteEntry handles DELETE /entries/:id.
func (h *EntryHandler) DeleteEntry(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry id",
		})
	}

	if err := h.entryService.DeleteEntry(userID, entryID); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete entry",
		})
	}

	return c.JSON(fiber.Map{"message": "Entry deleted"})
}
