package routines

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack-backend/internal/dto"
	"github.com/lifetrackhq/lifetrack-backend/internal/scope"
)

type RoutineHandler struct {
	routineService *RoutineService
}

func NewRoutineHandler(routineService *RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

// CreateRoutine handles POST /routines.
func (h *RoutineHandler) CreateRoutine(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req CreateRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	routine, err := h.routineService.CreateRoutine(userID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidRoutineType) || errors.Is(err, ErrInvalidWeekday) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create routine",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(routine)
}

// GetRoutines handles GET /routines.
func (h *RoutineHandler) GetRoutines(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	list, err := h.routineService.GetRoutines(userID, time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch routines",
		})
	}

	return c.JSON(RoutinesListResponse{Routines: list})
}

// ToggleCompletion handles POST /routines/:id/toggle.
func (h *RoutineHandler) ToggleCompletion(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	routineID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid routine id",
		})
	}

	routine, err := h.routineService.ToggleCompletion(userID, routineID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to toggle routine",
		})
	}

	return c.JSON(routine)
}

// DeleteRoutine handles DELETE /routines/:id.
func (h *RoutineHandler) DeleteRoutine(c *fiber.Ctx) error {
	userID, err := scope.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	routineID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid routine id",
		})
	}

	if err := h.routineService.DeleteRoutine(userID, routineID); err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete routine",
		})
	}

	return c.JSON(fiber.Map{"message": "Routine deleted"})
}
