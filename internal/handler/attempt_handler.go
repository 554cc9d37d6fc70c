package handler

import (
	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/middleware"
	"quizdeck/internal/service"
	"quizdeck/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AttemptHandler handles quiz attempt HTTP requests
type AttemptHandler struct {
	service   service.AttemptService
	validator *validation.Validator
}

// NewAttemptHandler creates a new AttemptHandler instance
func NewAttemptHandler(service service.AttemptService) *AttemptHandler {
	return &AttemptHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// RecordAttempt handles POST /api/quizzes/:id/attempts. It records an
// externally scored run, for clients that track their own quiz state.
func (h *AttemptHandler) RecordAttempt(c *fiber.Ctx) error {
	quizID, ok := c.Locals(middleware.LocalQuizID).(string)
	if !ok || quizID == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("quiz_id")}
	}

	var req dto.RecordAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if errs := h.validator.ValidateRecordAttemptRequest(req.Score, req.MaxScore); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.RecordAttempt(c.Context(), quizID, &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetLeaderboard handles GET /api/quizzes/:id/leaderboard
func (h *AttemptHandler) GetLeaderboard(c *fiber.Ctx) error {
	quizID, ok := c.Locals(middleware.LocalQuizID).(string)
	if !ok || quizID == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("quiz_id")}
	}
	limit, ok := c.Locals(middleware.LocalLimit).(int)
	if !ok {
		return domain.ValidationErrors{domain.NewMissingFieldError("limit")}
	}

	resp, err := h.service.GetLeaderboard(c.Context(), quizID, limit)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
