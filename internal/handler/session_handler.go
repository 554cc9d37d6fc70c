package handler

import (
	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/middleware"
	"quizdeck/internal/service"
	"quizdeck/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles quiz run HTTP requests
type SessionHandler struct {
	service   service.SessionService
	validator *validation.Validator
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// sessionID validates and returns the :id path parameter
func (h *SessionHandler) sessionID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if errs := h.validator.ValidateSessionID(id); len(errs) > 0 {
		return "", errs
	}
	return id, nil
}

// StartSession handles POST /api/quizzes/:id/sessions
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	quizID, ok := c.Locals(middleware.LocalQuizID).(string)
	if !ok || quizID == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("quiz_id")}
	}

	resp, err := h.service.StartSession(c.Context(), quizID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetSession handles GET /api/sessions/:id
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetSession(id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SelectOption handles POST /api/sessions/:id/select
func (h *SessionHandler) SelectOption(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return err
	}

	var req dto.SelectOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if req.Option == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("option")}
	}

	resp, err := h.service.SelectOption(id, req.Option)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswer handles POST /api/sessions/:id/submit
func (h *SessionHandler) SubmitAnswer(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.SubmitAnswer(id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// NextQuestion handles POST /api/sessions/:id/next
func (h *SessionHandler) NextQuestion(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.NextQuestion(id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SaveResult handles POST /api/sessions/:id/result. Only a completed run
// can be saved to the leaderboard.
func (h *SessionHandler) SaveResult(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return err
	}

	var req dto.SaveResultRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.service.SaveResult(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// DeleteSession handles DELETE /api/sessions/:id
func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return err
	}

	if err := h.service.ResetSession(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
