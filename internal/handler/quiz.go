package handler

import (
	"io"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"
	"quizdeck/internal/middleware"
	"quizdeck/internal/service"
	"quizdeck/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz management HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// CreateQuiz handles POST /api/quizzes. The request is a multipart form
// with title, optional description and the CSV file under "file".
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid form data")
	}

	if errs := h.validator.ValidateCreateQuizRequest(req.Title); len(errs) > 0 {
		return errs
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("file")}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInvalidInputError("Failed to open uploaded file")
	}
	defer file.Close()

	csvData, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}

	logger.Get().Info("Quiz upload received",
		zap.String("title", req.Title),
		zap.String("file_name", fileHeader.Filename),
		zap.Int64("file_size", fileHeader.Size),
	)

	resp, err := h.service.CreateQuizFromCSV(c.Context(), &req, csvData)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListQuizzes handles GET /api/quizzes
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	resp, err := h.service.ListQuizzes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuiz handles GET /api/quizzes/:id
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quizID, ok := c.Locals(middleware.LocalQuizID).(string)
	if !ok || quizID == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("quiz_id")}
	}

	resp, err := h.service.GetQuiz(c.Context(), quizID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DownloadSampleCSV handles GET /api/quizzes/sample-csv. It serves the
// reference file users can fill in with their own questions.
func (h *QuizHandler) DownloadSampleCSV(c *fiber.Ctx) error {
	fileName, content := h.service.SampleCSV()
	c.Attachment(fileName)
	return c.Send(content)
}
