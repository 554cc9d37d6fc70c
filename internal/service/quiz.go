package service

import (
	"context"

	"quizdeck/internal/csvimport"
	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz management operations
type QuizService interface {
	CreateQuizFromCSV(ctx context.Context, req *dto.CreateQuizRequest, csvData []byte) (*dto.CreateQuizResponse, error)
	ListQuizzes(ctx context.Context) (*dto.QuizListResponse, error)
	GetQuiz(ctx context.Context, id string) (*dto.QuizResponse, error)
	SampleCSV() (fileName string, content []byte)
}

// quizService implements QuizService
type quizService struct {
	repo      domain.QuizRepository
	txManager domain.TransactionManager
}

// NewQuizService creates a new instance of quizService
func NewQuizService(repo domain.QuizRepository, txManager domain.TransactionManager) QuizService {
	return &quizService{
		repo:      repo,
		txManager: txManager,
	}
}

// CreateQuizFromCSV parses and validates the uploaded CSV, then persists
// the quiz and its questions in one transaction. A single bad row aborts
// the whole upload; nothing partial is ever stored.
func (s *quizService) CreateQuizFromCSV(ctx context.Context, req *dto.CreateQuizRequest, csvData []byte) (*dto.CreateQuizResponse, error) {
	questions, err := csvimport.Parse(csvData)
	if err != nil {
		return nil, err
	}

	quiz := domain.NewQuiz(req.Title, req.Description, questions)
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.CreateQuiz(txCtx, quiz)
	})
	if err != nil {
		return nil, domain.NewDatabaseError("Failed to save quiz", err)
	}

	logger.Get().Info("Quiz created",
		zap.String("quiz_id", quiz.ID),
		zap.String("title", quiz.Title),
		zap.Int("question_count", len(quiz.Questions)),
	)

	return &dto.CreateQuizResponse{
		ID:            quiz.ID,
		Title:         quiz.Title,
		QuestionCount: len(quiz.Questions),
	}, nil
}

// ListQuizzes implements QuizService
func (s *quizService) ListQuizzes(ctx context.Context) (*dto.QuizListResponse, error) {
	summaries, err := s.repo.ListQuizzes(ctx)
	if err != nil {
		return nil, domain.NewDatabaseError("Failed to list quizzes", err)
	}

	resp := &dto.QuizListResponse{
		Quizzes: make([]dto.QuizSummaryResponse, 0, len(summaries)),
	}
	for _, summary := range summaries {
		resp.Quizzes = append(resp.Quizzes, dto.QuizSummaryResponse{
			ID:            summary.ID,
			Title:         summary.Title,
			Description:   summary.Description,
			QuestionCount: summary.QuestionCount,
			CreatedAt:     summary.CreatedAt,
		})
	}
	return resp, nil
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, id string) (*dto.QuizResponse, error) {
	quiz, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return nil, domain.NewDatabaseError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}
	return toQuizResponse(quiz), nil
}

// SampleCSV returns the reference CSV offered for download
func (s *quizService) SampleCSV() (string, []byte) {
	return csvimport.SampleFileName, []byte(csvimport.SampleCSV)
}

func toQuizResponse(quiz *domain.Quiz) *dto.QuizResponse {
	resp := &dto.QuizResponse{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		CreatedAt:   quiz.CreatedAt,
		Questions:   make([]dto.QuestionResponse, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		resp.Questions = append(resp.Questions, dto.QuestionResponse{
			Text:    q.Text,
			Options: q.Options,
			Answer:  q.Answer,
		})
	}
	return resp
}
