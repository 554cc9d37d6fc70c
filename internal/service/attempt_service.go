package service

import (
	"context"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"

	"go.uber.org/zap"
)

// AttemptService defines the interface for recording quiz results and
// ranking them
type AttemptService interface {
	RecordAttempt(ctx context.Context, quizID string, req *dto.RecordAttemptRequest) (*dto.AttemptResponse, error)
	GetLeaderboard(ctx context.Context, quizID string, limit int) (*dto.LeaderboardResponse, error)
}

// attemptService implements AttemptService
type attemptService struct {
	attempts domain.AttemptRepository
	quizzes  domain.QuizRepository
}

// NewAttemptService creates a new instance of attemptService
func NewAttemptService(attempts domain.AttemptRepository, quizzes domain.QuizRepository) AttemptService {
	return &attemptService{
		attempts: attempts,
		quizzes:  quizzes,
	}
}

// RecordAttempt stores one finished quiz run. The quiz must exist; the
// player name defaults to Anonymous when blank.
func (s *attemptService) RecordAttempt(ctx context.Context, quizID string, req *dto.RecordAttemptRequest) (*dto.AttemptResponse, error) {
	quiz, err := s.quizzes.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewDatabaseError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	attempt := domain.NewAttempt(quizID, req.UserName, req.Score, req.MaxScore)
	if err := attempt.Validate(); err != nil {
		return nil, err
	}

	if err := s.attempts.CreateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewDatabaseError("Failed to record attempt", err)
	}

	logger.Get().Info("Attempt recorded",
		zap.String("quiz_id", quizID),
		zap.String("user_name", attempt.UserName),
		zap.Int("score", attempt.Score),
		zap.Int("max_score", attempt.MaxScore),
	)

	return toAttemptResponse(attempt), nil
}

// GetLeaderboard implements AttemptService. An unknown quiz yields an
// empty board rather than an error.
func (s *attemptService) GetLeaderboard(ctx context.Context, quizID string, limit int) (*dto.LeaderboardResponse, error) {
	attempts, err := s.attempts.GetLeaderboard(ctx, quizID, limit)
	if err != nil {
		return nil, domain.NewDatabaseError("Failed to get leaderboard", err)
	}

	resp := &dto.LeaderboardResponse{
		QuizID:  quizID,
		Entries: make([]dto.LeaderboardEntry, 0, len(attempts)),
	}
	for i, attempt := range attempts {
		resp.Entries = append(resp.Entries, dto.LeaderboardEntry{
			Rank:       i + 1,
			UserName:   attempt.UserName,
			Score:      attempt.Score,
			MaxScore:   attempt.MaxScore,
			Percentage: attempt.Percentage,
		})
	}
	return resp, nil
}

func toAttemptResponse(attempt *domain.Attempt) *dto.AttemptResponse {
	return &dto.AttemptResponse{
		ID:         attempt.ID,
		QuizID:     attempt.QuizID,
		UserName:   attempt.UserName,
		Score:      attempt.Score,
		MaxScore:   attempt.MaxScore,
		Percentage: attempt.Percentage,
		CreatedAt:  attempt.CreatedAt,
	}
}
