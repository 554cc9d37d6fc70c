package repository

import (
	"context"
	"fmt"
	"time"

	"quizdeck/internal/domain"
	"quizdeck/internal/repository/models"
	"quizdeck/internal/util"

	"github.com/jmoiron/sqlx"
)

// AttemptDatabaseAdapter implements domain.AttemptRepository using sqlx.DB
type AttemptDatabaseAdapter struct {
	db *sqlx.DB
}

// NewAttemptDatabaseAdapter creates a new instance of AttemptDatabaseAdapter
func NewAttemptDatabaseAdapter(db *sqlx.DB) domain.AttemptRepository {
	return &AttemptDatabaseAdapter{db: db}
}

// CreateAttempt implements domain.AttemptRepository. The user name is
// normalized and the percentage recomputed from the score pair at write
// time; neither is trusted from the caller.
func (a *AttemptDatabaseAdapter) CreateAttempt(ctx context.Context, attempt *domain.Attempt) error {
	executor := GetExecutor(ctx, a.db)

	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}
	attempt.UserName = domain.NormalizeUserName(attempt.UserName)
	attempt.Percentage = domain.Percentage(attempt.Score, attempt.MaxScore)

	query := `INSERT INTO quiz_attempts (id, quiz_id, user_name, score, max_score, percentage, created_at)
		VALUES (:id, :quiz_id, :user_name, :score, :max_score, :percentage, :created_at)`
	if _, err := executor.NamedExecContext(ctx, query, toModelAttempt(attempt)); err != nil {
		return fmt.Errorf("failed to insert quiz attempt: %w", err)
	}
	return nil
}

// GetLeaderboard implements domain.AttemptRepository
func (a *AttemptDatabaseAdapter) GetLeaderboard(ctx context.Context, quizID string, limit int) ([]*domain.Attempt, error) {
	executor := GetExecutor(ctx, a.db)

	var rows []models.QuizAttempt
	query := `SELECT id, quiz_id, user_name, score, max_score, percentage, created_at
		FROM quiz_attempts WHERE quiz_id = ? ORDER BY score DESC LIMIT ?`
	if err := executor.SelectContext(ctx, &rows, query, quizID, limit); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard for quiz %s: %w", quizID, err)
	}

	attempts := make([]*domain.Attempt, len(rows))
	for i := range rows {
		attempts[i] = toDomainAttempt(&rows[i])
	}
	return attempts, nil
}

func toModelAttempt(attempt *domain.Attempt) *models.QuizAttempt {
	return &models.QuizAttempt{
		ID:         attempt.ID,
		QuizID:     attempt.QuizID,
		UserName:   attempt.UserName,
		Score:      attempt.Score,
		MaxScore:   attempt.MaxScore,
		Percentage: attempt.Percentage,
		CreatedAt:  attempt.CreatedAt,
	}
}

func toDomainAttempt(row *models.QuizAttempt) *domain.Attempt {
	return &domain.Attempt{
		ID:         row.ID,
		QuizID:     row.QuizID,
		UserName:   row.UserName,
		Score:      row.Score,
		MaxScore:   row.MaxScore,
		Percentage: row.Percentage,
		CreatedAt:  row.CreatedAt,
	}
}
