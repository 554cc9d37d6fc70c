package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"quizdeck/internal/domain"
	"quizdeck/internal/repository/models"
	"quizdeck/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// CreateQuiz implements domain.QuizRepository. It assigns IDs to the quiz
// and its questions and writes one row per question with its upload
// position. Run it inside a transaction so a failed question insert never
// leaves a partial quiz behind.
func (a *QuizDatabaseAdapter) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	executor := GetExecutor(ctx, a.db)

	if quiz.ID == "" {
		quiz.ID = util.NewULID()
	}
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now()
	}

	quizQuery := `INSERT INTO quizzes (id, title, description, created_at)
		VALUES (:id, :title, :description, :created_at)`
	if _, err := executor.NamedExecContext(ctx, quizQuery, toModelQuiz(quiz)); err != nil {
		return fmt.Errorf("failed to insert quiz: %w", err)
	}

	questionQuery := `INSERT INTO questions (id, quiz_id, question_text, options, correct_answer, position)
		VALUES (:id, :quiz_id, :question_text, :options, :correct_answer, :position)`
	for i := range quiz.Questions {
		modelQuestion := toModelQuestion(quiz.ID, i, &quiz.Questions[i])
		if _, err := executor.NamedExecContext(ctx, questionQuery, modelQuestion); err != nil {
			return fmt.Errorf("failed to insert question %d: %w", i+1, err)
		}
	}
	return nil
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	executor := GetExecutor(ctx, a.db)

	var modelQuiz models.Quiz
	quizQuery := `SELECT id, title, description, created_at FROM quizzes WHERE id = ?`
	if err := executor.GetContext(ctx, &modelQuiz, quizQuery, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}

	var modelQuestions []models.Question
	questionQuery := `SELECT id, quiz_id, question_text, options, correct_answer, position
		FROM questions WHERE quiz_id = ? ORDER BY position ASC`
	if err := executor.SelectContext(ctx, &modelQuestions, questionQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get questions for quiz %s: %w", id, err)
	}

	return toDomainQuiz(&modelQuiz, modelQuestions), nil
}

// ListQuizzes implements domain.QuizRepository
func (a *QuizDatabaseAdapter) ListQuizzes(ctx context.Context) ([]*domain.QuizSummary, error) {
	executor := GetExecutor(ctx, a.db)

	var rows []models.QuizSummaryRow
	query := `SELECT q.id, q.title, q.description, q.created_at, COUNT(qs.id) AS question_count
		FROM quizzes q
		LEFT JOIN questions qs ON qs.quiz_id = q.id
		GROUP BY q.id, q.title, q.description, q.created_at
		ORDER BY q.created_at DESC`
	if err := executor.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	summaries := make([]*domain.QuizSummary, len(rows))
	for i := range rows {
		summaries[i] = toDomainQuizSummary(&rows[i])
	}
	return summaries, nil
}

func toModelQuiz(quiz *domain.Quiz) *models.Quiz {
	return &models.Quiz{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: util.StringToNullString(quiz.Description),
		CreatedAt:   quiz.CreatedAt,
	}
}

func toModelQuestion(quizID string, index int, q *domain.Question) *models.Question {
	return &models.Question{
		ID:            util.NewULID(),
		QuizID:        quizID,
		QuestionText:  q.Text,
		Options:       models.StringSlice(q.Options),
		CorrectAnswer: q.Answer,
		Position:      index + 1,
	}
}

func toDomainQuiz(modelQuiz *models.Quiz, modelQuestions []models.Question) *domain.Quiz {
	questions := make([]domain.Question, len(modelQuestions))
	for i := range modelQuestions {
		questions[i] = domain.Question{
			Text:    modelQuestions[i].QuestionText,
			Options: modelQuestions[i].Options,
			Answer:  modelQuestions[i].CorrectAnswer,
		}
	}
	return &domain.Quiz{
		ID:          modelQuiz.ID,
		Title:       modelQuiz.Title,
		Description: modelQuiz.Description.String,
		Questions:   questions,
		CreatedAt:   modelQuiz.CreatedAt,
	}
}

func toDomainQuizSummary(row *models.QuizSummaryRow) *domain.QuizSummary {
	return &domain.QuizSummary{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description.String,
		QuestionCount: row.QuestionCount,
		CreatedAt:     row.CreatedAt,
	}
}
