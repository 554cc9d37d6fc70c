package domain

import "context"

// QuizRepository defines the interface for quiz persistence
type QuizRepository interface {
	// CreateQuiz persists a quiz together with its questions
	CreateQuiz(ctx context.Context, quiz *Quiz) error

	// GetQuizByID retrieves a quiz with its questions in upload order.
	// Returns (nil, nil) when no quiz exists with the given ID.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)

	// ListQuizzes returns summaries of all quizzes, newest first
	ListQuizzes(ctx context.Context) ([]*QuizSummary, error)
}

// AttemptRepository defines the interface for attempt persistence
type AttemptRepository interface {
	// CreateAttempt persists one completed attempt
	CreateAttempt(ctx context.Context, attempt *Attempt) error

	// GetLeaderboard returns up to limit attempts ordered by score descending
	GetLeaderboard(ctx context.Context, quizID string, limit int) ([]*Attempt, error)
}

// TransactionManager runs a function inside a database transaction
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
