package service

import (
	"context"
	"errors"
	"testing"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func attemptTestQuiz() *domain.Quiz {
	return &domain.Quiz{
		ID:    "q1",
		Title: "Capitals",
		Questions: []domain.Question{
			{Text: "Q1", Options: []string{"A", "B"}, Answer: "A"},
		},
	}
}

func TestRecordAttempt(t *testing.T) {
	attempts := new(MockAttemptRepository)
	quizzes := new(MockQuizRepository)
	svc := NewAttemptService(attempts, quizzes)

	quizzes.On("GetQuizByID", mock.Anything, "q1").Return(attemptTestQuiz(), nil)
	attempts.On("CreateAttempt", mock.Anything, mock.AnythingOfType("*domain.Attempt")).Return(nil)

	req := &dto.RecordAttemptRequest{UserName: "alice", Score: 3, MaxScore: 4}
	resp, err := svc.RecordAttempt(context.Background(), "q1", req)
	require.NoError(t, err)

	assert.Equal(t, "q1", resp.QuizID)
	assert.Equal(t, "alice", resp.UserName)
	assert.Equal(t, 3, resp.Score)
	assert.Equal(t, 4, resp.MaxScore)
	assert.Equal(t, 75.0, resp.Percentage)
	assert.False(t, resp.CreatedAt.IsZero())

	attempts.AssertExpectations(t)
	quizzes.AssertExpectations(t)
}

func TestRecordAttempt_BlankNameBecomesAnonymous(t *testing.T) {
	attempts := new(MockAttemptRepository)
	quizzes := new(MockQuizRepository)
	svc := NewAttemptService(attempts, quizzes)

	quizzes.On("GetQuizByID", mock.Anything, "q1").Return(attemptTestQuiz(), nil)
	attempts.On("CreateAttempt", mock.Anything, mock.AnythingOfType("*domain.Attempt")).Return(nil)

	req := &dto.RecordAttemptRequest{UserName: "   ", Score: 1, MaxScore: 1}
	resp, err := svc.RecordAttempt(context.Background(), "q1", req)
	require.NoError(t, err)
	assert.Equal(t, domain.AnonymousUserName, resp.UserName)
}

func TestRecordAttempt_QuizNotFound(t *testing.T) {
	attempts := new(MockAttemptRepository)
	quizzes := new(MockQuizRepository)
	svc := NewAttemptService(attempts, quizzes)

	quizzes.On("GetQuizByID", mock.Anything, "missing").Return(nil, nil)

	req := &dto.RecordAttemptRequest{UserName: "alice", Score: 1, MaxScore: 2}
	_, err := svc.RecordAttempt(context.Background(), "missing", req)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeQuizNotFound, domainErr.Code)

	attempts.AssertNotCalled(t, "CreateAttempt", mock.Anything, mock.Anything)
}

func TestRecordAttempt_ScoreAboveMax(t *testing.T) {
	attempts := new(MockAttemptRepository)
	quizzes := new(MockQuizRepository)
	svc := NewAttemptService(attempts, quizzes)

	quizzes.On("GetQuizByID", mock.Anything, "q1").Return(attemptTestQuiz(), nil)

	req := &dto.RecordAttemptRequest{UserName: "alice", Score: 5, MaxScore: 4}
	_, err := svc.RecordAttempt(context.Background(), "q1", req)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)

	attempts.AssertNotCalled(t, "CreateAttempt", mock.Anything, mock.Anything)
}

func TestRecordAttempt_RepositoryError(t *testing.T) {
	attempts := new(MockAttemptRepository)
	quizzes := new(MockQuizRepository)
	svc := NewAttemptService(attempts, quizzes)

	quizzes.On("GetQuizByID", mock.Anything, "q1").Return(attemptTestQuiz(), nil)
	attempts.On("CreateAttempt", mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	req := &dto.RecordAttemptRequest{UserName: "alice", Score: 1, MaxScore: 2}
	_, err := svc.RecordAttempt(context.Background(), "q1", req)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeDatabaseError, domainErr.Code)
	assert.Equal(t, "Failed to record attempt", domainErr.Message)
}

func TestGetLeaderboard_Service(t *testing.T) {
	attempts := new(MockAttemptRepository)
	svc := NewAttemptService(attempts, new(MockQuizRepository))

	board := []*domain.Attempt{
		{ID: "a1", QuizID: "q1", UserName: "alice", Score: 5, MaxScore: 5, Percentage: 100},
		{ID: "a2", QuizID: "q1", UserName: "Anonymous", Score: 3, MaxScore: 5, Percentage: 60},
	}
	attempts.On("GetLeaderboard", mock.Anything, "q1", 10).Return(board, nil)

	resp, err := svc.GetLeaderboard(context.Background(), "q1", 10)
	require.NoError(t, err)

	assert.Equal(t, "q1", resp.QuizID)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, 1, resp.Entries[0].Rank)
	assert.Equal(t, "alice", resp.Entries[0].UserName)
	assert.Equal(t, 2, resp.Entries[1].Rank)
	assert.Equal(t, 60.0, resp.Entries[1].Percentage)

	attempts.AssertExpectations(t)
}

func TestGetLeaderboard_UnknownQuizYieldsEmptyBoard(t *testing.T) {
	attempts := new(MockAttemptRepository)
	quizzes := new(MockQuizRepository)
	svc := NewAttemptService(attempts, quizzes)

	attempts.On("GetLeaderboard", mock.Anything, "missing", 10).Return([]*domain.Attempt{}, nil)

	resp, err := svc.GetLeaderboard(context.Background(), "missing", 10)
	require.NoError(t, err)
	assert.Empty(t, resp.Entries)

	// The board never checks quiz existence.
	quizzes.AssertNotCalled(t, "GetQuizByID", mock.Anything, mock.Anything)
}

func TestGetLeaderboard_RepositoryError(t *testing.T) {
	attempts := new(MockAttemptRepository)
	svc := NewAttemptService(attempts, new(MockQuizRepository))

	attempts.On("GetLeaderboard", mock.Anything, "q1", 10).Return(nil, errors.New("disk I/O error"))

	_, err := svc.GetLeaderboard(context.Background(), "q1", 10)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeDatabaseError, domainErr.Code)
}
