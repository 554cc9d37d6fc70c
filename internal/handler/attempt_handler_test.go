package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/handler"
	"quizdeck/internal/middleware"
	"quizdeck/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockAttemptService
type MockAttemptService struct {
	RecordAttemptFunc  func(ctx context.Context, quizID string, req *dto.RecordAttemptRequest) (*dto.AttemptResponse, error)
	GetLeaderboardFunc func(ctx context.Context, quizID string, limit int) (*dto.LeaderboardResponse, error)
}

func (m *MockAttemptService) RecordAttempt(ctx context.Context, quizID string, req *dto.RecordAttemptRequest) (*dto.AttemptResponse, error) {
	if m.RecordAttemptFunc != nil {
		return m.RecordAttemptFunc(ctx, quizID, req)
	}
	panic("MockAttemptService.RecordAttemptFunc not implemented")
}
func (m *MockAttemptService) GetLeaderboard(ctx context.Context, quizID string, limit int) (*dto.LeaderboardResponse, error) {
	if m.GetLeaderboardFunc != nil {
		return m.GetLeaderboardFunc(ctx, quizID, limit)
	}
	panic("MockAttemptService.GetLeaderboardFunc not implemented")
}

var _ service.AttemptService = (*MockAttemptService)(nil)

func newAttemptApp(svc service.AttemptService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	h := handler.NewAttemptHandler(svc)
	vm := middleware.NewValidationMiddleware(10)

	quizzes := app.Group("/api/quizzes")
	quizzes.Post("/:id/attempts", vm.ValidateQuizID(), h.RecordAttempt)
	quizzes.Get("/:id/leaderboard", vm.ValidateQuizID(), vm.ValidateLeaderboardParams(), h.GetLeaderboard)
	return app
}

func TestAttemptHandler_RecordAttempt(t *testing.T) {
	mockSvc := &MockAttemptService{
		RecordAttemptFunc: func(ctx context.Context, quizID string, req *dto.RecordAttemptRequest) (*dto.AttemptResponse, error) {
			assert.Equal(t, validQuizID, quizID)
			assert.Equal(t, "alice", req.UserName)
			assert.Equal(t, 3, req.Score)
			assert.Equal(t, 4, req.MaxScore)
			return &dto.AttemptResponse{ID: "a1", QuizID: quizID, UserName: "alice", Score: 3, MaxScore: 4, Percentage: 75}, nil
		},
	}
	app := newAttemptApp(mockSvc)

	payload, _ := json.Marshal(dto.RecordAttemptRequest{UserName: "alice", Score: 3, MaxScore: 4})
	req := httptest.NewRequest("POST", "/api/quizzes/"+validQuizID+"/attempts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var attempt dto.AttemptResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&attempt))
	assert.Equal(t, "a1", attempt.ID)
	assert.Equal(t, 75.0, attempt.Percentage)
}

func TestAttemptHandler_RecordAttempt_ScoreAboveMax(t *testing.T) {
	mockSvc := &MockAttemptService{
		RecordAttemptFunc: func(ctx context.Context, quizID string, req *dto.RecordAttemptRequest) (*dto.AttemptResponse, error) {
			assert.Fail(t, "service should not be called for an invalid score pair")
			return nil, nil
		},
	}
	app := newAttemptApp(mockSvc)

	payload, _ := json.Marshal(dto.RecordAttemptRequest{UserName: "alice", Score: 5, MaxScore: 4})
	req := httptest.NewRequest("POST", "/api/quizzes/"+validQuizID+"/attempts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp middleware.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	require.Len(t, errResp.Errors, 1)
	assert.Equal(t, "score", errResp.Errors[0].Field)
}

func TestAttemptHandler_RecordAttempt_MalformedBody(t *testing.T) {
	mockSvc := &MockAttemptService{}
	app := newAttemptApp(mockSvc)

	req := httptest.NewRequest("POST", "/api/quizzes/"+validQuizID+"/attempts", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, string(domain.CodeInvalidInput), errResp.Code)
}

func TestAttemptHandler_RecordAttempt_QuizNotFound(t *testing.T) {
	mockSvc := &MockAttemptService{
		RecordAttemptFunc: func(ctx context.Context, quizID string, req *dto.RecordAttemptRequest) (*dto.AttemptResponse, error) {
			return nil, domain.NewQuizNotFoundError(quizID)
		},
	}
	app := newAttemptApp(mockSvc)

	payload, _ := json.Marshal(dto.RecordAttemptRequest{UserName: "alice", Score: 1, MaxScore: 2})
	req := httptest.NewRequest("POST", "/api/quizzes/"+validQuizID+"/attempts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAttemptHandler_GetLeaderboard(t *testing.T) {
	mockSvc := &MockAttemptService{
		GetLeaderboardFunc: func(ctx context.Context, quizID string, limit int) (*dto.LeaderboardResponse, error) {
			assert.Equal(t, validQuizID, quizID)
			assert.Equal(t, 10, limit, "the configured default limit applies when none is given")
			return &dto.LeaderboardResponse{QuizID: quizID, Entries: []dto.LeaderboardEntry{
				{Rank: 1, UserName: "alice", Score: 5, MaxScore: 5, Percentage: 100},
			}}, nil
		},
	}
	app := newAttemptApp(mockSvc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzes/"+validQuizID+"/leaderboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var board dto.LeaderboardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&board))
	require.Len(t, board.Entries, 1)
	assert.Equal(t, 1, board.Entries[0].Rank)
}

func TestAttemptHandler_GetLeaderboard_ExplicitLimit(t *testing.T) {
	mockSvc := &MockAttemptService{
		GetLeaderboardFunc: func(ctx context.Context, quizID string, limit int) (*dto.LeaderboardResponse, error) {
			assert.Equal(t, 5, limit)
			return &dto.LeaderboardResponse{QuizID: quizID, Entries: []dto.LeaderboardEntry{}}, nil
		},
	}
	app := newAttemptApp(mockSvc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzes/"+validQuizID+"/leaderboard?limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAttemptHandler_GetLeaderboard_LimitOutOfRange(t *testing.T) {
	for _, limit := range []string{"0", "51", "9999"} {
		t.Run("limit "+limit, func(t *testing.T) {
			mockSvc := &MockAttemptService{
				GetLeaderboardFunc: func(ctx context.Context, quizID string, limit int) (*dto.LeaderboardResponse, error) {
					assert.Fail(t, "service should not be called for an out-of-range limit")
					return nil, nil
				},
			}
			app := newAttemptApp(mockSvc)

			resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzes/"+validQuizID+"/leaderboard?limit="+limit, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var errResp middleware.ValidationErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
			require.Len(t, errResp.Errors, 1)
			assert.Equal(t, "limit", errResp.Errors[0].Field)
		})
	}
}

func TestAttemptHandler_GetLeaderboard_LimitNotANumber(t *testing.T) {
	mockSvc := &MockAttemptService{}
	app := newAttemptApp(mockSvc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzes/"+validQuizID+"/leaderboard?limit=ten", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp middleware.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	require.Len(t, errResp.Errors, 1)
	assert.Equal(t, "limit", errResp.Errors[0].Field)
}
