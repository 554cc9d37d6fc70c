package service

import (
	"context"

	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"
	"quizdeck/internal/session"

	"go.uber.org/zap"
)

// SessionService drives in-memory quiz runs. Runs never touch the
// database until the player saves a completed result.
type SessionService interface {
	StartSession(ctx context.Context, quizID string) (*dto.SessionResponse, error)
	GetSession(id string) (*dto.SessionResponse, error)
	SelectOption(id string, option string) (*dto.SessionResponse, error)
	SubmitAnswer(id string) (*dto.SessionResponse, error)
	NextQuestion(id string) (*dto.SessionResponse, error)
	SaveResult(ctx context.Context, id string, req *dto.SaveResultRequest) (*dto.AttemptResponse, error)
	ResetSession(id string) error
}

// sessionService implements SessionService
type sessionService struct {
	registry *session.Registry
	quizzes  domain.QuizRepository
	attempts AttemptService
}

// NewSessionService creates a new instance of sessionService
func NewSessionService(registry *session.Registry, quizzes domain.QuizRepository, attempts AttemptService) SessionService {
	return &sessionService{
		registry: registry,
		quizzes:  quizzes,
		attempts: attempts,
	}
}

// StartSession loads the quiz and begins a run with its questions shuffled
func (s *sessionService) StartSession(ctx context.Context, quizID string) (*dto.SessionResponse, error) {
	quiz, err := s.quizzes.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewDatabaseError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	if len(quiz.Questions) == 0 {
		return nil, domain.NewInvalidInputError("Quiz has no questions")
	}

	sess := session.New(quiz.ID, quiz.Title, quiz.Questions)
	s.registry.Put(sess)

	logger.Get().Info("Session started",
		zap.String("session_id", sess.ID()),
		zap.String("quiz_id", quiz.ID),
	)

	return toSessionResponse(sess.Snapshot()), nil
}

// GetSession implements SessionService
func (s *sessionService) GetSession(id string) (*dto.SessionResponse, error) {
	sess, ok := s.registry.Get(id)
	if !ok {
		return nil, domain.NewSessionNotFoundError(id)
	}
	return toSessionResponse(sess.Snapshot()), nil
}

// SelectOption implements SessionService. Selecting an unknown option or
// selecting after submission changes nothing.
func (s *sessionService) SelectOption(id string, option string) (*dto.SessionResponse, error) {
	sess, ok := s.registry.Get(id)
	if !ok {
		return nil, domain.NewSessionNotFoundError(id)
	}
	sess.SelectOption(option)
	return toSessionResponse(sess.Snapshot()), nil
}

// SubmitAnswer implements SessionService. Submitting without a selection
// or submitting twice changes nothing.
func (s *sessionService) SubmitAnswer(id string) (*dto.SessionResponse, error) {
	sess, ok := s.registry.Get(id)
	if !ok {
		return nil, domain.NewSessionNotFoundError(id)
	}
	sess.SubmitAnswer()
	return toSessionResponse(sess.Snapshot()), nil
}

// NextQuestion implements SessionService. Advancing past the last
// question completes the run.
func (s *sessionService) NextQuestion(id string) (*dto.SessionResponse, error) {
	sess, ok := s.registry.Get(id)
	if !ok {
		return nil, domain.NewSessionNotFoundError(id)
	}
	sess.NextQuestion()
	return toSessionResponse(sess.Snapshot()), nil
}

// SaveResult records the score of a completed run on the leaderboard
func (s *sessionService) SaveResult(ctx context.Context, id string, req *dto.SaveResultRequest) (*dto.AttemptResponse, error) {
	sess, ok := s.registry.Get(id)
	if !ok {
		return nil, domain.NewSessionNotFoundError(id)
	}

	score, maxScore, done := sess.Result()
	if !done {
		return nil, domain.NewInvalidInputError("Session is not completed yet")
	}

	return s.attempts.RecordAttempt(ctx, sess.QuizID(), &dto.RecordAttemptRequest{
		UserName: req.UserName,
		Score:    score,
		MaxScore: maxScore,
	})
}

// ResetSession discards a run and frees its slot
func (s *sessionService) ResetSession(id string) error {
	sess, ok := s.registry.Get(id)
	if !ok {
		return domain.NewSessionNotFoundError(id)
	}
	sess.Reset()
	s.registry.Remove(id)
	return nil
}

func toSessionResponse(snap session.Snapshot) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		ID:            snap.ID,
		QuizID:        snap.QuizID,
		QuizTitle:     snap.QuizTitle,
		Status:        string(snap.Status),
		Score:         snap.Score,
		Submitted:     snap.Submitted,
		Selected:      snap.Selected,
		WasCorrect:    snap.WasCorrect,
		CorrectAnswer: snap.CorrectAnswer,
	}
	if snap.Question != nil {
		q := &dto.QuestionViewResponse{
			Index:    snap.Question.Index,
			Total:    snap.Question.Total,
			Text:     snap.Question.Text,
			Progress: snap.Question.Progress,
			Options:  make([]dto.OptionStateResponse, 0, len(snap.Question.Options)),
		}
		for _, opt := range snap.Question.Options {
			q.Options = append(q.Options, dto.OptionStateResponse{
				Text:      opt.Text,
				Selected:  opt.Selected,
				Correct:   opt.Correct,
				Incorrect: opt.Incorrect,
				Disabled:  opt.Disabled,
			})
		}
		resp.Question = q
	}
	if snap.Result != nil {
		resp.Result = &dto.ResultResponse{
			Score:      snap.Result.Score,
			MaxScore:   snap.Result.MaxScore,
			Percentage: snap.Result.Percentage,
			Feedback:   snap.Result.Feedback,
		}
	}
	return resp
}
