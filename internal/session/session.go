package session

import (
	"math/rand"
	"sync"
	"time"

	"quizdeck/internal/domain"

	"github.com/google/uuid"
)

// Status is the lifecycle phase of one quiz run.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Performance feedback shown with the final score.
const (
	feedbackExcellent = "Excellent job! You've mastered this quiz!"
	feedbackGood      = "Good work! You're on the right track!"
	feedbackPractice  = "Keep practicing! You'll improve with time."
)

// Session is the progression state of a single quiz run: a shuffled
// question order, the current index, the tentative selection and the
// cumulative score. Transitions that are not valid for the current state
// are silent no-ops; the presentation layer disables the controls that
// would trigger them.
type Session struct {
	mu sync.Mutex

	id        string
	quizID    string
	quizTitle string
	questions []domain.Question

	current      int
	score        int
	selected     string
	hasSelection bool
	submitted    bool
	status       Status
}

// New starts a run over a shuffled copy of the quiz questions.
func New(quizID, quizTitle string, questions []domain.Question) *Session {
	return &Session{
		id:        uuid.NewString(),
		quizID:    quizID,
		quizTitle: quizTitle,
		questions: shuffleQuestions(questions),
		status:    StatusInProgress,
	}
}

// shuffleQuestions returns a copy of qs in uniform random order. The
// input slice is never mutated.
func shuffleQuestions(qs []domain.Question) []domain.Question {
	shuffled := make([]domain.Question, len(qs))
	copy(shuffled, qs)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// ID returns the run identifier.
func (s *Session) ID() string {
	return s.id
}

// QuizID returns the quiz this run was started from.
func (s *Session) QuizID() string {
	return s.quizID
}

// SelectOption records a tentative choice. Valid only while the current
// question is unanswered and the option is one of its choices.
func (s *Session) SelectOption(option string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress || s.submitted {
		return
	}
	for _, opt := range s.questions[s.current].Options {
		if opt == option {
			s.selected = option
			s.hasSelection = true
			return
		}
	}
}

// SubmitAnswer scores the selected option against the current question.
// Valid only once per question and only with a selection in place, so
// repeated calls never change the score.
func (s *Session) SubmitAnswer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress || s.submitted || !s.hasSelection {
		return
	}
	s.submitted = true
	if s.selected == s.questions[s.current].Answer {
		s.score++
	}
}

// NextQuestion advances past an answered question, or completes the run
// when the current question is the last one. Valid only after submission.
func (s *Session) NextQuestion() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress || !s.submitted {
		return
	}
	if s.current < len(s.questions)-1 {
		s.current++
		s.selected = ""
		s.hasSelection = false
		s.submitted = false
	} else {
		s.status = StatusCompleted
	}
}

// Reset discards all run state and returns to the initial status.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions = nil
	s.current = 0
	s.score = 0
	s.selected = ""
	s.hasSelection = false
	s.submitted = false
	s.status = StatusNotStarted
}

// Completed reports whether the run has reached its terminal state.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status == StatusCompleted
}

// Result returns the final score pair. ok is false until the run is
// completed.
func (s *Session) Result() (score, maxScore int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusCompleted {
		return 0, 0, false
	}
	return s.score, len(s.questions), true
}

// OptionState carries the highlight instructions for one rendered option.
type OptionState struct {
	Text      string
	Selected  bool
	Correct   bool
	Incorrect bool
	Disabled  bool
}

// QuestionView is the render view of the current question.
type QuestionView struct {
	Index    int // 0-based position in the shuffled order
	Total    int
	Text     string
	Options  []OptionState
	Progress float64
}

// Result is the final outcome of a completed run.
type Result struct {
	Score      int
	MaxScore   int
	Percentage float64
	Feedback   string
}

// Snapshot is a read-only view of one run, sufficient for rendering
// without touching the session again.
type Snapshot struct {
	ID        string
	QuizID    string
	QuizTitle string
	Status    Status
	Score     int

	// Question is set while the run is in progress.
	Question *QuestionView

	// Submission feedback for the current question.
	Submitted     bool
	Selected      string
	WasCorrect    bool
	CorrectAnswer string

	// Result is set once the run is completed.
	Result *Result
}

// Snapshot captures the current run state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:        s.id,
		QuizID:    s.quizID,
		QuizTitle: s.quizTitle,
		Status:    s.status,
		Score:     s.score,
		Submitted: s.submitted,
		Selected:  s.selected,
	}

	switch s.status {
	case StatusInProgress:
		q := s.questions[s.current]
		view := &QuestionView{
			Index:    s.current,
			Total:    len(s.questions),
			Text:     q.Text,
			Progress: float64(s.current+1) / float64(len(s.questions)),
		}
		view.Options = make([]OptionState, len(q.Options))
		for i, opt := range q.Options {
			state := OptionState{Text: opt, Disabled: s.submitted}
			if s.submitted {
				if opt == q.Answer {
					state.Correct = true
				} else if s.hasSelection && opt == s.selected {
					state.Incorrect = true
				}
			} else if s.hasSelection && opt == s.selected {
				state.Selected = true
			}
			view.Options[i] = state
		}
		snap.Question = view
		if s.submitted {
			snap.CorrectAnswer = q.Answer
			snap.WasCorrect = s.selected == q.Answer
		}
	case StatusCompleted:
		maxScore := len(s.questions)
		pct := domain.Percentage(s.score, maxScore)
		snap.Result = &Result{
			Score:      s.score,
			MaxScore:   maxScore,
			Percentage: pct,
			Feedback:   feedbackFor(pct),
		}
	}
	return snap
}

func feedbackFor(percentage float64) string {
	switch {
	case percentage >= 80:
		return feedbackExcellent
	case percentage >= 60:
		return feedbackGood
	default:
		return feedbackPractice
	}
}
