package domain

import (
	"strings"
	"time"
)

// AnonymousUserName is stored in place of a blank attempt user name.
const AnonymousUserName = "Anonymous"

// Question is a single multiple-choice question. Options keep their
// upload order and Answer always equals one of the options verbatim.
type Question struct {
	Text    string
	Options []string
	Answer  string
}

// Validate validates the question
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Options) < 2 {
		return NewInvalidInputError("at least 2 options are required")
	}
	for _, opt := range q.Options {
		if opt == q.Answer {
			return nil
		}
	}
	return NewInvalidInputError("answer must be one of the options")
}

// Quiz owns an ordered list of questions
type Quiz struct {
	ID          string
	Title       string
	Description string
	Questions   []Question
	CreatedAt   time.Time
}

// NewQuiz creates a new Quiz instance
func NewQuiz(title, description string, questions []Question) *Quiz {
	return &Quiz{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Questions:   questions,
		CreatedAt:   time.Now(),
	}
}

// Validate validates the quiz
func (q *Quiz) Validate() error {
	if q.Title == "" {
		return NewInvalidInputError("title is required")
	}
	if len(q.Questions) == 0 {
		return NewInvalidInputError("at least one question is required")
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// QuizSummary is the list view of a quiz
type QuizSummary struct {
	ID            string
	Title         string
	Description   string
	QuestionCount int
	CreatedAt     time.Time
}

// Attempt records the outcome of one completed quiz run
type Attempt struct {
	ID         string
	QuizID     string
	UserName   string
	Score      int
	MaxScore   int
	Percentage float64
	CreatedAt  time.Time
}

// NewAttempt creates a new Attempt instance with the user name normalized
// and the percentage derived from the score pair
func NewAttempt(quizID, userName string, score, maxScore int) *Attempt {
	return &Attempt{
		QuizID:     quizID,
		UserName:   NormalizeUserName(userName),
		Score:      score,
		MaxScore:   maxScore,
		Percentage: Percentage(score, maxScore),
		CreatedAt:  time.Now(),
	}
}

// Validate validates the attempt
func (a *Attempt) Validate() error {
	if a.QuizID == "" {
		return NewInvalidInputError("quiz ID is required")
	}
	if a.MaxScore < 0 {
		return NewInvalidInputError("max score must not be negative")
	}
	if a.Score < 0 || a.Score > a.MaxScore {
		return NewInvalidInputError("score must be between 0 and max score")
	}
	return nil
}

// NormalizeUserName trims the name and substitutes the anonymous sentinel
// for blank input. Applied when an attempt is written, never on read.
func NormalizeUserName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return AnonymousUserName
	}
	return trimmed
}

// Percentage converts a score pair to the 0..100 scale, 0 when maxScore is 0
func Percentage(score, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	return float64(score) / float64(maxScore) * 100
}
