package dto

import "time"

// CreateQuizRequest carries the form fields of a quiz upload
type CreateQuizRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

// CreateQuizResponse returns the identifier of a newly created quiz
type CreateQuizResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"question_count"`
}

// QuizSummaryResponse represents one quiz in the list response
type QuizSummaryResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuizListResponse wraps the quiz list
type QuizListResponse struct {
	Quizzes []QuizSummaryResponse `json:"quizzes"`
}

// QuestionResponse represents a question in the API response
type QuestionResponse struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// QuizResponse represents a quiz with its questions in the API response
type QuizResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	Questions   []QuestionResponse `json:"questions"`
}
