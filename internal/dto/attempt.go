package dto

import "time"

// RecordAttemptRequest carries a completed run's score for persistence
type RecordAttemptRequest struct {
	UserName string `json:"user_name"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
}

// AttemptResponse represents a recorded attempt in the API response
type AttemptResponse struct {
	ID         string    `json:"id"`
	QuizID     string    `json:"quiz_id"`
	UserName   string    `json:"user_name"`
	Score      int       `json:"score"`
	MaxScore   int       `json:"max_score"`
	Percentage float64   `json:"percentage"`
	CreatedAt  time.Time `json:"created_at"`
}

// LeaderboardEntry represents one ranked attempt
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	UserName   string  `json:"user_name"`
	Score      int     `json:"score"`
	MaxScore   int     `json:"max_score"`
	Percentage float64 `json:"percentage"`
}

// LeaderboardResponse wraps the ranked attempts of one quiz
type LeaderboardResponse struct {
	QuizID  string             `json:"quiz_id"`
	Entries []LeaderboardEntry `json:"entries"`
}
