package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a string array as a JSON text column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface. Malformed stored data
// degrades to an empty slice instead of failing the whole read.
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}

	var parsed []string
	if err := json.Unmarshal(bytesToParse, &parsed); err != nil {
		*s = StringSlice{}
		return nil
	}
	*s = parsed
	return nil
}

// Quiz represents a row of the quizzes table.
type Quiz struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
}

// Question represents a row of the questions table. Options are stored
// as a JSON array in a text column; position starts at 1 and records the
// upload order.
type Question struct {
	ID            string      `db:"id"`
	QuizID        string      `db:"quiz_id"`
	QuestionText  string      `db:"question_text"`
	Options       StringSlice `db:"options"`
	CorrectAnswer string      `db:"correct_answer"`
	Position      int         `db:"position"`
}

// QuizSummaryRow is the list projection of a quiz with its question count.
type QuizSummaryRow struct {
	ID            string         `db:"id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	QuestionCount int            `db:"question_count"`
	CreatedAt     time.Time      `db:"created_at"`
}

// QuizAttempt represents a row of the quiz_attempts table.
type QuizAttempt struct {
	ID         string    `db:"id"`
	QuizID     string    `db:"quiz_id"`
	UserName   string    `db:"user_name"`
	Score      int       `db:"score"`
	MaxScore   int       `db:"max_score"`
	Percentage float64   `db:"percentage"`
	CreatedAt  time.Time `db:"created_at"`
}
