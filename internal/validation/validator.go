package validation

import (
	"regexp"
	"strings"

	"quizdeck/internal/domain"

	"github.com/google/uuid"
)

const (
	maxTitleLength      = 200
	minLeaderboardLimit = 1
	maxLeaderboardLimit = 50
)

var ulidPattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuizRequest validates the quiz upload form fields
func (v *Validator) ValidateCreateQuizRequest(title string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	} else if len(title) > maxTitleLength {
		errors = append(errors, domain.NewOutOfRangeError("title", len(title), 1, maxTitleLength))
	}

	return errors
}

// ValidateRecordAttemptRequest validates a submitted score pair
func (v *Validator) ValidateRecordAttemptRequest(score, maxScore int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if maxScore < 0 {
		errors = append(errors, domain.ValidationError{Field: "max_score", Message: "must not be negative", Value: maxScore})
	} else if score < 0 || score > maxScore {
		errors = append(errors, domain.NewOutOfRangeError("score", score, 0, maxScore))
	}

	return errors
}

// ValidateLeaderboardLimit bounds the requested leaderboard size
func (v *Validator) ValidateLeaderboardLimit(limit int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if limit < minLeaderboardLimit || limit > maxLeaderboardLimit {
		errors = append(errors, domain.NewOutOfRangeError("limit", limit, minLeaderboardLimit, maxLeaderboardLimit))
	}

	return errors
}

// ValidateQuizID checks a path parameter referencing a quiz
func (v *Validator) ValidateQuizID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("quiz_id"))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("quiz_id", id))
	}

	return errors
}

// ValidateSessionID checks a path parameter referencing a run
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if _, err := uuid.Parse(id); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("session_id", id))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
// (26 characters of Crockford's Base32)
func isValidULID(s string) bool {
	if len(s) != 26 {
		return false
	}
	return ulidPattern.MatchString(s)
}
