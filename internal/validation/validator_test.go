package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateQuizRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateCreateQuizRequest("Capitals"))

	errs := v.ValidateCreateQuizRequest("   ")
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)

	errs = v.ValidateCreateQuizRequest(strings.Repeat("x", 201))
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)
	assert.Contains(t, errs[0].Message, "between 1 and 200")
}

func TestValidateRecordAttemptRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		score     int
		maxScore  int
		wantField string
	}{
		{"valid", 3, 4, ""},
		{"perfect score", 4, 4, ""},
		{"zero of zero", 0, 0, ""},
		{"negative max score", 1, -1, "max_score"},
		{"negative score", -1, 4, "score"},
		{"score above max", 5, 4, "score"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateRecordAttemptRequest(tt.score, tt.maxScore)
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}

func TestValidateLeaderboardLimit(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateLeaderboardLimit(1))
	assert.Empty(t, v.ValidateLeaderboardLimit(50))

	for _, limit := range []int{0, -1, 51} {
		errs := v.ValidateLeaderboardLimit(limit)
		require.Len(t, errs, 1, "limit %d", limit)
		assert.Equal(t, "limit", errs[0].Field)
	}
}

func TestValidateQuizID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateQuizID("01HGZ8VNRYXS8QKNJV5GRWPWDQ"))

	tests := []struct {
		name string
		id   string
	}{
		{"blank", "   "},
		{"too short", "01HGZ8VNRYXS8QKNJV5GRWPWD"},
		{"too long", "01HGZ8VNRYXS8QKNJV5GRWPWDQQ"},
		{"excluded letters", "01HGZ8VNRYXS8QKNJV5GRWPWIL"},
		{"lowercase", "01hgz8vnryxs8qknjv5grwpwdq"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateQuizID(tt.id)
			require.Len(t, errs, 1)
			assert.Equal(t, "quiz_id", errs[0].Field)
		})
	}
}

func TestValidateSessionID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSessionID("f47ac10b-58cc-4372-a567-0e02b2c3d479"))

	for _, id := range []string{"  ", "not-a-uuid", "f47ac10b-58cc-4372-a567"} {
		errs := v.ValidateSessionID(id)
		require.Len(t, errs, 1, "id %q", id)
		assert.Equal(t, "session_id", errs[0].Field)
	}
}
