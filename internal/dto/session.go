package dto

// SelectOptionRequest names the option clicked for the current question
type SelectOptionRequest struct {
	Option string `json:"option"`
}

// SaveResultRequest carries the display name for a completed run's attempt
type SaveResultRequest struct {
	UserName string `json:"user_name"`
}

// OptionStateResponse carries the render state of one option
type OptionStateResponse struct {
	Text      string `json:"text"`
	Selected  bool   `json:"selected"`
	Correct   bool   `json:"correct"`
	Incorrect bool   `json:"incorrect"`
	Disabled  bool   `json:"disabled"`
}

// QuestionViewResponse is the render view of the current question
type QuestionViewResponse struct {
	Index    int                   `json:"index"`
	Total    int                   `json:"total"`
	Text     string                `json:"text"`
	Options  []OptionStateResponse `json:"options"`
	Progress float64               `json:"progress"`
}

// ResultResponse is the final outcome block of a completed run
type ResultResponse struct {
	Score      int     `json:"score"`
	MaxScore   int     `json:"max_score"`
	Percentage float64 `json:"percentage"`
	Feedback   string  `json:"feedback"`
}

// SessionResponse is the render snapshot of one run
type SessionResponse struct {
	ID            string                `json:"id"`
	QuizID        string                `json:"quiz_id"`
	QuizTitle     string                `json:"quiz_title"`
	Status        string                `json:"status"`
	Score         int                   `json:"score"`
	Question      *QuestionViewResponse `json:"question,omitempty"`
	Submitted     bool                  `json:"submitted"`
	Selected      string                `json:"selected,omitempty"`
	WasCorrect    bool                  `json:"was_correct"`
	CorrectAnswer string                `json:"correct_answer,omitempty"`
	Result        *ResultResponse       `json:"result,omitempty"`
}
