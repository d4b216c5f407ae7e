package dto

// SetupRequest is used for both create and full-replace update.
type SetupRequest struct {
	SetupText *string `json:"setup_text" binding:"required"`
}

type MCOptionRequest struct {
	IsTrue     *bool   `json:"is_true" binding:"required"`
	OptionText *string `json:"option_text" binding:"required"`
	QID        *uint   `json:"qid" binding:"required"`
}

type RubricRequest struct {
	RubricText *string  `json:"rubric_text" binding:"required"`
	Points     *float64 `json:"points" binding:"required,gte=0"`
	QID        *uint    `json:"qid" binding:"required"`
}

// QuestionRequest carries no binding rules: the question service owns the
// type-dependent checks and reports them with a rule kind.
type QuestionRequest struct {
	Type         string  `json:"type"`
	QuestionText string  `json:"question_text"`
	Points       int     `json:"points"`
	Setup        *uint   `json:"setup"`
	Answer       *string `json:"answer"` // ignored for mc
}
