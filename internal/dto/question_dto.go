package dto

// QuestionResponse is the external view of a question. Each question kind
// has its own variant carrying only the fields relevant to it.
type QuestionResponse interface {
	QuestionID() uint
	QuestionType() string
}

type QuestionBase struct {
	ID           uint   `json:"id"`
	Type         string `json:"type"`
	QuestionText string `json:"question_text"`
	Points       int    `json:"points"`
}

func (q QuestionBase) QuestionID() uint     { return q.ID }
func (q QuestionBase) QuestionType() string { return q.Type }

// MCQuestionResponse exposes the options split by correctness and no answer.
type MCQuestionResponse struct {
	QuestionBase
	Setup        *uint              `json:"setup"`
	TrueOptions  []MCOptionResponse `json:"true_options"`
	FalseOptions []MCOptionResponse `json:"false_options"`
}

type SAQuestionResponse struct {
	QuestionBase
	Setup   *uint            `json:"setup"`
	Answer  string           `json:"answer"`
	Rubrics []RubricResponse `json:"rubrics"`
}

type SQLQuestionResponse struct {
	QuestionBase
	Setup  uint   `json:"setup"`
	Answer string `json:"answer"`
}

type QuestionSummary struct {
	ID            uint   `json:"id"`
	QuestionStart string `json:"question_start"`
}

type QuestionIndexResponse struct {
	MC  []QuestionSummary `json:"mc"`
	SA  []QuestionSummary `json:"sa"`
	SQL []QuestionSummary `json:"sql"`
}
