package dto

type SetupResponse struct {
	ID        uint   `json:"id"`
	SetupText string `json:"setup_text"`
}

type MCOptionResponse struct {
	ID         uint   `json:"id"`
	IsTrue     bool   `json:"is_true"`
	OptionText string `json:"option_text"`
	QID        uint   `json:"qid"`
}

type RubricResponse struct {
	ID         uint    `json:"id"`
	RubricText string  `json:"rubric_text"`
	Points     float64 `json:"points"`
	QID        uint    `json:"qid"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
