package model

import (
	"time"
)

type QuestionType string

const (
	QuestionTypeMC  QuestionType = "mc"
	QuestionTypeSA  QuestionType = "sa"
	QuestionTypeSQL QuestionType = "sql"
)

// QuestionTypes lists every kind in listing order.
var QuestionTypes = []QuestionType{QuestionTypeMC, QuestionTypeSA, QuestionTypeSQL}

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMC, QuestionTypeSA, QuestionTypeSQL:
		return true
	}
	return false
}

// RequiresSetup reports whether a question of this kind must reference a Setup.
func (t QuestionType) RequiresSetup() bool { return t == QuestionTypeSQL }

// HasAnswer reports whether the answer column carries user data for this kind.
// Multiple-choice answers live in the options marked true instead.
func (t QuestionType) HasAnswer() bool { return t == QuestionTypeSA || t == QuestionTypeSQL }

// Question is a row of the questions table. Answer is NULL for mc questions.
type Question struct {
	ID           uint         `gorm:"primarykey" json:"id"`
	Type         QuestionType `json:"type" gorm:"type:varchar(8);not null;index"`
	QuestionText string       `json:"question_text" gorm:"type:text;not null"`
	Points       int          `json:"points" gorm:"not null"`
	SetupID      *uint        `json:"setup" gorm:"column:setup"`
	Answer       *string      `json:"answer,omitempty" gorm:"type:text"`
	CreatedAt    time.Time    `json:"-"`
	UpdatedAt    time.Time    `json:"-"`
}

func (Question) TableName() string { return "questions" }
