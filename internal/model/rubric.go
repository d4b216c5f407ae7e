package model

import "time"

type Rubric struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	RubricText string    `json:"rubric_text" gorm:"type:text;not null"`
	Points     float64   `json:"points" gorm:"not null"`
	QID        uint      `json:"qid" gorm:"column:qid;not null;index"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (Rubric) TableName() string { return "rubrics" }
