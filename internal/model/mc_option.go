package model

import "time"

type MCOption struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	IsTrue     bool      `json:"is_true" gorm:"not null;default:false"`
	OptionText string    `json:"option_text" gorm:"type:text;not null"`
	QID        uint      `json:"qid" gorm:"column:qid;not null;index"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (MCOption) TableName() string { return "mc_options" }
