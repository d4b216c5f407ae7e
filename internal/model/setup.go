package model

import "time"

// Setup is shared descriptive text (for example a schema) that sql questions point at.
type Setup struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SetupText string    `json:"setup_text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Setup) TableName() string { return "setups" }
