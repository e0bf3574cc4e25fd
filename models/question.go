package models

import (
	"time"
)

type Question struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	CharacterID string    `json:"character_id" gorm:"not null;index"`
	Prompt      string    `json:"prompt" gorm:"not null"`
	Position    int       `json:"position" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Options []AnswerOption `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
}
