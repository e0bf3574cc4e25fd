package models

import (
	"time"
)

// AnswerOption is one surfaceable answer. Suspicion is the discrete
// alien-revealing weight (0 clean .. 3 damning); options are implicitly
// ordered least to most suspicious by it.
type AnswerOption struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	QuestionID string    `json:"question_id" gorm:"not null;index"`
	Text       string    `json:"text" gorm:"not null"`
	Suspicion  int       `json:"suspicion" gorm:"not null;default:0"`
	Position   int       `json:"position" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
