package models

import (
	"time"
)

const (
	RecordStatusCompleted = "completed"
	RecordStatusAbandoned = "abandoned"
)

// SessionRecord is the durable row written when a session leaves play, used
// for aggregate stats (guess distribution). The live session aggregate lives
// in the session store, not here.
type SessionRecord struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	SessionID         string    `json:"session_id" gorm:"uniqueIndex;not null"`
	CharacterID       string    `json:"character_id" gorm:"not null;index"`
	Status            string    `json:"status" gorm:"not null"` // completed, abandoned
	Outcome           string    `json:"outcome"`
	Decision          string    `json:"decision"`
	WasAlien          bool      `json:"was_alien" gorm:"not null"`
	QuestionsAsked    int       `json:"questions_asked" gorm:"not null"`
	GuessedAtQuestion *int      `json:"guessed_at_question" gorm:"index"`
	Suspicion         float64   `json:"suspicion" gorm:"not null"`
	Score             int       `json:"score" gorm:"not null"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
