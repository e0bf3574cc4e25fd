package models

import (
	"time"
)

// Character is a catalog entry: profile fields shown on the swipe card plus
// the fixed question set. Immutable once seeded.
type Character struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Age        int       `json:"age" gorm:"not null"`
	AvatarSeed string    `json:"avatar_seed"`
	Bio        string    `json:"bio"`
	Tags       []string  `json:"tags" gorm:"serializer:json"`
	Traits     []string  `json:"traits" gorm:"serializer:json"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:CharacterID"`
}
