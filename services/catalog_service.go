package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gorm.io/gorm"

	"maskle/models"
)

// Catalog is the read-only character source the session engine consumes.
type Catalog interface {
	Characters(ctx context.Context) ([]models.Character, error)
	CharacterByID(ctx context.Context, id string) (*models.Character, error)
}

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

type seedAnswer struct {
	Text      string `json:"text"`
	Suspicion int    `json:"suspicion"`
}

type seedQuestion struct {
	ID      string       `json:"id"`
	Prompt  string       `json:"prompt"`
	Answers []seedAnswer `json:"answers"`
}

type seedCharacter struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Age        int            `json:"age"`
	AvatarSeed string         `json:"avatarSeed"`
	Bio        string         `json:"bio"`
	Tags       []string       `json:"tags"`
	Traits     []string       `json:"traits"`
	Questions  []seedQuestion `json:"questions"`
}

// Seed loads the character catalog from a JSON file and inserts any
// characters not already present. Existing rows are left untouched; the
// catalog is immutable once loaded.
func (s *CatalogService) Seed(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read characters file: %w", err)
	}

	var seeds []seedCharacter
	if err := json.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("failed to parse characters file: %w", err)
	}

	for _, seed := range seeds {
		var existing models.Character
		err := s.db.Where("id = ?", seed.ID).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		character := models.Character{
			ID:         seed.ID,
			Name:       seed.Name,
			Age:        seed.Age,
			AvatarSeed: seed.AvatarSeed,
			Bio:        seed.Bio,
			Tags:       seed.Tags,
			Traits:     seed.Traits,
		}
		for qi, q := range seed.Questions {
			question := models.Question{
				ID:          q.ID,
				CharacterID: seed.ID,
				Prompt:      q.Prompt,
				Position:    qi + 1,
			}
			for ai, a := range q.Answers {
				question.Options = append(question.Options, models.AnswerOption{
					Text:      a.Text,
					Suspicion: a.Suspicion,
					Position:  ai + 1,
				})
			}
			character.Questions = append(character.Questions, question)
		}

		if err := s.db.Create(&character).Error; err != nil {
			return fmt.Errorf("failed to seed character %s: %w", seed.ID, err)
		}
	}

	return nil
}

func (s *CatalogService) Characters(ctx context.Context) ([]models.Character, error) {
	var characters []models.Character
	err := s.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("answer_options.position")
		}).
		Order("id").
		Find(&characters).Error
	return characters, err
}

func (s *CatalogService) CharacterByID(ctx context.Context, id string) (*models.Character, error) {
	var character models.Character
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("answer_options.position")
		}).
		First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Character not found.")
		}
		return nil, err
	}
	return &character, nil
}

// CharacterPreview is the card-stack projection: profile fields only.
type CharacterPreview struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	AvatarSeed string   `json:"avatar_seed"`
	Bio        string   `json:"bio"`
	Tags       []string `json:"tags"`
	Traits     []string `json:"traits"`
}

// QuestionPrompt strips a question down to what the player may see before
// asking it; answer options and their suspicion weights never leave the
// server this way.
type QuestionPrompt struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

type CharacterPublic struct {
	CharacterPreview
	Questions []QuestionPrompt `json:"questions"`
}

func PreviewCharacter(character *models.Character) CharacterPreview {
	return CharacterPreview{
		ID:         character.ID,
		Name:       character.Name,
		Age:        character.Age,
		AvatarSeed: character.AvatarSeed,
		Bio:        character.Bio,
		Tags:       character.Tags,
		Traits:     character.Traits,
	}
}

func PublicCharacter(character *models.Character) CharacterPublic {
	public := CharacterPublic{
		CharacterPreview: PreviewCharacter(character),
		Questions:        []QuestionPrompt{},
	}
	for _, question := range character.Questions {
		public.Questions = append(public.Questions, QuestionPrompt{
			ID:     question.ID,
			Prompt: question.Prompt,
		})
	}
	return public
}
