package services

import (
	"context"
	"math"

	"gorm.io/gorm"

	"maskle/models"
)

type StatsService struct {
	db       *gorm.DB
	catalog  Catalog
	fallback int
}

// NewStatsService aggregates ended-session records. fallbackMaxQuestions is
// used when the catalog cannot answer how many questions a session could ask.
func NewStatsService(db *gorm.DB, catalog Catalog, fallbackMaxQuestions int) *StatsService {
	return &StatsService{
		db:       db,
		catalog:  catalog,
		fallback: fallbackMaxQuestions,
	}
}

type GuessDistributionEntry struct {
	Question int     `json:"question"`
	WinCount int     `json:"win_count"`
	Percent  float64 `json:"percent"`
}

type GuessDistribution struct {
	MaxQuestions int                      `json:"max_questions"`
	TotalWins    int                      `json:"total_wins"`
	Distribution []GuessDistributionEntry `json:"distribution"`
}

// GuessDistribution reports, over all winning completed sessions, how many
// questions players had asked before guessing right. characterID is optional
// and narrows both the records and the question axis.
func (s *StatsService) GuessDistribution(ctx context.Context, characterID string) (*GuessDistribution, error) {
	maxQuestions, err := s.maxQuestions(ctx, characterID)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).
		Model(&models.SessionRecord{}).
		Where("status = ? AND outcome = ? AND guessed_at_question IS NOT NULL",
			models.RecordStatusCompleted, "win")
	if characterID != "" {
		query = query.Where("character_id = ?", characterID)
	}

	var rows []struct {
		GuessedAtQuestion int
		Count             int
	}
	err = query.
		Select("guessed_at_question, count(*) as count").
		Group("guessed_at_question").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int, len(rows))
	totalWins := 0
	for _, row := range rows {
		counts[row.GuessedAtQuestion] = row.Count
		totalWins += row.Count
	}

	distribution := make([]GuessDistributionEntry, 0, maxQuestions)
	for question := 1; question <= maxQuestions; question++ {
		winCount := counts[question]
		percent := 0.0
		if totalWins > 0 {
			percent = math.Round(float64(winCount)/float64(totalWins)*1000) / 10
		}
		distribution = append(distribution, GuessDistributionEntry{
			Question: question,
			WinCount: winCount,
			Percent:  percent,
		})
	}

	return &GuessDistribution{
		MaxQuestions: maxQuestions,
		TotalWins:    totalWins,
		Distribution: distribution,
	}, nil
}

func (s *StatsService) maxQuestions(ctx context.Context, characterID string) (int, error) {
	if characterID != "" {
		character, err := s.catalog.CharacterByID(ctx, characterID)
		if err != nil {
			return 0, err
		}
		if len(character.Questions) > 0 {
			return len(character.Questions), nil
		}
		return s.fallback, nil
	}

	characters, err := s.catalog.Characters(ctx)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, character := range characters {
		if len(character.Questions) > max {
			max = len(character.Questions)
		}
	}
	if max == 0 {
		return s.fallback, nil
	}
	return max, nil
}
