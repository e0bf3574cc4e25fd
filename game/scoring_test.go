package game

import (
	"testing"
)

// TestScoreWinUsesUnusedQuestionBonus covers the efficient-win reward.
func TestScoreWinUsesUnusedQuestionBonus(t *testing.T) {
	cfg := DefaultConfig()
	breakdown := CalculateScore(cfg, ScoreInput{
		IsWin:          true,
		Decision:       DecisionAccuse,
		IsAlien:        true,
		QuestionsAsked: 3,
		TotalQuestions: 5,
		Suspicion:      8,
	})

	if breakdown.Base != cfg.Scoring.BaseWin {
		t.Fatalf("base = %d, want %d", breakdown.Base, cfg.Scoring.BaseWin)
	}
	if breakdown.QuestionBonus != 2*cfg.Scoring.QuestionBonusPerUnused {
		t.Fatalf("question bonus = %d, want %d", breakdown.QuestionBonus, 2*cfg.Scoring.QuestionBonusPerUnused)
	}
	if breakdown.SuspicionBonus != 40 {
		t.Fatalf("suspicion bonus = %d, want 40", breakdown.SuspicionBonus)
	}
	if breakdown.Consolation != 0 {
		t.Fatalf("consolation = %d, want 0", breakdown.Consolation)
	}
	want := cfg.Scoring.BaseWin + 2*cfg.Scoring.QuestionBonusPerUnused + 40
	if breakdown.Total != want {
		t.Fatalf("total = %d, want %d", breakdown.Total, want)
	}
}

// TestScoreFullBudgetWinHasNoQuestionBonus covers the boundary where every
// question was spent.
func TestScoreFullBudgetWinHasNoQuestionBonus(t *testing.T) {
	cfg := DefaultConfig()
	breakdown := CalculateScore(cfg, ScoreInput{
		IsWin:          true,
		Decision:       DecisionTrust,
		IsAlien:        false,
		QuestionsAsked: cfg.TotalQuestions,
		TotalQuestions: cfg.TotalQuestions,
		Suspicion:      2,
	})

	if breakdown.QuestionBonus != 0 {
		t.Fatalf("question bonus = %d, want 0", breakdown.QuestionBonus)
	}
	if breakdown.SuspicionBonus != 0 {
		t.Fatalf("suspicion bonus = %d for human, want 0", breakdown.SuspicionBonus)
	}
}

// TestScoreConsolationOnWrongAccusal covers the capped participation reward
// for accusing an innocent human.
func TestScoreConsolationOnWrongAccusal(t *testing.T) {
	cfg := DefaultConfig()

	breakdown := CalculateScore(cfg, ScoreInput{
		IsWin:          false,
		Decision:       DecisionAccuse,
		IsAlien:        false,
		QuestionsAsked: 6,
		TotalQuestions: 10,
		Suspicion:      4,
	})
	if breakdown.Consolation != 6 {
		t.Fatalf("consolation = %d, want 6", breakdown.Consolation)
	}
	if breakdown.Base != cfg.Scoring.BaseLose {
		t.Fatalf("base = %d, want %d", breakdown.Base, cfg.Scoring.BaseLose)
	}

	// Cap: 20 questions would earn 20 points uncapped.
	breakdown = CalculateScore(cfg, ScoreInput{
		IsWin:          false,
		Decision:       DecisionAccuse,
		IsAlien:        false,
		QuestionsAsked: 20,
		TotalQuestions: 20,
		Suspicion:      0,
	})
	if breakdown.Consolation != cfg.Scoring.MaxConsolation {
		t.Fatalf("consolation = %d, want cap %d", breakdown.Consolation, cfg.Scoring.MaxConsolation)
	}
}

// TestScoreNoConsolationForWrongTrust ensures trusting an alien earns nothing extra.
func TestScoreNoConsolationForWrongTrust(t *testing.T) {
	cfg := DefaultConfig()
	breakdown := CalculateScore(cfg, ScoreInput{
		IsWin:          false,
		Decision:       DecisionTrust,
		IsAlien:        true,
		QuestionsAsked: 4,
		TotalQuestions: 5,
		Suspicion:      9,
	})
	if breakdown.Consolation != 0 {
		t.Fatalf("consolation = %d, want 0", breakdown.Consolation)
	}
	// Losing to an alien still pays the suspicion bonus the player extracted.
	if breakdown.SuspicionBonus != 45 {
		t.Fatalf("suspicion bonus = %d, want 45", breakdown.SuspicionBonus)
	}
}

// TestScoreTotalNeverNegative exercises the floor with a hostile config.
func TestScoreTotalNeverNegative(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scoring.BaseLose = -50

	breakdown := CalculateScore(cfg, ScoreInput{
		IsWin:          false,
		Decision:       DecisionTrust,
		IsAlien:        false,
		QuestionsAsked: 3,
		TotalQuestions: 5,
		Suspicion:      0,
	})
	if breakdown.Total != 0 {
		t.Fatalf("total = %d, want 0", breakdown.Total)
	}
}
