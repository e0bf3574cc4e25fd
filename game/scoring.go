package game

import "math"

type ScoreInput struct {
	IsWin          bool
	Decision       Decision
	IsAlien        bool
	QuestionsAsked int
	TotalQuestions int
	Suspicion      float64
}

// ScoreBreakdown itemizes the final score; the UI renders each line, so the
// parts are kept alongside the total.
type ScoreBreakdown struct {
	Base           int `json:"base"`
	QuestionBonus  int `json:"question_bonus"`
	SuspicionBonus int `json:"suspicion_bonus"`
	Consolation    int `json:"consolation"`
	Total          int `json:"total"`
}

// CalculateScore computes the deterministic point breakdown for a finished
// session. Wins earn the base plus a bonus per unused question; unmasking an
// actual alien additionally pays out on the suspicion extracted. Wrongly
// accusing an innocent human earns a small capped consolation.
func CalculateScore(cfg Config, input ScoreInput) ScoreBreakdown {
	unused := input.TotalQuestions - input.QuestionsAsked
	if unused < 0 {
		unused = 0
	}

	base := cfg.Scoring.BaseLose
	questionBonus := 0
	if input.IsWin {
		base = cfg.Scoring.BaseWin
		questionBonus = unused * cfg.Scoring.QuestionBonusPerUnused
	}

	suspicionBonus := 0
	if input.IsAlien {
		clamped := ClampSuspicion(cfg, input.Suspicion)
		suspicionBonus = int(math.Round(clamped * float64(cfg.Scoring.SuspicionBonusMultiplier)))
	}

	consolation := 0
	if !input.IsWin && input.Decision == DecisionAccuse && !input.IsAlien {
		consolation = (input.QuestionsAsked / 2) * cfg.Scoring.ConsolationPerQuestion
		if consolation > cfg.Scoring.MaxConsolation {
			consolation = cfg.Scoring.MaxConsolation
		}
	}

	total := base + questionBonus + suspicionBonus + consolation
	if total < 0 {
		total = 0
	}

	return ScoreBreakdown{
		Base:           base,
		QuestionBonus:  questionBonus,
		SuspicionBonus: suspicionBonus,
		Consolation:    consolation,
		Total:          total,
	}
}
