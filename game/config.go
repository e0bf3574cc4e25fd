package game

// Band is an inclusive range for running-average suspicion.
type Band struct {
	Min float64
	Max float64
}

type GlitchConfig struct {
	Base     float64
	PerWrong float64
	Max      float64
}

type ScoringConfig struct {
	BaseWin                  int
	BaseLose                 int
	QuestionBonusPerUnused   int
	SuspicionBonusMultiplier int
	ConsolationPerQuestion   int
	MaxConsolation           int
}

// Config holds the gameplay tuning for a single deployment. Every session
// created by a service shares one Config; per-session state lives on Session.
type Config struct {
	TotalQuestions       int
	MinQuestionsToDecide int

	// Probability that a fresh session's character is the alien.
	AlienChance float64

	SuspicionMin float64
	SuspicionMax float64

	// Flat per-answer suspicion targets and the acceptable running-average
	// bands, per role.
	HumanTargetSuspicion float64
	AlienTargetSuspicion float64
	HumanMeanRange       Band
	AlienMeanRange       Band

	// Once at most BalancingWindow questions remain, answer selection starts
	// correcting an out-of-band running average.
	BalancingWindow int

	// Sharpness k of the exp(-k*distance) selection weights.
	WeightSharpness float64

	Glitch  GlitchConfig
	Scoring ScoringConfig
}

func DefaultConfig() Config {
	return Config{
		TotalQuestions:       5,
		MinQuestionsToDecide: 3,
		AlienChance:          0.45,
		SuspicionMin:         0,
		SuspicionMax:         10,
		HumanTargetSuspicion: 0.8,
		AlienTargetSuspicion: 2.0,
		HumanMeanRange:       Band{Min: 0.4, Max: 1.1},
		AlienMeanRange:       Band{Min: 1.6, Max: 2.4},
		BalancingWindow:      2,
		WeightSharpness:      1.6,
		Glitch: GlitchConfig{
			Base:     0.06,
			PerWrong: 0.07,
			Max:      0.35,
		},
		Scoring: ScoringConfig{
			BaseWin:                  120,
			BaseLose:                 20,
			QuestionBonusPerUnused:   6,
			SuspicionBonusMultiplier: 5,
			ConsolationPerQuestion:   2,
			MaxConsolation:           16,
		},
	}
}
