package game

import (
	"errors"
	"math"
	"sort"

	"maskle/models"
)

// ErrNoAnswerOptions indicates corrupted catalog data: a question that cannot
// produce any candidate answer.
var ErrNoAnswerOptions = errors.New("question has no answer options")

// PickerStats are the running per-session numbers the selection engine uses
// to keep a whole session's suspicion average believable for the role.
type PickerStats struct {
	AnsweredCount  int
	TotalSuspicion float64
}

// Candidate pairs an answer option with its 1-based position in the
// question's original option ordering.
type Candidate struct {
	Option models.AnswerOption
	Choice int
}

// BanCount returns how many options are withheld from a role for a question
// with optionCount options: 2 for the usual 4-option questions, fewer when
// fewer options exist, never the whole set.
func BanCount(optionCount int) int {
	if optionCount <= 1 {
		return 0
	}
	ban := 2
	if optionCount < 4 {
		ban = (optionCount - 1) / 2
		if ban < 1 {
			ban = 1
		}
	}
	if ban > optionCount-1 {
		ban = optionCount - 1
	}
	return ban
}

// FilterOptionsForRole drops the options a role must never surface: a human
// never gives the top-ban most suspicious answers, an alien never gives the
// bottom-ban cleanest ones. If banning empties the set, the single least
// suspicious option remains as a fallback.
func FilterOptionsForRole(question *models.Question, role Role) []Candidate {
	sorted := make([]Candidate, len(question.Options))
	for i, option := range question.Options {
		sorted[i] = Candidate{Option: option, Choice: i + 1}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Option.Suspicion < sorted[j].Option.Suspicion
	})

	ban := BanCount(len(sorted))
	var candidates []Candidate
	if role == RoleHuman {
		candidates = sorted[:len(sorted)-ban]
	} else {
		candidates = sorted[ban:]
	}

	if len(candidates) == 0 && len(sorted) > 0 {
		return sorted[:1]
	}
	return candidates
}

// EffectiveTarget computes the suspicion value selection should aim at. Early
// in a session (or while the running average sits inside the role's band) the
// flat role target applies; in the final BalancingWindow questions an
// out-of-band average gets a damped pull toward the band center, clamped so
// the target never leaves the band.
func EffectiveTarget(cfg Config, role Role, stats PickerStats) float64 {
	baseTarget := cfg.HumanTargetSuspicion
	band := cfg.HumanMeanRange
	if role == RoleAlien {
		baseTarget = cfg.AlienTargetSuspicion
		band = cfg.AlienMeanRange
	}

	average := baseTarget
	if stats.AnsweredCount > 0 {
		average = stats.TotalSuspicion / float64(stats.AnsweredCount)
	}
	remaining := cfg.TotalQuestions - stats.AnsweredCount
	if remaining < 0 {
		remaining = 0
	}

	if remaining > cfg.BalancingWindow || (average >= band.Min && average <= band.Max) {
		return baseTarget
	}

	center := (band.Min + band.Max) / 2
	target := center + (center-average)*0.7
	return clamp(target, band.Min, band.Max)
}

// PickAnswer selects which option the character surfaces. One rng draw makes
// the weighted pick, so the same question asked at the same turn index in the
// same session always answers identically.
func PickAnswer(cfg Config, question *models.Question, role Role, stats PickerStats, rng *SeededRand) (Candidate, error) {
	candidates := FilterOptionsForRole(question, role)
	if len(candidates) == 0 {
		return Candidate{}, ErrNoAnswerOptions
	}

	target := EffectiveTarget(cfg, role, stats)
	weights := make([]float64, len(candidates))
	totalWeight := 0.0
	for i, candidate := range candidates {
		weights[i] = math.Exp(-math.Abs(float64(candidate.Option.Suspicion)-target) * cfg.WeightSharpness)
		totalWeight += weights[i]
	}
	if totalWeight <= 0 {
		return candidates[0], nil
	}

	roll := rng.Float64() * totalWeight
	cumulative := 0.0
	for i, candidate := range candidates {
		cumulative += weights[i]
		if roll <= cumulative {
			return candidate, nil
		}
	}
	return candidates[len(candidates)-1], nil
}

// GlitchChance derives the cosmetic glitch float the UI renders for a turn.
// Carried through the turn log; core logic never reads it back.
func GlitchChance(cfg Config, choice int, jitter float64) float64 {
	chance := cfg.Glitch.Base + float64(choice-1)*cfg.Glitch.PerWrong + jitter*0.08
	if chance > cfg.Glitch.Max {
		return cfg.Glitch.Max
	}
	return chance
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
