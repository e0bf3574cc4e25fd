package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"maskle/models"
)

type SessionStatus string

const (
	StatusInProgress SessionStatus = "in_progress"
	StatusEnded      SessionStatus = "ended"
)

type Decision string

const (
	DecisionAccuse Decision = "accuse"
	DecisionTrust  Decision = "trust"
)

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

var (
	ErrSessionEnded         = errors.New("session has ended")
	ErrQuestionAlreadyAsked = errors.New("question already asked")
	ErrQuestionBudgetSpent  = errors.New("question budget exhausted")
	ErrNotEnoughQuestions   = errors.New("not enough questions asked to decide")
)

// TurnLog is the immutable record of one question-answer exchange.
type TurnLog struct {
	ID              string    `json:"id"`
	QuestionID      string    `json:"question_id"`
	QuestionPrompt  string    `json:"question_prompt"`
	AnswerChoice    int       `json:"answer_choice"`
	AnswerText      string    `json:"answer_text"`
	SuspicionBefore float64   `json:"suspicion_before"`
	SuspicionAfter  float64   `json:"suspicion_after"`
	GlitchChance    float64   `json:"glitch_chance"`
	Timestamp       time.Time `json:"timestamp"`
}

// Session is the mutable aggregate for one playthrough. Seed and IsAlien are
// persisted but must never reach the client; Public strips them.
type Session struct {
	ID               string          `json:"id"`
	Seed             string          `json:"seed"`
	CharacterID      string          `json:"character_id"`
	IsAlien          bool            `json:"is_alien"`
	AskedQuestionIDs []string        `json:"asked_question_ids"`
	Turns            []TurnLog       `json:"turns"`
	Suspicion        float64         `json:"suspicion"`
	TotalQuestions   int             `json:"total_questions"`
	Status           SessionStatus   `json:"status"`
	FinalDecision    Decision        `json:"final_decision,omitempty"`
	FinalOutcome     Outcome         `json:"final_outcome,omitempty"`
	Score            int             `json:"score"`
	ScoreBreakdown   *ScoreBreakdown `json:"score_breakdown,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// SessionPublic is the client-safe projection. The hidden role is never
// included, even after the session ends; clients infer the reveal from
// decision and outcome.
type SessionPublic struct {
	ID               string          `json:"id"`
	CharacterID      string          `json:"character_id"`
	AskedQuestionIDs []string        `json:"asked_question_ids"`
	Turns            []TurnLog       `json:"turns"`
	Suspicion        float64         `json:"suspicion"`
	TotalQuestions   int             `json:"total_questions"`
	Status           SessionStatus   `json:"status"`
	FinalDecision    Decision        `json:"final_decision,omitempty"`
	FinalOutcome     Outcome         `json:"final_outcome,omitempty"`
	Score            int             `json:"score"`
	ScoreBreakdown   *ScoreBreakdown `json:"score_breakdown,omitempty"`
}

// NewSession creates a fresh in-progress session for a character, generating
// the seed and stamping the hidden role from it.
func NewSession(cfg Config, characterID string) *Session {
	seed := NewSeed()
	return &Session{
		ID:               uuid.NewString(),
		Seed:             seed,
		CharacterID:      characterID,
		IsAlien:          DetermineRole(cfg, seed) == RoleAlien,
		AskedQuestionIDs: []string{},
		Turns:            []TurnLog{},
		Suspicion:        cfg.SuspicionMin,
		TotalQuestions:   cfg.TotalQuestions,
		Status:           StatusInProgress,
		CreatedAt:        time.Now().UTC(),
	}
}

func (s *Session) Role() Role {
	if s.IsAlien {
		return RoleAlien
	}
	return RoleHuman
}

func (s *Session) Public() *SessionPublic {
	return &SessionPublic{
		ID:               s.ID,
		CharacterID:      s.CharacterID,
		AskedQuestionIDs: s.AskedQuestionIDs,
		Turns:            s.Turns,
		Suspicion:        s.Suspicion,
		TotalQuestions:   s.TotalQuestions,
		Status:           s.Status,
		FinalDecision:    s.FinalDecision,
		FinalOutcome:     s.FinalOutcome,
		Score:            s.Score,
		ScoreBreakdown:   s.ScoreBreakdown,
	}
}

// Clone deep-copies the aggregate so stores can hand out state without
// aliasing their own copy.
func (s *Session) Clone() *Session {
	clone := *s
	clone.AskedQuestionIDs = append([]string{}, s.AskedQuestionIDs...)
	clone.Turns = append([]TurnLog{}, s.Turns...)
	if s.ScoreBreakdown != nil {
		breakdown := *s.ScoreBreakdown
		clone.ScoreBreakdown = &breakdown
	}
	return &clone
}

func (s *Session) hasAsked(questionID string) bool {
	for _, id := range s.AskedQuestionIDs {
		if id == questionID {
			return true
		}
	}
	return false
}

// pickerStats rebuilds the running selection stats from the turn log. Deltas
// are the post-clamp values, so a maxed-out meter slightly under-reports raw
// suspicion; the balancing band tolerates that.
func (s *Session) pickerStats() PickerStats {
	total := 0.0
	for _, turn := range s.Turns {
		total += turn.SuspicionAfter - turn.SuspicionBefore
	}
	return PickerStats{AnsweredCount: len(s.Turns), TotalSuspicion: total}
}

// PlayTurn asks one question: validates the state machine, picks the answer
// for the session's role, appends the turn record, and advances the meter.
// The rng key includes the turn index, so the full transcript is a pure
// function of seed and question order.
func PlayTurn(cfg Config, s *Session, question *models.Question) (*TurnLog, error) {
	if s.Status != StatusInProgress {
		return nil, ErrSessionEnded
	}
	if s.hasAsked(question.ID) {
		return nil, ErrQuestionAlreadyAsked
	}
	if len(s.AskedQuestionIDs) >= s.TotalQuestions {
		return nil, ErrQuestionBudgetSpent
	}

	rng := NewSeededRand(fmt.Sprintf("%s:%s:%d", s.Seed, question.ID, len(s.AskedQuestionIDs)))
	candidate, err := PickAnswer(cfg, question, s.Role(), s.pickerStats(), rng)
	if err != nil {
		return nil, err
	}
	glitch := GlitchChance(cfg, candidate.Choice, rng.Float64())

	before := s.Suspicion
	after := AddSuspicion(cfg, before, float64(candidate.Option.Suspicion))

	turn := TurnLog{
		ID:              uuid.NewString(),
		QuestionID:      question.ID,
		QuestionPrompt:  question.Prompt,
		AnswerChoice:    candidate.Choice,
		AnswerText:      candidate.Option.Text,
		SuspicionBefore: before,
		SuspicionAfter:  after,
		GlitchChance:    glitch,
		Timestamp:       time.Now().UTC(),
	}

	s.AskedQuestionIDs = append(s.AskedQuestionIDs, question.ID)
	s.Turns = append(s.Turns, turn)
	s.Suspicion = after

	return &turn, nil
}

// Decide resolves the session: compares the player's call against the hidden
// role, computes the score breakdown, and moves the session to its terminal
// state. The ended state is monotonic; replays of Decide fail.
func Decide(cfg Config, s *Session, decision Decision) (Outcome, ScoreBreakdown, error) {
	if s.Status != StatusInProgress {
		return "", ScoreBreakdown{}, ErrSessionEnded
	}
	if len(s.AskedQuestionIDs) < cfg.MinQuestionsToDecide {
		return "", ScoreBreakdown{}, ErrNotEnoughQuestions
	}

	isWin := (decision == DecisionAccuse && s.IsAlien) || (decision == DecisionTrust && !s.IsAlien)
	outcome := OutcomeLose
	if isWin {
		outcome = OutcomeWin
	}

	breakdown := CalculateScore(cfg, ScoreInput{
		IsWin:          isWin,
		Decision:       decision,
		IsAlien:        s.IsAlien,
		QuestionsAsked: len(s.AskedQuestionIDs),
		TotalQuestions: s.TotalQuestions,
		Suspicion:      s.Suspicion,
	})

	s.Status = StatusEnded
	s.FinalDecision = decision
	s.FinalOutcome = outcome
	s.Score = breakdown.Total
	s.ScoreBreakdown = &breakdown

	return outcome, breakdown, nil
}
