package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"maskle/game"
	"maskle/models"
	"maskle/store"
)

// SessionService orchestrates the game engine against the injected session
// store and the character catalog. Each operation is a stateless
// read-modify-write; the store owns write serialization per session id.
type SessionService struct {
	cfg     game.Config
	catalog Catalog
	store   store.SessionStore
	db      *gorm.DB
}

// NewSessionService wires the engine. db may be nil, in which case ended
// sessions are not recorded for stats.
func NewSessionService(cfg game.Config, catalog Catalog, sessionStore store.SessionStore, db *gorm.DB) *SessionService {
	return &SessionService{
		cfg:     cfg,
		catalog: catalog,
		store:   sessionStore,
		db:      db,
	}
}

type AskResult struct {
	AnswerText     string       `json:"answer_text"`
	AnswerChoice   int          `json:"answer_choice"`
	SuspicionAfter float64      `json:"suspicion_after"`
	GlitchChance   float64      `json:"glitch_chance"`
	Turn           game.TurnLog `json:"turn"`
}

type DecideResult struct {
	Outcome   game.Outcome        `json:"outcome"`
	Score     int                 `json:"score"`
	Breakdown game.ScoreBreakdown `json:"breakdown"`
}

func (s *SessionService) CreateSession(ctx context.Context, characterID string) (string, error) {
	if characterID == "" {
		return "", BadRequest("characterId is required.")
	}
	if _, err := s.catalog.CharacterByID(ctx, characterID); err != nil {
		return "", err
	}

	session := game.NewSession(s.cfg, characterID)
	if err := s.store.Create(ctx, session); err != nil {
		log.Printf("Failed to create session %s: %v", session.ID, err)
		return "", ServerError("Failed to create session.")
	}
	return session.ID, nil
}

func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*game.SessionPublic, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Public(), nil
}

func (s *SessionService) AskQuestion(ctx context.Context, sessionID, questionID string) (*AskResult, error) {
	if questionID == "" {
		return nil, BadRequest("questionId is required.")
	}

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	character, err := s.catalog.CharacterByID(ctx, session.CharacterID)
	if err != nil {
		return nil, err
	}

	var question *models.Question
	for i := range character.Questions {
		if character.Questions[i].ID == questionID {
			question = &character.Questions[i]
			break
		}
	}
	if question == nil {
		return nil, NotFound("Question not found.")
	}

	turn, err := game.PlayTurn(s.cfg, session, question)
	if err != nil {
		return nil, mapEngineError(err)
	}

	if err := s.store.Update(ctx, session); err != nil {
		log.Printf("Failed to update session %s: %v", session.ID, err)
		return nil, ServerError("Failed to save session.")
	}

	return &AskResult{
		AnswerText:     turn.AnswerText,
		AnswerChoice:   turn.AnswerChoice,
		SuspicionAfter: turn.SuspicionAfter,
		GlitchChance:   turn.GlitchChance,
		Turn:           *turn,
	}, nil
}

func (s *SessionService) Decide(ctx context.Context, sessionID string, decision string) (*DecideResult, error) {
	var parsed game.Decision
	switch decision {
	case string(game.DecisionAccuse):
		parsed = game.DecisionAccuse
	case string(game.DecisionTrust):
		parsed = game.DecisionTrust
	default:
		return nil, BadRequest("decision must be accuse or trust.")
	}

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	outcome, breakdown, err := game.Decide(s.cfg, session, parsed)
	if err != nil {
		return nil, mapEngineError(err)
	}

	if err := s.store.Update(ctx, session); err != nil {
		log.Printf("Failed to update session %s: %v", session.ID, err)
		return nil, ServerError("Failed to save session.")
	}

	s.recordEnded(session, models.RecordStatusCompleted)

	return &DecideResult{
		Outcome:   outcome,
		Score:     breakdown.Total,
		Breakdown: breakdown,
	}, nil
}

// RestartSession ends the old session if still in progress and creates a
// brand-new one for the same character with a fresh seed and role. The old
// session is never reset in place.
func (s *SessionService) RestartSession(ctx context.Context, sessionID string) (string, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return "", err
	}

	if session.Status == game.StatusInProgress {
		session.Status = game.StatusEnded
		if err := s.store.Update(ctx, session); err != nil {
			log.Printf("Failed to end session %s on restart: %v", session.ID, err)
			return "", ServerError("Failed to save session.")
		}
		s.recordEnded(session, models.RecordStatusAbandoned)
	}

	fresh := game.NewSession(s.cfg, session.CharacterID)
	if err := s.store.Create(ctx, fresh); err != nil {
		log.Printf("Failed to create session %s: %v", fresh.ID, err)
		return "", ServerError("Failed to create session.")
	}
	return fresh.ID, nil
}

func (s *SessionService) getSession(ctx context.Context, sessionID string) (*game.Session, error) {
	if sessionID == "" {
		return nil, BadRequest("sessionId is required.")
	}
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("Session not found.")
		}
		log.Printf("Failed to load session %s: %v", sessionID, err)
		return nil, ServerError("Failed to load session.")
	}
	return session, nil
}

// recordEnded writes the durable stats row for a session leaving play.
// Best effort: stats must not fail gameplay, so errors are only logged.
func (s *SessionService) recordEnded(session *game.Session, status string) {
	if s.db == nil {
		return
	}

	record := models.SessionRecord{
		SessionID:      session.ID,
		CharacterID:    session.CharacterID,
		Status:         status,
		Outcome:        string(session.FinalOutcome),
		Decision:       string(session.FinalDecision),
		WasAlien:       session.IsAlien,
		QuestionsAsked: len(session.AskedQuestionIDs),
		Suspicion:      session.Suspicion,
		Score:          session.Score,
	}
	if session.FinalOutcome == game.OutcomeWin {
		asked := len(session.AskedQuestionIDs)
		record.GuessedAtQuestion = &asked
	}

	if err := s.db.Create(&record).Error; err != nil {
		log.Printf("Failed to record session %s: %v", session.ID, err)
	}
}

func mapEngineError(err error) error {
	switch {
	case errors.Is(err, game.ErrSessionEnded):
		return Conflict("Session has ended.")
	case errors.Is(err, game.ErrQuestionAlreadyAsked):
		return Conflict("Question already asked.")
	case errors.Is(err, game.ErrQuestionBudgetSpent):
		return Conflict("No questions remaining.")
	case errors.Is(err, game.ErrNotEnoughQuestions):
		return Conflict("Ask more questions before deciding.")
	case errors.Is(err, game.ErrNoAnswerOptions):
		return ServerError("Question has no answer options.")
	default:
		return ServerError("Unexpected engine failure.")
	}
}
