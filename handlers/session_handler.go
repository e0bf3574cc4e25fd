package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maskle/services"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

type CreateSessionRequest struct {
	CharacterID string `json:"character_id" binding:"required"`
}

type AskQuestionRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
}

type DecideRequest struct {
	Decision string `json:"decision" binding:"required"`
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body.")
		return
	}

	sessionID, err := h.sessionService.CreateSession(c.Request.Context(), req.CharacterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session_id": sessionID})
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessionService.GetSession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) AskQuestion(c *gin.Context) {
	var req AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body.")
		return
	}

	result, err := h.sessionService.AskQuestion(c.Request.Context(), c.Param("sessionId"), req.QuestionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *SessionHandler) Decide(c *gin.Context) {
	var req DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body.")
		return
	}

	result, err := h.sessionService.Decide(c.Request.Context(), c.Param("sessionId"), req.Decision)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *SessionHandler) RestartSession(c *gin.Context) {
	sessionID, err := h.sessionService.RestartSession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session_id": sessionID})
}
