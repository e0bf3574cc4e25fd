package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maskle/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

func (h *StatsHandler) GuessDistribution(c *gin.Context) {
	distribution, err := h.statsService.GuessDistribution(c.Request.Context(), c.Query("character_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, distribution)
}
