package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maskle/handlers"
)

func SetupRoutes(
	router *gin.Engine,
	sessionHandler *handlers.SessionHandler,
	characterHandler *handlers.CharacterHandler,
	statsHandler *handlers.StatsHandler,
) {
	api := router.Group("/api")
	{
		characters := api.Group("/characters")
		{
			characters.GET("", characterHandler.ListCharacters)
			characters.GET("/:characterId/questions", characterHandler.GetCharacterQuestions)
		}

		session := api.Group("/session")
		{
			session.POST("", sessionHandler.CreateSession)
			session.GET("/:sessionId", sessionHandler.GetSession)
			session.POST("/:sessionId/ask", sessionHandler.AskQuestion)
			session.POST("/:sessionId/decide", sessionHandler.Decide)
			session.POST("/:sessionId/restart", sessionHandler.RestartSession)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/guess-distribution", statsHandler.GuessDistribution)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
