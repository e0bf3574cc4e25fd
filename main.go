package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"maskle/config"
	"maskle/handlers"
	"maskle/middleware"
	"maskle/models"
	"maskle/routes"
	"maskle/services"
	"maskle/store"
)

func main() {
	// Load .env if present; real env vars win either way
	godotenv.Load()

	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Character{},
		&models.Question{},
		&models.AnswerOption{},
		&models.SessionRecord{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	catalogService := services.NewCatalogService(db)
	if err := catalogService.Seed(cfg.CharactersFile); err != nil {
		log.Fatal("Failed to seed character catalog:", err)
	}

	sessionStore := store.NewRedisStore(redisClient, cfg.SessionTTL)
	sessionService := services.NewSessionService(cfg.Game, catalogService, sessionStore, db)
	statsService := services.NewStatsService(db, catalogService, cfg.Game.TotalQuestions)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessionService)
	characterHandler := handlers.NewCharacterHandler(catalogService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, sessionHandler, characterHandler, statsHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
