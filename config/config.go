package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"maskle/game"
)

type Config struct {
	Port           string
	BindAddress    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	RedisHost      string
	RedisPort      string
	CharactersFile string
	SessionTTL     time.Duration
	Game           game.Config
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		BindAddress:    getEnv("BIND_ADDRESS", "localhost"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "maskle"),
		DBPassword:     getEnv("DB_PASSWORD", "maskle123"),
		DBName:         getEnv("DB_NAME", "maskle"),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		CharactersFile: getEnv("CHARACTERS_FILE", "data/characters.json"),
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
		Game:           loadGameConfig(),
	}
}

// loadGameConfig applies env overrides on top of the gameplay defaults. Only
// the knobs that vary per deployment are exposed; the tuning constants stay
// in game.DefaultConfig.
func loadGameConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.TotalQuestions = getEnvInt("GAME_TOTAL_QUESTIONS", cfg.TotalQuestions)
	cfg.MinQuestionsToDecide = getEnvInt("GAME_MIN_QUESTIONS_TO_DECIDE", cfg.MinQuestionsToDecide)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func InitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	return client
}
