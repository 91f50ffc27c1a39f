package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	ServerPort string

	// AI quiz generation (OpenAI-compatible chat completions endpoint).
	// Generation stays disabled while AIAPIKey is empty.
	AIAPIKey  string
	AIBaseURL string
	AIModel   string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "quizapp"),
		JWTSecret:  getEnv("JWT_SECRET", "secret"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		AIAPIKey:   getEnv("GROQ_API_KEY", ""),
		AIBaseURL:  getEnv("AI_BASE_URL", "https://api.groq.com/openai/v1"),
		AIModel:    getEnv("AI_MODEL", "llama-3.3-70b-versatile"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
