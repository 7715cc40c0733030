package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Keys    APIKeys
	Ai      AIConfig
	Upload  UploadConfig
	Session SessionConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
	EventTopic         string
}

type APIKeys struct {
	Groq    string
	YouTube string
}

type AIConfig struct {
	LLMProvider        string // "groq" or "ollama"
	LLMModel           string
	FallbackModels     []string
	GroqBaseURL        string
	OllamaBaseURL      string
	HealthIntervalSecs int
	RetryAttempts      int
	RetryDelaySecs     int
}

type UploadConfig struct {
	MaxSizeMB   int
	Dir         string
	TimeoutSecs int
}

type SessionConfig struct {
	Backend string // "memory" or "redis"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			EventTopic:         getEnv("DOCUMENT_PROCESSED_TOPIC_NAME", "DOCUMENT_PROCESSED"),
		},
		Keys: APIKeys{
			Groq:    getEnv("GROQ_API_KEY", ""),
			YouTube: getEnv("YOUTUBE_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:        getEnv("LLM_PROVIDER", "groq"),
			LLMModel:           getEnv("LLM_MODEL", "llama3-8b-8192"),
			FallbackModels:     []string{"llama3-8b-8192", "llama3-70b-8192"},
			GroqBaseURL:        getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			HealthIntervalSecs: getEnvAsInt("AI_HEALTH_INTERVAL_SECONDS", 60),
			RetryAttempts:      getEnvAsInt("AI_RETRY_ATTEMPTS", 3),
			RetryDelaySecs:     getEnvAsInt("AI_RETRY_DELAY_SECONDS", 2),
		},
		Upload: UploadConfig{
			MaxSizeMB:   getEnvAsInt("UPLOAD_MAX_SIZE_MB", 50),
			Dir:         getEnv("UPLOAD_DIR", "uploads"),
			TimeoutSecs: getEnvAsInt("UPLOAD_TIMEOUT_SECONDS", 120),
		},
		Session: SessionConfig{
			Backend: getEnv("SESSION_BACKEND", "memory"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
