package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
	Chat     ChatConfig
	Artifact ArtifactConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	StreamLogFilePath  string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret         string
	AdminEmail        string
	AdminPasswordHash string
}

type AIConfig struct {
	LLMProvider       string // "openrouter" or "ollama"
	LLMModel          string
	LLMBaseURL        string
	OpenRouterAPIKey  string
	OllamaBaseURL     string
	Temperature       float64
	MaxTokens         int
	RequestsPerSecond float64
}

type ChatConfig struct {
	MessageLimit  int
	HistoryWindow int
}

type ArtifactConfig struct {
	StreamChunk      int
	StreamIntervalMs int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			StreamLogFilePath:  getEnv("STREAM_LOG_FILE_PATH", "logs/artifact_stream.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret:         getEnv("JWT_SECRET", ""),
			AdminEmail:        getEnv("ADMIN_EMAIL", ""),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "openrouter"),
			LLMModel:          getEnv("LLM_MODEL", "openai/gpt-4o-mini"),
			LLMBaseURL:        getEnv("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
			OpenRouterAPIKey:  getEnv("OPENROUTER_API_KEY", ""),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Temperature:       getEnvAsFloat("LLM_TEMPERATURE", 0.7),
			MaxTokens:         getEnvAsInt("LLM_MAX_TOKENS", 4096),
			RequestsPerSecond: getEnvAsFloat("LLM_REQUESTS_PER_SECOND", 2),
		},
		Chat: ChatConfig{
			MessageLimit:  getEnvAsInt("CHAT_MESSAGE_LIMIT", 20),
			HistoryWindow: getEnvAsInt("CHAT_HISTORY_WINDOW", 20),
		},
		Artifact: ArtifactConfig{
			StreamChunk:      getEnvAsInt("ARTIFACT_STREAM_CHUNK", 40),
			StreamIntervalMs: getEnvAsInt("ARTIFACT_STREAM_INTERVAL_MS", 15),
		},
	}
}

// ProviderBaseURL returns the base URL for the configured LLM provider.
func (c AIConfig) ProviderBaseURL() string {
	if c.LLMProvider == "ollama" {
		return c.OllamaBaseURL
	}
	return c.LLMBaseURL
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
