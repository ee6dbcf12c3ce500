package factory

import (
	"agent-chat-be/pkg/llm"
	"agent-chat-be/pkg/llm/ollama"
	"agent-chat-be/pkg/llm/openrouter"
	"fmt"
)

// Config selects and tunes the chat completion backend.
type Config struct {
	Provider          string
	Model             string
	BaseURL           string
	APIKey            string
	Temperature       float64
	MaxTokens         int
	RequestsPerSecond float64
}

func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	defaults := llm.Options{Temperature: cfg.Temperature, MaxTokens: cfg.MaxTokens}

	var provider llm.LLMProvider
	switch cfg.Provider {
	case "openrouter", "":
		p, err := openrouter.NewOpenRouterProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, defaults)
		if err != nil {
			return nil, err
		}
		provider = p
	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		provider = ollama.NewOllamaProvider(baseURL, cfg.Model, defaults)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}

	return llm.NewThrottled(provider, cfg.RequestsPerSecond), nil
}
