package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LLM_TEMPERATURE", "")
	t.Setenv("CHAT_MESSAGE_LIMIT", "")

	cfg := Load()

	assert.Equal(t, 0.7, cfg.Ai.Temperature)
	assert.Equal(t, 20, cfg.Chat.MessageLimit)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.Ai.ProviderBaseURL())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("OLLAMA_BASE_URL", "http://ollama:11434")
	t.Setenv("LLM_REQUESTS_PER_SECOND", "0.5")
	t.Setenv("ARTIFACT_STREAM_CHUNK", "not-a-number")

	cfg := Load()

	assert.Equal(t, "http://ollama:11434", cfg.Ai.ProviderBaseURL())
	assert.Equal(t, 0.5, cfg.Ai.RequestsPerSecond)
	assert.Equal(t, 40, cfg.Artifact.StreamChunk)
}
