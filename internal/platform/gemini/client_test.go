package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/generation"
)

func configWithKey(key string) config.LLMConfig {
	return config.LLMConfig{
		GeminiAPIKey:       key,
		ModelName:          "gemini-2.0-flash",
		Temperature:        0.7,
		MaxRetries:         1,
		RetryDelaySeconds:  1,
		CallTimeoutSeconds: 5,
	}
}

func TestNewClientRequiresModelName(t *testing.T) {
	cfg := configWithKey("test-key")
	cfg.ModelName = ""

	_, err := NewClient(context.Background(), testLogger(), cfg)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestCompleteRejectsEmptyPrompt(t *testing.T) {
	client := &Client{logger: testLogger(), config: configWithKey("test-key")}

	_, err := client.Complete(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}
