package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
llm:
  gemini_api_key: test-key
bulk:
  topic_file: topics.json
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, 60, cfg.LLM.CallTimeoutSeconds)
	assert.Equal(t, 3, cfg.Bulk.MinBatchSize)
	assert.Equal(t, 5, cfg.Bulk.MaxWorkers)
	assert.Equal(t, 3, cfg.Bulk.MaxRetries)
	assert.Equal(t, "multiple_choice", cfg.Bulk.QuestionType)
	assert.Equal(t, "questions.csv", cfg.Output.Path)
	assert.Equal(t, "memory", cfg.Ledger.Backend)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("QUIZFORGE_BULK_MAX_WORKERS", "9")
	t.Setenv("QUIZFORGE_LLM_MODEL_NAME", "gemini-2.5-pro")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Bulk.MaxWorkers)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelName)
}

func TestLoadEnvironmentOnly(t *testing.T) {
	t.Setenv("QUIZFORGE_LLM_GEMINI_API_KEY", "env-key")
	t.Setenv("QUIZFORGE_BULK_TOPIC_FILE", "topics.yaml")

	// No config file on disk; the package directory has no config.yaml.
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "topics.yaml", cfg.Bulk.TopicFile)
}

func TestLoadMissingAPIKeyFails(t *testing.T) {
	_, err := Load(writeConfig(t, "bulk:\n  topic_file: topics.json\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadRejectsBadQuestionType(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+"  question_type: essay\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadRedisBackendRequiresURL(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+"ledger:\n  backend: redis\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
