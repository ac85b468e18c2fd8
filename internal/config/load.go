package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment variable overrides, so the
// Gemini key is read from QUIZFORGE_LLM_GEMINI_API_KEY and so on.
const envPrefix = "QUIZFORGE"

// Load reads configuration from an optional config file and environment
// variables. Environment variables take precedence over file values.
// Returns a populated Config struct or an error if loading or validation
// fails.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing implicit config file is fine; an explicitly named
		// one must exist.
		if !errors.As(err, &notFound) || configFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers default values for everything that has a sane one.
// Required settings without defaults (API key, topic file) must come from
// the config file or environment.
// Keys without a meaningful default still get an empty one registered;
// viper only unmarshals keys it knows about, and AutomaticEnv overrides
// are invisible for unregistered keys.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.prompt_template_path", "")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_retries", 3)
	v.SetDefault("llm.retry_delay_seconds", 2)
	v.SetDefault("llm.call_timeout_seconds", 60)

	v.SetDefault("bulk.topic_file", "")
	v.SetDefault("bulk.total_questions", 0)
	v.SetDefault("bulk.questions_per_objective", 0)
	v.SetDefault("bulk.min_batch_size", 3)
	v.SetDefault("bulk.max_workers", 5)
	v.SetDefault("bulk.max_retries", 3)
	v.SetDefault("bulk.question_type", "multiple_choice")
	v.SetDefault("bulk.difficulty", "")
	v.SetDefault("bulk.custom_instructions", "")

	v.SetDefault("output.path", "questions.csv")
	v.SetDefault("output.append", false)
	v.SetDefault("output.secondary_format", "")
	v.SetDefault("output.report_path", "failure_report.json")

	v.SetDefault("ledger.backend", "memory")
	v.SetDefault("ledger.redis_url", "")
	v.SetDefault("ledger.redis_key", "quizforge:question_texts")

	v.SetDefault("database.url", "")
}
