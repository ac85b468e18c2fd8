package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	LLM      LLMConfig      `mapstructure:"llm" validate:"required"`
	Bulk     BulkConfig     `mapstructure:"bulk" validate:"required"`
	Output   OutputConfig   `mapstructure:"output" validate:"required"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Database DatabaseConfig `mapstructure:"database"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all completion-service related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name" validate:"required"`
	// Temperature applies to every completion call.
	Temperature float32 `mapstructure:"temperature" validate:"gte=0,lte=2"`
	// MaxRetries bounds transient-error retries inside a single
	// completion call. Distinct from Bulk.MaxRetries, which bounds
	// whole-batch regeneration attempts.
	MaxRetries        int `mapstructure:"max_retries" validate:"gte=0"`
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=0"`
	// CallTimeoutSeconds bounds one completion call end to end.
	CallTimeoutSeconds int `mapstructure:"call_timeout_seconds" validate:"gt=0"`
	// PromptTemplatePath optionally overrides the built-in prompt template.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`
}

// BulkConfig drives the bulk-generation pipeline.
type BulkConfig struct {
	// TopicFile is the topic hierarchy input (JSON or YAML).
	TopicFile string `mapstructure:"topic_file" validate:"required"`
	// TotalQuestions is the run-wide target when objectives carry no
	// explicit counts. Ignored when QuestionsPerObjective is set.
	TotalQuestions int `mapstructure:"total_questions" validate:"gte=0"`
	// QuestionsPerObjective overrides every objective's target.
	QuestionsPerObjective int `mapstructure:"questions_per_objective" validate:"gte=0"`
	// MinBatchSize is the floor for the even-split base count.
	MinBatchSize int    `mapstructure:"min_batch_size" validate:"gt=0"`
	MaxWorkers   int    `mapstructure:"max_workers" validate:"gt=0"`
	MaxRetries   int    `mapstructure:"max_retries" validate:"gt=0"`
	QuestionType string `mapstructure:"question_type" validate:"required,oneof=multiple_choice short_answer true_false fill_in_blank"`
	Difficulty   string `mapstructure:"difficulty"`
	// CustomInstructions are appended verbatim to every prompt.
	CustomInstructions string `mapstructure:"custom_instructions"`
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	// Path is the primary CSV output file.
	Path string `mapstructure:"path" validate:"required"`
	// Append seeds the deduplication ledger from an existing output file
	// and appends to it instead of truncating.
	Append bool `mapstructure:"append"`
	// SecondaryFormat optionally renders the aggregate into a second file
	// next to the primary one.
	SecondaryFormat string `mapstructure:"secondary_format" validate:"omitempty,oneof=pdf json xlsx"`
	// ReportPath is where the failure report is written when any
	// objective recorded a failed attempt.
	ReportPath string `mapstructure:"report_path"`
}

// LedgerConfig selects the deduplication ledger backend.
type LedgerConfig struct {
	Backend  string `mapstructure:"backend" validate:"required,oneof=memory redis"`
	RedisURL string `mapstructure:"redis_url" validate:"required_if=Backend redis"`
	// RedisKey is the set key holding normalized question texts.
	RedisKey string `mapstructure:"redis_key"`
}

// DatabaseConfig contains the optional Postgres sink settings.
// An empty URL disables the database sink entirely.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}
