// Package main implements the bulkgen command, which generates large
// question sets from a topic hierarchy file through the Gemini API and
// writes them to CSV, with optional database persistence and secondary
// exports.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/quizforge/quizforge/internal/bulk"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/ledger"
	"github.com/quizforge/quizforge/internal/platform/gemini"
	"github.com/quizforge/quizforge/internal/platform/logger"
	"github.com/quizforge/quizforge/internal/platform/postgres"
	"github.com/quizforge/quizforge/internal/schema"
)

func main() {
	configFile := flag.String("config", "", "path to config file (optional, environment variables work alone)")
	flag.Parse()

	if err := run(*configFile); err != nil {
		log.Fatalf("bulkgen: %v", err)
	}
}

func run(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithLogger(ctx, appLogger)

	appLogger.Info("configuration loaded",
		"topic_file", cfg.Bulk.TopicFile,
		"question_type", cfg.Bulk.QuestionType,
		"workers", cfg.Bulk.MaxWorkers,
		"output", cfg.Output.Path,
		"ledger_backend", cfg.Ledger.Backend,
		"database_sink", cfg.Database.URL != "")

	client, err := gemini.NewClient(ctx, appLogger, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	templateText := ""
	if cfg.LLM.PromptTemplatePath != "" {
		data, err := os.ReadFile(cfg.LLM.PromptTemplatePath)
		if err != nil {
			return fmt.Errorf("failed to read prompt template: %w", err)
		}
		templateText = string(data)
	}

	generator, err := gemini.NewGenerator(appLogger, client, templateText)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to compile question schemas: %w", err)
	}

	dedup, err := buildLedger(ctx, cfg)
	if err != nil {
		return err
	}

	deps := bulk.PipelineDeps{
		Generator: generator,
		Validator: validator,
		Ledger:    dedup,
		Logger:    appLogger,
	}

	if cfg.Database.URL != "" {
		db, err := postgres.Open(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				appLogger.Warn("failed to close database connection", "error", err)
			}
		}()

		if err := postgres.Migrate(ctx, db, appLogger); err != nil {
			return err
		}

		deps.ExtraSinks = append(deps.ExtraSinks, postgres.NewQuestionStore(db, appLogger))
	}

	result, err := bulk.RunPipeline(ctx, cfg, deps)
	if err != nil {
		return err
	}

	summary := result.Summary
	fmt.Printf("Generated %d of %d questions (%d duplicates discarded)\n",
		summary.TotalGenerated, summary.TotalTarget, summary.Duplicates)
	fmt.Printf("Output written to %s\n", result.OutputPath)
	if result.SecondaryPath != "" {
		fmt.Printf("Secondary export written to %s\n", result.SecondaryPath)
	}
	if result.ReportPath != "" {
		fmt.Printf("Failure report written to %s (%d failed, %d partial objectives)\n",
			result.ReportPath, summary.FailedObjectives, summary.PartialObjectives)
	}

	return nil
}

// buildLedger selects the deduplication backend from configuration.
func buildLedger(ctx context.Context, cfg *config.Config) (ledger.Ledger, error) {
	switch cfg.Ledger.Backend {
	case "redis":
		r, err := ledger.NewRedis(ctx, cfg.Ledger.RedisURL, cfg.Ledger.RedisKey)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis ledger: %w", err)
		}
		return r, nil
	default:
		return ledger.NewMemory(), nil
	}
}
