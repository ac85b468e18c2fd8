package bulk

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/domain"
	"github.com/quizforge/quizforge/internal/export"
	"github.com/quizforge/quizforge/internal/generation"
	"github.com/quizforge/quizforge/internal/hierarchy"
	"github.com/quizforge/quizforge/internal/ledger"
	"github.com/quizforge/quizforge/internal/schema"
)

// PipelineDeps are the collaborators a pipeline run needs. ExtraSinks
// (such as the Postgres store) receive every accepted question in addition
// to the primary CSV sink.
type PipelineDeps struct {
	Generator  generation.Generator
	Validator  *schema.Validator
	Ledger     ledger.Ledger
	ExtraSinks []Sink
	Logger     *slog.Logger
}

// PipelineResult reports where a run's artifacts landed.
type PipelineResult struct {
	Summary *Summary

	// OutputPath is the primary CSV file.
	OutputPath string

	// ReportPath is the failure report, empty when no objective failed.
	ReportPath string

	// SecondaryPath is the optional rendered export, empty when not
	// configured.
	SecondaryPath string
}

// RunPipeline executes the whole bulk flow: load the topic hierarchy,
// compute the distribution, seed the ledger when appending, dispatch the
// worker pool, and render the reports and exports. Configuration problems
// (missing hierarchy, zero objectives, unknown kind) fail before any
// dispatch; generation failures never do.
func RunPipeline(ctx context.Context, cfg *config.Config, deps PipelineDeps) (*PipelineResult, error) {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	kind, err := domain.ParseKind(cfg.Bulk.QuestionType)
	if err != nil {
		return nil, err
	}

	topics, err := hierarchy.Load(cfg.Bulk.TopicFile)
	if err != nil {
		return nil, err
	}

	keys, dist, err := hierarchy.Build(topics, hierarchy.Options{
		TotalQuestions: cfg.Bulk.TotalQuestions,
		PerObjective:   cfg.Bulk.QuestionsPerObjective,
		MinBatchSize:   cfg.Bulk.MinBatchSize,
	})
	if err != nil {
		return nil, err
	}

	log.Info("starting bulk generation",
		"objectives", len(keys),
		"total_target", dist.Total(),
		"workers", cfg.Bulk.MaxWorkers,
		"question_type", kind)

	// When appending across runs, everything already in the output file
	// counts as seen.
	if cfg.Output.Append {
		texts, err := export.ReadQuestionTexts(cfg.Output.Path)
		if err != nil {
			return nil, err
		}
		for _, text := range texts {
			if _, err := deps.Ledger.Add(ctx, text); err != nil {
				return nil, fmt.Errorf("failed to seed ledger: %w", err)
			}
		}
		if len(texts) > 0 {
			log.Info("seeded deduplication ledger from existing output",
				"texts", len(texts))
		}
	}

	sink, err := export.NewCSVSink(cfg.Output.Path, kind, cfg.Output.Append)
	if err != nil {
		return nil, err
	}

	controller := NewController(deps.Generator, deps.Validator, deps.Ledger, ControllerConfig{
		Kind:               kind,
		Difficulty:         cfg.Bulk.Difficulty,
		CustomInstructions: cfg.Bulk.CustomInstructions,
		MaxAttempts:        cfg.Bulk.MaxRetries,
	})

	sinks := append([]Sink{sink}, deps.ExtraSinks...)
	orchestrator := NewOrchestrator(controller, sinks, OrchestratorConfig{
		Workers: cfg.Bulk.MaxWorkers,
	}, log)

	summary := orchestrator.Run(ctx, keys, dist)

	if err := sink.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize output file: %w", err)
	}

	result := &PipelineResult{
		Summary:    summary,
		OutputPath: cfg.Output.Path,
	}

	if !summary.Report.Empty() && cfg.Output.ReportPath != "" {
		if err := summary.Report.Write(cfg.Output.ReportPath); err != nil {
			return nil, err
		}
		result.ReportPath = cfg.Output.ReportPath
		log.Warn("failure report written",
			"path", result.ReportPath,
			"failed_objectives", len(summary.Report.Objectives))
	}

	if cfg.Output.SecondaryFormat != "" {
		path, err := writeSecondary(cfg.Output.SecondaryFormat, cfg.Output.Path, kind, summary.Questions)
		if err != nil {
			return nil, err
		}
		result.SecondaryPath = path
		log.Info("secondary export written", "path", path)
	}

	return result, nil
}

// writeSecondary renders the aggregate next to the primary output file.
func writeSecondary(format, primaryPath string, kind domain.QuestionKind, questions []*domain.Question) (string, error) {
	base := strings.TrimSuffix(primaryPath, filepath.Ext(primaryPath))
	path := base + "." + format

	switch format {
	case "json":
		return path, export.WriteJSON(path, questions)
	case "pdf":
		return path, export.WritePDF(path, questions)
	case "xlsx":
		return path, export.WriteXLSX(path, kind, questions)
	default:
		return "", fmt.Errorf("unsupported secondary format %q", format)
	}
}
