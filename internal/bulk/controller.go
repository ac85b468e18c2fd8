package bulk

import (
	"context"
	"log/slog"
	"time"

	"github.com/quizforge/quizforge/internal/domain"
	"github.com/quizforge/quizforge/internal/generation"
	"github.com/quizforge/quizforge/internal/ledger"
	"github.com/quizforge/quizforge/internal/platform/logger"
	"github.com/quizforge/quizforge/internal/schema"
)

// uniquenessInstruction is injected into the next attempt's custom
// instructions after a batch that yielded duplicates only.
const uniquenessInstruction = "Generate previously-unseen questions only. " +
	"Do not repeat or rephrase questions that may have been generated before; " +
	"produce entirely new questions with different patterns and contexts."

// ControllerConfig fixes the per-run generation parameters. The question
// kind is resolved here, once, not per call.
type ControllerConfig struct {
	Kind               domain.QuestionKind
	Difficulty         string
	CustomInstructions string

	// MaxAttempts bounds generation attempts per objective. Attempts
	// cover both failed batches and successful ones that still leave the
	// target unmet.
	MaxAttempts int
}

// Controller drives the retry loop for one objective at a time: request a
// batch, validate and deduplicate its candidates, accumulate partial
// successes toward the target, and retry within the attempt budget.
type Controller struct {
	generator generation.Generator
	validator *schema.Validator
	dedup     ledger.Ledger
	cfg       ControllerConfig
}

// NewController wires the retry controller's collaborators.
func NewController(gen generation.Generator, validator *schema.Validator, dedup ledger.Ledger, cfg ControllerConfig) *Controller {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	return &Controller{
		generator: gen,
		validator: validator,
		dedup:     dedup,
		cfg:       cfg,
	}
}

// Result is the outcome of one objective's generation work.
type Result struct {
	Key        domain.ObjectiveKey
	Target     int
	Questions  []*domain.Question
	Duplicates int

	// Record is the full attempt trail for the objective.
	Record *domain.FailureRecord
}

// Run generates questions for one objective until the target is met or the
// attempt budget is exhausted. Every accepted question is passed to accept
// (when non-nil) the moment it is accepted, so callers can persist partial
// progress immediately. Run never returns more questions than the target;
// it may return fewer on exhaustion.
//
// Generator errors are recorded as failed attempts and do not abort the
// objective; the loop continues until attempts run out or the context is
// cancelled.
func (c *Controller) Run(ctx context.Context, key domain.ObjectiveKey, target int, accept func(*domain.Question)) Result {
	log := logger.FromContext(ctx).With("objective", key.String(), "target", target)

	result := Result{
		Key:    key,
		Target: target,
		Record: &domain.FailureRecord{Key: key, Target: target},
	}

	meta := domain.QuestionMetadata{
		Topic:     key.Topic,
		Subtopic:  key.Subtopic,
		Objective: key.Objective,
	}

	remaining := target
	extraInstructions := ""

	for attempt := 1; remaining > 0 && attempt <= c.cfg.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			log.WarnContext(ctx, "objective cancelled", "attempt", attempt)
			break
		}

		requested := remaining
		if requested > generation.MaxBatchSize {
			requested = generation.MaxBatchSize
		}

		outcome := domain.AttemptOutcome{
			Timestamp: time.Now().UTC(),
			Requested: requested,
		}

		req := generation.Request{
			Key:                key,
			Kind:               c.cfg.Kind,
			Count:              requested,
			Difficulty:         c.cfg.Difficulty,
			CustomInstructions: joinInstructions(c.cfg.CustomInstructions, extraInstructions),
		}

		candidates, err := c.generator.GenerateBatch(ctx, req)
		if err != nil {
			log.ErrorContext(ctx, "batch generation failed",
				"attempt", attempt,
				"error", err)
			outcome.Status = domain.AttemptStatusFailed
			outcome.Error = err.Error()
			result.Record.Record(outcome)
			continue
		}

		accepted, duplicates := c.screen(ctx, log, candidates, meta, &remaining, &result, accept)
		outcome.Generated = accepted
		outcome.Duplicates = duplicates
		outcome.Status = attemptStatus(requested, accepted, duplicates)
		result.Record.Record(outcome)

		log.DebugContext(ctx, "attempt finished",
			"attempt", attempt,
			"accepted", accepted,
			"duplicates", duplicates,
			"remaining", remaining,
			"status", outcome.Status)

		// A batch of nothing but duplicates means the model is circling;
		// push it toward unseen content on the next attempt.
		if outcome.Status == domain.AttemptStatusDuplicatesOnly && remaining > 0 {
			extraInstructions = uniquenessInstruction
		}
	}

	result.Duplicates = result.Record.Duplicates
	return result
}

// screen validates, deduplicates, and accepts candidates until the batch
// is drained or the target is met. Returns accepted and duplicate counts.
func (c *Controller) screen(
	ctx context.Context,
	log *slog.Logger,
	candidates []generation.Candidate,
	meta domain.QuestionMetadata,
	remaining *int,
	result *Result,
	accept func(*domain.Question),
) (accepted, duplicates int) {
	for _, cand := range candidates {
		// Never exceed the objective's target, even if the model
		// returned more than asked for.
		if *remaining <= 0 {
			break
		}

		res, err := c.validator.Validate(c.cfg.Kind, cand.Raw)
		if err != nil {
			log.WarnContext(ctx, "candidate validation errored", "error", err)
			continue
		}
		if !res.Valid {
			log.WarnContext(ctx, "discarding invalid candidate", "issues", res.Issues)
			continue
		}

		q, err := domain.DecodeQuestion(c.cfg.Kind, cand.Raw, meta)
		if err != nil {
			log.WarnContext(ctx, "discarding undecodable candidate", "error", err)
			continue
		}

		added, err := c.dedup.Add(ctx, q.Text)
		if err != nil {
			// Ledger trouble: discard rather than risk emitting a
			// duplicate.
			log.WarnContext(ctx, "ledger check failed, discarding candidate", "error", err)
			continue
		}
		if !added {
			duplicates++
			continue
		}

		result.Questions = append(result.Questions, q)
		accepted++
		*remaining--
		if accept != nil {
			accept(q)
		}
	}
	return accepted, duplicates
}

// attemptStatus classifies one attempt.
func attemptStatus(requested, accepted, duplicates int) domain.AttemptStatus {
	switch {
	case accepted >= requested:
		return domain.AttemptStatusSuccess
	case accepted > 0:
		return domain.AttemptStatusPartial
	case duplicates > 0:
		return domain.AttemptStatusDuplicatesOnly
	default:
		return domain.AttemptStatusFailed
	}
}

func joinInstructions(base, extra string) string {
	switch {
	case base == "":
		return extra
	case extra == "":
		return base
	default:
		return base + "\n" + extra
	}
}
