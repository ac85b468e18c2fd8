package bulk

import (
	"context"
	"log/slog"
	"sync"

	"github.com/quizforge/quizforge/internal/domain"
	"github.com/quizforge/quizforge/internal/hierarchy"
	"github.com/quizforge/quizforge/internal/platform/logger"
)

// Sink receives accepted questions as they are generated. Implementations
// are called from a single writer goroutine, never concurrently.
type Sink interface {
	Append(ctx context.Context, q *domain.Question) error
}

// OrchestratorConfig holds worker-pool sizing for a run.
type OrchestratorConfig struct {
	// Workers bounds concurrent objectives in flight.
	// If zero or negative, defaults to 1.
	Workers int

	// WriteBuffer is the capacity of the channel feeding the writer
	// goroutine. If zero, a small default applies.
	WriteBuffer int
}

// Orchestrator dispatches objectives to a bounded worker pool and funnels
// accepted questions through one writer goroutine into the sinks. The
// sinks and the deduplication ledger are the only cross-worker shared
// state; the writer serializes the former, the ledger locks the latter.
type Orchestrator struct {
	controller *Controller
	sinks      []Sink
	cfg        OrchestratorConfig
	logger     *slog.Logger
}

// NewOrchestrator builds an orchestrator around a retry controller and the
// output sinks.
func NewOrchestrator(controller *Controller, sinks []Sink, cfg OrchestratorConfig, log *slog.Logger) *Orchestrator {
	if cfg.Workers <= 0 {
		if log != nil {
			log.Warn("invalid worker count specified, using default",
				"specified_count", cfg.Workers,
				"default_count", 1)
		}
		cfg.Workers = 1
	}
	if cfg.WriteBuffer <= 0 {
		cfg.WriteBuffer = 64
	}
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		controller: controller,
		sinks:      sinks,
		cfg:        cfg,
		logger:     log,
	}
}

// Summary aggregates a whole run.
type Summary struct {
	// Questions holds every accepted question, in arrival order.
	Questions []*domain.Question

	// TotalGenerated is the number of accepted questions; it always
	// equals len(Questions).
	TotalGenerated int

	// TotalTarget is the sum of all objective targets.
	TotalTarget int

	// Duplicates counts discarded duplicate candidates across the run.
	Duplicates int

	// FailedObjectives counts objectives that produced zero questions
	// against a nonzero target.
	FailedObjectives int

	// PartialObjectives counts objectives that produced some questions
	// but fewer than their target.
	PartialObjectives int

	// Report collects the attempt trails of objectives with failures.
	Report Report
}

// job is one unit of pool work.
type job struct {
	key    domain.ObjectiveKey
	target int
}

// Run executes every objective in keys against its target in dist,
// with bounded concurrency. It always returns a summary; per-objective
// failures are aggregated, not propagated. Cancelling the context stops
// dispatch and lets in-flight objectives wind down.
func (o *Orchestrator) Run(ctx context.Context, keys []domain.ObjectiveKey, dist hierarchy.Distribution) *Summary {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	writes := make(chan *domain.Question, o.cfg.WriteBuffer)
	writerDone := make(chan struct{})

	var written []*domain.Question
	go func() {
		defer close(writerDone)
		for q := range writes {
			written = append(written, q)
			for _, sink := range o.sinks {
				if err := sink.Append(ctx, q); err != nil {
					o.logger.Error("failed to persist question",
						"question_id", q.ID,
						"error", err)
				}
			}
		}
	}()

	jobs := make(chan job)
	results := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < o.cfg.Workers; i++ {
		wg.Add(1)
		go o.worker(ctx, i, jobs, results, writes, &wg)
	}

	go func() {
		defer close(jobs)
		for _, k := range keys {
			select {
			case jobs <- job{key: k, target: dist[k]}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	summary := &Summary{
		TotalTarget: dist.Total(),
		Report:      NewReport(),
	}

	for res := range results {
		summary.Duplicates += res.Duplicates

		switch {
		case res.Target > 0 && len(res.Questions) == 0:
			summary.FailedObjectives++
		case len(res.Questions) < res.Target:
			summary.PartialObjectives++
		}

		if res.Record != nil && res.Record.Failed() {
			summary.Report.Add(res.Record)
		}
	}

	// All workers are done; nothing can write anymore. The writer is the
	// source of truth for the accepted count: a cancelled context can drop
	// a question between acceptance and the write channel, so counting the
	// per-objective results would overstate it.
	close(writes)
	<-writerDone

	summary.Questions = written
	summary.TotalGenerated = len(written)

	o.logger.Info("bulk generation finished",
		"objectives", len(keys),
		"target", summary.TotalTarget,
		"generated", summary.TotalGenerated,
		"duplicates", summary.Duplicates,
		"failed_objectives", summary.FailedObjectives,
		"partial_objectives", summary.PartialObjectives)

	return summary
}

// worker consumes jobs until the queue closes or the context is cancelled.
// Each job runs one objective's retry loop to completion before the worker
// takes the next one.
func (o *Orchestrator) worker(
	ctx context.Context,
	id int,
	jobs <-chan job,
	results chan<- Result,
	writes chan<- *domain.Question,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	o.logger.Debug("starting worker", "worker_id", id)

	for {
		select {
		case <-ctx.Done():
			o.logger.Debug("stopping worker", "worker_id", id)
			return

		case j, ok := <-jobs:
			if !ok {
				o.logger.Debug("job queue drained, stopping worker", "worker_id", id)
				return
			}

			workerLog := o.logger.With("worker_id", id)
			jobCtx := logger.WithLogger(ctx, workerLog)

			res := o.controller.Run(jobCtx, j.key, j.target, func(q *domain.Question) {
				select {
				case writes <- q:
				case <-ctx.Done():
				}
			})

			select {
			case results <- res:
			case <-ctx.Done():
				return
			}
		}
	}
}
