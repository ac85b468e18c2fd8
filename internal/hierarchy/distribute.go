package hierarchy

import (
	"errors"

	"github.com/quizforge/quizforge/internal/domain"
)

// ErrNoObjectives is returned when a hierarchy flattens to zero learning
// objectives; there is nothing to dispatch.
var ErrNoObjectives = errors.New("topic hierarchy contains no learning objectives")

// Distribution maps each objective to its target question count.
// Built once before dispatch and read-only afterwards.
type Distribution map[domain.ObjectiveKey]int

// Total sums all targets.
func (d Distribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// Options controls how targets are assigned.
type Options struct {
	// TotalQuestions is split evenly across objectives when no explicit
	// counts apply.
	TotalQuestions int

	// PerObjective, when positive, gives every objective this count and
	// overrides everything else.
	PerObjective int

	// MinBatchSize is the floor for the even-split base count.
	MinBatchSize int
}

// Build flattens the hierarchy into ordered objective keys and computes
// each objective's target count.
//
// Precedence: a PerObjective override applies to every objective; else, if
// every objective in the hierarchy carries an explicit count, those counts
// are used verbatim (an explicit zero yields an objective with no target);
// else TotalQuestions is split evenly, with base = max(MinBatchSize,
// total/n) and the first total%n objectives (in hierarchy order) receiving
// base+1.
//
// A hierarchy where only some objectives carry counts falls back to the
// even split over all of them rather than silently dropping the
// unspecified ones from the denominator.
func Build(topics []domain.Topic, opts Options) ([]domain.ObjectiveKey, Distribution, error) {
	keys, counts := domain.Objectives(topics)
	if len(keys) == 0 {
		return nil, nil, ErrNoObjectives
	}

	dist := make(Distribution, len(keys))

	if opts.PerObjective > 0 {
		for _, k := range keys {
			dist[k] = opts.PerObjective
		}
		return keys, dist, nil
	}

	allExplicit := true
	for _, c := range counts {
		if c == nil || *c < 0 {
			allExplicit = false
			break
		}
	}
	if allExplicit {
		for i, k := range keys {
			dist[k] = *counts[i]
		}
		return keys, dist, nil
	}

	n := len(keys)
	base := opts.TotalQuestions / n
	if base < opts.MinBatchSize {
		base = opts.MinBatchSize
	}
	remainder := opts.TotalQuestions % n

	for i, k := range keys {
		target := base
		if i < remainder {
			target++
		}
		dist[k] = target
	}
	return keys, dist, nil
}
