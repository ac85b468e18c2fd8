package bulk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge/internal/domain"
	"github.com/quizforge/quizforge/internal/generation"
	"github.com/quizforge/quizforge/internal/ledger"
	"github.com/quizforge/quizforge/internal/schema"
)

// generatorFunc adapts a function to the generation.Generator interface.
type generatorFunc func(ctx context.Context, req generation.Request) ([]generation.Candidate, error)

func (f generatorFunc) GenerateBatch(ctx context.Context, req generation.Request) ([]generation.Candidate, error) {
	return f(ctx, req)
}

// mcqCandidate builds a valid multiple-choice candidate with the given text.
func mcqCandidate(text string) generation.Candidate {
	raw := fmt.Sprintf(`{"question": %q, "answer": "A", "options": ["A", "B", "C", "D"]}`, text)
	return generation.Candidate{Raw: json.RawMessage(raw)}
}

func testKey() domain.ObjectiveKey {
	return domain.ObjectiveKey{Topic: "T", Subtopic: "S", Objective: "O"}
}

func newTestController(t *testing.T, gen generation.Generator, maxAttempts int) (*Controller, *ledger.Memory) {
	t.Helper()
	validator, err := schema.NewValidator()
	require.NoError(t, err)
	dedup := ledger.NewMemory()
	return NewController(gen, validator, dedup, ControllerConfig{
		Kind:        domain.KindMultipleChoice,
		MaxAttempts: maxAttempts,
	}), dedup
}

func TestControllerMeetsTargetFirstAttempt(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, req generation.Request) ([]generation.Candidate, error) {
		cands := make([]generation.Candidate, req.Count)
		for i := range cands {
			cands[i] = mcqCandidate(fmt.Sprintf("Unique question %d?", i))
		}
		return cands, nil
	})

	c, _ := newTestController(t, gen, 3)
	res := c.Run(context.Background(), testKey(), 3, nil)

	assert.Len(t, res.Questions, 3)
	assert.Equal(t, 0, res.Duplicates)
	require.Len(t, res.Record.Attempts, 1)
	assert.Equal(t, domain.AttemptStatusSuccess, res.Record.Attempts[0].Status)
	assert.False(t, res.Record.Failed())
}

func TestControllerNeverExceedsTarget(t *testing.T) {
	// The model over-delivers: five candidates against a target of two.
	gen := generatorFunc(func(context.Context, generation.Request) ([]generation.Candidate, error) {
		var cands []generation.Candidate
		for i := 0; i < 5; i++ {
			cands = append(cands, mcqCandidate(fmt.Sprintf("Overflow %d?", i)))
		}
		return cands, nil
	})

	c, _ := newTestController(t, gen, 3)
	res := c.Run(context.Background(), testKey(), 2, nil)

	assert.Len(t, res.Questions, 2)
}

func TestControllerDuplicatesOnlyTriggersUniquenessRetry(t *testing.T) {
	// First batch: three records we have already seen. Second batch: two
	// unique ones. Target two, met within two attempts.
	var mu sync.Mutex
	var requests []generation.Request

	gen := generatorFunc(func(_ context.Context, req generation.Request) ([]generation.Candidate, error) {
		mu.Lock()
		defer mu.Unlock()
		requests = append(requests, req)
		if len(requests) == 1 {
			return []generation.Candidate{
				mcqCandidate("Already seen one?"),
				mcqCandidate("Already seen two?"),
				mcqCandidate("Already seen three?"),
			}, nil
		}
		return []generation.Candidate{
			mcqCandidate("Fresh one?"),
			mcqCandidate("Fresh two?"),
		}, nil
	})

	c, dedup := newTestController(t, gen, 3)
	dedup.Seed([]string{"Already seen one?", "Already seen two?", "Already seen three?"})

	res := c.Run(context.Background(), testKey(), 2, nil)

	require.Len(t, res.Questions, 2)
	assert.Equal(t, "Fresh one?", res.Questions[0].Text)
	assert.Equal(t, "Fresh two?", res.Questions[1].Text)
	assert.Equal(t, 3, res.Duplicates)

	require.Len(t, requests, 2)
	assert.Empty(t, requests[0].CustomInstructions)
	assert.Contains(t, requests[1].CustomInstructions, "previously-unseen")

	require.Len(t, res.Record.Attempts, 2)
	assert.Equal(t, domain.AttemptStatusDuplicatesOnly, res.Record.Attempts[0].Status)
	assert.Equal(t, domain.AttemptStatusSuccess, res.Record.Attempts[1].Status)
}

func TestControllerGeneratorErrorsExhaustAttempts(t *testing.T) {
	calls := 0
	gen := generatorFunc(func(context.Context, generation.Request) ([]generation.Candidate, error) {
		calls++
		return nil, errors.New("upstream exploded")
	})

	c, _ := newTestController(t, gen, 3)
	res := c.Run(context.Background(), testKey(), 5, nil)

	assert.Empty(t, res.Questions)
	assert.Equal(t, 3, calls)
	require.Len(t, res.Record.Attempts, 3)
	for _, a := range res.Record.Attempts {
		assert.Equal(t, domain.AttemptStatusFailed, a.Status)
		assert.Contains(t, a.Error, "upstream exploded")
	}
	assert.True(t, res.Record.Failed())
}

func TestControllerDiscardsInvalidCandidatesIndividually(t *testing.T) {
	gen := generatorFunc(func(context.Context, generation.Request) ([]generation.Candidate, error) {
		return []generation.Candidate{
			{Raw: json.RawMessage(`{"question": "No options?", "answer": "A"}`)},
			mcqCandidate("Valid one?"),
			mcqCandidate("Valid two?"),
		}, nil
	})

	c, _ := newTestController(t, gen, 1)
	res := c.Run(context.Background(), testKey(), 2, nil)

	require.Len(t, res.Questions, 2)
	assert.Equal(t, "Valid one?", res.Questions[0].Text)
}

func TestControllerAccumulatesAcrossAttempts(t *testing.T) {
	call := 0
	gen := generatorFunc(func(_ context.Context, req generation.Request) ([]generation.Candidate, error) {
		call++
		if call == 1 {
			return nil, errors.New("transient")
		}
		cands := make([]generation.Candidate, req.Count)
		for i := range cands {
			cands[i] = mcqCandidate(fmt.Sprintf("Attempt %d question %d?", call, i))
		}
		return cands, nil
	})

	c, _ := newTestController(t, gen, 4)
	res := c.Run(context.Background(), testKey(), 5, nil)

	// Failed attempt, then 3 + 2 across the next two.
	assert.Len(t, res.Questions, 5)
	require.Len(t, res.Record.Attempts, 3)
	assert.Equal(t, domain.AttemptStatusFailed, res.Record.Attempts[0].Status)
	// The failed attempt keeps the objective in the report.
	assert.True(t, res.Record.Failed())
}

func TestControllerZeroTarget(t *testing.T) {
	gen := generatorFunc(func(context.Context, generation.Request) ([]generation.Candidate, error) {
		t.Fatal("generator must not be called for a zero target")
		return nil, nil
	})

	c, _ := newTestController(t, gen, 3)
	res := c.Run(context.Background(), testKey(), 0, nil)

	assert.Empty(t, res.Questions)
	assert.Empty(t, res.Record.Attempts)
	assert.False(t, res.Record.Failed())
}

func TestControllerEmitsAcceptedRecordsImmediately(t *testing.T) {
	gen := generatorFunc(func(_ context.Context, req generation.Request) ([]generation.Candidate, error) {
		cands := make([]generation.Candidate, req.Count)
		for i := range cands {
			cands[i] = mcqCandidate(fmt.Sprintf("Emitted %d?", i))
		}
		return cands, nil
	})

	var emitted []*domain.Question
	c, _ := newTestController(t, gen, 1)
	res := c.Run(context.Background(), testKey(), 3, func(q *domain.Question) {
		emitted = append(emitted, q)
	})

	assert.Equal(t, res.Questions, emitted)
}

func TestControllerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := generatorFunc(func(context.Context, generation.Request) ([]generation.Candidate, error) {
		t.Fatal("generator must not be called after cancellation")
		return nil, nil
	})

	c, _ := newTestController(t, gen, 3)
	res := c.Run(ctx, testKey(), 3, nil)

	assert.Empty(t, res.Questions)
}
