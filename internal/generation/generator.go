// Package generation defines the boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
package generation

import (
	"context"
	"encoding/json"

	"github.com/quizforge/quizforge/internal/domain"
)

// MaxBatchSize caps how many records one batch request may ask for.
// Larger batches degrade the completion service's JSON compliance.
const MaxBatchSize = 3

// Request describes one batch of questions to generate for an objective.
type Request struct {
	Key  domain.ObjectiveKey
	Kind domain.QuestionKind

	// Count is the number of records requested, capped at MaxBatchSize
	// by implementations.
	Count int

	Difficulty string

	// CustomInstructions are appended verbatim to the prompt.
	CustomInstructions string
}

// Candidate is one unvalidated record parsed out of the completion
// service's response. Schema validation and deduplication happen later,
// in the retry controller.
type Candidate struct {
	Raw json.RawMessage
}

// CompletionService is the opaque text-completion collaborator: a fully
// formed prompt goes in, a single text blob comes out. No schema
// compliance is guaranteed; all of it is enforced locally.
type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator produces batches of candidate questions for one objective.
type Generator interface {
	// GenerateBatch builds a deterministic prompt from the request,
	// invokes the completion service once, and parses the response into
	// candidates. Malformed responses surface as ErrInvalidResponse.
	GenerateBatch(ctx context.Context, req Request) ([]Candidate, error)
}
