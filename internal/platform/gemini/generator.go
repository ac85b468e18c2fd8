package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/quizforge/quizforge/internal/domain"
	"github.com/quizforge/quizforge/internal/generation"
)

// defaultPromptTemplate is used when no override template is configured.
// The placeholders match promptData's field names.
const defaultPromptTemplate = `Generate {{.Num}} {{.QuestionType}} question(s) for the given learning objective.

Topic: {{.Topic}}
Subtopic: {{.Subtopic}}
Learning Objective: {{.Objective}}
{{- if .Difficulty}}
Difficulty: {{.Difficulty}}
{{- end}}

For each question, provide:
1. The question
2. The correct answer
3. An explanation (optional)
{{.TypeInstruction}}

Ensure that no two questions follow the same pattern or structure. Avoid
generating variations of the same question; vary the operations, contexts,
and problem structures.
{{- if .CustomInstructions}}

Additional Instructions:
{{.CustomInstructions}}
{{- end}}

The response MUST be a single JSON object in the following format:
{{.FormatInstructions}}`

// promptData is the input to the prompt template.
type promptData struct {
	Num                int
	QuestionType       string
	Topic              string
	Subtopic           string
	Objective          string
	Difficulty         string
	CustomInstructions string
	TypeInstruction    string
	FormatInstructions string
}

// kindSpec carries the per-kind prompt fragments. The registry below is the
// closed mapping from question kind to prompt shape, resolved once at
// construction rather than per call.
type kindSpec struct {
	label           string
	typeInstruction string
	format          string
}

var kindSpecs = map[domain.QuestionKind]kindSpec{
	domain.KindMultipleChoice: {
		label:           "multiple choice",
		typeInstruction: "4. A list of options (including the correct answer)",
		format: `{"questions": [{"question": "...", "answer": "...", "explanation": "...", "options": ["...", "...", "...", "..."]}]}`,
	},
	domain.KindShortAnswer: {
		label:           "short answer",
		typeInstruction: "4. A list of relevant keywords",
		format: `{"questions": [{"question": "...", "answer": "...", "explanation": "...", "keywords": ["...", "..."]}]}`,
	},
	domain.KindTrueFalse: {
		label:           "true/false",
		typeInstruction: "4. The correct answer as a boolean (true/false)",
		format: `{"questions": [{"question": "...", "answer": true, "explanation": "..."}]}`,
	},
	domain.KindFillInBlank: {
		label:           "fill in the blank",
		typeInstruction: "4. The word or phrase to be filled in the blank",
		format: `{"questions": [{"question": "...", "answer": "...", "explanation": "...", "blank_word": "..."}]}`,
	},
}

// Generator implements generation.Generator on top of any completion
// service: it renders a deterministic prompt for the request, makes one
// completion call, and parses the response into unvalidated candidates.
type Generator struct {
	logger *slog.Logger
	svc    generation.CompletionService
	tmpl   *template.Template
}

// NewGenerator builds a Generator. templateText overrides the built-in
// prompt template when non-empty; it must reference the promptData fields.
func NewGenerator(logger *slog.Logger, svc generation.CompletionService, templateText string) (*Generator, error) {
	if logger == nil {
		return nil, fmt.Errorf("%w: logger cannot be nil", generation.ErrInvalidConfig)
	}
	if svc == nil {
		return nil, fmt.Errorf("%w: completion service cannot be nil", generation.ErrInvalidConfig)
	}

	if templateText == "" {
		templateText = defaultPromptTemplate
	}
	tmpl, err := template.New("question_batch").Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{logger: logger, svc: svc, tmpl: tmpl}, nil
}

// GenerateBatch requests one batch of candidate questions. The batch size
// is capped at generation.MaxBatchSize.
func (g *Generator) GenerateBatch(ctx context.Context, req generation.Request) ([]generation.Candidate, error) {
	if req.Count <= 0 {
		return nil, nil
	}
	if req.Count > generation.MaxBatchSize {
		req.Count = generation.MaxBatchSize
	}

	prompt, err := g.buildPrompt(req)
	if err != nil {
		return nil, err
	}

	g.logger.DebugContext(ctx, "requesting question batch",
		"objective", req.Key.String(),
		"count", req.Count,
		"kind", req.Kind)

	text, err := g.svc.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return parseCandidates(text)
}

// buildPrompt renders the prompt template for the request. The output is
// deterministic for a given request.
func (g *Generator) buildPrompt(req generation.Request) (string, error) {
	spec, ok := kindSpecs[req.Kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownKind, req.Kind)
	}

	data := promptData{
		Num:                req.Count,
		QuestionType:       spec.label,
		Topic:              req.Key.Topic,
		Subtopic:           req.Key.Subtopic,
		Objective:          req.Key.Objective,
		Difficulty:         req.Difficulty,
		CustomInstructions: req.CustomInstructions,
		TypeInstruction:    spec.typeInstruction,
		FormatInstructions: spec.format,
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}

// batchEnvelope is the expected top-level response shape.
type batchEnvelope struct {
	Questions []json.RawMessage `json:"questions"`
}

// parseCandidates extracts the candidate list from the completion
// service's response text. Both the documented envelope and a bare JSON
// array are accepted; anything else is a malformed response.
func parseCandidates(text string) ([]generation.Candidate, error) {
	body := generation.StripCodeFence(text)

	var envelope batchEnvelope
	if err := json.Unmarshal([]byte(body), &envelope); err == nil && envelope.Questions != nil {
		return wrapCandidates(envelope.Questions), nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal([]byte(body), &list); err == nil {
		return wrapCandidates(list), nil
	}

	return nil, fmt.Errorf("%w: failed to parse JSON question list", generation.ErrInvalidResponse)
}

func wrapCandidates(raws []json.RawMessage) []generation.Candidate {
	candidates := make([]generation.Candidate, 0, len(raws))
	for _, raw := range raws {
		candidates = append(candidates, generation.Candidate{Raw: raw})
	}
	return candidates
}
