package gemini

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge/internal/domain"
	"github.com/quizforge/quizforge/internal/generation"
)

// stubCompletion returns a canned response and records the prompts it saw.
type stubCompletion struct {
	response string
	err      error
	prompts  []string
}

func (s *stubCompletion) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testRequest() generation.Request {
	return generation.Request{
		Key: domain.ObjectiveKey{
			Topic:     "Arithmetic",
			Subtopic:  "Fractions",
			Objective: "Add fractions with unlike denominators",
		},
		Kind:       domain.KindMultipleChoice,
		Count:      2,
		Difficulty: "medium",
	}
}

func TestBuildPromptEmbedsRequest(t *testing.T) {
	gen, err := NewGenerator(testLogger(), &stubCompletion{}, "")
	require.NoError(t, err)

	req := testRequest()
	req.CustomInstructions = "Use real-world scenarios."

	prompt, err := gen.buildPrompt(req)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Generate 2 multiple choice question(s)")
	assert.Contains(t, prompt, "Topic: Arithmetic")
	assert.Contains(t, prompt, "Subtopic: Fractions")
	assert.Contains(t, prompt, "Learning Objective: Add fractions with unlike denominators")
	assert.Contains(t, prompt, "Difficulty: medium")
	assert.Contains(t, prompt, "Use real-world scenarios.")
	assert.Contains(t, prompt, `"options"`)
}

func TestBuildPromptDeterministic(t *testing.T) {
	gen, err := NewGenerator(testLogger(), &stubCompletion{}, "")
	require.NoError(t, err)

	first, err := gen.buildPrompt(testRequest())
	require.NoError(t, err)
	second, err := gen.buildPrompt(testRequest())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildPromptOmitsEmptySections(t *testing.T) {
	gen, err := NewGenerator(testLogger(), &stubCompletion{}, "")
	require.NoError(t, err)

	req := testRequest()
	req.Difficulty = ""

	prompt, err := gen.buildPrompt(req)
	require.NoError(t, err)
	assert.NotContains(t, prompt, "Difficulty:")
	assert.NotContains(t, prompt, "Additional Instructions:")
}

func TestBuildPromptUnknownKind(t *testing.T) {
	gen, err := NewGenerator(testLogger(), &stubCompletion{}, "")
	require.NoError(t, err)

	req := testRequest()
	req.Kind = "essay"

	_, err = gen.buildPrompt(req)
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestGenerateBatchParsesEnvelope(t *testing.T) {
	stub := &stubCompletion{response: `{"questions": [
		{"question": "Q1?", "answer": "A1", "options": ["A1", "B1"]},
		{"question": "Q2?", "answer": "A2", "options": ["A2", "B2"]}
	]}`}

	gen, err := NewGenerator(testLogger(), stub, "")
	require.NoError(t, err)

	candidates, err := gen.GenerateBatch(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
	assert.JSONEq(t,
		`{"question": "Q1?", "answer": "A1", "options": ["A1", "B1"]}`,
		string(candidates[0].Raw))
}

// Re-running against a deterministic stub yields the same candidate set.
func TestGenerateBatchIdempotent(t *testing.T) {
	stub := &stubCompletion{response: `{"questions": [{"question": "Q?", "answer": "A", "options": ["A", "B"]}]}`}

	gen, err := NewGenerator(testLogger(), stub, "")
	require.NoError(t, err)

	first, err := gen.GenerateBatch(context.Background(), testRequest())
	require.NoError(t, err)
	second, err := gen.GenerateBatch(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Identical prompts on both calls.
	require.Len(t, stub.prompts, 2)
	assert.Equal(t, stub.prompts[0], stub.prompts[1])
}

func TestGenerateBatchAcceptsBareArrayAndFences(t *testing.T) {
	stub := &stubCompletion{response: "```json\n[{\"question\": \"Q?\", \"answer\": true}]\n```"}

	gen, err := NewGenerator(testLogger(), stub, "")
	require.NoError(t, err)

	req := testRequest()
	req.Kind = domain.KindTrueFalse

	candidates, err := gen.GenerateBatch(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}

func TestGenerateBatchMalformedResponse(t *testing.T) {
	stub := &stubCompletion{response: "Sorry, I can't help with that."}

	gen, err := NewGenerator(testLogger(), stub, "")
	require.NoError(t, err)

	_, err = gen.GenerateBatch(context.Background(), testRequest())
	assert.ErrorIs(t, err, generation.ErrInvalidResponse)
}

func TestGenerateBatchCapsCount(t *testing.T) {
	stub := &stubCompletion{response: `{"questions": []}`}

	gen, err := NewGenerator(testLogger(), stub, "")
	require.NoError(t, err)

	req := testRequest()
	req.Count = 50

	_, err = gen.GenerateBatch(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "Generate 3 ")
}

func TestGenerateBatchZeroCountSkipsCall(t *testing.T) {
	stub := &stubCompletion{}
	gen, err := NewGenerator(testLogger(), stub, "")
	require.NoError(t, err)

	req := testRequest()
	req.Count = 0

	candidates, err := gen.GenerateBatch(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, candidates)
	assert.Empty(t, stub.prompts)
}

func TestNewGeneratorRejectsBadTemplate(t *testing.T) {
	_, err := NewGenerator(testLogger(), &stubCompletion{}, "{{.Unclosed")
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestNewClientValidatesConfig(t *testing.T) {
	ctx := context.Background()

	_, err := NewClient(ctx, nil, configWithKey("k"))
	assert.Error(t, err)

	_, err = NewClient(ctx, testLogger(), configWithKey(""))
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}
