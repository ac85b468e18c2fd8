package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge/internal/domain"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator()
	require.NoError(t, err)
	return v
}

func TestValidateMultipleChoice(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{
			name:  "complete candidate",
			raw:   `{"question": "Q?", "answer": "A", "options": ["A", "B", "C"], "explanation": "because"}`,
			valid: true,
		},
		{
			name:  "missing options",
			raw:   `{"question": "Q?", "answer": "A"}`,
			valid: false,
		},
		{
			name:  "single option",
			raw:   `{"question": "Q?", "answer": "A", "options": ["A"]}`,
			valid: false,
		},
		{
			name:  "empty question",
			raw:   `{"question": "", "answer": "A", "options": ["A", "B"]}`,
			valid: false,
		},
		{
			name:  "missing answer",
			raw:   `{"question": "Q?", "options": ["A", "B"]}`,
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := v.Validate(domain.KindMultipleChoice, json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				assert.NotEmpty(t, res.Issues)
			}
		})
	}
}

func TestValidateTrueFalseRequiresBooleanAnswer(t *testing.T) {
	v := newValidator(t)

	res, err := v.Validate(domain.KindTrueFalse, json.RawMessage(`{"question": "Q?", "answer": true}`))
	require.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = v.Validate(domain.KindTrueFalse, json.RawMessage(`{"question": "Q?", "answer": "true"}`))
	require.NoError(t, err)
	assert.False(t, res.Valid)
}

func TestValidateShortAnswerKeywordsOptional(t *testing.T) {
	v := newValidator(t)

	res, err := v.Validate(domain.KindShortAnswer, json.RawMessage(`{"question": "Q?", "answer": "A"}`))
	require.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = v.Validate(
		domain.KindShortAnswer,
		json.RawMessage(`{"question": "Q?", "answer": "A", "keywords": ["k1", "k2"]}`),
	)
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestValidateMalformedJSONIsInvalidNotError(t *testing.T) {
	v := newValidator(t)

	res, err := v.Validate(domain.KindFillInBlank, json.RawMessage(`{"question": `))
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.Issues)
}

func TestValidateUnknownKind(t *testing.T) {
	v := newValidator(t)

	_, err := v.Validate(domain.QuestionKind("essay"), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}
