package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// QuestionKind identifies the shape of a generated question. The set is
// closed: each kind maps to a fixed record shape, JSON schema, and prompt
// fragment resolved once at configuration time.
type QuestionKind string

// Supported question kinds.
const (
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindShortAnswer    QuestionKind = "short_answer"
	KindTrueFalse      QuestionKind = "true_false"
	KindFillInBlank    QuestionKind = "fill_in_blank"
)

// ParseKind converts a configuration string into a QuestionKind.
// Returns ErrUnknownKind for anything outside the closed set.
func ParseKind(s string) (QuestionKind, error) {
	switch QuestionKind(s) {
	case KindMultipleChoice, KindShortAnswer, KindTrueFalse, KindFillInBlank:
		return QuestionKind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Kinds returns all supported question kinds in a stable order.
func Kinds() []QuestionKind {
	return []QuestionKind{KindMultipleChoice, KindShortAnswer, KindTrueFalse, KindFillInBlank}
}

// QuestionMetadata records where in the topic hierarchy a question came from.
type QuestionMetadata struct {
	Topic     string `json:"topic"`
	Subtopic  string `json:"subtopic"`
	Objective string `json:"learning_objective"`
}

// Question is a schema-validated generated question. All kinds share the
// question/answer/explanation core; kind-specific fields are populated only
// for the matching kind. A Question is never mutated after validation.
type Question struct {
	ID          uuid.UUID        `json:"id"`
	Kind        QuestionKind     `json:"kind"`
	Text        string           `json:"question"`
	Answer      string           `json:"answer"`
	Explanation string           `json:"explanation,omitempty"`
	Options     []string         `json:"options,omitempty"`
	Keywords    []string         `json:"keywords,omitempty"`
	BlankWord   string           `json:"blank_word,omitempty"`
	Difficulty  string           `json:"difficulty,omitempty"`
	Metadata    QuestionMetadata `json:"metadata"`
	CreatedAt   time.Time        `json:"created_at"`
}

// candidateQuestion is the wire shape produced by the completion service.
// The answer is left untyped because true/false questions answer with a
// JSON boolean while every other kind answers with a string.
type candidateQuestion struct {
	Question    string   `json:"question"`
	Answer      any      `json:"answer"`
	Explanation string   `json:"explanation"`
	Options     []string `json:"options"`
	Keywords    []string `json:"keywords"`
	BlankWord   string   `json:"blank_word"`
	Difficulty  string   `json:"difficulty"`
}

// DecodeQuestion parses a raw JSON candidate into a validated Question of
// the given kind. The candidate is expected to have already passed schema
// validation; decoding still re-checks the core invariants so a Question
// can never exist in an invalid state.
func DecodeQuestion(kind QuestionKind, raw json.RawMessage, meta QuestionMetadata) (*Question, error) {
	var cand candidateQuestion
	if err := json.Unmarshal(raw, &cand); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	answer, err := answerString(kind, cand.Answer)
	if err != nil {
		return nil, err
	}

	q := &Question{
		ID:          uuid.New(),
		Kind:        kind,
		Text:        cand.Question,
		Answer:      answer,
		Explanation: cand.Explanation,
		Difficulty:  cand.Difficulty,
		Metadata:    meta,
		CreatedAt:   time.Now().UTC(),
	}

	switch kind {
	case KindMultipleChoice:
		q.Options = cand.Options
	case KindShortAnswer:
		q.Keywords = cand.Keywords
	case KindFillInBlank:
		q.BlankWord = cand.BlankWord
		if q.BlankWord == "" {
			q.BlankWord = answer
		}
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// answerString normalizes the untyped answer field into a string.
func answerString(kind QuestionKind, v any) (string, error) {
	switch a := v.(type) {
	case string:
		return a, nil
	case bool:
		if kind != KindTrueFalse {
			return "", fmt.Errorf("%w: boolean answer on %s question", ErrInvalidFormat, kind)
		}
		return strconv.FormatBool(a), nil
	case float64:
		// Numeric answers show up for math-flavored topics.
		return strconv.FormatFloat(a, 'f', -1, 64), nil
	case nil:
		return "", ErrAnswerEmpty
	default:
		return "", fmt.Errorf("%w: unsupported answer type %T", ErrInvalidFormat, v)
	}
}

// Validate checks the Question's invariants.
// Returns a sentinel error for the first violated invariant.
func (q *Question) Validate() error {
	if _, err := ParseKind(string(q.Kind)); err != nil {
		return err
	}

	if q.Text == "" {
		return ErrQuestionTextEmpty
	}

	if q.Answer == "" {
		return ErrAnswerEmpty
	}

	if q.Kind == KindMultipleChoice && len(q.Options) < 2 {
		return ErrTooFewOptions
	}

	return nil
}
