// Package schema validates parsed completion-service candidates against the
// JSON shape required for each question kind. Validation outcomes are
// ordinary result values, not errors: an invalid candidate is an expected,
// frequent condition that the retry controller counts and moves past.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/quizforge/quizforge/internal/domain"
)

// Result is the outcome of validating one candidate.
type Result struct {
	Valid bool
	// Issues lists the violated constraints when Valid is false.
	Issues []string
}

// Validator holds one compiled JSON schema per question kind. Schemas are
// compiled once at construction; per-candidate validation does no parsing
// of schema documents.
type Validator struct {
	schemas map[domain.QuestionKind]*gojsonschema.Schema
}

// NewValidator compiles the per-kind schemas.
func NewValidator() (*Validator, error) {
	schemas := make(map[domain.QuestionKind]*gojsonschema.Schema, len(kindSchemas))
	for kind, doc := range kindSchemas {
		s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s schema: %w", kind, err)
		}
		schemas[kind] = s
	}
	return &Validator{schemas: schemas}, nil
}

// Validate checks a raw candidate against the schema for the given kind.
// A candidate that is not even valid JSON is reported as invalid, not as
// an error; errors are reserved for unknown kinds.
func (v *Validator) Validate(kind domain.QuestionKind, raw json.RawMessage) (Result, error) {
	s, ok := v.schemas[kind]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}

	res, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return Result{Valid: false, Issues: []string{err.Error()}}, nil
	}

	if res.Valid() {
		return Result{Valid: true}, nil
	}

	issues := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		issues = append(issues, e.String())
	}
	return Result{Valid: false, Issues: issues}, nil
}

// kindSchemas maps each question kind to its JSON schema document. The
// common core (question text and answer) is required everywhere;
// kind-specific fields tighten the shape.
var kindSchemas = map[domain.QuestionKind]string{
	domain.KindMultipleChoice: `{
		"type": "object",
		"required": ["question", "answer", "options"],
		"properties": {
			"question": {"type": "string", "minLength": 1},
			"answer": {"type": "string", "minLength": 1},
			"explanation": {"type": "string"},
			"options": {
				"type": "array",
				"items": {"type": "string"},
				"minItems": 2
			},
			"difficulty": {"type": "string"}
		}
	}`,
	domain.KindShortAnswer: `{
		"type": "object",
		"required": ["question", "answer"],
		"properties": {
			"question": {"type": "string", "minLength": 1},
			"answer": {"type": ["string", "number"], "minLength": 1},
			"explanation": {"type": "string"},
			"keywords": {
				"type": "array",
				"items": {"type": "string"}
			},
			"difficulty": {"type": "string"}
		}
	}`,
	domain.KindTrueFalse: `{
		"type": "object",
		"required": ["question", "answer"],
		"properties": {
			"question": {"type": "string", "minLength": 1},
			"answer": {"type": "boolean"},
			"explanation": {"type": "string"},
			"difficulty": {"type": "string"}
		}
	}`,
	domain.KindFillInBlank: `{
		"type": "object",
		"required": ["question", "answer"],
		"properties": {
			"question": {"type": "string", "minLength": 1},
			"answer": {"type": ["string", "number"], "minLength": 1},
			"explanation": {"type": "string"},
			"blank_word": {"type": "string"},
			"difficulty": {"type": "string"}
		}
	}`,
}
