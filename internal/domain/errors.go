package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when data is not in the expected format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrUnknownKind is returned when a question kind is not one of the
	// supported values.
	ErrUnknownKind = errors.New("unknown question kind")

	// ErrQuestionTextEmpty is returned when a question has no text.
	ErrQuestionTextEmpty = errors.New("question text cannot be empty")

	// ErrAnswerEmpty is returned when a question has no answer.
	ErrAnswerEmpty = errors.New("question answer cannot be empty")

	// ErrTooFewOptions is returned when a multiple-choice question has
	// fewer than two options.
	ErrTooFewOptions = errors.New("multiple-choice question needs at least two options")

	// ErrEmptyHierarchy is returned when a topic hierarchy contains no
	// topics at all.
	ErrEmptyHierarchy = errors.New("topic hierarchy contains no topics")
)
