// Package content generates structured teaching material beyond quiz
// questions: lesson plans, study guides, flashcard sets, and career
// connections. Each generator prompts the completion service for a JSON
// document and decodes it into a typed model.
package content
