package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/domain"
)

// DBTX abstracts the database access layer. It is implemented by both
// *sql.DB and *sql.Tx, so the store works inside or outside a
// transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// QuestionStore persists generated questions in PostgreSQL. It satisfies
// the bulk pipeline's sink contract, so every accepted question can be
// stored as it arrives.
type QuestionStore struct {
	db     DBTX
	logger *slog.Logger
}

// NewQuestionStore creates a PostgreSQL-backed question store. The
// database handle is initialized and owned by the caller. If logger is
// nil, the default logger is used.
func NewQuestionStore(db DBTX, logger *slog.Logger) *QuestionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_store")),
	}
}

// Append stores one question. A question whose text is already stored
// returns ErrDuplicate; the deduplication ledger normally prevents that
// from happening within a run.
func (s *QuestionStore) Append(ctx context.Context, q *domain.Question) error {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	keywords, err := json.Marshal(q.Keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}

	query := `
		INSERT INTO questions
			(id, kind, question_text, answer, explanation, options,
			 keywords, blank_word, difficulty, topic, subtopic,
			 learning_objective, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = s.db.ExecContext(ctx, query,
		q.ID,
		string(q.Kind),
		q.Text,
		q.Answer,
		q.Explanation,
		options,
		keywords,
		q.BlankWord,
		q.Difficulty,
		q.Metadata.Topic,
		q.Metadata.Subtopic,
		q.Metadata.Objective,
		q.CreatedAt,
	)
	if err != nil {
		mapped := mapError(err)
		s.logger.ErrorContext(ctx, "failed to insert question",
			"question_id", q.ID,
			"error", mapped)
		return mapped
	}

	return nil
}

// GetByID retrieves a stored question. Returns ErrNotFound if no row
// matches.
func (s *QuestionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	query := `
		SELECT id, kind, question_text, answer, explanation, options,
		       keywords, blank_word, difficulty, topic, subtopic,
		       learning_objective, created_at
		FROM questions
		WHERE id = $1`

	return s.scanQuestion(s.db.QueryRowContext(ctx, query, id))
}

// ListByObjective retrieves every stored question for one objective, in
// insertion order.
func (s *QuestionStore) ListByObjective(ctx context.Context, key domain.ObjectiveKey) ([]*domain.Question, error) {
	query := `
		SELECT id, kind, question_text, answer, explanation, options,
		       keywords, blank_word, difficulty, topic, subtopic,
		       learning_objective, created_at
		FROM questions
		WHERE topic = $1 AND subtopic = $2 AND learning_objective = $3
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, key.Topic, key.Subtopic, key.Objective)
	if err != nil {
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.WarnContext(ctx, "failed to close rows", "error", err)
		}
	}()

	var questions []*domain.Question
	for rows.Next() {
		q, err := s.scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return questions, nil
}

// Count returns the number of stored questions.
func (s *QuestionStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n)
	if err != nil {
		return 0, mapError(err)
	}
	return n, nil
}

// QuestionTexts returns every stored question text, for seeding the
// deduplication ledger across runs.
func (s *QuestionStore) QuestionTexts(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT question_text FROM questions`)
	if err != nil {
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.WarnContext(ctx, "failed to close rows", "error", err)
		}
	}()

	var texts []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, mapError(err)
		}
		texts = append(texts, text)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return texts, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (s *QuestionStore) scanQuestion(row rowScanner) (*domain.Question, error) {
	var (
		q        domain.Question
		kind     string
		options  []byte
		keywords []byte
	)

	err := row.Scan(
		&q.ID,
		&kind,
		&q.Text,
		&q.Answer,
		&q.Explanation,
		&options,
		&keywords,
		&q.BlankWord,
		&q.Difficulty,
		&q.Metadata.Topic,
		&q.Metadata.Subtopic,
		&q.Metadata.Objective,
		&q.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	q.Kind = domain.QuestionKind(kind)
	if len(options) > 0 {
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, fmt.Errorf("failed to decode options: %w", err)
		}
	}
	if len(keywords) > 0 {
		if err := json.Unmarshal(keywords, &q.Keywords); err != nil {
			return nil, fmt.Errorf("failed to decode keywords: %w", err)
		}
	}

	return &q, nil
}
