// Package export renders accepted questions into output files: the
// incrementally-written CSV primary output plus the optional JSON, PDF,
// and XLSX secondary exports.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/quizforge/quizforge/internal/domain"
)

// keywordSeparator joins list-valued keyword fields into one CSV cell.
const keywordSeparator = "; "

// Columns returns the CSV header for a question kind: the shared core,
// the kind-specific field, then the provenance columns.
func Columns(kind domain.QuestionKind) []string {
	cols := []string{"question", "answer", "explanation"}
	switch kind {
	case domain.KindMultipleChoice:
		cols = append(cols, "options")
	case domain.KindShortAnswer:
		cols = append(cols, "keywords")
	case domain.KindFillInBlank:
		cols = append(cols, "blank_word")
	}
	return append(cols, "difficulty", "topic", "subtopic", "learning_objective")
}

// CSVSink appends accepted questions to a CSV file as they arrive, so
// partial progress survives a crash. Appends are serialized by an internal
// mutex and flushed per row.
type CSVSink struct {
	mu      sync.Mutex
	file    *os.File
	writer  *csv.Writer
	kind    domain.QuestionKind
	columns []string
	path    string
}

// NewCSVSink opens (and initializes) the primary output file. With
// appendMode set, an existing file is appended to and its header kept;
// otherwise the file is truncated and a fresh header written. The file is
// created up front so concurrent appenders always find it in place.
func NewCSVSink(path string, kind domain.QuestionKind, appendMode bool) (*CSVSink, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file %s: %w", path, err)
	}

	s := &CSVSink{
		file:    file,
		writer:  csv.NewWriter(file),
		kind:    kind,
		columns: Columns(kind),
		path:    path,
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat output file %s: %w", path, err)
	}

	if info.Size() == 0 {
		if err := s.writer.Write(s.columns); err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to write CSV header: %w", err)
		}
		s.writer.Flush()
		if err := s.writer.Error(); err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to flush CSV header: %w", err)
		}
	}

	return s, nil
}

// Path returns the file the sink writes to.
func (s *CSVSink) Path() string {
	return s.path
}

// Append writes one question as a CSV row and flushes it to disk.
func (s *CSVSink) Append(_ context.Context, q *domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writer.Write(Row(s.kind, q)); err != nil {
		return fmt.Errorf("failed to write CSV row: %w", err)
	}
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV row: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (s *CSVSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writer.Flush()
	flushErr := s.writer.Error()
	closeErr := s.file.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// Row renders one question into CSV cells matching Columns(kind).
// Nested fields are JSON-encoded into their cell; keyword lists are
// joined with a separator instead.
func Row(kind domain.QuestionKind, q *domain.Question) []string {
	row := []string{q.Text, q.Answer, q.Explanation}
	switch kind {
	case domain.KindMultipleChoice:
		encoded, err := json.Marshal(q.Options)
		if err != nil {
			encoded = []byte("[]")
		}
		row = append(row, string(encoded))
	case domain.KindShortAnswer:
		row = append(row, strings.Join(q.Keywords, keywordSeparator))
	case domain.KindFillInBlank:
		row = append(row, q.BlankWord)
	}
	return append(row, q.Difficulty, q.Metadata.Topic, q.Metadata.Subtopic, q.Metadata.Objective)
}

// ReadQuestionTexts reads the question column of an existing output file,
// used to seed the deduplication ledger when appending across runs.
// A missing file yields no texts and no error.
func ReadQuestionTexts(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open output file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read output file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	col := -1
	for i, name := range records[0] {
		if name == "question" {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("output file %s has no question column", path)
	}

	texts := make([]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		if col < len(rec) && rec[col] != "" {
			texts = append(texts, rec[col])
		}
	}
	return texts, nil
}
