package bulk

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/quizforge/quizforge/internal/domain"
)

// Report maps failing objectives to their attempt trails. It is written as
// a JSON side-file only when at least one objective recorded a failure.
type Report struct {
	GeneratedAt time.Time                        `json:"generated_at"`
	Objectives  map[string]*domain.FailureRecord `json:"objectives"`
}

// NewReport returns an empty report.
func NewReport() Report {
	return Report{
		GeneratedAt: time.Now().UTC(),
		Objectives:  make(map[string]*domain.FailureRecord),
	}
}

// Add records one objective's failure trail.
func (r Report) Add(rec *domain.FailureRecord) {
	r.Objectives[rec.Key.String()] = rec
}

// Empty reports whether no objective failed.
func (r Report) Empty() bool {
	return len(r.Objectives) == 0
}

// Write persists the report as indented JSON.
func (r Report) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal failure report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write failure report %s: %w", path, err)
	}
	return nil
}
