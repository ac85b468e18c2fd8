package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quizforge/quizforge/internal/domain"
)

// WriteJSON renders the aggregate question list as an indented JSON array.
func WriteJSON(path string, questions []*domain.Question) error {
	data, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal questions: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON export %s: %w", path, err)
	}
	return nil
}
