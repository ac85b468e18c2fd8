// Package hierarchy loads topic hierarchy files and computes the
// per-objective question distribution that drives the bulk pipeline.
package hierarchy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quizforge/quizforge/internal/domain"
)

// Load reads a topic hierarchy from a JSON or YAML file, selected by
// extension. Malformed structure is a fatal configuration error; the
// hierarchy is immutable for the rest of the run.
func Load(path string) ([]domain.Topic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read topic file %s: %w", path, err)
	}

	var topics []domain.Topic
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &topics); err != nil {
			return nil, fmt.Errorf("failed to parse topic file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &topics); err != nil {
			return nil, fmt.Errorf("failed to parse topic file %s: %w", path, err)
		}
	}

	if len(topics) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyHierarchy, path)
	}

	return topics, nil
}
