// Package ledger tracks previously-seen question texts so the pipeline
// never emits the same question twice, within a run or across runs when
// appending to existing output.
package ledger

import (
	"context"
	"strings"
	"sync"
)

// Ledger is the deduplication set. Implementations must make Add atomic:
// concurrent workers racing on the same text must see exactly one true.
type Ledger interface {
	// Add inserts the normalized text, reporting whether it was newly
	// added. false means the text was already present (a duplicate).
	Add(ctx context.Context, text string) (bool, error)

	// Seen reports membership without inserting.
	Seen(ctx context.Context, text string) (bool, error)

	// Len returns the current number of tracked texts.
	Len(ctx context.Context) (int, error)
}

// Normalize canonicalizes question text for deduplication: lowercased,
// whitespace collapsed. Two questions differing only in case or spacing
// are the same question.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Memory is the in-process Ledger backend: a mutex-guarded set.
// It is the shared state crossed by every worker, so all access goes
// through the lock.
type Memory struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewMemory creates an empty in-memory ledger.
func NewMemory() *Memory {
	return &Memory{seen: make(map[string]struct{})}
}

// Add inserts the normalized text, reporting whether it was newly added.
func (m *Memory) Add(_ context.Context, text string) (bool, error) {
	key := Normalize(text)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, dup := m.seen[key]; dup {
		return false, nil
	}
	m.seen[key] = struct{}{}
	return true, nil
}

// Seen reports membership without inserting.
func (m *Memory) Seen(_ context.Context, text string) (bool, error) {
	key := Normalize(text)

	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.seen[key]
	return ok, nil
}

// Len returns the number of tracked texts.
func (m *Memory) Len(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.seen), nil
}

// Seed bulk-loads texts, typically from a pre-existing output file.
func (m *Memory) Seed(texts []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range texts {
		m.seen[Normalize(t)] = struct{}{}
	}
}
