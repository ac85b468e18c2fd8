package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge/internal/domain"
)

func intCount(n int) *int { return &n }

// topicsWithObjectives builds a single-topic hierarchy with n objectives,
// all without explicit counts.
func topicsWithObjectives(n int) []domain.Topic {
	objectives := make([]domain.LearningObjective, n)
	for i := range objectives {
		objectives[i] = domain.LearningObjective{Text: string(rune('a' + i))}
	}
	return []domain.Topic{{
		Name:      "T",
		Subtopics: []domain.Subtopic{{Name: "S", Objectives: objectives}},
	}}
}

func TestBuildEvenSplit(t *testing.T) {
	// 3 objectives, total 10, min batch 3: base=3, remainder=1.
	keys, dist, err := Build(topicsWithObjectives(3), Options{TotalQuestions: 10, MinBatchSize: 3})
	require.NoError(t, err)
	require.Len(t, keys, 3)

	assert.Equal(t, 4, dist[keys[0]])
	assert.Equal(t, 3, dist[keys[1]])
	assert.Equal(t, 3, dist[keys[2]])
	assert.Equal(t, 10, dist.Total())
}

func TestBuildEvenSplitSumsToTotal(t *testing.T) {
	for _, tc := range []struct{ n, total int }{
		{2, 10}, {3, 9}, {4, 10}, {5, 23}, {7, 7},
	} {
		keys, dist, err := Build(topicsWithObjectives(tc.n), Options{TotalQuestions: tc.total, MinBatchSize: 1})
		require.NoError(t, err)
		assert.Equal(t, tc.total, dist.Total(), "n=%d total=%d", tc.n, tc.total)

		// At most total%n objectives get base+1; the rest get base.
		base := tc.total / tc.n
		bumped := 0
		for _, k := range keys {
			switch dist[k] {
			case base:
			case base + 1:
				bumped++
			default:
				t.Fatalf("unexpected target %d (base %d)", dist[k], base)
			}
		}
		assert.Equal(t, tc.total%tc.n, bumped)
	}
}

func TestBuildMinBatchSizeFloor(t *testing.T) {
	// total/n below the floor: every objective still gets MinBatchSize.
	_, dist, err := Build(topicsWithObjectives(5), Options{TotalQuestions: 5, MinBatchSize: 3})
	require.NoError(t, err)
	for _, target := range dist {
		assert.GreaterOrEqual(t, target, 3)
	}
}

func TestBuildPerObjectiveOverride(t *testing.T) {
	keys, dist, err := Build(topicsWithObjectives(4), Options{PerObjective: 5, TotalQuestions: 100, MinBatchSize: 3})
	require.NoError(t, err)
	for _, k := range keys {
		assert.Equal(t, 5, dist[k])
	}
	assert.Equal(t, 20, dist.Total())
}

func TestBuildExplicitCounts(t *testing.T) {
	topics := []domain.Topic{{
		Name: "T",
		Subtopics: []domain.Subtopic{{
			Name: "S",
			Objectives: []domain.LearningObjective{
				{Text: "a", Count: intCount(2)},
				{Text: "b", Count: intCount(7)},
			},
		}},
	}}

	keys, dist, err := Build(topics, Options{TotalQuestions: 99, MinBatchSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, dist[keys[0]])
	assert.Equal(t, 7, dist[keys[1]])
	assert.Equal(t, 9, dist.Total())
}

func TestBuildExplicitZeroCountKeepsObjective(t *testing.T) {
	// An explicit zero is honored: the objective stays in the distribution
	// with no target rather than triggering the even-split fallback.
	topics := []domain.Topic{{
		Name: "T",
		Subtopics: []domain.Subtopic{{
			Name: "S",
			Objectives: []domain.LearningObjective{
				{Text: "a", Count: intCount(4)},
				{Text: "b", Count: intCount(0)},
			},
		}},
	}}

	keys, dist, err := Build(topics, Options{TotalQuestions: 50, MinBatchSize: 3})
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, 4, dist[keys[0]])

	target, ok := dist[keys[1]]
	assert.True(t, ok)
	assert.Equal(t, 0, target)
	assert.Equal(t, 4, dist.Total())
}

func TestBuildMixedCountsFallBackToEvenSplit(t *testing.T) {
	// Only some objectives carry counts: even split over all of them,
	// not just the ones with counts.
	topics := []domain.Topic{{
		Name: "T",
		Subtopics: []domain.Subtopic{{
			Name: "S",
			Objectives: []domain.LearningObjective{
				{Text: "a", Count: intCount(2)},
				{Text: "b"},
			},
		}},
	}}

	keys, dist, err := Build(topics, Options{TotalQuestions: 6, MinBatchSize: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, dist[keys[0]])
	assert.Equal(t, 3, dist[keys[1]])
}

func TestBuildNoObjectives(t *testing.T) {
	topics := []domain.Topic{{Name: "T", Subtopics: []domain.Subtopic{{Name: "S"}}}}

	_, _, err := Build(topics, Options{TotalQuestions: 10, MinBatchSize: 3})
	assert.ErrorIs(t, err, ErrNoObjectives)
}
