package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const hierarchyJSON = `[
	{
		"topic": "Arithmetic",
		"subtopics": [
			{
				"name": "Fractions",
				"learning_objectives": [
					"Add fractions with unlike denominators",
					{"objective": "Multiply fractions", "count": 4}
				]
			},
			{
				"name": "Decimals",
				"learning_objectives": ["Round decimals"]
			}
		]
	}
]`

func TestHierarchyUnmarshalJSON(t *testing.T) {
	var topics []Topic
	require.NoError(t, json.Unmarshal([]byte(hierarchyJSON), &topics))
	require.Len(t, topics, 1)
	require.Len(t, topics[0].Subtopics, 2)

	fractions := topics[0].Subtopics[0]
	require.Len(t, fractions.Objectives, 2)
	assert.Equal(t, "Add fractions with unlike denominators", fractions.Objectives[0].Text)
	assert.Nil(t, fractions.Objectives[0].Count)
	assert.Equal(t, "Multiply fractions", fractions.Objectives[1].Text)
	require.NotNil(t, fractions.Objectives[1].Count)
	assert.Equal(t, 4, *fractions.Objectives[1].Count)
}

func TestHierarchyUnmarshalYAML(t *testing.T) {
	const hierarchyYAML = `
- topic: Biology
  subtopics:
    - name: Cells
      learning_objectives:
        - Describe the function of mitochondria
        - objective: Compare plant and animal cells
          count: 2
`
	var topics []Topic
	require.NoError(t, yaml.Unmarshal([]byte(hierarchyYAML), &topics))
	require.Len(t, topics, 1)

	cells := topics[0].Subtopics[0]
	require.Len(t, cells.Objectives, 2)
	assert.Equal(t, "Describe the function of mitochondria", cells.Objectives[0].Text)
	assert.Nil(t, cells.Objectives[0].Count)
	require.NotNil(t, cells.Objectives[1].Count)
	assert.Equal(t, 2, *cells.Objectives[1].Count)
}

func TestObjectivesFlattensInHierarchyOrder(t *testing.T) {
	var topics []Topic
	require.NoError(t, json.Unmarshal([]byte(hierarchyJSON), &topics))

	keys, counts := Objectives(topics)
	require.Len(t, keys, 3)
	assert.Equal(t, ObjectiveKey{
		Topic:     "Arithmetic",
		Subtopic:  "Fractions",
		Objective: "Add fractions with unlike denominators",
	}, keys[0])
	assert.Equal(t, ObjectiveKey{
		Topic:     "Arithmetic",
		Subtopic:  "Decimals",
		Objective: "Round decimals",
	}, keys[2])
	require.Len(t, counts, 3)
	assert.Nil(t, counts[0])
	require.NotNil(t, counts[1])
	assert.Equal(t, 4, *counts[1])
	assert.Nil(t, counts[2])
}

func TestFailureRecord(t *testing.T) {
	rec := &FailureRecord{Key: ObjectiveKey{Topic: "T", Subtopic: "S", Objective: "O"}, Target: 5}

	rec.Record(AttemptOutcome{Requested: 3, Generated: 3, Status: AttemptStatusSuccess})
	rec.Record(AttemptOutcome{Requested: 2, Generated: 1, Duplicates: 1, Status: AttemptStatusPartial})

	assert.Equal(t, 4, rec.Generated)
	assert.Equal(t, 1, rec.Duplicates)
	assert.True(t, rec.Failed())

	rec.Record(AttemptOutcome{Requested: 1, Generated: 1, Status: AttemptStatusSuccess})
	assert.Equal(t, 5, rec.Generated)
	// Under target no longer, but the partial attempt keeps it in the report.
	assert.True(t, rec.Failed())

	clean := &FailureRecord{Target: 2, Generated: 2, Attempts: []AttemptOutcome{
		{Requested: 2, Generated: 2, Status: AttemptStatusSuccess},
	}}
	assert.False(t, clean.Failed())
}
