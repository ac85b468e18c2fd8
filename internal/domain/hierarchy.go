package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// LearningObjective is a single objective within a subtopic. Count is an
// optional explicit target question count; nil means unspecified. An
// explicit zero is honored and yields an objective with no target.
type LearningObjective struct {
	Text  string `json:"objective" yaml:"objective"`
	Count *int   `json:"count,omitempty" yaml:"count,omitempty"`
}

// Subtopic groups learning objectives under a named subtopic.
type Subtopic struct {
	Name       string              `json:"name" yaml:"name"`
	Objectives []LearningObjective `json:"learning_objectives" yaml:"learning_objectives"`
}

// Topic is the top level of the hierarchy.
type Topic struct {
	Name      string     `json:"topic" yaml:"topic"`
	Subtopics []Subtopic `json:"subtopics" yaml:"subtopics"`
}

// ObjectiveKey is the (topic, subtopic, objective) triple that identifies
// one unit of generation work. It is comparable and usable as a map key.
type ObjectiveKey struct {
	Topic     string `json:"topic"`
	Subtopic  string `json:"subtopic"`
	Objective string `json:"objective"`
}

// String renders the key for logs and report files.
func (k ObjectiveKey) String() string {
	return k.Topic + " / " + k.Subtopic + " / " + k.Objective
}

// UnmarshalJSON accepts either a plain string objective or an object
// pairing the objective text with an explicit count.
func (o *LearningObjective) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Text = s
		o.Count = nil
		return nil
	}

	type objectiveAlias LearningObjective
	var alias objectiveAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return fmt.Errorf("%w: learning objective must be a string or an object: %v", ErrInvalidFormat, err)
	}
	*o = LearningObjective(alias)
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML hierarchy files.
func (o *LearningObjective) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		o.Text = value.Value
		o.Count = nil
		return nil
	}

	type objectiveAlias LearningObjective
	var alias objectiveAlias
	if err := value.Decode(&alias); err != nil {
		return fmt.Errorf("%w: learning objective must be a string or a mapping: %v", ErrInvalidFormat, err)
	}
	*o = LearningObjective(alias)
	return nil
}

// Objectives flattens the hierarchy into ordered objective keys paired with
// their explicit counts (nil when unspecified). Order follows the
// hierarchy: topics, then subtopics, then objectives.
func Objectives(topics []Topic) ([]ObjectiveKey, []*int) {
	var keys []ObjectiveKey
	var counts []*int
	for _, t := range topics {
		for _, st := range t.Subtopics {
			for _, obj := range st.Objectives {
				keys = append(keys, ObjectiveKey{
					Topic:     t.Name,
					Subtopic:  st.Name,
					Objective: obj.Text,
				})
				counts = append(counts, obj.Count)
			}
		}
	}
	return keys, counts
}
