package content

// ContentElement is one unit of teaching material inside a subtopic, such
// as a definition, an example, or an activity.
type ContentElement struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// LessonSubtopic groups content elements under a named subtopic.
type LessonSubtopic struct {
	Title           string           `json:"title"`
	ContentElements []ContentElement `json:"content_elements"`
}

// LessonTopic is one main topic of a lesson plan.
type LessonTopic struct {
	Title     string           `json:"title"`
	Subtopics []LessonSubtopic `json:"subtopics"`
}

// LessonPlan is a structured lesson outline for one subject.
type LessonPlan struct {
	Title      string        `json:"title"`
	Subject    string        `json:"subject"`
	MainTopics []LessonTopic `json:"main_topics"`
}

// PracticeExercise is a worked problem inside a study guide.
type PracticeExercise struct {
	Title      string `json:"title"`
	Problem    string `json:"problem"`
	Solution   string `json:"solution"`
	Difficulty string `json:"difficulty"`
}

// CaseStudy connects a study guide's concepts to a real-world scenario.
type CaseStudy struct {
	Title           string   `json:"title"`
	Scenario        string   `json:"scenario"`
	Challenge       string   `json:"challenge"`
	Solution        string   `json:"solution"`
	Outcome         string   `json:"outcome"`
	LessonsLearned  []string `json:"lessons_learned"`
	RelatedConcepts []string `json:"related_concepts"`
}

// StudyGuide is a self-study document for one topic.
type StudyGuide struct {
	Topic              string             `json:"topic"`
	DifficultyLevel    string             `json:"difficulty_level"`
	EstimatedStudyTime string             `json:"estimated_study_time,omitempty"`
	Prerequisites      []string           `json:"prerequisites,omitempty"`
	LearningObjectives []string           `json:"learning_objectives"`
	Overview           string             `json:"overview"`
	KeyConcepts        map[string]string  `json:"key_concepts"`
	ImportantDates     []string           `json:"important_dates,omitempty"`
	PracticeExercises  []PracticeExercise `json:"practice_exercises"`
	CaseStudies        []CaseStudy        `json:"case_studies"`
	StudyTips          []string           `json:"study_tips,omitempty"`
	Resources          []string           `json:"additional_resources,omitempty"`
	Summary            string             `json:"summary,omitempty"`
}

// Flashcard pairs a prompt side with an answer side.
type Flashcard struct {
	Front       string `json:"front"`
	Back        string `json:"back"`
	Explanation string `json:"explanation,omitempty"`
}

// FlashcardSet is a titled collection of flashcards for one topic.
type FlashcardSet struct {
	Title      string      `json:"title"`
	Flashcards []Flashcard `json:"flashcards"`
}

// CareerPath describes one profession that applies the topic.
type CareerPath struct {
	Title                   string   `json:"title"`
	Description             string   `json:"description"`
	TypicalResponsibilities []string `json:"typical_responsibilities"`
	RequiredEducation       string   `json:"required_education"`
	SalaryRange             string   `json:"salary_range"`
	GrowthPotential         string   `json:"growth_potential"`
	TopicApplication        string   `json:"topic_application"`
}

// ProfessionalInsight relays advice from a practitioner in the field.
type ProfessionalInsight struct {
	Role              string   `json:"role"`
	ExperienceLevel   string   `json:"experience_level"`
	KeyInsights       []string `json:"key_insights"`
	DailyApplications []string `json:"daily_applications"`
	AdviceForStudents []string `json:"advice_for_students"`
}

// CareerResource points students to an external resource.
type CareerResource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// CareerConnections maps an academic topic to professional opportunities.
type CareerConnections struct {
	Topic                string                `json:"topic"`
	IndustryOverview     string                `json:"industry_overview"`
	CareerPaths          []CareerPath          `json:"career_paths"`
	RequiredSkills       map[string][]string   `json:"required_skills"`
	IndustryTrends       []string              `json:"industry_trends"`
	ProfessionalInsights []ProfessionalInsight `json:"professional_insights"`
	PreparationSteps     map[string][]string   `json:"preparation_steps"`
	Resources            []CareerResource      `json:"resources"`
}
