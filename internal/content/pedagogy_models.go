package content

// CognitiveLevel is one level of Bloom's Taxonomy with its teaching
// material.
type CognitiveLevel struct {
	LevelName           string   `json:"level_name"`
	Description         string   `json:"description"`
	Content             string   `json:"content,omitempty"`
	LearningObjectives  []string `json:"learning_objectives"`
	Activities          []string `json:"activities"`
	AssessmentQuestions []string `json:"assessment_questions"`
	RealWorldExamples   []string `json:"real_world_examples"`
	KeyConcepts         []string `json:"key_concepts,omitempty"`
}

// BloomsTaxonomyContent structures a topic across the six cognitive
// levels, from recall to creation.
type BloomsTaxonomyContent struct {
	Topic               string           `json:"topic"`
	TargetLevel         string           `json:"target_level,omitempty"`
	GradeLevel          string           `json:"grade_level,omitempty"`
	CognitiveLevels     []CognitiveLevel `json:"cognitive_levels"`
	LearningProgression string           `json:"learning_progression,omitempty"`
	AssessmentStrategy  string           `json:"assessment_strategy,omitempty"`
}

// QuestionSequence is one category of Socratic questions with follow-up
// probes and facilitation guidance.
type QuestionSequence struct {
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	ContentOverview   string   `json:"content_overview,omitempty"`
	Questions         []string `json:"questions"`
	FollowUpProbes    []string `json:"follow_up_probes"`
	ExampleResponses  []string `json:"example_responses,omitempty"`
	FacilitationNotes string   `json:"facilitation_notes,omitempty"`
}

// SocraticQuestioningContent guides students to discover a topic through
// sequenced questioning.
type SocraticQuestioningContent struct {
	Topic                string             `json:"topic"`
	DepthLevel           string             `json:"depth_level,omitempty"`
	StudentLevel         string             `json:"student_level,omitempty"`
	QuestionSequences    []QuestionSequence `json:"question_sequences"`
	DiscussionGuidelines string             `json:"discussion_guidelines,omitempty"`
	AssessmentApproach   string             `json:"assessment_approach,omitempty"`
}

// ProjectPhase is one stage of a project-based learning experience.
type ProjectPhase struct {
	PhaseName          string   `json:"phase_name"`
	Duration           string   `json:"duration"`
	ContentDescription string   `json:"content_description,omitempty"`
	Objectives         []string `json:"objectives"`
	Activities         []string `json:"activities"`
	Deliverables       []string `json:"deliverables"`
	ResourcesNeeded    []string `json:"resources_needed,omitempty"`
	AssessmentCriteria []string `json:"assessment_criteria"`
}

// ProjectBasedLearningContent frames a topic as a multi-phase project
// driven by one central question.
type ProjectBasedLearningContent struct {
	Topic                 string         `json:"topic"`
	DrivingQuestion       string         `json:"driving_question"`
	ProjectOverview       string         `json:"project_overview"`
	LearningObjectives    []string       `json:"learning_objectives"`
	ProjectPhases         []ProjectPhase `json:"project_phases"`
	FinalDeliverables     []string       `json:"final_deliverables"`
	RealWorldConnections  string         `json:"real_world_connections,omitempty"`
	CollaborationStrategy string         `json:"collaboration_strategy,omitempty"`
}

// PreClassContent is material students study before a flipped class.
type PreClassContent struct {
	ContentType        string   `json:"content_type"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	FullContent        string   `json:"full_content,omitempty"`
	EstimatedTime      string   `json:"estimated_time"`
	LearningObjectives []string `json:"learning_objectives"`
	KeyPoints          []string `json:"key_points,omitempty"`
}

// InClassActivity is an active-learning exercise for flipped class time.
type InClassActivity struct {
	ActivityName         string   `json:"activity_name"`
	Duration             string   `json:"duration"`
	Description          string   `json:"description"`
	DetailedInstructions string   `json:"detailed_instructions,omitempty"`
	MaterialsNeeded      []string `json:"materials_needed"`
	AssessmentMethod     string   `json:"assessment_method,omitempty"`
}

// FlippedClassroomContent moves content delivery before class and active
// practice into it.
type FlippedClassroomContent struct {
	Topic                  string            `json:"topic"`
	ClassDuration          string            `json:"class_duration,omitempty"`
	PreClassContent        []PreClassContent `json:"pre_class_content"`
	InClassActivities      []InClassActivity `json:"in_class_activities"`
	PostClassReinforcement []string          `json:"post_class_reinforcement,omitempty"`
	AssessmentStrategy     string            `json:"assessment_strategy,omitempty"`
	TechnologyTools        []string          `json:"technology_tools,omitempty"`
}

// InvestigationPhase is one stage of an inquiry-based investigation.
type InvestigationPhase struct {
	PhaseName             string   `json:"phase_name"`
	ContentGuide          string   `json:"content_guide,omitempty"`
	Objectives            []string `json:"objectives"`
	Activities            []string `json:"activities"`
	ResearchMethods       []string `json:"research_methods"`
	SupportMaterials      []string `json:"support_materials"`
	ExampleInvestigations []string `json:"example_investigations,omitempty"`
}

// InquiryBasedLearningContent drives learning through student-led
// investigation of essential questions.
type InquiryBasedLearningContent struct {
	Topic               string               `json:"topic"`
	EssentialQuestions  []string             `json:"essential_questions"`
	InvestigationPhases []InvestigationPhase `json:"investigation_phases"`
	ResearchSkills      []string             `json:"research_skills,omitempty"`
	PresentationFormats []string             `json:"presentation_formats,omitempty"`
	AssessmentRubric    string               `json:"assessment_rubric,omitempty"`
}

// ConstructivistActivity is one experiential, social, or reflective
// learning activity.
type ConstructivistActivity struct {
	ActivityName      string   `json:"activity_name"`
	Type              string   `json:"type"`
	Description       string   `json:"description"`
	DetailedContent   string   `json:"detailed_content,omitempty"`
	StepByStepGuide   []string `json:"step_by_step_guide"`
	LearningOutcome   string   `json:"learning_outcome"`
	FacilitationNotes string   `json:"facilitation_notes,omitempty"`
}

// ConstructivistContent organizes learning around active knowledge
// construction, from prior-knowledge activation to reflection.
type ConstructivistContent struct {
	Topic                        string                   `json:"topic"`
	PriorKnowledgeActivities     []ConstructivistActivity `json:"prior_knowledge_activities"`
	ExperientialActivities       []ConstructivistActivity `json:"experiential_activities"`
	SocialConstructionActivities []ConstructivistActivity `json:"social_construction_activities"`
	ReflectionActivities         []ConstructivistActivity `json:"reflection_activities"`
	AssessmentApproach           string                   `json:"assessment_approach,omitempty"`
}

// GameMechanic is one gamification element and its learning connection.
type GameMechanic struct {
	MechanicName           string `json:"mechanic_name"`
	Description            string `json:"description"`
	DetailedImplementation string `json:"detailed_implementation,omitempty"`
	LearningConnection     string `json:"learning_connection"`
	ContentIntegration     string `json:"content_integration,omitempty"`
	ImplementationNotes    string `json:"implementation_notes,omitempty"`
}

// GamificationContent wraps a topic in game mechanics, narrative, and
// progression.
type GamificationContent struct {
	Topic                  string         `json:"topic"`
	GameNarrative          string         `json:"game_narrative"`
	GameMechanics          []GameMechanic `json:"game_mechanics"`
	ProgressionSystem      string         `json:"progression_system,omitempty"`
	AssessmentIntegration  string         `json:"assessment_integration,omitempty"`
	MotivationStrategy     string         `json:"motivation_strategy,omitempty"`
	TechnologyRequirements []string       `json:"technology_requirements,omitempty"`
}

// CollaborationStructure is one peer-learning arrangement with roles and
// process.
type CollaborationStructure struct {
	StructureName            string   `json:"structure_name"`
	GroupSize                string   `json:"group_size"`
	ProcessDescription       string   `json:"process_description"`
	DetailedContent          string   `json:"detailed_content,omitempty"`
	StepByStepProcess        []string `json:"step_by_step_process"`
	RolesAndResponsibilities []string `json:"roles_and_responsibilities"`
	AssessmentMethod         string   `json:"assessment_method,omitempty"`
}

// PeerLearningContent structures a topic around student-to-student
// collaboration.
type PeerLearningContent struct {
	Topic                  string                   `json:"topic"`
	CollaborationStructures []CollaborationStructure `json:"collaboration_structures"`
	GroupFormationStrategy string                   `json:"group_formation_strategy,omitempty"`
	CommunicationProtocols []string                 `json:"communication_protocols,omitempty"`
	AccountabilityMeasures []string                 `json:"accountability_measures,omitempty"`
	FacilitationGuidelines string                   `json:"facilitation_guidelines,omitempty"`
}
