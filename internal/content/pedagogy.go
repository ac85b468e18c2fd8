package content

import (
	"context"
	"errors"
	"fmt"
	"text/template"
)

// ErrUnknownPedagogy is returned when a pedagogy name does not match any
// supported approach.
var ErrUnknownPedagogy = errors.New("unknown pedagogy")

// Pedagogy names a supported pedagogical framework.
type Pedagogy string

const (
	PedagogyBloomsTaxonomy       Pedagogy = "blooms_taxonomy"
	PedagogySocraticQuestioning  Pedagogy = "socratic_questioning"
	PedagogyProjectBasedLearning Pedagogy = "project_based_learning"
	PedagogyFlippedClassroom     Pedagogy = "flipped_classroom"
	PedagogyInquiryBasedLearning Pedagogy = "inquiry_based_learning"
	PedagogyConstructivist       Pedagogy = "constructivist"
	PedagogyGamification         Pedagogy = "gamification"
	PedagogyPeerLearning         Pedagogy = "peer_learning"
)

// Pedagogies lists every supported pedagogy in a stable order.
func Pedagogies() []Pedagogy {
	return []Pedagogy{
		PedagogyBloomsTaxonomy,
		PedagogySocraticQuestioning,
		PedagogyProjectBasedLearning,
		PedagogyFlippedClassroom,
		PedagogyInquiryBasedLearning,
		PedagogyConstructivist,
		PedagogyGamification,
		PedagogyPeerLearning,
	}
}

// ParsePedagogy validates a pedagogy name.
func ParsePedagogy(s string) (Pedagogy, error) {
	p := Pedagogy(s)
	for _, known := range Pedagogies() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: %v)", ErrUnknownPedagogy, s, Pedagogies())
}

const bloomsTemplate = `Create educational content for the topic "{{.Topic}}" using Bloom's Taxonomy framework.
Target cognitive level: {{.TargetLevel}}
Grade level: {{.GradeLevel}}

Structure the content across all six cognitive levels of Bloom's Taxonomy:
1. REMEMBER: basic recall of information
2. UNDERSTAND: explaining ideas or concepts
3. APPLY: using information in new situations
4. ANALYZE: breaking down information to understand relationships
5. EVALUATE: justifying decisions or making judgments
6. CREATE: producing new or original work

For each level, provide learning objectives, activities, assessment
questions, and real-world examples. Ensure progression from lower-order to
higher-order thinking, and describe the learning progression and overall
assessment strategy.
{{if .CustomInstructions}}
Additional Instructions:
{{.CustomInstructions}}
{{end}}
Return JSON only, with this structure:
{"topic": "...", "target_level": "...", "grade_level": "...", "cognitive_levels": [{"level_name": "...", "description": "...", "content": "...", "learning_objectives": ["..."], "activities": ["..."], "assessment_questions": ["..."], "real_world_examples": ["..."], "key_concepts": ["..."]}], "learning_progression": "...", "assessment_strategy": "..."}`

const socraticTemplate = `Create a Socratic questioning sequence for the topic "{{.Topic}}".
Depth level: {{.DepthLevel}}
Student level: {{.StudentLevel}}

Design question sequences that guide students to discover knowledge through:
1. FOUNDATIONAL QUESTIONS: establishing basic understanding
2. ANALYTICAL QUESTIONS: probing assumptions and evidence
3. PERSPECTIVE QUESTIONS: exploring different viewpoints
4. IMPLICATION QUESTIONS: consequences and implications
5. META-COGNITIVE QUESTIONS: the thinking and learning process

For each category, provide multiple example questions, follow-up probes,
potential student responses with guidance, and facilitation notes. Include
discussion guidelines and an assessment approach for Socratic dialogue.
{{if .CustomInstructions}}
Additional Instructions:
{{.CustomInstructions}}
{{end}}
Return JSON only, with this structure:
{"topic": "...", "depth_level": "...", "student_level": "...", "question_sequences": [{"category": "...", "description": "...", "content_overview": "...", "questions": ["..."], "follow_up_probes": ["..."], "example_responses": ["..."], "facilitation_notes": "..."}], "discussion_guidelines": "...", "assessment_approach": "..."}`

const pblTemplate = `Design a comprehensive project-based learning experience for "{{.Topic}}".
Project duration: {{.ProjectDuration}}
Team size: {{.TeamSize}}
Industry focus: {{.IndustryFocus}}

Create a complete framework including a driving question, project
overview, learning objectives, project phases with timelines and
deliverables, assessment criteria, needed resources, and real-world
connections. The project should address authentic problems, require
sustained inquiry, involve student choice, and develop collaboration,
communication, critical thinking, and creativity.
{{if .CustomInstructions}}
Additional Instructions:
{{.CustomInstructions}}
{{end}}
Return JSON only, with this structure:
{"topic": "...", "driving_question": "...", "project_overview": "...", "learning_objectives": ["..."], "project_phases": [{"phase_name": "...", "duration": "...", "content_description": "...", "objectives": ["..."], "activities": ["..."], "deliverables": ["..."], "resources_needed": ["..."], "assessment_criteria": ["..."]}], "final_deliverables": ["..."], "real_world_connections": "...", "collaboration_strategy": "..."}`

const flippedTemplate = `Design a flipped classroom approach for "{{.Topic}}".
Class duration: {{.ClassDuration}}
Prep time available: {{.PrepTime}}
Technology level: {{.TechnologyLevel}}

Create a complete design with pre-class preparation materials (videos,
readings, interactive modules with estimated times and key points),
in-class active learning activities (with durations, materials, and
assessment methods), post-class reinforcement, an overall assessment
strategy, and technology tools. Maximize active learning during
face-to-face time.
{{if .CustomInstructions}}
Additional Instructions:
{{.CustomInstructions}}
{{end}}
Return JSON only, with this structure:
{"topic": "...", "class_duration": "...", "pre_class_content": [{"content_type": "...", "title": "...", "description": "...", "full_content": "...", "estimated_time": "...", "learning_objectives": ["..."], "key_points": ["..."]}], "in_class_activities": [{"activity_name": "...", "duration": "...", "description": "...", "detailed_instructions": "...", "materials_needed": ["..."], "assessment_method": "..."}], "post_class_reinforcement": ["..."], "assessment_strategy": "...", "technology_tools": ["..."]}`

const inquiryTemplate = `Design an inquiry-based learning experience for "{{.Topic}}".
Inquiry type: {{.InquiryType}}
Investigation scope: {{.InvestigationScope}}
Student autonomy level: {{.StudentAutonomy}}

Create a framework including essential questions that drive inquiry,
investigation phases (question formulation, research and data collection,
analysis and interpretation, conclusion and communication) with research
methods and support materials, research skills students will develop,
presentation formats, and an assessment rubric. Balance student autonomy
with appropriate guidance.
{{if .CustomInstructions}}
Additional Instructions:
{{.CustomInstructions}}
{{end}}
Return JSON only, with this structure:
{"topic": "...", "essential_questions": ["..."], "investigation_phases": [{"phase_name": "...", "content_guide": "...", "objectives": ["..."], "activities": ["..."], "research_methods": ["..."], "support_materials": ["..."], "example_investigations": ["..."]}], "research_skills": ["..."], "presentation_formats": ["..."], "assessment_rubric": "..."}`

const constructivistTemplate = `Design a constructivist learning experience for "{{.Topic}}".
Prior knowledge level: {{.PriorKnowledgeLevel}}
Social interaction focus: {{.SocialInteractionFocus}}
Reflection emphasis: {{.ReflectionEmphasis}}

Create a framework with activities in four groups: prior knowledge
activation (surfacing existing understanding, misconception
identification), experiential learning (hands-on activities, real-world
scenarios), social construction (collaborative activities, peer
discussion), and reflective practices (metacognitive questioning, learning
journals). For each activity give its type, a step-by-step guide, the
expected learning outcome, and facilitation notes. Include an authentic
assessment approach.
{{if .CustomInstructions}}
Additional Instructions:
{{.CustomInstructions}}
{{end}}
Return JSON only, with this structure:
{"topic": "...", "prior_knowledge_activities": [{"activity_name": "...", "type": "...", "description": "...", "detailed_content": "...", "step_by_step_guide": ["..."], "learning_outcome": "...", "facilitation_notes": "..."}], "experiential_activities": [...], "social_construction_activities": [...], "reflection_activities": [...], "assessment_approach": "..."}`

const gamificationTemplate = `Design a gamified learning experience for "{{.Topic}}".
Preferred game mechanics: {{.GameMechanics}}
Competition level: {{.CompetitionLevel}}
Technology platform: {{.TechnologyPlatform}}

Create a comprehensive design including game mechanics (points, levels,
badges, leaderboards, quests) each with its learning connection, a game
narrative, a progression system with difficulty scaling, assessment
integrated into gameplay, a motivation strategy balancing intrinsic and
extrinsic rewards, and technology requirements. Balance fun and learning
while maintaining educational rigor.
{{if .CustomInstructions}}
Additional Instructions:
{{.CustomInstructions}}
{{end}}
Return JSON only, with this structure:
{"topic": "...", "game_narrative": "...", "game_mechanics": [{"mechanic_name": "...", "description": "...", "detailed_implementation": "...", "learning_connection": "...", "content_integration": "...", "implementation_notes": "..."}], "progression_system": "...", "assessment_integration": "...", "motivation_strategy": "...", "technology_requirements": ["..."]}`

const peerLearningTemplate = `Design a peer learning experience for "{{.Topic}}".
Group size: {{.GroupSize}}
Collaboration type: {{.CollaborationType}}
Skill diversity level: {{.SkillDiversity}}

Create a framework including collaboration structures (think-pair-share,
jigsaw, peer tutoring, reciprocal teaching) each with group size, process
description, step-by-step process, and student roles; a group formation
strategy; communication protocols; accountability measures; and
facilitation guidelines for instructors. Ensure equitable participation
and mutual learning benefits.
{{if .CustomInstructions}}
Additional Instructions:
{{.CustomInstructions}}
{{end}}
Return JSON only, with this structure:
{"topic": "...", "collaboration_structures": [{"structure_name": "...", "group_size": "...", "process_description": "...", "detailed_content": "...", "step_by_step_process": ["..."], "roles_and_responsibilities": ["..."], "assessment_method": "..."}], "group_formation_strategy": "...", "communication_protocols": ["..."], "accountability_measures": ["..."], "facilitation_guidelines": "..."}`

var (
	bloomsTmpl         = template.Must(template.New("blooms_taxonomy").Parse(bloomsTemplate))
	socraticTmpl       = template.Must(template.New("socratic_questioning").Parse(socraticTemplate))
	pblTmpl            = template.Must(template.New("project_based_learning").Parse(pblTemplate))
	flippedTmpl        = template.Must(template.New("flipped_classroom").Parse(flippedTemplate))
	inquiryTmpl        = template.Must(template.New("inquiry_based_learning").Parse(inquiryTemplate))
	constructivistTmpl = template.Must(template.New("constructivist").Parse(constructivistTemplate))
	gamificationTmpl   = template.Must(template.New("gamification").Parse(gamificationTemplate))
	peerLearningTmpl   = template.Must(template.New("peer_learning").Parse(peerLearningTemplate))
)

// BloomsRequest parameterizes Bloom's Taxonomy content generation.
// Unset levels default to "All levels" and "General".
type BloomsRequest struct {
	Topic              string
	TargetLevel        string
	GradeLevel         string
	CustomInstructions string
}

// SocraticRequest parameterizes Socratic questioning generation. Unset
// levels default to "Intermediate" depth for "High School" students.
type SocraticRequest struct {
	Topic              string
	DepthLevel         string
	StudentLevel       string
	CustomInstructions string
}

// ProjectRequest parameterizes project-based learning generation.
type ProjectRequest struct {
	Topic              string
	ProjectDuration    string
	TeamSize           string
	IndustryFocus      string
	CustomInstructions string
}

// FlippedRequest parameterizes flipped classroom generation.
type FlippedRequest struct {
	Topic              string
	ClassDuration      string
	PrepTime           string
	TechnologyLevel    string
	CustomInstructions string
}

// InquiryRequest parameterizes inquiry-based learning generation.
type InquiryRequest struct {
	Topic              string
	InquiryType        string
	InvestigationScope string
	StudentAutonomy    string
	CustomInstructions string
}

// ConstructivistRequest parameterizes constructivist content generation.
type ConstructivistRequest struct {
	Topic                  string
	PriorKnowledgeLevel    string
	SocialInteractionFocus string
	ReflectionEmphasis     string
	CustomInstructions     string
}

// GamificationRequest parameterizes gamified learning generation.
type GamificationRequest struct {
	Topic              string
	GameMechanics      string
	CompetitionLevel   string
	TechnologyPlatform string
	CustomInstructions string
}

// PeerLearningRequest parameterizes peer learning generation.
type PeerLearningRequest struct {
	Topic              string
	GroupSize          string
	CollaborationType  string
	SkillDiversity     string
	CustomInstructions string
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// GenerateBloomsTaxonomy produces content structured across Bloom's six
// cognitive levels.
func (e *Engine) GenerateBloomsTaxonomy(ctx context.Context, req BloomsRequest) (*BloomsTaxonomyContent, error) {
	if err := requireTopic(req.Topic); err != nil {
		return nil, err
	}
	req.TargetLevel = defaultString(req.TargetLevel, "All levels")
	req.GradeLevel = defaultString(req.GradeLevel, "General")

	var out BloomsTaxonomyContent
	if err := e.generate(ctx, bloomsTmpl, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateSocraticQuestioning produces a sequenced questioning plan.
func (e *Engine) GenerateSocraticQuestioning(ctx context.Context, req SocraticRequest) (*SocraticQuestioningContent, error) {
	if err := requireTopic(req.Topic); err != nil {
		return nil, err
	}
	req.DepthLevel = defaultString(req.DepthLevel, "Intermediate")
	req.StudentLevel = defaultString(req.StudentLevel, "High School")

	var out SocraticQuestioningContent
	if err := e.generate(ctx, socraticTmpl, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateProjectBasedLearning produces a phased project framework.
func (e *Engine) GenerateProjectBasedLearning(ctx context.Context, req ProjectRequest) (*ProjectBasedLearningContent, error) {
	if err := requireTopic(req.Topic); err != nil {
		return nil, err
	}
	req.ProjectDuration = defaultString(req.ProjectDuration, "4-6 weeks")
	req.TeamSize = defaultString(req.TeamSize, "3-4 students")
	req.IndustryFocus = defaultString(req.IndustryFocus, "General")

	var out ProjectBasedLearningContent
	if err := e.generate(ctx, pblTmpl, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateFlippedClassroom produces a pre/in/post-class learning design.
func (e *Engine) GenerateFlippedClassroom(ctx context.Context, req FlippedRequest) (*FlippedClassroomContent, error) {
	if err := requireTopic(req.Topic); err != nil {
		return nil, err
	}
	req.ClassDuration = defaultString(req.ClassDuration, "50 minutes")
	req.PrepTime = defaultString(req.PrepTime, "30-45 minutes")
	req.TechnologyLevel = defaultString(req.TechnologyLevel, "Moderate")

	var out FlippedClassroomContent
	if err := e.generate(ctx, flippedTmpl, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateInquiryBasedLearning produces an investigation-driven design.
func (e *Engine) GenerateInquiryBasedLearning(ctx context.Context, req InquiryRequest) (*InquiryBasedLearningContent, error) {
	if err := requireTopic(req.Topic); err != nil {
		return nil, err
	}
	req.InquiryType = defaultString(req.InquiryType, "Guided")
	req.InvestigationScope = defaultString(req.InvestigationScope, "Moderate")
	req.StudentAutonomy = defaultString(req.StudentAutonomy, "Balanced")

	var out InquiryBasedLearningContent
	if err := e.generate(ctx, inquiryTmpl, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateConstructivist produces an active knowledge-construction design.
func (e *Engine) GenerateConstructivist(ctx context.Context, req ConstructivistRequest) (*ConstructivistContent, error) {
	if err := requireTopic(req.Topic); err != nil {
		return nil, err
	}
	req.PriorKnowledgeLevel = defaultString(req.PriorKnowledgeLevel, "Mixed")
	req.SocialInteractionFocus = defaultString(req.SocialInteractionFocus, "High")
	req.ReflectionEmphasis = defaultString(req.ReflectionEmphasis, "Strong")

	var out ConstructivistContent
	if err := e.generate(ctx, constructivistTmpl, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateGamification produces a game-mechanics learning design.
func (e *Engine) GenerateGamification(ctx context.Context, req GamificationRequest) (*GamificationContent, error) {
	if err := requireTopic(req.Topic); err != nil {
		return nil, err
	}
	req.GameMechanics = defaultString(req.GameMechanics, "Points, badges, levels")
	req.CompetitionLevel = defaultString(req.CompetitionLevel, "Moderate")
	req.TechnologyPlatform = defaultString(req.TechnologyPlatform, "Web-based")

	var out GamificationContent
	if err := e.generate(ctx, gamificationTmpl, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GeneratePeerLearning produces a peer-collaboration learning design.
func (e *Engine) GeneratePeerLearning(ctx context.Context, req PeerLearningRequest) (*PeerLearningContent, error) {
	if err := requireTopic(req.Topic); err != nil {
		return nil, err
	}
	req.GroupSize = defaultString(req.GroupSize, "3-4 students")
	req.CollaborationType = defaultString(req.CollaborationType, "Mixed")
	req.SkillDiversity = defaultString(req.SkillDiversity, "Moderate")

	var out PeerLearningContent
	if err := e.generate(ctx, peerLearningTmpl, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GeneratePedagogyContent generates content for a pedagogy selected by
// name, using each pedagogy's defaults. Callers that need the
// pedagogy-specific knobs use the typed methods directly; the returned
// value is the matching *Content struct.
func (e *Engine) GeneratePedagogyContent(ctx context.Context, pedagogy Pedagogy, topic, customInstructions string) (any, error) {
	switch pedagogy {
	case PedagogyBloomsTaxonomy:
		return e.GenerateBloomsTaxonomy(ctx, BloomsRequest{Topic: topic, CustomInstructions: customInstructions})
	case PedagogySocraticQuestioning:
		return e.GenerateSocraticQuestioning(ctx, SocraticRequest{Topic: topic, CustomInstructions: customInstructions})
	case PedagogyProjectBasedLearning:
		return e.GenerateProjectBasedLearning(ctx, ProjectRequest{Topic: topic, CustomInstructions: customInstructions})
	case PedagogyFlippedClassroom:
		return e.GenerateFlippedClassroom(ctx, FlippedRequest{Topic: topic, CustomInstructions: customInstructions})
	case PedagogyInquiryBasedLearning:
		return e.GenerateInquiryBasedLearning(ctx, InquiryRequest{Topic: topic, CustomInstructions: customInstructions})
	case PedagogyConstructivist:
		return e.GenerateConstructivist(ctx, ConstructivistRequest{Topic: topic, CustomInstructions: customInstructions})
	case PedagogyGamification:
		return e.GenerateGamification(ctx, GamificationRequest{Topic: topic, CustomInstructions: customInstructions})
	case PedagogyPeerLearning:
		return e.GeneratePeerLearning(ctx, PeerLearningRequest{Topic: topic, CustomInstructions: customInstructions})
	default:
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownPedagogy, pedagogy, Pedagogies())
	}
}
