package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/quizforge/quizforge/internal/generation"
)

const lessonPlanTemplate = `Create a highly engaging and comprehensive lesson plan for the following topic:
Topic: {{.Topic}}
{{if .GradeLevel}}Grade Level: {{.GradeLevel}}
{{end}}
The lesson plan should engage students through a variety of methods. Include:
1. Title of the lesson
2. Subject area
3. Main topics (2-3), each with:
   a. Title
   b. Subtopics (2-3)
   c. For each subtopic, content elements such as definitions, examples,
      explanations, discussion questions, and hands-on activities

The lesson plan should follow Bloom's Taxonomy principles with activities
addressing different cognitive levels, and cater to diverse learning styles.
{{if .CustomInstructions}}
Additional Instructions:
{{.CustomInstructions}}
{{end}}
Return JSON only, with this structure:
{"title": "...", "subject": "...", "main_topics": [{"title": "...", "subtopics": [{"title": "...", "content_elements": [{"type": "definition|example|explanation|activity", "content": "..."}]}]}]}`

const studyGuideTemplate = `Create a comprehensive study guide for the following topic:
Topic: {{.Topic}}
Difficulty Level: {{.DifficultyLevel}}

The study guide should be engaging, well-structured, and suitable for
self-study or classroom use. Include:
1. Difficulty level and estimated study time
2. Prerequisites (if any)
3. Clear learning objectives (3-5 specific, measurable objectives)
4. Comprehensive overview of the topic
5. Key concepts with detailed explanations
6. Important dates and events (if applicable)
7. Practice exercises with step-by-step solutions
8. Real-world case studies with challenges, outcomes, and lessons learned
9. Study tips and strategies specific to the topic
10. Additional resources and a brief summary of key takeaways

Make sure all content is hands-on and directly related to real-world
applications of {{.Topic}}.
{{if .CustomInstructions}}
Additional Instructions:
{{.CustomInstructions}}
{{end}}
Return JSON only, with this structure:
{"topic": "...", "difficulty_level": "...", "estimated_study_time": "...", "prerequisites": ["..."], "learning_objectives": ["..."], "overview": "...", "key_concepts": {"concept": "explanation"}, "important_dates": ["..."], "practice_exercises": [{"title": "...", "problem": "...", "solution": "...", "difficulty": "beginner|intermediate|advanced"}], "case_studies": [{"title": "...", "scenario": "...", "challenge": "...", "solution": "...", "outcome": "...", "lessons_learned": ["..."], "related_concepts": ["..."]}], "study_tips": ["..."], "additional_resources": ["..."], "summary": "..."}`

const flashcardTemplate = `Generate a set of {{.Count}} flashcards on the topic: {{.Topic}}.

For each flashcard, provide:
1. A front side with a question or key term
2. A back side with the answer or definition
3. An optional explanation or additional context

The flashcards should cover key concepts, terminology, and important facts
related to the topic.
{{if .CustomInstructions}}
Additional Instructions:
{{.CustomInstructions}}
{{end}}
Return JSON only, with this structure:
{"title": "...", "flashcards": [{"front": "...", "back": "...", "explanation": "..."}]}`

const careerTemplate = `Create comprehensive career connections for the following academic topic:
Topic: {{.Topic}}
Industry Focus: {{.IndustryFocus}}

Generate detailed information about how this topic connects to real-world
careers and professional opportunities. Include:
1. Industry overview with current state, outlook, and key trends
2. Career paths with responsibilities, education, salary, and growth
3. Professional insights with daily applications and advice for students
4. Required skills grouped by category (technical, soft, industry-specific)
5. Preparation steps grouped by category (education, experience, networking)
6. Resources such as professional organizations and learning platforms

Focus on current and emerging opportunities, include both traditional and
non-traditional paths, and provide actionable steps for students.
{{if .CustomInstructions}}
Additional Instructions:
{{.CustomInstructions}}
{{end}}
Return JSON only, with this structure:
{"topic": "...", "industry_overview": "...", "career_paths": [{"title": "...", "description": "...", "typical_responsibilities": ["..."], "required_education": "...", "salary_range": "...", "growth_potential": "...", "topic_application": "..."}], "required_skills": {"technical": ["..."], "soft": ["..."]}, "industry_trends": ["..."], "professional_insights": [{"role": "...", "experience_level": "...", "key_insights": ["..."], "daily_applications": ["..."], "advice_for_students": ["..."]}], "preparation_steps": {"education": ["..."], "experience": ["..."]}, "resources": [{"name": "...", "url": "..."}]}`

var (
	lessonPlanTmpl = template.Must(template.New("lesson_plan").Parse(lessonPlanTemplate))
	studyGuideTmpl = template.Must(template.New("study_guide").Parse(studyGuideTemplate))
	flashcardTmpl  = template.Must(template.New("flashcards").Parse(flashcardTemplate))
	careerTmpl     = template.Must(template.New("career_connections").Parse(careerTemplate))
)

// LessonPlanRequest parameterizes lesson plan generation.
type LessonPlanRequest struct {
	Topic              string
	GradeLevel         string
	CustomInstructions string
}

// StudyGuideRequest parameterizes study guide generation. An empty
// difficulty level defaults to "Intermediate".
type StudyGuideRequest struct {
	Topic              string
	DifficultyLevel    string
	CustomInstructions string
}

// FlashcardRequest parameterizes flashcard generation. A zero count
// defaults to 10.
type FlashcardRequest struct {
	Topic              string
	Count              int
	CustomInstructions string
}

// CareerRequest parameterizes career connection generation. An empty
// industry focus defaults to "General".
type CareerRequest struct {
	Topic              string
	IndustryFocus      string
	CustomInstructions string
}

// Engine generates teaching material through a completion service.
type Engine struct {
	svc    generation.CompletionService
	logger *slog.Logger
}

// NewEngine builds a content engine. If logger is nil, the default logger
// is used.
func NewEngine(svc generation.CompletionService, logger *slog.Logger) (*Engine, error) {
	if svc == nil {
		return nil, fmt.Errorf("%w: completion service is required", generation.ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		svc:    svc,
		logger: logger.With(slog.String("component", "content_engine")),
	}, nil
}

// GenerateLessonPlan produces a structured lesson plan for one topic.
func (e *Engine) GenerateLessonPlan(ctx context.Context, req LessonPlanRequest) (*LessonPlan, error) {
	if err := requireTopic(req.Topic); err != nil {
		return nil, err
	}

	var plan LessonPlan
	if err := e.generate(ctx, lessonPlanTmpl, req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// GenerateStudyGuide produces a study guide for one topic.
func (e *Engine) GenerateStudyGuide(ctx context.Context, req StudyGuideRequest) (*StudyGuide, error) {
	if err := requireTopic(req.Topic); err != nil {
		return nil, err
	}
	if req.DifficultyLevel == "" {
		req.DifficultyLevel = "Intermediate"
	}

	var guide StudyGuide
	if err := e.generate(ctx, studyGuideTmpl, req, &guide); err != nil {
		return nil, err
	}
	return &guide, nil
}

// GenerateFlashcards produces a flashcard set for one topic.
func (e *Engine) GenerateFlashcards(ctx context.Context, req FlashcardRequest) (*FlashcardSet, error) {
	if err := requireTopic(req.Topic); err != nil {
		return nil, err
	}
	if req.Count <= 0 {
		req.Count = 10
	}

	var set FlashcardSet
	if err := e.generate(ctx, flashcardTmpl, req, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// GenerateCareerConnections maps one topic to professional opportunities.
func (e *Engine) GenerateCareerConnections(ctx context.Context, req CareerRequest) (*CareerConnections, error) {
	if err := requireTopic(req.Topic); err != nil {
		return nil, err
	}
	if req.IndustryFocus == "" {
		req.IndustryFocus = "General"
	}

	var conn CareerConnections
	if err := e.generate(ctx, careerTmpl, req, &conn); err != nil {
		return nil, err
	}
	return &conn, nil
}

// generate renders the prompt, runs the completion, and decodes the JSON
// response into out. Malformed responses are an error, never a silently
// substituted default.
func (e *Engine) generate(ctx context.Context, tmpl *template.Template, data any, out any) error {
	var prompt strings.Builder
	if err := tmpl.Execute(&prompt, data); err != nil {
		return fmt.Errorf("failed to render prompt template: %w", err)
	}

	e.logger.DebugContext(ctx, "requesting content generation", "template", tmpl.Name())

	text, err := e.svc.Complete(ctx, prompt.String())
	if err != nil {
		return err
	}

	body := generation.StripCodeFence(text)
	if err := json.Unmarshal([]byte(body), out); err != nil {
		e.logger.WarnContext(ctx, "content response failed to decode",
			"template", tmpl.Name(),
			"error", err)
		return fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	}

	return nil
}

func requireTopic(topic string) error {
	if topic == "" {
		return fmt.Errorf("%w: topic is required", generation.ErrInvalidConfig)
	}
	return nil
}
