// Package coursegen turns a free-form topic into a complete course using
// an LLM provider with schema-constrained output.
package coursegen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learnai/internal/course"
	"github.com/abhisek/learnai/internal/llm"
)

// Generator produces courses from topics.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// courseOutput is the raw LLM response before ID assignment and validation.
type courseOutput struct {
	Topic           string           `json:"topic"`
	TopicIntro      string           `json:"topicIntro"`
	RealLifeExample string           `json:"realLifeExample"`
	Subtopics       []subtopicOutput `json:"subtopics"`
	FinalQuiz       []questionOutput `json:"finalQuiz"`
}

type subtopicOutput struct {
	Name            string           `json:"name"`
	Explanation     string           `json:"explanation"`
	FlashcardPoints []string         `json:"flashcardPoints"`
	Quiz            []questionOutput `json:"quiz"`
}

type questionOutput struct {
	Kind    string   `json:"type"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// Generate produces a validated course for the given topic.
func (g *Generator) Generate(ctx context.Context, topic string) (*course.Course, error) {
	ctx = llm.WithPurpose(ctx, "course-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, g.config)},
		},
		Schema:      CourseSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw courseOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	c := assemble(raw)
	if err := course.Validate(c); err != nil {
		return nil, fmt.Errorf("generated course rejected: %w", err)
	}

	return c, nil
}

// assemble turns the raw output into a Course with fresh IDs and zeroed
// progress fields. Subtopic and question IDs are 1-based sequence numbers,
// matching the original storage format.
func assemble(raw courseOutput) *course.Course {
	c := &course.Course{
		ID:              uuid.NewString(),
		Topic:           raw.Topic,
		TopicIntro:      raw.TopicIntro,
		RealLifeExample: raw.RealLifeExample,
		CreatedAt:       time.Now().UnixMilli(),
	}

	for i, st := range raw.Subtopics {
		c.Subtopics = append(c.Subtopics, course.Subtopic{
			ID:              i + 1,
			Name:            st.Name,
			Explanation:     st.Explanation,
			FlashcardPoints: st.FlashcardPoints,
			Quiz:            assembleQuestions(st.Quiz),
		})
	}
	c.FinalQuiz = assembleQuestions(raw.FinalQuiz)

	return c
}

func assembleQuestions(raw []questionOutput) []course.Question {
	out := make([]course.Question, len(raw))
	for i, q := range raw {
		options := q.Options
		if course.QuestionKind(q.Kind) != course.KindMultipleChoice {
			options = nil
		}
		out[i] = course.Question{
			ID:            i + 1,
			Kind:          course.QuestionKind(q.Kind),
			Prompt:        q.Prompt,
			Options:       options,
			CorrectAnswer: q.Answer,
		}
	}
	return out
}
