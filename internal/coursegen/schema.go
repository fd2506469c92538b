package coursegen

import "github.com/abhisek/learnai/internal/llm"

// questionDef is the schema fragment shared by subtopic quizzes and the
// final quiz.
func questionDef() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type":        "string",
				"enum":        []any{"mcq", "text"},
				"description": "Question kind: multiple choice or free text",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options for mcq questions. Empty array for text questions.",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer. For mcq: the exact text of the correct option.",
			},
		},
		"required":             []any{"type", "question", "options", "answer"},
		"additionalProperties": false,
	}
}

// CourseSchema defines the JSON schema for LLM course generation responses.
var CourseSchema = &llm.Schema{
	Name:        "learnai-course",
	Description: "A complete self-study course with subtopics, quizzes, and flashcards",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type":        "string",
				"description": "The course topic as a short title",
			},
			"topicIntro": map[string]any{
				"type":        "string",
				"description": "An engaging introduction to the topic, 2-3 paragraphs",
			},
			"realLifeExample": map[string]any{
				"type":        "string",
				"description": "A concrete real-world example motivating the topic",
			},
			"subtopics": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Subtopic title",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A thorough explanation of the subtopic, several paragraphs",
						},
						"flashcardPoints": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Key points to remember, one per flashcard",
						},
						"quiz": map[string]any{
							"type":        "array",
							"items":       questionDef(),
							"description": "Quiz questions covering this subtopic",
						},
					},
					"required":             []any{"name", "explanation", "flashcardPoints", "quiz"},
					"additionalProperties": false,
				},
				"description": "Ordered subtopics building up the topic",
			},
			"finalQuiz": map[string]any{
				"type":        "array",
				"items":       questionDef(),
				"description": "Final quiz questions spanning all subtopics",
			},
		},
		"required":             []any{"topic", "topicIntro", "realLifeExample", "subtopics", "finalQuiz"},
		"additionalProperties": false,
	},
}
