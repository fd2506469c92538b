package coursegen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert educator creating a complete self-study course on a topic the learner chose.

Rules:
- Break the topic into the requested number of subtopics, ordered from fundamentals to advanced.
- Each subtopic gets a thorough explanation a motivated beginner can follow, plus flashcard points capturing the facts worth memorizing.
- Quiz questions must be answerable from the explanation alone. Mix "mcq" and "text" questions.
- "mcq" questions carry exactly 4 options where exactly one is correct; the answer is the exact text of the correct option. Distractors should reflect plausible misconceptions, not random values.
- "text" questions carry an empty options array; the answer is a short phrase a learner could reasonably type.
- The final quiz spans every subtopic and leans harder than the subtopic quizzes.
- Keep all content in plain text. No markdown, no LaTeX.`

// buildUserMessage constructs the user message for a topic and course shape.
func buildUserMessage(topic string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Subtopics: %d\n", cfg.Subtopics)
	fmt.Fprintf(&b, "Questions per subtopic quiz: %d\n", cfg.QuizQuestions)
	fmt.Fprintf(&b, "Final quiz questions: %d\n", cfg.FinalQuizQuestions)
	fmt.Fprintf(&b, "Flashcard points per subtopic: %d\n", cfg.Flashcards)

	return b.String()
}
