package coursegen

// Config controls the shape and budget of generated courses.
type Config struct {
	// Subtopics is how many subtopics a course gets.
	Subtopics int

	// QuizQuestions is the question count for each subtopic quiz.
	QuizQuestions int

	// FinalQuizQuestions is the question count for the final quiz.
	FinalQuizQuestions int

	// Flashcards is how many flashcard points each subtopic carries.
	Flashcards int

	// MaxTokens is the token budget for the LLM response. Courses are
	// large; budget accordingly.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the standard course shape.
func DefaultConfig() Config {
	return Config{
		Subtopics:          5,
		QuizQuestions:      10,
		FinalQuizQuestions: 20,
		Flashcards:         5,
		MaxTokens:          16384,
		Temperature:        0.7,
	}
}
