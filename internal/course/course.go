// Package course holds the course model and the registry of known courses.
//
// Courses arrive fully formed from the content generator and are mutated by
// whole-value replacement: callers always supply a complete updated Course,
// never a partial patch. The JSON tags preserve the original storage format.
package course

// QuestionKind distinguishes multiple-choice from free-text questions.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "mcq"
	KindFreeText       QuestionKind = "text"
)

// Question is a single quiz question, immutable once authored.
type Question struct {
	ID            int          `json:"id"`
	Kind          QuestionKind `json:"type"`
	Prompt        string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"answer"`
}

// Subtopic is one teachable unit within a course. Completed and QuizPassed
// are the only fields mutated after authoring; both start false.
type Subtopic struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Explanation     string     `json:"explanation"`
	FlashcardPoints []string   `json:"flashcardPoints"`
	Quiz            []Question `json:"quiz"`
	Completed       bool       `json:"completed"`
	QuizPassed      bool       `json:"quizPassed"`
}

// Course is a generated course. CurrentSubtopic always indexes into
// Subtopics; FinalQuizCompleted flips once when the final quiz is passed.
type Course struct {
	ID                 string     `json:"id"`
	Topic              string     `json:"topic"`
	TopicIntro         string     `json:"topicIntro"`
	RealLifeExample    string     `json:"realLifeExample"`
	Subtopics          []Subtopic `json:"subtopics"`
	FinalQuiz          []Question `json:"finalQuiz"`
	CurrentSubtopic    int        `json:"currentSubtopic"`
	FinalQuizCompleted bool       `json:"finalQuizCompleted"`
	CreatedAt          int64      `json:"createdAt"`
}

// Current returns the subtopic at the current position.
func (c *Course) Current() *Subtopic {
	return &c.Subtopics[c.CurrentSubtopic]
}

// AllSubtopicsCompleted reports whether every subtopic has been completed
// and its quiz passed.
func (c *Course) AllSubtopicsCompleted() bool {
	for _, s := range c.Subtopics {
		if !s.Completed || !s.QuizPassed {
			return false
		}
	}
	return true
}

// ReadyForFinalQuiz reports whether the final quiz is unlocked: every
// subtopic done, final quiz not yet passed.
func (c *Course) ReadyForFinalQuiz() bool {
	return c.AllSubtopicsCompleted() && !c.FinalQuizCompleted
}

// AdvanceSubtopic moves to the next subtopic. Returns false without moving
// when already at the last one.
func (c *Course) AdvanceSubtopic() bool {
	if c.CurrentSubtopic >= len(c.Subtopics)-1 {
		return false
	}
	c.CurrentSubtopic++
	return true
}

// CompletedCount returns the number of subtopics that are fully done
// (completed and quiz passed).
func (c *Course) CompletedCount() int {
	n := 0
	for _, s := range c.Subtopics {
		if s.Completed && s.QuizPassed {
			n++
		}
	}
	return n
}
