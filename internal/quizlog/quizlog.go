// Package quizlog keeps the append-only sequence of quiz attempts.
//
// Attempts are immutable records, independent of course lifecycle: they are
// never rewritten or deleted, and no validation ties them to a registered
// course.
package quizlog

// IncorrectQuestion records one wrong answer within an attempt.
type IncorrectQuestion struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
}

// Attempt is an immutable record of one quiz submission. A nil
// SubtopicIndex marks a final-quiz attempt.
type Attempt struct {
	CourseID           string              `json:"courseId"`
	SubtopicIndex      *int                `json:"subtopicIndex,omitempty"`
	Score              int                 `json:"score"`
	Passed             bool                `json:"passed"`
	Timestamp          int64               `json:"timestamp"`
	IncorrectQuestions []IncorrectQuestion `json:"incorrectQuestions,omitempty"`
}

// IsFinalQuiz reports whether the attempt was on a course's final quiz.
func (a *Attempt) IsFinalQuiz() bool {
	return a.SubtopicIndex == nil
}

// Log is the ordered attempt sequence. Oldest first.
type Log struct {
	attempts []Attempt
}

// NewLog builds a log from previously persisted attempts.
func NewLog(attempts []Attempt) *Log {
	return &Log{attempts: attempts}
}

// Record appends an attempt. No deduplication.
func (l *Log) Record(a Attempt) {
	l.attempts = append(l.attempts, a)
}

// All returns every attempt in recording order.
func (l *Log) All() []Attempt {
	out := make([]Attempt, len(l.attempts))
	copy(out, l.attempts)
	return out
}

// Len returns the number of recorded attempts.
func (l *Log) Len() int {
	return len(l.attempts)
}

// ByCourse returns the attempts for one course, in recording order.
func (l *Log) ByCourse(courseID string) []Attempt {
	var out []Attempt
	for _, a := range l.attempts {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out
}

// ForSubtopic returns the attempts for one subtopic quiz of a course.
func (l *Log) ForSubtopic(courseID string, index int) []Attempt {
	var out []Attempt
	for _, a := range l.attempts {
		if a.CourseID == courseID && a.SubtopicIndex != nil && *a.SubtopicIndex == index {
			out = append(out, a)
		}
	}
	return out
}

// FinalQuizAttempts returns the final-quiz attempts for one course.
func (l *Log) FinalQuizAttempts(courseID string) []Attempt {
	var out []Attempt
	for _, a := range l.attempts {
		if a.CourseID == courseID && a.IsFinalQuiz() {
			out = append(out, a)
		}
	}
	return out
}

// Recent returns the most recent n attempts, newest first.
func (l *Log) Recent(n int) []Attempt {
	if n > len(l.attempts) {
		n = len(l.attempts)
	}
	out := make([]Attempt, 0, n)
	for i := len(l.attempts) - 1; i >= len(l.attempts)-n; i-- {
		out = append(out, l.attempts[i])
	}
	return out
}
