package quizlog

import "math"

// Stats aggregates the attempt log for display.
type Stats struct {
	TotalAttempts int
	Passed        int
	AverageScore  int // rounded mean of all attempt scores
}

// Stats computes aggregates over every recorded attempt.
func (l *Log) Stats() Stats {
	return statsOf(l.attempts)
}

// StatsByCourse computes aggregates over one course's attempts.
func (l *Log) StatsByCourse(courseID string) Stats {
	return statsOf(l.ByCourse(courseID))
}

func statsOf(attempts []Attempt) Stats {
	s := Stats{TotalAttempts: len(attempts)}
	if len(attempts) == 0 {
		return s
	}
	sum := 0
	for _, a := range attempts {
		sum += a.Score
		if a.Passed {
			s.Passed++
		}
	}
	s.AverageScore = int(math.Round(float64(sum) / float64(len(attempts))))
	return s
}
