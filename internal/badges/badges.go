// Package badges evaluates the fixed achievement catalog against the
// progress snapshot.
//
// A badge unlocks at most once: evaluation stamps UnlockedAt the first time
// its criterion holds and never clears or re-checks it afterwards, so a
// later streak reset cannot revoke a streak badge.
package badges

import (
	"time"

	"github.com/abhisek/learnai/internal/progress"
)

// Badge ids, fixed catalog of eight.
const (
	FirstStep       = "first-step"
	StreakMaster    = "streak-master"
	QuizAce         = "quiz-ace"
	MemoryKing      = "memory-king"
	CourseConqueror = "course-conqueror"
	Perfectionist   = "perfectionist"
	Scholar         = "scholar"
	Dedication      = "dedication"
)

// Badge is one achievement. UnlockedAt is Unix milliseconds, zero while
// locked. JSON tags preserve the original storage format.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Criteria    string `json:"criteria"`
	UnlockedAt  int64  `json:"unlockedAt,omitempty"`
}

// Unlocked reports whether the badge has been earned.
func (b *Badge) Unlocked() bool {
	return b.UnlockedAt != 0
}

// Catalog returns the default badge set, all locked.
func Catalog() []Badge {
	return []Badge{
		{
			ID:          FirstStep,
			Name:        "First Step",
			Description: "Completed your first subtopic",
			Emoji:       "📘",
			Criteria:    "Complete 1 subtopic",
		},
		{
			ID:          StreakMaster,
			Name:        "Streak Master",
			Description: "5-day learning streak",
			Emoji:       "🔥",
			Criteria:    "Maintain a 5-day learning streak",
		},
		{
			ID:          QuizAce,
			Name:        "Quiz Ace",
			Description: "Scored 100% on any quiz",
			Emoji:       "💯",
			Criteria:    "Score 100% on any quiz",
		},
		{
			ID:          MemoryKing,
			Name:        "Memory King",
			Description: "Reviewed 50 flashcards",
			Emoji:       "🧠",
			Criteria:    "Review 50 flashcards",
		},
		{
			ID:          CourseConqueror,
			Name:        "Course Conqueror",
			Description: "Completed entire course + final quiz",
			Emoji:       "🏅",
			Criteria:    "Complete a full course",
		},
		{
			ID:          Perfectionist,
			Name:        "Perfectionist",
			Description: "Scored 100% on 5 quizzes",
			Emoji:       "⭐",
			Criteria:    "Score 100% on 5 different quizzes",
		},
		{
			ID:          Scholar,
			Name:        "Scholar",
			Description: "Completed 3 courses",
			Emoji:       "🎓",
			Criteria:    "Complete 3 full courses",
		},
		{
			ID:          Dedication,
			Name:        "Dedication",
			Description: "10-day learning streak",
			Emoji:       "💪",
			Criteria:    "Maintain a 10-day learning streak",
		},
	}
}

// Evaluate checks every locked badge against the progress snapshot and
// stamps the ones whose criterion now holds. Pure with respect to its
// inputs: the given slice is not mutated. Returns the updated set and the
// badges newly unlocked by this call.
func Evaluate(p progress.UserProgress, set []Badge, now time.Time) (updated, unlocked []Badge) {
	updated = make([]Badge, len(set))
	copy(updated, set)

	for i := range updated {
		if updated[i].Unlocked() {
			continue
		}
		if criterionMet(updated[i].ID, p) {
			updated[i].UnlockedAt = now.UnixMilli()
			unlocked = append(unlocked, updated[i])
		}
	}
	return updated, unlocked
}

func criterionMet(id string, p progress.UserProgress) bool {
	switch id {
	case FirstStep:
		return p.TotalSubtopicsCompleted >= 1
	case StreakMaster:
		return p.CurrentStreak >= 5
	case QuizAce:
		return p.PerfectQuizzes >= 1
	case MemoryKing:
		return p.TotalFlashcardsReviewed >= 50
	case CourseConqueror:
		return p.CoursesCompleted >= 1
	case Perfectionist:
		return p.PerfectQuizzes >= 5
	case Scholar:
		return p.CoursesCompleted >= 3
	case Dedication:
		return p.CurrentStreak >= 10
	default:
		return false
	}
}

// UnlockedOf filters the earned badges from a set.
func UnlockedOf(set []Badge) []Badge {
	var out []Badge
	for _, b := range set {
		if b.Unlocked() {
			out = append(out, b)
		}
	}
	return out
}
