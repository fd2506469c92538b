// Package progress owns the cumulative learner state: experience, level,
// streaks, and per-category counters.
//
// All mutation goes through Apply, keyed by a fixed action taxonomy, plus
// RecomputeStreak which runs once per process activation. Every counter is
// monotonically non-decreasing except CurrentStreak, which resets to 1
// after a missed day.
package progress

import "fmt"

// Action identifies one kind of learning event.
type Action string

const (
	ActionCompleteSubtopic Action = "complete_subtopic"
	ActionPassQuiz         Action = "pass_quiz"
	ActionCompleteCourse   Action = "complete_course"
	ActionReviewFlashcard  Action = "review_flashcard"
	ActionStreakBonus      Action = "streak_bonus"
)

// XP awards per action.
const (
	XPSubtopic     = 50
	XPQuizPerfect  = 100
	XPQuizPass     = 75
	XPCourse       = 200
	XPFlashcard    = 5
	XPPerStreakDay = 10 // streak_bonus pays CurrentStreak times this
	PerfectScore   = 100
	XPPerLevel     = 100
)

// ActionData carries per-action parameters. Only pass_quiz reads it.
type ActionData struct {
	Score int // percentage 0-100
}

// Result reports the effect of one Apply call.
type Result struct {
	XPGained int
	Level    int
}

// UserProgress is the singleton learner state. JSON tags preserve the
// original storage format.
type UserProgress struct {
	XP                      int    `json:"xp"`
	Level                   int    `json:"level"`
	CurrentStreak           int    `json:"currentStreak"`
	LongestStreak           int    `json:"longestStreak"`
	LastLoginDate           string `json:"lastLoginDate"`
	TotalSubtopicsCompleted int    `json:"totalSubtopicsCompleted"`
	TotalQuizzesPassed      int    `json:"totalQuizzesPassed"`
	TotalFlashcardsReviewed int    `json:"totalFlashcardsReviewed"`
	PerfectQuizzes          int    `json:"perfectQuizzes"`
	CoursesCompleted        int    `json:"coursesCompleted"`
}

// Default returns the zero-valued progress a fresh user starts with.
func Default() UserProgress {
	return UserProgress{Level: 1}
}

// Apply mutates the progress for one action and recomputes the level.
// Unknown actions are rejected and leave the state untouched.
func (p *UserProgress) Apply(action Action, data ActionData) (Result, error) {
	xpGained := 0

	switch action {
	case ActionCompleteSubtopic:
		p.TotalSubtopicsCompleted++
		xpGained = XPSubtopic
	case ActionPassQuiz:
		p.TotalQuizzesPassed++
		if data.Score == PerfectScore {
			p.PerfectQuizzes++
			xpGained = XPQuizPerfect
		} else {
			xpGained = XPQuizPass
		}
	case ActionCompleteCourse:
		p.CoursesCompleted++
		xpGained = XPCourse
	case ActionReviewFlashcard:
		p.TotalFlashcardsReviewed++
		xpGained = XPFlashcard
	case ActionStreakBonus:
		xpGained = p.CurrentStreak * XPPerStreakDay
	default:
		return Result{}, fmt.Errorf("unknown progress action: %q", action)
	}

	p.XP += xpGained
	p.Level = LevelForXP(p.XP)

	return Result{XPGained: xpGained, Level: p.Level}, nil
}

// XPForLevel returns the cumulative XP required to hold the given level.
func XPForLevel(level int) int {
	return level * XPPerLevel
}

// LevelForXP recomputes the level from total XP: start at 1, increment
// while xp clears the next threshold, then step back. The result is 0 for
// xp < 100 — the stored level can legitimately sit at 0 until the first
// 100 XP; presentation clamps at 1.
func LevelForXP(xp int) int {
	level := 1
	for xp >= XPForLevel(level) {
		level++
	}
	return level - 1
}
