package progress

import "time"

// DateLayout is the calendar-date format used for LastLoginDate.
// Day granularity, device-local time, no timezone normalization.
const DateLayout = "2006-01-02"

// RecomputeStreak compares the last login date to now's calendar date and
// continues, resets, or leaves the streak. Called once per process
// activation, not per action. Returns whether anything changed.
func (p *UserProgress) RecomputeStreak(now time.Time) bool {
	today := now.Format(DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)

	switch p.LastLoginDate {
	case today:
		// Already counted today.
		return false
	case yesterday:
		p.CurrentStreak++
		if p.CurrentStreak > p.LongestStreak {
			p.LongestStreak = p.CurrentStreak
		}
	default:
		// Gap of two or more days, or first ever activation.
		p.CurrentStreak = 1
		if p.LongestStreak < 1 {
			p.LongestStreak = 1
		}
	}
	p.LastLoginDate = today
	return true
}
