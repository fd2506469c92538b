package progress

import (
	"testing"
	"time"
)

var day = 24 * time.Hour

func TestRecomputeStreakFirstActivation(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	p := Default()

	if !p.RecomputeStreak(now) {
		t.Fatal("first activation reported no change")
	}
	if p.CurrentStreak != 1 || p.LongestStreak != 1 {
		t.Errorf("streaks = %d/%d, want 1/1", p.CurrentStreak, p.LongestStreak)
	}
	if p.LastLoginDate != "2026-03-10" {
		t.Errorf("LastLoginDate = %q, want 2026-03-10", p.LastLoginDate)
	}
}

func TestRecomputeStreakSameDayNoOp(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	p := Default()
	p.RecomputeStreak(now)

	before := p
	if p.RecomputeStreak(now.Add(5 * time.Hour)) {
		t.Error("second activation on the same day reported a change")
	}
	if p != before {
		t.Errorf("state changed on same-day activation: %+v", p)
	}
}

func TestRecomputeStreakConsecutiveDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	p := Default()

	p.RecomputeStreak(now)
	p.RecomputeStreak(now.Add(day))
	p.RecomputeStreak(now.Add(2 * day))

	if p.CurrentStreak != 3 || p.LongestStreak != 3 {
		t.Errorf("streaks = %d/%d, want 3/3", p.CurrentStreak, p.LongestStreak)
	}
}

func TestRecomputeStreakGapResets(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	p := Default()

	p.RecomputeStreak(now)
	p.RecomputeStreak(now.Add(day))
	p.RecomputeStreak(now.Add(2 * day))

	// Two-day gap: current resets, longest survives.
	if !p.RecomputeStreak(now.Add(5 * day)) {
		t.Fatal("post-gap activation reported no change")
	}
	if p.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1 after gap", p.CurrentStreak)
	}
	if p.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3 preserved", p.LongestStreak)
	}
}

func TestRecomputeStreakLongestNeverDecreases(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	p := Default()
	p.LongestStreak = 9
	p.LastLoginDate = "2026-02-01"

	p.RecomputeStreak(now)
	if p.LongestStreak != 9 {
		t.Errorf("LongestStreak = %d, want 9", p.LongestStreak)
	}
}
