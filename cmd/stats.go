package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnai/internal/badges"
	"github.com/abhisek/learnai/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show XP, level, streaks, and badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		eng, st, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p := eng.Progress()
		level := progress.DisplayLevel(p.Level)
		into, span := p.LevelProgress()

		fmt.Printf("Level %d — %s\n", level, progress.LevelName(p.Level))
		fmt.Printf("XP:      %d (%d/%d into this level)\n", p.XP, into, span)
		fmt.Printf("Streak:  %d day(s), longest %d\n", p.CurrentStreak, p.LongestStreak)
		fmt.Println()
		fmt.Printf("Subtopics completed:  %d\n", p.TotalSubtopicsCompleted)
		fmt.Printf("Quizzes passed:       %d (%d perfect)\n", p.TotalQuizzesPassed, p.PerfectQuizzes)
		fmt.Printf("Flashcards reviewed:  %d\n", p.TotalFlashcardsReviewed)
		fmt.Printf("Courses completed:    %d\n", p.CoursesCompleted)

		qs := eng.Stats()
		if qs.TotalAttempts > 0 {
			fmt.Printf("\nQuiz attempts: %d (%d passed, avg score %d%%)\n",
				qs.TotalAttempts, qs.Passed, qs.AverageScore)
		}

		set := eng.Badges()
		earned := badges.UnlockedOf(set)
		fmt.Printf("\nBadges (%d/%d)\n", len(earned), len(set))
		fmt.Println(strings.Repeat("─", 48))
		for _, b := range set {
			mark := "  "
			if b.Unlocked() {
				mark = b.Emoji
			}
			fmt.Printf("%-2s %-18s %s\n", mark, b.Name, b.Criteria)
		}

		for _, b := range eng.ConsumeUnlocked() {
			fmt.Printf("\n%s New badge unlocked: %s!\n", b.Emoji, b.Name)
		}
		return nil
	},
}
