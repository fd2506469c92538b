package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnai/internal/quizlog"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		eng, st, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		courseID, _ := cmd.Flags().GetString("course")

		var attempts []quizlog.Attempt
		if courseID != "" {
			attempts = eng.AttemptsByCourse(courseID)
			if len(attempts) > limit {
				attempts = attempts[len(attempts)-limit:]
			}
		} else {
			attempts = eng.RecentAttempts(limit)
		}
		if len(attempts) == 0 {
			fmt.Println("No quiz attempts yet.")
			return nil
		}

		fmt.Printf("%-19s  %-36s  %-10s  %-6s  %s\n",
			"Timestamp", "Course", "Quiz", "Score", "Result")
		for _, a := range attempts {
			quiz := "final"
			if !a.IsFinalQuiz() {
				quiz = fmt.Sprintf("subtopic %d", *a.SubtopicIndex)
			}
			result := "failed"
			if a.Passed {
				result = "passed"
			}
			ts := time.UnixMilli(a.Timestamp).Local().Format("2006-01-02 15:04:05")
			fmt.Printf("%-19s  %-36s  %-10s  %5d%%  %s\n",
				ts, a.CourseID, quiz, a.Score, result)
		}

		if courseID != "" {
			s := eng.StatsByCourse(courseID)
			fmt.Printf("\n%d attempts, %d passed, avg score %d%%\n",
				s.TotalAttempts, s.Passed, s.AverageScore)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
	historyCmd.Flags().StringP("course", "c", "", "Only show attempts for this course id")
}
