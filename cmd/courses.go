package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List courses, switch or clear the active one",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		eng, st, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			if err := eng.ClearActiveCourse(ctx); err != nil {
				return err
			}
			fmt.Println("Active course cleared.")
			return nil
		}

		if id, _ := cmd.Flags().GetString("switch"); id != "" {
			if err := eng.SwitchActiveCourse(ctx, id); err != nil {
				return err
			}
			if a := eng.ActiveCourse(); a != nil && a.ID == id {
				fmt.Printf("Switched to %q.\n", a.Topic)
			} else {
				fmt.Printf("No course with id %s.\n", id)
			}
			return nil
		}

		courses := eng.Courses()
		if len(courses) == 0 {
			fmt.Println("No courses yet. Run: learnai generate <topic>")
			return nil
		}

		active := eng.ActiveCourse()
		for _, c := range courses {
			mark := " "
			if active != nil && active.ID == c.ID {
				mark = "*"
			}
			status := fmt.Sprintf("%d/%d subtopics", c.CompletedCount(), len(c.Subtopics))
			if c.FinalQuizCompleted {
				status = "completed"
			}
			created := time.UnixMilli(c.CreatedAt).Format("2006-01-02")
			fmt.Printf("%s %-36s  %-28s  %-14s  %s\n", mark, c.ID, c.Topic, status, created)
		}
		return nil
	},
}

func init() {
	coursesCmd.Flags().String("switch", "", "Make the course with this id active")
	coursesCmd.Flags().Bool("clear", false, "Clear the active course")
}
