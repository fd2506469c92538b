package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all courses, attempts, progress, and badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if force, _ := cmd.Flags().GetBool("force"); !force {
			fmt.Print("This deletes all learner data. Type 'yes' to continue: ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		eng, st, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := eng.Reset(ctx); err != nil {
			return err
		}
		fmt.Println("All learner data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
}
