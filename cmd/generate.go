package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnai/internal/coursegen"
	"github.com/abhisek/learnai/internal/llm"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a new course and make it active",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		topic := strings.Join(args, " ")

		eng, st, err := openEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, newLogger(cmd))
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		cfg := coursegen.DefaultConfig()
		if n, _ := cmd.Flags().GetInt("subtopics"); n > 0 {
			cfg.Subtopics = n
		}

		fmt.Printf("Generating course on %q with %s...\n", topic, provider.ModelID())

		c, err := coursegen.New(provider, cfg).Generate(ctx, topic)
		if err != nil {
			return fmt.Errorf("generate course: %w", err)
		}

		if err := eng.SetActiveCourse(ctx, c); err != nil {
			return fmt.Errorf("save course: %w", err)
		}

		fmt.Printf("\n%s\n", c.Topic)
		fmt.Printf("  %d subtopics, %d final quiz questions\n", len(c.Subtopics), len(c.FinalQuiz))
		for i, sub := range c.Subtopics {
			fmt.Printf("  %d. %s\n", i+1, sub.Name)
		}
		fmt.Println("\nCourse saved and set as active.")
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("subtopics", "s", 0, "Number of subtopics (default 5)")
}
