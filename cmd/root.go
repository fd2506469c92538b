// Package cmd wires the CLI commands around the progression engine.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/learnai/internal/engine"
	"github.com/abhisek/learnai/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learnai",
	Short: "AI course generator and study tracker",
	Long:  "LearnAI — generate self-study courses on any topic and track XP, streaks, and badges as you learn.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initEnv)

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNAI_DB env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// initEnv loads a .env file when present. Missing files are fine; real
// environment variables win over file values.
func initEnv() {
	_ = godotenv.Load()
}

// newLogger builds the process logger. Debug level when --verbose is set.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LEARNAI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openEngine opens the store and loads the engine on top of it. The
// caller must Close the returned store.
func openEngine(ctx context.Context, cmd *cobra.Command) (*engine.Engine, *store.SQLite, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	eng, err := engine.New(ctx, st, engine.Options{Logger: newLogger(cmd)})
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load engine: %w", err)
	}
	return eng, st, nil
}
