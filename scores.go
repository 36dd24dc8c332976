package main

import (
	"fmt"

	"github.com/automoto/foolrunner/storage"
	"github.com/spf13/cobra"
)

var (
	flagScoreLimit int
	flagClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show the longest recorded runs",
	Long: `Displays the longest runs, optionally for one level only.

Examples:
  foolrunner scores
  foolrunner scores 01_meadow --limit 5
  foolrunner scores 01_meadow --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history of the level")
}

func runScores(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	levelName := ""
	if len(args) == 1 {
		levelName = args[0]
	}

	// Open run storage
	store, err := storage.Open(c.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClear {
		if levelName == "" {
			return fmt.Errorf("--clear needs a level")
		}
		n, err := store.Count(levelName)
		if err != nil {
			return err
		}
		if err := store.Clear(levelName); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d run(s) on %s.\n", n, levelName)
		return nil
	}

	runs, err := store.TopRuns(levelName, flagScoreLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	return printRuns(cmd, levelName, runs)
}

func printRuns(cmd *cobra.Command, levelName string, runs []storage.Run) error {
	out := cmd.OutOrStdout()
	title := "all levels"
	if levelName != "" {
		title = levelName
	}
	fmt.Fprintf(out, "Longest runs - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %-7s  %-6s  %s\n", "Rank", "Level", "Distance", "Time", "Cause", "Date")
	fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %-7s  %-6s  %s\n", "----", "-----", "--------", "----", "-----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-16s  %-8.2f  %-7s  %-6s  %s\n",
			i+1, r.Level, r.Distance, fmt.Sprintf("%.1fs", r.Duration), r.Cause, dateStr)
	}
	return nil
}
