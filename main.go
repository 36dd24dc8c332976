// foolrunner is an auto-running 2D platformer.
//
// Usage:
//
//	foolrunner                 - Open the game window (same as play)
//	foolrunner play            - Open the game window
//	foolrunner simulate        - Run a level headless from an input script
//	foolrunner levels          - List and validate the available levels
//	foolrunner scores [level]  - Show the longest recorded runs
//
// Global flags:
//
//	--config <path>     - YAML configuration overlaid on the defaults
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--db <path>         - Run history database (default: storage.path from config)
//	--levels <dir>      - Load levels from a directory instead of the built-in set
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagLogLevel  string
	flagDBPath    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "foolrunner",
	Short: "An auto-running platformer",
	Long: `foolrunner is a 2D platformer where the runner never stops. Jump over
spikes and gaps and see how far you get.

Available commands:
  play      - Open the game window (default)
  simulate  - Run a level headless from an input script
  levels    - List and validate levels
  scores    - View the run history

Examples:
  foolrunner
  foolrunner play --level 02_caves
  foolrunner simulate --script "30:idle,20:jump,120:idle" --steps 300
  foolrunner levels --levels ./my-levels
  foolrunner scores 01_meadow`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger(flagLogLevel)
	},
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the run history database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of .csv/.tmx levels")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Level to start (skips the menu)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
}
