package main

import (
	"fmt"

	"github.com/automoto/foolrunner/scenes"
	"github.com/automoto/foolrunner/systems"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagSimLevel    string
	flagScript      string
	flagSteps       int
	flagStep        float64
	flagRecord      bool
	flagSummaryOnly bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a level headless from an input script",
	Long: `Steps the game without a window at a fixed time step, reading input
from a script of "frames:action+action" segments. Actions are left, right,
jump and idle. Every death respawns immediately.

Examples:
  foolrunner simulate --steps 600
  foolrunner simulate --level 02_caves --script "20:idle,15:jump,40:right"`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimLevel, "level", "", "Level to run (default: first)")
	simulateCmd.Flags().StringVar(&flagScript, "script", "1:idle", "Input script")
	simulateCmd.Flags().IntVar(&flagSteps, "steps", 600, "Number of updates")
	simulateCmd.Flags().Float64Var(&flagStep, "dt", 1.0/60, "Seconds per update")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Store deaths in the run history")
	simulateCmd.Flags().BoolVar(&flagSummaryOnly, "summary", false, "Only print the summary")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	if !flagRecord {
		c.Storage.Disabled = true
	}
	script, err := systems.ParseScript(flagScript)
	if err != nil {
		return err
	}

	session, closeSession, err := newSession(c, nil)
	if err != nil {
		return err
	}
	defer closeSession()

	index, err := levelIndex(session.Levels, flagSimLevel)
	if err != nil {
		return err
	}
	h, err := scenes.NewHeadless(session, index, script, flagStep)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sum := h.Run(flagSteps, func(r scenes.StepReport) {
		if r.Cause != "" {
			log.Info("died", "step", r.Step, "cause", r.Cause, "distance", r.Distance)
		}
		if !flagSummaryOnly {
			fmt.Fprintln(out, r)
		}
	})
	fmt.Fprintf(out, "level=%s steps=%d deaths=%d furthest=%.2f\n",
		session.Levels[index].Name, sum.Steps, sum.Deaths, sum.Furthest)
	return nil
}
