package main

import (
	"fmt"
	"io/fs"
	"path"

	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/level"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List and validate levels",
	Long: `Loads every .csv and .tmx level and reports its size, hazards and spawn.
Invalid files are listed with the reason and make the command fail.

Examples:
  foolrunner levels
  foolrunner levels --levels ./my-levels`,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	return listLevels(cmd, c)
}

func listLevels(cmd *cobra.Command, c cfg.Config) error {
	fsys, dir := levelSource(c)
	var files []string
	for _, pattern := range []string{"*.csv", "*.tmx"} {
		m, err := fs.Glob(fsys, path.Join(dir, pattern))
		if err != nil {
			return err
		}
		files = append(files, m...)
	}
	out := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintln(out, "No levels found.")
		return fmt.Errorf("no levels in %s", dir)
	}

	// Print header
	fmt.Fprintf(out, "  %-16s  %-9s  %-7s  %s\n", "Level", "Size", "Hazards", "Spawn")
	fmt.Fprintf(out, "  %-16s  %-9s  %-7s  %s\n", "-----", "----", "-------", "-----")

	invalid := 0
	for _, f := range files {
		lvl, err := level.Load(fsys, f, float64(c.Physics.TileSize))
		if err != nil {
			invalid++
			fmt.Fprintf(out, "  %-16s  invalid: %v\n", path.Base(f), err)
			continue
		}
		size := fmt.Sprintf("%dx%d", lvl.Grid.Cols(), lvl.Grid.Rows())
		fmt.Fprintf(out, "  %-16s  %-9s  %-7d  (%d,%d)\n", lvl.Name, size, len(lvl.Hazards), lvl.Spawn.Col, lvl.Spawn.Row)
	}
	if invalid > 0 {
		return fmt.Errorf("%d invalid level(s)", invalid)
	}
	return nil
}
