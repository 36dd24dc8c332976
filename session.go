package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/foolrunner/assets"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/level"
	"github.com/automoto/foolrunner/scenes"
	"github.com/automoto/foolrunner/storage"
	"github.com/charmbracelet/log"
)

const appName = "foolrunner"

// setupLogger installs the process-wide logger at the named level.
func setupLogger(levelName string) error {
	lvl, err := log.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", levelName, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          appName,
		Level:           lvl,
	})
	log.SetDefault(logger)
	return nil
}

// loadConfig reads --config and applies the flags that override it.
func loadConfig() (cfg.Config, error) {
	c, err := cfg.Load(flagConfig)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if flagDBPath != "" {
		c.Storage.Path = flagDBPath
	}
	if flagLevelsDir != "" {
		c.Level.Dir = flagLevelsDir
	}
	return c, nil
}

// levelSource returns the filesystem and directory levels are read from.
func levelSource(c cfg.Config) (fs.FS, string) {
	if c.Level.Dir == "" {
		return assets.Levels(), assets.LevelsDir
	}
	return os.DirFS(c.Level.Dir), "."
}

func loadLevels(c cfg.Config) ([]*level.Level, error) {
	fsys, dir := levelSource(c)
	levels, err := level.LoadAll(fsys, dir, float64(c.Physics.TileSize))
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	return levels, nil
}

// openStore opens the run history unless it is disabled. Failure to open
// leaves the game playable without history.
func openStore(c cfg.Config) *storage.Store {
	if c.Storage.Disabled {
		return nil
	}
	store, err := storage.Open(c.Storage.Path)
	if err != nil {
		log.Warn("run history unavailable", "path", c.Storage.Path, "error", err)
		return nil
	}
	return store
}

// newSession loads everything a scene needs. The returned close function
// releases the store.
func newSession(c cfg.Config, machine *cfg.StateMachine) (*scenes.Session, func(), error) {
	levels, err := loadLevels(c)
	if err != nil {
		return nil, nil, err
	}
	s := &scenes.Session{
		Config:  c,
		Input:   cfg.DefaultInput(),
		Levels:  levels,
		Machine: machine,
	}
	closeFn := func() {}
	if store := openStore(c); store != nil {
		s.Recorder = store
		closeFn = func() {
			if err := store.Close(); err != nil {
				log.Warn("cannot close run history", "error", err)
			}
		}
	}
	return s, closeFn, nil
}

func levelIndex(levels []*level.Level, name string) (int, error) {
	lvl, err := level.Find(levels, name)
	if err != nil {
		return 0, err
	}
	for i, l := range levels {
		if l == lvl {
			return i, nil
		}
	}
	return 0, nil
}
