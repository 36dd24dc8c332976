package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/storage"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captured() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestSetupLogger(t *testing.T) {
	assert.NoError(t, setupLogger("debug"))
	assert.Error(t, setupLogger("loud"))
}

func TestBuiltInLevelsList(t *testing.T) {
	cmd, buf := captured()
	require.NoError(t, listLevels(cmd, cfg.Default()))
	assert.Contains(t, buf.String(), "01_meadow")
	assert.Contains(t, buf.String(), "02_caves")
}

func TestLevelsReportsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.csv"), []byte("9\n1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.csv"), []byte("0,0\n1,1\n"), 0o644))

	c := cfg.Default()
	c.Level.Dir = dir
	cmd, buf := captured()
	err := listLevels(cmd, c)
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "ok")
	assert.Regexp(t, `broken\.csv\s+invalid`, buf.String())
}

func TestLevelIndex(t *testing.T) {
	levels, err := loadLevels(cfg.Default())
	require.NoError(t, err)

	i, err := levelIndex(levels, "02_caves")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = levelIndex(levels, "")
	require.NoError(t, err)
	assert.Zero(t, i)

	_, err = levelIndex(levels, "nowhere")
	assert.Error(t, err)
}

func TestPrintRuns(t *testing.T) {
	cmd, buf := captured()
	require.NoError(t, printRuns(cmd, "01_meadow", nil))
	assert.Contains(t, buf.String(), "No runs recorded yet.")

	cmd, buf = captured()
	runs := []storage.Run{{Level: "01_meadow", Distance: 42.5, Duration: 7.3, Cause: "fell", CreatedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)}}
	require.NoError(t, printRuns(cmd, "", runs))
	out := buf.String()
	assert.Contains(t, out, "all levels")
	assert.Contains(t, out, "42.50")
	assert.Contains(t, out, "7.3s")
	assert.Contains(t, out, "2026-01-02 03:04")
}

func TestNewSessionWithoutHistory(t *testing.T) {
	c := cfg.Default()
	c.Storage.Disabled = true
	s, closeFn, err := newSession(c, nil)
	require.NoError(t, err)
	defer closeFn()
	assert.Nil(t, s.Recorder)
	assert.Len(t, s.Levels, 2)
}
