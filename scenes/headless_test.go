package scenes

import (
	"strings"
	"testing"

	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/level"
	"github.com/automoto/foolrunner/storage"
	"github.com/automoto/foolrunner/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spikeRun = `
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,9,0,0,0,0,0,0,0,4,4,0,0,0,0,0,0,0,0
1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1
`

type recorderStub struct {
	runs []storage.Run
	best float64
}

func (r *recorderStub) RecordRun(run storage.Run) (int64, error) {
	r.runs = append(r.runs, run)
	return int64(len(r.runs)), nil
}

func (r *recorderStub) BestDistance(string) (float64, error) { return r.best, nil }

func newSession(t *testing.T, rec systems.RunRecorder) *Session {
	t.Helper()
	lvl, err := level.ParseCSV("spikes", strings.NewReader(spikeRun), 32)
	require.NoError(t, err)
	return &Session{
		Config:   cfg.Default(),
		Input:    cfg.DefaultInput(),
		Levels:   []*level.Level{lvl},
		Recorder: rec,
	}
}

func TestHeadlessRunsIntoSpikes(t *testing.T) {
	rec := &recorderStub{best: 1}
	script, err := systems.ParseScript("600:idle")
	require.NoError(t, err)

	h, err := NewHeadless(newSession(t, rec), 0, script, 1.0/60)
	require.NoError(t, err)

	var death StepReport
	for i := 0; i < 120; i++ {
		r := h.Step()
		if r.Cause != "" {
			death = r
			break
		}
		assert.Equal(t, cfg.StatePlaying, r.State)
	}
	require.NotZero(t, death.Step, "auto-run reaches the spikes")
	assert.Equal(t, cfg.StateDead, death.State)
	assert.Equal(t, "hazard", death.Cause)
	assert.Zero(t, death.VX, "killed bodies stop")

	require.Len(t, rec.runs, 1)
	assert.Equal(t, "spikes", rec.runs[0].Level)
	assert.Equal(t, "hazard", rec.runs[0].Cause)
	assert.Positive(t, rec.runs[0].Distance)

	next := h.Step()
	assert.Equal(t, cfg.StatePlaying, next.State, "respawned on the following step")
	assert.Empty(t, next.Cause)
	assert.Less(t, next.X, death.X)
}

func TestHeadlessJumpClearsSpikes(t *testing.T) {
	// Jump two tiles before the spikes and keep holding it.
	script, err := systems.ParseScript("15:idle,40:jump,200:idle")
	require.NoError(t, err)

	h, err := NewHeadless(newSession(t, nil), 0, script, 1.0/60)
	require.NoError(t, err)

	sum := h.Run(40, nil)
	assert.Equal(t, 40, sum.Steps)
	assert.Zero(t, sum.Deaths)
	assert.Positive(t, sum.Furthest)
}

func TestHeadlessRejectsBadStep(t *testing.T) {
	script, err := systems.ParseScript("1:idle")
	require.NoError(t, err)
	_, err = NewHeadless(newSession(t, nil), 0, script, 0)
	assert.Error(t, err)
}

func TestSessionLevels(t *testing.T) {
	s := newSession(t, &recorderStub{best: 7.5})
	assert.Equal(t, []string{"spikes"}, s.LevelNames())
	assert.Equal(t, 0, s.LevelIndex("missing"))
	assert.Equal(t, 7.5, s.BestDistance("spikes"))

	s.Recorder = nil
	assert.Zero(t, s.BestDistance("spikes"))
}
