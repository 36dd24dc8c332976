package systems

import (
	"testing"

	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/hazard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepMovesRunnerAndTracksDistance(t *testing.T) {
	e := newTestECS(cfg.StatePlaying)
	player, ctrl, c := newTestWorld(t, e)
	startX := player.Body.Box.X

	e.AddSystem(NewUpdateClock(1.0 / 60))
	e.AddSystem(WithGameplayChecks(NewUpdatePlayer(ctrl)))
	e.AddSystem(WithGameplayChecks(NewUpdateCollisions(ctrl)))
	e.AddSystem(WithGameplayChecks(NewUpdateRun(len(c.Colors.Regions))))
	e.AddSystem(WithGameplayChecks(UpdateCamera))
	for i := 0; i < 10; i++ {
		e.Update()
	}

	assert.Greater(t, player.Body.Box.X, startX, "auto-run moves right")
	assert.True(t, player.Body.OnGround)
	assert.Zero(t, player.Pending.X, "collision consumes the pending move")

	runEntry, ok := components.Run.First(e.World)
	require.True(t, ok)
	tracker := components.Run.Get(runEntry).Tracker
	assert.InDelta(t, (player.Body.Box.X-startX)/32, tracker.Distance(), 1e-9)
	assert.InDelta(t, 10.0/60, tracker.Elapsed(), 1e-9)
}

func TestDeathAndRetry(t *testing.T) {
	e := newTestECS(cfg.StatePlaying)
	player, ctrl, c := newTestWorld(t, e)
	spawn := player.Body.Box
	rec := &recorderStub{}

	// Stand in the spikes.
	player.Body.Box.X = 10 * 32
	NewUpdateRun(len(c.Colors.Regions))(e)
	NewUpdateDeaths(rec)(e)

	assert.Equal(t, cfg.StateDead, CurrentState(e))
	assert.False(t, player.Body.Alive)
	assert.Equal(t, hazard.CauseHazard, player.Cause)
	require.Len(t, rec.runs, 1)
	assert.Equal(t, "hazard", rec.runs[0].Cause)
	over := GetOrCreateGameOver(e)
	assert.Equal(t, "hazard", over.Cause)
	assert.True(t, over.NewBest)

	sc := &sceneStub{}
	update := NewUpdateGameOver(c, ctrl, sc, func() interface{} { return "menu" })

	GetOrCreateClock(e).DT = 0.1
	press(e, cfg.ActionMenuSelect)
	update(e)
	assert.Equal(t, cfg.StateDead, CurrentState(e), "input waits for the fade")

	GetOrCreateClock(e).DT = 1
	press(e)
	update(e)
	assert.Equal(t, float32(1), over.Alpha)

	press(e, cfg.ActionMenuSelect)
	update(e)
	assert.Equal(t, cfg.StatePlaying, CurrentState(e))
	assert.True(t, player.Body.Alive)
	assert.Equal(t, spawn, player.Body.Box)
	assert.Equal(t, ctrl.DefaultRunSpeed(), player.Body.Vel.X)
	assert.Equal(t, hazard.CauseNone, player.Cause)
	assert.Empty(t, sc.scenes)
}

func TestGameOverToMenu(t *testing.T) {
	e := newTestECS(cfg.StatePlaying)
	player, ctrl, c := newTestWorld(t, e)
	player.Body.Box.Y = 10000 // Below the kill plane
	NewUpdateDeaths(nil)(e)
	require.Equal(t, cfg.StateDead, CurrentState(e))
	assert.Equal(t, hazard.CauseFell, player.Cause)

	sc := &sceneStub{}
	update := NewUpdateGameOver(c, ctrl, sc, func() interface{} { return "menu" })
	GetOrCreateClock(e).DT = 1
	press(e, cfg.ActionMenuDown)
	update(e)
	press(e, cfg.ActionMenuSelect)
	update(e)
	assert.Equal(t, cfg.StateMenu, CurrentState(e))
	assert.Equal(t, []interface{}{"menu"}, sc.scenes)
}

func TestDeadBodyIsNotMoved(t *testing.T) {
	e := newTestECS(cfg.StatePlaying)
	player, ctrl, _ := newTestWorld(t, e)
	player.Body.Kill()
	box := player.Body.Box

	GetOrCreateClock(e).DT = 1.0 / 60
	player.Pending.X = 50
	NewUpdateCollisions(ctrl)(e)
	assert.Equal(t, box, player.Body.Box)
}
