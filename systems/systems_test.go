package systems

import (
	"testing"

	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript("2:idle, 3:jump+right ,1:LEFT")
	require.NoError(t, err)
	assert.Equal(t, 6, s.Len())

	assert.Equal(t, [cfg.ActionCount]bool{}, s.At(0))
	at := s.At(2)
	assert.True(t, at[cfg.ActionJump])
	assert.True(t, at[cfg.ActionMoveRight])
	assert.True(t, s.At(5)[cfg.ActionMoveLeft])
	assert.Equal(t, [cfg.ActionCount]bool{}, s.At(6), "nothing held past the end")
}

func TestParseScriptErrors(t *testing.T) {
	for _, bad := range []string{"", "jump", "0:jump", "-2:idle", "x:idle", "3:fly"} {
		_, err := ParseScript(bad)
		assert.Error(t, err, bad)
	}
}

func TestScriptedInputEdges(t *testing.T) {
	s, err := ParseScript("1:idle,2:jump")
	require.NoError(t, err)
	e := newTestECS(cfg.StatePlaying)
	update := NewUpdateScriptedInput(s)

	update(e)
	assert.False(t, GetAction(getOrCreateInput(e), cfg.ActionJump).Pressed)
	update(e)
	assert.True(t, GetAction(getOrCreateInput(e), cfg.ActionJump).JustPressed)
	update(e)
	jump := GetAction(getOrCreateInput(e), cfg.ActionJump)
	assert.True(t, jump.Pressed)
	assert.False(t, jump.JustPressed)
	update(e)
	assert.True(t, GetAction(getOrCreateInput(e), cfg.ActionJump).JustReleased)
	assert.Equal(t, components.InputScripted, getOrCreateInput(e).LastInputMethod)
}

func TestIntentFromInput(t *testing.T) {
	in := &components.InputData{}
	in.Current[cfg.ActionJump] = true
	in.Current[cfg.ActionMoveLeft] = true

	intent := IntentFromInput(in)
	assert.True(t, intent.Left)
	assert.False(t, intent.Right)
	assert.True(t, intent.JumpPressed)
	assert.True(t, intent.JumpHeld)

	in.Previous = in.Current
	intent = IntentFromInput(in)
	assert.False(t, intent.JumpPressed, "held jump is not a new press")
	assert.True(t, intent.JumpHeld)
}

func TestClock(t *testing.T) {
	e := newTestECS(cfg.StatePlaying)
	tick := NewUpdateClock(0.02)
	tick(e)
	tick(e)
	clock := GetOrCreateClock(e)
	assert.Equal(t, 0.02, clock.DT)
	assert.Equal(t, 2, clock.Step)

	wall := NewUpdateClock(0)
	e = newTestECS(cfg.StatePlaying)
	wall(e)
	assert.InDelta(t, 1.0/60, GetOrCreateClock(e).DT, 1e-9, "first step has no previous time")
}

func TestWithGameplayChecks(t *testing.T) {
	e := newTestECS(cfg.StatePlaying)
	runs := 0
	system := WithGameplayChecks(func(*ecs.ECS) { runs++ })

	system(e)
	assert.Equal(t, 1, runs)

	require.True(t, ChangeState(e, cfg.StatePaused))
	system(e)
	assert.Equal(t, 1, runs, "paused")

	require.True(t, ChangeState(e, cfg.StatePlaying))
	OpenSettings(e, false)
	system(e)
	assert.Equal(t, 1, runs, "settings open")
}

func TestChangeStateRejectsIllegal(t *testing.T) {
	e := newTestECS(cfg.StateMenu)
	assert.False(t, ChangeState(e, cfg.StateDead))
	assert.Equal(t, cfg.StateMenu, CurrentState(e))

	called := false
	WithStateCheck(cfg.StateDead, func(*ecs.ECS) { called = true })(e)
	assert.False(t, called)
}

func TestPauseMenu(t *testing.T) {
	e := newTestECS(cfg.StatePlaying)
	sc := &sceneStub{}
	update := NewUpdatePause(sc, func() interface{} { return "menu" })

	press(e, cfg.ActionPause)
	update(e)
	assert.Equal(t, cfg.StatePaused, CurrentState(e))

	press(e, cfg.ActionPause)
	update(e)
	assert.Equal(t, cfg.StatePlaying, CurrentState(e), "pause toggles back")

	press(e, cfg.ActionPause)
	update(e)
	press(e, cfg.ActionMenuUp)
	update(e)
	assert.Equal(t, components.MenuExit, GetOrCreatePause(e).SelectedOption, "wraps upward")

	press(e, cfg.ActionMenuSelect)
	update(e)
	assert.Equal(t, cfg.StateMenu, CurrentState(e))
	assert.Equal(t, []interface{}{"menu"}, sc.scenes)
}

func TestPauseOpensSettings(t *testing.T) {
	e := newTestECS(cfg.StatePaused)
	update := NewUpdatePause(&sceneStub{}, func() interface{} { return nil })

	press(e, cfg.ActionMenuDown)
	update(e)
	press(e, cfg.ActionMenuSelect)
	update(e)
	s := GetOrCreateSettingsMenu(e)
	assert.True(t, s.IsOpen)
	assert.True(t, s.OpenedFromPause)
}

func TestSettingsIgnoresOpeningPress(t *testing.T) {
	e := newTestECS(cfg.StatePaused)
	saved := &SavedSettings{}
	update := NewUpdateSettingsMenu(nil, saved)

	OpenSettings(e, true)
	press(e, cfg.ActionMoveRight)
	update(e)
	assert.Equal(t, cfg.CameraLookAhead, GetOrCreateSettingsMenu(e).CameraStyle)

	GetOrCreateClock(e).Step++
	press(e, cfg.ActionMoveRight)
	update(e)
	assert.Equal(t, cfg.CameraSnap, GetOrCreateSettingsMenu(e).CameraStyle)

	press(e, cfg.ActionMenuBack)
	update(e)
	assert.False(t, IsSettingsOpen(e))
	assert.Equal(t, cfg.CameraSnap, saved.CameraStyle, "closing writes the saved settings")
}

func TestInitSettingsMenuPrefersSaved(t *testing.T) {
	e := newTestECS(cfg.StateMenu)
	c := cfg.Default()
	InitSettingsMenu(e, c, &SavedSettings{CameraStyle: cfg.CameraSnap, ShowColliders: true})
	s := GetOrCreateSettingsMenu(e)
	assert.Equal(t, cfg.CameraSnap, s.CameraStyle)
	assert.True(t, s.ShowColliders)

	e = newTestECS(cfg.StateMenu)
	InitSettingsMenu(e, c, &SavedSettings{CameraStyle: "orbit"})
	assert.Equal(t, c.Camera.Style, GetOrCreateSettingsMenu(e).CameraStyle, "unknown style ignored")
}

func TestMenuLevelCycling(t *testing.T) {
	e := newTestECS(cfg.StateMenu)
	actions := MenuActions{BestDistance: func(name string) float64 { return float64(len(name)) }}
	InitMenu(e, actions, []string{"a", "bb", "ccc"}, 2)

	menu := GetOrCreateMenu(e)
	assert.Equal(t, "ccc", SelectedLevelName(menu))
	assert.Equal(t, 3.0, menu.Best)

	CycleLevel(e, actions, +1)
	assert.Equal(t, "a", SelectedLevelName(menu), "wraps forward")
	CycleLevel(e, actions, -1)
	assert.Equal(t, "ccc", SelectedLevelName(menu), "wraps backward")
	assert.Equal(t, 3.0, menu.Best)
}

func TestMenuNavigationAndActions(t *testing.T) {
	e := newTestECS(cfg.StateMenu)
	sc := &sceneStub{}
	started := -1
	actions := MenuActions{
		SceneChanger: sc,
		CreatePlatformerScene: func(levelIndex int) interface{} {
			started = levelIndex
			return "world"
		},
	}
	InitMenu(e, actions, []string{"a", "b"}, 0)
	update := NewUpdateMenu(actions)

	press(e, cfg.ActionMenuUp)
	update(e)
	assert.Equal(t, components.MainMenuExit, GetOrCreateMenu(e).VisibleOptions[GetOrCreateMenu(e).SelectedIndex])
	press(e, cfg.ActionMenuSelect)
	update(e)
	assert.True(t, sc.quit)

	press(e, cfg.ActionMenuDown) // Play
	update(e)
	press(e, cfg.ActionMenuDown) // Level
	update(e)
	press(e, cfg.ActionMoveRight)
	update(e)
	assert.Equal(t, "b", SelectedLevelName(GetOrCreateMenu(e)))

	ActivateMenuOption(e, actions, components.MainMenuPlay)
	assert.Equal(t, cfg.StatePlaying, CurrentState(e))
	assert.Equal(t, 1, started)
	assert.Equal(t, []interface{}{"world"}, sc.scenes)
}

func TestPersistenceNilIsNoop(t *testing.T) {
	var p *Persistence
	s, err := p.LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, s)
	assert.NoError(t, p.SaveSettings(&SavedSettings{LastLevel: "a"}))
}

func TestDebugToggle(t *testing.T) {
	e := newTestECS(cfg.StatePlaying)
	press(e, cfg.ActionDebug)
	UpdateDebug(e)
	assert.True(t, GetOrCreateSettingsMenu(e).ShowColliders)
	in := getOrCreateInput(e)
	in.Previous = in.Current
	UpdateDebug(e)
	assert.True(t, GetOrCreateSettingsMenu(e).ShowColliders, "held key toggles once")
	press(e, cfg.ActionDebug)
	UpdateDebug(e)
	assert.False(t, GetOrCreateSettingsMenu(e).ShowColliders)
}

func TestFrameSnapshot(t *testing.T) {
	e := newTestECS(cfg.StatePlaying)
	newTestWorld(t, e)
	UpdateFrame(e)

	entry, ok := components.Frame.First(e.World)
	require.True(t, ok)
	snap := components.Frame.Get(entry).Snapshot
	assert.Equal(t, 1, snap.Count(frame.Actor))
	assert.Positive(t, snap.Count(frame.StaticTile))
	assert.True(t, snap.Alive)
}

func TestRenderersRegisterOnDefaultLayer(t *testing.T) {
	colors := cfg.Default().Colors
	renderers := []Renderer{
		NewDrawLevel(colors),
		DrawPlayer,
		NewDrawDebug(colors),
		NewDrawHUD(colors),
		NewDrawPause(colors),
		NewDrawGameOver(colors),
		NewDrawSettingsMenu(colors),
	}
	e := newTestECS(cfg.StatePlaying)
	for _, r := range renderers {
		require.NotNil(t, r)
		assert.NotPanics(t, func() { e.AddRenderer(cfg.DefaultLayer, r) })
	}
}
