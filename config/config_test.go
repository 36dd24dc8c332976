package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestEmbeddedDefaultsAreValid(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	require.NoError(t, err)
	assert.True(t, cfg.Physics.AutoRun)
	assert.True(t, cfg.Easing.Enabled)
	assert.True(t, cfg.Level.Loop)
	assert.Equal(t, 32, cfg.Physics.TileSize)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 1800\ncamera:\n  style: snap\n"))
	require.NoError(t, err)

	assert.Equal(t, 1800.0, cfg.Physics.Gravity)
	assert.Equal(t, CameraSnap, cfg.Camera.Style)
	assert.Equal(t, Default().Physics.RunSpeed, cfg.Physics.RunSpeed, "unset keys keep defaults")
	assert.Equal(t, Default().Colors.Ground, cfg.Colors.Ground)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"tile size", func(c *Config) { c.Physics.TileSize = 0 }},
		{"gravity", func(c *Config) { c.Physics.Gravity = -1 }},
		{"jump direction", func(c *Config) { c.Physics.JumpImpulse = 400 }},
		{"hold multiplier", func(c *Config) { c.Physics.HoldGravityMultiplier = 1 }},
		{"fall multiplier", func(c *Config) { c.Physics.FallMultiplier = 0.5 }},
		{"negative window", func(c *Config) { c.Physics.CoyoteTime = -0.1 }},
		{"max step", func(c *Config) { c.Physics.MaxStep = 0 }},
		{"collider", func(c *Config) { c.Player.Width = 0 }},
		{"camera style", func(c *Config) { c.Camera.Style = "drone" }},
		{"easing curve", func(c *Config) { c.Easing.Enabled = true; c.Easing.Curve = "bounce" }},
		{"display", func(c *Config) { c.Display.Height = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mut(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Physics.TileSize = 0
	cfg.Physics.Gravity = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tile_size")
	assert.Contains(t, err.Error(), "gravity")
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  run_speed: 250\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250.0, cfg.Physics.RunSpeed)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  tile_size: -3\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestColorYAML(t *testing.T) {
	var out struct {
		A Color `yaml:"a"`
		B Color `yaml:"b"`
		C Color `yaml:"c"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: '#8b4513'\nb: '#fff'\nc: '#00000080'\n"), &out))
	assert.Equal(t, RGB(139, 69, 19), out.A)
	assert.Equal(t, RGB(255, 255, 255), out.B)
	assert.Equal(t, Color{A: 128}, out.C)
	assert.Equal(t, "#8b4513", out.A.String())
	assert.Equal(t, "#00000080", out.C.String())

	err := yaml.Unmarshal([]byte("a: '#12'\n"), &out)
	assert.Error(t, err)
}

func TestStateMachine(t *testing.T) {
	m := NewStateMachine(StateMenu)
	assert.False(t, m.Simulating())

	require.NoError(t, m.Transition(StatePlaying))
	assert.True(t, m.Simulating())
	require.NoError(t, m.Transition(StatePaused))
	assert.False(t, m.Simulating())
	require.NoError(t, m.Transition(StatePlaying))
	require.NoError(t, m.Transition(StateDead))
	assert.Equal(t, StatePlaying, m.Previous())
	require.NoError(t, m.Transition(StatePlaying), "retry")
	require.NoError(t, m.Transition(StateDead))
	require.NoError(t, m.Transition(StateMenu), "quit to menu")
}

func TestStateMachineRejectsIllegal(t *testing.T) {
	illegal := [][2]GameState{
		{StateMenu, StateDead},
		{StateMenu, StatePaused},
		{StatePlaying, StateMenu},
		{StatePaused, StateDead},
		{StateDead, StatePaused},
		{StatePlaying, StatePlaying},
	}
	for _, pair := range illegal {
		m := NewStateMachine(pair[0])
		err := m.Transition(pair[1])
		assert.Error(t, err, "%s -> %s", pair[0], pair[1])
		assert.Equal(t, pair[0], m.Current(), "state unchanged on error")
	}
}

func TestDefaultInputBindings(t *testing.T) {
	in := DefaultInput()
	assert.Len(t, in.Bindings[ActionJump].Keys, 3)
	assert.Len(t, in.Bindings[ActionMoveLeft].Keys, 2)
	assert.Len(t, in.Bindings[ActionMoveRight].Keys, 2)
	for id := ActionMoveLeft; id < ActionCount; id++ {
		assert.NotEmpty(t, in.Bindings[id].Keys, "action %d has keys", id)
	}
}
