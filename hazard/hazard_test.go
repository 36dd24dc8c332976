package hazard

import (
	"strings"
	"testing"

	"github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/level"
	"github.com/automoto/foolrunner/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const layout = `
0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0
0,0,9,0,0,0,4,4,0,5
1,1,1,1,1,1,1,1,1,1
`

func testLevel(t *testing.T) *level.Level {
	t.Helper()
	lvl, err := level.ParseCSV("hazards", strings.NewReader(layout), 32)
	require.NoError(t, err)
	return lvl
}

func TestCheckOverlap(t *testing.T) {
	sys := New(testLevel(t), config.Default().Level)

	h, hit := sys.Check(level.Rect{X: 6*32 + 10, Y: 3*32 + 5, W: 10, H: 10})
	require.True(t, hit)
	assert.Equal(t, level.HazardVisible, h.Kind)

	h, hit = sys.Check(level.Rect{X: 9*32 + 1, Y: 3 * 32, W: 5, H: 5})
	require.True(t, hit)
	assert.Equal(t, level.HazardInvisible, h.Kind)

	_, hit = sys.Check(level.Rect{X: 2 * 32, Y: 3 * 32, W: 32, H: 32})
	assert.False(t, hit)
}

func TestTouchingEdgeDoesNotKill(t *testing.T) {
	sys := New(testLevel(t), config.Default().Level)
	_, hit := sys.Check(level.Rect{X: 6*32 - 20, Y: 3 * 32, W: 20, H: 32})
	assert.False(t, hit)
	_, hit = sys.Check(level.Rect{X: 6 * 32, Y: 3*32 - 20, W: 20, H: 20})
	assert.False(t, hit, "standing on top of a hazard cell's edge")
}

func TestApplyKillsInSameStep(t *testing.T) {
	sys := New(testLevel(t), config.Default().Level)
	b := physics.NewBody(level.Rect{X: 6 * 32, Y: 3 * 32, W: 20, H: 20})
	b.Vel.X, b.Vel.Y = 300, -100
	b.Jumping = true

	assert.Equal(t, CauseHazard, sys.Apply(b))
	assert.False(t, b.Alive)
	assert.Zero(t, b.Vel.X)
	assert.Zero(t, b.Vel.Y)
	assert.False(t, b.Jumping)

	assert.Equal(t, CauseNone, sys.Apply(b), "dead bodies are not killed twice")
}

func TestKillPlane(t *testing.T) {
	cfg := config.Default().Level
	sys := New(testLevel(t), cfg)

	above := physics.NewBody(level.Rect{X: 0, Y: 5*32 + cfg.KillMargin - 1, W: 10, H: 10})
	assert.Equal(t, CauseNone, sys.Apply(above))

	below := physics.NewBody(level.Rect{X: 0, Y: 5*32 + cfg.KillMargin + 1, W: 10, H: 10})
	assert.Equal(t, CauseFell, sys.Apply(below))
	assert.False(t, below.Alive)
}

func TestLoopingWrapsHazards(t *testing.T) {
	lvl := testLevel(t).WithLoop(true)
	sys := New(lvl, config.Default().Level)

	_, hit := sys.Check(level.Rect{X: 10*32 + 6*32 + 4, Y: 3 * 32, W: 10, H: 10})
	assert.True(t, hit, "second lap")

	_, hit = sys.Check(level.Rect{X: -4*32 + 4, Y: 3 * 32, W: 10, H: 10})
	assert.True(t, hit, "negative x wraps")

	// Straddles the seam: starts over the invisible hazard at column 9.
	_, hit = sys.Check(level.Rect{X: 10*32 - 4, Y: 3 * 32, W: 20, H: 10})
	assert.True(t, hit)
}

func TestRespawn(t *testing.T) {
	cfg := config.Default()
	lvl := testLevel(t)
	sys := New(lvl, cfg.Level)

	b := physics.NewBody(level.Rect{X: 6 * 32, Y: 3 * 32, W: cfg.Player.Width, H: cfg.Player.Height})
	require.Equal(t, CauseHazard, sys.Apply(b))

	Respawn(b, lvl, cfg.Player, 380)
	assert.True(t, b.Alive)
	assert.True(t, b.OnGround)
	assert.Zero(t, b.Vel.Y)
	assert.Equal(t, 380.0, b.Vel.X)
	assert.InDelta(t, 4*32, b.Box.Bottom(), 1e-9, "bottom on the spawn tile's floor")
	assert.Equal(t, cfg.Player.Width, b.Box.W)
	assert.Equal(t, CauseNone, sys.Apply(b))
}

func TestRespawnedBodyRests(t *testing.T) {
	cfg := config.Default()
	lvl := testLevel(t)
	ctrl := physics.NewController(cfg.Physics, cfg.Easing)
	res := physics.NewResolver(lvl.Grid)

	b := physics.NewBody(level.Rect{})
	b.Kill()
	Respawn(b, lvl, cfg.Player, ctrl.DefaultRunSpeed())
	y := b.Box.Y
	for i := 0; i < 30; i++ {
		ctrl.Move(b, physics.Intent{}, 1.0/60, res)
	}
	assert.True(t, b.OnGround)
	assert.InDelta(t, y, b.Box.Y, 1e-9)
}

func TestObjectsExcludesProbe(t *testing.T) {
	sys := New(testLevel(t), config.Default().Level)
	sys.Check(level.Rect{X: 0, Y: 0, W: 10, H: 10})

	objs := sys.Objects()
	require.Len(t, objs, 2, "one merged visible run and one invisible cell")
	for _, obj := range objs {
		_, ok := obj.Data.(level.Hazard)
		assert.True(t, ok)
	}
}
