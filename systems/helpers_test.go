package systems

import (
	"strings"
	"testing"

	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/level"
	"github.com/automoto/foolrunner/physics"
	"github.com/automoto/foolrunner/storage"
	"github.com/automoto/foolrunner/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testLayout = `
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
0,0,9,0,0,0,0,0,0,0,4,4,0,0,0,0
1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1
`

type sceneStub struct {
	scenes []interface{}
	quit   bool
}

func (s *sceneStub) ChangeScene(scene interface{}) { s.scenes = append(s.scenes, scene) }
func (s *sceneStub) Quit()                         { s.quit = true }

type recorderStub struct {
	runs []storage.Run
}

func (r *recorderStub) RecordRun(run storage.Run) (int64, error) {
	r.runs = append(r.runs, run)
	return int64(len(r.runs)), nil
}

func (r *recorderStub) BestDistance(string) (float64, error) { return 0, nil }

func newTestECS(state cfg.GameState) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	AttachGameState(e, cfg.NewStateMachine(state))
	return e
}

// press makes ids the only actions held this step, each a fresh press.
func press(e *ecs.ECS, ids ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range ids {
		input.Current[id] = true
	}
}

// newTestWorld spawns the full play world on testLayout.
func newTestWorld(t *testing.T, e *ecs.ECS) (*components.PlayerData, *physics.Controller, cfg.Config) {
	t.Helper()
	c := cfg.Default()
	lvl, err := level.ParseCSV("test", strings.NewReader(testLayout), float64(c.Physics.TileSize))
	require.NoError(t, err)

	ctrl := physics.NewController(c.Physics, c.Easing)
	player, err := factory.CreateWorld(e, factory.World{
		Config:     c,
		Controller: ctrl,
		Levels:     []*level.Level{lvl},
	})
	require.NoError(t, err)
	return player, ctrl, c
}
