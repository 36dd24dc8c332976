package systems

import (
	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// AttachGameState shares m with the systems of e.
func AttachGameState(e *ecs.ECS, m *cfg.StateMachine) {
	state := GetOrCreateGameState(e)
	state.Machine = m
}

// GetOrCreateGameState returns the singleton GameState component. A world
// without an attached machine gets its own, starting in Playing.
func GetOrCreateGameState(e *ecs.ECS) *components.GameStateData {
	if _, ok := components.GameState.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameState))
		components.GameState.SetValue(ent, components.GameStateData{
			Machine: cfg.NewStateMachine(cfg.StatePlaying),
		})
	}

	ent, _ := components.GameState.First(e.World)
	return components.GameState.Get(ent)
}

// CurrentState returns the state of e's machine.
func CurrentState(e *ecs.ECS) cfg.GameState {
	return GetOrCreateGameState(e).Machine.Current()
}

// ChangeState moves e's machine to the target state. Illegal moves are
// logged and ignored.
func ChangeState(e *ecs.ECS, to cfg.GameState) bool {
	m := GetOrCreateGameState(e).Machine
	from := m.Current()
	if err := m.Transition(to); err != nil {
		log.Warn("ignoring state change", "error", err)
		return false
	}
	log.Debug("state", "from", from, "to", to)
	return true
}

// WithGameplayChecks wraps a system so it only runs while the game is
// simulating and no overlay has taken input.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GetOrCreateGameState(e).Machine.Simulating() || IsSettingsOpen(e) {
			return
		}
		system(e)
	}
}

// WithStateCheck wraps a system so it only runs in the given state.
func WithStateCheck(state cfg.GameState, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if CurrentState(e) != state {
			return
		}
		system(e)
	}
}
