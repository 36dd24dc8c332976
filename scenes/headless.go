package scenes

import (
	"fmt"

	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/physics"
	"github.com/automoto/foolrunner/systems"
	"github.com/automoto/foolrunner/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StepReport is the actor's state after one headless step.
type StepReport struct {
	Step     int
	State    cfg.GameState
	X, Y     float64
	VX, VY   float64
	OnGround bool
	Distance float64
	Cause    string
}

func (r StepReport) String() string {
	return fmt.Sprintf("%5d %-7s x=%8.1f y=%7.1f vx=%7.1f vy=%7.1f ground=%-5v dist=%6.2f",
		r.Step, r.State, r.X, r.Y, r.VX, r.VY, r.OnGround, r.Distance)
}

// Summary totals a headless run.
type Summary struct {
	Steps    int
	Deaths   int
	Furthest float64 // Best distance of any attempt, in tiles
}

// Headless runs the gameplay systems without a window, reading input from a
// script and stepping a fixed dt. Every death respawns immediately.
type Headless struct {
	ecs    *ecs.ECS
	player *components.PlayerData
	run    *components.RunData
	step   int
}

// NewHeadless builds the same world the platformer scene plays.
func NewHeadless(session *Session, levelIndex int, script systems.Script, dt float64) (*Headless, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("headless step must be positive, got %v", dt)
	}
	c := session.Config
	ctrl := physics.NewController(c.Physics, c.Easing)

	e := ecs.NewECS(donburi.NewWorld())
	systems.AttachGameState(e, cfg.NewStateMachine(cfg.StatePlaying))
	systems.InitSettingsMenu(e, c, nil)

	e.AddSystem(systems.NewUpdateClock(dt))
	e.AddSystem(systems.NewUpdateScriptedInput(script))
	e.AddSystem(systems.WithStateCheck(cfg.StateDead, func(e *ecs.ECS) {
		systems.Respawn(e, c.Player, ctrl.DefaultRunSpeed())
		systems.ChangeState(e, cfg.StatePlaying)
	}))
	AddGameplaySystems(e, c, ctrl, session.Recorder)
	e.AddSystem(systems.UpdateFrame)

	name := ""
	if levelIndex >= 0 && levelIndex < len(session.Levels) {
		name = session.Levels[levelIndex].Name
	}
	player, err := factory.CreateWorld(e, factory.World{
		Config:     c,
		Controller: ctrl,
		Levels:     session.Levels,
		LevelIndex: levelIndex,
		Best:       session.BestDistance(name),
	})
	if err != nil {
		return nil, err
	}
	runEntry, _ := components.Run.First(e.World)

	return &Headless{ecs: e, player: player, run: components.Run.Get(runEntry)}, nil
}

// Step advances one update and reports the state it ended in. A death is
// reported on the step it happens, before the respawn of the next step.
func (h *Headless) Step() StepReport {
	h.step++
	h.ecs.Update()

	b := h.player.Body
	r := StepReport{
		Step:     h.step,
		State:    systems.CurrentState(h.ecs),
		X:        b.Box.X,
		Y:        b.Box.Y,
		VX:       b.Vel.X,
		VY:       b.Vel.Y,
		OnGround: b.OnGround,
		Distance: h.run.Tracker.Distance(),
	}
	if !b.Alive {
		r.Cause = h.player.Cause.String()
	}
	return r
}

// Run advances steps updates, handing each report to each when it is not nil.
func (h *Headless) Run(steps int, each func(StepReport)) Summary {
	var sum Summary
	for i := 0; i < steps; i++ {
		r := h.Step()
		sum.Steps++
		sum.Furthest = max(sum.Furthest, r.Distance)
		if r.Cause != "" {
			sum.Deaths++
		}
		if each != nil {
			each(r)
		}
	}
	return sum
}

// ECS exposes the world for inspection.
func (h *Headless) ECS() *ecs.ECS {
	return h.ecs
}
