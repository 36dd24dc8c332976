package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/physics"
	"github.com/automoto/foolrunner/systems"
	"github.com/automoto/foolrunner/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	session      *Session
	sceneChanger systems.SceneChanger
	levelIndex   int
	once         sync.Once
}

// NewPlatformerScene creates a run on the level at levelIndex.
func NewPlatformerScene(sc systems.SceneChanger, session *Session, levelIndex int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, session: session, levelIndex: levelIndex}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	s := ps.session
	c := s.Config
	ctrl := physics.NewController(c.Physics, c.Easing)

	ecs := ecs.NewECS(donburi.NewWorld())
	systems.AttachGameState(ecs, s.Machine)
	systems.InitSettingsMenu(ecs, c, s.Saved)

	createMenuScene := func() interface{} {
		return NewMenuScene(ps.sceneChanger, s)
	}

	// Systems that always run
	ecs.AddSystem(systems.NewUpdateClock(0))
	ecs.AddSystem(systems.NewUpdateInput(s.Input))
	ecs.AddSystem(systems.NewUpdatePause(ps.sceneChanger, createMenuScene))
	ecs.AddSystem(systems.NewUpdateSettingsMenu(s.Persistence, s.Saved))
	ecs.AddSystem(systems.UpdateDebug)

	AddGameplaySystems(ecs, c, ctrl, s.Recorder)

	ecs.AddSystem(systems.NewUpdateGameOver(c, ctrl, ps.sceneChanger, createMenuScene))
	ecs.AddSystem(systems.UpdateFrame)

	// Add renderers
	ecs.AddRenderer(cfg.DefaultLayer, systems.NewDrawLevel(c.Colors))
	ecs.AddRenderer(cfg.DefaultLayer, systems.DrawPlayer)
	ecs.AddRenderer(cfg.DefaultLayer, systems.NewDrawDebug(c.Colors))
	ecs.AddRenderer(cfg.DefaultLayer, systems.NewDrawHUD(c.Colors))
	ecs.AddRenderer(cfg.DefaultLayer, systems.NewDrawPause(c.Colors))
	ecs.AddRenderer(cfg.DefaultLayer, systems.NewDrawGameOver(c.Colors))
	ecs.AddRenderer(cfg.DefaultLayer, systems.NewDrawSettingsMenu(c.Colors))

	ps.ecs = ecs

	name := ""
	if ps.levelIndex >= 0 && ps.levelIndex < len(s.Levels) {
		name = s.Levels[ps.levelIndex].Name
	}
	if _, err := factory.CreateWorld(ps.ecs, factory.World{
		Config:     c,
		Controller: ctrl,
		Levels:     s.Levels,
		LevelIndex: ps.levelIndex,
		Best:       s.BestDistance(name),
		Sprite:     s.Sprite,
	}); err != nil {
		log.Fatal("cannot create world", "error", err)
	}
	systems.ApplyCameraStyle(ps.ecs, systems.GetOrCreateSettingsMenu(ps.ecs).CameraStyle)

	// Update the Frame once so the first Draw has a snapshot.
	systems.UpdateFrame(ps.ecs)
	log.Info("run started", "level", name)
}

// AddGameplaySystems registers the simulation step in order: movement,
// collision, run tracking, hazards, camera. Each only runs while Playing.
func AddGameplaySystems(e *ecs.ECS, c cfg.Config, ctrl *physics.Controller, recorder systems.RunRecorder) {
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdatePlayer(ctrl)))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateCollisions(ctrl)))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateRun(len(c.Colors.Regions))))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateDeaths(recorder)))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
}
