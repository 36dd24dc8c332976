package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/systems"
	"github.com/automoto/foolrunner/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	session      *Session
	sceneChanger systems.SceneChanger
	menuUI       *ui.MainMenuUI
	actions      systems.MenuActions
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc systems.SceneChanger, session *Session) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: session}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()

	if systems.CurrentState(ms.ecs) != cfg.StateMenu {
		return
	}
	if !systems.IsSettingsOpen(ms.ecs) {
		ms.menuUI.Update()
	}
	ms.syncUI()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	s := ms.session
	systems.AttachGameState(ms.ecs, s.Machine)
	systems.InitSettingsMenu(ms.ecs, s.Config, s.Saved)

	ms.actions = systems.MenuActions{
		SceneChanger: ms.sceneChanger,
		CreatePlatformerScene: func(levelIndex int) interface{} {
			s.rememberLevel(levelIndex)
			return NewPlatformerScene(ms.sceneChanger, s, levelIndex)
		},
		BestDistance: s.BestDistance,
	}
	lastLevel := ""
	if s.Saved != nil {
		lastLevel = s.Saved.LastLevel
	}
	systems.InitMenu(ms.ecs, ms.actions, s.LevelNames(), s.LevelIndex(lastLevel))

	menuUI, err := ui.NewMainMenuUI(s.Config.Display.Title, s.Config.Colors.MenuBackground, ms.selectOption)
	if err != nil {
		log.Fatal("cannot build menu", "error", err)
	}
	ms.menuUI = menuUI

	ms.ecs.AddSystem(systems.NewUpdateClock(0))
	ms.ecs.AddSystem(systems.NewUpdateInput(s.Input))
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.actions))
	ms.ecs.AddSystem(systems.NewUpdateSettingsMenu(s.Persistence, s.Saved))

	// Settings draws on top of the menu
	ms.ecs.AddRenderer(cfg.DefaultLayer, func(_ *ecs.ECS, screen *ebiten.Image) {
		ms.menuUI.Draw(screen)
	})
	ms.ecs.AddRenderer(cfg.DefaultLayer, systems.NewDrawSettingsMenu(s.Config.Colors))

	ms.syncUI()
}

// selectOption handles a mouse click on a menu button.
func (ms *MenuScene) selectOption(opt ui.MenuOption) {
	menu := systems.GetOrCreateMenu(ms.ecs)
	for i, o := range menu.VisibleOptions {
		if int(o) == int(opt) {
			menu.SelectedIndex = i
		}
	}
	systems.ActivateMenuOption(ms.ecs, ms.actions, components.MainMenuOption(opt))
}

func (ms *MenuScene) syncUI() {
	menu := systems.GetOrCreateMenu(ms.ecs)
	selected := 0
	if menu.SelectedIndex < len(menu.VisibleOptions) {
		selected = int(menu.VisibleOptions[menu.SelectedIndex])
	}
	ms.menuUI.Sync(ui.MenuState{
		Selected: selected,
		Level:    systems.SelectedLevelName(menu),
		Best:     menu.Best,
		Hint:     systems.MenuHint(ms.ecs),
	})
}
