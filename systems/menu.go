package systems

import (
	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/yohamta/donburi/ecs"
)

// MenuActions are the scene-level effects of the main menu.
type MenuActions struct {
	SceneChanger          SceneChanger
	CreatePlatformerScene func(levelIndex int) interface{}
	BestDistance          func(level string) float64 // May be nil
}

// NewUpdateMenu handles keyboard and gamepad navigation of the main menu.
func NewUpdateMenu(actions MenuActions) ecs.System {
	return func(e *ecs.ECS) {
		// Skip menu input if settings is open
		if IsSettingsOpen(e) {
			return
		}

		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		selected := menu.VisibleOptions[menu.SelectedIndex]
		if selected == components.MainMenuLevel {
			if GetAction(input, cfg.ActionMoveLeft).JustPressed {
				CycleLevel(e, actions, -1)
			}
			if GetAction(input, cfg.ActionMoveRight).JustPressed {
				CycleLevel(e, actions, +1)
			}
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			ActivateMenuOption(e, actions, selected)
		}
	}
}

// ActivateMenuOption performs a menu choice.
func ActivateMenuOption(e *ecs.ECS, actions MenuActions, opt components.MainMenuOption) {
	menu := GetOrCreateMenu(e)
	switch opt {
	case components.MainMenuPlay:
		if ChangeState(e, cfg.StatePlaying) {
			actions.SceneChanger.ChangeScene(actions.CreatePlatformerScene(menu.LevelIndex))
		}
	case components.MainMenuLevel:
		CycleLevel(e, actions, +1)
	case components.MainMenuSettings:
		OpenSettings(e, false)
	case components.MainMenuExit:
		actions.SceneChanger.Quit()
	}
}

// CycleLevel moves the selected level by dir with wrap-around and refreshes
// its best distance.
func CycleLevel(e *ecs.ECS, actions MenuActions, dir int) {
	menu := GetOrCreateMenu(e)
	n := len(menu.LevelNames)
	if n == 0 {
		return
	}
	menu.LevelIndex = ((menu.LevelIndex+dir)%n + n) % n
	menu.Best = 0
	if actions.BestDistance != nil {
		menu.Best = actions.BestDistance(menu.LevelNames[menu.LevelIndex])
	}
}

// SelectedLevelName returns the level Play would start.
func SelectedLevelName(menu *components.MenuData) string {
	if menu.LevelIndex < 0 || menu.LevelIndex >= len(menu.LevelNames) {
		return ""
	}
	return menu.LevelNames[menu.LevelIndex]
}

// InitMenu fills the menu with the available levels, selecting index.
func InitMenu(e *ecs.ECS, actions MenuActions, levelNames []string, index int) {
	menu := GetOrCreateMenu(e)
	menu.LevelNames = levelNames
	menu.LevelIndex = 0
	if index > 0 && index < len(levelNames) {
		menu.LevelIndex = index
	}
	CycleLevel(e, actions, 0)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// MenuHint is the navigation hint for the last used device.
func MenuHint(e *ecs.ECS) string {
	return getMenuHint(getOrCreateInput(e).LastInputMethod)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex: 0,
			VisibleOptions: []components.MainMenuOption{
				components.MainMenuPlay,
				components.MainMenuLevel,
				components.MainMenuSettings,
				components.MainMenuExit,
			},
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
