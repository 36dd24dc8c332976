package systems

import (
	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	pauseItemHeight = 24.0
	pauseItemGap    = 14.0
)

var pauseMenuOptions = []string{"Resume", "Settings", "Quit to Menu"}

// NewUpdatePause toggles Playing and Paused and runs the pause menu.
// This system should run AFTER input but BEFORE the gameplay systems.
func NewUpdatePause(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		input := getOrCreateInput(e)

		switch CurrentState(e) {
		case cfg.StatePlaying:
			if GetAction(input, cfg.ActionPause).JustPressed && ChangeState(e, cfg.StatePaused) {
				pause.SelectedOption = components.MenuResume
			}
			return
		case cfg.StatePaused:
		default:
			return
		}

		// Skip pause menu input if settings is open
		if IsSettingsOpen(e) {
			return
		}

		if GetAction(input, cfg.ActionPause).JustPressed {
			ChangeState(e, cfg.StatePlaying)
			return
		}

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.MenuExit) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch pause.SelectedOption {
			case components.MenuResume:
				ChangeState(e, cfg.StatePlaying)
			case components.MenuSettings:
				OpenSettings(e, true)
			case components.MenuExit:
				if ChangeState(e, cfg.StateMenu) {
					sceneChanger.ChangeScene(createMenuScene())
				}
			}
		}
	}
}

// NewDrawPause renders the pause overlay and menu.
func NewDrawPause(colors cfg.ColorConfig) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if CurrentState(e) != cfg.StatePaused || IsSettingsOpen(e) {
			return
		}
		pause := GetOrCreatePause(e)

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.FillRect(
			screen,
			0, 0,
			float32(width), float32(height),
			colors.PauseOverlay,
			false,
		)

		totalMenuHeight := float64(len(pauseMenuOptions)) * (pauseItemHeight + pauseItemGap)
		startY := (height - totalMenuHeight) / 2

		fontFace := fonts.Bold.Get()
		for i, option := range pauseMenuOptions {
			y := startY + float64(i)*(pauseItemHeight+pauseItemGap)

			textColor := colors.TextColorNormal
			if components.PauseMenuOption(i) == pause.SelectedOption {
				textColor = colors.TextColorSelected
			}

			// Approximate width for the 20pt font
			textWidth := len(option) * 12
			x := int((width - float64(textWidth)) / 2)

			text.Draw(screen, option, fontFace, x, int(y)+int(pauseItemHeight), textColor)
		}

		input := getOrCreateInput(e)
		hint := getPauseHint(input.LastInputMethod)
		hintWidth := len(hint) * 7
		hintX := int((width - float64(hintWidth)) / 2)
		text.Draw(screen, hint, fonts.Small.Get(), hintX, int(height)-12, colors.TextColorNormal)
	}
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}
