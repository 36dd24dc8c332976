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

const numSettingsOptions = int(components.SettingsOptBack) + 1

// NewUpdateSettingsMenu handles settings navigation and value changes.
// Closing the menu writes the values into saved and persists them.
func NewUpdateSettingsMenu(p *Persistence, saved *SavedSettings) ecs.System {
	return func(e *ecs.ECS) {
		settings := GetOrCreateSettingsMenu(e)

		// The press that opened the menu is not an action inside it.
		if !settings.IsOpen || settings.OpenedStep == GetOrCreateClock(e).Step {
			return
		}

		input := getOrCreateInput(e)

		if settings.ShowingControls {
			if GetAction(input, cfg.ActionMenuBack).JustPressed ||
				GetAction(input, cfg.ActionMenuSelect).JustPressed ||
				GetAction(input, cfg.ActionPause).JustPressed {
				settings.ShowingControls = false
			}
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			settings.SelectedOption = components.SettingsMenuOption(
				(int(settings.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			settings.SelectedOption = components.SettingsMenuOption(
				(int(settings.SelectedOption) + 1) % numSettingsOptions,
			)
		}

		if GetAction(input, cfg.ActionMoveLeft).JustPressed || GetAction(input, cfg.ActionMoveRight).JustPressed {
			adjustValue(e, settings)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			handleSelect(e, settings, p, saved)
			return
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed ||
			GetAction(input, cfg.ActionPause).JustPressed {
			closeSettings(settings, p, saved)
		}
	}
}

// adjustValue flips the selected setting. Every setting has two values.
func adjustValue(e *ecs.ECS, s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptCameraStyle:
		if s.CameraStyle == cfg.CameraSnap {
			s.CameraStyle = cfg.CameraLookAhead
		} else {
			s.CameraStyle = cfg.CameraSnap
		}
		ApplyCameraStyle(e, s.CameraStyle)
	case components.SettingsOptColliders:
		s.ShowColliders = !s.ShowColliders
	case components.SettingsOptFullscreen:
		s.Fullscreen = !s.Fullscreen
		ebiten.SetFullscreen(s.Fullscreen)
	}
}

// ApplyCameraStyle switches the live camera, if any, to style.
func ApplyCameraStyle(e *ecs.ECS, style string) {
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		components.Camera.Get(cameraEntry).View.SetStyle(style)
	}
}

// handleSelect handles the select/enter action
func handleSelect(e *ecs.ECS, s *components.SettingsMenuData, p *Persistence, saved *SavedSettings) {
	switch s.SelectedOption {
	case components.SettingsOptControls:
		s.ShowingControls = true
	case components.SettingsOptBack:
		closeSettings(s, p, saved)
	default:
		adjustValue(e, s)
	}
}

// closeSettings closes the settings menu and saves settings
func closeSettings(s *components.SettingsMenuData, p *Persistence, saved *SavedSettings) {
	s.IsOpen = false
	if saved == nil {
		return
	}
	saved.CameraStyle = s.CameraStyle
	saved.ShowColliders = s.ShowColliders
	saved.Fullscreen = s.Fullscreen
	_ = p.SaveSettings(saved)
}

// NewDrawSettingsMenu renders the settings overlay.
func NewDrawSettingsMenu(colors cfg.ColorConfig) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		settings := GetOrCreateSettingsMenu(e)

		if !settings.IsOpen {
			return
		}

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.FillRect(
			screen,
			0, 0,
			float32(width), float32(height),
			colors.MenuBackground,
			false,
		)

		if settings.ShowingControls {
			drawControlsScreen(e, screen, colors, width, height)
			return
		}

		fontFace := fonts.Bold.Get()

		title := "SETTINGS"
		titleWidth := len(title) * 20
		titleX := int((width - float64(titleWidth)) / 2)
		text.Draw(screen, title, fonts.Title.Get(), titleX, 60, colors.TitleColor)

		menuItemHeight := 24.0
		menuItemGap := 10.0
		totalMenuHeight := float64(numSettingsOptions) * (menuItemHeight + menuItemGap)
		startY := (height-totalMenuHeight)/2 + 10

		for i := 0; i < numSettingsOptions; i++ {
			opt := components.SettingsMenuOption(i)
			y := startY + float64(i)*(menuItemHeight+menuItemGap)

			textColor := colors.TextColorNormal
			if opt == settings.SelectedOption {
				textColor = colors.TextColorSelected
			}

			label, value := getOptionDisplay(settings, opt)
			labelX := int(width/2) - 140
			text.Draw(screen, label, fontFace, labelX, int(y)+int(menuItemHeight), textColor)
			if value != "" {
				valueX := int(width/2) + 40
				text.Draw(screen, value, fontFace, valueX, int(y)+int(menuItemHeight), textColor)
			}
		}

		input := getOrCreateInput(e)
		hint := getSettingsHint(input.LastInputMethod)
		hintWidth := len(hint) * 7
		hintX := int((width - float64(hintWidth)) / 2)
		text.Draw(screen, hint, fonts.Small.Get(), hintX, int(height)-12, colors.TextColorNormal)
	}
}

// drawControlsScreen renders the controls/button mapping screen
func drawControlsScreen(e *ecs.ECS, screen *ebiten.Image, colors cfg.ColorConfig, width, height float64) {
	input := getOrCreateInput(e)
	fontFace := fonts.Bold.Get()

	title := "CONTROLS"
	titleWidth := len(title) * 20
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, fonts.Title.Get(), titleX, 60, colors.TitleColor)

	startY := 120.0
	lineHeight := 28.0
	labelX := int(width/2) - 140
	valueX := int(width/2) + 20

	for i, mapping := range getControlMappings(input.LastInputMethod) {
		y := startY + float64(i)*lineHeight
		text.Draw(screen, mapping.Action, fontFace, labelX, int(y), colors.TextColorNormal)
		text.Draw(screen, mapping.Button, fontFace, valueX, int(y), colors.TextColorSelected)
	}

	hint := "Press any key to go back"
	if input.LastInputMethod == components.InputXbox || input.LastInputMethod == components.InputPlayStation {
		hint = "Press any button to go back"
	}
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, fonts.Small.Get(), hintX, int(height)-12, colors.TextColorNormal)
}

// controlMapping represents a single control mapping entry
type controlMapping struct {
	Action string
	Button string
}

// getControlMappings returns control mappings for the given input method
func getControlMappings(method components.InputMethod) []controlMapping {
	switch method {
	case components.InputPlayStation:
		return []controlMapping{
			{"Move", "Left Stick / D-Pad"},
			{"Jump", "Cross (hold for height)"},
			{"Pause", "Options"},
		}
	case components.InputXbox:
		return []controlMapping{
			{"Move", "Left Stick / D-Pad"},
			{"Jump", "A (hold for height)"},
			{"Pause", "Start"},
		}
	default:
		return []controlMapping{
			{"Move", "A D / Left Right"},
			{"Jump", "Space W Up (hold for height)"},
			{"Pause", "Esc / P"},
			{"Colliders", "F3"},
		}
	}
}

// getSettingsHint returns the appropriate hint for settings menu
func getSettingsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Left/Right: Change   Cross: Select   Circle: Back"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptCameraStyle:
		if s.CameraStyle == cfg.CameraSnap {
			return "Camera", "< Snap >"
		}
		return "Camera", "< Look Ahead >"
	case components.SettingsOptColliders:
		return "Show Colliders", formatToggle(s.ShowColliders)
	case components.SettingsOptFullscreen:
		return "Fullscreen", formatToggle(s.Fullscreen)
	case components.SettingsOptControls:
		return "Controls", ">"
	case components.SettingsOptBack:
		return "< Back", ""
	default:
		return "", ""
	}
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// InitSettingsMenu seeds the settings overlay from saved values, falling
// back to the configured camera style and debug flag.
func InitSettingsMenu(e *ecs.ECS, c cfg.Config, saved *SavedSettings) {
	s := GetOrCreateSettingsMenu(e)
	s.CameraStyle = c.Camera.Style
	s.ShowColliders = c.Debug.ShowColliders
	s.Fullscreen = c.Display.Fullscreen
	if saved == nil {
		return
	}
	if saved.CameraStyle == cfg.CameraSnap || saved.CameraStyle == cfg.CameraLookAhead {
		s.CameraStyle = saved.CameraStyle
	}
	s.ShowColliders = s.ShowColliders || saved.ShowColliders
	s.Fullscreen = saved.Fullscreen
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))
		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			SelectedOption: components.SettingsOptCameraStyle,
			CameraStyle:    cfg.CameraLookAhead,
		})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the settings menu from a specific origin
func OpenSettings(e *ecs.ECS, fromPause bool) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.OpenedFromPause = fromPause
	settings.OpenedStep = GetOrCreateClock(e).Step
	settings.SelectedOption = components.SettingsOptCameraStyle
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	settings := GetOrCreateSettingsMenu(e)
	return settings.IsOpen
}
