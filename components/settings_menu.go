package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the settings menu
type SettingsMenuOption int

const (
	SettingsOptCameraStyle SettingsMenuOption = iota
	SettingsOptColliders
	SettingsOptFullscreen
	SettingsOptControls
	SettingsOptBack
)

// SettingsMenuData stores the current state of the settings menu overlay
type SettingsMenuData struct {
	IsOpen          bool
	SelectedOption  SettingsMenuOption
	OpenedFromPause bool // Track origin for "Back" navigation
	ShowingControls bool // True when displaying controls screen
	OpenedStep      int  // Clock step the menu was opened on

	// Current settings values
	CameraStyle   string
	ShowColliders bool
	Fullscreen    bool
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
