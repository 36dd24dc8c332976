package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuPlay MainMenuOption = iota
	MainMenuLevel
	MainMenuSettings
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex  int              // Current selection index in VisibleOptions
	VisibleOptions []MainMenuOption // Options to display
	LevelIndex     int              // Level started by Play
	LevelNames     []string
	Best           float64 // Best distance on the selected level
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
