package components

import (
	"github.com/automoto/foolrunner/config"
	"github.com/yohamta/donburi"
)

// GameStateData shares the application state machine with a scene's systems.
type GameStateData struct {
	Machine *config.StateMachine
}

var GameState = donburi.NewComponentType[GameStateData]()

// ClockData holds the duration of the current step in seconds.
type ClockData struct {
	DT   float64
	Step int
}

var Clock = donburi.NewComponentType[ClockData]()
