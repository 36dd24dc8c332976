package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverOption represents the available death screen selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the death overlay: the finished run and the menu.
type GameOverData struct {
	SelectedOption GameOverOption
	Cause          string
	Distance       float64
	Best           float64
	NewBest        bool
	Fade           *gween.Tween
	Alpha          float32
}

// GameOver is the component type for the death overlay
var GameOver = donburi.NewComponentType[GameOverData]()
