package scenes

import (
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/level"
	"github.com/automoto/foolrunner/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Session is the state that outlives scene changes: configuration, loaded
// levels, the game state machine and the stores.
type Session struct {
	Config      cfg.Config
	Input       cfg.InputConfig
	Levels      []*level.Level
	Machine     *cfg.StateMachine
	Recorder    systems.RunRecorder  // nil when run history is disabled
	Persistence *systems.Persistence // nil when settings are not saved
	Saved       *systems.SavedSettings
	Sprite      *ebiten.Image // nil draws the placeholder
}

// LevelNames lists the loaded levels in order.
func (s *Session) LevelNames() []string {
	names := make([]string, len(s.Levels))
	for i, lvl := range s.Levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelIndex returns the position of name, or 0.
func (s *Session) LevelIndex(name string) int {
	for i, lvl := range s.Levels {
		if lvl.Name == name {
			return i
		}
	}
	return 0
}

// BestDistance is the record on a level, or 0 when unknown.
func (s *Session) BestDistance(name string) float64 {
	if s.Recorder == nil {
		return 0
	}
	best, err := s.Recorder.BestDistance(name)
	if err != nil {
		log.Warn("cannot read best distance", "level", name, "error", err)
		return 0
	}
	return best
}

// rememberLevel saves the level last started so the menu reopens on it.
func (s *Session) rememberLevel(index int) {
	if s.Saved == nil || index < 0 || index >= len(s.Levels) {
		return
	}
	s.Saved.LastLevel = s.Levels[index].Name
	if err := s.Persistence.SaveSettings(s.Saved); err != nil {
		log.Warn("cannot save settings", "error", err)
	}
}
