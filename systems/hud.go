package systems

import (
	"fmt"

	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
	hudWidth      = 190
)

// NewDrawHUD renders the distance, best distance and time alive in the
// top-left corner.
func NewDrawHUD(colors cfg.ColorConfig) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		runEntry, ok := components.Run.First(e.World)
		if !ok {
			return
		}
		r := components.Run.Get(runEntry)

		lines := []string{
			fmt.Sprintf("Distance %6.1f", r.Tracker.Distance()),
			fmt.Sprintf("Best     %6.1f", max(r.Best, r.Tracker.Distance())),
			fmt.Sprintf("Time     %6.1fs", r.Tracker.Elapsed()),
		}

		vector.FillRect(screen,
			float32(hudMargin-4), float32(hudMargin-4),
			float32(hudWidth), float32(len(lines)*hudLineHeight+8),
			cfg.BlackOverlay, false)

		face := fonts.Regular.Get()
		for i, line := range lines {
			text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight-4, colors.TextColorNormal)
		}
	}
}
