package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/fonts"
	"github.com/automoto/foolrunner/frame"
	"github.com/automoto/foolrunner/level"
	"github.com/automoto/foolrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collider overlay.
func UpdateDebug(e *ecs.ECS) {
	if GetAction(getOrCreateInput(e), cfg.ActionDebug).JustPressed {
		s := GetOrCreateSettingsMenu(e)
		s.ShowColliders = !s.ShowColliders
	}
}

// NewDrawDebug outlines every collider in view: solid tiles, hazards
// (including invisible ones) and the actor, plus the body's state.
func NewDrawDebug(colors cfg.ColorConfig) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !GetOrCreateSettingsMenu(e).ShowColliders {
			return
		}
		frameEntry, ok := components.Frame.First(e.World)
		if !ok {
			return
		}
		snap := components.Frame.Get(frameEntry).Snapshot
		ox, oy := snap.Offset.X, snap.Offset.Y
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		view := level.Rect{X: ox, Y: oy, W: float64(w), H: float64(h)}

		for _, item := range snap.Items {
			if item.Kind() == frame.StaticTile {
				strokeRect(screen, item.WorldRect(), ox, oy, color.RGBA{100, 100, 100, 255})
			}
		}

		if lvlEntry, ok := components.Level.First(e.World); ok {
			for _, obj := range components.Level.Get(lvlEntry).Hazards.Objects() {
				r := level.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
				if !view.Overlaps(r) {
					continue
				}
				c := color.RGBA{255, 0, 0, 255}
				if obj.HasTags(tags.ResolvHazardInvisible) {
					c = color.RGBA{255, 0, 255, 255}
				}
				strokeRect(screen, r, ox, oy, c)
			}
		}

		playerEntry, ok := components.Player.First(e.World)
		if !ok {
			return
		}
		p := components.Player.Get(playerEntry)
		strokeRect(screen, p.Body.Box, ox, oy, colors.Collider)

		b := p.Body
		status := fmt.Sprintf("%s  x=%.0f y=%.0f  vx=%.0f vy=%.0f  ground=%v",
			CurrentState(e), b.Box.X, b.Box.Y, b.Vel.X, b.Vel.Y, b.OnGround)
		text.Draw(screen, status, fonts.Small.Get(), hudMargin, h-hudMargin, colors.Collider)
	}
}

func strokeRect(screen *ebiten.Image, r level.Rect, ox, oy float64, c color.Color) {
	x, y := float32(r.X-ox), float32(r.Y-oy)
	w, h := float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
