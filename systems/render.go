package systems

import (
	"github.com/automoto/foolrunner/components"
	"github.com/automoto/foolrunner/frame"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Renderer is the draw function shape ecs.AddRenderer accepts.
type Renderer func(e *ecs.ECS, screen *ebiten.Image)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

const deadActorAlpha = 0.5

// DrawPlayer renders the actor item of the snapshot: the sprite standing on
// the collider's bottom edge, or the placeholder rectangle.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	frameEntry, ok := components.Frame.First(e.World)
	if !ok {
		return
	}
	snap := components.Frame.Get(frameEntry).Snapshot

	var sprite *ebiten.Image
	if playerEntry, ok := components.Player.First(e.World); ok && playerEntry.HasComponent(components.Sprite) {
		sprite = components.Sprite.Get(playerEntry).Image
	}

	for _, item := range snap.Items {
		actor, ok := item.(frame.ActorItem)
		if !ok {
			continue
		}
		x := actor.Rect.X - snap.Offset.X
		y := actor.Rect.Y - snap.Offset.Y

		if sprite == nil {
			c := actor.Look.Color
			if !actor.Alive {
				c = fadeColor(c, deadActorAlpha)
			}
			vector.FillRect(screen, float32(x), float32(y), float32(actor.Rect.W), float32(actor.Rect.H), c, false)
			continue
		}

		sw, sh := sprite.Bounds().Dx(), sprite.Bounds().Dy()
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(x+(actor.Rect.W-float64(sw))/2, y+actor.Rect.H-float64(sh))
		if !actor.Alive {
			drawOp.ColorScale.ScaleAlpha(deadActorAlpha)
		}
		screen.DrawImage(sprite, drawOp)
	}
}
