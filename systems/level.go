package systems

import (
	"image"
	"image/color"

	"github.com/automoto/foolrunner/components"
	cfg "github.com/automoto/foolrunner/config"
	"github.com/automoto/foolrunner/frame"
	"github.com/automoto/foolrunner/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	spikeVertices []ebiten.Vertex
	spikeIndices  []uint16
)

// NewDrawLevel paints the region background, then the tiles, hazards and
// spikes of the latest snapshot.
func NewDrawLevel(colors cfg.ColorConfig) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		frameEntry, ok := components.Frame.First(e.World)
		if !ok {
			return
		}
		snap := components.Frame.Get(frameEntry).Snapshot

		screen.Fill(regionColor(e, colors))

		ox, oy := snap.Offset.X, snap.Offset.Y
		for _, item := range snap.Items {
			switch it := item.(type) {
			case frame.TileItem:
				fillWorldRect(screen, it.Rect, ox, oy, it.Look.Color)
			case frame.HazardItem:
				if it.Look.Transparent() {
					continue
				}
				fillWorldRect(screen, it.Rect, ox, oy, it.Look.Color)
			case frame.SpikeItem:
				drawSpikes(screen, it, ox, oy)
			}
		}
	}
}

// regionColor is the background of the region the run has reached.
func regionColor(e *ecs.ECS, colors cfg.ColorConfig) color.Color {
	if len(colors.Regions) == 0 {
		return cfg.SkyBlue
	}
	region := 0
	if runEntry, ok := components.Run.First(e.World); ok {
		region = components.Run.Get(runEntry).Region
	}
	return colors.Regions[region%len(colors.Regions)]
}

func fillWorldRect(screen *ebiten.Image, r level.Rect, ox, oy float64, c color.Color) {
	vector.FillRect(screen, float32(r.X-ox), float32(r.Y-oy), float32(r.W), float32(r.H), c, false)
}

// drawSpikes fills Count triangles across the hazard, apex up.
func drawSpikes(screen *ebiten.Image, s frame.SpikeItem, ox, oy float64) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	c := s.Look.Color
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	w := float32(s.Rect.W) / float32(s.Count)
	x0 := float32(s.Rect.X - ox)
	top := float32(s.Rect.Y - oy)
	bottom := top + float32(s.Rect.H)

	spikeVertices = spikeVertices[:0]
	spikeIndices = spikeIndices[:0]
	for i := 0; i < s.Count; i++ {
		left := x0 + float32(i)*w
		base := uint16(len(spikeVertices))
		for _, p := range [3][2]float32{{left, bottom}, {left + w/2, top}, {left + w, bottom}} {
			spikeVertices = append(spikeVertices, ebiten.Vertex{
				DstX: p[0], DstY: p[1],
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
		spikeIndices = append(spikeIndices, base, base+1, base+2)
	}
	screen.DrawTriangles(spikeVertices, spikeIndices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}
