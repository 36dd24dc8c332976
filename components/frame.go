package components

import (
	"github.com/automoto/foolrunner/frame"
	"github.com/yohamta/donburi"
)

// FrameData is the latest render handoff. Renderers only read it.
type FrameData struct {
	Snapshot frame.Snapshot
	Palette  frame.Palette
}

var Frame = donburi.NewComponentType[FrameData]()
