package components

import (
	"github.com/automoto/foolrunner/run"
	"github.com/yohamta/donburi"
)

// RunData is the attempt in progress and the record to beat.
type RunData struct {
	Tracker *run.Tracker
	Best    float64
	Region  int
}

var Run = donburi.NewComponentType[RunData]()
