// Package run measures the current attempt: how far the actor got, how
// long it stayed alive, and which background region it is in.
package run

import (
	"math"

	"github.com/automoto/foolrunner/storage"
)

// Tracker accumulates one attempt. It is reset on every respawn.
type Tracker struct {
	tileSize       float64
	regionDistance float64

	startX   float64
	furthest float64 // Pixels past startX
	elapsed  float64
	attempts int
}

// NewTracker measures distance in tiles of tileSize and switches region
// every regionDistance pixels.
func NewTracker(tileSize, regionDistance float64) *Tracker {
	return &Tracker{tileSize: tileSize, regionDistance: regionDistance}
}

// Start begins a new attempt with the actor at x.
func (t *Tracker) Start(x float64) {
	t.startX = x
	t.furthest = 0
	t.elapsed = 0
	t.attempts++
}

// Update records the actor's x after a step of dt seconds.
func (t *Tracker) Update(x, dt float64) {
	if dt > 0 {
		t.elapsed += dt
	}
	if d := x - t.startX; d > t.furthest {
		t.furthest = d
	}
}

// Distance is the furthest point reached, in tiles.
func (t *Tracker) Distance() float64 {
	if t.tileSize <= 0 {
		return 0
	}
	return t.furthest / t.tileSize
}

// Elapsed is the time alive in seconds.
func (t *Tracker) Elapsed() float64 { return t.elapsed }

// Attempts counts the starts since the tracker was created.
func (t *Tracker) Attempts() int { return t.attempts }

// Region returns the background region index in [0, n).
func (t *Tracker) Region(n int) int {
	if n <= 0 || t.regionDistance <= 0 {
		return 0
	}
	return int(math.Floor(t.furthest/t.regionDistance)) % n
}

// Result turns the attempt into a history record.
func (t *Tracker) Result(level, cause string) storage.Run {
	return storage.Run{
		Level:    level,
		Distance: math.Round(t.Distance()*100) / 100,
		Duration: math.Round(t.elapsed*100) / 100,
		Cause:    cause,
	}
}
