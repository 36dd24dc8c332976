package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceIsFurthestPoint(t *testing.T) {
	tr := NewTracker(32, 2000)
	tr.Start(100)

	tr.Update(164, 0.5)
	tr.Update(132, 0.5) // backtracking does not reduce it
	assert.InDelta(t, 2.0, tr.Distance(), 1e-9)
	assert.InDelta(t, 1.0, tr.Elapsed(), 1e-9)
}

func TestStartResets(t *testing.T) {
	tr := NewTracker(32, 2000)
	tr.Start(0)
	tr.Update(640, 2)

	tr.Start(50)
	assert.Zero(t, tr.Distance())
	assert.Zero(t, tr.Elapsed())
	assert.Equal(t, 2, tr.Attempts())
}

func TestRegionCycles(t *testing.T) {
	tr := NewTracker(32, 2000)
	tr.Start(0)
	assert.Equal(t, 0, tr.Region(3))

	tr.Update(1999, 0)
	assert.Equal(t, 0, tr.Region(3))
	tr.Update(2000, 0)
	assert.Equal(t, 1, tr.Region(3))
	tr.Update(6500, 0)
	assert.Equal(t, 0, tr.Region(3), "wraps after the last region")
	assert.Zero(t, tr.Region(0))
}

func TestResult(t *testing.T) {
	tr := NewTracker(32, 2000)
	tr.Start(0)
	tr.Update(100, 1.2345)

	r := tr.Result("meadow", "hazard")
	assert.Equal(t, "meadow", r.Level)
	assert.Equal(t, "hazard", r.Cause)
	assert.InDelta(t, 3.13, r.Distance, 1e-9)
	assert.InDelta(t, 1.23, r.Duration, 1e-9)
}
