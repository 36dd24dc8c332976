package components

import (
	"github.com/automoto/foolrunner/hazard"
	"github.com/automoto/foolrunner/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlayerData is the runner. Body is authoritative; everything else is
// per-step scratch shared between the movement, collision and hazard systems.
type PlayerData struct {
	Body    *physics.Body
	Intent  physics.Intent
	Pending math.Vec2 // Displacement requested by movement, consumed by collision
	Last    physics.Result
	Cause   hazard.Cause // Why the body died; CauseNone while alive
}

var Player = donburi.NewComponentType[PlayerData]()
