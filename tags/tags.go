package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
)

// Resolv tags for hazard queries
const (
	ResolvActor           = "actor"
	ResolvHazard          = "hazard"
	ResolvHazardInvisible = "hazard_invisible"
)
