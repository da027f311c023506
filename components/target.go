package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TargetData is a shootable training target. Each target owns its own
// respawn countdown.
type TargetData struct {
	ID        int
	Pos       mgl64.Vec3
	Radius    float64
	Health    int
	MaxHealth int
	Damage    int // damage this target takes per shot
	Active    bool
	RespawnIn float64 // seconds until reactivation, 0 when not armed
}

var Target = donburi.NewComponentType[TargetData]()
