package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Vel      mgl64.Vec3
	OnGround bool

	// Wall-jump eligibility, recomputed every tick while airborne and
	// forced off while grounded.
	WallJumpReady bool
	WallNormal    mgl64.Vec3
}

var Physics = donburi.NewComponentType[PhysicsData]()
