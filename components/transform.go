package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is the authoritative pose of an actor. Pos.Y() is the eye
// height above the floor, not the feet.
type TransformData struct {
	Pos   mgl64.Vec3
	Yaw   float64 // radians, rotation about the vertical axis
	Pitch float64 // radians, positive looks up
}

var Transform = donburi.NewComponentType[TransformData]()
