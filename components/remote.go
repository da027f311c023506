package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// RemoteActorData is the last-known snapshot of the peer. No velocity and
// no interpolation: each inbound Move overwrites it wholesale.
type RemoteActorData struct {
	Pos    mgl64.Vec3
	Yaw    float64
	Health int
}

var RemoteActor = donburi.NewComponentType[RemoteActorData]()
