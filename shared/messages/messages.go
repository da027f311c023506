package messages

// Vec3 is the wire shape for a 3D vector.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Move is the full-snapshot pose broadcast at a fixed rate. The latest
// message wholly overwrites remote state, so drops and reordering
// self-heal on the next send.
type Move struct {
	Position Vec3    `json:"position"`
	Yaw      float64 `json:"yaw"`
	Health   int     `json:"health"`
}

// Shoot is sent once per fire event so the peer can draw a tracer. The
// receiver performs no hit detection from it.
type Shoot struct {
	Origin    Vec3 `json:"origin"`
	Direction Vec3 `json:"direction"`
}

// Hit is sent by the shooter when its raycast strikes the remote proxy.
// Damage is applied on the receiving end, never locally.
type Hit struct {
	Damage int `json:"damage"`
}
