package config

// PlayerConfig contains all movement-related configuration values
type PlayerConfig struct {
	// Movement
	Gravity         float64 // vertical acceleration, units/s^2
	GroundAccel     float64 // horizontal acceleration while grounded, units/s^2
	AirControl      float64 // fraction of ground acceleration available airborne
	Friction        float64 // ground damping coefficient, 1/s
	JumpImpulse     float64 // vertical velocity applied on jump, units/s
	MaxHealth       int
	SpeedEpsilon    float64 // horizontal speed below this is treated as stopped

	// Slide mechanics
	SlideFriction       float64 // damping coefficient during slide (much lower than Friction)
	SlideSpeedThreshold float64 // minimum horizontal speed to initiate a slide
	SlideDuration       float64 // seconds a slide lasts if crouch stays held
	SlideBoost          float64 // instantaneous speed added along travel direction

	// Wall jump
	WallProbeDistance float64 // how far the four cardinal probes reach
	WallJumpFraction  float64 // vertical impulse as a fraction of JumpImpulse
	WallJumpPush      float64 // horizontal impulse along the wall normal, units/s

	// Posture
	StandingEyeHeight float64
	CrouchEyeHeight   float64
	SlideEyeHeight    float64
	PostureTweenTime  float64 // seconds to interpolate eye height
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	TargetDamage      int     // per-shot damage against standard training targets
	HeavyTargetDamage int     // per-shot damage the heavy target variant takes
	PlayerDamage      int     // damage carried by a Hit message
	TargetRespawnTime float64 // seconds a sunk target stays inactive
	FireCooldown      float64 // minimum seconds between shots
	MaxRayDistance    float64 // shots farther than this silently miss

	// Remote hit-proxy dimensions (a capped vertical cylinder around the
	// remote eye position)
	ProxyRadius    float64
	ProxyBelowEye  float64 // proxy extends this far below the eye
	ProxyAboveEye  float64 // and this far above
}

// Pillar is a static vertical cylinder obstacle. Pillars block shots and
// are valid wall-jump surfaces.
type Pillar struct {
	X, Z   float64
	Radius float64
	Height float64
}

// TargetSpec places a training target in the arena.
type TargetSpec struct {
	X, Y, Z float64
	Radius  float64
	Heavy   bool // heavy variant takes HeavyTargetDamage per shot
}

// SpawnPoint is a respawn location on the arena floor.
type SpawnPoint struct {
	X, Z float64
	Yaw  float64
}

// ArenaConfig describes the static world: a circular floor bounded by a
// wall, plus obstacles and targets.
type ArenaConfig struct {
	Radius      float64 // horizontal distance from origin is clamped to this
	Pillars     []Pillar
	Targets     []TargetSpec
	SpawnPoints []SpawnPoint

	// RemoteSentinel parks the remote proxy out of the world until the
	// first Move message arrives.
	RemoteSentinelY float64
}

// NetConfig contains state-sync configuration values
type NetConfig struct {
	SendRate     int // outbound Move snapshots per second
	DefaultPort  uint
	MoveBuffer   int // latest-wins, size 1
	EventBuffer  int // Shoot/Hit channel depth
}

// Global configuration instances
var Player PlayerConfig
var Combat CombatConfig
var Arena ArenaConfig
var Net NetConfig

func init() {
	// Canonical tuning. Earlier builds drifted between damage 20 and 25
	// and slide 0.5s and 1.0s; the 25 survives as the heavy target
	// variant.
	Player = PlayerConfig{
		Gravity:      24.0,
		GroundAccel:  60.0,
		AirControl:   0.35,
		Friction:     8.0,
		JumpImpulse:  8.5,
		MaxHealth:    100,
		SpeedEpsilon: 0.05,

		SlideFriction:       8.0 / 14.0,
		SlideSpeedThreshold: 12.0,
		SlideDuration:       0.7,
		SlideBoost:          4.0,

		WallProbeDistance: 1.2,
		WallJumpFraction:  0.8,
		WallJumpPush:      6.0,

		StandingEyeHeight: 1.7,
		CrouchEyeHeight:   1.0,
		SlideEyeHeight:    0.8,
		PostureTweenTime:  0.15,
	}

	Combat = CombatConfig{
		TargetDamage:      20,
		HeavyTargetDamage: 25,
		PlayerDamage:      20,
		TargetRespawnTime: 3.0,
		FireCooldown:      0.2,
		MaxRayDistance:    400.0,

		ProxyRadius:   0.45,
		ProxyBelowEye: 1.6,
		ProxyAboveEye: 0.2,
	}

	Arena = ArenaConfig{
		Radius: 100.0,
		Pillars: []Pillar{
			{X: 12, Z: 8, Radius: 1.5, Height: 6},
			{X: -15, Z: -4, Radius: 1.5, Height: 6},
			{X: 3, Z: -18, Radius: 2.0, Height: 8},
			{X: -8, Z: 20, Radius: 2.0, Height: 8},
		},
		Targets: []TargetSpec{
			{X: 20, Y: 1.5, Z: 0, Radius: 0.8},
			{X: -20, Y: 1.5, Z: 10, Radius: 0.8},
			{X: 0, Y: 2.0, Z: 30, Radius: 0.8},
			{X: 10, Y: 1.5, Z: -25, Radius: 1.0, Heavy: true},
		},
		SpawnPoints: []SpawnPoint{
			{X: 0, Z: -40, Yaw: 0},
			{X: 0, Z: 40, Yaw: 3.14159},
			{X: -40, Z: 0, Yaw: 1.5708},
			{X: 40, Z: 0, Yaw: -1.5708},
		},
		RemoteSentinelY: -1000.0,
	}

	Net = NetConfig{
		SendRate:    30,
		DefaultPort: 4530,
		MoveBuffer:  1,
		EventBuffer: 8,
	}
}
