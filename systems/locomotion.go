package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/skirmishdev/skirmish/components"
	cfg "github.com/skirmishdev/skirmish/config"
	"github.com/skirmishdev/skirmish/shared/gamemath"
)

// UpdateLocomotion runs the movement state machine for every entity with
// State: slide entry/expiry, jump and wall-jump impulses, the wall
// probe, and posture retargeting. Runs before UpdateKinematics each tick.
func UpdateLocomotion(w donburi.World, dt float64) {
	components.State.Each(w, func(entry *donburi.Entry) {
		st := components.State.Get(entry)
		ph := components.Physics.Get(entry)
		tf := components.Transform.Get(entry)
		intent := components.Intent.Get(entry)
		posture := components.Posture.Get(entry)

		updateSlide(st, ph, intent, dt)
		probeWalls(ph, tf)
		handleJump(st, ph, intent)
		deriveState(st, ph, intent)

		posture.SetTarget(eyeTargetFor(st.Current), cfg.Player.PostureTweenTime)
		posture.Step(dt)
	})
}

func updateSlide(st *components.StateData, ph *components.PhysicsData, intent *components.IntentData, dt float64) {
	// Expiry: the timer runs out, or crouch is released early.
	if st.Current == cfg.StateSliding {
		st.SlideLeft -= dt
		if st.SlideLeft <= 0 || !intent.Crouch.Pressed {
			st.SlideLeft = 0
			st.Current = cfg.StateGrounded // deriveState refines this below
		}
		return
	}

	// Entry: crouch pressed while grounded and moving fast enough. A
	// second trigger before expiry is impossible by construction.
	if !intent.Crouch.JustPressed || !ph.OnGround {
		return
	}
	speed := gamemath.HorizontalSpeed(ph.Vel)
	if speed < cfg.Player.SlideSpeedThreshold {
		return
	}

	dir := mgl64.Vec3{ph.Vel.X() / speed, 0, ph.Vel.Z() / speed}
	ph.Vel = ph.Vel.Add(dir.Mul(cfg.Player.SlideBoost))
	st.Current = cfg.StateSliding
	st.SlideLeft = cfg.Player.SlideDuration
}

func handleJump(st *components.StateData, ph *components.PhysicsData, intent *components.IntentData) {
	if !intent.Jump.JustPressed {
		return
	}

	if ph.OnGround {
		// Ground jump. Cancels an active slide but keeps its horizontal
		// velocity: the slide-hop.
		ph.Vel[1] = cfg.Player.JumpImpulse
		ph.OnGround = false
		st.Current = cfg.StateAirborne
		st.SlideLeft = 0
		return
	}

	if ph.WallJumpReady {
		ph.Vel[1] = cfg.Player.JumpImpulse * cfg.Player.WallJumpFraction
		ph.Vel = ph.Vel.Add(ph.WallNormal.Mul(cfg.Player.WallJumpPush))
		ph.WallJumpReady = false
	}
}

// probeWalls recomputes wall-jump eligibility: four camera-relative
// cardinal rays against the pillars and the arena wall. Forced off while
// grounded.
func probeWalls(ph *components.PhysicsData, tf *components.TransformData) {
	if ph.OnGround {
		ph.WallJumpReady = false
		return
	}

	probes := []mgl64.Vec3{
		gamemath.Forward(tf.Yaw),
		gamemath.Forward(tf.Yaw).Mul(-1),
		gamemath.Right(tf.Yaw),
		gamemath.Right(tf.Yaw).Mul(-1),
	}

	ph.WallJumpReady = false
	best := cfg.Player.WallProbeDistance

	for _, dir := range probes {
		for _, pillar := range cfg.Arena.Pillars {
			t, ok := gamemath.RayCylinder(tf.Pos, dir, pillar.X, pillar.Z, pillar.Radius, 0, pillar.Height)
			if !ok || t > best {
				continue
			}
			// Normal points from the pillar axis to the actor.
			n := mgl64.Vec3{tf.Pos.X() - pillar.X, 0, tf.Pos.Z() - pillar.Z}
			if n.Len() < 1e-9 {
				continue
			}
			ph.WallJumpReady = true
			ph.WallNormal = n.Normalize()
			best = t
		}
	}

	// The boundary wall is also jumpable.
	if d := gamemath.DistanceToBoundary(tf.Pos, cfg.Arena.Radius); d <= cfg.Player.WallProbeDistance && d < best {
		if n := gamemath.BoundaryNormal(tf.Pos); n.Len() > 0 {
			ph.WallJumpReady = true
			ph.WallNormal = n
		}
	}
}

// deriveState settles the movement tag from ground contact and crouch
// input. Sliding owns the tag until it expires.
func deriveState(st *components.StateData, ph *components.PhysicsData, intent *components.IntentData) {
	if st.Current == cfg.StateSliding {
		return
	}
	switch {
	case !ph.OnGround:
		st.Current = cfg.StateAirborne
	case intent.Crouch.Pressed:
		st.Current = cfg.StateCrouching
	default:
		st.Current = cfg.StateGrounded
	}
}

func eyeTargetFor(state cfg.StateID) float64 {
	switch state {
	case cfg.StateSliding:
		return cfg.Player.SlideEyeHeight
	case cfg.StateCrouching:
		return cfg.Player.CrouchEyeHeight
	default:
		return cfg.Player.StandingEyeHeight
	}
}
