package systems

import (
	"github.com/yohamta/donburi"

	"github.com/skirmishdev/skirmish/components"
	cfg "github.com/skirmishdev/skirmish/config"
	"github.com/skirmishdev/skirmish/shared/gamemath"
)

// UpdateKinematics integrates velocity and position for every entity with
// Physics. Pure function of (state, input, dt): gravity, horizontal
// damping, camera-relative acceleration, semi-implicit Euler, floor
// clamp against the current eye height, and the arena boundary.
func UpdateKinematics(w donburi.World, dt float64) {
	components.Physics.Each(w, func(entry *donburi.Entry) {
		ph := components.Physics.Get(entry)
		tf := components.Transform.Get(entry)
		st := components.State.Get(entry)
		intent := components.Intent.Get(entry)
		posture := components.Posture.Get(entry)

		// Gravity applies every tick unconditionally.
		ph.Vel[1] -= cfg.Player.Gravity * dt

		// Horizontal damping while grounded. Sliding keeps most of its
		// momentum through a far smaller coefficient.
		if ph.OnGround {
			k := cfg.Player.Friction
			if st.Current == cfg.StateSliding {
				k = cfg.Player.SlideFriction
			}
			damp := 1 - k*dt
			if damp < 0 {
				damp = 0
			}
			ph.Vel[0] *= damp
			ph.Vel[2] *= damp

			if gamemath.HorizontalSpeed(ph.Vel) < cfg.Player.SpeedEpsilon {
				ph.Vel[0] = 0
				ph.Vel[2] = 0
			}
		}

		// Acceleration from intent. Airborne control is a fraction of
		// ground control; a slide ignores directional input entirely.
		if st.Current != cfg.StateSliding {
			accel := cfg.Player.GroundAccel
			if !ph.OnGround {
				accel *= cfg.Player.AirControl
			}
			wish := gamemath.WishDir(tf.Yaw, intent.MoveX, intent.MoveZ)
			ph.Vel = ph.Vel.Add(wish.Mul(accel * dt))
		}

		// Semi-implicit Euler.
		tf.Pos = tf.Pos.Add(ph.Vel.Mul(dt))

		// Floor collision at the current eye height. A grounded actor
		// whose floor moved (posture change) snaps to it rather than
		// briefly going airborne; an upward velocity always lifts off.
		floor := posture.EyeHeight
		const postureSnap = 0.8
		switch {
		case tf.Pos.Y() <= floor:
			tf.Pos[1] = floor
			ph.Vel[1] = 0
			ph.OnGround = true
		case ph.OnGround && ph.Vel.Y() <= 0 && tf.Pos.Y()-floor <= postureSnap:
			tf.Pos[1] = floor
			ph.Vel[1] = 0
		default:
			ph.OnGround = false
		}

		tf.Pos = gamemath.ClampToArena(tf.Pos, cfg.Arena.Radius)
	})
}
