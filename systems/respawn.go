package systems

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/skirmishdev/skirmish/components"
	cfg "github.com/skirmishdev/skirmish/config"
)

// UpdateTargets counts down sunk targets and reactivates them at full
// health when their deadline passes. Deadlines are time-remaining fields,
// not scheduled callbacks, so tests never need a real clock.
func UpdateTargets(w donburi.World, dt float64) {
	components.Target.Each(w, func(entry *donburi.Entry) {
		target := components.Target.Get(entry)
		if target.Active || target.RespawnIn <= 0 {
			return
		}
		target.RespawnIn -= dt
		if target.RespawnIn <= 0 {
			target.RespawnIn = 0
			target.Health = target.MaxHealth
			target.Active = true
		}
	})
}

// RespawnLocal resets the local actor after death: full health, a
// randomized spawn point, zero velocity, standing posture.
func RespawnLocal(w donburi.World) {
	entry, ok := components.Health.First(w)
	if !ok {
		return
	}

	hp := components.Health.Get(entry)
	tf := components.Transform.Get(entry)
	ph := components.Physics.Get(entry)
	st := components.State.Get(entry)
	posture := components.Posture.Get(entry)

	spawn := cfg.Arena.SpawnPoints[rand.Intn(len(cfg.Arena.SpawnPoints))]

	hp.Current = hp.Max
	tf.Pos = mgl64.Vec3{spawn.X, cfg.Player.StandingEyeHeight, spawn.Z}
	tf.Yaw = spawn.Yaw
	tf.Pitch = 0
	ph.Vel = mgl64.Vec3{}
	ph.OnGround = true
	ph.WallJumpReady = false
	st.Current = cfg.StateGrounded
	st.SlideLeft = 0
	posture.SetTarget(cfg.Player.StandingEyeHeight, cfg.Player.PostureTweenTime)

	components.PushEffect(w, components.Effect{Kind: components.EffectRespawn, Origin: tf.Pos})
}
