package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/skirmishdev/skirmish/components"
	cfg "github.com/skirmishdev/skirmish/config"
	"github.com/skirmishdev/skirmish/shared/messages"
)

// BuildMove snapshots the local actor into a Move payload. Reports false
// when no local actor exists.
func BuildMove(w donburi.World) (messages.Move, bool) {
	entry, ok := components.Health.First(w)
	if !ok {
		return messages.Move{}, false
	}
	tf := components.Transform.Get(entry)
	hp := components.Health.Get(entry)
	return messages.Move{
		Position: toWire(tf.Pos),
		Yaw:      tf.Yaw,
		Health:   hp.Current,
	}, true
}

// ApplyMove overwrites the remote actor wholesale with the snapshot.
// Applying the same payload twice is a no-op after the first.
func ApplyMove(w donburi.World, msg messages.Move) {
	entry, ok := components.RemoteActor.First(w)
	if !ok {
		return
	}
	remote := components.RemoteActor.Get(entry)
	remote.Pos = fromWire(msg.Position)
	remote.Yaw = msg.Yaw
	remote.Health = clampHealth(msg.Health)
}

// ApplyShoot queues the peer's tracer. Cosmetic only: no hit detection
// happens on the receiving side.
func ApplyShoot(w donburi.World, msg messages.Shoot) {
	components.PushEffect(w, components.Effect{
		Kind:   components.EffectRemoteTracer,
		Origin: fromWire(msg.Origin),
		Dir:    fromWire(msg.Direction),
	})
}

// ApplyHit applies peer-reported damage to the local actor, clamping at
// zero and triggering the respawn sequence on death. The protocol is
// trust-based: no verification that the shot was legitimate.
func ApplyHit(w donburi.World, msg messages.Hit) {
	entry, ok := components.Health.First(w)
	if !ok {
		return
	}
	hp := components.Health.Get(entry)
	hp.Damage(msg.Damage)
	if hp.Current <= 0 {
		RespawnLocal(w)
	}
}

func toWire(v mgl64.Vec3) messages.Vec3 {
	return messages.Vec3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func fromWire(v messages.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func clampHealth(h int) int {
	if h < 0 {
		return 0
	}
	if h > cfg.Player.MaxHealth {
		return cfg.Player.MaxHealth
	}
	return h
}
