package factory

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/skirmishdev/skirmish/components"
	cfg "github.com/skirmishdev/skirmish/config"
	"github.com/skirmishdev/skirmish/tags"
)

// CreateLocalPlayer spawns the local actor at the given spawn point with
// full health, standing posture and zero velocity.
func CreateLocalPlayer(w donburi.World, spawn cfg.SpawnPoint) donburi.Entity {
	entity := w.Create(
		tags.LocalPlayer,
		components.Transform,
		components.Physics,
		components.State,
		components.Health,
		components.Intent,
		components.Posture,
		components.Weapon,
	)
	entry := w.Entry(entity)

	components.Transform.Set(entry, &components.TransformData{
		Pos: mgl64.Vec3{spawn.X, cfg.Player.StandingEyeHeight, spawn.Z},
		Yaw: spawn.Yaw,
	})
	components.Physics.Set(entry, &components.PhysicsData{OnGround: true})
	components.State.Set(entry, &components.StateData{Current: cfg.StateGrounded})
	components.Health.Set(entry, &components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})
	posture := components.NewPostureData(cfg.Player.StandingEyeHeight)
	components.Posture.Set(entry, &posture)

	return entity
}

// CreateRemoteProxy spawns the remote actor parked at the out-of-world
// sentinel until the first Move snapshot arrives.
func CreateRemoteProxy(w donburi.World) donburi.Entity {
	entity := w.Create(tags.RemotePlayer, components.RemoteActor)
	entry := w.Entry(entity)

	components.RemoteActor.Set(entry, &components.RemoteActorData{
		Pos:    mgl64.Vec3{0, cfg.Arena.RemoteSentinelY, 0},
		Health: cfg.Player.MaxHealth,
	})
	return entity
}

// CreateTargets instantiates every configured training target, active and
// at full health.
func CreateTargets(w donburi.World) {
	for i, spec := range cfg.Arena.Targets {
		damage := cfg.Combat.TargetDamage
		if spec.Heavy {
			damage = cfg.Combat.HeavyTargetDamage
		}
		entity := w.Create(tags.Target, components.Target)
		entry := w.Entry(entity)
		components.Target.Set(entry, &components.TargetData{
			ID:        i,
			Pos:       mgl64.Vec3{spec.X, spec.Y, spec.Z},
			Radius:    spec.Radius,
			Health:    100,
			MaxHealth: 100,
			Damage:    damage,
			Active:    true,
		})
	}
}

// CreateEffectQueue spawns the singleton queue the render collaborator
// drains each frame.
func CreateEffectQueue(w donburi.World) donburi.Entity {
	entity := w.Create(components.Effects)
	return entity
}
