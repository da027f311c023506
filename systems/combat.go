package systems

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/skirmishdev/skirmish/components"
	cfg "github.com/skirmishdev/skirmish/config"
	"github.com/skirmishdev/skirmish/shared/gamemath"
)

// FireReport is what a fire event produced. The sync layer broadcasts the
// ray unconditionally (cosmetic tracer) and sends a Hit message when
// HitRemote is set. Damage to the remote player is never applied locally.
type FireReport struct {
	Origin    mgl64.Vec3
	Dir       mgl64.Vec3
	HitRemote bool
}

type hitKind int

const (
	hitObstacle hitKind = iota
	hitTarget
	hitRemote
)

type rayHit struct {
	dist   float64
	kind   hitKind
	target *components.TargetData
}

// Fire resolves one hit-scan shot from the local actor's view. Returns
// nil while the weapon is cooling down. A miss is a valid, silent
// outcome; the tracer effect is queued either way.
func Fire(w donburi.World) *FireReport {
	entry, ok := components.Weapon.First(w)
	if !ok {
		return nil
	}
	weapon := components.Weapon.Get(entry)
	if weapon.CooldownLeft > 0 {
		return nil
	}
	weapon.CooldownLeft = cfg.Combat.FireCooldown

	tf := components.Transform.Get(entry)
	origin := tf.Pos
	dir := gamemath.ViewDir(tf.Yaw, tf.Pitch)

	hits := collectHits(w, origin, dir)
	report := &FireReport{Origin: origin, Dir: dir}

	if len(hits) > 0 {
		// Closest intersection wins; obstacles pre-empt anything behind.
		sort.Slice(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
		switch first := hits[0]; first.kind {
		case hitTarget:
			damageTarget(w, first.target)
		case hitRemote:
			report.HitRemote = true
			components.PushEffect(w, components.Effect{Kind: components.EffectHitmarker})
		case hitObstacle:
			// Blocked: nothing to apply.
		}
	}

	components.PushEffect(w, components.Effect{
		Kind:   components.EffectTracer,
		Origin: origin,
		Dir:    dir,
	})
	return report
}

// collectHits gathers every candidate intersection within range: static
// geometry (pillars, floor, arena wall), active targets, and the remote
// hit-proxy. Static geometry rides in the same query so closer obstacles
// block shots.
func collectHits(w donburi.World, origin, dir mgl64.Vec3) []rayHit {
	var hits []rayHit
	maxDist := cfg.Combat.MaxRayDistance

	for _, pillar := range cfg.Arena.Pillars {
		if t, ok := gamemath.RayCylinder(origin, dir, pillar.X, pillar.Z, pillar.Radius, 0, pillar.Height); ok && t <= maxDist {
			hits = append(hits, rayHit{dist: t, kind: hitObstacle})
		}
	}

	// Floor plane.
	if dir.Y() < -1e-9 {
		if t := -origin.Y() / dir.Y(); t >= 0 && t <= maxDist {
			hits = append(hits, rayHit{dist: t, kind: hitObstacle})
		}
	}

	// Arena wall: an unbounded-height cylinder at the boundary radius.
	if t, ok := gamemath.RayCylinder(origin, dir, 0, 0, cfg.Arena.Radius, -1e9, 1e9); ok && t > 1e-9 && t <= maxDist {
		hits = append(hits, rayHit{dist: t, kind: hitObstacle})
	}

	components.Target.Each(w, func(entry *donburi.Entry) {
		target := components.Target.Get(entry)
		if !target.Active {
			return
		}
		if t, ok := gamemath.RaySphere(origin, dir, target.Pos, target.Radius); ok && t <= maxDist {
			hits = append(hits, rayHit{dist: t, kind: hitTarget, target: target})
		}
	})

	if remoteEntry, ok := components.RemoteActor.First(w); ok {
		remote := components.RemoteActor.Get(remoteEntry)
		if remote.Pos.Y() > cfg.Arena.RemoteSentinelY/2 { // parked proxies are not shootable
			t, ok := gamemath.RayCylinder(origin, dir,
				remote.Pos.X(), remote.Pos.Z(), cfg.Combat.ProxyRadius,
				remote.Pos.Y()-cfg.Combat.ProxyBelowEye,
				remote.Pos.Y()+cfg.Combat.ProxyAboveEye)
			if ok && t <= maxDist {
				hits = append(hits, rayHit{dist: t, kind: hitRemote})
			}
		}
	}

	return hits
}

func damageTarget(w donburi.World, target *components.TargetData) {
	target.Health -= target.Damage
	components.PushEffect(w, components.Effect{Kind: components.EffectTargetHit, TargetID: target.ID})

	if target.Health <= 0 {
		target.Health = 0
		target.Active = false
		target.RespawnIn = cfg.Combat.TargetRespawnTime
		components.PushEffect(w, components.Effect{Kind: components.EffectTargetSunk, TargetID: target.ID})
	}
}

// UpdateWeapons advances fire cooldowns.
func UpdateWeapons(w donburi.World, dt float64) {
	components.Weapon.Each(w, func(entry *donburi.Entry) {
		weapon := components.Weapon.Get(entry)
		if weapon.CooldownLeft > 0 {
			weapon.CooldownLeft -= dt
			if weapon.CooldownLeft < 0 {
				weapon.CooldownLeft = 0
			}
		}
	})
}
