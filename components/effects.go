package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// EffectKind discriminates the declarative effect descriptions handed to
// the rendering collaborator. Gameplay code never touches render state
// directly; it queues one of these instead.
type EffectKind int

const (
	EffectTracer       EffectKind = iota // local shot fired
	EffectRemoteTracer                   // peer's shot, cosmetic only
	EffectTargetHit                      // a target took damage
	EffectTargetSunk                     // a target was deactivated
	EffectHitmarker                      // local shot struck the remote proxy
	EffectRespawn                        // local actor respawned
)

type Effect struct {
	Kind     EffectKind
	Origin   mgl64.Vec3
	Dir      mgl64.Vec3
	TargetID int
}

// EffectsData is a per-tick queue drained by the render collaborator.
type EffectsData struct {
	Queue []Effect
}

var Effects = donburi.NewComponentType[EffectsData]()

// PushEffect appends to the singleton effect queue, if one exists.
func PushEffect(w donburi.World, e Effect) {
	entry, ok := Effects.First(w)
	if !ok {
		return
	}
	fx := Effects.Get(entry)
	fx.Queue = append(fx.Queue, e)
}

// DrainEffects returns all queued effects and empties the queue.
func DrainEffects(w donburi.World) []Effect {
	entry, ok := Effects.First(w)
	if !ok {
		return nil
	}
	fx := Effects.Get(entry)
	out := fx.Queue
	fx.Queue = nil
	return out
}
