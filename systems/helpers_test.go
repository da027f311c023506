package systems

import (
	"github.com/yohamta/donburi"

	"github.com/skirmishdev/skirmish/components"
	cfg "github.com/skirmishdev/skirmish/config"
	"github.com/skirmishdev/skirmish/systems/factory"
)

// newActorWorld builds a world holding just the local actor and the
// effect queue, spawned at the origin facing +z.
func newActorWorld() (donburi.World, *donburi.Entry) {
	w := donburi.NewWorld()
	entity := factory.CreateLocalPlayer(w, cfg.SpawnPoint{X: 0, Z: 0, Yaw: 0})
	factory.CreateEffectQueue(w)
	return w, w.Entry(entity)
}

func tick(w donburi.World, dt float64) {
	UpdateLocomotion(w, dt)
	UpdateKinematics(w, dt)
	UpdateWeapons(w, dt)
	UpdateTargets(w, dt)
}

func setIntent(entry *donburi.Entry, moveX, moveZ float64, jumpHeld, crouchHeld bool) {
	intent := components.Intent.Get(entry)
	intent.MoveX = moveX
	intent.MoveZ = moveZ
	intent.StepActions(jumpHeld, crouchHeld)
}

func countEffects(w donburi.World, kind components.EffectKind) int {
	n := 0
	for _, e := range components.DrainEffects(w) {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
