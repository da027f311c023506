package core

import (
	"fmt"
	"log"
	"sync"

	"github.com/yohamta/donburi"

	"github.com/skirmishdev/skirmish/components"
	cfg "github.com/skirmishdev/skirmish/config"
	"github.com/skirmishdev/skirmish/shared/messages"
	"github.com/skirmishdev/skirmish/shared/protocol"
	"github.com/skirmishdev/skirmish/systems"
	"github.com/skirmishdev/skirmish/systems/factory"
)

// PeerLink is the slice of the session manager the controller needs:
// droppy send plus the typed inbound channels. network.Session satisfies
// it; tests supply a stub.
type PeerLink interface {
	Connected() bool
	Send(kind string, payload any) error
	Moves() <-chan messages.Move
	Shots() <-chan messages.Shoot
	Hits() <-chan messages.Hit
}

// Controller owns the simulation: the ECS world, the peer link, and the
// fixed-rate Move broadcaster. It is the explicit session context object
// UI and render collaborators hold instead of globals.
//
// Update must be called from a single goroutine. The broadcaster reads
// only the mutex-guarded snapshot refreshed at the end of each Update.
type Controller struct {
	world donburi.World
	link  PeerLink

	broadcaster *Broadcaster

	mu          sync.Mutex
	snapshot    messages.Move
	hasSnapshot bool
}

// NewController builds the world and wires the peer link. The link is a
// required collaborator: construction fails fast without one rather than
// partially initializing.
func NewController(link PeerLink) (*Controller, error) {
	if link == nil {
		return nil, fmt.Errorf("core: peer link is required")
	}

	world := donburi.NewWorld()
	factory.CreateLocalPlayer(world, cfg.Arena.SpawnPoints[0])
	factory.CreateRemoteProxy(world)
	factory.CreateTargets(world)
	factory.CreateEffectQueue(world)

	c := &Controller{world: world, link: link}
	c.broadcaster = NewBroadcaster(c, cfg.Net.SendRate)
	return c, nil
}

// Start launches the outbound snapshot broadcaster.
func (c *Controller) Start() {
	go c.broadcaster.Run()
}

// Stop halts the broadcaster. The session itself is closed by its owner.
func (c *Controller) Stop() {
	c.broadcaster.Stop()
}

// SetIntent feeds the per-tick movement intent from the input
// collaborator. Edge flags for jump and crouch are derived here.
func (c *Controller) SetIntent(moveX, moveZ float64, jumpHeld, crouchHeld bool) {
	entry, ok := components.Intent.First(c.world)
	if !ok {
		return
	}
	intent := components.Intent.Get(entry)
	intent.MoveX = moveX
	intent.MoveZ = moveZ
	intent.StepActions(jumpHeld, crouchHeld)
}

// SetView applies the camera orientation from the pointer collaborator.
func (c *Controller) SetView(yaw, pitch float64) {
	entry, ok := components.Transform.First(c.world)
	if !ok {
		return
	}
	tf := components.Transform.Get(entry)
	tf.Yaw = yaw
	tf.Pitch = pitch
}

// Update advances the simulation by dt seconds: inbound messages first,
// then locomotion, kinematics, cooldowns and target respawns, and
// finally the broadcast snapshot refresh.
func (c *Controller) Update(dt float64) {
	c.drainInbound()

	systems.UpdateLocomotion(c.world, dt)
	systems.UpdateKinematics(c.world, dt)
	systems.UpdateWeapons(c.world, dt)
	systems.UpdateTargets(c.world, dt)

	c.refreshSnapshot()
}

// Fire resolves a fire input event and notifies the peer: a Shoot for
// the tracer on every shot, plus a Hit when the ray struck the proxy.
func (c *Controller) Fire() {
	report := systems.Fire(c.world)
	if report == nil {
		return
	}

	shoot := messages.Shoot{
		Origin:    messages.Vec3{X: report.Origin.X(), Y: report.Origin.Y(), Z: report.Origin.Z()},
		Direction: messages.Vec3{X: report.Dir.X(), Y: report.Dir.Y(), Z: report.Dir.Z()},
	}
	if err := c.link.Send(protocol.KindShoot, shoot); err != nil {
		log.Printf("[sync] shoot send failed: %v", err)
	}

	if report.HitRemote {
		if err := c.link.Send(protocol.KindHit, messages.Hit{Damage: cfg.Combat.PlayerDamage}); err != nil {
			log.Printf("[sync] hit send failed: %v", err)
		}
	}
}

// DrainEffects hands the queued effect descriptions to the render
// collaborator.
func (c *Controller) DrainEffects() []components.Effect {
	return components.DrainEffects(c.world)
}

// LocalState returns the authoritative local pose and health for the
// camera.
func (c *Controller) LocalState() (components.TransformData, int) {
	entry, ok := components.Transform.First(c.world)
	if !ok {
		return components.TransformData{}, 0
	}
	hp := components.Health.Get(entry)
	return *components.Transform.Get(entry), hp.Current
}

// RemoteState returns the last-known remote snapshot for the proxy
// representation.
func (c *Controller) RemoteState() components.RemoteActorData {
	entry, ok := components.RemoteActor.First(c.world)
	if !ok {
		return components.RemoteActorData{}
	}
	return *components.RemoteActor.Get(entry)
}

// World exposes the ECS world for collaborators and tests.
func (c *Controller) World() donburi.World { return c.world }

func (c *Controller) drainInbound() {
	// Latest-wins Move: at most one waiting.
	select {
	case msg := <-c.link.Moves():
		systems.ApplyMove(c.world, msg)
	default:
	}

shots:
	for {
		select {
		case msg := <-c.link.Shots():
			systems.ApplyShoot(c.world, msg)
		default:
			break shots
		}
	}

	for {
		select {
		case msg := <-c.link.Hits():
			systems.ApplyHit(c.world, msg)
		default:
			return
		}
	}
}

func (c *Controller) refreshSnapshot() {
	msg, ok := systems.BuildMove(c.world)
	c.mu.Lock()
	c.snapshot = msg
	c.hasSnapshot = ok
	c.mu.Unlock()
}

// snapshotForBroadcast is the only controller state the broadcaster
// goroutine touches.
func (c *Controller) snapshotForBroadcast() (messages.Move, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot, c.hasSnapshot
}
