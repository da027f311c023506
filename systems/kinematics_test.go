package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/skirmishdev/skirmish/components"
	cfg "github.com/skirmishdev/skirmish/config"
	"github.com/skirmishdev/skirmish/shared/gamemath"
)

const dt = 1.0 / 60.0

func TestFrictionDecaysSpeedMonotonically(t *testing.T) {
	w, entry := newActorWorld()
	ph := components.Physics.Get(entry)
	ph.Vel = mgl64.Vec3{10, 0, 0}

	prev := gamemath.HorizontalSpeed(ph.Vel)
	for i := 0; i < 600; i++ {
		tick(w, dt)
		speed := gamemath.HorizontalSpeed(ph.Vel)
		if speed > prev {
			t.Fatalf("tick %d: speed increased %f -> %f with no input", i, prev, speed)
		}
		if ph.Vel.X() < 0 {
			t.Fatalf("tick %d: velocity reversed sign: %f", i, ph.Vel.X())
		}
		if speed == 0 {
			return
		}
		prev = speed
	}
	t.Fatalf("speed never reached zero, still %f after 10s", prev)
}

func TestGravityAndLanding(t *testing.T) {
	w, entry := newActorWorld()
	tf := components.Transform.Get(entry)
	ph := components.Physics.Get(entry)

	tf.Pos[1] = 5.0
	ph.OnGround = false

	tick(w, dt)
	if ph.Vel.Y() >= 0 {
		t.Fatalf("gravity did not pull: vel.y = %f", ph.Vel.Y())
	}
	if ph.OnGround {
		t.Fatal("actor at height 5 must be airborne")
	}

	for i := 0; i < 300 && !ph.OnGround; i++ {
		tick(w, dt)
	}
	if !ph.OnGround {
		t.Fatal("actor never landed")
	}
	if math.Abs(tf.Pos.Y()-cfg.Player.StandingEyeHeight) > 1e-9 {
		t.Fatalf("landed at %f, want eye height %f", tf.Pos.Y(), cfg.Player.StandingEyeHeight)
	}
	if ph.Vel.Y() != 0 {
		t.Fatalf("vertical velocity not zeroed on landing: %f", ph.Vel.Y())
	}
}

func TestBoundaryClampSlidesAlongWall(t *testing.T) {
	w, entry := newActorWorld()
	tf := components.Transform.Get(entry)
	ph := components.Physics.Get(entry)

	tf.Pos = mgl64.Vec3{cfg.Arena.Radius - 1, cfg.Player.StandingEyeHeight, 0}
	ph.Vel = mgl64.Vec3{80, 0, 0}

	for i := 0; i < 30; i++ {
		tick(w, dt)
		if d := math.Hypot(tf.Pos.X(), tf.Pos.Z()); d > cfg.Arena.Radius+1e-9 {
			t.Fatalf("tick %d: escaped arena, distance %f", i, d)
		}
	}

	if math.Abs(tf.Pos.X()-cfg.Arena.Radius) > 1e-9 {
		t.Fatalf("expected to ride the wall at x = %f, got %f", cfg.Arena.Radius, tf.Pos.X())
	}
	if tf.Pos.Z() != 0 {
		t.Fatalf("angular direction changed: z = %f", tf.Pos.Z())
	}
}

func TestAirControlIsWeaker(t *testing.T) {
	gain := func(airborne bool) float64 {
		w, entry := newActorWorld()
		tf := components.Transform.Get(entry)
		ph := components.Physics.Get(entry)
		if airborne {
			tf.Pos[1] = 50
			ph.OnGround = false
		}
		setIntent(entry, 0, 1, false, false)
		tick(w, dt)
		return gamemath.HorizontalSpeed(ph.Vel)
	}

	ground := gain(false)
	air := gain(true)
	if air >= ground {
		t.Fatalf("air gain %f should be below ground gain %f", air, ground)
	}
	want := ground * cfg.Player.AirControl
	if math.Abs(air-want) > ground*0.1 {
		t.Fatalf("air gain %f, want about %f", air, want)
	}
}
