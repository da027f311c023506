package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RaySphere returns the distance along the ray (origin, dir) to a sphere,
// and whether the ray hits it at all. dir must be normalized. Hits behind
// the origin do not count.
func RaySphere(origin, dir, center mgl64.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq // origin inside the sphere
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// RayCylinder intersects the ray with a capped vertical cylinder whose
// axis passes through (cx, cz) and spans [yMin, yMax]. Returns the entry
// distance and whether it hits. Caps are closed: a ray entering through
// the top or bottom disc counts.
func RayCylinder(origin, dir mgl64.Vec3, cx, cz, radius, yMin, yMax float64) (float64, bool) {
	ox, oz := origin.X()-cx, origin.Z()-cz
	dx, dz := dir.X(), dir.Z()

	a := dx*dx + dz*dz
	best := math.Inf(1)
	found := false

	if a > 1e-12 {
		b := ox*dx + oz*dz
		c := ox*ox + oz*oz - radius*radius
		disc := b*b - a*c
		if disc >= 0 {
			sq := math.Sqrt(disc)
			for _, t := range []float64{(-b - sq) / a, (-b + sq) / a} {
				if t < 0 || t >= best {
					continue
				}
				y := origin.Y() + dir.Y()*t
				if y >= yMin && y <= yMax {
					best = t
					found = true
				}
			}
		}
	}

	// Caps
	if math.Abs(dir.Y()) > 1e-12 {
		for _, yCap := range []float64{yMin, yMax} {
			t := (yCap - origin.Y()) / dir.Y()
			if t < 0 || t >= best {
				continue
			}
			px := origin.X() + dir.X()*t - cx
			pz := origin.Z() + dir.Z()*t - cz
			if px*px+pz*pz <= radius*radius {
				best = t
				found = true
			}
		}
	}

	if !found {
		return 0, false
	}
	return best, true
}
