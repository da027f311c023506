package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ClampToArena projects a position back onto the boundary circle when its
// horizontal distance from the origin exceeds radius. The angular
// direction is preserved so actors slide along the wall instead of
// stopping dead. The vertical component is untouched.
func ClampToArena(pos mgl64.Vec3, radius float64) mgl64.Vec3 {
	d := math.Hypot(pos.X(), pos.Z())
	if d <= radius || d == 0 {
		return pos
	}
	scale := radius / d
	return mgl64.Vec3{pos.X() * scale, pos.Y(), pos.Z() * scale}
}

// BoundaryNormal returns the inward-facing wall normal at pos, or the
// zero vector at the origin where no direction is defined.
func BoundaryNormal(pos mgl64.Vec3) mgl64.Vec3 {
	d := math.Hypot(pos.X(), pos.Z())
	if d == 0 {
		return mgl64.Vec3{}
	}
	return mgl64.Vec3{-pos.X() / d, 0, -pos.Z() / d}
}

// DistanceToBoundary returns how far pos is from the arena wall along the
// outward radial direction. Negative when outside.
func DistanceToBoundary(pos mgl64.Vec3, radius float64) float64 {
	return radius - math.Hypot(pos.X(), pos.Z())
}
