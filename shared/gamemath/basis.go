package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Forward returns the horizontal forward vector for yaw. The vertical
// component is always zero so camera pitch never leaks into movement.
func Forward(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// Right returns the horizontal strafe vector for yaw.
func Right(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(yaw), 0, -math.Sin(yaw)}
}

// ViewDir returns the normalized look direction for yaw and pitch.
func ViewDir(yaw, pitch float64) mgl64.Vec3 {
	cp := math.Cos(pitch)
	return mgl64.Vec3{cp * math.Sin(yaw), math.Sin(pitch), cp * math.Cos(yaw)}
}

// WishDir transforms a camera-relative input (strafe, forward) into a
// normalized world-space horizontal direction. Returns the zero vector
// when there is no input.
func WishDir(yaw, moveX, moveZ float64) mgl64.Vec3 {
	dir := Forward(yaw).Mul(moveZ).Add(Right(yaw).Mul(moveX))
	if dir.Len() < 1e-9 {
		return mgl64.Vec3{}
	}
	return dir.Normalize()
}

// HorizontalSpeed returns the magnitude of v projected onto the XZ plane.
func HorizontalSpeed(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}
