// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/faultland/pkg/math"
)

// Orbit defaults.
const (
	DefaultRadius    = 1.4
	DefaultSpeed     = 0.3 // radians per second
	DefaultClearance = 0.2 // height above the highest terrain vertex
)

// DefaultTarget is the look-at point, slightly below the origin.
var DefaultTarget = math.Vec3{X: 0, Y: -0.2, Z: 0}

// OrbitCamera circles the Y axis at a fixed radius, always looking at Target.
type OrbitCamera struct {
	Angle     float32 // radians, only ever increases
	Radius    float32
	Height    float32
	Speed     float32 // radians per second
	Clearance float32
	Target    math.Vec3
	Paused    bool
}

// NewOrbitCamera creates an orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Radius:    DefaultRadius,
		Height:    DefaultClearance,
		Speed:     DefaultSpeed,
		Clearance: DefaultClearance,
		Target:    DefaultTarget,
	}
}

// Advance moves the camera along its orbit by dt seconds.
// Negative dt is ignored so the angle never decreases.
func (c *OrbitCamera) Advance(dt float64) {
	if c.Paused || dt <= 0 {
		return
	}
	c.Angle += c.Speed * float32(dt)
}

// SetHeightAbove places the orbit Clearance units above maxHeight.
func (c *OrbitCamera) SetHeightAbove(maxHeight float32) {
	c.Height = maxHeight + c.Clearance
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	a := float64(c.Angle)
	return math.Vec3{
		X: c.Radius * float32(gomath.Cos(a)),
		Y: c.Height,
		Z: c.Radius * float32(gomath.Sin(a)),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.Target, up)
}
