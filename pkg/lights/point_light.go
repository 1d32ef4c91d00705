package lights

import (
	"github.com/df07/go-raymarcher/pkg/core"
)

// PointLight is an ideal point light. It has no falloff with distance and
// casts no shadows.
type PointLight struct {
	Color     core.Vec3 // Linear RGB color
	Intensity float32   // Scalar multiplier on Color
	Position  core.Vec3 // World-space position
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, intensity float32) PointLight {
	return PointLight{Color: color, Intensity: intensity, Position: position}
}

// DirectionFrom returns the unit direction from a surface point to the light
func (l PointLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.Position.Sub(point).Normalize()
}
