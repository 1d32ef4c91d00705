package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-raymarcher/pkg/core"
)

// Cylinder is a capped cylinder centered at the local origin along Y
type Cylinder struct {
	Radius     float32
	HalfHeight float32
}

// NewCylinder creates a cylinder with the given radius and full height
func NewCylinder(radius, height float32) *Cylinder {
	return &Cylinder{Radius: radius, HalfHeight: height * 0.5}
}

// Eval combines the radial and the axial distance like a 2D box
func (c *Cylinder) Eval(p core.Vec3) float32 {
	d := mgl32.Vec2{
		math32.Hypot(p[0], p[2]) - c.Radius,
		math32.Abs(p[1]) - c.HalfHeight,
	}
	inside := math32.Min(math32.Max(d[0], d[1]), 0)
	outside := mgl32.Vec2{math32.Max(d[0], 0), math32.Max(d[1], 0)}.Len()
	return inside + outside
}
