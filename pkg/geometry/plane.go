package geometry

import (
	"github.com/df07/go-raymarcher/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal, pointing to the outside half-space
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
	}
}

// Eval returns the signed height of p above the plane
func (pl *Plane) Eval(p core.Vec3) float32 {
	return p.Sub(pl.Point).Dot(pl.Normal)
}
