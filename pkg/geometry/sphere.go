package geometry

import (
	"github.com/df07/go-raymarcher/pkg/core"
)

// Sphere is a sphere centered at the local origin
type Sphere struct {
	Radius float32
}

// NewSphere creates a new sphere
func NewSphere(radius float32) *Sphere {
	return &Sphere{Radius: radius}
}

// Eval returns the exact distance to the sphere surface
func (s *Sphere) Eval(p core.Vec3) float32 {
	return p.Len() - s.Radius
}
