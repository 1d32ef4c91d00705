package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is the float32 vector used for points, directions and linear RGB colors
type Vec3 = mgl32.Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Splat returns a vector with all three components set to v
func Splat(v float32) Vec3 {
	return Vec3{v, v, v}
}

// Abs returns the component-wise absolute value
func Abs(v Vec3) Vec3 {
	return Vec3{math32.Abs(v[0]), math32.Abs(v[1]), math32.Abs(v[2])}
}

// MaxElem returns the component-wise maximum of two vectors
func MaxElem(a, b Vec3) Vec3 {
	return Vec3{math32.Max(a[0], b[0]), math32.Max(a[1], b[1]), math32.Max(a[2], b[2])}
}

// PositivePart replaces negative and NaN components with zero
func PositivePart(v Vec3) Vec3 {
	for i := range v {
		if !(v[i] > 0) {
			v[i] = 0
		}
	}
	return v
}

// MinElem returns the component-wise minimum of two vectors
func MinElem(a, b Vec3) Vec3 {
	return Vec3{math32.Min(a[0], b[0]), math32.Min(a[1], b[1]), math32.Min(a[2], b[2])}
}

// MulElem returns component-wise multiplication of two vectors
func MulElem(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// MaxComponent returns the largest of the three components
func MaxComponent(v Vec3) float32 {
	return math32.Max(v[0], math32.Max(v[1], v[2]))
}

// IsFinite reports whether no component is NaN or infinite
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}
