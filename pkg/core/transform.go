package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// minDeterminant is the smallest |det| accepted as invertible
const minDeterminant = 1e-12

// Transform is an affine 3D transform stored as a column-major 4x4 matrix
type Transform struct {
	m mgl32.Mat4
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{m: mgl32.Ident4()}
}

// NewTransform wraps an arbitrary matrix. Use IsAffine and IsInvertible to validate it.
func NewTransform(m mgl32.Mat4) Transform {
	return Transform{m: m}
}

// FromTranslation creates a pure translation
func FromTranslation(t Vec3) Transform {
	return Transform{m: mgl32.Translate3D(t[0], t[1], t[2])}
}

// FromRotationTranslation creates a rotation followed by a translation
func FromRotationTranslation(rotation mgl32.Quat, t Vec3) Transform {
	return FromScaleRotationTranslation(1, rotation, t)
}

// FromScaleRotationTranslation creates a uniform scale, then rotation, then translation
func FromScaleRotationTranslation(scale float32, rotation mgl32.Quat, t Vec3) Transform {
	m := mgl32.Translate3D(t[0], t[1], t[2]).
		Mul4(rotation.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(scale, scale, scale))
	return Transform{m: m}
}

// LookAtLH creates a left-handed world-to-view transform with the view
// looking from eye towards target along local +Z.
func LookAtLH(eye, target, up Vec3) Transform {
	f := target.Sub(eye).Normalize()
	s := up.Cross(f).Normalize()
	u := f.Cross(s)
	return Transform{m: mgl32.Mat4{
		s[0], u[0], f[0], 0,
		s[1], u[1], f[1], 0,
		s[2], u[2], f[2], 0,
		-s.Dot(eye), -u.Dot(eye), -f.Dot(eye), 1,
	}}
}

// Matrix returns the underlying matrix
func (t Transform) Matrix() mgl32.Mat4 {
	return t.m
}

// Mul returns the composition t * other (other is applied first)
func (t Transform) Mul(other Transform) Transform {
	return Transform{m: t.m.Mul4(other.m)}
}

// TransformPoint applies the full transform, including translation
func (t Transform) TransformPoint(p Vec3) Vec3 {
	return t.m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformVector applies only the linear part
func (t Transform) TransformVector(v Vec3) Vec3 {
	return t.m.Mul4x1(v.Vec4(0)).Vec3()
}

// Translation returns the translation column
func (t Transform) Translation() Vec3 {
	return t.m.Col(3).Vec3()
}

// Det returns the determinant of the matrix
func (t Transform) Det() float32 {
	return t.m.Det()
}

// IsAffine reports whether the bottom row is (0, 0, 0, 1)
func (t Transform) IsAffine() bool {
	return t.m.Row(3) == mgl32.Vec4{0, 0, 0, 1}
}

// IsInvertible reports whether every entry is finite and the determinant is
// far enough from zero to produce a usable inverse.
func (t Transform) IsInvertible() bool {
	for _, v := range t.m {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	det := t.m.Det()
	return !math32.IsNaN(det) && math32.Abs(det) > minDeterminant
}

// Inverse returns the inverse transform. The result is the zero matrix when
// the transform is singular, so callers should check IsInvertible first.
func (t Transform) Inverse() Transform {
	return Transform{m: t.m.Inv()}
}
