package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/material"
)

// ErrSingularTransform is returned when a model transform cannot be inverted
var ErrSingularTransform = errors.New("transform is not invertible")

// Model places a primitive in the world and gives it a material.
// Distances are only metrically exact when the transform has no
// non-uniform scale.
type Model struct {
	transform core.Transform
	inverse   core.Transform // cached, the transform never changes
	primitive geometry.Primitive
	material  material.Material
}

// NewModel creates a model. The transform must be affine and invertible.
func NewModel(transform core.Transform, primitive geometry.Primitive, mat material.Material) (*Model, error) {
	if primitive == nil {
		return nil, errors.New("model primitive is nil")
	}
	if mat == nil {
		return nil, errors.New("model material is nil")
	}
	if !transform.IsAffine() {
		return nil, fmt.Errorf("model transform is not affine: %v", transform.Matrix())
	}
	if !transform.IsInvertible() {
		return nil, fmt.Errorf("model transform (det %g): %w", transform.Det(), ErrSingularTransform)
	}
	return &Model{
		transform: transform,
		inverse:   transform.Inverse(),
		primitive: primitive,
		material:  mat,
	}, nil
}

// MustNewModel is like NewModel but panics on error. Used by built-in scenes.
func MustNewModel(transform core.Transform, primitive geometry.Primitive, mat material.Material) *Model {
	m, err := NewModel(transform, primitive, mat)
	if err != nil {
		panic(err)
	}
	return m
}

// DistanceTo returns the signed distance from a world point to the model surface
func (m *Model) DistanceTo(p core.Vec3) float32 {
	return m.primitive.Eval(m.inverse.TransformPoint(p))
}

// Shade delegates to the model's material
func (m *Model) Shade(hit material.HitRecord) core.Vec3 {
	return m.material.Shade(hit)
}

// Translation returns the world position of the model's local origin
func (m *Model) Translation() core.Vec3 {
	return m.transform.Translation()
}

// Transform returns the model-to-world transform
func (m *Model) Transform() core.Transform {
	return m.transform
}

// Primitive returns the model's primitive
func (m *Model) Primitive() geometry.Primitive {
	return m.primitive
}

// Material returns the model's material
func (m *Model) Material() material.Material {
	return m.material
}
