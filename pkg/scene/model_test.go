package scene

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/material"
)

// MockMaterial returns a fixed color and records the last hit
type MockMaterial struct {
	color   core.Vec3
	lastHit *material.HitRecord
}

func (m *MockMaterial) Shade(hit material.HitRecord) core.Vec3 {
	m.lastHit = &hit
	return m.color
}

func TestModel_DistanceTo(t *testing.T) {
	mat := &MockMaterial{}

	tests := []struct {
		name      string
		transform core.Transform
		primitive geometry.Primitive
		point     core.Vec3
		expected  float32
	}{
		{
			name:      "identity",
			transform: core.Identity(),
			primitive: geometry.NewSphere(0.5),
			point:     core.NewVec3(2, 0, 0),
			expected:  1.5,
		},
		{
			name:      "translated",
			transform: core.FromTranslation(core.NewVec3(-1, 0, 1)),
			primitive: geometry.NewSphere(0.5),
			point:     core.NewVec3(-1, 0, -1),
			expected:  1.5,
		},
		{
			name: "rotated box",
			transform: core.FromRotationTranslation(
				mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 0, 1}),
				core.Vec3{},
			),
			primitive: geometry.NewBox(core.NewVec3(2, 0.5, 0.5)),
			point:     core.NewVec3(0, 3, 0), // long axis now points along Y
			expected:  1,
		},
		{
			// Model does not compensate scale; scene files move it into geometry.Scale
			name:      "scaled",
			transform: core.FromScaleRotationTranslation(2, mgl32.QuatIdent(), core.Vec3{}),
			primitive: geometry.NewSphere(0.5),
			point:     core.NewVec3(3, 0, 0),
			expected:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := NewModel(tt.transform, tt.primitive, mat)
			if err != nil {
				t.Fatalf("NewModel failed: %v", err)
			}
			got := model.DistanceTo(tt.point)
			if math32.Abs(got-tt.expected) > 1e-5 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewModel_Errors(t *testing.T) {
	sphere := geometry.NewSphere(1)
	mat := &MockMaterial{}

	_, err := NewModel(core.FromScaleRotationTranslation(0, mgl32.QuatIdent(), core.Vec3{}), sphere, mat)
	if !errors.Is(err, ErrSingularTransform) {
		t.Errorf("Expected ErrSingularTransform, got %v", err)
	}

	if _, err := NewModel(core.NewTransform(mgl32.Perspective(1, 1, 0.1, 10)), sphere, mat); err == nil {
		t.Error("Expected error for projective transform")
	}
	if _, err := NewModel(core.Identity(), nil, mat); err == nil {
		t.Error("Expected error for nil primitive")
	}
	if _, err := NewModel(core.Identity(), sphere, nil); err == nil {
		t.Error("Expected error for nil material")
	}
}

func TestMustNewModel_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for singular transform")
		}
	}()
	MustNewModel(core.NewTransform(mgl32.Mat4{}), geometry.NewSphere(1), &MockMaterial{})
}

func TestModel_ShadeDelegates(t *testing.T) {
	mat := &MockMaterial{color: core.NewVec3(0.1, 0.2, 0.3)}
	model := MustNewModel(core.FromTranslation(core.NewVec3(4, 5, 6)), geometry.NewSphere(1), mat)

	hit := material.HitRecord{
		Normal: core.NewVec3(0, 1, 0),
		Point:  core.NewVec3(4, 6, 6),
		Model:  model,
	}
	if got := model.Shade(hit); got != mat.color {
		t.Errorf("Expected %v, got %v", mat.color, got)
	}
	if mat.lastHit == nil || mat.lastHit.Point != hit.Point {
		t.Error("Material did not receive the hit record")
	}
	if got := model.Translation(); got != core.NewVec3(4, 5, 6) {
		t.Errorf("Expected translation (4,5,6), got %v", got)
	}
}
