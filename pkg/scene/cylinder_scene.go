package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/lights"
	"github.com/df07/go-raymarcher/pkg/material"
)

// NewCylinderTestScene creates upright, lying and leaning cylinders on a ground plane
func NewCylinderTestScene() *Scene {
	red := material.NewLambertian(core.NewVec3(0.8, 0.2, 0.2))
	green := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.2))
	blue := material.NewLambertian(core.NewVec3(0.2, 0.2, 0.8))

	upright := MustNewModel(
		core.FromTranslation(core.NewVec3(0, groundLevel+0.5, 1)),
		geometry.NewCylinder(0.3, 1),
		red,
	)

	// Lying along X, resting on the ground
	lying := MustNewModel(
		core.FromRotationTranslation(
			mgl32.QuatRotate(math32.Pi/2, zAxis),
			core.NewVec3(1.3, groundLevel+0.25, 1),
		),
		geometry.NewCylinder(0.25, 0.8),
		green,
	)

	leaning := MustNewModel(
		core.FromRotationTranslation(
			mgl32.QuatRotate(math32.Pi/4, zAxis),
			core.NewVec3(-1.3, groundLevel+0.45, 1),
		),
		geometry.NewCylinder(0.2, 1),
		blue,
	)

	return &Scene{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Camera: NewCameraAt(core.NewVec3(0, 0.5, -2)),
		Models: []*Model{NewGroundPlane(groundLevel), upright, lying, leaning},
		Lights: []lights.PointLight{
			lights.NewPointLight(core.NewVec3(1, 2, -1), core.NewVec3(1, 1, 1), 1),
		},
	}
}
