package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/lights"
	"github.com/df07/go-raymarcher/pkg/material"
)

var zAxis = mgl32.Vec3{0, 0, 1}

// groundLevel is the height of the ground plane in the test scenes
const groundLevel = -0.5

// NewGroundPlane creates a gray ground model at the given height
func NewGroundPlane(height float32) *Model {
	return MustNewModel(
		core.Identity(),
		geometry.NewPlane(core.NewVec3(0, height, 0), core.NewVec3(0, 1, 0)),
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	)
}

func mustCone(baseRadius, topRadius, height float32) *geometry.Cone {
	cone, err := geometry.NewCone(baseRadius, topRadius, height)
	if err != nil {
		panic(err)
	}
	return cone
}

// NewConeTestScene shows a pointed cone between two frustums on a ground plane
func NewConeTestScene() *Scene {
	red := material.NewLambertian(core.NewVec3(0.8, 0.2, 0.2))
	gold := material.NewLambertian(core.NewVec3(0.8, 0.6, 0.2))
	blue := material.NewLambertian(core.NewVec3(0.2, 0.2, 0.8))

	// Bases rest on the ground: each cone is centered half its height up
	center := MustNewModel(
		core.FromTranslation(core.NewVec3(0, groundLevel+0.6, 1)),
		mustCone(0.5, 0, 1.2),
		red,
	)

	// Tilted towards the camera so the top cap is visible
	left := MustNewModel(
		core.FromRotationTranslation(
			mgl32.QuatRotate(-math32.Pi/6, xAxis),
			core.NewVec3(-1.3, groundLevel+0.5, 1.2),
		),
		mustCone(0.5, 0.2, 0.8),
		gold,
	)

	right := MustNewModel(
		core.FromTranslation(core.NewVec3(1.3, groundLevel+0.3, 1)),
		mustCone(0.6, 0.4, 0.6),
		blue,
	)

	return &Scene{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Camera: NewCameraAt(core.NewVec3(0, 0.5, -2)),
		Models: []*Model{NewGroundPlane(groundLevel), center, left, right},
		Lights: []lights.PointLight{
			lights.NewPointLight(core.NewVec3(-1, 2, -1), core.NewVec3(1, 1, 1), 1),
		},
	}
}
