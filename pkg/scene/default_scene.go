package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/lights"
	"github.com/df07/go-raymarcher/pkg/material"
)

// Standard 16:9 output used by the built-in scenes
const (
	DefaultHeight = 256
	DefaultWidth  = DefaultHeight * 16 / 9
)

var (
	yAxis = mgl32.Vec3{0, 1, 0}
	xAxis = mgl32.Vec3{1, 0, 0}
)

// NewDefaultScene creates a sphere, a rotated box and a rounded box in a row
func NewDefaultScene() *Scene {
	white := material.NewLambertian(core.NewVec3(1, 1, 1))

	sphere := MustNewModel(
		core.FromTranslation(core.NewVec3(-1, 0, 1)),
		geometry.NewSphere(0.5),
		white,
	)

	box := MustNewModel(
		core.FromRotationTranslation(
			mgl32.QuatRotate(math32.Pi/3, yAxis),
			core.NewVec3(1, 0, 1),
		),
		geometry.NewCube(1),
		white,
	)

	// Rounded cube: shrink the box, then inflate it by the rounding radius
	roundedBox := MustNewModel(
		core.FromRotationTranslation(
			mgl32.QuatRotate(math32.Pi/3, xAxis).Mul(mgl32.QuatRotate(math32.Pi/4, yAxis)),
			core.NewVec3(0, 1, 1),
		),
		geometry.NewRound(0.1, geometry.NewCube(0.5)),
		white,
	)

	return &Scene{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Camera: NewCameraAt(core.NewVec3(0, 0, -1)),
		Models: []*Model{sphere, box, roundedBox},
		Lights: []lights.PointLight{
			lights.NewPointLight(core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1), 1),
		},
	}
}
