package scene

import (
	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/lights"
	"github.com/df07/go-raymarcher/pkg/material"
)

// NewTextureTestScene wraps a checkerboard around a sphere next to untextured shapes
func NewTextureTestScene() *Scene {
	checkerboard := material.NewCheckerboardTexture(256, 128, 16,
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.2, 0.2, 0.8),
	)
	white := core.NewVec3(1, 1, 1)

	globe := MustNewModel(
		core.FromTranslation(core.NewVec3(-1, 0, 1)),
		geometry.NewSphere(0.5),
		material.NewTexturedLambertian(white, checkerboard),
	)
	uvSphere := MustNewModel(
		core.FromTranslation(core.NewVec3(1, 0, 1)),
		geometry.NewSphere(0.5),
		material.NewTexturedLambertian(white, material.NewUVDebugTexture(64, 64)),
	)
	roundedBox := MustNewModel(
		core.FromTranslation(core.NewVec3(0, 1, 1)),
		geometry.NewRound(0.1, geometry.NewCube(0.5)),
		material.NewLambertian(white),
	)

	return &Scene{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Camera: NewCameraAt(core.NewVec3(0, 0, -1)),
		Models: []*Model{globe, uvSphere, roundedBox},
		Lights: []lights.PointLight{
			lights.NewPointLight(core.NewVec3(0, 0, 1), white, 1),
		},
	}
}
