package scene

import (
	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/lights"
	"github.com/df07/go-raymarcher/pkg/material"
)

// NewSphereScene creates a single unit-diameter sphere at the origin seen
// from (0,0,-1), small enough for quick checks.
func NewSphereScene() *Scene {
	white := core.NewVec3(1, 1, 1)
	sphere := MustNewModel(
		core.Identity(),
		geometry.NewSphere(0.5),
		material.NewLambertian(white),
	)

	return &Scene{
		Width:  64,
		Height: 64,
		Camera: NewCameraAt(core.NewVec3(0, 0, -1)),
		Models: []*Model{sphere},
		Lights: []lights.PointLight{
			lights.NewPointLight(core.NewVec3(0, 0, 1), white, 1),
		},
	}
}
