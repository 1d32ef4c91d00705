package scene

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/lights"
	"github.com/df07/go-raymarcher/pkg/material"
)

// NewHallPrimitive builds a floor slab with a wall standing on each side,
// expressed as a single distance closure over three boxes.
func NewHallPrimitive() geometry.Primitive {
	floor := geometry.NewBox(core.NewVec3(1, 0.1, 1).Mul(0.5))
	wall := geometry.NewBox(core.NewVec3(0.1, 1, 1).Mul(0.5))
	horizontal := core.NewVec3(0.5, 0, 0)
	vertical := core.NewVec3(0, -0.5, 0)

	return geometry.Func(func(p core.Vec3) float32 {
		f := floor.Eval(p)
		left := wall.Eval(p.Sub(horizontal).Add(vertical))
		right := wall.Eval(p.Add(horizontal).Add(vertical))
		return math32.Min(math32.Min(f, left), right)
	})
}

// NewHallScene creates the hall lit by a blue light at the world origin
func NewHallScene() *Scene {
	hall := MustNewModel(
		core.FromTranslation(core.NewVec3(0, -0.5, 0)),
		NewHallPrimitive(),
		material.NewLambertian(core.NewVec3(1, 1, 1)),
	)

	return &Scene{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Camera: NewCameraAt(core.NewVec3(0, 0, -2.5)),
		Models: []*Model{hall},
		Lights: []lights.PointLight{
			lights.NewPointLight(core.NewVec3(0, 0, 0), core.NewVec3(0.1, 0.6, 1.0), 1),
		},
	}
}
