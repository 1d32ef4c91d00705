package scene

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/lights"
	"github.com/df07/go-raymarcher/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float32) core.Vec3 {
	hRad := h * math32.Pi / 180

	// OKLCH to OKLAB
	a := c * math32.Cos(hRad)
	b := c * math32.Sin(hRad)

	// OKLAB to LMS, cubed
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.MinElem(core.MaxElem(core.NewVec3(r, g, blue), core.Vec3{}), core.Splat(1))
}

// NewSphereGridScene creates a grid of spheres resting on a ground plane,
// hue varying across X and chroma across Z
func NewSphereGridScene() *Scene {
	const (
		gridSize   = 8
		targetArea = 3.0 // Grid spans roughly 3x3 units
	)

	spacing := float32(targetArea) / (gridSize - 1)
	radius := spacing * 0.35

	// OKLCH parameters for color variation
	baseLightness := float32(0.65)
	minChroma := float32(0.05)
	maxChroma := float32(0.25)

	models := []*Model{NewGroundPlane(groundLevel)}
	sphere := geometry.NewSphere(radius)
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float32(i)*spacing - targetArea/2
			z := float32(j)*spacing + 0.5
			position := core.NewVec3(x, groundLevel+radius, z)

			hue := float32(i) / (gridSize - 1) * 360
			chroma := minChroma + float32(j)/(gridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math32.Sin(float32(i+j)*0.5)

			models = append(models, MustNewModel(
				core.FromTranslation(position),
				sphere,
				material.NewLambertian(oklchToRGB(lightness, chroma, hue)),
			))
		}
	}

	return &Scene{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Camera: NewCameraAt(core.NewVec3(0, 0.6, -2.5)),
		Models: models,
		Lights: []lights.PointLight{
			lights.NewPointLight(core.NewVec3(2, 3, -1), core.NewVec3(1, 0.96, 0.9), 1),
		},
	}
}
