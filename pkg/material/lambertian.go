package material

import (
	"github.com/df07/go-raymarcher/pkg/core"
)

// Default weights used by the built-in scenes
const (
	DefaultDiffuseWeight = 0.8
	DefaultAmbientWeight = 0.2
)

// Lambertian is a diffuse material with a constant ambient term
type Lambertian struct {
	Color         core.Vec3     // Base color
	DiffuseWeight float32       // Scale of the light-dependent term
	AmbientWeight float32       // Scale of the light-independent term
	Texture       *ImageTexture // Optional, mapped spherically around the model
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(color core.Vec3) *Lambertian {
	return &Lambertian{
		Color:         color,
		DiffuseWeight: DefaultDiffuseWeight,
		AmbientWeight: DefaultAmbientWeight,
	}
}

// NewTexturedLambertian creates a new lambertian material tinted by a texture
func NewTexturedLambertian(color core.Vec3, texture *ImageTexture) *Lambertian {
	l := NewLambertian(color)
	l.Texture = texture
	return l
}

// Shade implements the Material interface.
// The cosine term is not clamped per light; only the combined diffuse color
// is floored at zero, so a light behind the surface contributes ambient only.
// A NaN normal floors to zero as well and leaves the ambient term.
func (l *Lambertian) Shade(hit HitRecord) core.Vec3 {
	lightDir := hit.Light.DirectionFrom(hit.Point)
	brightness := lightDir.Dot(hit.Normal) * hit.Light.Intensity
	lightShading := hit.Light.Color.Mul(brightness)

	textureColor := l.textureColor(hit)
	albedo := core.MulElem(l.Color, textureColor)

	diffuse := core.PositivePart(core.MulElem(albedo, lightShading))
	return diffuse.Mul(l.DiffuseWeight).Add(albedo.Mul(l.AmbientWeight))
}

// textureColor samples the texture around the model's origin, or white
func (l *Lambertian) textureColor(hit HitRecord) core.Vec3 {
	if l.Texture == nil {
		return core.Splat(1)
	}
	local := hit.Point
	if hit.Model != nil {
		local = local.Sub(hit.Model.Translation())
	}
	u, v := SphereUV(local)
	return l.Texture.SampleUV(u, v)
}
