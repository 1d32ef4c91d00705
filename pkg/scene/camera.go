package scene

import (
	"github.com/df07/go-raymarcher/pkg/core"
)

// Camera generates one ray per pixel from a camera-to-world transform.
//
// Screen coordinates are scaled by 2/height on both axes, so the horizontal
// field of view widens with the aspect ratio and image x grows towards local
// -X. The ray direction is taken through the inverse transform; for a pure
// translation that is the identity.
type Camera struct {
	transform core.Transform
	inverse   core.Transform
	origin    core.Vec3
}

// NewCamera creates a camera from a camera-to-world transform
func NewCamera(transform core.Transform) *Camera {
	return &Camera{
		transform: transform,
		inverse:   transform.Inverse(),
		origin:    transform.TransformPoint(core.Vec3{}),
	}
}

// NewCameraAt creates a camera at position looking along +Z
func NewCameraAt(position core.Vec3) *Camera {
	return NewCamera(core.FromTranslation(position))
}

// NewLookAtCamera uses the left-handed view matrix for eye, target and up
// directly as the camera transform, the convention scripted scenes are
// authored against. The ray origin is therefore the view translation, not
// eye: with up = -Y the camera sits mirrored through the target and looks
// back at it.
func NewLookAtCamera(eye, target, up core.Vec3) *Camera {
	return NewCamera(core.LookAtLH(eye, target, up))
}

// Transform returns the camera-to-world transform
func (c *Camera) Transform() core.Transform {
	return c.transform
}

// Origin returns the world-space ray origin shared by every pixel
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// GetRay returns the world-space ray for pixel (x, y) of a width x height image
func (c *Camera) GetRay(x, y, width, height int) core.Ray {
	w := float32(width)
	h := float32(height)
	scale := (1 / h) * -2
	uv := core.NewVec3(float32(x)-w/2, float32(y)-h/2, 0).Mul(scale)
	direction := c.inverse.TransformVector(uv.Sub(c.origin)).Normalize()
	return core.NewRay(c.origin, direction)
}
