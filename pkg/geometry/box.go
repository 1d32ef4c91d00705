package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-raymarcher/pkg/core"
)

// Box is an axis-aligned box centered at the local origin
type Box struct {
	HalfExtents core.Vec3 // Distance from center to each face
}

// NewBox creates a box from its half extents
func NewBox(halfExtents core.Vec3) *Box {
	return &Box{HalfExtents: halfExtents}
}

// NewCube creates a cube with the given edge length
func NewCube(size float32) *Box {
	return &Box{HalfExtents: core.Splat(size * 0.5)}
}

// Eval returns the exact distance to the box: the outside part measures the
// clamped offset from the faces, the inside part the nearest face.
func (b *Box) Eval(p core.Vec3) float32 {
	q := core.Abs(p).Sub(b.HalfExtents)
	outside := core.MaxElem(q, core.Vec3{}).Len()
	inside := math32.Min(core.MaxComponent(q), 0)
	return outside + inside
}
