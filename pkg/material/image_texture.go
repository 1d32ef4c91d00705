package material

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/df07/go-raymarcher/pkg/core"
)

// ImageTexture is an immutable 8-bit RGB bitmap
type ImageTexture struct {
	Width  int
	Height int
	Pix    []uint8 // Row-major RGB triples: Pix[3*(y*Width+x)]
}

// NewImageTexture creates a texture and checks the buffer matches the dimensions
func NewImageTexture(width, height int, pix []uint8) (*ImageTexture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid texture size %dx%d", width, height)
	}
	if len(pix) != width*height*3 {
		return nil, fmt.Errorf("texture buffer has %d bytes, expected %d for %dx%d RGB", len(pix), width*height*3, width, height)
	}
	return &ImageTexture{Width: width, Height: height, Pix: pix}, nil
}

// At returns the color of pixel (x, y) normalized to [0, 1]. Coordinates are clamped.
func (t *ImageTexture) At(x, y int) core.Vec3 {
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))
	i := 3 * (y*t.Width + x)
	return core.NewVec3(
		float32(t.Pix[i])/255,
		float32(t.Pix[i+1])/255,
		float32(t.Pix[i+2])/255,
	)
}

// SampleUV returns the nearest texel for (u, v) in [0, 1].
// V=0 is the bottom row, so v is flipped for the top-left image origin.
func (t *ImageTexture) SampleUV(u, v float32) core.Vec3 {
	v = 1 - v
	x := texelIndex(u, t.Width)
	y := texelIndex(v, t.Height)
	return t.At(x, y)
}

// texelIndex maps a coordinate onto [0, size-1] by flooring
func texelIndex(c float32, size int) int {
	if math32.IsNaN(c) {
		return 0
	}
	f := math32.Floor(float32(size-1) * c)
	switch {
	case f <= 0:
		return 0
	case f >= float32(size-1):
		return size - 1
	default:
		return int(f)
	}
}
