package material

import (
	"github.com/df07/go-raymarcher/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pix := make([]uint8, width*height*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			color := color2
			if (x/checkSize+y/checkSize)%2 == 0 {
				color = color1
			}
			setTexel(pix, width, x, y, color)
		}
	}

	return &ImageTexture{Width: width, Height: height, Pix: pix}
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors.
// U maps to red, V to green (V=1 at the top row).
func NewUVDebugTexture(width, height int) *ImageTexture {
	pix := make([]uint8, width*height*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float32(x) / float32(max(1, width-1))
			v := 1 - float32(y)/float32(max(1, height-1))
			setTexel(pix, width, x, y, core.NewVec3(u, v, 0))
		}
	}

	return &ImageTexture{Width: width, Height: height, Pix: pix}
}

func setTexel(pix []uint8, width, x, y int, color core.Vec3) {
	i := 3 * (y*width + x)
	pix[i], pix[i+1], pix[i+2] = core.ColorToRGB8(color)
}
