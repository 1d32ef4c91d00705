package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	"github.com/df07/go-raymarcher/pkg/material"
)

// LoadTexture loads a PNG or JPEG file as an RGB8 texture
func LoadTexture(filename string) (*material.ImageTexture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	texture, err := DecodeTexture(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return texture, nil
}

// DecodeTexture decodes a PNG or JPEG stream as an RGB8 texture. Alpha is dropped.
func DecodeTexture(r io.Reader) (*material.ImageTexture, error) {
	// Format is detected from the header
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pix := make([]uint8, 0, width*height*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns 16-bit channels
			pix = append(pix, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}

	return material.NewImageTexture(width, height, pix)
}
