package renderer

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/scene"
)

// Render marches every pixel of the scene and returns width*height*3 bytes,
// row-major from the top-left, RGB per pixel
func (rt *Raytracer) Render() []byte {
	buffer, _ := rt.RenderWithStats()
	return buffer
}

// RenderWithStats renders the scene one row per task across the worker pool.
// The output does not depend on the number of workers.
func (rt *Raytracer) RenderWithStats() ([]byte, RenderStats) {
	start := time.Now()
	width, height := rt.scene.Width, rt.scene.Height
	buffer := make([]byte, width*height*3)
	var stats RenderStats
	if width <= 0 || height <= 0 {
		return buffer, stats
	}

	pool := NewWorkerPool(rt, height, rt.numWorkers())
	rt.logger.Printf("Rendering %dx%d: %d models, %d lights, %d workers\n",
		width, height, rt.scene.ModelCount(), len(rt.scene.Lights), pool.GetNumWorkers())

	pool.Start()
	rowBytes := width * 3
	for y := 0; y < height; y++ {
		pool.SubmitTask(RowTask{
			Y:      y,
			Pixels: buffer[y*rowBytes : (y+1)*rowBytes],
			TaskID: y,
		})
	}
	for i := 0; i < height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
	}
	pool.Stop()

	stats.Elapsed = time.Since(start)
	rt.logger.Printf("Render completed in %v (%d hits, %d misses, %.1f steps/pixel)\n",
		stats.Elapsed, stats.Hits, stats.Misses, stats.AverageSteps)
	return buffer, stats
}

// Render renders s with the default marching parameters and no logging
func Render(s *scene.Scene) []byte {
	return NewRaytracer(s, DefaultConfig(), core.NopLogger{}).Render()
}

// ToImage wraps an RGB8 buffer as an opaque RGBA image
func ToImage(buffer []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, scene.ErrInvalidDimensions)
	}
	if len(buffer) != width*height*3 {
		return nil, fmt.Errorf("buffer holds %d bytes, expected %d for %dx%d", len(buffer), width*height*3, width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			img.SetRGBA(x, y, color.RGBA{R: buffer[i], G: buffer[i+1], B: buffer[i+2], A: 255})
		}
	}
	return img, nil
}
