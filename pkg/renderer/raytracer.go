package renderer

import (
	"runtime"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/material"
	"github.com/df07/go-raymarcher/pkg/scene"
)

// Marching defaults
const (
	DefaultMaxSteps   = 64    // March iterations before a ray counts as a miss
	DefaultEpsilon    = 0.01  // Distance below which a ray counts as a hit
	DefaultNormalStep = 0.001 // Forward-difference step for normal estimation
)

// Config contains rendering configuration
type Config struct {
	MaxSteps   int     // Maximum march iterations per ray
	Epsilon    float32 // Hit threshold
	NormalStep float32 // Gradient step size
	NumWorkers int     // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns the standard marching parameters
func DefaultConfig() Config {
	return Config{
		MaxSteps:   DefaultMaxSteps,
		Epsilon:    DefaultEpsilon,
		NormalStep: DefaultNormalStep,
		NumWorkers: 0,
	}
}

// MergeConfig fills unset (non-positive) fields of override from base
func MergeConfig(base, override Config) Config {
	if override.MaxSteps <= 0 {
		override.MaxSteps = base.MaxSteps
	}
	if override.Epsilon <= 0 {
		override.Epsilon = base.Epsilon
	}
	if override.NormalStep <= 0 {
		override.NormalStep = base.NormalStep
	}
	if override.NumWorkers <= 0 {
		override.NumWorkers = base.NumWorkers
	}
	return override
}

// Raytracer sphere-marches one ray per pixel through a scene.
// The scene is shared read-only between workers.
type Raytracer struct {
	scene  *scene.Scene
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer. Zero config fields take their defaults.
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  s,
		config: MergeConfig(DefaultConfig(), config),
		logger: logger,
	}
}

// Config returns the effective configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// numWorkers resolves the worker count
func (rt *Raytracer) numWorkers() int {
	if rt.config.NumWorkers > 0 {
		return rt.config.NumWorkers
	}
	return runtime.NumCPU()
}

// MarchResult describes where a ray ended up
type MarchResult struct {
	Hit        bool         // Whether the ray converged onto a surface
	Model      *scene.Model // Model that was hit (nil on miss)
	ModelIndex int          // Index of the hit model in the scene, -1 on miss
	Point      core.Vec3    // Final march position
	Distance   float32      // Distance to the closest model at Point
	Steps      int          // Number of distance evaluations over all models
}

// closestModel returns the model nearest to p. The first of several equally
// near models wins. Returns -1 when the scene has no models.
func (rt *Raytracer) closestModel(p core.Vec3) (int, float32) {
	best := -1
	var bestDistance float32
	for i, m := range rt.scene.Models {
		d := m.DistanceTo(p)
		if best < 0 || d < bestDistance {
			best = i
			bestDistance = d
		}
	}
	return best, bestDistance
}

// March steps along the ray by the scene distance until it comes within
// Epsilon of a surface or runs out of steps
func (rt *Raytracer) March(ray core.Ray) MarchResult {
	p := ray.Origin
	for step := 1; step <= rt.config.MaxSteps; step++ {
		index, distance := rt.closestModel(p)
		if index < 0 {
			break
		}
		if distance < rt.config.Epsilon {
			return MarchResult{
				Hit:        true,
				Model:      rt.scene.Models[index],
				ModelIndex: index,
				Point:      p,
				Distance:   distance,
				Steps:      step,
			}
		}
		// Never overshoots: distance is a lower bound on the free space around p
		p = p.Add(ray.Direction.Mul(distance))
	}
	steps := rt.config.MaxSteps
	if len(rt.scene.Models) == 0 {
		steps = 0
	}
	return MarchResult{ModelIndex: -1, Point: p, Steps: steps}
}

// EstimateNormal approximates the surface gradient with forward differences
// along each axis, reusing the distance already known at p
func (rt *Raytracer) EstimateNormal(m *scene.Model, p core.Vec3, distance float32) core.Vec3 {
	h := rt.config.NormalStep
	return core.NewVec3(
		(m.DistanceTo(p.Add(core.NewVec3(h, 0, 0)))-distance)/h,
		(m.DistanceTo(p.Add(core.NewVec3(0, h, 0)))-distance)/h,
		(m.DistanceTo(p.Add(core.NewVec3(0, 0, h)))-distance)/h,
	).Normalize()
}

// Shade sums the model's material response over every light
func (rt *Raytracer) Shade(m *scene.Model, p, normal core.Vec3) core.Vec3 {
	color := core.Vec3{}
	for _, light := range rt.scene.Lights {
		color = color.Add(m.Shade(material.HitRecord{
			Light:  light,
			Normal: normal,
			Point:  p,
			Model:  m,
		}))
	}
	return color
}

// Background returns the miss color for image row y: red fading to magenta
// towards the bottom of the image
func (rt *Raytracer) Background(y int) core.Vec3 {
	return core.NewVec3(1, 0, float32(y)/float32(rt.scene.Height))
}

// pixel returns the color and march result for pixel (x, y)
func (rt *Raytracer) pixel(x, y int) (core.Vec3, MarchResult) {
	ray := rt.scene.Camera.GetRay(x, y, rt.scene.Width, rt.scene.Height)
	result := rt.March(ray)
	if !result.Hit {
		return rt.Background(y), result
	}
	normal := rt.EstimateNormal(result.Model, result.Point, result.Distance)
	return rt.Shade(result.Model, result.Point, normal), result
}

// PixelColor returns the unclamped linear color of pixel (x, y)
func (rt *Raytracer) PixelColor(x, y int) core.Vec3 {
	color, _ := rt.pixel(x, y)
	return color
}

// renderRow writes row y into pixels (3 bytes per pixel) and returns its statistics
func (rt *Raytracer) renderRow(y int, pixels []byte) RenderStats {
	var stats RenderStats
	for x := 0; x < rt.scene.Width; x++ {
		color, result := rt.pixel(x, y)
		i := 3 * x
		pixels[i], pixels[i+1], pixels[i+2] = core.ColorToRGB8(color)
		stats.addPixel(result)
	}
	return stats
}
