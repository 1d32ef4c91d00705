package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/lights"
)

// ErrInvalidDimensions is returned for non-positive image sizes
var ErrInvalidDimensions = errors.New("image dimensions must be positive")

// Scene contains all the elements needed for rendering.
// It is read concurrently by every render worker and must not be modified
// while a render is in progress.
type Scene struct {
	Width  int
	Height int
	Camera *Camera
	Models []*Model            // Order only decides exact distance ties
	Lights []lights.PointLight // Contributions are summed
}

// NewScene creates and validates a scene
func NewScene(width, height int, camera *Camera, models []*Model, sceneLights []lights.PointLight) (*Scene, error) {
	s := &Scene{
		Width:  width,
		Height: height,
		Camera: camera,
		Models: models,
		Lights: sceneLights,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the scene can be rendered. An empty model list is valid
// and renders the background everywhere.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", s.Width, s.Height, ErrInvalidDimensions)
	}
	if s.Camera == nil {
		return errors.New("scene has no camera")
	}
	if !s.Camera.Transform().IsInvertible() {
		return fmt.Errorf("camera: %w", ErrSingularTransform)
	}
	for i, m := range s.Models {
		if m == nil {
			return fmt.Errorf("model %d is nil", i)
		}
	}
	for i, l := range s.Lights {
		if !core.IsFinite(l.Position) || !core.IsFinite(l.Color) || !core.IsFinite(core.Splat(l.Intensity)) {
			return fmt.Errorf("light %d is not finite", i)
		}
	}
	return nil
}

// Resize returns a shallow copy of the scene rendered at a different size.
// Models, lights and camera are shared with the original.
func (s *Scene) Resize(width, height int) (*Scene, error) {
	return NewScene(width, height, s.Camera, s.Models, s.Lights)
}

// ResizeToFit resizes the scene, deriving a zero width or height from the
// scene's aspect ratio. Both zero keeps the current size.
func (s *Scene) ResizeToFit(width, height int) (*Scene, error) {
	switch {
	case width == 0 && height == 0:
		return s, nil
	case height == 0 && width > 0:
		height = max(1, (width*s.Height+s.Width/2)/s.Width)
	case width == 0 && height > 0:
		width = max(1, (height*s.Width+s.Height/2)/s.Height)
	}
	return s.Resize(width, height)
}

// ModelCount returns the number of models in the scene
func (s *Scene) ModelCount() int {
	return len(s.Models)
}
