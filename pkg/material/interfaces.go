package material

import (
	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/lights"
)

// Material computes the color a surface reflects from one light
type Material interface {
	// Shade returns the unclamped linear RGB contribution of hit.Light
	Shade(hit HitRecord) core.Vec3
}

// Placement exposes where a model sits in the world, which is what texture
// mapping needs to recover a local hit position.
type Placement interface {
	Translation() core.Vec3
}

// HitRecord describes one surface hit shaded against one light
type HitRecord struct {
	Light  lights.PointLight // Light being evaluated
	Normal core.Vec3         // Estimated unit surface normal
	Point  core.Vec3         // World-space hit point
	Model  Placement         // Model that was hit
}
