package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-raymarcher/pkg/core"
)

// Cone is a capped cone or frustum centered at the local origin along Y,
// with the base at -HalfHeight and the top at +HalfHeight
type Cone struct {
	BaseRadius float32
	TopRadius  float32 // 0 for pointed cone, >0 for frustum
	HalfHeight float32

	// Cached derived values
	k1 mgl32.Vec2 // Top rim in (radial, axial) coordinates
	k2 mgl32.Vec2 // Slant from base rim to top rim
}

// NewCone creates a new cone or frustum
func NewCone(baseRadius, topRadius, height float32) (*Cone, error) {
	if baseRadius <= 0 {
		return nil, fmt.Errorf("base radius must be positive, got %v", baseRadius)
	}
	if topRadius < 0 {
		return nil, fmt.Errorf("top radius must be non-negative, got %v", topRadius)
	}
	if height <= 0 {
		return nil, fmt.Errorf("height must be positive, got %v", height)
	}

	h := height * 0.5
	return &Cone{
		BaseRadius: baseRadius,
		TopRadius:  topRadius,
		HalfHeight: h,
		k1:         mgl32.Vec2{topRadius, h},
		k2:         mgl32.Vec2{topRadius - baseRadius, 2 * h},
	}, nil
}

// Eval measures against the nearer of the caps and the slanted side
func (c *Cone) Eval(p core.Vec3) float32 {
	q := mgl32.Vec2{math32.Hypot(p[0], p[2]), p[1]}

	capRadius := c.TopRadius
	if q[1] < 0 {
		capRadius = c.BaseRadius
	}
	toCap := mgl32.Vec2{q[0] - math32.Min(q[0], capRadius), math32.Abs(q[1]) - c.HalfHeight}

	t := mgl32.Clamp(c.k1.Sub(q).Dot(c.k2)/c.k2.Dot(c.k2), 0, 1)
	toSide := q.Sub(c.k1).Add(c.k2.Mul(t))

	sign := float32(1)
	if toSide[0] < 0 && toCap[1] < 0 {
		sign = -1
	}
	return sign * math32.Sqrt(math32.Min(toCap.Dot(toCap), toSide.Dot(toSide)))
}
