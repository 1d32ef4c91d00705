package material

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-raymarcher/pkg/core"
)

// SphereUV projects a point onto the unit sphere and returns its (u, v)
// coordinates. u wraps around the Y axis starting behind -Z, v is the
// linear height of the projected point remapped to [0, 1].
func SphereUV(p core.Vec3) (u, v float32) {
	n := p.Normalize()
	u = math32.Atan2(n[0], n[2])/(2*math32.Pi) + 0.5
	v = n[1]*0.5 + 0.5
	return u, v
}
