package geometry

import (
	"github.com/df07/go-raymarcher/pkg/core"
)

// Primitive is a signed distance function in its own local frame.
// Eval is negative inside, zero on the surface and positive outside, and must
// never overestimate the true distance so that marching cannot overshoot.
// Implementations are called concurrently from every render worker.
type Primitive interface {
	Eval(p core.Vec3) float32
}

// Func adapts an arbitrary distance closure into a Primitive. The closure
// may capture other primitives but must not mutate shared state.
type Func func(p core.Vec3) float32

// Eval calls the closure
func (f Func) Eval(p core.Vec3) float32 {
	return f(p)
}
