package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-raymarcher/pkg/core"
)

// Union joins several primitives by taking the minimum of their distances.
// On equal distances the earlier child wins. An empty union is empty space.
type Union struct {
	Children []Primitive
}

// NewUnion creates a union of the given primitives
func NewUnion(children ...Primitive) *Union {
	return &Union{Children: children}
}

// Eval returns the distance to the closest child
func (u *Union) Eval(p core.Vec3) float32 {
	d := math32.Inf(1)
	for _, child := range u.Children {
		d = math32.Min(d, child.Eval(p))
	}
	return d
}

// Intersection keeps only the space inside every child
type Intersection struct {
	Children []Primitive
}

// NewIntersection creates an intersection of the given primitives
func NewIntersection(children ...Primitive) *Intersection {
	return &Intersection{Children: children}
}

// Eval returns the largest child distance. The result is a lower bound, not exact.
func (in *Intersection) Eval(p core.Vec3) float32 {
	d := math32.Inf(-1)
	for _, child := range in.Children {
		d = math32.Max(d, child.Eval(p))
	}
	return d
}

// Subtraction carves Cut out of Base
type Subtraction struct {
	Base Primitive
	Cut  Primitive
}

// NewSubtraction creates base minus cut
func NewSubtraction(base, cut Primitive) *Subtraction {
	return &Subtraction{Base: base, Cut: cut}
}

// Eval returns max(base, -cut)
func (s *Subtraction) Eval(p core.Vec3) float32 {
	return math32.Max(s.Base.Eval(p), -s.Cut.Eval(p))
}

// Translate moves a child by Offset without a full model transform
type Translate struct {
	Offset core.Vec3
	Child  Primitive
}

// NewTranslate creates a translated child
func NewTranslate(offset core.Vec3, child Primitive) *Translate {
	return &Translate{Offset: offset, Child: child}
}

// Eval evaluates the child at p - Offset
func (t *Translate) Eval(p core.Vec3) float32 {
	return t.Child.Eval(p.Sub(t.Offset))
}

// Round inflates a child by Radius, rounding its edges
type Round struct {
	Radius float32
	Child  Primitive
}

// NewRound creates a rounded child
func NewRound(radius float32, child Primitive) *Round {
	return &Round{Radius: radius, Child: child}
}

// Eval returns child - Radius
func (r *Round) Eval(p core.Vec3) float32 {
	return r.Child.Eval(p) - r.Radius
}

// Scale uniformly resizes a child by Factor, keeping distances exact
type Scale struct {
	Factor float32
	Child  Primitive
}

// NewScale creates a scaled child. Factor must be positive.
func NewScale(factor float32, child Primitive) *Scale {
	return &Scale{Factor: factor, Child: child}
}

// Eval evaluates the child at p/Factor and converts the result back to
// world units
func (s *Scale) Eval(p core.Vec3) float32 {
	return s.Child.Eval(p.Mul(1/s.Factor)) * s.Factor
}
