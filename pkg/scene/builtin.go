package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when no built-in scene has the requested name
var ErrUnknownScene = errors.New("unknown scene")

type builtinScene struct {
	description string
	build       func() *Scene
}

var builtins = map[string]builtinScene{
	"default":    {"Sphere, rotated box and rounded box", NewDefaultScene},
	"hall":       {"Floor with two walls built from one distance closure", NewHallScene},
	"textured":   {"Spherically mapped checkerboard and UV textures", NewTextureTestScene},
	"sphere":     {"Single sphere at the origin, 64x64", NewSphereScene},
	"cone":       {"Pointed cone and frustums on a ground plane", NewConeTestScene},
	"cylinder":   {"Upright, lying and leaning cylinders", NewCylinderTestScene},
	"spheregrid": {"Grid of spheres colored across OKLCH hue and chroma", NewSphereGridScene},
}

// Builtin creates the named built-in scene
func Builtin(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownScene)
	}
	return b.build(), nil
}

// BuiltinNames returns the names of all built-in scenes, sorted
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
