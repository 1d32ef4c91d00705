package scene

import (
	"testing"

	"github.com/df07/go-raymarcher/pkg/core"
)

func assertDirection(t *testing.T, label string, got, want core.Vec3) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("%s: expected direction %v, got %v", label, want, got)
	}
}

func TestCameraAt_GetRay(t *testing.T) {
	camera := NewCameraAt(core.NewVec3(0, 0, -1))

	center := camera.GetRay(32, 32, 64, 64)
	if center.Origin != core.NewVec3(0, 0, -1) {
		t.Errorf("Expected origin (0,0,-1), got %v", center.Origin)
	}
	assertDirection(t, "center", center.Direction, core.NewVec3(0, 0, 1))

	// Top-left pixel maps to uv (1, 1): image x grows towards -X, y towards -Y
	topLeft := camera.GetRay(0, 0, 64, 64)
	assertDirection(t, "top-left", topLeft.Direction, core.NewVec3(1, 1, 1).Normalize())

	bottomRight := camera.GetRay(64, 64, 64, 64)
	assertDirection(t, "bottom-right", bottomRight.Direction, core.NewVec3(-1, -1, 1).Normalize())
}

func TestCamera_AspectUsesHeight(t *testing.T) {
	camera := NewCameraAt(core.NewVec3(0, 0, -1))

	// A 2:1 image spans twice as far horizontally as vertically
	left := camera.GetRay(0, 32, 128, 64)
	assertDirection(t, "left edge", left.Direction, core.NewVec3(2, 0, 1).Normalize())

	top := camera.GetRay(64, 0, 128, 64)
	assertDirection(t, "top edge", top.Direction, core.NewVec3(0, 1, 1).Normalize())
}

func TestLookAtCamera_MirroredUp(t *testing.T) {
	camera := NewLookAtCamera(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))

	if !camera.Origin().ApproxEqualThreshold(core.NewVec3(0, 0, 1), 1e-6) {
		t.Errorf("Expected origin (0,0,1), got %v", camera.Origin())
	}

	center := camera.GetRay(32, 32, 64, 64)
	assertDirection(t, "center", center.Direction, core.NewVec3(0, 0, -1))

	// Both screen axes are flipped relative to the translation-only camera
	topLeft := camera.GetRay(0, 0, 64, 64)
	assertDirection(t, "top-left", topLeft.Direction, core.NewVec3(-1, -1, -1).Normalize())
}

func TestLookAtCamera_StandardUp(t *testing.T) {
	// With +Y up and the target on +Z the view matrix is a pure translation
	camera := NewLookAtCamera(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 2), core.NewVec3(0, 1, 0))

	if !camera.Origin().ApproxEqualThreshold(core.NewVec3(0, 0, -1), 1e-6) {
		t.Errorf("Expected origin (0,0,-1), got %v", camera.Origin())
	}
	center := camera.GetRay(32, 32, 64, 64)
	assertDirection(t, "center", center.Direction, core.NewVec3(0, 0, 1))
}
