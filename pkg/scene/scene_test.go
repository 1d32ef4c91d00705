package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-raymarcher/pkg/core"
	"github.com/df07/go-raymarcher/pkg/geometry"
	"github.com/df07/go-raymarcher/pkg/lights"
)

func TestNewScene_Validation(t *testing.T) {
	camera := NewCameraAt(core.NewVec3(0, 0, -1))
	model := NewSphereScene().Models[0]

	tests := []struct {
		name          string
		width, height int
		camera        *Camera
		models        []*Model
		expectError   bool
	}{
		{"valid", 64, 64, camera, []*Model{model}, false},
		{"no models is valid", 10, 10, camera, nil, false},
		{"zero width", 0, 64, camera, nil, true},
		{"negative height", 64, -1, camera, nil, true},
		{"nil camera", 64, 64, nil, nil, true},
		{"singular camera", 64, 64, NewCamera(core.NewTransform(mgl32.Mat4{})), nil, true},
		{"nil model", 64, 64, camera, []*Model{model, nil}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScene(tt.width, tt.height, tt.camera, tt.models, []lights.PointLight{})
			if tt.expectError {
				if err == nil {
					t.Error("Expected error, got none")
				}
				if s != nil {
					t.Error("Expected nil scene on error")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}

	_, err := NewScene(0, 0, camera, nil, nil)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions, got %v", err)
	}
}

func TestNewScene_NonFiniteLight(t *testing.T) {
	camera := NewCameraAt(core.NewVec3(0, 0, -1))
	white := core.NewVec3(1, 1, 1)

	tests := []struct {
		name  string
		light lights.PointLight
	}{
		{"NaN position", lights.NewPointLight(core.NewVec3(math32.NaN(), 0, 0), white, 1)},
		{"infinite color", lights.NewPointLight(core.NewVec3(0, 1, 0), core.NewVec3(0, math32.Inf(1), 0), 1)},
		{"NaN intensity", lights.NewPointLight(core.NewVec3(0, 1, 0), white, math32.NaN())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewScene(8, 8, camera, nil, []lights.PointLight{tt.light}); err == nil {
				t.Error("Expected error, got none")
			}
		})
	}
}

func TestScene_Resize(t *testing.T) {
	original := NewDefaultScene()
	resized, err := original.Resize(32, 16)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if resized.Width != 32 || resized.Height != 16 {
		t.Errorf("Expected 32x16, got %dx%d", resized.Width, resized.Height)
	}
	if original.Width != DefaultWidth {
		t.Error("Resize must not modify the original scene")
	}
	if resized.ModelCount() != original.ModelCount() {
		t.Error("Resize should keep the models")
	}
}

func TestScene_ResizeToFit(t *testing.T) {
	wide := NewDefaultScene() // 455x256

	tests := []struct {
		name                      string
		width, height             int
		expectWidth, expectHeight int
		expectError               bool
	}{
		{"keep size", 0, 0, DefaultWidth, DefaultHeight, false},
		{"both given", 40, 30, 40, 30, false},
		{"width only", 910, 0, 910, 512, false},
		{"height only", 0, 128, 228, 128, false},
		{"tiny width", 1, 0, 1, 1, false},
		{"negative width", -4, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := wide.ResizeToFit(tt.width, tt.height)
			if tt.expectError {
				if !errors.Is(err, ErrInvalidDimensions) {
					t.Errorf("Expected ErrInvalidDimensions, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Width != tt.expectWidth || s.Height != tt.expectHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expectWidth, tt.expectHeight, s.Width, s.Height)
			}
		})
	}
}

func TestBuiltinScenes(t *testing.T) {
	names := BuiltinNames()
	expected := []string{"cone", "cylinder", "default", "hall", "sphere", "spheregrid", "textured"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d built-in scenes, got %v", len(expected), names)
	}

	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Expected sorted name %q at %d, got %q", name, i, names[i])
		}
		t.Run(name, func(t *testing.T) {
			s, err := Builtin(name)
			if err != nil {
				t.Fatalf("Builtin(%q) failed: %v", name, err)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Built-in scene %q is invalid: %v", name, err)
			}
			if len(s.Models) == 0 || len(s.Lights) == 0 {
				t.Errorf("Built-in scene %q should have models and lights", name)
			}
		})
	}

	if _, err := Builtin("nonexistent"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestHallPrimitive(t *testing.T) {
	hall := NewHallPrimitive()

	if d := hall.Eval(core.NewVec3(0, 0, 0)); d >= 0 {
		t.Errorf("Floor center should be inside, got %v", d)
	}
	if d := hall.Eval(core.NewVec3(0.5, 0.5, 0)); d >= 0 {
		t.Errorf("Wall center should be inside, got %v", d)
	}
	if d := hall.Eval(core.NewVec3(0, 0.5, 0)); d <= 0 {
		t.Errorf("Space between the walls should be empty, got %v", d)
	}
}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"spiral-tower", "Spiral Tower"},
		{"hall_of_boxes", "Hall Of Boxes"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if result := titleCase(tc.input); result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"spiral.yaml":   "# Scene: Spiral Tower\n# Description: Boxes on a helix\nwidth: 64\n",
		"plain-box.yml": "width: 32\n",
		"notes.txt":     "# Scene: Ignored\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles failed: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d: %+v", len(scenes), scenes)
	}

	// Sorted by name
	if scenes[0].Name != "Plain Box" || scenes[0].ID != "file:plain-box" {
		t.Errorf("Unexpected first scene: %+v", scenes[0])
	}
	if scenes[1].Name != "Spiral Tower" || scenes[1].Description != "Boxes on a helix" {
		t.Errorf("Unexpected second scene: %+v", scenes[1])
	}
	if scenes[1].Type != "file" {
		t.Errorf("Expected type file, got %q", scenes[1].Type)
	}
}

func TestListSceneFiles_MissingDir(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(scenes) != 0 {
		t.Errorf("Expected no scenes, got %v", scenes)
	}
}

func TestListBuiltinScenes(t *testing.T) {
	scenes := ListBuiltinScenes()
	if len(scenes) != len(BuiltinNames()) {
		t.Fatalf("Expected %d scenes, got %d", len(BuiltinNames()), len(scenes))
	}
	for _, s := range scenes {
		if s.Type != "builtin" || s.Description == "" {
			t.Errorf("Incomplete built-in scene info: %+v", s)
		}
	}
}

func TestSphereGridScene_RestsOnGround(t *testing.T) {
	s := NewSphereGridScene()
	ground := s.Models[0]

	for i, m := range s.Models[1:] {
		sphere := m.Primitive().(*geometry.Sphere)
		bottom := m.Translation().Sub(core.NewVec3(0, sphere.Radius, 0))
		if d := ground.DistanceTo(bottom); math32.Abs(d) > 1e-5 {
			t.Errorf("Sphere %d: expected bottom on the ground, got height %v", i, d)
		}
	}
}

func TestOklchToRGB(t *testing.T) {
	// Zero chroma is a neutral gray
	gray := oklchToRGB(0.5, 0, 123)
	if math32.Abs(gray[0]-gray[1]) > 1e-3 || math32.Abs(gray[1]-gray[2]) > 1e-3 {
		t.Errorf("Expected neutral gray, got %v", gray)
	}

	// Out of gamut values are clamped
	vivid := oklchToRGB(0.9, 0.4, 30)
	for i := 0; i < 3; i++ {
		if vivid[i] < 0 || vivid[i] > 1 {
			t.Errorf("Channel %d out of range: %v", i, vivid[i])
		}
	}
}

func TestConeAndCylinderScenes_GroundContact(t *testing.T) {
	tests := []struct {
		name  string
		scene *Scene
		point core.Vec3 // Bottom center of the upright model
		model int
	}{
		{"cone", NewConeTestScene(), core.NewVec3(0, groundLevel, 1), 1},
		{"cylinder", NewCylinderTestScene(), core.NewVec3(0, groundLevel, 1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := tt.scene.Models[tt.model].DistanceTo(tt.point); math32.Abs(d) > 1e-5 {
				t.Errorf("Expected base on the ground, got distance %v", d)
			}
		})
	}
}
