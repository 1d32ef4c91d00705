package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/df07/go-raymarcher/pkg/core"
)

func TestCylinder_Eval(t *testing.T) {
	cylinder := NewCylinder(0.5, 2)

	tests := []struct {
		name     string
		point    core.Vec3
		expected float32
	}{
		{"center", core.NewVec3(0, 0, 0), -0.5},
		{"beside", core.NewVec3(2, 0, 0), 1.5},
		{"beside diagonal", core.NewVec3(0.6, 0.5, 0.8), 0.5},
		{"above cap", core.NewVec3(0, 3, 0), 2},
		{"past rim", core.NewVec3(1.5, 3, 0), math32.Sqrt(5)},
		{"on side", core.NewVec3(0, -0.7, 0.5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cylinder.Eval(tt.point); math32.Abs(got-tt.expected) > distanceTolerance {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
