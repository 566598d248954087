package geometry

import (
	"math"
	"testing"

	"github.com/dmarsh/go-pathtrace/pkg/core"
)

func unitTriangle() Triangle {
	return NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
	)
}

func TestTriangle_Intersect_Hit(t *testing.T) {
	tri := unitTriangle()
	ray := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1))

	hit, ok := tri.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", hit.T)
	}

	expectedPoint := core.NewVec3(0.25, 0.25, 0)
	if math.Abs(hit.Point.X-expectedPoint.X) > 1e-9 ||
		math.Abs(hit.Point.Y-expectedPoint.Y) > 1e-9 ||
		math.Abs(hit.Point.Z-expectedPoint.Z) > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}

	if hit.Normal.Dot(ray.Direction) > 0 {
		t.Errorf("Normal %v points along ray", hit.Normal)
	}
}

func TestTriangle_Intersect_Miss(t *testing.T) {
	tri := unitTriangle()

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
	}{
		{"outside barycentric u", core.NewVec3(1.5, 0.25, 1), core.NewVec3(0, 0, -1)},
		{"outside barycentric v", core.NewVec3(0.25, 1.5, 1), core.NewVec3(0, 0, -1)},
		{"outside diagonal edge", core.NewVec3(0.75, 0.75, 1), core.NewVec3(0, 0, -1)},
		{"parallel to plane", core.NewVec3(0.25, 0.25, 1), core.NewVec3(1, 0, 0)},
		{"behind ray", core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			if hit, ok := tri.Intersect(ray); ok {
				t.Errorf("Expected miss, got hit at t=%f", hit.T)
			}
		})
	}
}

func TestTriangle_Intersect_Backface(t *testing.T) {
	tri := unitTriangle()

	// Approach from below: the winding normal (0,0,1) must be flipped
	ray := core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1))
	hit, ok := tri.Intersect(ray)
	if !ok {
		t.Fatal("Expected backface hit")
	}

	expected := core.NewVec3(0, 0, -1)
	if math.Abs(hit.Normal.X-expected.X) > 1e-9 ||
		math.Abs(hit.Normal.Y-expected.Y) > 1e-9 ||
		math.Abs(hit.Normal.Z-expected.Z) > 1e-9 {
		t.Errorf("Expected flipped normal %v, got %v", expected, hit.Normal)
	}
	if !hit.Inside {
		t.Error("Expected Inside flag for backface hit")
	}
}

func TestTriangle_Normal(t *testing.T) {
	tri := unitTriangle()
	if tri.Normal() != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected winding normal (0,0,1), got %v", tri.Normal())
	}
}
