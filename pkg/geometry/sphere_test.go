package geometry

import (
	"math"
	"testing"

	"github.com/dmarsh/go-pathtrace/pkg/core"
)

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, ok := sphere.Intersect(ray)
	if ok {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Intersect_AnalyticDistances(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedInside bool
		expectedNormal core.Vec3
	}{
		{
			name:           "outside hit uses near root",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedInside: false,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "inside hit uses far root",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedInside: true,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "off-axis hit",
			rayOrigin:      core.NewVec3(0, 0.5, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      2.0 - math.Sqrt(0.75),
			expectedInside: false,
			expectedNormal: core.NewVec3(0, 0.5, math.Sqrt(0.75)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, ok := sphere.Intersect(ray)

			if !ok {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.Inside != tt.expectedInside {
				t.Errorf("Expected inside %t, got %t", tt.expectedInside, hit.Inside)
			}

			tolerance := 1e-9
			if math.Abs(hit.Normal.X-tt.expectedNormal.X) > tolerance ||
				math.Abs(hit.Normal.Y-tt.expectedNormal.Y) > tolerance ||
				math.Abs(hit.Normal.Z-tt.expectedNormal.Z) > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Intersect_NormalFacesRay(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, -2, 3), 1.5)

	origins := []core.Vec3{
		{X: 5, Y: 0, Z: 0},
		{X: 1, Y: -2, Z: 3.2}, // inside
		{X: -3, Y: -4, Z: 6},
	}

	for _, origin := range origins {
		ray := core.NewRay(origin, sphere.Center.Subtract(origin))
		hit, ok := sphere.Intersect(ray)
		if !ok {
			t.Fatalf("Expected hit from origin %v", origin)
		}

		if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
			t.Errorf("Normal not unit length from origin %v: %f", origin, hit.Normal.Length())
		}
		if hit.Normal.Dot(ray.Direction) > 0 {
			t.Errorf("Normal points along ray from origin %v", origin)
		}
	}
}

func TestSphere_Intersect_BehindRay(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1))

	if hit, ok := sphere.Intersect(ray); ok {
		t.Errorf("Expected no hit for sphere behind ray, got t=%f", hit.T)
	}
}

func TestSphere_Intersect_OnSurface(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	// Origin exactly on the surface looking through the sphere: the near
	// root is ~0 and must be rejected in favor of the far root.
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit through the sphere")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected far root t=2, got t=%f", hit.T)
	}
}
