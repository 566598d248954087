// Package scene holds the read-only world the renderer traces: primitives
// paired with materials, plus an environment color for rays that escape.
package scene

import (
	"github.com/dmarsh/go-pathtrace/pkg/core"
	"github.com/dmarsh/go-pathtrace/pkg/geometry"
	"github.com/dmarsh/go-pathtrace/pkg/material"
)

// Primitive pairs a shape with its material
type Primitive struct {
	Shape    geometry.Shape
	Material material.Material
}

// Scene is an unordered collection of primitives and an environment color.
// Build it up front with the Add methods; it must not be mutated once
// rendering starts.
type Scene struct {
	Primitives  []Primitive
	Environment core.Vec3
}

// NewScene creates an empty scene with a black environment
func NewScene() *Scene {
	return &Scene{}
}

// AddSphere adds a sphere primitive to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.Primitives = append(s.Primitives, Primitive{
		Shape:    geometry.NewSphere(center, radius),
		Material: mat,
	})
}

// AddTriangle adds a triangle primitive to the scene
func (s *Scene) AddTriangle(v0, v1, v2 core.Vec3, mat material.Material) {
	s.Primitives = append(s.Primitives, Primitive{
		Shape:    geometry.NewTriangle(v0, v1, v2),
		Material: mat,
	})
}

// SetEnvironment sets the color returned for rays that hit nothing
func (s *Scene) SetEnvironment(color core.Vec3) {
	s.Environment = color
}

// Intersect finds the nearest intersection along the ray by scanning every
// primitive. Ties resolve to the earliest-inserted primitive because only a
// strictly closer hit replaces the current nearest.
func (s *Scene) Intersect(ray core.Ray) (geometry.Hit, material.Material, bool) {
	var nearest geometry.Hit
	var nearestMat material.Material
	found := false

	for _, p := range s.Primitives {
		hit, ok := p.Shape.Intersect(ray)
		if ok && (!found || hit.T < nearest.T) {
			nearest = hit
			nearestMat = p.Material
			found = true
		}
	}

	return nearest, nearestMat, found
}
