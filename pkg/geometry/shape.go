// Package geometry implements ray intersection tests for the primitive
// shapes the renderer supports: spheres and triangles.
package geometry

import "github.com/dmarsh/go-pathtrace/pkg/core"

// Epsilon is the minimum parametric distance for a valid intersection.
// Roots closer than this are rejected to avoid surface acne from rays
// re-hitting the surface they just left.
const Epsilon = 1e-9

// Hit records a successful ray/shape intersection
type Hit struct {
	T      float64   // Parametric distance along the ray
	Point  core.Vec3 // World-space intersection position
	Normal core.Vec3 // Unit normal, always facing against the ray direction
	Inside bool      // Whether the ray originated inside the surface
}

// Shape is the closed set of intersectable primitives. Sphere and Triangle
// are the only implementations.
type Shape interface {
	Intersect(ray core.Ray) (Hit, bool)
}
