package geometry

import (
	"math"

	"github.com/dmarsh/go-pathtrace/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Intersect tests the ray against the sphere.
// Solves t²(d·d) + 2t((o−c)·d) + (o−c)·(o−c) − r² = 0 for the smallest root
// beyond Epsilon, falling back to the larger root when the origin sits on or
// inside the surface.
func (s Sphere) Intersect(ray core.Ray) (Hit, bool) {
	op := s.Center.Subtract(ray.Origin)
	b := op.Dot(ray.Direction)
	discriminant := b*b - op.LengthSquared() + s.Radius*s.Radius
	if discriminant < 0 {
		return Hit{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	minusT := b - sqrtD
	plusT := b + sqrtD
	if minusT < Epsilon && plusT < Epsilon {
		return Hit{}, false
	}

	t := plusT
	if minusT > Epsilon {
		t = minusT
	}

	point := ray.At(t)
	normal := point.Subtract(s.Center).Normalize()
	inside := op.LengthSquared() < s.Radius*s.Radius
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate()
	}

	return Hit{T: t, Point: point, Normal: normal, Inside: inside}, true
}
