package geometry

import "github.com/dmarsh/go-pathtrace/pkg/core"

// Triangle represents a single triangle defined by three vertices. The
// geometric normal follows the winding order of the vertices.
type Triangle struct {
	V0, V1, V2 core.Vec3
	normal     core.Vec3 // Cached unit normal
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	return Triangle{
		V0:     v0,
		V1:     v1,
		V2:     v2,
		normal: edge1.Cross(edge2).Normalize(),
	}
}

// Normal returns the triangle's winding-order normal
func (t Triangle) Normal() core.Vec3 {
	return t.normal
}

// Intersect tests the ray against the triangle using the Möller–Trumbore
// algorithm. Rays parallel to the triangle plane miss.
func (t Triangle) Intersect(ray core.Ray) (Hit, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if det > -Epsilon && det < Epsilon {
		return Hit{}, false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := invDet * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return Hit{}, false
	}

	q := s.Cross(edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Hit{}, false
	}

	dist := invDet * edge2.Dot(q)
	if dist < Epsilon {
		return Hit{}, false
	}

	normal := t.normal
	backface := normal.Dot(ray.Direction) > 0
	if backface {
		normal = normal.Negate()
	}

	return Hit{T: dist, Point: ray.At(dist), Normal: normal, Inside: backface}, true
}
