package core

import "math"

// OrthoNormalBasis is a local right-handed coordinate frame. Shading code
// builds one with the surface normal as the Z axis and transforms sampled
// directions out of it.
type OrthoNormalBasis struct {
	U, V, W Vec3
}

// BasisFromNormal constructs an orthonormal basis whose W axis is the given
// unit normal. The tangent seed is chosen away from the normal to avoid a
// degenerate cross product.
func BasisFromNormal(normal Vec3) OrthoNormalBasis {
	var seed Vec3
	if math.Abs(normal.X) > 0.1 {
		seed = NewVec3(0, 1, 0)
	} else {
		seed = NewVec3(1, 0, 0)
	}

	u := seed.Cross(normal).Normalize()
	v := normal.Cross(u)

	return OrthoNormalBasis{U: u, V: v, W: normal}
}

// Transform maps a vector from basis-local coordinates to world space
func (b OrthoNormalBasis) Transform(local Vec3) Vec3 {
	return b.U.Multiply(local.X).
		Add(b.V.Multiply(local.Y)).
		Add(b.W.Multiply(local.Z))
}
