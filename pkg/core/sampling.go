package core

import "math"

// HemisphereSample generates a cosine-weighted direction in the hemisphere
// around the basis W axis. u and v are uniform samples in [0, 1).
func HemisphereSample(basis OrthoNormalBasis, u, v float64) Vec3 {
	theta := 2.0 * math.Pi * u
	radius := math.Sqrt(v)

	x := radius * math.Cos(theta)
	y := radius * math.Sin(theta)
	z := math.Sqrt(1.0 - v)

	return basis.Transform(NewVec3(x, y, z))
}

// ConeSample generates a direction within a cone of half-angle coneAngle
// radians around direction. u and v are uniform samples in [0, 1). A zero
// cone angle returns the axis itself (a perfect mirror direction).
func ConeSample(direction Vec3, coneAngle, u, v float64) Vec3 {
	if coneAngle <= 0 {
		return direction.Normalize()
	}

	basis := BasisFromNormal(direction.Normalize())

	// Uniform in solid angle: cosTheta ∈ [cos(coneAngle), 1]
	cosTheta := 1.0 - u*(1.0-math.Cos(coneAngle))
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * v

	local := NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	return basis.Transform(local)
}

// DiskSample maps two uniform samples to a point on a disk of the given
// radius in the XY plane, used for thin-lens aperture sampling.
func DiskSample(radius, u, v float64) Vec3 {
	r := radius * math.Sqrt(u)
	theta := 2.0 * math.Pi * v
	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}
