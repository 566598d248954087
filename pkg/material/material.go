// Package material defines the surface description shared by all
// primitives: a diffuse color, an emission color, and the parameters of the
// probabilistic reflect-or-scatter split used by the integrator.
package material

import "github.com/dmarsh/go-pathtrace/pkg/core"

// AutoReflectivity marks a material whose reflection probability is derived
// from Fresnel reflectance at intersection time instead of a fixed value.
const AutoReflectivity = -1.0

// Material describes how a surface responds to light. Values are immutable
// and shared freely between primitives.
type Material struct {
	Diffuse             core.Vec3 // Diffuse (albedo) color, non-negative
	Emission            core.Vec3 // Emitted light, non-negative
	Reflectivity        float64   // Reflection probability in [0,1], or AutoReflectivity
	ReflectionConeAngle float64   // Glossiness spread in radians (0 = perfect mirror)
	IndexOfRefraction   float64   // Used when Reflectivity is AutoReflectivity
}

// NewDiffuse creates a purely diffuse material
func NewDiffuse(diffuse core.Vec3) Material {
	return Material{Diffuse: diffuse, IndexOfRefraction: 1.0}
}

// NewLight creates a purely emissive material
func NewLight(emission core.Vec3) Material {
	return Material{Emission: emission, IndexOfRefraction: 1.0}
}

// NewReflective creates a glossy material that reflects with the given fixed
// probability and scatters diffusely otherwise
func NewReflective(diffuse core.Vec3, reflectivity, coneAngle float64) Material {
	return Material{
		Diffuse:             diffuse,
		Reflectivity:        reflectivity,
		ReflectionConeAngle: coneAngle,
		IndexOfRefraction:   1.0,
	}
}

// NewGlass creates a material whose reflectivity follows Fresnel reflectance
// for the given index of refraction
func NewGlass(diffuse core.Vec3, indexOfRefraction float64) Material {
	return Material{
		Diffuse:           diffuse,
		Reflectivity:      AutoReflectivity,
		IndexOfRefraction: indexOfRefraction,
	}
}
