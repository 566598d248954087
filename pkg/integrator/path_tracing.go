// Package integrator implements the recursive radiance estimator at the
// heart of the path tracer.
package integrator

import (
	"math/rand"

	"github.com/dmarsh/go-pathtrace/pkg/core"
	"github.com/dmarsh/go-pathtrace/pkg/geometry"
	"github.com/dmarsh/go-pathtrace/pkg/material"
	"github.com/dmarsh/go-pathtrace/pkg/scene"
)

// PathTracer estimates radiance along rays by stochastic path tracing. It is
// stateless apart from its parameters and safe to share across goroutines;
// all randomness comes from the caller-supplied generator.
type PathTracer struct {
	params core.RenderParams
}

// NewPathTracer creates a path tracer with the given parameters
func NewPathTracer(params core.RenderParams) *PathTracer {
	return &PathTracer{params: params}
}

// maxSpecularBounces caps the specular bounces on any one path. Specular
// reflection does not advance the bounce depth, and total internal
// reflection inside a dielectric reflects with probability 1, so without a
// cap such a path would recurse forever.
const maxSpecularBounces = 64

// Radiance estimates the light arriving along ray. Each bounce chooses
// probabilistically between a cone-perturbed specular reflection and a
// cosine-weighted diffuse scatter. Specular bounces recurse at the same
// depth so mirror chains stay visually resolved; only diffuse bounces
// advance depth toward the cutoff. Paths that exceed maxSpecularBounces
// are treated as absorbed.
func (pt *PathTracer) Radiance(s *scene.Scene, rng *rand.Rand, ray core.Ray, depth int) core.Vec3 {
	return pt.radiance(s, rng, ray, depth, 0)
}

func (pt *PathTracer) radiance(s *scene.Scene, rng *rand.Rand, ray core.Ray, depth, specular int) core.Vec3 {
	if depth >= pt.params.MaxDepth {
		return core.Vec3{}
	}

	hit, mat, ok := s.Intersect(ray)
	if !ok {
		return s.Environment
	}

	if pt.params.Preview {
		return mat.Diffuse
	}

	// Local frame with the surface normal as the z axis
	basis := core.BasisFromNormal(hit.Normal)

	// Stratify the primary bounce to cut variance where it is most visible;
	// deeper bounces take a single sample. A specular bounce keeps depth 0,
	// so the specular counter guards against re-stratifying down the chain.
	numU, numV := 1, 1
	if depth == 0 && specular == 0 {
		numU = pt.params.FirstBounceUSamples
		numV = pt.params.FirstBounceVSamples
	}

	var incoming core.Vec3
	for v := 0; v < numV; v++ {
		for u := 0; u < numU; u++ {
			sampleU := (float64(u) + rng.Float64()) / float64(numU)
			sampleV := (float64(v) + rng.Float64()) / float64(numV)
			incoming = incoming.Add(pt.singleRay(s, rng, hit, mat, ray, basis, sampleU, sampleV, depth, specular))
		}
	}

	return mat.Emission.Add(incoming.Multiply(1.0 / float64(numU*numV)))
}

// singleRay traces one bounce from the hit point. p < reflectivity selects a
// glossy reflection returned unattenuated; otherwise the material's diffuse
// color attenuates a hemisphere-sampled bounce.
func (pt *PathTracer) singleRay(s *scene.Scene, rng *rand.Rand, hit geometry.Hit, mat material.Material, ray core.Ray, basis core.OrthoNormalBasis, u, v float64, depth, specular int) core.Vec3 {
	p := rng.Float64()

	reflectivity := mat.Reflectivity
	if reflectivity < 0 {
		iorFrom, iorTo := 1.0, mat.IndexOfRefraction
		if hit.Inside {
			iorFrom, iorTo = mat.IndexOfRefraction, 1.0
		}
		reflectivity = core.Reflectance(hit.Normal, ray.Direction, iorFrom, iorTo)
	}

	if p < reflectivity {
		if specular >= maxSpecularBounces {
			return core.Vec3{}
		}
		reflected := core.ConeSample(ray.Direction.Reflect(hit.Normal), mat.ReflectionConeAngle, u, v)
		return pt.radiance(s, rng, core.NewRay(hit.Point, reflected), depth, specular+1)
	}

	scattered := core.HemisphereSample(basis, u, v)
	return mat.Diffuse.MultiplyVec(pt.radiance(s, rng, core.NewRay(hit.Point, scattered), depth+1, specular))
}
