package cmd

import (
	"fmt"
	"math"

	"github.com/dmarsh/go-pathtrace/pkg/core"
	"github.com/dmarsh/go-pathtrace/pkg/loaders"
	"github.com/dmarsh/go-pathtrace/pkg/material"
	"github.com/dmarsh/go-pathtrace/pkg/renderer"
	"github.com/dmarsh/go-pathtrace/pkg/scene"
)

// SceneNames lists the available preset scenes.
var SceneNames = []string{"cornell", "spheres", "mesh"}

// buildScene constructs a preset scene and its camera. The mesh scene loads
// its geometry from objPath; the others are built in code.
func buildScene(name, objPath string, width, height int) (*scene.Scene, *renderer.Camera, error) {
	switch name {
	case "cornell":
		sc, cam := buildCornellScene(width, height)
		return sc, cam, nil
	case "spheres":
		sc, cam := buildSpheresScene(width, height)
		return sc, cam, nil
	case "mesh":
		return buildMeshScene(objPath, width, height)
	default:
		return nil, nil, fmt.Errorf("unknown scene %q (available: %v)", name, SceneNames)
	}
}

// addQuad adds a quadrilateral as two triangles. Vertices wind
// counter-clockwise when viewed from the side the normal should face.
func addQuad(sc *scene.Scene, a, b, c, d core.Vec3, mat material.Material) {
	sc.AddTriangle(a, b, c, mat)
	sc.AddTriangle(a, c, d, mat)
}

// buildCornellScene recreates the Cornell box: five diffuse walls, a
// ceiling area light and a glossy sphere, lit additionally by a dim warm
// environment.
func buildCornellScene(width, height int) (*scene.Scene, *renderer.Camera) {
	sc := scene.NewScene()

	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewLight(core.NewVec3(17, 12, 4))

	// Box interior spans x,z ∈ [-1,1], y ∈ [0,2]
	floorA := core.NewVec3(-1, 0, -1)
	floorB := core.NewVec3(1, 0, -1)
	floorC := core.NewVec3(1, 0, 1)
	floorD := core.NewVec3(-1, 0, 1)
	ceilA := core.NewVec3(-1, 2, -1)
	ceilB := core.NewVec3(1, 2, -1)
	ceilC := core.NewVec3(1, 2, 1)
	ceilD := core.NewVec3(-1, 2, 1)

	addQuad(sc, floorA, floorB, floorC, floorD, white) // floor
	addQuad(sc, ceilD, ceilC, ceilB, ceilA, white)     // ceiling
	addQuad(sc, floorB, floorA, ceilA, ceilB, white)   // back wall
	addQuad(sc, floorA, floorD, ceilD, ceilA, red)     // left wall
	addQuad(sc, floorC, floorB, ceilB, ceilC, green)   // right wall

	// Area light just below the ceiling
	addQuad(sc,
		core.NewVec3(-0.24, 1.98, -0.22),
		core.NewVec3(0.24, 1.98, -0.22),
		core.NewVec3(0.24, 1.98, 0.16),
		core.NewVec3(-0.24, 1.98, 0.16),
		light)

	sc.AddSphere(core.NewVec3(-0.38, 0.281, 0.38), 0.28,
		material.NewReflective(core.NewVec3(0.999, 0.999, 0.999), 0.75, 0))

	sc.SetEnvironment(core.NewVec3(0.725, 0.71, 0.68).Multiply(0.1))

	camera := renderer.NewCamera(renderer.CameraConfig{
		Center:        core.NewVec3(0, 1, 3),
		LookAt:        core.NewVec3(0, 1, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         width,
		Height:        height,
		VFov:          50,
		Aperture:      0.01,
		FocusDistance: core.NewVec3(0, 1, 3).Length(), // focus on the origin
	})

	return sc, camera
}

// buildSpheresScene is a small open scene: diffuse and glass spheres over a
// triangle ground plane, lit by a spherical light under a gray sky.
func buildSpheresScene(width, height int) (*scene.Scene, *renderer.Camera) {
	sc := scene.NewScene()

	ground := material.NewDiffuse(core.NewVec3(0.35, 0.45, 0.35))
	addQuad(sc,
		core.NewVec3(-20, 0, -20),
		core.NewVec3(-20, 0, 20),
		core.NewVec3(20, 0, 20),
		core.NewVec3(20, 0, -20),
		ground)

	sc.AddSphere(core.NewVec3(-1.2, 1, 0), 1, material.NewDiffuse(core.NewVec3(0.75, 0.25, 0.25)))
	sc.AddSphere(core.NewVec3(1.2, 1, 0), 1, material.NewGlass(core.NewVec3(0.95, 0.95, 0.95), 1.5))
	sc.AddSphere(core.NewVec3(0, 0.6, 1.6), 0.6,
		material.NewReflective(core.NewVec3(0.9, 0.9, 0.9), 0.9, 10*math.Pi/180))
	sc.AddSphere(core.NewVec3(0, 6, 2), 1.5, material.NewLight(core.NewVec3(8, 8, 8)))

	sc.SetEnvironment(core.NewVec3(0.4, 0.45, 0.5))

	camera := renderer.NewCamera(renderer.CameraConfig{
		Center: core.NewVec3(0, 1.6, 6),
		LookAt: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
		Width:  width,
		Height: height,
		VFov:   45,
	})

	return sc, camera
}

// buildMeshScene loads a Wavefront OBJ mesh and lights it with two sphere
// lights in front of a diffuse backdrop.
func buildMeshScene(objPath string, width, height int) (*scene.Scene, *renderer.Camera, error) {
	if objPath == "" {
		return nil, nil, fmt.Errorf("the mesh scene requires --obj <file.obj>")
	}

	obj, err := loaders.LoadOBJFile(objPath)
	if err != nil {
		return nil, nil, err
	}

	sc := scene.NewScene()
	obj.AddToScene(sc, nil, material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.6)))

	lightMat := material.NewLight(core.NewVec3(4, 4, 4))
	sc.AddSphere(core.NewVec3(0.5, 1, 3), 1, lightMat)
	sc.AddSphere(core.NewVec3(1, 1, 3), 1, lightMat)

	backdrop := material.NewDiffuse(core.NewVec3(0.20, 0.30, 0.36))
	addQuad(sc,
		core.NewVec3(-5, -5, -1),
		core.NewVec3(5, -5, -1),
		core.NewVec3(5, 5, -1),
		core.NewVec3(-5, 5, -1),
		backdrop)

	lookAt := core.NewVec3(1, -0.6, 0.4)
	center := core.NewVec3(1, -0.45, 4)
	camera := renderer.NewCamera(renderer.CameraConfig{
		Center:        center,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		Width:         width,
		Height:        height,
		VFov:          40,
		Aperture:      0.01,
		FocusDistance: lookAt.Subtract(center).Length(),
	})

	return sc, camera, nil
}
