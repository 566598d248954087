// Package loaders reads external scene assets into the renderer's data
// model. Only the subset of Wavefront OBJ the bundled scenes use is
// supported: vertices, polygonal faces and material group names.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmarsh/go-pathtrace/pkg/core"
	"github.com/dmarsh/go-pathtrace/pkg/material"
	"github.com/dmarsh/go-pathtrace/pkg/scene"
)

// Face is a triangle into the vertex list, tagged with the material group
// (usemtl) that was active when it was declared.
type Face struct {
	V        [3]int
	Material string
}

// OBJData contains the geometry loaded from an OBJ file. Polygons with more
// than three vertices are fan-triangulated at load time.
type OBJData struct {
	Vertices []core.Vec3
	Faces    []Face
}

// LoadOBJ parses an OBJ document from r. Unsupported directives (normals,
// texture coordinates, smoothing groups, mtllib) are skipped; malformed
// vertex or face lines are errors.
func LoadOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{}
	currentMaterial := ""

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates, got %d", lineNum, len(fields)-1)
			}
			var coords [3]float64
			for i := 0; i < 3; i++ {
				val, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid vertex coordinate %q: %w", lineNum, fields[i+1], err)
				}
				coords[i] = val
			}
			data.Vertices = append(data.Vertices, core.NewVec3(coords[0], coords[1], coords[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices, got %d", lineNum, len(fields)-1)
			}
			indices := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, err := parseVertexRef(ref, len(data.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				indices = append(indices, idx)
			}
			// Fan triangulation around the first vertex
			for i := 1; i < len(indices)-1; i++ {
				data.Faces = append(data.Faces, Face{
					V:        [3]int{indices[0], indices[i], indices[i+1]},
					Material: currentMaterial,
				})
			}

		case "usemtl":
			if len(fields) > 1 {
				currentMaterial = fields[1]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}

	return data, nil
}

// LoadOBJFile parses the OBJ file at path
func LoadOBJFile(path string) (*OBJData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening obj file: %w", err)
	}
	defer f.Close()

	data, err := LoadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return data, nil
}

// parseVertexRef resolves one face vertex reference ("7", "7/1", "7//2" or a
// negative relative index) to a zero-based vertex index
func parseVertexRef(ref string, numVertices int) (int, error) {
	vertexPart := ref
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		vertexPart = ref[:slash]
	}
	idx, err := strconv.Atoi(vertexPart)
	if err != nil {
		return 0, fmt.Errorf("invalid vertex reference %q: %w", ref, err)
	}
	switch {
	case idx > 0 && idx <= numVertices:
		return idx - 1, nil
	case idx < 0 && -idx <= numVertices:
		return numVertices + idx, nil
	default:
		return 0, fmt.Errorf("vertex reference %d out of range (%d vertices defined)", idx, numVertices)
	}
}

// AddToScene materializes the loaded triangles into a scene. Faces look up
// their material group in materials and fall back to fallback when the group
// is absent or unnamed.
func (o *OBJData) AddToScene(s *scene.Scene, materials map[string]material.Material, fallback material.Material) {
	for _, face := range o.Faces {
		mat, ok := materials[face.Material]
		if !ok {
			mat = fallback
		}
		s.AddTriangle(o.Vertices[face.V[0]], o.Vertices[face.V[1]], o.Vertices[face.V[2]], mat)
	}
}
