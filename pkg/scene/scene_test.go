package scene

import (
	"math"
	"testing"

	"github.com/dmarsh/go-pathtrace/pkg/core"
	"github.com/dmarsh/go-pathtrace/pkg/material"
)

func TestScene_Intersect_Nearest(t *testing.T) {
	sc := NewScene()
	far := material.NewDiffuse(core.NewVec3(1, 0, 0))
	near := material.NewDiffuse(core.NewVec3(0, 1, 0))
	sc.AddSphere(core.NewVec3(0, 0, -10), 1, far)
	sc.AddSphere(core.NewVec3(0, 0, -5), 1, near)

	hit, mat, ok := sc.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected nearest hit at t=4, got t=%f", hit.T)
	}
	if mat.Diffuse != near.Diffuse {
		t.Errorf("Expected material of near sphere, got %v", mat.Diffuse)
	}
}

func TestScene_Intersect_TieBreaksToFirstInserted(t *testing.T) {
	sc := NewScene()
	first := material.NewDiffuse(core.NewVec3(1, 0, 0))
	second := material.NewDiffuse(core.NewVec3(0, 1, 0))
	// Two identical coincident spheres: the strict < comparison keeps the
	// first-inserted primitive.
	sc.AddSphere(core.NewVec3(0, 0, -5), 1, first)
	sc.AddSphere(core.NewVec3(0, 0, -5), 1, second)

	_, mat, ok := sc.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected hit")
	}
	if mat.Diffuse != first.Diffuse {
		t.Errorf("Expected first-inserted material to win the tie, got %v", mat.Diffuse)
	}
}

func TestScene_Intersect_EmptyScene(t *testing.T) {
	sc := NewScene()
	sc.SetEnvironment(core.NewVec3(0.5, 0.5, 0.5))

	if _, _, ok := sc.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))); ok {
		t.Error("Expected no hit in an empty scene")
	}
	if sc.Environment != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Expected environment (0.5,0.5,0.5), got %v", sc.Environment)
	}
}

func TestScene_AddTriangle(t *testing.T) {
	sc := NewScene()
	mat := material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.8))
	sc.AddTriangle(core.NewVec3(-1, -1, -2), core.NewVec3(1, -1, -2), core.NewVec3(0, 1, -2), mat)

	hit, _, ok := sc.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected triangle hit")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}
}
