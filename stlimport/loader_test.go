package stlimport

import (
	"os"
	"testing"

	"github.com/flywave/go-stl"
	"github.com/flywave/go3d/vec3"

	"github.com/flywave/go-granularity-convert/vecmath"
)

func twoTriangleSolid() *stl.Solid {
	return &stl.Solid{
		Name: "cube",
		Triangles: []stl.Triangle{
			{
				Normal:   vec3.T{0, 0, 1},
				Vertices: [3]vec3.T{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			},
			{
				Normal:   vec3.T{0, 0, 1},
				Vertices: [3]vec3.T{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
			},
		},
	}
}

func TestImporterFromSolidTagsSingleAtomicObject(t *testing.T) {
	imp := &Importer{}
	model, err := imp.FromSolid(twoTriangleSolid(), "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if model.RootCount() != 1 {
		t.Fatalf("expected 1 root, got %d", model.RootCount())
	}
	root := model.RootAt(0)
	if root.Mesh == nil {
		t.Fatal("expected root to carry a mesh")
	}
	if len(root.Mesh.Vertices) != 6 {
		t.Fatalf("expected 6 vertices, got %d", len(root.Mesh.Vertices))
	}

	want := vecmath.NewCityObjectIndex(0, 0)
	for i, uv := range root.Mesh.UV4 {
		if got := vecmath.CityObjectIndexFromUV(uv); got != want {
			t.Errorf("vertex %d: got tag %+v want %+v", i, got, want)
		}
	}

	var gmlID string
	if !root.Mesh.CityObjectList.TryGetAtomicGmlID(want, &gmlID) || gmlID != "b1" {
		t.Errorf("expected gml id b1, got %q", gmlID)
	}

	if len(root.Mesh.SubMeshes) != 1 {
		t.Fatalf("expected 1 sub-mesh, got %d", len(root.Mesh.SubMeshes))
	}
	if root.Mesh.SubMeshes[0].Start != 0 || root.Mesh.SubMeshes[0].End != 5 {
		t.Errorf("unexpected sub-mesh range: %+v", root.Mesh.SubMeshes[0])
	}
}

func TestImporterLoadReadsFileFromDisk(t *testing.T) {
	solid := twoTriangleSolid()
	tmp := "test_load.stl"
	defer os.Remove(tmp)
	if err := solid.WriteFile(tmp); err != nil {
		t.Fatalf("could not write fixture stl: %v", err)
	}

	imp := &Importer{}
	model, err := imp.Load(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(model.RootAt(0).Mesh.Indices) != 6 {
		t.Errorf("expected 6 indices, got %d", len(model.RootAt(0).Mesh.Indices))
	}
}

func TestImporterLoadWithScaleScalesVertices(t *testing.T) {
	solid := twoTriangleSolid()
	tmp := "test_scale.stl"
	defer os.Remove(tmp)
	if err := solid.WriteFile(tmp); err != nil {
		t.Fatalf("could not write fixture stl: %v", err)
	}

	imp := &Importer{}
	model, err := imp.LoadWithScale(tmp, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := model.RootAt(0).Mesh.Vertices[1]
	if v.X != 2 {
		t.Errorf("expected scaled X=2, got %v", v.X)
	}
}
