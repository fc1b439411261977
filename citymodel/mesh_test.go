package citymodel

import (
	"testing"

	mst "github.com/flywave/go-mst"

	"github.com/flywave/go-granularity-convert/vecmath"
)

func triangleMesh() *Mesh {
	m := NewMesh()
	m.Vertices = []vecmath.Vec3d{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	m.UV1 = []vecmath.Vec2f{{}, {}, {}}
	m.UV4 = []vecmath.Vec2f{{}, {}, {}}
	m.Indices = []uint32{0, 1, 2}
	m.SubMeshes = []SubMesh{{Start: 0, End: 2, Material: &mst.BaseMaterial{}}}
	return m
}

func TestMeshHasVertices(t *testing.T) {
	var nilMesh *Mesh
	if nilMesh.HasVertices() {
		t.Error("nil mesh must report no vertices")
	}
	if NewMesh().HasVertices() {
		t.Error("empty mesh must report no vertices")
	}
	if !triangleMesh().HasVertices() {
		t.Error("triangle mesh must report vertices")
	}
}

func TestMeshMergeShiftsIndicesAndSubMeshes(t *testing.T) {
	dst := triangleMesh()
	src := triangleMesh()

	dst.Merge(src, false, true)

	if len(dst.Vertices) != 6 {
		t.Fatalf("expected 6 vertices after merge, got %d", len(dst.Vertices))
	}
	wantIndices := []uint32{0, 1, 2, 3, 4, 5}
	for i, idx := range wantIndices {
		if dst.Indices[i] != idx {
			t.Errorf("index %d: got %d want %d", i, dst.Indices[i], idx)
		}
	}
	if len(dst.SubMeshes) != 2 {
		t.Fatalf("expected 2 sub-meshes, got %d", len(dst.SubMeshes))
	}
	if dst.SubMeshes[1].Start != 3 || dst.SubMeshes[1].End != 5 {
		t.Errorf("expected second sub-mesh shifted to [3,5], got [%d,%d]",
			dst.SubMeshes[1].Start, dst.SubMeshes[1].End)
	}
}

func TestMeshMergeCityObjectListFlag(t *testing.T) {
	dst := NewMesh()
	dst.CityObjectList.Add(vecmath.NewCityObjectIndex(0, -1), "P")
	src := NewMesh()
	src.CityObjectList.Add(vecmath.NewCityObjectIndex(0, 0), "A0")

	dst.Merge(src, false, true)
	if dst.CityObjectList.Len() != 1 {
		t.Fatalf("expected src's CityObjectList not merged when flag is false, got %d entries", dst.CityObjectList.Len())
	}

	dst.Merge(src, true, true)
	if dst.CityObjectList.Len() != 2 {
		t.Fatalf("expected src's CityObjectList merged when flag is true, got %d entries", dst.CityObjectList.Len())
	}
}

func TestMeshClone(t *testing.T) {
	src := triangleMesh()
	clone := src.Clone()
	clone.Vertices[0].X = 99
	if src.Vertices[0].X == 99 {
		t.Error("mutating clone must not affect source")
	}
}
