package granularity

import (
	"testing"

	"github.com/flywave/go-granularity-convert/citymodel"
	"github.com/flywave/go-granularity-convert/vecmath"
)

func atomicMesh(gmlID string, x float64) *citymodel.Mesh {
	m := citymodel.NewMesh()
	m.Vertices = []vecmath.Vec3d{{X: x}, {X: x + 1}, {X: x + 2}}
	m.UV1 = make([]vecmath.Vec2f, 3)
	tag := vecmath.NewCityObjectIndex(0, 0).ToUV()
	m.UV4 = []vecmath.Vec2f{tag, tag, tag}
	m.Indices = []uint32{0, 1, 2}
	m.CityObjectList.Add(vecmath.NewCityObjectIndex(0, 0), gmlID)
	return m
}

func TestMergePrimaryAndChildrenTagsInBFSOrder(t *testing.T) {
	primary := citymodel.NewNode("P")
	primary.IsPrimary = true
	primary.Mesh = atomicMesh("P-mesh", 0)
	primary.Mesh.CityObjectList = citymodel.NewCityObjectList()
	primary.Mesh.CityObjectList.Add(vecmath.NewCityObjectIndex(0, vecmath.InvalidIndex), "P-mesh")

	child0 := primary.AddChild(citymodel.NewNode("A0"))
	child0.Mesh = atomicMesh("A0", 10)
	child1 := primary.AddChild(citymodel.NewNode("A1"))
	child1.Mesh = atomicMesh("A1", 20)

	dst := citymodel.NewMesh()
	mergePrimaryAndChildren(primary, dst, 7)

	if len(dst.Vertices) != 9 {
		t.Fatalf("expected 9 merged vertices, got %d", len(dst.Vertices))
	}

	wantTags := []vecmath.CityObjectIndex{
		vecmath.NewCityObjectIndex(7, -1),
		vecmath.NewCityObjectIndex(7, -1),
		vecmath.NewCityObjectIndex(7, -1),
		vecmath.NewCityObjectIndex(7, 0),
		vecmath.NewCityObjectIndex(7, 0),
		vecmath.NewCityObjectIndex(7, 0),
		vecmath.NewCityObjectIndex(7, 1),
		vecmath.NewCityObjectIndex(7, 1),
		vecmath.NewCityObjectIndex(7, 1),
	}
	for i, want := range wantTags {
		got := vecmath.CityObjectIndexFromUV(dst.UV4[i])
		if got != want {
			t.Errorf("vertex %d: got tag %+v want %+v", i, got, want)
		}
	}

	var gmlID string
	if !dst.CityObjectList.TryGetAtomicGmlID(vecmath.NewCityObjectIndex(7, -1), &gmlID) || gmlID != "P-mesh" {
		t.Errorf("expected primary gml-id P-mesh, got %q", gmlID)
	}
	if !dst.CityObjectList.TryGetAtomicGmlID(vecmath.NewCityObjectIndex(7, 1), &gmlID) || gmlID != "A1" {
		t.Errorf("expected atomic gml-id A1 for (7,1), got %q", gmlID)
	}
}
