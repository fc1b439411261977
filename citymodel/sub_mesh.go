package citymodel

import mst "github.com/flywave/go-mst"

// SubMesh is an index range inside a Mesh's Indices array that shares
// one material. Start and End are inclusive positions, always
// triangle-aligned (End-Start+1 is a multiple of 3 relative to the
// owning sub-mesh's own triangles).
type SubMesh struct {
	Start    int
	End      int
	Material mst.MeshMaterial
}

// Len reports the number of index slots covered, inclusive.
func (s SubMesh) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start + 1
}
