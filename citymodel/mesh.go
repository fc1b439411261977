package citymodel

import "github.com/flywave/go-granularity-convert/vecmath"

// Mesh is a triangle mesh with a per-vertex city-object tag channel
// (UV4) and sub-mesh ranges for material assignment.
type Mesh struct {
	Vertices []vecmath.Vec3d
	UV1      []vecmath.Vec2f
	UV4      []vecmath.Vec2f
	Indices  []uint32
	SubMeshes []SubMesh

	CityObjectList *CityObjectList
}

// NewMesh returns an empty mesh with an initialized CityObjectList.
func NewMesh() *Mesh {
	return &Mesh{CityObjectList: NewCityObjectList()}
}

// HasVertices reports whether the mesh carries any vertex. Callers use
// this to decide whether a filtered or merged mesh is worth attaching
// to a node.
func (m *Mesh) HasVertices() bool {
	return m != nil && len(m.Vertices) > 0
}

// Reserve hints at the eventual vertex/index counts, avoiding repeated
// slice growth during filtering and merging. It is a capacity hint
// only; Go has no exact vector::reserve equivalent but append-heavy
// loops in this package benefit from it the same way the original did.
func (m *Mesh) Reserve(vertexCount, indexCount int) {
	if cap(m.Vertices) < vertexCount {
		grown := make([]vecmath.Vec3d, len(m.Vertices), vertexCount)
		copy(grown, m.Vertices)
		m.Vertices = grown
	}
	if cap(m.UV1) < vertexCount {
		grown := make([]vecmath.Vec2f, len(m.UV1), vertexCount)
		copy(grown, m.UV1)
		m.UV1 = grown
	}
	if cap(m.UV4) < vertexCount {
		grown := make([]vecmath.Vec2f, len(m.UV4), vertexCount)
		copy(grown, m.UV4)
		m.UV4 = grown
	}
	if cap(m.Indices) < indexCount {
		grown := make([]uint32, len(m.Indices), indexCount)
		copy(grown, m.Indices)
		m.Indices = grown
	}
}

// Merge appends src into m: vertices, UV1, UV4 and index-shifted
// indices always move over. includeCityObjectList and
// shiftAndKeepSubMeshes govern the two remaining concerns the original
// API bundled into this call ("material handling and offset policy" in
// the original spec's words):
//
//   - shiftAndKeepSubMeshes: when true, src's sub-meshes (with their
//     material references intact) are appended with Start/End shifted
//     by m's prior index count. When false, src's sub-meshes are
//     dropped — used when the caller only wants geometry, not material
//     assignment (the converter always passes true; no caller in this
//     repository passes false).
//   - includeCityObjectList: when true, src's CityObjectList entries
//     are merged into m's. The converter passes false because
//     mergePrimaryAndChildren computes and adds its own re-tagged
//     entries explicitly rather than inheriting src's atomic-scheme
//     ones.
func (m *Mesh) Merge(src *Mesh, includeCityObjectList, shiftAndKeepSubMeshes bool) {
	if src == nil {
		return
	}
	vertexOffset := uint32(len(m.Vertices))
	indexOffset := len(m.Indices)

	m.Vertices = append(m.Vertices, src.Vertices...)
	m.UV1 = append(m.UV1, src.UV1...)
	m.UV4 = append(m.UV4, src.UV4...)

	for _, idx := range src.Indices {
		m.Indices = append(m.Indices, idx+vertexOffset)
	}

	if shiftAndKeepSubMeshes {
		for _, sm := range src.SubMeshes {
			merged := sm
			merged.Start += indexOffset
			merged.End += indexOffset
			m.SubMeshes = append(m.SubMeshes, merged)
		}
	}

	if includeCityObjectList {
		if m.CityObjectList == nil {
			m.CityObjectList = NewCityObjectList()
		}
		m.CityObjectList.Merge(src.CityObjectList)
	}
}

// Clone returns a deep copy of m, safe for independent mutation (used
// before retagging UV4 in a merge pass, since the source node's mesh
// must not be altered).
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Vertices:  append([]vecmath.Vec3d(nil), m.Vertices...),
		UV1:       append([]vecmath.Vec2f(nil), m.UV1...),
		UV4:       append([]vecmath.Vec2f(nil), m.UV4...),
		Indices:   append([]uint32(nil), m.Indices...),
		SubMeshes: append([]SubMesh(nil), m.SubMeshes...),
	}
	clone.CityObjectList = NewCityObjectList()
	if m.CityObjectList != nil {
		clone.CityObjectList.Merge(m.CityObjectList)
	}
	return clone
}
