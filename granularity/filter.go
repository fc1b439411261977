package granularity

import (
	"github.com/flywave/go-granularity-convert/citymodel"
	"github.com/flywave/go-granularity-convert/vecmath"
)

// filterByCityObjIndex produces a new mesh containing exactly the
// vertices of src whose UV4 decodes to filterID, with indices remapped
// to the compacted vertex array and sub-meshes restricted to the
// surviving portion of their original range. Every output vertex
// carries UV4 (0, replacementAtomic).
//
// This assumes every triangle's three vertices share one
// CityObjectIndex (tags are assigned per primitive upstream); a
// triangle split across tags would silently emit a broken index
// triple. The sub-mesh erosion pass relies on this.
func filterByCityObjIndex(src *citymodel.Mesh, filterID vecmath.CityObjectIndex, replacementAtomic int32) *citymodel.Mesh {
	vertexCount := len(src.Vertices)

	dst := citymodel.NewMesh()
	dst.Reserve(vertexCount, len(src.Indices))

	// vertRemap[i] is the new index of source vertex i in dst, or -1 if dropped.
	vertRemap := make([]int, vertexCount)
	for i := 0; i < vertexCount; i++ {
		id := vecmath.CityObjectIndexFromUV(src.UV4[i])
		if id != filterID {
			vertRemap[i] = -1
			continue
		}
		vertRemap[i] = len(dst.Vertices)
		dst.Vertices = append(dst.Vertices, src.Vertices[i])
		dst.UV1 = append(dst.UV1, src.UV1[i])
		dst.UV4 = append(dst.UV4, vecmath.NewCityObjectIndex(0, replacementAtomic).ToUV())
	}

	// idxRemap[j] is the position in dst.Indices of the image of
	// src.Indices[j], or -1 if the referenced vertex was dropped.
	idxRemap := make([]int, len(src.Indices))
	for j, srcIndex := range src.Indices {
		nextID := vertRemap[srcIndex]
		if nextID < 0 {
			idxRemap[j] = -1
			continue
		}
		dst.Indices = append(dst.Indices, uint32(nextID))
		idxRemap[j] = len(dst.Indices) - 1
	}

	for _, srcSub := range src.SubMeshes {
		start, end := srcSub.Start, srcSub.End

		for idxRemap[start] < 0 {
			start++
			if start > end {
				break
			}
		}
		if start > end {
			continue
		}

		for idxRemap[end] < 0 {
			end--
			if end < start {
				break
			}
		}
		if end < start {
			continue
		}

		dst.SubMeshes = append(dst.SubMeshes, citymodel.SubMesh{
			Start:    idxRemap[start],
			End:      idxRemap[end],
			Material: srcSub.Material,
		})
	}

	return dst
}
