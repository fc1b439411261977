package granularity

import (
	"sort"

	"github.com/flywave/go-granularity-convert/citymodel"
	"github.com/flywave/go-granularity-convert/vecmath"
)

// convertToAtomic replaces every mesh-carrying node of src with a
// primary node holding the primary-only residual mesh, whose children
// are atomic nodes each holding one atomic object's vertices.
// Mesh-less nodes are copied by name and is-primary flag only. The walk is breadth-first
// over path positions into src (see node_pos.go) so growing dst never
// invalidates a position still queued.
func convertToAtomic(src *citymodel.Model) *citymodel.Model {
	dst := citymodel.NewModel()
	dst.ReserveRoots(src.RootCount())

	var queue []nodePos
	for i := 0; i < src.RootCount(); i++ {
		queue = append(queue, rootPos(i))
	}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		srcNode := pos.resolve(src)
		for i := range srcNode.Children {
			queue = append(queue, pos.child(i))
		}

		if srcNode.Mesh == nil {
			copied := citymodel.NewNode(srcNode.Name)
			// Carry the is-primary flag over on a plain copy. Without
			// this, re-running convertToAtomic on an already-atomic
			// model (as the top-level Convert does on every call) would
			// forget which mesh-less nodes were primaries and wrap
			// their atomic children in a spurious extra primary layer
			// the next time a mesh-bearing descendant is visited,
			// breaking the idempotence required by Convert's contract.
			copied.IsPrimary = srcNode.IsPrimary
			pos.parent().addChild(dst, copied)
			continue
		}

		convertMeshNodeToAtomic(srcNode, pos, dst)
	}

	return dst
}

// convertMeshNodeToAtomic handles a single mesh-carrying source node:
// one primary node per distinct primary id referenced by the mesh,
// each with an atomic child per (primary, atomic) pair.
func convertMeshNodeToAtomic(srcNode *citymodel.Node, pos nodePos, dst *citymodel.Model) {
	srcMesh := srcNode.Mesh

	idsInMesh := make(map[vecmath.CityObjectIndex]struct{})
	primaryIDs := make(map[int32]struct{})
	for _, uv := range srcMesh.UV4 {
		id := vecmath.CityObjectIndexFromUV(uv)
		idsInMesh[id] = struct{}{}
		primaryIDs[id.Primary] = struct{}{}
	}

	sortedPrimaryIDs := make([]int32, 0, len(primaryIDs))
	for p := range primaryIDs {
		sortedPrimaryIDs = append(sortedPrimaryIDs, p)
	}
	sort.Slice(sortedPrimaryIDs, func(i, j int) bool { return sortedPrimaryIDs[i] < sortedPrimaryIDs[j] })

	for _, primaryID := range sortedPrimaryIDs {
		dstParent := pos.parent().resolve(dst)
		parentIsPrimary := dstParent != nil && dstParent.IsPrimary

		var primaryNode *citymodel.Node
		if parentIsPrimary {
			// The enclosing source parent was itself converted into a
			// primary node: reuse it rather than nesting another
			// primary under it. This silently drops this node's own
			// primary-only mesh residual (see DESIGN.md open question).
			primaryNode = dstParent
		} else {
			gmlID := citymodel.DefaultGmlID
			srcMesh.CityObjectList.TryGetPrimaryGmlID(primaryID, &gmlID)

			primaryNode = citymodel.NewNode(gmlID)
			primaryNode.IsPrimary = true
			pos.parent().addChild(dst, primaryNode)

			primaryMesh := filterByCityObjIndex(srcMesh, vecmath.NewCityObjectIndex(primaryID, vecmath.InvalidIndex), vecmath.InvalidIndex)
			if primaryMesh.HasVertices() {
				primaryMesh.CityObjectList.Add(vecmath.NewCityObjectIndex(0, vecmath.InvalidIndex), gmlID)
				primaryNode.Mesh = primaryMesh
			}
		}

		var atomicIDs []vecmath.CityObjectIndex
		for id := range idsInMesh {
			if id.Primary != primaryID || id.Atomic == vecmath.InvalidIndex {
				continue
			}
			atomicIDs = append(atomicIDs, id)
		}
		sort.Slice(atomicIDs, func(i, j int) bool { return atomicIDs[i].Less(atomicIDs[j]) })

		for _, id := range atomicIDs {
			gmlID := citymodel.DefaultGmlID
			srcMesh.CityObjectList.TryGetAtomicGmlID(id, &gmlID)

			atomicNode := citymodel.NewNode(gmlID)
			primaryNode.AddChild(atomicNode)

			atomicMesh := filterByCityObjIndex(srcMesh, id, 0)
			if atomicMesh.HasVertices() {
				atomicMesh.CityObjectList.Add(vecmath.NewCityObjectIndex(0, 0), gmlID)
				atomicNode.Mesh = atomicMesh
			}
		}
	}
}
