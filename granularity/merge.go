package granularity

import (
	"github.com/flywave/go-granularity-convert/citymodel"
	"github.com/flywave/go-granularity-convert/vecmath"
)

// mergePrimaryAndChildren breadth-first visits srcRoot and every
// descendant. Each mesh-carrying node is cloned, its UV4 channel
// rewritten to (primaryID, atomicID), and appended into dst; one
// CityObjectList entry is added per merged mesh. atomicID is -1 for
// srcRoot itself (visited first) and 0, 1, 2, ... in BFS order for
// every subsequent mesh-carrying descendant.
func mergePrimaryAndChildren(srcRoot *citymodel.Node, dst *citymodel.Mesh, primaryID int32) {
	queue := []*citymodel.Node{srcRoot}
	var nextAtomicID int32

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node.Mesh != nil {
			meshCopy := node.Mesh.Clone()

			var atomicID int32
			if node.IsPrimary {
				atomicID = vecmath.InvalidIndex
			} else {
				atomicID = nextAtomicID
				nextAtomicID++
			}

			tag := vecmath.NewCityObjectIndex(primaryID, atomicID).ToUV()
			for i := range meshCopy.UV4 {
				meshCopy.UV4[i] = tag
			}

			dst.Merge(meshCopy, false, true)

			gmlID := citymodel.DefaultGmlID
			found := node.Mesh.CityObjectList.TryGetAtomicGmlID(vecmath.NewCityObjectIndex(0, 0), &gmlID)
			if !found {
				node.Mesh.CityObjectList.TryGetAtomicGmlID(vecmath.NewCityObjectIndex(0, vecmath.InvalidIndex), &gmlID)
			}

			if dst.CityObjectList == nil {
				dst.CityObjectList = citymodel.NewCityObjectList()
			}
			dst.CityObjectList.Add(vecmath.NewCityObjectIndex(primaryID, atomicID), gmlID)
		}

		queue = append(queue, node.Children...)
	}
}
