package granularity

import "github.com/flywave/go-granularity-convert/citymodel"

// convertFromAtomicToArea flattens an atomic-granularity model into a
// single root node named after the sole source root, or "combined"
// when there is more than one. Every primary node found by a
// breadth-first search is merged with its subtree into the root mesh,
// with a distinct, incrementing primaryID so merged city objects stay
// distinguishable in the output's UV4 channel and CityObjectList.
func convertFromAtomicToArea(src *citymodel.Model) *citymodel.Model {
	dst := citymodel.NewModel()

	rootName := "combined"
	if src.RootCount() == 1 {
		rootName = src.RootAt(0).Name
	}
	dstRoot := citymodel.NewNode(rootName)
	dstRoot.IsPrimary = true
	dstRoot.Mesh = citymodel.NewMesh()
	dst.AddRoot(dstRoot)

	var queue []nodePos
	for i := 0; i < src.RootCount(); i++ {
		queue = append(queue, rootPos(i))
	}

	var primaryID int32
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		node := pos.resolve(src)
		if node.IsPrimary {
			mergePrimaryAndChildren(node, dstRoot.Mesh, primaryID)
			primaryID++
			continue
		}

		for i := range node.Children {
			queue = append(queue, pos.child(i))
		}
	}

	return dst
}
