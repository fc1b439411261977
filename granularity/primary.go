package granularity

import "github.com/flywave/go-granularity-convert/citymodel"

// convertFromAtomicToPrimary walks an atomic-granularity model
// breadth-first, maintaining a parallel dst cursor that mirrors every
// non-primary ancestor. Each primary node's subtree is folded into one
// merged mesh on the mirrored dst node; primary subtrees are not
// descended into further since they are already folded in.
func convertFromAtomicToPrimary(src *citymodel.Model) *citymodel.Model {
	dst := citymodel.NewModel()
	dst.ReserveRoots(src.RootCount())

	var srcQueue, dstQueue []nodePos
	for i := 0; i < src.RootCount(); i++ {
		srcRoot := src.RootAt(i)
		dst.AddRoot(citymodel.NewNode(srcRoot.Name))
		srcQueue = append(srcQueue, rootPos(i))
		dstQueue = append(dstQueue, rootPos(i))
	}

	for len(srcQueue) > 0 {
		srcPos := srcQueue[0]
		srcQueue = srcQueue[1:]
		dstPos := dstQueue[0]
		dstQueue = dstQueue[1:]

		srcNode := srcPos.resolve(src)
		dstNode := dstPos.resolve(dst)

		if srcNode.IsPrimary {
			mergedMesh := citymodel.NewMesh()
			mergePrimaryAndChildren(srcNode, mergedMesh, 0)
			dstNode.Mesh = mergedMesh
			continue
		}

		for i, srcChild := range srcNode.Children {
			dstNode.AddChild(citymodel.NewNode(srcChild.Name))
			srcQueue = append(srcQueue, srcPos.child(i))
			dstQueue = append(dstQueue, dstPos.child(len(dstNode.Children)-1))
		}
	}

	return dst
}
