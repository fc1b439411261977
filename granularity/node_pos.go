package granularity

import "github.com/flywave/go-granularity-convert/citymodel"

// nodePos is a path of child indices from a model's root. The
// converter's BFS queues hold nodePos values instead of bare
// *citymodel.Node and re-derive the node from the root on each use,
// mirroring the original's recommended path-vector discipline (see the
// original spec's design notes). Model.Roots and Node.Children hold
// *Node values, so appending to either slice moves only the pointers
// and never invalidates a *Node already taken from it.
type nodePos struct {
	indices []int
}

func rootPos(i int) nodePos {
	return nodePos{indices: []int{i}}
}

func (p nodePos) child(i int) nodePos {
	next := make([]int, len(p.indices)+1)
	copy(next, p.indices)
	next[len(p.indices)] = i
	return nodePos{indices: next}
}

func (p nodePos) parent() nodePos {
	if len(p.indices) == 0 {
		return p
	}
	return nodePos{indices: p.indices[:len(p.indices)-1]}
}

// resolve returns the node this position refers to in m, or nil if the
// position is empty (the conceptual "parent of a root").
func (p nodePos) resolve(m *citymodel.Model) *citymodel.Node {
	if len(p.indices) == 0 {
		return nil
	}
	node := m.RootAt(p.indices[0])
	for _, i := range p.indices[1:] {
		node = node.Children[i]
	}
	return node
}

// addChild adds node as a child of the position p resolves to, or as a
// new root of m when p is the empty (root-parent) position.
func (p nodePos) addChild(m *citymodel.Model, node *citymodel.Node) *citymodel.Node {
	parent := p.resolve(m)
	if parent == nil {
		return m.AddRoot(node)
	}
	return parent.AddChild(node)
}
