package citymodel

// Model is the root container of the scene-graph tree: an ordered
// sequence of root nodes, exclusively owned.
type Model struct {
	Roots []*Node
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// ReserveRoots hints at the eventual root count. Go slices do not
// expose a direct reserve-without-length primitive the way the
// original's std::vector::reserve does, so this allocates a larger
// backing array and copies the existing roots into it; callers may also just ignore the hint and
// append normally, since it is not load-bearing for correctness.
func (m *Model) ReserveRoots(n int) {
	if cap(m.Roots) >= n {
		return
	}
	grown := make([]*Node, len(m.Roots), n)
	copy(grown, m.Roots)
	m.Roots = grown
}

// AddRoot appends a new root node and returns it.
func (m *Model) AddRoot(node *Node) *Node {
	m.Roots = append(m.Roots, node)
	return node
}

// RootAt returns the root node at the given index.
func (m *Model) RootAt(i int) *Node {
	return m.Roots[i]
}

// RootCount reports the number of root nodes.
func (m *Model) RootCount() int {
	return len(m.Roots)
}

// EraseEmptyNodes recursively removes nodes with no children and no
// polygon-bearing mesh, starting from every root; roots left fully
// empty are dropped too.
func (m *Model) EraseEmptyNodes() {
	kept := m.Roots[:0]
	for _, root := range m.Roots {
		root.EraseEmptyChildren()
		if len(root.Children) == 0 && !root.PolygonExists() {
			continue
		}
		kept = append(kept, root)
	}
	m.Roots = kept
}
