// Package granularity implements the core conversion engine: splitting
// a mesh by per-vertex city-object tag, merging a subtree's meshes
// while re-tagging vertices, and driving a model between atomic,
// primary and area granularities.
package granularity

// MeshGranularity selects the output granularity of Convert.
type MeshGranularity int

const (
	// PerAtomicFeatureObject yields one leaf node per atomic city object.
	PerAtomicFeatureObject MeshGranularity = iota
	// PerPrimaryFeatureObject yields one node per primary city object,
	// with every atomic child merged into that node's mesh.
	PerPrimaryFeatureObject
	// PerCityModelArea yields a single node for the whole model.
	PerCityModelArea
)

// Option configures a Convert call.
type Option struct {
	Granularity MeshGranularity
}
