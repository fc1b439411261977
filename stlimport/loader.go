// Package stlimport loads STL solids into single-atomic-object
// citymodel.Models. STL carries no per-triangle tagging of its own, so
// every triangle is tagged (0, 0): the whole solid is one atomic city
// object under one untextured primary.
package stlimport

import (
	"github.com/flywave/go-stl"

	mst "github.com/flywave/go-mst"
	mat4d "github.com/flywave/go3d/float64/mat4"
	vec3d "github.com/flywave/go3d/float64/vec3"

	"go.uber.org/zap"

	"github.com/flywave/go-granularity-convert/citymodel"
	"github.com/flywave/go-granularity-convert/vecmath"
)

// defaultColor is the material every imported solid receives: STL
// carries no material information of its own.
var defaultColor = [3]byte{200, 200, 200}

// Importer loads STL-format geometry. The zero value is ready to use;
// Logger defaults to a no-op logger when nil.
type Importer struct {
	Logger *zap.Logger
}

func (imp *Importer) logger() *zap.Logger {
	if imp.Logger == nil {
		return zap.NewNop()
	}
	return imp.Logger
}

// Load reads path as a binary or ASCII STL file and returns a
// single-root, single-node Model tagged (0, 0) throughout.
func (imp *Importer) Load(path string) (*citymodel.Model, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return imp.FromSolid(solid, path)
}

// LoadWithScale is Load after uniformly scaling the solid.
func (imp *Importer) LoadWithScale(path string, scale float64) (*citymodel.Model, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if scale != 1.0 {
		solid.Scale(scale)
	}
	return imp.FromSolid(solid, path)
}

// LoadWithTransform is Load after applying an affine transform to
// every vertex of the solid.
func (imp *Importer) LoadWithTransform(path string, transform *mat4d.T) (*citymodel.Model, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if transform != nil {
		solid.Transform(transform)
	}
	return imp.FromSolid(solid, path)
}

// FromSolid builds a Model directly from an in-memory stl.Solid,
// registering gmlID as the lone atomic object's identifier; gmlID also
// names the resulting root node.
func (imp *Importer) FromSolid(solid *stl.Solid, gmlID string) (*citymodel.Model, error) {
	mesh := citymodel.NewMesh()
	mesh.Reserve(len(solid.Triangles)*3, len(solid.Triangles)*3)

	tag := vecmath.NewCityObjectIndex(0, 0).ToUV()
	ext := vec3d.MinBox

	for _, tri := range solid.Triangles {
		base := uint32(len(mesh.Vertices))
		for _, v := range tri.Vertices {
			d := vecmath.Vec3d{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
			mesh.Vertices = append(mesh.Vertices, d)
			mesh.UV1 = append(mesh.UV1, vecmath.Vec2f{})
			mesh.UV4 = append(mesh.UV4, tag)
			vd := vec3d.T{d.X, d.Y, d.Z}
			ext.Extend(&vd)
		}
		mesh.Indices = append(mesh.Indices, base, base+1, base+2)
	}

	if len(mesh.Indices) > 0 {
		mesh.SubMeshes = []citymodel.SubMesh{{
			Start:    0,
			End:      len(mesh.Indices) - 1,
			Material: &mst.BaseMaterial{Color: defaultColor},
		}}
	}
	mesh.CityObjectList.Add(vecmath.NewCityObjectIndex(0, 0), gmlID)

	imp.logger().Debug("loaded stl",
		zap.String("path", gmlID),
		zap.Int("triangles", len(solid.Triangles)),
		zap.Any("bounds", ext.Array()))

	model := citymodel.NewModel()
	node := citymodel.NewNode(gmlID)
	node.Mesh = mesh
	model.AddRoot(node)
	return model, nil
}
