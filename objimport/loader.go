// Package objimport loads OBJ files into single-atomic-object
// citymodel.Models, and writes citymodel.Models back out as OBJ plus a
// material sidecar. It exists to feed and inspect the granularity
// converter without requiring a full CityGML parser: every vertex of
// an imported mesh is tagged (0, 0), the same convention the converter
// itself uses for a lone atomic object.
package objimport

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	fmesh "github.com/flywave/flywave-mesh"
	mst "github.com/flywave/go-mst"

	dvec3 "github.com/flywave/go3d/float64/vec3"

	"go.uber.org/zap"

	"github.com/flywave/go-granularity-convert/citymodel"
	"github.com/flywave/go-granularity-convert/granularity"
	"github.com/flywave/go-granularity-convert/vecmath"
)

var (
	_ granularity.ModelSource = (*Importer)(nil)
	_ granularity.ModelSink   = (*Importer)(nil)
)

// Importer loads and writes OBJ-format geometry. The zero value is
// ready to use; Logger defaults to a no-op logger when nil.
type Importer struct {
	Logger *zap.Logger
}

func (imp *Importer) logger() *zap.Logger {
	if imp.Logger == nil {
		return zap.NewNop()
	}
	return imp.Logger
}

// Load reads path as an OBJ file and returns a single-root Model whose
// one node carries a mesh tagged (0, 0) throughout: one atomic city
// object, named after the source file's OBJ groups are not tracked
// individually — callers wanting per-group atomic objects should split
// the source file themselves before import.
func (imp *Importer) Load(path string) (*citymodel.Model, error) {
	loader := &fmesh.ObjLoader{}
	if err := loader.LoadMesh(path); err != nil {
		return nil, err
	}

	mesh := citymodel.NewMesh()
	tag := vecmath.NewCityObjectIndex(0, 0).ToUV()
	ext := dvec3.MinBox

	mtlGroup := make(map[uint32]int)
	for _, fg := range loader.FaceGroup {
		subMeshStart := len(mesh.Indices)
		first := fg[0]
		count := fg[1]

		if loader.Triangles != nil {
			for i := 0; i < count; i++ {
				appendTriangle(mesh, &loader.Triangles[first+i], tag, &ext, mtlGroup)
			}
		} else if loader.Triarray != nil {
			for i := 0; i < count; i++ {
				tri, err := loader.Triarray.GetTriangle(first + i)
				if err != nil {
					return nil, err
				}
				appendTriangle(mesh, &tri, tag, &ext, mtlGroup)
			}
		}

		if len(mesh.Indices) > subMeshStart {
			mesh.SubMeshes = append(mesh.SubMeshes, citymodel.SubMesh{
				Start: subMeshStart,
				End:   len(mesh.Indices) - 1,
			})
		}
	}

	materials, err := imp.buildMaterials(loader, mtlGroup)
	if err != nil {
		return nil, err
	}
	for i := range mesh.SubMeshes {
		if i < len(materials) {
			mesh.SubMeshes[i].Material = materials[i]
		}
	}

	mesh.CityObjectList.Add(vecmath.NewCityObjectIndex(0, 0), path)

	imp.logger().Debug("loaded obj",
		zap.String("path", path),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("sub_meshes", len(mesh.SubMeshes)),
		zap.Any("bounds", ext.Array()))

	model := citymodel.NewModel()
	node := citymodel.NewNode(path)
	node.Mesh = mesh
	model.AddRoot(node)
	return model, nil
}

func appendTriangle(mesh *citymodel.Mesh, tri *fmesh.Triangle, tag vecmath.Vec2f, ext *dvec3.Box, mtlGroup map[uint32]int) {
	base := uint32(len(mesh.Vertices))
	for _, v := range tri.Vertices {
		mesh.Vertices = append(mesh.Vertices, vec3ToVec3d(v.V))
		mesh.UV1 = append(mesh.UV1, vec2ToVec2f(v.T))
		mesh.UV4 = append(mesh.UV4, tag)
		ext.Extend(&dvec3.T{float64(v.V[0]), float64(v.V[1]), float64(v.V[2])})
	}
	mesh.Indices = append(mesh.Indices, base, base+1, base+2)
	if _, ok := mtlGroup[uint32(len(mesh.SubMeshes))]; !ok {
		mtlGroup[uint32(len(mesh.SubMeshes))] = tri.Mtl
	}
}

func vec3ToVec3d(v [3]float32) vecmath.Vec3d {
	return vecmath.Vec3d{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func vec2ToVec2f(v [2]float32) vecmath.Vec2f {
	return vecmath.Vec2f{X: v[0], Y: v[1]}
}

func (imp *Importer) buildMaterials(loader *fmesh.ObjLoader, mtlGroup map[uint32]int) ([]mst.MeshMaterial, error) {
	if len(loader.Materials) == 0 {
		return []mst.MeshMaterial{&mst.BaseMaterial{Color: [3]byte{255, 255, 255}}}, nil
	}

	out := make([]mst.MeshMaterial, 0, len(mtlGroup))
	for subMeshIdx := 0; subMeshIdx < len(mtlGroup); subMeshIdx++ {
		mtlIdx := mtlGroup[uint32(subMeshIdx)]
		if mtlIdx < 0 || mtlIdx >= len(loader.Materials) {
			out = append(out, &mst.BaseMaterial{Color: [3]byte{255, 255, 255}})
			continue
		}
		mtl := loader.Materials[mtlIdx]
		mat, err := imp.buildMaterial(loader, mtlIdx, &mtl)
		if err != nil {
			return nil, err
		}
		out = append(out, mat)
	}
	return out, nil
}

func (imp *Importer) buildMaterial(loader *fmesh.ObjLoader, mtlIdx int, mtl *fmesh.Material) (mst.MeshMaterial, error) {
	texMtl := &mst.TextureMaterial{}
	texMtl.Color = mtl.Color
	texMtl.Transparency = 1 - mtl.Opacity

	if mtl.Mode == fmesh.TEXTURE|fmesh.COLOR {
		var tex *fmesh.Texture
		var err error
		if loader.Textures != nil {
			tex = loader.Textures[mtlIdx]
		} else {
			tex, err = loader.Texarray.GetTexture(mtlIdx)
			if err != nil {
				return nil, err
			}
		}

		img := tex.Image
		bd := img.Bounds()
		buf := make([]byte, 0, bd.Dx()*bd.Dy()*4)
		for y := 0; y < bd.Dy(); y++ {
			for x := 0; x < bd.Dx(); x++ {
				r, g, b, a := color.RGBAModel.Convert(img.At(x, y)).RGBA()
				buf = append(buf, byte(r), byte(g), byte(b), byte(a))
			}
		}

		t := &mst.Texture{
			Id:         int32(mtlIdx),
			Format:     mst.TEXTURE_FORMAT_RGBA,
			Size:       [2]uint64{uint64(bd.Dx()), uint64(bd.Dy())},
			Compressed: mst.TEXTURE_COMPRESSED_ZLIB,
			Data:       mst.CompressImage(buf),
			Repeated:   tex.Repeated(),
		}
		texMtl.Texture = t
	}

	switch mtl.Type {
	case fmesh.MTL_LAMBERT:
		m := &mst.LambertMaterial{}
		m.TextureMaterial = *texMtl
		return m, nil
	case fmesh.MTL_PHONG:
		m := &mst.PhongMaterial{}
		m.TextureMaterial = *texMtl
		return m, nil
	case fmesh.MTL_PBR:
		m := &mst.PbrMaterial{}
		m.TextureMaterial = *texMtl
		return m, nil
	default:
		return texMtl, nil
	}
}

// Write implements granularity.ModelSink: it flattens every mesh
// reachable in m to one OBJ file plus a ".mtl" sidecar. It is not a
// general-purpose OBJ authoring tool — no normals, no per-node groups,
// one usemtl per sub-mesh — only enough to round-trip geometry and
// base material color for what Load itself produces.
func (imp *Importer) Write(m *citymodel.Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	mtlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".mtl"
	mtlName := filepath.Base(mtlPath)
	fmt.Fprintf(w, "mtllib %s\n", mtlName)

	var materials []mst.MeshMaterial
	materialIndex := make(map[mst.MeshMaterial]int)

	vertexOffset := 0
	var nodes []*citymodel.Node
	nodes = append(nodes, m.Roots...)
	for len(nodes) > 0 {
		n := nodes[0]
		nodes = nodes[1:]
		nodes = append(nodes, n.Children...)

		if n.Mesh == nil || !n.Mesh.HasVertices() {
			continue
		}
		mesh := n.Mesh

		fmt.Fprintf(w, "o %s\n", objSafeName(n.Name))
		for _, v := range mesh.Vertices {
			fmt.Fprintf(w, "v %g %g %g\n", v.X, v.Y, v.Z)
		}
		for _, uv := range mesh.UV1 {
			fmt.Fprintf(w, "vt %g %g\n", uv.X, uv.Y)
		}

		for _, sm := range mesh.SubMeshes {
			mtlIdx, ok := materialIndex[sm.Material]
			if sm.Material != nil && !ok {
				mtlIdx = len(materials)
				materials = append(materials, sm.Material)
				materialIndex[sm.Material] = mtlIdx
			}
			if sm.Material != nil {
				fmt.Fprintf(w, "usemtl mtl%d\n", mtlIdx)
			}
			for i := sm.Start; i+2 <= sm.End; i += 3 {
				a := int(mesh.Indices[i]) + vertexOffset + 1
				b := int(mesh.Indices[i+1]) + vertexOffset + 1
				c := int(mesh.Indices[i+2]) + vertexOffset + 1
				fmt.Fprintf(w, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c)
			}
		}
		vertexOffset += len(mesh.Vertices)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	return writeMtlFile(mtlPath, materials)
}

func objSafeName(name string) string {
	if name == "" {
		return "unnamed"
	}
	return strings.ReplaceAll(name, " ", "_")
}

func writeMtlFile(path string, materials []mst.MeshMaterial) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	for i, mat := range materials {
		c := mat.GetColor()
		fmt.Fprintf(w, "newmtl mtl%d\n", i)
		fmt.Fprintf(w, "Kd %g %g %g\n", float64(c[0])/255, float64(c[1])/255, float64(c[2])/255)
		if mat.HasTexture() {
			fmt.Fprintf(w, "# texture present, id %d (raw pixels not re-exported)\n", mat.GetTexture().Id)
		}
	}
	return w.Flush()
}
