// Package dataset describes the on-disk CityGML products the
// granularity converter is eventually fed from. It holds no parser: an
// actual GmlFile object only derives what its path and name already
// tell it, and the network/codelist-scanning collaborators are left
// out of scope.
package dataset

import (
	"path/filepath"
	"strings"
)

// GmlFile describes a single CityGML product file, identified by its
// standard PLATEAU naming convention: "<meshcode>_<featuretype>_<...>.gml".
type GmlFile struct {
	path        string
	meshCode    string
	featureType string
	valid       bool
}

// NewGmlFile builds a GmlFile from path, deriving its mesh code and
// feature type from the filename.
func NewGmlFile(path string) *GmlFile {
	f := &GmlFile{}
	f.SetPath(path)
	return f
}

// Path returns the file's path as given to SetPath/NewGmlFile.
func (f *GmlFile) Path() string {
	return f.path
}

// SetPath updates the file's path and re-derives MeshCode, FeatureType
// and IsValid from it.
func (f *GmlFile) SetPath(path string) {
	f.path = path
	f.applyPath()
}

// MeshCode returns the leading mesh-code component of the file name,
// e.g. "53392546" for "53392546_bldg_6697_op.gml".
func (f *GmlFile) MeshCode() string {
	return f.meshCode
}

// FeatureType returns the feature-type component of the file name,
// e.g. "bldg", "tran", "dem", "urf".
func (f *GmlFile) FeatureType() string {
	return f.featureType
}

// IsValid reports whether the path parsed as a well-formed CityGML
// product file name.
func (f *GmlFile) IsValid() bool {
	return f.valid
}

// AppearanceDirectoryPath returns the conventional sibling directory
// PLATEAU stores this file's textures and appearance data under: the
// file's path with its extension stripped.
func (f *GmlFile) AppearanceDirectoryPath() string {
	ext := filepath.Ext(f.path)
	return strings.TrimSuffix(f.path, ext)
}

func (f *GmlFile) applyPath() {
	f.meshCode = ""
	f.featureType = ""
	f.valid = false

	ext := strings.ToLower(filepath.Ext(f.path))
	if ext != ".gml" && ext != ".xml" {
		return
	}

	base := filepath.Base(f.path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.Split(name, "_")
	if len(parts) < 2 {
		return
	}

	f.meshCode = parts[0]
	f.featureType = parts[1]
	f.valid = f.meshCode != "" && f.featureType != ""
}
