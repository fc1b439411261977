package granularity

import "github.com/flywave/go-granularity-convert/citymodel"

// ModelSource loads a Model from a file. objimport.Importer and
// stlimport.Importer both satisfy it.
type ModelSource interface {
	Load(path string) (*citymodel.Model, error)
}

// ModelSink writes a Model out to a file. objimport.Importer satisfies
// it as a minimal OBJ writer.
type ModelSink interface {
	Write(m *citymodel.Model, path string) error
}
