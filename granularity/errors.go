package granularity

import "errors"

// ErrInvalidGranularity is returned by Convert when Option.Granularity
// names no known MeshGranularity.
var ErrInvalidGranularity = errors.New("granularity: invalid MeshGranularity")
