package citymodel

import "github.com/flywave/go-granularity-convert/vecmath"

// DefaultGmlID is the sentinel returned when no gml-id is registered
// for a given CityObjectIndex.
const DefaultGmlID = "gml_id_not_found"

// CityObjectList maps a CityObjectIndex to the gml-id of the city
// object it identifies. It is the authority for id resolution: a
// vertex's UV4 tag is only meaningful in the context of the
// CityObjectList carried by the same Mesh.
type CityObjectList struct {
	ids map[vecmath.CityObjectIndex]string
}

// NewCityObjectList builds an empty list.
func NewCityObjectList() *CityObjectList {
	return &CityObjectList{ids: make(map[vecmath.CityObjectIndex]string)}
}

// Add registers gmlID for idx, overwriting any previous entry.
func (l *CityObjectList) Add(idx vecmath.CityObjectIndex, gmlID string) {
	if l.ids == nil {
		l.ids = make(map[vecmath.CityObjectIndex]string)
	}
	l.ids[idx] = gmlID
}

// Len reports the number of registered entries.
func (l *CityObjectList) Len() int {
	return len(l.ids)
}

// TryGetPrimaryGmlID looks up the gml-id of the primary-only entry
// (primary, -1). On miss, *out is left unchanged.
func (l *CityObjectList) TryGetPrimaryGmlID(primary int32, out *string) bool {
	return l.TryGetAtomicGmlID(vecmath.NewCityObjectIndex(primary, vecmath.InvalidIndex), out)
}

// TryGetAtomicGmlID looks up the gml-id for idx exactly. On miss, *out
// is left unchanged.
func (l *CityObjectList) TryGetAtomicGmlID(idx vecmath.CityObjectIndex, out *string) bool {
	gmlID, ok := l.ids[idx]
	if !ok {
		return false
	}
	*out = gmlID
	return true
}

// Merge copies every entry of other into l, overwriting on key clash.
func (l *CityObjectList) Merge(other *CityObjectList) {
	if other == nil {
		return
	}
	for idx, gmlID := range other.ids {
		l.Add(idx, gmlID)
	}
}

// Each calls fn once per (CityObjectIndex, gmlID) pair. Iteration order
// is unspecified.
func (l *CityObjectList) Each(fn func(idx vecmath.CityObjectIndex, gmlID string)) {
	for idx, gmlID := range l.ids {
		fn(idx, gmlID)
	}
}
