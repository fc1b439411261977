package citymodel

import (
	"testing"

	"github.com/flywave/go-granularity-convert/vecmath"
)

func TestCityObjectListLookups(t *testing.T) {
	l := NewCityObjectList()
	l.Add(vecmath.NewCityObjectIndex(0, -1), "P")
	l.Add(vecmath.NewCityObjectIndex(0, 0), "A0")

	out := DefaultGmlID
	if !l.TryGetPrimaryGmlID(0, &out) || out != "P" {
		t.Errorf("expected primary gml-id P, got %q", out)
	}

	out = DefaultGmlID
	if !l.TryGetAtomicGmlID(vecmath.NewCityObjectIndex(0, 0), &out) || out != "A0" {
		t.Errorf("expected atomic gml-id A0, got %q", out)
	}

	out = DefaultGmlID
	if l.TryGetAtomicGmlID(vecmath.NewCityObjectIndex(9, 9), &out) {
		t.Error("expected miss for unregistered index")
	}
	if out != DefaultGmlID {
		t.Errorf("expected out to retain default on miss, got %q", out)
	}
}

func TestCityObjectListMerge(t *testing.T) {
	a := NewCityObjectList()
	a.Add(vecmath.NewCityObjectIndex(0, -1), "P0")
	b := NewCityObjectList()
	b.Add(vecmath.NewCityObjectIndex(1, -1), "P1")

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("expected 2 entries after merge, got %d", a.Len())
	}
}
