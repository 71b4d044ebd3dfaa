package feelbif

import (
	"testing"

	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func ctx(pairs map[string]feelvalue.Value) *feelvalue.ContextValue {
	c := feelvalue.NewContext()
	for k, v := range pairs {
		c.SetEntry(feelname.FromString(k), v)
	}
	return c
}

func TestGetValueMissingKey(t *testing.T) {
	c := ctx(map[string]feelvalue.Value{"a": n(1)})
	if r := GetValue([]feelvalue.Value{c, str("missing")}); !feelvalue.IsNull(r) {
		t.Errorf("expected Null for missing key, got %v", r)
	}
	if r := GetValue([]feelvalue.Value{c, str("a")}); r != n(1) {
		t.Errorf("got %v", r)
	}
}

func TestGetEntriesRoundTripsThroughContextFn(t *testing.T) {
	c := feelvalue.NewContext()
	c.SetEntry(feelname.FromString("a"), n(1))
	c.SetEntry(feelname.FromString("b"), n(2))

	entries := GetEntries([]feelvalue.Value{c})
	rebuilt := ContextFn([]feelvalue.Value{entries})
	rc, ok := rebuilt.(*feelvalue.ContextValue)
	if !ok {
		t.Fatalf("expected *ContextValue, got %T", rebuilt)
	}
	v, found := rc.GetEntry(feelname.FromString("b"))
	if !found || v != n(2) {
		t.Errorf("expected b=2 after round trip, got %v found=%v", v, found)
	}
}

func TestContextMergeLaterWins(t *testing.T) {
	a := ctx(map[string]feelvalue.Value{"x": n(1)})
	b := ctx(map[string]feelvalue.Value{"x": n(2), "y": n(3)})
	merged := ContextMerge([]feelvalue.Value{list(a, b)}).(*feelvalue.ContextValue)
	x, _ := merged.GetEntry(feelname.FromString("x"))
	if x != n(2) {
		t.Errorf("expected later context to win, got %v", x)
	}
}

func TestContextPutDoesNotMutateOriginal(t *testing.T) {
	c := ctx(map[string]feelvalue.Value{"a": n(1)})
	updated := ContextPut([]feelvalue.Value{c, str("a"), n(99)}).(*feelvalue.ContextValue)
	orig, _ := c.GetEntry(feelname.FromString("a"))
	if orig != n(1) {
		t.Errorf("original context mutated: %v", orig)
	}
	val, _ := updated.GetEntry(feelname.FromString("a"))
	if val != n(99) {
		t.Errorf("expected updated context to have new value, got %v", val)
	}
}
