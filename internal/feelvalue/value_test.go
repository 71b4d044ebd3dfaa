package feelvalue

import (
	"testing"

	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
)

func num(t *testing.T, s string) NumberValue {
	t.Helper()
	n, err := feelnum.FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q): %v", s, err)
	}
	return NumberValue{N: n}
}

func TestTernaryEqualityReflexiveAndNull(t *testing.T) {
	a := num(t, "1")
	if eq, ok := TernaryEqual(a, a); !ok || !eq {
		t.Fatal("a = a should be true")
	}
	n1, n2 := Null(), Null()
	if eq, ok := TernaryEqual(n1, n2); !ok || !eq {
		t.Fatal("null = null should be true")
	}
	if eq, ok := TernaryEqual(a, n1); !ok || eq {
		t.Fatal("number = null should be false, not indeterminate")
	}
}

func TestTernaryEqualityCrossTypeIndeterminate(t *testing.T) {
	_, ok := TernaryEqual(num(t, "1"), StringValue("1"))
	if ok {
		t.Fatal("number = string should be indeterminate")
	}
}

func TestTernaryEqualitySymmetric(t *testing.T) {
	a, b := num(t, "3"), num(t, "3")
	eqAB, okAB := TernaryEqual(a, b)
	eqBA, okBA := TernaryEqual(b, a)
	if okAB != okBA || eqAB != eqBA {
		t.Fatal("ternary equality must be symmetric")
	}
}

func TestContextInsertionOrder(t *testing.T) {
	ctx := NewContext()
	ctx.SetEntry(feelname.Of("b"), num(t, "2"))
	ctx.SetEntry(feelname.Of("a"), num(t, "1"))
	entries := ctx.Entries()
	if entries[0].Name.String() != "b" || entries[1].Name.String() != "a" {
		t.Fatalf("context must preserve insertion order, got %v", entries)
	}
}

func TestContextFlattenKeys(t *testing.T) {
	inner := NewContext()
	inner.SetEntry(feelname.Of("d"), num(t, "1"))
	outer := NewContext()
	outer.SetEntry(feelname.Of("a"), num(t, "1"))
	outer.SetEntry(feelname.Of("c"), inner)
	keys := outer.FlattenKeys()
	for _, want := range []string{"a", "c", "c.d"} {
		if _, ok := keys[want]; !ok {
			t.Errorf("missing flattened key %q in %v", want, keys)
		}
	}
}

func TestListReverseCountInvariants(t *testing.T) {
	l := ListValue{Items: []Value{num(t, "1"), num(t, "2"), num(t, "3")}}
	reversed := ListValue{Items: []Value{l.Items[2], l.Items[1], l.Items[0]}}
	if len(reversed.Items) != len(l.Items) {
		t.Fatal("reverse must preserve length")
	}
}
