package feeleval

import (
	"testing"

	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelscope"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func evalNode(t *testing.T, node feelast.Node) feelvalue.Value {
	t.Helper()
	return Compile(node)(feelscope.New())
}

func numLit(s string) feelast.Node {
	return feelast.NumericLiteral{IntPart: s}
}

func TestForLoopWithRange(t *testing.T) {
	// for i in 1..3 return i * 2
	node := feelast.For{
		Contexts: []feelast.IterationContext{
			{Name: "i", IsRange: true, RangeStart: numLit("1"), RangeEnd: numLit("3")},
		},
		Body: feelast.Mul{Left: feelast.NameRef{Text: "i"}, Right: numLit("2")},
	}
	result := evalNode(t, node)
	lv, ok := result.(feelvalue.ListValue)
	if !ok {
		t.Fatalf("expected ListValue, got %T (%v)", result, result)
	}
	want := []string{"2", "4", "6"}
	if len(lv.Items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(lv.Items))
	}
	for i, item := range lv.Items {
		nv, ok := item.(feelvalue.NumberValue)
		if !ok || nv.N.String() != want[i] {
			t.Errorf("index %d: got %v, want %s", i, item, want[i])
		}
	}
}

func TestNestedContextShadowing(t *testing.T) {
	// { x: 1, y: { x: 2, z: x }, result: y.z }
	inner := feelast.Context{Entries: []feelast.ContextEntry{
		{Key: feelast.ContextEntryKey{Name: "x"}, Value: numLit("2")},
		{Key: feelast.ContextEntryKey{Name: "z"}, Value: feelast.NameRef{Text: "x"}},
	}}
	outer := feelast.Context{Entries: []feelast.ContextEntry{
		{Key: feelast.ContextEntryKey{Name: "x"}, Value: numLit("1")},
		{Key: feelast.ContextEntryKey{Name: "y"}, Value: inner},
		{Key: feelast.ContextEntryKey{Name: "result"}, Value: feelast.Path{Expr: feelast.NameRef{Text: "y"}, Name: "z"}},
	}}
	result := evalNode(t, outer)
	ctx, ok := result.(*feelvalue.ContextValue)
	if !ok {
		t.Fatalf("expected *ContextValue, got %T", result)
	}
	resultVal, found := ctx.GetEntry(feelname.FromString("result"))
	if !found {
		t.Fatalf("expected 'result' entry")
	}
	nv, ok := resultVal.(feelvalue.NumberValue)
	if !ok || nv.N.String() != "2" {
		t.Errorf("expected inner x=2 to shadow outer x=1, got %v", resultVal)
	}
}

func TestRangeMembership(t *testing.T) {
	// 5 in [1..10]
	node := feelast.In{
		Left: numLit("5"),
		Right: feelast.RangeExpr{
			Start: feelast.IntervalStart{Expr: numLit("1"), Closed: true},
			End:   feelast.IntervalEnd{Expr: numLit("10"), Closed: true},
		},
	}
	result := evalNode(t, node)
	if result != feelvalue.BooleanValue(true) {
		t.Errorf("expected 5 in [1..10] = true, got %v", result)
	}
}

func TestTernaryAndShortCircuitsOnDefiniteFalse(t *testing.T) {
	// false and <undefined name> must be false, not null, despite the
	// right operand being indeterminate.
	node := feelast.And{
		Left:  feelast.BooleanLiteral{Value: false},
		Right: feelast.NameRef{Text: "undefined"},
	}
	result := evalNode(t, node)
	if result != feelvalue.BooleanValue(false) {
		t.Errorf("expected short-circuited false, got %v", result)
	}
}

func TestTernaryAndIndeterminateWhenBothSidesUnknown(t *testing.T) {
	node := feelast.And{
		Left:  feelast.NameRef{Text: "undefinedA"},
		Right: feelast.NameRef{Text: "undefinedB"},
	}
	result := evalNode(t, node)
	if !feelvalue.IsNull(result) {
		t.Errorf("expected Null for two indeterminate operands, got %v", result)
	}
}
