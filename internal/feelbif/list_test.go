package feelbif

import (
	"testing"

	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func list(items ...feelvalue.Value) feelvalue.Value {
	return feelvalue.ListValue{Items: items}
}

func TestSumMeanMedian(t *testing.T) {
	xs := list(n(1), n(2), n(3), n(4))
	if s := Sum([]feelvalue.Value{xs}); s.(feelvalue.NumberValue).N.String() != "10" {
		t.Errorf("sum: got %v", s)
	}
	if m := Mean([]feelvalue.Value{xs}); m.(feelvalue.NumberValue).N.String() != "2.5" {
		t.Errorf("mean: got %v", m)
	}
	if m := Median([]feelvalue.Value{xs}); m.(feelvalue.NumberValue).N.String() != "2.5" {
		t.Errorf("median: got %v", m)
	}
}

func TestMinMax(t *testing.T) {
	xs := list(n(3), n(1), n(4), n(1), n(5))
	if r := Min([]feelvalue.Value{xs}); r.(feelvalue.NumberValue).N.String() != "1" {
		t.Errorf("min: got %v", r)
	}
	if r := Max([]feelvalue.Value{xs}); r.(feelvalue.NumberValue).N.String() != "5" {
		t.Errorf("max: got %v", r)
	}
}

func TestSortDescending(t *testing.T) {
	xs := list(n(3), n(1), n(2))
	precedes := feelvalue.FunctionValue{
		Call: func(args []feelvalue.Value) feelvalue.Value {
			a := args[0].(feelvalue.NumberValue).N
			b := args[1].(feelvalue.NumberValue).N
			return feelvalue.BooleanValue(a.Cmp(b) > 0)
		},
	}
	r := Sort([]feelvalue.Value{xs, precedes})
	lv, ok := r.(feelvalue.ListValue)
	if !ok || len(lv.Items) != 3 {
		t.Fatalf("expected 3-item list, got %v", r)
	}
	want := []string{"3", "2", "1"}
	for i, it := range lv.Items {
		if it.(feelvalue.NumberValue).N.String() != want[i] {
			t.Errorf("index %d: got %v, want %s", i, it, want[i])
		}
	}
}

func TestReverseAppendConcatenate(t *testing.T) {
	xs := list(n(1), n(2), n(3))
	rev := Reverse([]feelvalue.Value{xs}).(feelvalue.ListValue)
	if rev.Items[0].(feelvalue.NumberValue).N.String() != "3" {
		t.Errorf("reverse: got %v", rev)
	}
	app := Append([]feelvalue.Value{xs, n(4)}).(feelvalue.ListValue)
	if len(app.Items) != 4 {
		t.Errorf("append: got %v", app)
	}
	cat := Concatenate([]feelvalue.Value{xs, list(n(4), n(5))}).(feelvalue.ListValue)
	if len(cat.Items) != 5 {
		t.Errorf("concatenate: got %v", cat)
	}
}

func TestDistinctValuesAndUnion(t *testing.T) {
	xs := list(n(1), n(2), n(2), n(3))
	dv := DistinctValues([]feelvalue.Value{xs}).(feelvalue.ListValue)
	if len(dv.Items) != 3 {
		t.Errorf("distinct values: got %v", dv)
	}
	u := Union([]feelvalue.Value{list(n(1), n(2)), list(n(2), n(3))}).(feelvalue.ListValue)
	if len(u.Items) != 3 {
		t.Errorf("union: got %v", u)
	}
}

func TestFlatten(t *testing.T) {
	nested := list(n(1), list(n(2), list(n(3))), n(4))
	flat := Flatten([]feelvalue.Value{nested}).(feelvalue.ListValue)
	if len(flat.Items) != 4 {
		t.Errorf("flatten: got %v", flat)
	}
}

func TestSublistNegativeStart(t *testing.T) {
	xs := list(n(1), n(2), n(3), n(4), n(5))
	r := Sublist([]feelvalue.Value{xs, n(-2)}).(feelvalue.ListValue)
	if len(r.Items) != 2 || r.Items[0].(feelvalue.NumberValue).N.String() != "4" {
		t.Errorf("sublist: got %v", r)
	}
}

func TestIndexOf(t *testing.T) {
	xs := list(n(1), n(2), n(3), n(2))
	r := IndexOf([]feelvalue.Value{xs, n(2)}).(feelvalue.ListValue)
	if len(r.Items) != 2 {
		t.Errorf("index of: got %v", r)
	}
}
