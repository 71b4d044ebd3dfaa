package feeljson

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func TestJsonifyScalars(t *testing.T) {
	cases := []struct {
		name string
		v    feelvalue.Value
		want string
	}{
		{"boolean", feelvalue.BooleanValue(true), "true"},
		{"number", feelvalue.NumberValue{N: feelnum.FromInt64(42)}, "42"},
		{"string", feelvalue.StringValue("hi"), `"hi"`},
		{"null", feelvalue.Null(), "null"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Jsonify(c.v); got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestJsonifyList(t *testing.T) {
	list := feelvalue.ListValue{Items: []feelvalue.Value{
		feelvalue.NumberValue{N: feelnum.FromInt64(1)},
		feelvalue.NumberValue{N: feelnum.FromInt64(2)},
	}}
	doc := Jsonify(list)
	if got, ok := Get(doc, "0"); !ok || got != "1" {
		t.Errorf("index 0: got %v ok=%v", got, ok)
	}
	if got, ok := Get(doc, "1"); !ok || got != "2" {
		t.Errorf("index 1: got %v ok=%v", got, ok)
	}
}

func TestJsonifyContextPreservesFields(t *testing.T) {
	ctx := feelvalue.NewContext()
	ctx.SetEntry(feelname.Of("principal"), feelvalue.NumberValue{N: feelnum.FromInt64(10)})
	ctx.SetEntry(feelname.Of("rate"), feelvalue.NumberValue{N: feelnum.FromInt64(60)})

	doc := Jsonify(ctx)
	if got, ok := Get(doc, "principal"); !ok || got != "10" {
		t.Errorf("principal: got %v ok=%v", got, ok)
	}
	if got, ok := Get(doc, "rate"); !ok || got != "60" {
		t.Errorf("rate: got %v ok=%v", got, ok)
	}
}

func TestJsonifyRange(t *testing.T) {
	r := feelvalue.RangeValue{
		Start:       feelvalue.NumberValue{N: feelnum.FromInt64(1)},
		StartClosed: true,
		End:         feelvalue.NumberValue{N: feelnum.FromInt64(10)},
		EndClosed:   false,
	}
	doc := Jsonify(r)
	if got, ok := Get(doc, "start"); !ok || got != "1" {
		t.Errorf("start: got %v ok=%v", got, ok)
	}
	if got, ok := Get(doc, "end_closed"); !ok || got != "false" {
		t.Errorf("end_closed: got %v ok=%v", got, ok)
	}
}

// TestJsonifyCompoundValueSnapshot golden-tests a context nesting a list of
// ranges, the shape where an inline expected-JSON literal would be large
// enough to be unreadable in the test source itself.
func TestJsonifyCompoundValueSnapshot(t *testing.T) {
	windows := feelvalue.ListValue{Items: []feelvalue.Value{
		feelvalue.RangeValue{
			Start: feelvalue.NumberValue{N: feelnum.FromInt64(9)}, StartClosed: true,
			End: feelvalue.NumberValue{N: feelnum.FromInt64(12)}, EndClosed: false,
		},
		feelvalue.RangeValue{
			Start: feelvalue.NumberValue{N: feelnum.FromInt64(13)}, StartClosed: true,
			End: feelvalue.NumberValue{N: feelnum.FromInt64(17)}, EndClosed: true,
		},
	}}
	ctx := feelvalue.NewContext()
	ctx.SetEntry(feelname.Of("shift"), feelvalue.StringValue("day"))
	ctx.SetEntry(feelname.Of("windows"), windows)

	snaps.MatchSnapshot(t, Jsonify(ctx))
}
