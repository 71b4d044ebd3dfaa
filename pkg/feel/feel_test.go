package feel

import (
	"testing"

	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feelitem"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
	"github.com/cwbudde/go-dmn-feel/internal/feeltype"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func num(n int64) feelvalue.Value { return feelvalue.NumberValue{N: feelnum.FromInt64(n)} }

func numLit(s string) feelast.Node { return feelast.NumericLiteral{IntPart: s} }

func TestEvaluateCallsBuiltin(t *testing.T) {
	ctx := New()
	// sum([1, 2, 3])
	node := feelast.FunctionInvocation{
		Callee: feelast.NameRef{Text: "sum"},
		Args:   feelast.PositionalParameters{Items: []feelast.Node{feelast.List{Items: []feelast.Node{numLit("1"), numLit("2"), numLit("3")}}}},
	}
	result := ctx.Evaluate(node, nil)
	nv, ok := result.(feelvalue.NumberValue)
	if !ok || nv.N.String() != "6" {
		t.Fatalf("expected sum 6, got %v", result)
	}
}

func TestEvaluateReadsInputContext(t *testing.T) {
	ctx := New()
	input := feelvalue.NewContext()
	input.SetEntry(feelname.Of("x"), num(5))
	node := feelast.Add{Left: feelast.NameRef{Text: "x"}, Right: numLit("1")}
	result := ctx.Evaluate(node, input)
	got, ok := result.(feelvalue.NumberValue)
	if !ok || got.N.String() != "6" {
		t.Fatalf("expected x+1=6, got %v", result)
	}
}

func TestInputShadowsBuiltinName(t *testing.T) {
	ctx := New()
	input := feelvalue.NewContext()
	input.SetEntry(feelname.Of("abs"), feelvalue.StringValue("shadowed"))
	node := feelast.NameRef{Text: "abs"}
	result := ctx.Evaluate(node, input)
	if result != feelvalue.StringValue("shadowed") {
		t.Errorf("expected input entry to shadow the built-in, got %v", result)
	}
}

func TestValidateInputAppliesItemDefinition(t *testing.T) {
	ctx := New()
	if err := ctx.WithItemDefinitions(&feelitem.Definition{
		TypeRef:    "tCustomerName",
		Kind:       feelitem.KindSimple,
		SimpleType: feeltype.String(),
	}); err != nil {
		t.Fatalf("WithItemDefinitions: %v", err)
	}
	if r := ctx.ValidateInput("tCustomerName", feelvalue.StringValue("Whistler")); r != feelvalue.StringValue("Whistler") {
		t.Errorf("expected pass-through, got %v", r)
	}
	if r := ctx.ValidateInput("tCustomerName", num(1)); !feelvalue.IsNull(r) {
		t.Errorf("expected Null for type mismatch, got %v", r)
	}
}
