package feelitem

import (
	"testing"

	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
	"github.com/cwbudde/go-dmn-feel/internal/feeltype"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func num(n int64) feelvalue.Value { return feelvalue.NumberValue{N: feelnum.FromInt64(n)} }

func numLit(s string) feelast.Node { return feelast.NumericLiteral{IntPart: s} }

func TestSimpleStringTypeMismatch(t *testing.T) {
	reg := NewRegistry()
	def := &Definition{TypeRef: "tCustomerName", Kind: KindSimple, SimpleType: feeltype.String()}
	if err := reg.Build(def); err != nil {
		t.Fatalf("build: %v", err)
	}
	if r := reg.Eval("tCustomerName", feelvalue.StringValue("Whistler")); r != feelvalue.StringValue("Whistler") {
		t.Errorf("expected pass-through string, got %v", r)
	}
	if r := reg.Eval("tCustomerName", num(12000)); !feelvalue.IsNull(r) {
		t.Errorf("expected Null for number against string schema, got %v", r)
	}
}

func TestAllowedValuesRejectsOutOfRange(t *testing.T) {
	reg := NewRegistry()
	// allowed values: [0..100]
	allowed := feelast.RangeExpr{
		Start: feelast.IntervalStart{Expr: numLit("0"), Closed: true},
		End:   feelast.IntervalEnd{Expr: numLit("100"), Closed: true},
	}
	def := &Definition{TypeRef: "tPercent", Kind: KindSimple, SimpleType: feeltype.Number(), AllowedValues: allowed}
	if err := reg.Build(def); err != nil {
		t.Fatalf("build: %v", err)
	}
	if r := reg.Eval("tPercent", num(50)); r != num(50) {
		t.Errorf("expected 50 to pass, got %v", r)
	}
	if r := reg.Eval("tPercent", num(150)); !feelvalue.IsNull(r) {
		t.Errorf("expected 150 to be rejected, got %v", r)
	}
}

func TestReferencedTypeResolvesLate(t *testing.T) {
	reg := NewRegistry()
	name := &Definition{TypeRef: "tName", Kind: KindSimple, SimpleType: feeltype.String()}
	wrapper := &Definition{TypeRef: "tWrapper", Kind: KindReferenced, ReferencedType: "tName"}
	// Register wrapper before its referenced type exists, proving late binding.
	if err := reg.Build(wrapper); err != nil {
		t.Fatalf("build wrapper: %v", err)
	}
	if err := reg.Build(name); err != nil {
		t.Fatalf("build name: %v", err)
	}
	if r := reg.Eval("tWrapper", feelvalue.StringValue("Bloomberg")); r != feelvalue.StringValue("Bloomberg") {
		t.Errorf("expected referenced evaluator to resolve after the fact, got %v", r)
	}
}

func TestComponentTypeRebuildsContext(t *testing.T) {
	reg := NewRegistry()
	def := &Definition{
		TypeRef: "tLoan",
		Kind:    KindComponent,
		Components: []Component{
			{Name: feelname.Of("principal"), Definition: &Definition{Kind: KindSimple, SimpleType: feeltype.Number()}},
			{Name: feelname.Of("rate"), Definition: &Definition{Kind: KindSimple, SimpleType: feeltype.Number()}},
		},
	}
	if err := reg.Build(def); err != nil {
		t.Fatalf("build: %v", err)
	}
	input := feelvalue.NewContext()
	input.SetEntry(feelname.Of("principal"), num(10))
	input.SetEntry(feelname.Of("rate"), num(60))
	input.SetEntry(feelname.Of("extra"), num(999)) // not declared; dropped on rebuild

	result := reg.Eval("tLoan", input)
	ctx, ok := result.(*feelvalue.ContextValue)
	if !ok {
		t.Fatalf("expected *ContextValue, got %T (%v)", result, result)
	}
	if ctx.Len() != 2 {
		t.Errorf("expected only declared components to survive, got %d entries", ctx.Len())
	}
	if _, found := ctx.GetEntry(feelname.Of("extra")); found {
		t.Errorf("undeclared component leaked through")
	}
}

func TestComponentTypeMissingNameIsViolation(t *testing.T) {
	reg := NewRegistry()
	def := &Definition{
		TypeRef: "tLoan",
		Kind:    KindComponent,
		Components: []Component{
			{Name: feelname.Of("principal"), Definition: &Definition{Kind: KindSimple, SimpleType: feeltype.Number()}},
		},
	}
	if err := reg.Build(def); err != nil {
		t.Fatalf("build: %v", err)
	}
	input := feelvalue.NewContext()
	result := reg.Eval("tLoan", input)
	if !feelvalue.IsNull(result) {
		t.Errorf("expected Null for missing component, got %v", result)
	}
}

func TestCollectionOfSimpleType(t *testing.T) {
	reg := NewRegistry()
	def := &Definition{TypeRef: "tItems", Kind: KindCollectionOfSimple, SimpleType: feeltype.String()}
	if err := reg.Build(def); err != nil {
		t.Fatalf("build: %v", err)
	}
	list := feelvalue.ListValue{Items: []feelvalue.Value{feelvalue.StringValue("Mercury"), feelvalue.StringValue("Venus")}}
	if r := reg.Eval("tItems", list); !valueEqual(r, list) {
		t.Errorf("expected list to pass through, got %v", r)
	}
	bad := feelvalue.ListValue{Items: []feelvalue.Value{feelvalue.StringValue("Mercury"), num(1)}}
	if r := reg.Eval("tItems", bad); !feelvalue.IsNull(r) {
		t.Errorf("expected Null for mixed-type list, got %v", r)
	}
}

func valueEqual(a, b feelvalue.Value) bool {
	al, aok := a.(feelvalue.ListValue)
	bl, bok := b.(feelvalue.ListValue)
	if !aok || !bok || len(al.Items) != len(bl.Items) {
		return false
	}
	for i := range al.Items {
		if al.Items[i] != bl.Items[i] {
			return false
		}
	}
	return true
}

func TestCollectionOfComponentType(t *testing.T) {
	reg := NewRegistry()
	def := &Definition{
		TypeRef: "tItems",
		Kind:    KindCollectionOfComponent,
		Components: []Component{
			{Name: feelname.Of("number"), Definition: &Definition{Kind: KindSimple, SimpleType: feeltype.Number()}},
			{Name: feelname.Of("name"), Definition: &Definition{Kind: KindSimple, SimpleType: feeltype.String()}},
		},
	}
	if err := reg.Build(def); err != nil {
		t.Fatalf("build: %v", err)
	}
	item1 := feelvalue.NewContext()
	item1.SetEntry(feelname.Of("number"), num(1))
	item1.SetEntry(feelname.Of("name"), feelvalue.StringValue("One"))
	input := feelvalue.ListValue{Items: []feelvalue.Value{item1}}

	result := reg.Eval("tItems", input)
	rl, ok := result.(feelvalue.ListValue)
	if !ok || len(rl.Items) != 1 {
		t.Fatalf("expected single-item list, got %v", result)
	}
	ctx, ok := rl.Items[0].(*feelvalue.ContextValue)
	if !ok {
		t.Fatalf("expected context item, got %T", rl.Items[0])
	}
	name, _ := ctx.GetEntry(feelname.Of("name"))
	if name != feelvalue.StringValue("One") {
		t.Errorf("expected name One, got %v", name)
	}
}

func TestUnsupportedSimpleTypeIsBuildError(t *testing.T) {
	reg := NewRegistry()
	def := &Definition{TypeRef: "tBad", Kind: KindSimple, SimpleType: feeltype.List(feeltype.Number())}
	if err := reg.Build(def); err == nil {
		t.Errorf("expected a build error for a non-simple FeelType")
	}
}
