package feelbif

import (
	"testing"

	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func n(v int64) feelvalue.Value { return feelvalue.NumberValue{N: feelnum.FromInt64(v)} }

func TestDecimal(t *testing.T) {
	r := Decimal([]feelvalue.Value{n(1), n(0)})
	nv, ok := r.(feelvalue.NumberValue)
	if !ok {
		t.Fatalf("expected NumberValue, got %T", r)
	}
	if nv.N.String() != "1" {
		t.Errorf("got %s", nv.N.String())
	}
}

func TestModuloByZero(t *testing.T) {
	r := Modulo([]feelvalue.Value{n(5), n(0)})
	if !feelvalue.IsNull(r) {
		t.Errorf("expected Null on modulo by zero, got %v", r)
	}
}

func TestOddEven(t *testing.T) {
	if b := Odd([]feelvalue.Value{n(3)}); b != feelvalue.BooleanValue(true) {
		t.Errorf("expected odd(3) = true, got %v", b)
	}
	if b := Even([]feelvalue.Value{n(4)}); b != feelvalue.BooleanValue(true) {
		t.Errorf("expected even(4) = true, got %v", b)
	}
}

func TestNumberFnWithSeparators(t *testing.T) {
	r := NumberFn([]feelvalue.Value{
		feelvalue.StringValue("1.000,5"),
		feelvalue.StringValue(","),
		feelvalue.StringValue("."),
	})
	nv, ok := r.(feelvalue.NumberValue)
	if !ok {
		t.Fatalf("expected NumberValue, got %T (%v)", r, r)
	}
	if nv.N.String() != "1000.5" {
		t.Errorf("got %s", nv.N.String())
	}
}

func TestAbsOnNumber(t *testing.T) {
	r := Abs([]feelvalue.Value{n(-5)})
	nv, ok := r.(feelvalue.NumberValue)
	if !ok || nv.N.String() != "5" {
		t.Errorf("expected abs(-5) = 5, got %v", r)
	}
}
