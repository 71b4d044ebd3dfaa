// Package feelbif implements C9: the FEEL built-in function library,
// grounded on original_source's feel-evaluator/src/bifs/core.rs. Every
// function has the shape func(args []feelvalue.Value) feelvalue.Value,
// matching feelvalue.FunctionValue.Call, so the dispatch tables in
// internal/feelbif/dispatch can wrap them directly as FunctionValues.
package feelbif

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelerr"
	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// BIF is the signature every built-in function implements, matching
// feelvalue.FunctionValue.Call so internal/feelbif/dispatch can wrap these
// directly without an adapter.
type BIF func(args []feelvalue.Value) feelvalue.Value

func nullf(cat feelerr.Category, format string, args ...any) feelvalue.Value {
	return feelvalue.NullWithTrace(feelerr.New(cat, format, args...).String())
}

func checkedNumber(n feelnum.Number) feelvalue.Value {
	if !n.IsFinite() {
		return nullf(feelerr.NonFiniteArithmetic, feelerr.MsgNonFinite, n.NonFinite())
	}
	return feelvalue.NumberValue{N: n}
}

func asNumber(v feelvalue.Value) (feelnum.Number, bool) {
	n, ok := v.(feelvalue.NumberValue)
	if !ok {
		return feelnum.Number{}, false
	}
	return n.N, true
}

func asString(v feelvalue.Value) (string, bool) {
	s, ok := v.(feelvalue.StringValue)
	if !ok {
		return "", false
	}
	return string(s), true
}

func asBool(v feelvalue.Value) (bool, bool) {
	b, ok := v.(feelvalue.BooleanValue)
	if !ok {
		return false, false
	}
	return bool(b), true
}

func asList(v feelvalue.Value) ([]feelvalue.Value, bool) {
	l, ok := v.(feelvalue.ListValue)
	if !ok {
		return nil, false
	}
	return l.Items, true
}

func asContext(v feelvalue.Value) (*feelvalue.ContextValue, bool) {
	c, ok := v.(*feelvalue.ContextValue)
	return c, ok
}

func wrongArity(name string) feelvalue.Value {
	return nullf(feelerr.ArityMismatch, feelerr.MsgArityMismatch)
}

func notANumber(v feelvalue.Value) feelvalue.Value {
	return nullf(feelerr.TypeMismatch, feelerr.MsgTypeMismatch, "number", v.TypeOf())
}

func notAString(v feelvalue.Value) feelvalue.Value {
	return nullf(feelerr.TypeMismatch, feelerr.MsgTypeMismatch, "string", v.TypeOf())
}

func notAList(v feelvalue.Value) feelvalue.Value {
	return nullf(feelerr.TypeMismatch, feelerr.MsgNotAList)
}
