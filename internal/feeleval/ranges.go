package feeleval

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelscope"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// unwrapInterval strips an IntervalStart/IntervalEnd wrapper (open/closed
// endpoint marker), returning the inner expression and its closedness;
// plain, unwrapped endpoints default to closed.
func unwrapInterval(n feelast.Node) (feelast.Node, bool) {
	switch t := n.(type) {
	case feelast.IntervalStart:
		return t.Expr, t.Closed
	case feelast.IntervalEnd:
		return t.Expr, t.Closed
	default:
		return n, true
	}
}

func compileRangeExpr(n feelast.RangeExpr) Closure {
	startExpr, startClosed := unwrapInterval(n.Start)
	endExpr, endClosed := unwrapInterval(n.End)
	start := Compile(startExpr)
	end := Compile(endExpr)
	return func(s *feelscope.Scope) feelvalue.Value {
		sv, ev := start(s), end(s)
		if feelvalue.IsNull(sv) || feelvalue.IsNull(ev) {
			return feelvalue.Null()
		}
		return feelvalue.RangeValue{Start: sv, StartClosed: startClosed, End: ev, EndClosed: endClosed}
	}
}

// compileUnaryCompare compiles a unary test like `< 5`: the implicit input
// value is looked up under the reserved name "?" (FEEL's unary-test input
// placeholder), matching how the source binds the decision table/unary
// test input before evaluating a comparison shorthand.
func compileUnaryCompare(exprNode feelast.Node, pred func(int) bool) Closure {
	rhs := Compile(exprNode)
	inputName := feelname.Of("?")
	return func(s *feelscope.Scope) feelvalue.Value {
		lhs, ok := s.GetEntry(inputName)
		if !ok {
			return feelvalue.Null()
		}
		cmp, cok := compareValues(lhs, rhs(s))
		if !cok {
			return feelvalue.Null()
		}
		return feelvalue.BooleanValue(pred(cmp))
	}
}
