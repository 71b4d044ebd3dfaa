package feeleval

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelscope"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func compileEq(left, right feelast.Node, negate bool) Closure {
	l := Compile(left)
	r := Compile(right)
	return func(s *feelscope.Scope) feelvalue.Value {
		eq, ok := feelvalue.TernaryEqual(l(s), r(s))
		if !ok {
			return feelvalue.Null()
		}
		if negate {
			eq = !eq
		}
		return feelvalue.BooleanValue(eq)
	}
}

func compileOrdering(left, right feelast.Node, pred func(int) bool) Closure {
	l := Compile(left)
	r := Compile(right)
	return func(s *feelscope.Scope) feelvalue.Value {
		cmp, ok := compareValues(l(s), r(s))
		if !ok {
			return feelvalue.Null()
		}
		return feelvalue.BooleanValue(pred(cmp))
	}
}

func compileBetween(n feelast.Between) Closure {
	value := Compile(n.Value)
	lower := Compile(n.Lower)
	upper := Compile(n.Upper)
	return func(s *feelscope.Scope) feelvalue.Value {
		v, lo, hi := value(s), lower(s), upper(s)
		c1, ok1 := compareValues(v, lo)
		c2, ok2 := compareValues(v, hi)
		if !ok1 || !ok2 {
			return feelvalue.Null()
		}
		return feelvalue.BooleanValue(c1 >= 0 && c2 <= 0)
	}
}

// compileAnd implements FEEL's three-valued conjunction: a definite false
// on either side short-circuits to false regardless of the other operand's
// indeterminacy; otherwise both sides must be definite true for a true
// result, and anything else (a Null operand) yields Null.
func compileAnd(n feelast.And) Closure {
	l := Compile(n.Left)
	r := Compile(n.Right)
	return func(s *feelscope.Scope) feelvalue.Value {
		lv := l(s)
		if b, ok := lv.(feelvalue.BooleanValue); ok && !bool(b) {
			return feelvalue.BooleanValue(false)
		}
		rv := r(s)
		if b, ok := rv.(feelvalue.BooleanValue); ok && !bool(b) {
			return feelvalue.BooleanValue(false)
		}
		lb, lok := lv.(feelvalue.BooleanValue)
		rb, rok := rv.(feelvalue.BooleanValue)
		if lok && rok {
			return feelvalue.BooleanValue(bool(lb) && bool(rb))
		}
		return feelvalue.Null()
	}
}

// compileOr is And's mirror: a definite true on either side short-circuits
// to true.
func compileOr(n feelast.Or) Closure {
	l := Compile(n.Left)
	r := Compile(n.Right)
	return func(s *feelscope.Scope) feelvalue.Value {
		lv := l(s)
		if b, ok := lv.(feelvalue.BooleanValue); ok && bool(b) {
			return feelvalue.BooleanValue(true)
		}
		rv := r(s)
		if b, ok := rv.(feelvalue.BooleanValue); ok && bool(b) {
			return feelvalue.BooleanValue(true)
		}
		lb, lok := lv.(feelvalue.BooleanValue)
		rb, rok := rv.(feelvalue.BooleanValue)
		if lok && rok {
			return feelvalue.BooleanValue(bool(lb) || bool(rb))
		}
		return feelvalue.Null()
	}
}

// unaryPlaceholder is the reserved name a unary-test comparison's implicit
// subject is bound under ("?"), shared with feelitem's allowedValues check.
var unaryPlaceholder = feelname.Of("?")

func compileIn(n feelast.In) Closure {
	left := Compile(n.Left)

	switch rhs := n.Right.(type) {
	case feelast.ExpressionList:
		// "x in (a, b, c)": exists-equal over the expression list's items,
		// not a generic container membership test (spec.md §4.6).
		items := make([]Closure, len(rhs.Items))
		for i, it := range rhs.Items {
			items[i] = Compile(it)
		}
		return func(s *feelscope.Scope) feelvalue.Value {
			lv := left(s)
			if feelvalue.IsNull(lv) {
				return feelvalue.Null()
			}
			return existsEqual(lv, items, s)
		}

	case feelast.NegatedList:
		// "x in not(a, b, c)": forall-not-equal over the negated list's items.
		items := make([]Closure, len(rhs.Items))
		for i, it := range rhs.Items {
			items[i] = Compile(it)
		}
		return func(s *feelscope.Scope) feelvalue.Value {
			lv := left(s)
			if feelvalue.IsNull(lv) {
				return feelvalue.Null()
			}
			return forallNotEqual(lv, items, s)
		}

	case feelast.UnaryLt, feelast.UnaryLe, feelast.UnaryGt, feelast.UnaryGe:
		// "x in < 10": the unary comparison's implicit subject ("?") is bound
		// to the evaluated LHS in a child scope frame before evaluating the
		// already-compiled comparison closure.
		unary := Compile(n.Right)
		return func(s *feelscope.Scope) feelvalue.Value {
			lv := left(s)
			if feelvalue.IsNull(lv) {
				return feelvalue.Null()
			}
			s.Push()
			s.SetEntry(unaryPlaceholder, lv)
			result := unary(s)
			s.Pop()
			return result
		}

	default:
		right := Compile(n.Right)
		return func(s *feelscope.Scope) feelvalue.Value {
			lv, rv := left(s), right(s)
			if feelvalue.IsNull(lv) {
				return feelvalue.Null()
			}
			return membership(lv, rv)
		}
	}
}

// existsEqual implements "in (a, b, c)": true if v equals any item, false if
// every comparison is determinate and none match, Null if an indeterminate
// comparison stands in the way of a definite false.
func existsEqual(v feelvalue.Value, items []Closure, s *feelscope.Scope) feelvalue.Value {
	indeterminate := false
	for _, it := range items {
		eq, ok := feelvalue.TernaryEqual(v, it(s))
		if !ok {
			indeterminate = true
			continue
		}
		if eq {
			return feelvalue.BooleanValue(true)
		}
	}
	if indeterminate {
		return feelvalue.Null()
	}
	return feelvalue.BooleanValue(false)
}

// forallNotEqual implements "in not(a, b, c)": true if v equals none of the
// items, false as soon as one matches, Null if an indeterminate comparison
// stands in the way of a definite true.
func forallNotEqual(v feelvalue.Value, items []Closure, s *feelscope.Scope) feelvalue.Value {
	indeterminate := false
	for _, it := range items {
		eq, ok := feelvalue.TernaryEqual(v, it(s))
		if !ok {
			indeterminate = true
			continue
		}
		if eq {
			return feelvalue.BooleanValue(false)
		}
	}
	if indeterminate {
		return feelvalue.Null()
	}
	return feelvalue.BooleanValue(true)
}

func compileOut(n feelast.Out) Closure {
	left := Compile(n.Left)
	right := Compile(n.Right)
	return func(s *feelscope.Scope) feelvalue.Value {
		lv, rv := left(s), right(s)
		if feelvalue.IsNull(lv) {
			return feelvalue.Null()
		}
		result := membership(lv, rv)
		b, ok := result.(feelvalue.BooleanValue)
		if !ok {
			return feelvalue.Null()
		}
		return feelvalue.BooleanValue(!bool(b))
	}
}

func membership(v feelvalue.Value, container feelvalue.Value) feelvalue.Value {
	switch c := container.(type) {
	case feelvalue.RangeValue:
		return rangeContains(c, v)
	case feelvalue.ListValue:
		for _, item := range c.Items {
			eq, ok := feelvalue.TernaryEqual(v, item)
			if ok && eq {
				return feelvalue.BooleanValue(true)
			}
		}
		return feelvalue.BooleanValue(false)
	default:
		eq, ok := feelvalue.TernaryEqual(v, container)
		if !ok {
			return feelvalue.Null()
		}
		return feelvalue.BooleanValue(eq)
	}
}

func rangeContains(rng feelvalue.RangeValue, v feelvalue.Value) feelvalue.Value {
	cStart, okS := compareValues(v, rng.Start)
	cEnd, okE := compareValues(v, rng.End)
	if !okS || !okE {
		return feelvalue.Null()
	}
	lowerOk := cStart > 0 || (cStart == 0 && rng.StartClosed)
	upperOk := cEnd < 0 || (cEnd == 0 && rng.EndClosed)
	return feelvalue.BooleanValue(lowerOk && upperOk)
}
