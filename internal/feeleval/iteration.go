// C7: iteration sub-evaluators (for/some/every), grounded on
// original_source's builders.rs for-loop and quantified-expression
// builders: each iteration variable is resolved into a concrete []Value
// once per combination, and combinations are walked depth-first to realize
// FEEL's nested-loop cartesian-product semantics for multi-variable for
// expressions.
package feeleval

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
	"github.com/cwbudde/go-dmn-feel/internal/feelscope"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

type compiledIterationContext struct {
	name       feelname.Name
	isRange    bool
	single     Closure
	rangeStart Closure
	rangeEnd   Closure
}

func compileIterationContexts(ctxs []feelast.IterationContext) []compiledIterationContext {
	out := make([]compiledIterationContext, len(ctxs))
	for i, c := range ctxs {
		out[i] = compiledIterationContext{name: feelname.FromString(c.Name), isRange: c.IsRange}
		if c.IsRange {
			out[i].rangeStart = Compile(c.RangeStart)
			out[i].rangeEnd = Compile(c.RangeEnd)
		} else {
			out[i].single = Compile(c.Single)
		}
	}
	return out
}

// values materializes this binding's iteration sequence against the
// current scope (so a later binding's range may reference an earlier
// binding's current value, e.g. `for i in 1..3, j in i..3`).
func (c compiledIterationContext) values(s *feelscope.Scope) ([]feelvalue.Value, bool) {
	if c.isRange {
		sn, ok1 := c.rangeStart(s).(feelvalue.NumberValue)
		en, ok2 := c.rangeEnd(s).(feelvalue.NumberValue)
		if !ok1 || !ok2 {
			return nil, false
		}
		startI, err1 := sn.N.ToInt64()
		endI, err2 := en.N.ToInt64()
		if err1 != nil || err2 != nil {
			return nil, false
		}
		var out []feelvalue.Value
		if startI <= endI {
			for i := startI; i <= endI; i++ {
				out = append(out, feelvalue.NumberValue{N: feelnum.FromInt64(i)})
			}
		} else {
			for i := startI; i >= endI; i-- {
				out = append(out, feelvalue.NumberValue{N: feelnum.FromInt64(i)})
			}
		}
		return out, true
	}
	return asIterable(c.single(s))
}

func iterateCartesian(ctxs []compiledIterationContext, idx int, s *feelscope.Scope, leaf func()) bool {
	if idx == len(ctxs) {
		leaf()
		return true
	}
	values, ok := ctxs[idx].values(s)
	if !ok {
		return false
	}
	for _, v := range values {
		s.SetEntry(ctxs[idx].name, v)
		if !iterateCartesian(ctxs, idx+1, s, leaf) {
			return false
		}
	}
	return true
}

// compileFor compiles `for x in ..., y in ... return body` into a closure
// producing the list of body results over every combination (spec.md
// §4.6's For).
func compileFor(n feelast.For) Closure {
	ctxs := compileIterationContexts(n.Contexts)
	body := Compile(n.Body)
	return func(s *feelscope.Scope) feelvalue.Value {
		s.Push()
		defer s.Pop()
		var results []feelvalue.Value
		ok := iterateCartesian(ctxs, 0, s, func() {
			results = append(results, body(s))
		})
		if !ok {
			return feelvalue.Null()
		}
		return feelvalue.ListValue{Items: results}
	}
}

type compiledQuantifiedContext struct {
	name feelname.Name
	expr Closure
}

func compileQuantifiedContexts(ctxs []feelast.QuantifiedContext) []compiledQuantifiedContext {
	out := make([]compiledQuantifiedContext, len(ctxs))
	for i, c := range ctxs {
		out[i] = compiledQuantifiedContext{name: feelname.FromString(c.Name), expr: Compile(c.Expr)}
	}
	return out
}

func iterateQuantified(ctxs []compiledQuantifiedContext, idx int, s *feelscope.Scope, leaf func()) bool {
	if idx == len(ctxs) {
		leaf()
		return true
	}
	items, ok := asIterable(ctxs[idx].expr(s))
	if !ok {
		return false
	}
	for _, v := range items {
		s.SetEntry(ctxs[idx].name, v)
		if !iterateQuantified(ctxs, idx+1, s, leaf) {
			return false
		}
	}
	return true
}

// compileSome compiles `some x in ... satisfies p`: true if any
// combination satisfies p definitely, Null if none do but at least one is
// indeterminate, else false.
func compileSome(n feelast.Some) Closure {
	ctxs := compileQuantifiedContexts(n.Contexts)
	satisfies := Compile(n.Satisfies)
	return func(s *feelscope.Scope) feelvalue.Value {
		s.Push()
		defer s.Pop()
		anyTrue, anyIndeterminate := false, false
		ok := iterateQuantified(ctxs, 0, s, func() {
			b, bok := satisfies(s).(feelvalue.BooleanValue)
			switch {
			case !bok:
				anyIndeterminate = true
			case bool(b):
				anyTrue = true
			}
		})
		if !ok {
			return feelvalue.Null()
		}
		if anyTrue {
			return feelvalue.BooleanValue(true)
		}
		if anyIndeterminate {
			return feelvalue.Null()
		}
		return feelvalue.BooleanValue(false)
	}
}

// compileEvery mirrors compileSome: false if any combination is definitely
// false, Null if none are false but at least one is indeterminate, else
// true.
func compileEvery(n feelast.Every) Closure {
	ctxs := compileQuantifiedContexts(n.Contexts)
	satisfies := Compile(n.Satisfies)
	return func(s *feelscope.Scope) feelvalue.Value {
		s.Push()
		defer s.Pop()
		anyFalse, anyIndeterminate := false, false
		ok := iterateQuantified(ctxs, 0, s, func() {
			b, bok := satisfies(s).(feelvalue.BooleanValue)
			switch {
			case !bok:
				anyIndeterminate = true
			case !bool(b):
				anyFalse = true
			}
		})
		if !ok {
			return feelvalue.Null()
		}
		if anyFalse {
			return feelvalue.BooleanValue(false)
		}
		if anyIndeterminate {
			return feelvalue.Null()
		}
		return feelvalue.BooleanValue(true)
	}
}
