package feeleval

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feelerr"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelscope"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func compileList(n feelast.List) Closure {
	items := make([]Closure, len(n.Items))
	for i, it := range n.Items {
		items[i] = Compile(it)
	}
	return func(s *feelscope.Scope) feelvalue.Value {
		out := make([]feelvalue.Value, len(items))
		for i, it := range items {
			out[i] = it(s)
		}
		return feelvalue.ListValue{Items: out}
	}
}

// asIterable normalizes a source Value into a Go slice: Lists pass through
// their items; any other non-Null value is treated as an implicit
// singleton list, matching FEEL's "a value can be used where a list of one
// is expected" soft-typing rule (spec.md §4.4).
func asIterable(v feelvalue.Value) ([]feelvalue.Value, bool) {
	switch t := v.(type) {
	case feelvalue.ListValue:
		return t.Items, true
	case feelvalue.NullValue:
		return nil, false
	default:
		return []feelvalue.Value{v}, true
	}
}

// bindFilterItem binds the current element under the reserved name "item"
// and, when the element is itself a context, also spreads its entries into
// the pushed frame so a filter predicate can reference fields directly
// (e.g. `orders[amount > 100]`), matching the source's context-flattening
// filter binding.
func bindFilterItem(s *feelscope.Scope, item feelvalue.Value) {
	s.SetEntry(feelname.Of("item"), item)
	if ctx, ok := item.(*feelvalue.ContextValue); ok {
		for _, e := range ctx.Entries() {
			s.SetEntry(e.Name, e.Value)
		}
	}
}

func selectByIndex(list []feelvalue.Value, idx int64) feelvalue.Value {
	if idx < 0 {
		idx = int64(len(list)) + idx + 1
	}
	if idx < 1 || idx > int64(len(list)) {
		return feelvalue.NullWithTrace(feelerr.New(feelerr.OutOfRange, feelerr.MsgIndexOutOfRange, idx, len(list)).String())
	}
	return list[idx-1]
}

// compileFilter compiles FEEL's `source[predicate]`: when predicate
// evaluates to a Number independent of the bound item, it is a positional
// index (list[3], list[-1]); otherwise it is a boolean filter evaluated
// once per element with "item" (and, for context elements, each field)
// bound in a fresh scope frame.
func compileFilter(n feelast.Filter) Closure {
	source := Compile(n.Source)
	predicate := Compile(n.Predicate)
	return func(s *feelscope.Scope) feelvalue.Value {
		list, ok := asIterable(source(s))
		if !ok {
			return feelvalue.Null()
		}
		if probe, isNum := predicate(s).(feelvalue.NumberValue); isNum {
			idx, err := probe.N.ToInt64()
			if err != nil {
				return feelvalue.Null()
			}
			return selectByIndex(list, idx)
		}
		var out []feelvalue.Value
		for _, item := range list {
			s.Push()
			bindFilterItem(s, item)
			keep := predicate(s)
			s.Pop()
			if b, ok := keep.(feelvalue.BooleanValue); ok && bool(b) {
				out = append(out, item)
			}
		}
		return feelvalue.ListValue{Items: out}
	}
}

// compileExpressionList sequences a block of expressions in one scope,
// evaluating each for any context-mutation side effect and yielding the
// final expression's value, matching the source's expression-list builder.
func compileExpressionList(n feelast.ExpressionList) Closure {
	items := make([]Closure, len(n.Items))
	for i, it := range n.Items {
		items[i] = Compile(it)
	}
	return func(s *feelscope.Scope) feelvalue.Value {
		var last feelvalue.Value = feelvalue.Null()
		for _, it := range items {
			last = it(s)
		}
		return last
	}
}

// compileNegatedList evaluates each item as a boolean and negates it,
// matching the decision-table-style `not(a, b, c)` shorthand: the result is
// a list of the per-item negations, Null for any non-boolean item.
func compileNegatedList(n feelast.NegatedList) Closure {
	items := make([]Closure, len(n.Items))
	for i, it := range n.Items {
		items[i] = Compile(it)
	}
	return func(s *feelscope.Scope) feelvalue.Value {
		out := make([]feelvalue.Value, len(items))
		for i, it := range items {
			b, ok := it(s).(feelvalue.BooleanValue)
			if !ok {
				out[i] = feelvalue.Null()
				continue
			}
			out[i] = feelvalue.BooleanValue(!bool(b))
		}
		return feelvalue.ListValue{Items: out}
	}
}
