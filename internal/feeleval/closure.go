// Package feeleval implements C6 (the AST-to-closure compiler), C7
// (iteration sub-evaluators), and C8 (ternary logic and comparison
// kernel), grounded on the builder pattern in original_source's
// feel-evaluator/src/builders.rs: each AST node compiles once into a
// Scope-consuming closure rather than being walked repeatedly at
// evaluation time.
package feeleval

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feelerr"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
	"github.com/cwbudde/go-dmn-feel/internal/feelscope"
	"github.com/cwbudde/go-dmn-feel/internal/feeltime"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// Closure is a compiled AST node: given a Scope it produces a Value. Every
// AST node compiles to exactly one Closure; no node is re-walked once
// Compile returns.
type Closure func(*feelscope.Scope) feelvalue.Value

// nullf builds a diagnostic Null from the feelerr catalog, the uniform way
// every compiled closure reports failure.
func nullf(cat feelerr.Category, format string, args ...any) feelvalue.Value {
	return feelvalue.NullWithTrace(feelerr.New(cat, format, args...).String())
}

// Compile turns an AST node into a Closure. Unrecognized node types compile
// to a closure that always yields a diagnostic Null rather than panicking,
// matching the evaluator's never-panic contract (spec.md §7).
func Compile(node feelast.Node) Closure {
	switch n := node.(type) {

	// Literals
	case feelast.NullLiteral:
		return compileNullLiteral()
	case feelast.BooleanLiteral:
		return compileBooleanLiteral(n)
	case feelast.NumericLiteral:
		return compileNumericLiteral(n)
	case feelast.StringLiteral:
		return compileStringLiteral(n)
	case feelast.At:
		return compileAt(n)

	// Names & paths
	case feelast.NameRef:
		return compileNameRef(n)
	case feelast.QualifiedNameRef:
		return compileQualifiedNameRef(n)
	case feelast.Path:
		return compilePath(n)

	// Arithmetic
	case feelast.Add:
		return compileBinaryArith(n.Left, n.Right, addValues)
	case feelast.Sub:
		return compileBinaryArith(n.Left, n.Right, subValues)
	case feelast.Mul:
		return compileBinaryArith(n.Left, n.Right, mulValues)
	case feelast.Div:
		return compileBinaryArith(n.Left, n.Right, divValues)
	case feelast.Exp:
		return compileBinaryArith(n.Left, n.Right, expValues)
	case feelast.Neg:
		return compileNeg(n)

	// Comparison / logic
	case feelast.Eq:
		return compileEq(n.Left, n.Right, false)
	case feelast.Nq:
		return compileEq(n.Left, n.Right, true)
	case feelast.Lt:
		return compileOrdering(n.Left, n.Right, func(c int) bool { return c < 0 })
	case feelast.Le:
		return compileOrdering(n.Left, n.Right, func(c int) bool { return c <= 0 })
	case feelast.Gt:
		return compileOrdering(n.Left, n.Right, func(c int) bool { return c > 0 })
	case feelast.Ge:
		return compileOrdering(n.Left, n.Right, func(c int) bool { return c >= 0 })
	case feelast.Between:
		return compileBetween(n)
	case feelast.And:
		return compileAnd(n)
	case feelast.Or:
		return compileOr(n)

	// Containment
	case feelast.In:
		return compileIn(n)
	case feelast.Out:
		return compileOut(n)

	// Conditionals
	case feelast.If:
		return compileIf(n)

	// Collections
	case feelast.List:
		return compileList(n)
	case feelast.Filter:
		return compileFilter(n)
	case feelast.ExpressionList:
		return compileExpressionList(n)
	case feelast.NegatedList:
		return compileNegatedList(n)

	// Ranges
	case feelast.RangeExpr:
		return compileRangeExpr(n)
	case feelast.UnaryLt:
		return compileUnaryCompare(n.Expr, func(c int) bool { return c < 0 })
	case feelast.UnaryLe:
		return compileUnaryCompare(n.Expr, func(c int) bool { return c <= 0 })
	case feelast.UnaryGt:
		return compileUnaryCompare(n.Expr, func(c int) bool { return c > 0 })
	case feelast.UnaryGe:
		return compileUnaryCompare(n.Expr, func(c int) bool { return c >= 0 })
	case feelast.Irrelevant:
		return func(*feelscope.Scope) feelvalue.Value { return feelvalue.BooleanValue(true) }

	// Contexts
	case feelast.Context:
		return compileContext(n)

	// Functions
	case feelast.FunctionDefinition:
		return compileFunctionDefinition(n)
	case feelast.FunctionInvocation:
		return compileFunctionInvocation(n)

	// Iteration
	case feelast.For:
		return compileFor(n)
	case feelast.Some:
		return compileSome(n)
	case feelast.Every:
		return compileEvery(n)

	// Misc
	case feelast.InstanceOf:
		return compileInstanceOf(n)
	case feelast.EvaluatedExpression:
		return Compile(n.Expr)

	default:
		return func(*feelscope.Scope) feelvalue.Value {
			return nullf(feelerr.ParseFailure, "unsupported expression node %T", node)
		}
	}
}

func compileNullLiteral() Closure {
	return func(*feelscope.Scope) feelvalue.Value { return feelvalue.Null() }
}

func compileBooleanLiteral(n feelast.BooleanLiteral) Closure {
	v := feelvalue.BooleanValue(n.Value)
	return func(*feelscope.Scope) feelvalue.Value { return v }
}

func compileNumericLiteral(n feelast.NumericLiteral) Closure {
	text := n.IntPart
	if n.FracPart != "" {
		text += "." + n.FracPart
	}
	num, err := feelnum.FromString(text)
	if err != nil {
		return func(*feelscope.Scope) feelvalue.Value {
			return nullf(feelerr.ParseFailure, feelerr.MsgInvalidNumber, text)
		}
	}
	v := feelvalue.NumberValue{N: num}
	return func(*feelscope.Scope) feelvalue.Value { return v }
}

func compileStringLiteral(n feelast.StringLiteral) Closure {
	v := feelvalue.StringValue(n.Value)
	return func(*feelscope.Scope) feelvalue.Value { return v }
}

func compileNameRef(n feelast.NameRef) Closure {
	name := feelname.FromString(n.Text)
	return func(s *feelscope.Scope) feelvalue.Value {
		if v, ok := s.GetEntry(name); ok {
			return v
		}
		return nullf(feelerr.MissingName, feelerr.MsgMissingName, name.String())
	}
}

func compileQualifiedNameRef(n feelast.QualifiedNameRef) Closure {
	names := make([]feelname.Name, len(n.Segments))
	for i, seg := range n.Segments {
		names[i] = feelname.FromString(seg)
	}
	return func(s *feelscope.Scope) feelvalue.Value {
		first, ok := s.GetEntry(names[0])
		if !ok {
			return nullf(feelerr.MissingName, feelerr.MsgMissingName, names[0].String())
		}
		cur := first
		for _, name := range names[1:] {
			ctx, ok := cur.(*feelvalue.ContextValue)
			if !ok {
				return nullf(feelerr.TypeMismatch, feelerr.MsgNotAContext)
			}
			v, present := ctx.GetEntry(name)
			if !present {
				return nullf(feelerr.MissingName, feelerr.MsgMissingName, name.String())
			}
			cur = v
		}
		return cur
	}
}

func compilePath(n feelast.Path) Closure {
	base := Compile(n.Expr)
	name := feelname.FromString(n.Name)
	return func(s *feelscope.Scope) feelvalue.Value {
		v := base(s)
		switch t := v.(type) {
		case *feelvalue.ContextValue:
			if val, ok := t.GetEntry(name); ok {
				return val
			}
			return nullf(feelerr.MissingName, feelerr.MsgMissingName, name.String())
		case feelvalue.ListValue:
			// Path applied to a list projects the named path over every
			// item (DMN's list-of-contexts field access sugar).
			out := make([]feelvalue.Value, len(t.Items))
			for i, item := range t.Items {
				ctx, ok := item.(*feelvalue.ContextValue)
				if !ok {
					out[i] = nullf(feelerr.TypeMismatch, feelerr.MsgNotAContext)
					continue
				}
				val, present := ctx.GetEntry(name)
				if !present {
					out[i] = nullf(feelerr.MissingName, feelerr.MsgMissingName, name.String())
					continue
				}
				out[i] = val
			}
			return feelvalue.ListValue{Items: out}
		case feelvalue.NullValue:
			return t
		case feelvalue.DateValue, feelvalue.TimeValue, feelvalue.DateTimeValue,
			feelvalue.DaysAndTimeDurationValue, feelvalue.YearsAndMonthsDurationValue:
			return temporalProperty(t, name.String())
		default:
			return nullf(feelerr.TypeMismatch, feelerr.MsgNotAContext)
		}
	}
}

// temporalProperty implements Path's reserved-property-name semantics for
// temporal left-hand sides (spec.md §4.6): year/month/day/weekday on dates
// and date-times, hour/minute/second/time offset/timezone on times and
// date-times, and the duration component accessors on the two duration
// kinds.
func temporalProperty(v feelvalue.Value, prop string) feelvalue.Value {
	switch t := v.(type) {
	case feelvalue.DateValue:
		return dateProperty(t.D, prop, "date")
	case feelvalue.TimeValue:
		return timeProperty(t.T, prop)
	case feelvalue.DateTimeValue:
		if _, isDateProp := dateProps[prop]; isDateProp {
			return dateProperty(t.DT.Date, prop, "date and time")
		}
		return timeProperty(t.DT.Time, prop)
	case feelvalue.DaysAndTimeDurationValue:
		switch prop {
		case "days":
			return numberOf(t.D.Days())
		case "hours":
			return numberOf(t.D.Hours())
		case "minutes":
			return numberOf(t.D.Minutes())
		case "seconds":
			return numberOf(t.D.Seconds())
		default:
			return noSuchProperty(prop, "days and time duration")
		}
	case feelvalue.YearsAndMonthsDurationValue:
		switch prop {
		case "years":
			return numberOf(t.D.Years())
		case "months":
			return numberOf(t.D.Months())
		default:
			return noSuchProperty(prop, "years and months duration")
		}
	default:
		return nullf(feelerr.TypeMismatch, feelerr.MsgNotAContext)
	}
}

var dateProps = map[string]struct{}{"year": {}, "month": {}, "day": {}, "weekday": {}}

func dateProperty(d feeltime.Date, prop, label string) feelvalue.Value {
	switch prop {
	case "year":
		return numberOf(d.Year)
	case "month":
		return numberOf(int64(d.Month))
	case "day":
		return numberOf(int64(d.Day))
	case "weekday":
		return numberOf(int64(d.WeekdayNumber()))
	default:
		return noSuchProperty(prop, label)
	}
}

func timeProperty(t feeltime.Time, prop string) feelvalue.Value {
	switch prop {
	case "hour":
		return numberOf(int64(t.Hour))
	case "minute":
		return numberOf(int64(t.Minute))
	case "second":
		return numberOf(int64(t.Second))
	case "time offset":
		if !t.Zone.HasOffset {
			return noSuchProperty(prop, "time")
		}
		return feelvalue.DaysAndTimeDurationValue{
			D: feeltime.NewDaysAndTimeDurationFromInt64(int64(t.Zone.OffsetSec) * 1_000_000_000),
		}
	case "timezone":
		if t.Zone.Name == "" {
			return noSuchProperty(prop, "time")
		}
		return feelvalue.StringValue(t.Zone.Name)
	default:
		return noSuchProperty(prop, "time")
	}
}

func numberOf(n int64) feelvalue.Value {
	return feelvalue.NumberValue{N: feelnum.FromInt64(n)}
}

func noSuchProperty(prop, label string) feelvalue.Value {
	return nullf(feelerr.MissingName, feelerr.MsgNoSuchProperty, prop, label)
}

func compileIf(n feelast.If) Closure {
	cond := Compile(n.Cond)
	then := Compile(n.Then)
	els := Compile(n.Else)
	return func(s *feelscope.Scope) feelvalue.Value {
		cv, ok := cond(s).(feelvalue.BooleanValue)
		if !ok {
			return feelvalue.Null()
		}
		if bool(cv) {
			return then(s)
		}
		return els(s)
	}
}

func compileInstanceOf(n feelast.InstanceOf) Closure {
	expr := Compile(n.Expr)
	typ := resolveType(n.Type)
	return func(s *feelscope.Scope) feelvalue.Value {
		v := expr(s)
		return feelvalue.BooleanValue(v.TypeOf().IsConformant(typ))
	}
}
