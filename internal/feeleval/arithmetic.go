package feeleval

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feelerr"
	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
	"github.com/cwbudde/go-dmn-feel/internal/feelscope"
	"github.com/cwbudde/go-dmn-feel/internal/feeltime"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

type binaryOp func(l, r feelvalue.Value) feelvalue.Value

func compileBinaryArith(left, right feelast.Node, op binaryOp) Closure {
	l := Compile(left)
	r := Compile(right)
	return func(s *feelscope.Scope) feelvalue.Value {
		return op(l(s), r(s))
	}
}

func compileNeg(n feelast.Neg) Closure {
	operand := Compile(n.Operand)
	return func(s *feelscope.Scope) feelvalue.Value {
		v := operand(s)
		switch t := v.(type) {
		case feelvalue.NullValue:
			return t
		case feelvalue.NumberValue:
			return checkedNumber(t.N.Neg())
		case feelvalue.DaysAndTimeDurationValue:
			return feelvalue.DaysAndTimeDurationValue{D: t.D.Neg()}
		case feelvalue.YearsAndMonthsDurationValue:
			return feelvalue.YearsAndMonthsDurationValue{D: t.D.Neg()}
		default:
			return nullf(feelerr.TypeMismatch, feelerr.MsgTypeMismatch, "number or duration", v.TypeOf())
		}
	}
}

func checkedNumber(n feelnum.Number) feelvalue.Value {
	if !n.IsFinite() {
		return nullf(feelerr.NonFiniteArithmetic, feelerr.MsgNonFinite, n.NonFinite())
	}
	return feelvalue.NumberValue{N: n}
}

func typeMismatch(op string, l, r feelvalue.Value) feelvalue.Value {
	return nullf(feelerr.TypeMismatch, feelerr.MsgTypeMismatchBinOp, op, l.TypeOf(), r.TypeOf())
}

func bothFinite(l, r feelvalue.Value) bool {
	return !feelvalue.IsNull(l) && !feelvalue.IsNull(r)
}

// addValues implements `+` across FEEL's arithmetic and temporal types:
// number+number, string+string (concatenation is not part of FEEL's `+`
// per the grammar, but DMN engines commonly special-case it; kept here
// since the source's evaluator does the same), date/time/datetime ±
// duration, and duration + duration.
func addValues(l, r feelvalue.Value) feelvalue.Value {
	if !bothFinite(l, r) {
		return feelvalue.Null()
	}
	switch a := l.(type) {
	case feelvalue.NumberValue:
		b, ok := r.(feelvalue.NumberValue)
		if !ok {
			return typeMismatch("+", l, r)
		}
		return checkedNumber(a.N.Add(b.N))

	case feelvalue.StringValue:
		b, ok := r.(feelvalue.StringValue)
		if !ok {
			return typeMismatch("+", l, r)
		}
		return a + b

	case feelvalue.DateValue:
		switch b := r.(type) {
		case feelvalue.DaysAndTimeDurationValue:
			return feelvalue.DateValue{D: a.D.AddDays(b.D.TotalDaysTrunc())}
		case feelvalue.YearsAndMonthsDurationValue:
			return feelvalue.DateValue{D: a.D.AddMonths(b.D.AsMonths())}
		default:
			return typeMismatch("+", l, r)
		}

	case feelvalue.TimeValue:
		b, ok := r.(feelvalue.DaysAndTimeDurationValue)
		if !ok {
			return typeMismatch("+", l, r)
		}
		n, ok := b.D.TotalNanos()
		if !ok {
			return nullf(feelerr.OutOfRange, feelerr.MsgOverflow)
		}
		return feelvalue.TimeValue{T: a.T.AddNanos(n)}

	case feelvalue.DateTimeValue:
		switch b := r.(type) {
		case feelvalue.DaysAndTimeDurationValue:
			n, ok := b.D.TotalNanos()
			if !ok {
				return nullf(feelerr.OutOfRange, feelerr.MsgOverflow)
			}
			return feelvalue.DateTimeValue{DT: a.DT.AddNanos(n)}
		case feelvalue.YearsAndMonthsDurationValue:
			return feelvalue.DateTimeValue{DT: a.DT.AddMonths(b.D.AsMonths())}
		default:
			return typeMismatch("+", l, r)
		}

	case feelvalue.DaysAndTimeDurationValue:
		switch b := r.(type) {
		case feelvalue.DaysAndTimeDurationValue:
			return feelvalue.DaysAndTimeDurationValue{D: a.D.Add(b.D)}
		case feelvalue.DateValue, feelvalue.TimeValue, feelvalue.DateTimeValue:
			return addValues(r, l)
		default:
			return typeMismatch("+", l, r)
		}

	case feelvalue.YearsAndMonthsDurationValue:
		switch b := r.(type) {
		case feelvalue.YearsAndMonthsDurationValue:
			return feelvalue.YearsAndMonthsDurationValue{D: a.D.Add(b.D)}
		case feelvalue.DateValue, feelvalue.DateTimeValue:
			return addValues(r, l)
		default:
			return typeMismatch("+", l, r)
		}

	default:
		return typeMismatch("+", l, r)
	}
}

// subValues implements `-`: number-number, duration-duration, date-date and
// datetime-datetime (both yielding a DaysAndTimeDuration), and date/time/
// datetime minus a duration (delegating to addValues with the duration
// negated).
func subValues(l, r feelvalue.Value) feelvalue.Value {
	if !bothFinite(l, r) {
		return feelvalue.Null()
	}
	switch a := l.(type) {
	case feelvalue.NumberValue:
		b, ok := r.(feelvalue.NumberValue)
		if !ok {
			return typeMismatch("-", l, r)
		}
		return checkedNumber(a.N.Sub(b.N))

	case feelvalue.DateValue:
		switch b := r.(type) {
		case feelvalue.DateValue:
			days := feeltime.DaysBetween(b.D, a.D)
			return feelvalue.DaysAndTimeDurationValue{D: feeltime.NewDaysAndTimeDurationFromInt64(days * 86_400_000_000_000)}
		case feelvalue.DaysAndTimeDurationValue:
			return addValues(a, feelvalue.DaysAndTimeDurationValue{D: b.D.Neg()})
		case feelvalue.YearsAndMonthsDurationValue:
			return addValues(a, feelvalue.YearsAndMonthsDurationValue{D: b.D.Neg()})
		default:
			return typeMismatch("-", l, r)
		}

	case feelvalue.TimeValue:
		b, ok := r.(feelvalue.DaysAndTimeDurationValue)
		if !ok {
			return typeMismatch("-", l, r)
		}
		return addValues(a, feelvalue.DaysAndTimeDurationValue{D: b.D.Neg()})

	case feelvalue.DateTimeValue:
		switch b := r.(type) {
		case feelvalue.DateTimeValue:
			nanos, ok := a.DT.Sub(b.DT)
			if !ok {
				return feelvalue.Null()
			}
			return feelvalue.DaysAndTimeDurationValue{D: feeltime.NewDaysAndTimeDurationFromInt64(nanos)}
		case feelvalue.DaysAndTimeDurationValue:
			return addValues(a, feelvalue.DaysAndTimeDurationValue{D: b.D.Neg()})
		case feelvalue.YearsAndMonthsDurationValue:
			return addValues(a, feelvalue.YearsAndMonthsDurationValue{D: b.D.Neg()})
		default:
			return typeMismatch("-", l, r)
		}

	case feelvalue.DaysAndTimeDurationValue:
		b, ok := r.(feelvalue.DaysAndTimeDurationValue)
		if !ok {
			return typeMismatch("-", l, r)
		}
		return feelvalue.DaysAndTimeDurationValue{D: a.D.Sub(b.D)}

	case feelvalue.YearsAndMonthsDurationValue:
		b, ok := r.(feelvalue.YearsAndMonthsDurationValue)
		if !ok {
			return typeMismatch("-", l, r)
		}
		return feelvalue.YearsAndMonthsDurationValue{D: a.D.Sub(b.D)}

	default:
		return typeMismatch("-", l, r)
	}
}

// mulValues implements `*`: number*number and number*duration (either
// order), scaling a duration's magnitude.
func mulValues(l, r feelvalue.Value) feelvalue.Value {
	if !bothFinite(l, r) {
		return feelvalue.Null()
	}
	if a, ok := l.(feelvalue.NumberValue); ok {
		switch b := r.(type) {
		case feelvalue.NumberValue:
			return checkedNumber(a.N.Mul(b.N))
		case feelvalue.DaysAndTimeDurationValue:
			return scaleDayTimeDuration(b.D, a.N)
		case feelvalue.YearsAndMonthsDurationValue:
			return scaleYearMonthDuration(b.D, a.N)
		}
	}
	if _, ok := r.(feelvalue.NumberValue); ok {
		if _, isNum := l.(feelvalue.NumberValue); !isNum {
			return mulValues(r, l)
		}
	}
	return typeMismatch("*", l, r)
}

// divValues implements `/`: number/number, duration/number (scaling), and
// duration/duration of the same kind (yielding a dimensionless Number).
func divValues(l, r feelvalue.Value) feelvalue.Value {
	if !bothFinite(l, r) {
		return feelvalue.Null()
	}
	switch a := l.(type) {
	case feelvalue.NumberValue:
		b, ok := r.(feelvalue.NumberValue)
		if !ok {
			return typeMismatch("/", l, r)
		}
		if b.N.IsZero() {
			return nullf(feelerr.DivisionByZero, feelerr.MsgDivisionByZero)
		}
		return checkedNumber(a.N.Div(b.N))

	case feelvalue.DaysAndTimeDurationValue:
		switch b := r.(type) {
		case feelvalue.NumberValue:
			if b.N.IsZero() {
				return nullf(feelerr.DivisionByZero, feelerr.MsgDivisionByZero)
			}
			return scaleDayTimeDuration(a.D, feelnum.One().Div(b.N))
		case feelvalue.DaysAndTimeDurationValue:
			an, aok := a.D.TotalNanos()
			bn, bok := b.D.TotalNanos()
			if !aok || !bok || bn == 0 {
				return nullf(feelerr.DivisionByZero, feelerr.MsgDivisionByZero)
			}
			return checkedNumber(feelnum.FromInt64(an).Div(feelnum.FromInt64(bn)))
		default:
			return typeMismatch("/", l, r)
		}

	case feelvalue.YearsAndMonthsDurationValue:
		switch b := r.(type) {
		case feelvalue.NumberValue:
			if b.N.IsZero() {
				return nullf(feelerr.DivisionByZero, feelerr.MsgDivisionByZero)
			}
			return scaleYearMonthDuration(a.D, feelnum.One().Div(b.N))
		case feelvalue.YearsAndMonthsDurationValue:
			if b.D.AsMonths() == 0 {
				return nullf(feelerr.DivisionByZero, feelerr.MsgDivisionByZero)
			}
			return checkedNumber(feelnum.FromInt64(a.D.AsMonths()).Div(feelnum.FromInt64(b.D.AsMonths())))
		default:
			return typeMismatch("/", l, r)
		}

	default:
		return typeMismatch("/", l, r)
	}
}

// expValues implements `**`, defined for numbers only.
func expValues(l, r feelvalue.Value) feelvalue.Value {
	if !bothFinite(l, r) {
		return feelvalue.Null()
	}
	a, ok := l.(feelvalue.NumberValue)
	if !ok {
		return typeMismatch("**", l, r)
	}
	b, ok := r.(feelvalue.NumberValue)
	if !ok {
		return typeMismatch("**", l, r)
	}
	return checkedNumber(a.N.Pow(b.N))
}

func scaleDayTimeDuration(d feeltime.DaysAndTimeDuration, factor feelnum.Number) feelvalue.Value {
	nanos, ok := d.TotalNanos()
	if !ok {
		return nullf(feelerr.OutOfRange, feelerr.MsgOverflow)
	}
	scaled := feelnum.FromInt64(nanos).Mul(factor).Round(0)
	n, err := scaled.ToInt64()
	if err != nil {
		return nullf(feelerr.OutOfRange, feelerr.MsgOverflow)
	}
	return feelvalue.DaysAndTimeDurationValue{D: feeltime.NewDaysAndTimeDurationFromInt64(n)}
}

func scaleYearMonthDuration(d feeltime.YearsAndMonthsDuration, factor feelnum.Number) feelvalue.Value {
	scaled := feelnum.FromInt64(d.AsMonths()).Mul(factor).Round(0)
	n, err := scaled.ToInt64()
	if err != nil {
		return nullf(feelerr.OutOfRange, feelerr.MsgOverflow)
	}
	return feelvalue.YearsAndMonthsDurationValue{D: feeltime.NewYearsAndMonthsDurationFromMonths(n)}
}
