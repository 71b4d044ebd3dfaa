package feelbif

import (
	"strings"

	"github.com/cwbudde/go-dmn-feel/internal/feelerr"
	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// Decimal(n, scale) rounds n to `scale` fractional digits, ROUND_HALF_EVEN.
func Decimal(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("decimal")
	}
	n, ok := asNumber(args[0])
	if !ok {
		return notANumber(args[0])
	}
	scale, ok := asNumber(args[1])
	if !ok {
		return notANumber(args[1])
	}
	s, err := scale.ToInt64()
	if err != nil {
		return nullf(feelerr.OutOfRange, feelerr.MsgInvalidScale, s)
	}
	return checkedNumber(n.Decimal(int32(s)))
}

func Floor(args []feelvalue.Value) feelvalue.Value {
	if len(args) == 2 {
		n, ok1 := asNumber(args[0])
		s, ok2 := asNumber(args[1])
		if !ok1 || !ok2 {
			return notANumber(args[0])
		}
		scale, _ := s.ToInt64()
		return checkedNumber(n.Round(int32(scale)).Floor())
	}
	if len(args) != 1 {
		return wrongArity("floor")
	}
	n, ok := asNumber(args[0])
	if !ok {
		return notANumber(args[0])
	}
	return checkedNumber(n.Floor())
}

func Ceiling(args []feelvalue.Value) feelvalue.Value {
	if len(args) == 2 {
		n, ok1 := asNumber(args[0])
		s, ok2 := asNumber(args[1])
		if !ok1 || !ok2 {
			return notANumber(args[0])
		}
		scale, _ := s.ToInt64()
		return checkedNumber(n.Round(int32(scale)).Ceiling())
	}
	if len(args) != 1 {
		return wrongArity("ceiling")
	}
	n, ok := asNumber(args[0])
	if !ok {
		return notANumber(args[0])
	}
	return checkedNumber(n.Ceiling())
}

func Abs(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("abs")
	}
	switch v := args[0].(type) {
	case feelvalue.NumberValue:
		return checkedNumber(v.N.Abs())
	case feelvalue.DaysAndTimeDurationValue:
		return feelvalue.DaysAndTimeDurationValue{D: v.D.Abs()}
	case feelvalue.YearsAndMonthsDurationValue:
		return feelvalue.YearsAndMonthsDurationValue{D: v.D.Abs()}
	default:
		return notANumber(args[0])
	}
}

func Modulo(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("modulo")
	}
	a, ok1 := asNumber(args[0])
	b, ok2 := asNumber(args[1])
	if !ok1 || !ok2 {
		return notANumber(args[0])
	}
	if b.IsZero() {
		return nullf(feelerr.DivisionByZero, feelerr.MsgModuloByZero)
	}
	return checkedNumber(a.Mod(b))
}

func Sqrt(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("sqrt")
	}
	n, ok := asNumber(args[0])
	if !ok {
		return notANumber(args[0])
	}
	return checkedNumber(n.Sqrt())
}

func Log(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("log")
	}
	n, ok := asNumber(args[0])
	if !ok {
		return notANumber(args[0])
	}
	return checkedNumber(n.Ln())
}

func Exp(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("exp")
	}
	n, ok := asNumber(args[0])
	if !ok {
		return notANumber(args[0])
	}
	return checkedNumber(n.Exp())
}

func Odd(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("odd")
	}
	n, ok := asNumber(args[0])
	if !ok {
		return notANumber(args[0])
	}
	return feelvalue.BooleanValue(n.Odd())
}

func Even(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("even")
	}
	n, ok := asNumber(args[0])
	if !ok {
		return notANumber(args[0])
	}
	return feelvalue.BooleanValue(n.Even())
}

// Number(string, decimalSeparator, groupingSeparator) parses a string into
// a Number, per the 3-arity overload the DMN spec defines for locale-style
// separators; the 1-arity form ignores separators.
func NumberFn(args []feelvalue.Value) feelvalue.Value {
	if len(args) < 1 || len(args) > 3 {
		return wrongArity("number")
	}
	s, ok := asString(args[0])
	if !ok {
		return notAString(args[0])
	}
	decSep, grpSep := ".", ""
	if len(args) >= 2 {
		v, ok := asString(args[1])
		if !ok {
			return notAString(args[1])
		}
		decSep = v
	}
	if len(args) == 3 {
		v, ok := asString(args[2])
		if !ok {
			return notAString(args[2])
		}
		grpSep = v
	}
	normalized := s
	if grpSep != "" {
		normalized = strings.ReplaceAll(normalized, grpSep, "")
	}
	if decSep != "." {
		normalized = strings.ReplaceAll(normalized, decSep, ".")
	}
	n, err := feelnum.FromString(normalized)
	if err != nil {
		return nullf(feelerr.ParseFailure, feelerr.MsgInvalidNumber, s)
	}
	return feelvalue.NumberValue{N: n}
}
