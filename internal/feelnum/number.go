// Package feelnum implements the FEEL number type (C2): a thin semantic
// layer over the decimal kernel in internal/feeldecimal adding comparison,
// operator overloading, string<->number conversion, and checked host
// integer conversions.
package feelnum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/go-dmn-feel/internal/feeldecimal"
)

// Number is a FEEL number. The zero value is not meaningful; use Zero, One,
// Two, Nano, Billion, or one of the constructors.
type Number struct {
	d feeldecimal.Decimal
}

// IsFinite reports whether this Number holds a usable value. A non-finite
// Number can only arise transiently inside an arithmetic expression; the
// evaluator (internal/feeleval) must convert it to Null before it escapes
// to a Value.
func (n Number) IsFinite() bool { return n.d.IsFinite() }

// NonFinite reports why n is not finite ("NaN", "Infinity", "-Infinity",
// "division by zero"), or "" if n is finite.
func (n Number) NonFinite() string { return n.d.NonFinite() }

// FromString parses a FEEL numeric literal.
func FromString(s string) (Number, error) {
	d, err := feeldecimal.FromString(s)
	if err != nil {
		return Number{}, err
	}
	return Number{d: d}, nil
}

// FromInt64 builds an exact integral Number.
func FromInt64(n int64) Number { return Number{d: feeldecimal.FromInt64(n)} }

// New builds a Number equal to n * 10**s, matching the source's
// `FeelNumber::new(n, s)` constructor (an integer coefficient with an
// explicit exponent, so New(1234567, -4) is 123.4567).
func New(n int64, s int32) Number {
	return Number{d: feeldecimal.ScaleB(feeldecimal.FromInt64(n), s)}
}

var (
	zero = FromInt64(0)
	one  = FromInt64(1)
	two  = FromInt64(2)
	ten  = FromInt64(10)
)

// Zero, One, Two are the small integer constants used throughout the
// evaluator (e.g. even/odd testing uses Two as the modulus).
func Zero() Number { return zero }
func One() Number  { return one }
func Two() Number  { return two }

// Nano is 10**-9, the constant used to convert between seconds and
// nanoseconds when building DaysAndTimeDuration values from fractional
// seconds.
func Nano() Number { return Number{d: feeldecimal.ScaleB(one.d, -9)} }

// Billion is 10**9.
func Billion() Number { return Number{d: feeldecimal.ScaleB(one.d, 9)} }

// String renders n in plain decimal notation, never scientific (a reduced
// 10 renders as "10", not "1E+1").
func (n Number) String() string {
	s := n.d.ToString()
	if n.IsZero() && strings.ContainsAny(s, "eE") {
		return "0"
	}
	return ScientificToPlain(s)
}

// Add, Sub, Mul, Div implement FEEL's arithmetic operators. Every result is
// reduced (trailing fractional zeros stripped), matching the source's
// operator overloads which all call dec_reduce on their result.
func (n Number) Add(m Number) Number { return Number{d: feeldecimal.Reduce(feeldecimal.Add(n.d, m.d))} }
func (n Number) Sub(m Number) Number { return Number{d: feeldecimal.Reduce(feeldecimal.Sub(n.d, m.d))} }
func (n Number) Mul(m Number) Number { return Number{d: feeldecimal.Reduce(feeldecimal.Mul(n.d, m.d))} }
func (n Number) Div(m Number) Number { return Number{d: feeldecimal.Reduce(feeldecimal.Quo(n.d, m.d))} }
func (n Number) Neg() Number         { return Number{d: feeldecimal.Neg(n.d)} }
func (n Number) Abs() Number         { return Number{d: feeldecimal.Abs(n.d)} }

// Mod implements FEEL's flooring modulo: a mod b = a - b * floor(a/b).
// Division by zero yields a non-finite Number.
func (n Number) Mod(m Number) Number {
	if !n.IsFinite() || !m.IsFinite() || m.d.IsZero() {
		return Number{d: feeldecimal.Quo(n.d, m.d)} // carries the non-finite reason
	}
	quotient := feeldecimal.Quo(n.d, m.d)
	floored := feeldecimal.Floor(quotient)
	return Number{d: feeldecimal.Reduce(feeldecimal.Sub(n.d, feeldecimal.Mul(m.d, floored)))}
}

func (n Number) Floor() Number   { return Number{d: feeldecimal.Reduce(feeldecimal.Floor(n.d))} }
func (n Number) Ceiling() Number { return Number{d: feeldecimal.Reduce(feeldecimal.Ceiling(n.d))} }
func (n Number) Trunc() Number   { return Number{d: feeldecimal.Reduce(feeldecimal.Trunc(n.d))} }
func (n Number) Fract() Number   { return Number{d: feeldecimal.Fract(n.d)} }

// Sqrt, Ln, Exp, Pow delegate to the decimal kernel and may return a
// non-finite Number for out-of-domain inputs (callers surface Null).
func (n Number) Sqrt() Number     { return Number{d: feeldecimal.Sqrt(n.d)} }
func (n Number) Ln() Number       { return Number{d: feeldecimal.Ln(n.d)} }
func (n Number) Exp() Number      { return Number{d: feeldecimal.Exp(n.d)} }
func (n Number) Pow(m Number) Number { return Number{d: feeldecimal.Pow(n.d, m.d)} }
func (n Number) Square() Number   { return n.Pow(two) }

// Round rounds n to `scale` fractional digits using ROUND_HALF_EVEN, i.e.
// Rescale(-scale), matching the source's `round(rhs) = rescale(self,
// -rhs)`.
func (n Number) Round(scale int32) Number {
	return Number{d: feeldecimal.Rescale(n.d, -scale)}
}

// Decimal truncates/rounds n to `scale` digits; this is the same operation
// as Round, exposed under the name the `decimal(n, scale)` BIF uses.
func (n Number) Decimal(scale int32) Number { return n.Round(scale) }

// Even, Odd, IsInteger, IsOne, IsZero, IsNegative, IsPositive are predicate
// methods, kept here (not reimplemented in internal/feelbif) per the
// source's layering: `even`/`odd` are FeelNumber methods the BIF layer
// thinly wraps.
func (n Number) IsInteger() bool { return n.d.IsInteger() }
func (n Number) IsZero() bool    { return n.d.IsZero() }
func (n Number) IsNegative() bool { return n.d.IsNegative() }
func (n Number) IsPositive() bool { return n.d.IsPositive() }
func (n Number) IsOne() bool      { return n.Cmp(one) == 0 }

func (n Number) Even() bool {
	return n.IsInteger() && n.Mod(two).IsZero()
}

func (n Number) Odd() bool {
	return n.IsInteger() && !n.Mod(two).IsZero()
}

// Ordering mirrors cmp::Ordering: Less, Equal, Greater.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

// Cmp returns the total order of two finite numbers. -0 and +0 compare
// equal. Callers must not call Cmp on non-finite numbers (NaN never
// reaches this layer, per spec.md §4.2).
func (n Number) Cmp(m Number) Ordering {
	switch feeldecimal.Compare(n.d, m.d) {
	case -1:
		return Less
	case 1:
		return Greater
	default:
		return Equal
	}
}

// ToInt64 converts n to an int64 by rounding to the nearest integer
// (ROUND_HALF_EVEN) and checking the int64 range. It does not go through
// n's string form, so a value with a fractional part is rounded, not
// rejected.
func (n Number) ToInt64() (int64, error) {
	return n.d.ToInt64()
}

// ScientificToPlain expands a scientific-notation decimal string into
// plain decimal digits, e.g. "1.23E+4" -> "12300", "1E-23" ->
// "0.00000000000000000000001". It is a faithful port of the source's
// scientific_to_plain function.
func ScientificToPlain(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	eIdx := strings.IndexAny(s, "eE")
	if eIdx < 0 {
		if neg {
			return "-" + s
		}
		return s
	}
	mantissa := s[:eIdx]
	expPart := s[eIdx+1:]
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		if neg {
			return "-" + s
		}
		return s
	}
	dotIdx := strings.IndexByte(mantissa, '.')
	var intPart, fracPart string
	if dotIdx < 0 {
		intPart, fracPart = mantissa, ""
	} else {
		intPart, fracPart = mantissa[:dotIdx], mantissa[dotIdx+1:]
	}
	digits := intPart + fracPart
	// pointPos is the position of the decimal point within `digits`,
	// counted from the left, before applying the exponent shift.
	pointPos := len(intPart) + exp

	var out string
	switch {
	case pointPos <= 0:
		out = "0." + strings.Repeat("0", -pointPos) + digits
	case pointPos >= len(digits):
		out = digits + strings.Repeat("0", pointPos-len(digits))
	default:
		out = digits[:pointPos] + "." + digits[pointPos:]
	}
	out = trimPlain(out)
	if neg {
		return "-" + out
	}
	return out
}

func trimPlain(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return "0"
	}
	return s
}

// Validate is a convenience used by BIF wrappers to reject a non-finite
// intermediate result with a formatted error, matching the kernel's "never
// panic, always produce a diagnosable sentinel" contract.
func (n Number) Validate() error {
	if !n.IsFinite() {
		return fmt.Errorf("non-finite numeric result: %s", n.NonFinite())
	}
	return nil
}
