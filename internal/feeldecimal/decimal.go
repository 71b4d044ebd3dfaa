package feeldecimal

import (
	"fmt"

	"github.com/cockroachdb/apd/v2"
)

// Decimal is a 34-digit decimal128-equivalent value. The zero value is not
// meaningful; construct one with FromString, FromInt64, or Zero.
type Decimal struct {
	d apd.Decimal
	// nonFinite carries the reason a value could not be represented as a
	// finite decimal (e.g. the result of ln(0) or 0**0). A Decimal in this
	// state carries no usable numeric value; every caller must check
	// IsFinite before reading it.
	nonFinite string
}

// NonFinite reports the reason this Decimal has no finite value, or "" if
// it is finite.
func (x Decimal) NonFinite() string { return x.nonFinite }

// IsFinite reports whether x holds a usable finite value.
func (x Decimal) IsFinite() bool { return x.nonFinite == "" }

func finite(d apd.Decimal) Decimal { return Decimal{d: d} }

func nonFinite(reason string) Decimal { return Decimal{nonFinite: reason} }

// Zero is the decimal value 0.
func Zero() Decimal {
	var d apd.Decimal
	d.SetFinite(0, 0)
	return finite(d)
}

// FromString parses a decimal literal of the form accepted at the FEEL
// boundary: [+-]?digits[.digits]?([eE][+-]?digits)?.
func FromString(s string) (Decimal, error) {
	var d apd.Decimal
	_, _, err := d.SetString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("feeldecimal: invalid decimal literal %q: %w", s, err)
	}
	return finite(d), nil
}

// FromInt64 constructs an exact decimal from a host integer.
func FromInt64(n int64) Decimal {
	var d apd.Decimal
	d.SetFinite(n, 0)
	return finite(d)
}

// ToString renders the canonical decimal form. Non-finite values render as
// one of "NaN", "Infinity", "-Infinity".
func (x Decimal) ToString() string {
	if !x.IsFinite() {
		return x.nonFinite
	}
	return x.d.Text('G')
}

func apply2(x, y Decimal, op func(z, a, b *apd.Decimal) (apd.Condition, error)) Decimal {
	if !x.IsFinite() || !y.IsFinite() {
		return nonFinite("NaN")
	}
	var z apd.Decimal
	cond, err := op(&z, &x.d, &y.d)
	if err != nil || cond.Overflow() {
		return nonFinite(overflowReason(cond))
	}
	return finite(z)
}

func overflowReason(cond apd.Condition) string {
	if cond.Overflow() {
		return "Infinity"
	}
	return "NaN"
}

// Add, Sub, Mul, Quo implement + - × ÷. Quo with a zero divisor reports a
// non-finite result whose reason is "division by zero"; the FEEL boundary
// (feelnum) is responsible for rendering that as Null.
func Add(x, y Decimal) Decimal { return apply2(x, y, DefaultContext.Add) }
func Sub(x, y Decimal) Decimal { return apply2(x, y, DefaultContext.Sub) }
func Mul(x, y Decimal) Decimal { return apply2(x, y, DefaultContext.Mul) }

func Quo(x, y Decimal) Decimal {
	if !x.IsFinite() || !y.IsFinite() {
		return nonFinite("NaN")
	}
	if y.IsZero() {
		return nonFinite("division by zero")
	}
	var z apd.Decimal
	cond, err := DefaultContext.Quo(&z, &x.d, &y.d)
	if err != nil || cond.Overflow() {
		return nonFinite(overflowReason(cond))
	}
	return finite(z)
}

// Rem is the decimal remainder of x / y as defined by the decNumber
// contract (truncated-division remainder, same sign as x). FEEL's flooring
// modulo (feelnum.Mod) is built from this, not the other way around.
func Rem(x, y Decimal) Decimal {
	if !x.IsFinite() || !y.IsFinite() {
		return nonFinite("NaN")
	}
	if y.IsZero() {
		return nonFinite("division by zero")
	}
	var z apd.Decimal
	cond, err := DefaultContext.Rem(&z, &x.d, &y.d)
	if err != nil || cond.Overflow() {
		return nonFinite(overflowReason(cond))
	}
	return finite(z)
}

// Abs returns the absolute value of x.
func Abs(x Decimal) Decimal {
	if !x.IsFinite() {
		return x
	}
	var z apd.Decimal
	z.Abs(&x.d)
	return finite(z)
}

// Neg returns the negation of x.
func Neg(x Decimal) Decimal {
	if !x.IsFinite() {
		return x
	}
	var z apd.Decimal
	z.Neg(&x.d)
	return finite(z)
}

// Sqrt returns the square root of x. A negative operand yields a non-finite
// "NaN" result (there is no real square root), matching dec_square_root.
func Sqrt(x Decimal) Decimal {
	if !x.IsFinite() {
		return nonFinite("NaN")
	}
	if x.IsNegative() {
		return nonFinite("NaN")
	}
	var z apd.Decimal
	cond, err := DefaultContext.Sqrt(&z, &x.d)
	if err != nil || cond.Overflow() {
		return nonFinite(overflowReason(cond))
	}
	return finite(z)
}

// Ln returns the natural logarithm of x. ln(0) is -Infinity; ln of a
// negative number is NaN, matching dec_ln's documented contract.
func Ln(x Decimal) Decimal {
	if !x.IsFinite() {
		return nonFinite("NaN")
	}
	if x.IsZero() {
		return nonFinite("-Infinity")
	}
	if x.IsNegative() {
		return nonFinite("NaN")
	}
	var z apd.Decimal
	cond, err := DefaultContext.Ln(&z, &x.d)
	if err != nil || cond.Overflow() {
		return nonFinite(overflowReason(cond))
	}
	return finite(z)
}

// Exp returns e**x.
func Exp(x Decimal) Decimal {
	if !x.IsFinite() {
		return nonFinite("NaN")
	}
	var z apd.Decimal
	cond, err := DefaultContext.Exp(&z, &x.d)
	if err != nil || cond.Overflow() {
		return nonFinite(overflowReason(cond))
	}
	return finite(z)
}

// Pow returns x**y. 0**0 is NaN, matching dec_power's documented contract.
func Pow(x, y Decimal) Decimal {
	if !x.IsFinite() || !y.IsFinite() {
		return nonFinite("NaN")
	}
	if x.IsZero() && y.IsZero() {
		return nonFinite("NaN")
	}
	var z apd.Decimal
	cond, err := DefaultContext.Pow(&z, &x.d, &y.d)
	if err != nil || cond.Overflow() {
		return nonFinite(overflowReason(cond))
	}
	return finite(z)
}

// Floor, Ceiling, and Trunc quantize x to the unit digit under a specific
// rounding rule, the same strategy the decNumber source uses internally.
func Floor(x Decimal) Decimal   { return quantizeToInteger(x, apd.RoundFloor) }
func Ceiling(x Decimal) Decimal { return quantizeCeiling(x) }
func Trunc(x Decimal) Decimal   { return quantizeToInteger(x, apd.RoundDown) }

func quantizeToInteger(x Decimal, rounding apd.Rounder) Decimal {
	if !x.IsFinite() {
		return x
	}
	ctx := contextWithRounding(rounding)
	var z apd.Decimal
	cond, err := ctx.Quantize(&z, &x.d, 0)
	if err != nil || cond.Overflow() {
		return nonFinite(overflowReason(cond))
	}
	return finite(z)
}

// quantizeCeiling implements dec_ceiling's documented normalization: a
// negative fractional value whose ceiling rounds to zero is normalized to
// +0, never -0.
func quantizeCeiling(x Decimal) Decimal {
	if !x.IsFinite() {
		return x
	}
	result := quantizeToInteger(x, apd.RoundCeiling)
	if result.IsFinite() && result.IsZero() && result.d.Negative {
		result.d.Negative = false
	}
	return result
}

// Fract returns x - trunc(x).
func Fract(x Decimal) Decimal {
	if !x.IsFinite() {
		return x
	}
	return Sub(x, Trunc(x))
}

// Rescale returns x quantized to the exponent given by scale, using
// ROUND_HALF_EVEN, matching dec_rescale: scale -2 keeps two digits after
// the decimal point, scale 2 rounds to hundreds.
func Rescale(x Decimal, scale int32) Decimal {
	if !x.IsFinite() {
		return x
	}
	var z apd.Decimal
	cond, err := DefaultContext.Quantize(&z, &x.d, scale)
	if err != nil || cond.Overflow() {
		return nonFinite(overflowReason(cond))
	}
	return finite(z)
}

// ScaleB returns x * 10**n, adjusting the exponent directly (no rounding),
// matching dec_scale_b.
func ScaleB(x Decimal, n int32) Decimal {
	if !x.IsFinite() {
		return x
	}
	var z apd.Decimal
	z.Set(&x.d)
	z.Exponent += n
	cond, err := DefaultContext.Reduce(&z, &z)
	if err != nil || cond.Overflow() {
		return nonFinite(overflowReason(cond))
	}
	return finite(z)
}

// Reduce strips trailing fractional zeros from x (decNumber's "idealized
// exponent" reduction), e.g. 1.230 becomes 1.23.
func Reduce(x Decimal) Decimal {
	if !x.IsFinite() {
		return x
	}
	var z apd.Decimal
	_, cond, err := z.Reduce(&x.d)
	if err != nil || cond.Overflow() {
		return nonFinite(overflowReason(cond))
	}
	return finite(z)
}

// Compare returns -1, 0, or 1 per the usual Cmp contract. Comparison is an
// exact operation and never produces a non-finite result for two finite
// operands.
func Compare(x, y Decimal) int {
	return x.d.Cmp(&y.d)
}

// IsInteger, IsNegative, IsPositive, IsZero are the predicates C1 exposes.
func (x Decimal) IsInteger() bool {
	if !x.IsFinite() {
		return false
	}
	return Fract(x).IsZero()
}

func (x Decimal) IsNegative() bool {
	return x.IsFinite() && x.d.Negative && !x.d.IsZero()
}

func (x Decimal) IsPositive() bool {
	return x.IsFinite() && !x.d.Negative && !x.d.IsZero()
}

func (x Decimal) IsZero() bool {
	return x.IsFinite() && x.d.IsZero()
}

// ToInt64 converts x to an int64 using ROUND_HALF_EVEN, matching
// dec_to_i32/dec_to_u32's rounded conversion contract scaled up to 64 bits.
func (x Decimal) ToInt64() (int64, error) {
	if !x.IsFinite() {
		return 0, fmt.Errorf("feeldecimal: cannot convert non-finite value %q to int64", x.nonFinite)
	}
	var z apd.Decimal
	if _, err := DefaultContext.Quantize(&z, &x.d, 0); err != nil {
		return 0, err
	}
	return z.Int64()
}
