// Package feeldecimal implements the decimal128-equivalent numeric kernel
// that every FEEL number is built on: 34 significant digits, an exponent
// range of [-6143, 6144], and ROUND_HALF_EVEN as the default rounding mode.
//
// The kernel never panics. Operations that the underlying decNumber-style
// contract defines as non-finite (division by zero, ln of a non-positive
// number, 0**0, overflow past the exponent bounds) return a non-finite
// Decimal the caller detects with IsFinite (NonFinite gives the reason);
// it is the caller's job (feelnum, and
// ultimately feeleval) to turn that into a FEEL Null.
package feeldecimal

import "github.com/cockroachdb/apd/v2"

// Digits is the fixed working precision of every FEEL number, matching the
// IEEE 754-2008 decimal128 format the source kernel is built on.
const Digits = 34

// MaxExponent and MinExponent bound the decimal128 exponent range.
const (
	MaxExponent = 6144
	MinExponent = -6143
)

// DefaultContext is the process-wide, immutable numeric context every
// arithmetic operation in this package uses. It is constructed once and
// never mutated, mirroring the decNumber source's single shared
// "dec_context_default()" and the teacher's pattern of package-level
// singletons built in an init function (see internal/interp/builtins's
// registry construction).
var DefaultContext = &apd.Context{
	Precision:   Digits,
	MaxExponent: MaxExponent,
	MinExponent: MinExponent,
	Rounding:    apd.RoundHalfEven,
	Traps:       0,
}

// contextWithRounding returns a copy of DefaultContext with a different
// rounding mode, used by Floor/Ceiling/Trunc which quantize to the unit
// digit under a specific rounding rule rather than the default.
func contextWithRounding(rounding apd.Rounder) *apd.Context {
	c := *DefaultContext
	c.Rounding = rounding
	return &c
}
