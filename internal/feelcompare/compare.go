// Package feelcompare implements the total ordering comparison shared by
// C8 (internal/feeleval's </>/between) and C9's ordering-dependent BIFs
// (min, max, and the range relations), so both layers agree on what "comparable" means
// without feelbif importing feeleval.
package feelcompare

import "github.com/cwbudde/go-dmn-feel/internal/feelvalue"

// Compare reports -1/0/1 for two values of the same comparable concrete
// type, or ok=false for anything else (cross-type pairs, or temporal
// values whose zone information makes ordering undefined, spec.md §4.8).
func Compare(l, r feelvalue.Value) (cmp int, ok bool) {
	switch a := l.(type) {
	case feelvalue.NumberValue:
		b, ok2 := r.(feelvalue.NumberValue)
		if !ok2 {
			return 0, false
		}
		return int(a.N.Cmp(b.N)), true

	case feelvalue.StringValue:
		b, ok2 := r.(feelvalue.StringValue)
		if !ok2 {
			return 0, false
		}
		switch {
		case a < b:
			return -1, true
		case a > b:
			return 1, true
		default:
			return 0, true
		}

	case feelvalue.BooleanValue:
		b, ok2 := r.(feelvalue.BooleanValue)
		if !ok2 {
			return 0, false
		}
		if a == b {
			return 0, true
		}
		if !bool(a) {
			return -1, true
		}
		return 1, true

	case feelvalue.DateValue:
		b, ok2 := r.(feelvalue.DateValue)
		if !ok2 {
			return 0, false
		}
		return a.D.Compare(b.D), true

	case feelvalue.TimeValue:
		b, ok2 := r.(feelvalue.TimeValue)
		if !ok2 {
			return 0, false
		}
		return a.T.Compare(b.T)

	case feelvalue.DateTimeValue:
		b, ok2 := r.(feelvalue.DateTimeValue)
		if !ok2 {
			return 0, false
		}
		return a.DT.Compare(b.DT)

	case feelvalue.DaysAndTimeDurationValue:
		b, ok2 := r.(feelvalue.DaysAndTimeDurationValue)
		if !ok2 {
			return 0, false
		}
		return a.D.Compare(b.D), true

	case feelvalue.YearsAndMonthsDurationValue:
		b, ok2 := r.(feelvalue.YearsAndMonthsDurationValue)
		if !ok2 {
			return 0, false
		}
		return a.D.Compare(b.D), true

	default:
		return 0, false
	}
}
