package feelvalue

// TernaryEqual implements FEEL's ternary equality (C5/C8):
//   - Equality between a value and Null is always false, except Null =
//     Null which is true.
//   - Equality between two values of different concrete types (other than
//     Null) is indeterminate: reported as ok=false, which the caller (the
//     evaluator) surfaces as Null.
//   - For comparable pairs, the bool result is the usual structural
//     equality, with the context/list rules spec.md §4.5 states: contexts
//     must match on both sides' key sets (extra keys on either side means
//     not-equal), lists compare element-wise with equal length.
func TernaryEqual(a, b Value) (equal bool, ok bool) {
	_, aNull := a.(NullValue)
	_, bNull := b.(NullValue)
	if aNull && bNull {
		return true, true
	}
	if aNull || bNull {
		return false, true
	}

	switch av := a.(type) {
	case BooleanValue:
		bv, ok2 := b.(BooleanValue)
		if !ok2 {
			return false, false
		}
		return av == bv, true

	case NumberValue:
		bv, ok2 := b.(NumberValue)
		if !ok2 {
			return false, false
		}
		return av.N.Cmp(bv.N) == 0, true

	case StringValue:
		bv, ok2 := b.(StringValue)
		if !ok2 {
			return false, false
		}
		return av == bv, true

	case DateValue:
		bv, ok2 := b.(DateValue)
		if !ok2 {
			return false, false
		}
		return av.D.Compare(bv.D) == 0, true

	case TimeValue:
		bv, ok2 := b.(TimeValue)
		if !ok2 {
			return false, false
		}
		cmp, cok := av.T.Compare(bv.T)
		if !cok {
			return false, false
		}
		return cmp == 0, true

	case DateTimeValue:
		bv, ok2 := b.(DateTimeValue)
		if !ok2 {
			return false, false
		}
		cmp, cok := av.DT.Compare(bv.DT)
		if !cok {
			return false, false
		}
		return cmp == 0, true

	case DaysAndTimeDurationValue:
		bv, ok2 := b.(DaysAndTimeDurationValue)
		if !ok2 {
			return false, false
		}
		return av.D.Compare(bv.D) == 0, true

	case YearsAndMonthsDurationValue:
		bv, ok2 := b.(YearsAndMonthsDurationValue)
		if !ok2 {
			return false, false
		}
		return av.D.Compare(bv.D) == 0, true

	case ListValue:
		bv, ok2 := b.(ListValue)
		if !ok2 {
			return false, false
		}
		if len(av.Items) != len(bv.Items) {
			return false, true
		}
		for i := range av.Items {
			eq, eok := TernaryEqual(av.Items[i], bv.Items[i])
			if !eok {
				return false, false
			}
			if !eq {
				return false, true
			}
		}
		return true, true

	case *ContextValue:
		bv, ok2 := b.(*ContextValue)
		if !ok2 {
			return false, false
		}
		if av.Len() != bv.Len() {
			return false, true
		}
		for _, e := range av.Entries() {
			other, present := bv.GetEntry(e.Name)
			if !present {
				return false, true
			}
			eq, eok := TernaryEqual(e.Value, other)
			if !eok {
				return false, false
			}
			if !eq {
				return false, true
			}
		}
		return true, true

	case RangeValue:
		bv, ok2 := b.(RangeValue)
		if !ok2 {
			return false, false
		}
		startEq, sok := TernaryEqual(av.Start, bv.Start)
		endEq, eok := TernaryEqual(av.End, bv.End)
		if !sok || !eok {
			return false, false
		}
		return startEq && endEq && av.StartClosed == bv.StartClosed && av.EndClosed == bv.EndClosed, true

	default:
		return false, false
	}
}

// Is implements the `is` BIF: strict type-and-value identity, not ternary
// equality (e.g. is(1, 1.0) considers representation, not just numeric
// equivalence of two Numbers with different scale is still true since both
// are Number values with equal decimal value; `is` differs from `=` mainly
// in how it treats Null and cross-type comparisons: `is` never returns
// indeterminate, it returns a definite boolean).
func Is(a, b Value) bool {
	_, aNull := a.(NullValue)
	_, bNull := b.(NullValue)
	if aNull || bNull {
		return aNull && bNull
	}
	eq, ok := TernaryEqual(a, b)
	return ok && eq
}
