package feelbif

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelcompare"
	"github.com/cwbudde/go-dmn-feel/internal/feelerr"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// bound is one endpoint of a range, or of a scalar treated as the
// degenerate closed range [v, v] (spec.md's unification of point and
// range operands for the thirteen interval-relation BIFs below).
type bound struct {
	v      feelvalue.Value
	closed bool
}

func asInterval(v feelvalue.Value) (start, end bound) {
	if r, ok := v.(feelvalue.RangeValue); ok {
		return bound{r.Start, r.StartClosed}, bound{r.End, r.EndClosed}
	}
	return bound{v, true}, bound{v, true}
}

func cmpBound(a, b bound) (int, bool) {
	return feelcompare.Compare(a.v, b.v)
}

func relationNull(name string) feelvalue.Value {
	return nullf(feelerr.TypeMismatch, feelerr.MsgIncompatibleTypes, name, name)
}

// Before implements `before(a, b)`. Unlike the buggy reference behavior
// this does not hardcode false for two dates: it compares through
// feelcompare like every other operand pair.
func Before(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("before")
	}
	_, aEnd := asInterval(args[0])
	bStart, _ := asInterval(args[1])
	cmp, ok := cmpBound(aEnd, bStart)
	if !ok {
		return relationNull("before")
	}
	if cmp < 0 {
		return feelvalue.BooleanValue(true)
	}
	if cmp == 0 && (!aEnd.closed || !bStart.closed) {
		return feelvalue.BooleanValue(true)
	}
	return feelvalue.BooleanValue(false)
}

func After(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("after")
	}
	return Before([]feelvalue.Value{args[1], args[0]})
}

func Meets(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("meets")
	}
	_, aEnd := asInterval(args[0])
	bStart, _ := asInterval(args[1])
	cmp, ok := cmpBound(aEnd, bStart)
	if !ok {
		return relationNull("meets")
	}
	return feelvalue.BooleanValue(cmp == 0 && aEnd.closed && bStart.closed)
}

func MetBy(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("met by")
	}
	return Meets([]feelvalue.Value{args[1], args[0]})
}

// Overlaps implements `overlaps(a, b)`: a starts no later than b, and a's
// end reaches into b and lies strictly before b's end.
func Overlaps(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("overlaps")
	}
	aStart, aEnd := asInterval(args[0])
	bStart, bEnd := asInterval(args[1])
	c1, ok1 := cmpBound(aStart, bStart)
	c2, ok2 := cmpBound(aEnd, bStart)
	c3, ok3 := cmpBound(aEnd, bEnd)
	if !ok1 || !ok2 || !ok3 {
		return relationNull("overlaps")
	}
	return feelvalue.BooleanValue(c1 <= 0 && c2 > 0 && c3 < 0)
}

// OverlappedBy implements `overlapped by(a, b)`, the mirror of Overlaps
// (equivalent to overlaps(b, a)). This is the genuine, distinct
// counterpart the reference implementation's overlaps-before bug failed
// to provide — it is not simply an alias back onto Overlaps.
func OverlappedBy(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("overlapped by")
	}
	return Overlaps([]feelvalue.Value{args[1], args[0]})
}

func Starts(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("starts")
	}
	aStart, aEnd := asInterval(args[0])
	bStart, bEnd := asInterval(args[1])
	c1, ok1 := cmpBound(aStart, bStart)
	c2, ok2 := cmpBound(aEnd, bEnd)
	if !ok1 || !ok2 {
		return relationNull("starts")
	}
	return feelvalue.BooleanValue(c1 == 0 && c2 <= 0)
}

func StartedBy(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("started by")
	}
	return Starts([]feelvalue.Value{args[1], args[0]})
}

func Finishes(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("finishes")
	}
	aStart, aEnd := asInterval(args[0])
	bStart, bEnd := asInterval(args[1])
	c1, ok1 := cmpBound(aEnd, bEnd)
	c2, ok2 := cmpBound(aStart, bStart)
	if !ok1 || !ok2 {
		return relationNull("finishes")
	}
	return feelvalue.BooleanValue(c1 == 0 && c2 >= 0)
}

func FinishedBy(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("finished by")
	}
	return Finishes([]feelvalue.Value{args[1], args[0]})
}

func During(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("during")
	}
	aStart, aEnd := asInterval(args[0])
	bStart, bEnd := asInterval(args[1])
	c1, ok1 := cmpBound(aStart, bStart)
	c2, ok2 := cmpBound(aEnd, bEnd)
	if !ok1 || !ok2 {
		return relationNull("during")
	}
	return feelvalue.BooleanValue(c1 >= 0 && c2 <= 0)
}

func Includes(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("includes")
	}
	return During([]feelvalue.Value{args[1], args[0]})
}

func Coincides(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("coincides")
	}
	aStart, aEnd := asInterval(args[0])
	bStart, bEnd := asInterval(args[1])
	c1, ok1 := cmpBound(aStart, bStart)
	c2, ok2 := cmpBound(aEnd, bEnd)
	if !ok1 || !ok2 {
		return relationNull("coincides")
	}
	return feelvalue.BooleanValue(c1 == 0 && c2 == 0)
}
