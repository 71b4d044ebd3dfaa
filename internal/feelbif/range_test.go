package feelbif

import (
	"testing"

	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func rng(start int64, startClosed bool, end int64, endClosed bool) feelvalue.Value {
	return feelvalue.RangeValue{Start: n(start), StartClosed: startClosed, End: n(end), EndClosed: endClosed}
}

func TestBeforeAndAfterOnPoints(t *testing.T) {
	if r := Before([]feelvalue.Value{n(1), n(2)}); r != feelvalue.BooleanValue(true) {
		t.Errorf("before(1,2): got %v", r)
	}
	if r := After([]feelvalue.Value{n(2), n(1)}); r != feelvalue.BooleanValue(true) {
		t.Errorf("after(2,1): got %v", r)
	}
}

func TestMeetsRequiresBothClosed(t *testing.T) {
	a := rng(1, true, 5, true)
	b := rng(5, true, 10, true)
	if r := Meets([]feelvalue.Value{a, b}); r != feelvalue.BooleanValue(true) {
		t.Errorf("meets: got %v", r)
	}
	open := rng(1, true, 5, false)
	if r := Meets([]feelvalue.Value{open, b}); r != feelvalue.BooleanValue(false) {
		t.Errorf("meets with open end: got %v", r)
	}
}

func TestDuringAndIncludes(t *testing.T) {
	inner := rng(3, true, 5, true)
	outer := rng(1, true, 10, true)
	if r := During([]feelvalue.Value{inner, outer}); r != feelvalue.BooleanValue(true) {
		t.Errorf("during: got %v", r)
	}
	if r := Includes([]feelvalue.Value{outer, inner}); r != feelvalue.BooleanValue(true) {
		t.Errorf("includes: got %v", r)
	}
}

func TestCoincides(t *testing.T) {
	a := rng(1, true, 5, true)
	b := rng(1, true, 5, true)
	if r := Coincides([]feelvalue.Value{a, b}); r != feelvalue.BooleanValue(true) {
		t.Errorf("coincides: got %v", r)
	}
}
