package dispatch

import (
	"testing"

	"github.com/cwbudde/go-dmn-feel/internal/feelbif"
	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
	"github.com/cwbudde/go-dmn-feel/internal/feeltime"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func num(n int64) feelvalue.Value { return feelvalue.NumberValue{N: feelnum.FromInt64(n)} }

func closedRange(start, end int64) feelvalue.Value {
	return feelvalue.RangeValue{Start: num(start), StartClosed: true, End: num(end), EndClosed: true}
}

// TestOverlapsBeforeAfterAreDistinct guards against the reference
// implementation's known bug, where the "overlaps before" built-in
// delegated to the "overlaps after" implementation. Here the two
// directions must disagree on an asymmetric pair of ranges.
func TestOverlapsBeforeAfterAreDistinct(t *testing.T) {
	a := closedRange(1, 5)
	b := closedRange(3, 8)

	overlapsAB := feelbif.Overlaps([]feelvalue.Value{a, b})
	overlappedByAB := feelbif.OverlappedBy([]feelvalue.Value{a, b})

	abOverlaps, ok := overlapsAB.(feelvalue.BooleanValue)
	if !ok || !bool(abOverlaps) {
		t.Fatalf("expected overlaps(a, b) = true, got %v", overlapsAB)
	}
	abOverlappedBy, ok := overlappedByAB.(feelvalue.BooleanValue)
	if !ok || bool(abOverlappedBy) {
		t.Fatalf("expected overlapped by(a, b) = false, got %v", overlappedByAB)
	}

	overlapsBA := feelbif.Overlaps([]feelvalue.Value{b, a})
	overlappedByBA := feelbif.OverlappedBy([]feelvalue.Value{b, a})

	baOverlaps, ok := overlapsBA.(feelvalue.BooleanValue)
	if !ok || bool(baOverlaps) {
		t.Fatalf("expected overlaps(b, a) = false, got %v", overlapsBA)
	}
	baOverlappedBy, ok := overlappedByBA.(feelvalue.BooleanValue)
	if !ok || !bool(baOverlappedBy) {
		t.Fatalf("expected overlapped by(b, a) = true, got %v", overlappedByBA)
	}

	if abOverlaps == abOverlappedBy {
		t.Fatalf("overlaps and overlapped by must diverge on this asymmetric pair")
	}
}

// TestBeforeDatesComparesRealValues guards against the reference
// implementation's before(date, date) FIXME, which always returned false
// regardless of the actual dates.
func TestBeforeDatesComparesRealValues(t *testing.T) {
	early, err := feeltime.NewDate(2024, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	late, err := feeltime.NewDate(2024, 12, 31)
	if err != nil {
		t.Fatal(err)
	}
	earlyV := feelvalue.DateValue{D: early}
	lateV := feelvalue.DateValue{D: late}

	result := feelbif.Before([]feelvalue.Value{earlyV, lateV})
	b, ok := result.(feelvalue.BooleanValue)
	if !ok || !bool(b) {
		t.Fatalf("expected before(early, late) = true, got %v", result)
	}

	reversed := feelbif.Before([]feelvalue.Value{lateV, earlyV})
	b2, ok := reversed.(feelvalue.BooleanValue)
	if !ok || bool(b2) {
		t.Fatalf("expected before(late, early) = false, got %v", reversed)
	}
}

func TestDefaultRegistryCoversCoreNames(t *testing.T) {
	r := Default()
	for _, name := range []string{"sum", "string length", "before", "overlaps", "context merge", "date"} {
		if _, ok := r.Lookup(name); !ok {
			t.Errorf("expected built-in %q to be registered", name)
		}
	}
	if r.Count() < 80 {
		t.Errorf("expected at least 80 built-ins registered, got %d", r.Count())
	}
}
