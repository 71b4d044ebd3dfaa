package feelcompare

import (
	"testing"

	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func num(n int64) feelvalue.Value { return feelvalue.NumberValue{N: feelnum.FromInt64(n)} }

func TestCompareNumbers(t *testing.T) {
	cmp, ok := Compare(num(1), num(2))
	if !ok || cmp >= 0 {
		t.Errorf("expected 1 < 2, got cmp=%d ok=%v", cmp, ok)
	}
}

func TestCompareCrossTypeIsIncomparable(t *testing.T) {
	_, ok := Compare(num(1), feelvalue.StringValue("1"))
	if ok {
		t.Errorf("expected number/string pair to be incomparable")
	}
}

func TestCompareStringsLexicographic(t *testing.T) {
	cmp, ok := Compare(feelvalue.StringValue("apple"), feelvalue.StringValue("banana"))
	if !ok || cmp >= 0 {
		t.Errorf("expected apple < banana, got cmp=%d ok=%v", cmp, ok)
	}
}

func TestCompareBooleans(t *testing.T) {
	cmp, ok := Compare(feelvalue.BooleanValue(false), feelvalue.BooleanValue(true))
	if !ok || cmp >= 0 {
		t.Errorf("expected false < true, got cmp=%d ok=%v", cmp, ok)
	}
}
