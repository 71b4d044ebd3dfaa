package feelbif

import (
	"testing"

	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func str(s string) feelvalue.Value { return feelvalue.StringValue(s) }

func TestSubstring(t *testing.T) {
	r := Substring([]feelvalue.Value{str("foobar"), n(4)})
	if r != feelvalue.StringValue("bar") {
		t.Errorf("got %v", r)
	}
	r2 := Substring([]feelvalue.Value{str("foobar"), n(-2)})
	if r2 != feelvalue.StringValue("ar") {
		t.Errorf("negative start: got %v", r2)
	}
}

func TestStringLengthCountsRunes(t *testing.T) {
	r := StringLength([]feelvalue.Value{str("café")})
	if r.(feelvalue.NumberValue).N.String() != "4" {
		t.Errorf("got %v", r)
	}
}

func TestUpperLowerCaseDoNotTrim(t *testing.T) {
	r := UpperCase([]feelvalue.Value{str(" abc ")})
	if r != feelvalue.StringValue(" ABC ") {
		t.Errorf("expected surrounding spaces preserved, got %q", r)
	}
}

func TestMatchesWithDotallFlag(t *testing.T) {
	r := Matches([]feelvalue.Value{str("a\nb"), str("a.b"), str("s")})
	if r != feelvalue.BooleanValue(true) {
		t.Errorf("expected dotall match across newline, got %v", r)
	}
}

func TestReplaceBackreference(t *testing.T) {
	r := Replace([]feelvalue.Value{str("2024-01-02"), str(`(\d+)-(\d+)-(\d+)`), str("$3/$2/$1")})
	if r != feelvalue.StringValue("02/01/2024") {
		t.Errorf("got %v", r)
	}
}

func TestSplit(t *testing.T) {
	r := Split([]feelvalue.Value{str("a, b,c"), str(",\\s*")})
	lv, ok := r.(feelvalue.ListValue)
	if !ok || len(lv.Items) != 3 {
		t.Fatalf("expected 3 parts, got %v", r)
	}
}

func TestStringJoinSkipsNulls(t *testing.T) {
	r := StringJoin([]feelvalue.Value{list(str("a"), feelvalue.Null(), str("b")), str("-")})
	if r != feelvalue.StringValue("a-b") {
		t.Errorf("got %v", r)
	}
}
