package feeltime

import "testing"

func TestDTParseShouldPass(t *testing.T) {
	cases := []struct {
		text string
		want int64
	}{
		{"P1D", nanosInDay},
		{"PT0.999S", 999_000_000},
		{"PT1M0.987987987S", 60*nanosInSecond + 987987987},
	}
	for _, c := range cases {
		got, err := ParseDaysAndTimeDuration(c.text)
		if err != nil {
			t.Fatalf("parse(%q): %v", c.text, err)
		}
		if got.Nanos().Int64() != c.want {
			t.Errorf("parse(%q) = %s nanos, want %d", c.text, got.Nanos().String(), c.want)
		}
	}
}

func TestDTParseShouldFail(t *testing.T) {
	for _, s := range []string{
		"P", "-P", "PT", "-PT", "T", "-T", "P11",
		"PT1S1M", "PT2M3H12S",
	} {
		if _, err := ParseDaysAndTimeDuration(s); err == nil {
			t.Errorf("parse(%q) should have failed", s)
		}
	}
}

func TestDTString(t *testing.T) {
	d := NewDaysAndTimeDurationFromInt64(0)
	if d.String() != "PT0S" {
		t.Fatalf("zero duration = %q, want PT0S", d.String())
	}
}

func TestDTAbsAndCompare(t *testing.T) {
	a := NewDaysAndTimeDurationFromInt64(-100)
	if a.Abs().Compare(NewDaysAndTimeDurationFromInt64(100)) != 0 {
		t.Fatal("abs(-100ns) should equal 100ns")
	}
}
