package feeltime

import "testing"

func TestYMParseShouldPass(t *testing.T) {
	cases := []struct {
		text string
		want int64
	}{
		{"P1M", 1}, {"-P1M", -1}, {"P1Y", 12}, {"-P1Y", -12},
		{"P1Y3M", 15}, {"-P1Y3M", -15},
		{"P999999999Y", 999999999 * monthsInYear},
		{"-P999999999Y", -999999999 * monthsInYear},
	}
	for _, c := range cases {
		got, err := ParseYearsAndMonthsDuration(c.text)
		if err != nil {
			t.Fatalf("parse(%q): %v", c.text, err)
		}
		if got.AsMonths() != c.want {
			t.Errorf("parse(%q) = %d months, want %d", c.text, got.AsMonths(), c.want)
		}
	}
}

func TestYMParseShouldFail(t *testing.T) {
	for _, s := range []string{
		"P", "-P", "K1Y1M", "-K1Y1M", "P1M1Y", "-P1M1Y", "P10", "-P10",
		"PY", "-PY", "PM", "-PM", "P1Y3MT1D", "-P1Y3MT1D",
	} {
		if _, err := ParseYearsAndMonthsDuration(s); err == nil {
			t.Errorf("parse(%q) should have failed", s)
		}
	}
}

func TestYMToString(t *testing.T) {
	cases := []struct {
		years, months int64
		want          string
	}{
		{0, 0, "P0M"}, {0, 1, "P1M"}, {0, -1, "-P1M"},
		{1, 0, "P1Y"}, {-1, 0, "-P1Y"},
		{2, 3, "P2Y3M"}, {-2, -3, "-P2Y3M"},
	}
	for _, c := range cases {
		got := NewYearsAndMonthsDuration(c.years, c.months).String()
		if got != c.want {
			t.Errorf("String(%d, %d) = %q, want %q", c.years, c.months, got, c.want)
		}
	}
}

func TestYMAbs(t *testing.T) {
	d, _ := ParseYearsAndMonthsDuration("P2Y3M")
	if d.Abs().String() != "P2Y3M" {
		t.Fatal("abs(P2Y3M) should be P2Y3M")
	}
	d2, _ := ParseYearsAndMonthsDuration("-P2Y3M")
	if d2.Abs().String() != "P2Y3M" {
		t.Fatal("abs(-P2Y3M) should be P2Y3M")
	}
}
