package feelnum

import "testing"

func TestDecimalRound(t *testing.T) {
	n := New(1234567, -4)
	got := n.Round(2)
	if got.String() != "123.46" {
		t.Fatalf("round(1234567e-4, 2) = %s, want 123.46", got.String())
	}

	m := New(1634567, -4)
	got2 := m.Round(-2)
	if got2.String() != "2E+2" && got2.String() != "200" {
		t.Fatalf("round(1634567e-4, -2) = %s, want 200", got2.String())
	}
}

func mustNum(t *testing.T, s string) Number {
	t.Helper()
	n, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q): %v", s, err)
	}
	return n
}

func TestFlooringModulo(t *testing.T) {
	got := mustNum(t, "-10.1").Mod(mustNum(t, "4.5"))
	if got.String() != "3.4" {
		t.Fatalf("modulo(-10.1, 4.5) = %s, want 3.4", got.String())
	}
	got2 := mustNum(t, "10.1").Mod(mustNum(t, "-4.5"))
	if got2.String() != "-3.4" {
		t.Fatalf("modulo(10.1, -4.5) = %s, want -3.4", got2.String())
	}
}

func TestEvenOdd(t *testing.T) {
	for n := int64(-6); n <= 6; n++ {
		x := FromInt64(n)
		if x.Even() == x.Odd() {
			t.Fatalf("even(%d) and odd(%d) must disagree", n, n)
		}
	}
}

func TestScientificToPlain(t *testing.T) {
	cases := map[string]string{
		"1.23E+4": "12300",
		"1E-23":   "0.00000000000000000000001",
	}
	for in, want := range cases {
		if got := ScientificToPlain(in); got != want {
			t.Errorf("ScientificToPlain(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCmpTotalOrder(t *testing.T) {
	a, b := mustNum(t, "1"), mustNum(t, "2")
	if a.Cmp(b) != Less {
		t.Fatal("1 should be less than 2")
	}
	if b.Cmp(a) != Greater {
		t.Fatal("2 should be greater than 1")
	}
	if a.Cmp(a) != Equal {
		t.Fatal("1 should equal itself")
	}
}

func TestAdditionIdentities(t *testing.T) {
	x := mustNum(t, "7.25")
	if x.Add(Zero()).Cmp(x) != Equal {
		t.Fatal("x + 0 != x")
	}
	if x.Sub(x).Cmp(Zero()) != Equal {
		t.Fatal("x - x != 0")
	}
	if x.Mul(One()).Cmp(x) != Equal {
		t.Fatal("x * 1 != x")
	}
	if x.Mul(Zero()).Cmp(Zero()) != Equal {
		t.Fatal("x * 0 != 0")
	}
}
