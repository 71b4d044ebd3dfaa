package feelbif

import (
	"testing"

	"github.com/cwbudde/go-dmn-feel/internal/feeltime"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func date(y int64, m, d int) feelvalue.Value {
	dt, err := feeltime.NewDate(y, m, d)
	if err != nil {
		panic(err)
	}
	return feelvalue.DateValue{D: dt}
}

func TestDateFnFromComponents(t *testing.T) {
	r := DateFn([]feelvalue.Value{n(2024), n(3), n(15)})
	dv, ok := r.(feelvalue.DateValue)
	if !ok {
		t.Fatalf("expected DateValue, got %v", r)
	}
	if dv.D.String() != "2024-03-15" {
		t.Errorf("got %s", dv.D.String())
	}
}

func TestDurationFnPicksGrammar(t *testing.T) {
	dayTime := DurationFn([]feelvalue.Value{str("P1DT2H")})
	if _, ok := dayTime.(feelvalue.DaysAndTimeDurationValue); !ok {
		t.Errorf("expected day-time duration, got %T", dayTime)
	}
	yearMonth := DurationFn([]feelvalue.Value{str("P1Y2M")})
	if _, ok := yearMonth.(feelvalue.YearsAndMonthsDurationValue); !ok {
		t.Errorf("expected year-month duration, got %T", yearMonth)
	}
}

func TestYearsAndMonthsDurationFn(t *testing.T) {
	from := date(2020, 1, 31)
	to := date(2021, 3, 1)
	r := YearsAndMonthsDurationFn([]feelvalue.Value{from, to})
	d, ok := r.(feelvalue.YearsAndMonthsDurationValue)
	if !ok {
		t.Fatalf("expected duration, got %v", r)
	}
	if d.D.AsMonths() != 13 {
		t.Errorf("expected 13 months, got %d", d.D.AsMonths())
	}
}

func TestDayOfWeekAndMonthOfYear(t *testing.T) {
	d := date(2024, 7, 30)
	if r := DayOfWeek([]feelvalue.Value{d}); feelvalue.IsNull(r) {
		t.Errorf("unexpected null day of week")
	}
	if r := MonthOfYear([]feelvalue.Value{d}); r != feelvalue.StringValue("July") {
		t.Errorf("got %v", r)
	}
}
