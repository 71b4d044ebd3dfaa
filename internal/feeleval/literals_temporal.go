package feeleval

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feelerr"
	"github.com/cwbudde/go-dmn-feel/internal/feelscope"
	"github.com/cwbudde/go-dmn-feel/internal/feeltime"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// compileAt compiles an `@"..."` temporal literal by trying each temporal
// grammar in turn, most-specific first (a bare date would also match as
// the date component of a date-and-time parse failure, so date-and-time is
// tried before date).
func compileAt(n feelast.At) Closure {
	v := parseTemporalLiteral(n.Text)
	return func(*feelscope.Scope) feelvalue.Value { return v }
}

func parseTemporalLiteral(text string) feelvalue.Value {
	if dt, err := feeltime.ParseDateTime(text); err == nil {
		return feelvalue.DateTimeValue{DT: dt}
	}
	if d, err := feeltime.ParseDate(text); err == nil {
		return feelvalue.DateValue{D: d}
	}
	if t, err := feeltime.ParseTime(text); err == nil {
		return feelvalue.TimeValue{T: t}
	}
	if d, err := feeltime.ParseDaysAndTimeDuration(text); err == nil {
		return feelvalue.DaysAndTimeDurationValue{D: d}
	}
	if d, err := feeltime.ParseYearsAndMonthsDuration(text); err == nil {
		return feelvalue.YearsAndMonthsDurationValue{D: d}
	}
	return nullf(feelerr.ParseFailure, "'%s' is not a valid temporal literal", text)
}
