package feelbif

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelerr"
	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
	"github.com/cwbudde/go-dmn-feel/internal/feeltime"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

func asDate(v feelvalue.Value) (feeltime.Date, bool) {
	switch t := v.(type) {
	case feelvalue.DateValue:
		return t.D, true
	case feelvalue.DateTimeValue:
		return t.DT.Date, true
	default:
		return feeltime.Date{}, false
	}
}

// DateFn implements the `date(...)` conversion BIF: date(string), date(y,m,d)
// and date(date-and-time) forms.
func DateFn(args []feelvalue.Value) feelvalue.Value {
	switch len(args) {
	case 1:
		switch v := args[0].(type) {
		case feelvalue.StringValue:
			d, err := feeltime.ParseDate(string(v))
			if err != nil {
				return nullf(feelerr.ParseFailure, feelerr.MsgInvalidDate, string(v))
			}
			return feelvalue.DateValue{D: d}
		case feelvalue.DateTimeValue:
			return feelvalue.DateValue{D: v.DT.Date}
		default:
			return notAString(args[0])
		}
	case 3:
		y, ok1 := asNumber(args[0])
		m, ok2 := asNumber(args[1])
		day, ok3 := asNumber(args[2])
		if !ok1 || !ok2 || !ok3 {
			return notANumber(args[0])
		}
		yi, _ := y.ToInt64()
		mi, _ := m.ToInt64()
		di, _ := day.ToInt64()
		d, err := feeltime.NewDate(yi, int(mi), int(di))
		if err != nil {
			return nullf(feelerr.OutOfRange, feelerr.MsgInvalidDatePart, "day", di)
		}
		return feelvalue.DateValue{D: d}
	default:
		return wrongArity("date")
	}
}

// TimeFn implements the `time(...)` conversion BIF.
func TimeFn(args []feelvalue.Value) feelvalue.Value {
	switch len(args) {
	case 1:
		switch v := args[0].(type) {
		case feelvalue.StringValue:
			t, err := feeltime.ParseTime(string(v))
			if err != nil {
				return nullf(feelerr.ParseFailure, feelerr.MsgInvalidTime, string(v))
			}
			return feelvalue.TimeValue{T: t}
		case feelvalue.DateTimeValue:
			return feelvalue.TimeValue{T: v.DT.Time}
		default:
			return notAString(args[0])
		}
	case 3, 4:
		h, ok1 := asNumber(args[0])
		m, ok2 := asNumber(args[1])
		s, ok3 := asNumber(args[2])
		if !ok1 || !ok2 || !ok3 {
			return notANumber(args[0])
		}
		hi, _ := h.ToInt64()
		mi, _ := m.ToInt64()
		si, _ := s.ToInt64()
		var zone feeltime.Zone
		if len(args) == 4 {
			switch z := args[3].(type) {
			case feelvalue.DaysAndTimeDurationValue:
				nanos, ok := z.D.TotalNanos()
				if !ok {
					return nullf(feelerr.OutOfRange, feelerr.MsgInvalidTime, "zone offset")
				}
				zone = feeltime.Zone{HasOffset: true, OffsetSec: int(nanos / 1_000_000_000)}
			case feelvalue.StringValue:
				zone = feeltime.Zone{Name: string(z)}
			default:
				return notAString(args[3])
			}
		}
		t, err := feeltime.NewTime(int(hi), int(mi), int(si), 0, zone)
		if err != nil {
			return nullf(feelerr.OutOfRange, feelerr.MsgInvalidDatePart, "hour", hi)
		}
		return feelvalue.TimeValue{T: t}
	default:
		return wrongArity("time")
	}
}

// DateAndTimeFn implements the `date and time(...)` conversion BIF.
func DateAndTimeFn(args []feelvalue.Value) feelvalue.Value {
	switch len(args) {
	case 1:
		s, ok := asString(args[0])
		if !ok {
			return notAString(args[0])
		}
		dt, err := feeltime.ParseDateTime(s)
		if err != nil {
			return nullf(feelerr.ParseFailure, feelerr.MsgInvalidDateTime, s)
		}
		return feelvalue.DateTimeValue{DT: dt}
	case 2:
		d, ok1 := asDate(args[0])
		timeVal, ok2 := args[1].(feelvalue.TimeValue)
		if !ok1 || !ok2 {
			return nullf(feelerr.TypeMismatch, feelerr.MsgNotATemporal)
		}
		return feelvalue.DateTimeValue{DT: feeltime.DateTime{Date: d, Time: timeVal.T}}
	default:
		return wrongArity("date and time")
	}
}

// DurationFn implements the `duration(string)` conversion BIF, trying the
// day-time grammar before the year-month grammar (the two are mutually
// exclusive by their "P...T..." vs "P...Y...M..." leading tokens).
func DurationFn(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("duration")
	}
	s, ok := asString(args[0])
	if !ok {
		return notAString(args[0])
	}
	if d, err := feeltime.ParseDaysAndTimeDuration(s); err == nil {
		return feelvalue.DaysAndTimeDurationValue{D: d}
	}
	if d, err := feeltime.ParseYearsAndMonthsDuration(s); err == nil {
		return feelvalue.YearsAndMonthsDurationValue{D: d}
	}
	return nullf(feelerr.ParseFailure, feelerr.MsgInvalidDuration, s)
}

// YearsAndMonthsDurationFn implements `years and months duration(from, to)`.
func YearsAndMonthsDurationFn(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("years and months duration")
	}
	from, ok1 := asDate(args[0])
	to, ok2 := asDate(args[1])
	if !ok1 || !ok2 {
		return nullf(feelerr.TypeMismatch, feelerr.MsgNotATemporal)
	}
	fromMonths := from.Year*12 + int64(from.Month-1)
	toMonths := to.Year*12 + int64(to.Month-1)
	totalMonths := toMonths - fromMonths
	if to.Day < from.Day && totalMonths > 0 {
		totalMonths--
	} else if to.Day > from.Day && totalMonths < 0 {
		totalMonths++
	}
	return feelvalue.YearsAndMonthsDurationValue{D: feeltime.NewYearsAndMonthsDurationFromMonths(totalMonths)}
}

func DayOfWeek(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("day of week")
	}
	d, ok := asDate(args[0])
	if !ok {
		return nullf(feelerr.TypeMismatch, feelerr.MsgNotATemporal)
	}
	return feelvalue.StringValue(d.DayOfWeek())
}

func DayOfYear(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("day of year")
	}
	d, ok := asDate(args[0])
	if !ok {
		return nullf(feelerr.TypeMismatch, feelerr.MsgNotATemporal)
	}
	return feelvalue.NumberValue{N: feelnum.FromInt64(int64(d.DayOfYear()))}
}

func WeekOfYear(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("week of year")
	}
	d, ok := asDate(args[0])
	if !ok {
		return nullf(feelerr.TypeMismatch, feelerr.MsgNotATemporal)
	}
	return feelvalue.NumberValue{N: feelnum.FromInt64(int64(d.WeekOfYear()))}
}

var monthNames = []string{"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

func MonthOfYear(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("month of year")
	}
	d, ok := asDate(args[0])
	if !ok {
		return nullf(feelerr.TypeMismatch, feelerr.MsgNotATemporal)
	}
	if d.Month < 1 || d.Month > 12 {
		return nullf(feelerr.OutOfRange, feelerr.MsgInvalidDatePart, "month", d.Month)
	}
	return feelvalue.StringValue(monthNames[d.Month])
}

// durationComponent extracts a single named field (years/months/days/hours/
// minutes/seconds) from either duration kind.
func durationComponent(args []feelvalue.Value, name string, extract func(v feelvalue.Value) (int64, bool)) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity(name)
	}
	n, ok := extract(args[0])
	if !ok {
		return nullf(feelerr.TypeMismatch, feelerr.MsgNotATemporal)
	}
	return feelvalue.NumberValue{N: feelnum.FromInt64(n)}
}

func YearsFn(args []feelvalue.Value) feelvalue.Value {
	return durationComponent(args, "years", func(v feelvalue.Value) (int64, bool) {
		d, ok := v.(feelvalue.YearsAndMonthsDurationValue)
		if !ok {
			return 0, false
		}
		return d.D.Years(), true
	})
}

func MonthsFn(args []feelvalue.Value) feelvalue.Value {
	return durationComponent(args, "months", func(v feelvalue.Value) (int64, bool) {
		d, ok := v.(feelvalue.YearsAndMonthsDurationValue)
		if !ok {
			return 0, false
		}
		return d.D.Months(), true
	})
}

func DaysFn(args []feelvalue.Value) feelvalue.Value {
	return durationComponent(args, "days", func(v feelvalue.Value) (int64, bool) {
		d, ok := v.(feelvalue.DaysAndTimeDurationValue)
		if !ok {
			return 0, false
		}
		return d.D.Days(), true
	})
}

func HoursFn(args []feelvalue.Value) feelvalue.Value {
	return durationComponent(args, "hours", func(v feelvalue.Value) (int64, bool) {
		d, ok := v.(feelvalue.DaysAndTimeDurationValue)
		if !ok {
			return 0, false
		}
		return d.D.Hours(), true
	})
}

func MinutesFn(args []feelvalue.Value) feelvalue.Value {
	return durationComponent(args, "minutes", func(v feelvalue.Value) (int64, bool) {
		d, ok := v.(feelvalue.DaysAndTimeDurationValue)
		if !ok {
			return 0, false
		}
		return d.D.Minutes(), true
	})
}

func SecondsFn(args []feelvalue.Value) feelvalue.Value {
	return durationComponent(args, "seconds", func(v feelvalue.Value) (int64, bool) {
		d, ok := v.(feelvalue.DaysAndTimeDurationValue)
		if !ok {
			return 0, false
		}
		return d.D.Seconds(), true
	})
}

// TimezoneFn implements `time offset(time)`, returning the zone offset as a
// days-and-time duration, or Null for a time with a named (unresolved) zone.
func TimezoneFn(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("time offset")
	}
	var zone feeltime.Zone
	switch v := args[0].(type) {
	case feelvalue.TimeValue:
		zone = v.T.Zone
	case feelvalue.DateTimeValue:
		zone = v.DT.Time.Zone
	default:
		return nullf(feelerr.TypeMismatch, feelerr.MsgNotATemporal)
	}
	if !zone.HasOffset {
		return feelvalue.Null()
	}
	return feelvalue.DaysAndTimeDurationValue{
		D: feeltime.NewDaysAndTimeDurationFromInt64(int64(zone.OffsetSec) * 1_000_000_000),
	}
}
