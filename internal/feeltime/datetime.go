package feeltime

import (
	"fmt"
	"strings"
)

// DateTime is a Date combined with a Time (including its offset/zone).
type DateTime struct {
	Date Date
	Time Time
}

// ParseDateTime parses "YYYY-MM-DDThh:mm:ss[.fff][zone]".
func ParseDateTime(s string) (DateTime, error) {
	idx := strings.IndexByte(s, 'T')
	if idx < 0 {
		return DateTime{}, fmt.Errorf("feeltime: %q is not a valid date and time", s)
	}
	d, err := ParseDate(s[:idx])
	if err != nil {
		return DateTime{}, fmt.Errorf("feeltime: %q is not a valid date and time: %w", s, err)
	}
	t, err := ParseTime(s[idx+1:])
	if err != nil {
		return DateTime{}, fmt.Errorf("feeltime: %q is not a valid date and time: %w", s, err)
	}
	return DateTime{Date: d, Time: t}, nil
}

func (dt DateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}

// totalNanos returns the signed nanosecond count since the 1970-01-01T00:00:00
// epoch, ignoring zone/offset (used only when both sides are directly
// comparable; see Compare).
func (dt DateTime) totalNanos() int64 {
	return dt.Date.days()*86_400_000_000_000 + dt.Time.nanosSinceMidnight()
}

// Compare mirrors Time.Compare's indeterminacy rules: two DateTimes with
// incompatible zone information (one zoned, one not; or differing named
// zones) compare as indeterminate.
func (dt DateTime) Compare(other DateTime) (cmp int, ok bool) {
	aOff, aOK := dt.Time.effectiveOffset()
	bOff, bOK := other.Time.effectiveOffset()
	if aOK != bOK {
		return 0, false
	}
	if !aOK {
		if dt.Time.Zone.Name != other.Time.Zone.Name {
			return 0, false
		}
		return compareInt64(dt.totalNanos(), other.totalNanos()), true
	}
	an := dt.totalNanos() - int64(aOff)*1_000_000_000
	bn := other.totalNanos() - int64(bOff)*1_000_000_000
	return compareInt64(an, bn), true
}

// Sub returns the signed nanosecond difference dt - other, used to build a
// DaysAndTimeDuration from DateTime subtraction (spec.md §4.6).
func (dt DateTime) Sub(other DateTime) (nanos int64, ok bool) {
	aOff, aOK := dt.Time.effectiveOffset()
	bOff, bOK := other.Time.effectiveOffset()
	if aOK != bOK {
		return 0, false
	}
	a := dt.totalNanos()
	b := other.totalNanos()
	if aOK {
		a -= int64(aOff) * 1_000_000_000
		b -= int64(bOff) * 1_000_000_000
	} else if dt.Time.Zone.Name != other.Time.Zone.Name {
		return 0, false
	}
	return a - b, true
}

// AddNanos shifts dt by a signed nanosecond offset, carrying over into the
// date component as needed.
func (dt DateTime) AddNanos(n int64) DateTime {
	total := dt.totalNanos() + n
	days := total / 86_400_000_000_000
	rem := total % 86_400_000_000_000
	if rem < 0 {
		rem += 86_400_000_000_000
		days--
	}
	y, m, d := civilFromDays(days)
	nanosOfDay := rem
	hour := int(nanosOfDay / 3_600_000_000_000)
	nanosOfDay %= 3_600_000_000_000
	minute := int(nanosOfDay / 60_000_000_000)
	nanosOfDay %= 60_000_000_000
	second := int(nanosOfDay / 1_000_000_000)
	nanos := nanosOfDay % 1_000_000_000
	return DateTime{
		Date: Date{Year: y, Month: m, Day: d},
		Time: Time{Hour: hour, Minute: minute, Second: second, Nanos: nanos, Zone: dt.Time.Zone},
	}
}

// AddMonths shifts dt's date component by whole months, keeping the time
// of day fixed, matching a DateTime + YearsAndMonthsDuration.
func (dt DateTime) AddMonths(months int64) DateTime {
	return DateTime{Date: dt.Date.AddMonths(months), Time: dt.Time}
}
