package feeltime

import (
	"fmt"
	"regexp"
	"strconv"
)

// Date is a proleptic-Gregorian calendar date with unbounded year
// magnitude (spec.md §4.3/§9).
type Date struct {
	Year  int64
	Month int // 1..12
	Day   int // 1..daysInMonth(Year, Month)
}

var dateRE = regexp.MustCompile(`^(-?[0-9]{4,})-([0-9]{2})-([0-9]{2})$`)

// NewDate constructs a Date, validating month/day ranges.
func NewDate(year int64, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("feeltime: month %d is out of range", month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return Date{}, fmt.Errorf("feeltime: day %d is out of range for %04d-%02d", day, year, month)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD, with an optional
// leading sign and more than four year digits for large magnitudes).
func ParseDate(s string) (Date, error) {
	m := dateRE.FindStringSubmatch(s)
	if m == nil {
		return Date{}, fmt.Errorf("feeltime: %q is not a valid date", s)
	}
	year, _ := strconv.ParseInt(m[1], 10, 64)
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return NewDate(year, month, day)
}

func (d Date) String() string {
	if d.Year >= 0 && d.Year <= 9999 {
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%+d-%02d-%02d", d.Year, d.Month, d.Day)
}

// days returns the signed day count since 1970-01-01, used for ordering,
// weekday/week-of-year computation, and duration arithmetic.
func (d Date) days() int64 { return daysFromCivil(d.Year, d.Month, d.Day) }

// Compare returns -1, 0, or 1.
func (d Date) Compare(other Date) int {
	a, b := d.days(), other.days()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AddDays returns the date `n` days after d (n may be negative).
func (d Date) AddDays(n int64) Date {
	y, m, dd := civilFromDays(d.days() + n)
	return Date{Year: y, Month: m, Day: dd}
}

// DaysBetween returns the signed day count from d to other.
func DaysBetween(d, other Date) int64 { return other.days() - d.days() }

// DayOfWeek returns the ISO weekday name ("MONDAY".."SUNDAY"), matching the
// DMN `day of week` BIF's enumerated-name contract.
func (d Date) DayOfWeek() string {
	names := [...]string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}
	return names[weekdayISO(d.days())-1]
}

// WeekdayNumber returns the ISO-8601 weekday number (1=Monday..7=Sunday),
// the numeric form the `weekday` path property exposes (distinct from
// DayOfWeek's enumerated name, which backs the `day of week` BIF).
func (d Date) WeekdayNumber() int { return weekdayISO(d.days()) }

// DayOfYear returns the 1-based ordinal day within d's year.
func (d Date) DayOfYear() int { return ordinalDay(d.Year, d.Month, d.Day) }

// WeekOfYear returns the ISO-8601 week number.
func (d Date) WeekOfYear() int { return isoWeek(d.Year, d.Month, d.Day) }

// AddMonths adds a (possibly negative) number of months to d, clamping
// the day-of-month if the target month is shorter (e.g. Jan 31 + 1 month ->
// Feb 28/29), matching FEEL's years-and-months-duration addition semantics.
func (d Date) AddMonths(months int64) Date {
	totalMonths := d.Year*12 + int64(d.Month-1) + months
	y := totalMonths / 12
	m := totalMonths % 12
	if m < 0 {
		m += 12
		y--
	}
	day := d.Day
	if maxDay := daysInMonth(y, int(m)+1); day > maxDay {
		day = maxDay
	}
	return Date{Year: y, Month: int(m) + 1, Day: day}
}
