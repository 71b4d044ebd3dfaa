package feeltime

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// DaysAndTimeDuration holds a signed nanosecond count. Go has no native
// int128, so the source's `i128` is represented with math/big.Int — the
// idiomatic Go stand-in for fixed-precision integers beyond int64 (no pack
// library offers a narrower "signed 128-bit integer" primitive worth
// adopting instead).
type DaysAndTimeDuration struct {
	nanos *big.Int
}

const (
	nanosInSecond = 1_000_000_000
	nanosInMinute = 60 * nanosInSecond
	nanosInHour   = 60 * nanosInMinute
	nanosInDay    = 24 * nanosInHour
)

var dtDurationRE = regexp.MustCompile(
	`^(?P<sign>-)?P((?P<days>[0-9]+)D)?(T((?P<hours>[0-9]+)H)?((?P<minutes>[0-9]+)M)?((?P<seconds>[0-9]+)(?P<fractional>\.[0-9]*)?S)?)?$`,
)

// NewDaysAndTimeDuration builds a duration from a signed nanosecond count.
func NewDaysAndTimeDuration(nanos *big.Int) DaysAndTimeDuration {
	return DaysAndTimeDuration{nanos: new(big.Int).Set(nanos)}
}

// NewDaysAndTimeDurationFromInt64 is a convenience constructor for nanosecond
// counts that fit in an int64.
func NewDaysAndTimeDurationFromInt64(nanos int64) DaysAndTimeDuration {
	return DaysAndTimeDuration{nanos: big.NewInt(nanos)}
}

func (d DaysAndTimeDuration) Nanos() *big.Int { return new(big.Int).Set(d.nanos) }

// ParseDaysAndTimeDuration parses an XSD-duration-shaped string, rejecting
// malformed input exactly as the source's regex + capture-accumulation
// parser does: at least one component must be present, components must
// appear in D/H/M/S order, and an empty body ("P", "PT", "-P", "-PT", "T")
// is invalid.
func ParseDaysAndTimeDuration(s string) (DaysAndTimeDuration, error) {
	m := dtDurationRE.FindStringSubmatch(s)
	if m == nil {
		return DaysAndTimeDuration{}, fmt.Errorf("feeltime: %q is not a valid days-and-time duration", s)
	}
	names := dtDurationRE.SubexpNames()
	group := func(name string) string {
		for i, n := range names {
			if n == name {
				return m[i]
			}
		}
		return ""
	}

	isValid := false
	total := new(big.Int)
	if v := group("days"); v != "" {
		n, _ := strconv.ParseInt(v, 10, 64)
		total.Add(total, new(big.Int).Mul(big.NewInt(n), big.NewInt(nanosInDay)))
		isValid = true
	}
	if v := group("hours"); v != "" {
		n, _ := strconv.ParseInt(v, 10, 64)
		total.Add(total, new(big.Int).Mul(big.NewInt(n), big.NewInt(nanosInHour)))
		isValid = true
	}
	if v := group("minutes"); v != "" {
		n, _ := strconv.ParseInt(v, 10, 64)
		total.Add(total, new(big.Int).Mul(big.NewInt(n), big.NewInt(nanosInMinute)))
		isValid = true
	}
	if v := group("seconds"); v != "" {
		n, _ := strconv.ParseInt(v, 10, 64)
		total.Add(total, new(big.Int).Mul(big.NewInt(n), big.NewInt(nanosInSecond)))
		isValid = true
	}
	if v := group("fractional"); v != "" {
		frac := v[1:] // drop leading '.'
		for len(frac) < 9 {
			frac += "0"
		}
		n, _ := strconv.ParseInt(frac[:9], 10, 64)
		total.Add(total, big.NewInt(n))
		isValid = true
	}
	if group("sign") != "" {
		total.Neg(total)
	}
	if !isValid {
		return DaysAndTimeDuration{}, fmt.Errorf("feeltime: %q is not a valid days-and-time duration", s)
	}
	return DaysAndTimeDuration{nanos: total}, nil
}

// Abs returns the absolute value of d.
func (d DaysAndTimeDuration) Abs() DaysAndTimeDuration {
	return DaysAndTimeDuration{nanos: new(big.Int).Abs(d.nanos)}
}

func (d DaysAndTimeDuration) Add(other DaysAndTimeDuration) DaysAndTimeDuration {
	return DaysAndTimeDuration{nanos: new(big.Int).Add(d.nanos, other.nanos)}
}

func (d DaysAndTimeDuration) Sub(other DaysAndTimeDuration) DaysAndTimeDuration {
	return DaysAndTimeDuration{nanos: new(big.Int).Sub(d.nanos, other.nanos)}
}

func (d DaysAndTimeDuration) Neg() DaysAndTimeDuration {
	return DaysAndTimeDuration{nanos: new(big.Int).Neg(d.nanos)}
}

func (d DaysAndTimeDuration) Compare(other DaysAndTimeDuration) int {
	return d.nanos.Cmp(other.nanos)
}

// TotalNanos returns d's nanosecond count as an int64, with ok=false if it
// overflows (durations this large never arise from calendar arithmetic
// within the ±999,999,999-year range spec.md §9 requires, but callers doing
// Date/Time arithmetic must still check).
func (d DaysAndTimeDuration) TotalNanos() (nanos int64, ok bool) {
	if !d.nanos.IsInt64() {
		return 0, false
	}
	return d.nanos.Int64(), true
}

// TotalDaysTrunc returns d's signed whole-day count, truncated toward zero,
// used by Date + days-and-time-duration arithmetic (DMN truncates the
// duration's sub-day remainder when the result type is Date).
func (d DaysAndTimeDuration) TotalDaysTrunc() int64 {
	days := new(big.Int).Quo(d.nanos, big.NewInt(nanosInDay))
	return days.Int64()
}

// AsSeconds returns the signed total duration in seconds as an int64
// (matching `as_seconds()` in the source; callers needing sub-second
// precision use Nanos directly).
func (d DaysAndTimeDuration) AsSeconds() int64 {
	sec := new(big.Int).Quo(d.nanos, big.NewInt(nanosInSecond))
	return sec.Int64()
}

// absParts decomposes the absolute value of d into day/hour/minute/second/
// nanosecond components, matching get_days/get_hours/get_minutes/
// get_seconds's unsigned breakdown.
func (d DaysAndTimeDuration) absParts() (days, hours, minutes, seconds, nanos int64) {
	abs := new(big.Int).Abs(d.nanos)
	dayBig := new(big.Int).Quo(abs, big.NewInt(nanosInDay))
	rem := new(big.Int).Rem(abs, big.NewInt(nanosInDay))
	days = dayBig.Int64()
	remI := rem.Int64()
	hours = remI / nanosInHour
	remI %= nanosInHour
	minutes = remI / nanosInMinute
	remI %= nanosInMinute
	seconds = remI / nanosInSecond
	nanos = remI % nanosInSecond
	return
}

func (d DaysAndTimeDuration) Days() int64    { days, _, _, _, _ := d.absParts(); return days }
func (d DaysAndTimeDuration) Hours() int64   { _, h, _, _, _ := d.absParts(); return h }
func (d DaysAndTimeDuration) Minutes() int64 { _, _, m, _, _ := d.absParts(); return m }
func (d DaysAndTimeDuration) Seconds() int64 { _, _, _, s, _ := d.absParts(); return s }

// String renders the minimal canonical ISO-8601-like form, matching the
// source's exhaustive 5-tuple-of-booleans match (day/hour/minute/second/
// nanosecond each present or absent) and its nanosecond right-trimming.
func (d DaysAndTimeDuration) String() string {
	if d.nanos.Sign() == 0 {
		return "PT0S"
	}
	sign := ""
	if d.nanos.Sign() < 0 {
		sign = "-"
	}
	days, hours, minutes, seconds, nanos := d.absParts()
	hasDay := days > 0
	hasHour := hours > 0
	hasMinute := minutes > 0
	hasSecond := seconds > 0 || nanos > 0

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('P')
	if hasDay {
		fmt.Fprintf(&b, "%dD", days)
	}
	if hasHour || hasMinute || hasSecond {
		b.WriteByte('T')
		if hasHour {
			fmt.Fprintf(&b, "%dH", hours)
		}
		if hasMinute {
			fmt.Fprintf(&b, "%dM", minutes)
		}
		if hasSecond {
			fmt.Fprintf(&b, "%d", seconds)
			if frac := nanosecondsToString(nanos); frac != "" {
				b.WriteByte('.')
				b.WriteString(frac)
			}
			b.WriteByte('S')
		}
	}
	return b.String()
}

// nanosecondsToString right-trims a nanosecond fraction to the digits
// actually needed, e.g. 100_000_000 -> "1", 0 -> "" (never called with a
// full second).
func nanosecondsToString(nanos int64) string {
	if nanos == 0 {
		return ""
	}
	s := fmt.Sprintf("%09d", nanos)
	return strings.TrimRight(s, "0")
}
