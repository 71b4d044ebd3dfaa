package feeltime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Zone is either absent, a fixed UTC offset in seconds, or a named IANA
// zone (e.g. "Europe/Paris" or "UTC"; a bare "Z" is the zero offset, not a
// named zone). Named zones are resolved to an
// offset by the (out-of-scope) model layer's zone database; this kernel
// stores the name verbatim and treats two Times with different named zones
// as having an indeterminate ordering (spec.md §4.8), never guessing an
// offset for them.
type Zone struct {
	HasOffset bool
	OffsetSec int // seconds east of UTC, valid only if HasOffset
	Name      string // IANA zone name, valid only if !HasOffset && Name != ""
}

func (z Zone) IsSet() bool { return z.HasOffset || z.Name != "" }

func (z Zone) String() string {
	switch {
	case z.Name != "":
		return "@" + z.Name
	case z.HasOffset:
		return formatOffset(z.OffsetSec)
	default:
		return ""
	}
}

func formatOffset(sec int) string {
	if sec == 0 {
		return "Z"
	}
	sign := "+"
	if sec < 0 {
		sign = "-"
		sec = -sec
	}
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	if s != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}

// Time is hour:minute:second with a nanosecond fraction and an optional
// offset or named zone.
type Time struct {
	Hour, Minute, Second int
	Nanos                int64 // fractional seconds, [0, 1e9)
	Zone                  Zone
}

var timeRE = regexp.MustCompile(`^([0-9]{2}):([0-9]{2}):([0-9]{2})(\.[0-9]+)?(Z|[+-][0-9]{2}:[0-9]{2}(:[0-9]{2})?|@.+)?$`)

// NewTime validates and constructs a Time.
func NewTime(hour, minute, second int, nanos int64, zone Zone) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, fmt.Errorf("feeltime: hour %d is out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return Time{}, fmt.Errorf("feeltime: minute %d is out of range", minute)
	}
	if second < 0 || second > 59 {
		return Time{}, fmt.Errorf("feeltime: second %d is out of range", second)
	}
	if nanos < 0 || nanos >= 1_000_000_000 {
		return Time{}, fmt.Errorf("feeltime: nanosecond fraction %d is out of range", nanos)
	}
	return Time{Hour: hour, Minute: minute, Second: second, Nanos: nanos, Zone: zone}, nil
}

// ParseTime parses an ISO-8601 time-of-day, optionally with a UTC offset,
// "Z", or a non-standard "@Zone/Name" suffix for named zones.
func ParseTime(s string) (Time, error) {
	m := timeRE.FindStringSubmatch(s)
	if m == nil {
		return Time{}, fmt.Errorf("feeltime: %q is not a valid time", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second, _ := strconv.Atoi(m[3])
	var nanos int64
	if m[4] != "" {
		frac := m[4][1:]
		for len(frac) < 9 {
			frac += "0"
		}
		nanos, _ = strconv.ParseInt(frac[:9], 10, 64)
	}
	zone, err := parseZone(m[5])
	if err != nil {
		return Time{}, err
	}
	return NewTime(hour, minute, second, nanos, zone)
}

func parseZone(s string) (Zone, error) {
	switch {
	case s == "":
		return Zone{}, nil
	case s == "Z":
		return Zone{HasOffset: true, OffsetSec: 0}, nil
	case strings.HasPrefix(s, "@"):
		return Zone{Name: s[1:]}, nil
	default:
		sign := 1
		body := s
		if strings.HasPrefix(body, "-") {
			sign = -1
			body = body[1:]
		} else if strings.HasPrefix(body, "+") {
			body = body[1:]
		}
		parts := strings.Split(body, ":")
		if len(parts) < 2 {
			return Zone{}, fmt.Errorf("feeltime: %q is not a valid zone offset", s)
		}
		h, _ := strconv.Atoi(parts[0])
		mnt, _ := strconv.Atoi(parts[1])
		sec := 0
		if len(parts) == 3 {
			sec, _ = strconv.Atoi(parts[2])
		}
		return Zone{HasOffset: true, OffsetSec: sign * (h*3600 + mnt*60 + sec)}, nil
	}
}

func (t Time) String() string {
	base := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanos != 0 {
		frac := fmt.Sprintf("%09d", t.Nanos)
		frac = strings.TrimRight(frac, "0")
		base += "." + frac
	}
	return base + t.Zone.String()
}

// nanosSinceMidnight returns t's time-of-day as nanoseconds, ignoring zone.
func (t Time) nanosSinceMidnight() int64 {
	return (int64(t.Hour)*3600+int64(t.Minute)*60+int64(t.Second))*1_000_000_000 + t.Nanos
}

// Compare returns -1, 0, 1, or reports ok=false when the comparison is
// indeterminate (differing named zones, or exactly one side zoned),
// matching spec.md §4.8's "temporal comparisons that are indeterminate
// return None" contract.
func (t Time) Compare(other Time) (cmp int, ok bool) {
	aOff, aOK := t.effectiveOffset()
	bOff, bOK := other.effectiveOffset()
	if aOK != bOK {
		return 0, false
	}
	if !aOK {
		// Neither has a usable offset (both local, or both named the same).
		if t.Zone.Name != other.Zone.Name {
			return 0, false
		}
		return compareInt64(t.nanosSinceMidnight(), other.nanosSinceMidnight()), true
	}
	an := t.nanosSinceMidnight() - int64(aOff)*1_000_000_000
	bn := other.nanosSinceMidnight() - int64(bOff)*1_000_000_000
	return compareInt64(an, bn), true
}

// AddNanos shifts t by a signed nanosecond offset, wrapping modulo 24h
// (time-of-day arithmetic never carries into a date, matching DMN's `time +
// days and time duration` semantics).
func (t Time) AddNanos(n int64) Time {
	total := (t.nanosSinceMidnight() + n) % nanosInDay
	if total < 0 {
		total += nanosInDay
	}
	hour := int(total / 3_600_000_000_000)
	total %= 3_600_000_000_000
	minute := int(total / 60_000_000_000)
	total %= 60_000_000_000
	second := int(total / 1_000_000_000)
	nanos := total % 1_000_000_000
	return Time{Hour: hour, Minute: minute, Second: second, Nanos: nanos, Zone: t.Zone}
}

func (t Time) effectiveOffset() (int, bool) {
	if t.Zone.HasOffset {
		return t.Zone.OffsetSec, true
	}
	return 0, false
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
