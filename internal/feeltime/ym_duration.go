package feeltime

import (
	"fmt"
	"regexp"
	"strconv"
)

// YearsAndMonthsDuration holds a signed total month count.
type YearsAndMonthsDuration struct {
	months int64
}

const monthsInYear = 12

var ymDurationRE = regexp.MustCompile(`^(?P<sign>-)?P((?P<years>[0-9]+)Y)?((?P<months>[0-9]+)M)?$`)

// NewYearsAndMonthsDuration builds a duration from separate year/month
// counts, matching the source's `new_ym`.
func NewYearsAndMonthsDuration(years, months int64) YearsAndMonthsDuration {
	return YearsAndMonthsDuration{months: years*monthsInYear + months}
}

// NewYearsAndMonthsDurationFromMonths builds a duration from a total month
// count, matching `new_m`.
func NewYearsAndMonthsDurationFromMonths(months int64) YearsAndMonthsDuration {
	return YearsAndMonthsDuration{months: months}
}

// ParseYearsAndMonthsDuration parses "±P[nY][nM]", requiring at least one
// component and rejecting reversed order (M before Y), matching the
// source's regex + accumulate + negate-last parser exactly.
func ParseYearsAndMonthsDuration(s string) (YearsAndMonthsDuration, error) {
	m := ymDurationRE.FindStringSubmatch(s)
	if m == nil {
		return YearsAndMonthsDuration{}, fmt.Errorf("feeltime: %q is not a valid years-and-months duration", s)
	}
	names := ymDurationRE.SubexpNames()
	group := func(name string) string {
		for i, n := range names {
			if n == name {
				return m[i]
			}
		}
		return ""
	}
	isValid := false
	var total int64
	if v := group("years"); v != "" {
		years, _ := strconv.ParseInt(v, 10, 64)
		total += years * monthsInYear
		isValid = true
	}
	if v := group("months"); v != "" {
		months, _ := strconv.ParseInt(v, 10, 64)
		total += months
		isValid = true
	}
	if group("sign") != "" {
		total = -total
	}
	if !isValid {
		return YearsAndMonthsDuration{}, fmt.Errorf("feeltime: %q is not a valid years-and-months duration", s)
	}
	return YearsAndMonthsDuration{months: total}, nil
}

func (d YearsAndMonthsDuration) Years() int64    { return d.months / monthsInYear }
func (d YearsAndMonthsDuration) Months() int64   { return d.months % monthsInYear }
func (d YearsAndMonthsDuration) AsMonths() int64 { return d.months }

func (d YearsAndMonthsDuration) Abs() YearsAndMonthsDuration {
	if d.months < 0 {
		return YearsAndMonthsDuration{months: -d.months}
	}
	return d
}

func (d YearsAndMonthsDuration) Add(other YearsAndMonthsDuration) YearsAndMonthsDuration {
	return YearsAndMonthsDuration{months: d.months + other.months}
}

func (d YearsAndMonthsDuration) Sub(other YearsAndMonthsDuration) YearsAndMonthsDuration {
	return YearsAndMonthsDuration{months: d.months - other.months}
}

func (d YearsAndMonthsDuration) Neg() YearsAndMonthsDuration {
	return YearsAndMonthsDuration{months: -d.months}
}

func (d YearsAndMonthsDuration) Compare(other YearsAndMonthsDuration) int {
	switch {
	case d.months < other.months:
		return -1
	case d.months > other.months:
		return 1
	default:
		return 0
	}
}

// String renders the canonical form, matching the source's 2-tuple match
// over (year>0, month>0): "P0M" for zero, else "PnYnM"/"PnY"/"PnM" with
// sign prefix.
func (d YearsAndMonthsDuration) String() string {
	sign := ""
	total := d.months
	if total < 0 {
		sign = "-"
		total = -total
	}
	year := total / monthsInYear
	month := total % monthsInYear
	switch {
	case year == 0 && month == 0:
		return "P0M"
	case year == 0:
		return fmt.Sprintf("%sP%dM", sign, month)
	case month == 0:
		return fmt.Sprintf("%sP%dY", sign, year)
	default:
		return fmt.Sprintf("%sP%dY%dM", sign, year, month)
	}
}
