package feeltime

// Proleptic-Gregorian civil calendar arithmetic, following Howard Hinnant's
// "chrono-Compatible Low-Level Date Algorithms" (days-since-epoch <->
// year/month/day), deliberately not using the standard library's time.Time:
// time.Time's Date constructor normalizes and its internal representation
// is unsuitable for the year magnitudes this kernel is tested against
// (spec.md §3/§9: unbounded year, tested to ±999,999,999). All arithmetic
// here is plain int64, which comfortably covers that range (~3.65e11 days).

// daysFromCivil returns the number of days since 1970-01-01 (may be
// negative) for the proleptic Gregorian date (y, m, d), m in [1,12].
func daysFromCivil(y int64, m, d int) int64 {
	yy := y
	if m <= 2 {
		yy--
	}
	era := yy
	if yy < 0 {
		era = yy - 399
	}
	era /= 400
	yoe := yy - era*400 // [0, 399]
	mp := (int64(m) + 9) % 12
	doy := (153*mp+2)/5 + int64(d) - 1 // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int64) (y int64, m, d int) {
	z += 719468
	era := z
	if z < 0 {
		era = z - 146096
	}
	era /= 146097
	doe := z - era*146097                                              // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365              // [0, 399]
	yy := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	dd := doy - (153*mp+2)/5 + 1             // [1, 31]
	var mm int64
	if mp < 10 {
		mm = mp + 3
	} else {
		mm = mp - 9
	}
	if mm <= 2 {
		yy++
	}
	return yy, int(mm), int(dd)
}

// isLeapYear reports whether y is a leap year in the proleptic Gregorian
// calendar.
func isLeapYear(y int64) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

var daysInMonthTable = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysInMonth(y int64, m int) int {
	if m == 2 && isLeapYear(y) {
		return 29
	}
	return daysInMonthTable[m-1]
}

// weekday returns 1 (Monday) through 7 (Sunday) per ISO-8601, matching the
// DMN `day of week` BIF's convention.
func weekdayISO(days int64) int {
	// 1970-01-01 was a Thursday (ISO weekday 4).
	wd := (days%7 + 7 + 3) % 7 // 0=Monday .. 6=Sunday
	return int(wd) + 1
}

// ordinalDay returns the 1-based day-of-year for (y, m, d).
func ordinalDay(y int64, m, d int) int {
	total := d
	for i := 1; i < m; i++ {
		total += daysInMonth(y, i)
	}
	return total
}

// isoWeek returns the ISO-8601 week number (1-53) for (y, m, d).
func isoWeek(y int64, m, d int) int {
	days := daysFromCivil(y, m, d)
	wd := weekdayISO(days) // 1..7, Monday..Sunday
	// Thursday of this ISO week determines the ISO year/week.
	thursday := days - int64(wd) + 4
	thurYear, _, _ := civilFromDays(thursday)
	jan1 := daysFromCivil(thurYear, 1, 1)
	return int((thursday-jan1)/7) + 1
}
