package dispatch

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelbif"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelscope"
)

// Default builds the standard built-in function table: every BIF in
// internal/feelbif, registered under its canonical FEEL name. Built fresh
// per call rather than as a package-level var so callers (tests, or a
// future sandboxed evaluator) can register extra/overriding entries
// without mutating shared state.
func Default() *Registry {
	r := NewRegistry()

	r.Register("decimal", feelbif.Decimal, CategoryNumeric, "n", "scale")
	r.RegisterCombos("floor", feelbif.Floor, CategoryNumeric, []string{"n"}, []string{"n", "scale"})
	r.RegisterCombos("ceiling", feelbif.Ceiling, CategoryNumeric, []string{"n"}, []string{"n", "scale"})
	r.Register("abs", feelbif.Abs, CategoryNumeric, "n")
	r.Register("modulo", feelbif.Modulo, CategoryNumeric, "dividend", "divisor")
	r.Register("sqrt", feelbif.Sqrt, CategoryNumeric, "number")
	r.Register("log", feelbif.Log, CategoryNumeric, "number")
	r.Register("exp", feelbif.Exp, CategoryNumeric, "number")
	r.Register("odd", feelbif.Odd, CategoryNumeric, "number")
	r.Register("even", feelbif.Even, CategoryNumeric, "number")
	r.RegisterCombos("number", feelbif.NumberFn, CategoryNumeric,
		[]string{"from"},
		[]string{"from", "decimal separator"},
		[]string{"from", "decimal separator", "grouping separator"})

	r.RegisterCombos("substring", feelbif.Substring, CategoryString,
		[]string{"string", "start position"},
		[]string{"string", "start position", "length"})
	r.Register("string length", feelbif.StringLength, CategoryString, "string")
	r.Register("upper case", feelbif.UpperCase, CategoryString, "string")
	r.Register("lower case", feelbif.LowerCase, CategoryString, "string")
	r.Register("substring before", feelbif.SubstringBefore, CategoryString, "string", "match")
	r.Register("substring after", feelbif.SubstringAfter, CategoryString, "string", "match")
	r.Register("contains", feelbif.Contains, CategoryString, "string", "match")
	r.Register("starts with", feelbif.StartsWith, CategoryString, "string", "match")
	r.Register("ends with", feelbif.EndsWith, CategoryString, "string", "match")
	r.RegisterCombos("matches", feelbif.Matches, CategoryString,
		[]string{"input", "pattern"},
		[]string{"input", "pattern", "flags"})
	r.RegisterCombos("replace", feelbif.Replace, CategoryString,
		[]string{"input", "pattern", "replacement"},
		[]string{"input", "pattern", "replacement", "flags"})
	r.Register("split", feelbif.Split, CategoryString, "string", "delimiter")
	r.RegisterCombos("string join", feelbif.StringJoin, CategoryString,
		[]string{"list"},
		[]string{"list", "delimiter"})
	r.Register("string", feelbif.StringFn, CategoryString, "from")

	r.Register("list contains", feelbif.ListContains, CategoryList, "list", "element")
	r.Register("count", feelbif.Count, CategoryList, "list")
	r.Register("min", feelbif.Min, CategoryList, "list")
	r.Register("max", feelbif.Max, CategoryList, "list")
	r.Register("sum", feelbif.Sum, CategoryList, "list")
	r.Register("mean", feelbif.Mean, CategoryList, "list")
	r.Register("median", feelbif.Median, CategoryList, "list")
	r.Register("mode", feelbif.Mode, CategoryList, "list")
	r.Register("stddev", feelbif.StdDev, CategoryList, "list")
	r.Register("product", feelbif.Product, CategoryList, "list")
	r.Register("all", feelbif.AllFn, CategoryList, "list")
	r.Register("any", feelbif.AnyFn, CategoryList, "list")
	r.Register("sublist", feelbif.Sublist, CategoryList, "list", "start position", "length")
	r.Register("append", feelbif.Append, CategoryList)
	r.Register("concatenate", feelbif.Concatenate, CategoryList)
	r.Register("insert before", feelbif.InsertBefore, CategoryList, "list", "position", "newItem")
	r.Register("remove", feelbif.Remove, CategoryList, "list", "position")
	r.Register("reverse", feelbif.Reverse, CategoryList, "list")
	r.Register("index of", feelbif.IndexOf, CategoryList, "list", "match")
	r.Register("union", feelbif.Union, CategoryList)
	r.Register("distinct values", feelbif.DistinctValues, CategoryList, "list")
	r.Register("flatten", feelbif.Flatten, CategoryList, "list")
	r.Register("sort", feelbif.Sort, CategoryList, "list", "precedes")

	r.Register("get value", feelbif.GetValue, CategoryContext, "context", "key")
	r.Register("get entries", feelbif.GetEntries, CategoryContext, "context")
	r.Register("context", feelbif.ContextFn, CategoryContext, "entries")
	r.Register("context merge", feelbif.ContextMerge, CategoryContext, "contexts")
	r.Register("context put", feelbif.ContextPut, CategoryContext, "context", "key", "value")
	r.Register("context put all", feelbif.ContextPutAll, CategoryContext, "contexts")

	r.RegisterCombos("date", feelbif.DateFn, CategoryTemporal,
		[]string{"from"},
		[]string{"year", "month", "day"})
	r.RegisterCombos("time", feelbif.TimeFn, CategoryTemporal,
		[]string{"from"},
		[]string{"hour", "minute", "second"},
		[]string{"hour", "minute", "second", "offset"})
	r.RegisterCombos("date and time", feelbif.DateAndTimeFn, CategoryTemporal,
		[]string{"from"},
		[]string{"date", "time"})
	r.Register("duration", feelbif.DurationFn, CategoryTemporal, "from")
	r.Register("years and months duration", feelbif.YearsAndMonthsDurationFn, CategoryTemporal, "from", "to")
	r.Register("day of week", feelbif.DayOfWeek, CategoryTemporal, "date")
	r.Register("day of year", feelbif.DayOfYear, CategoryTemporal, "date")
	r.Register("week of year", feelbif.WeekOfYear, CategoryTemporal, "date")
	r.Register("month of year", feelbif.MonthOfYear, CategoryTemporal, "date")
	r.Register("years", feelbif.YearsFn, CategoryTemporal, "from")
	r.Register("months", feelbif.MonthsFn, CategoryTemporal, "from")
	r.Register("days", feelbif.DaysFn, CategoryTemporal, "from")
	r.Register("hours", feelbif.HoursFn, CategoryTemporal, "from")
	r.Register("minutes", feelbif.MinutesFn, CategoryTemporal, "from")
	r.Register("seconds", feelbif.SecondsFn, CategoryTemporal, "from")
	r.Register("time offset", feelbif.TimezoneFn, CategoryTemporal, "time")

	// The thirteen Allen interval relations (spec.md's range/comparison
	// module). Each is polymorphic over points and ranges, so named
	// invocation tries point1+point2, then point+range, then range1+range2,
	// in that fixed order (spec.md:197), rather than a single flat pair.
	// "overlaps before"/"overlaps after" are registered as aliases of
	// "overlaps"/"overlapped by" for callers using either naming
	// convention; they are two genuinely distinct functions (see
	// feelbif.OverlappedBy's doc comment and
	// TestOverlapsBeforeAfterAreDistinct in feelbif/dispatch/table_test.go).
	rangeCombos := [][]string{
		{"point1", "point2"},
		{"point", "range"},
		{"range1", "range2"},
	}
	r.RegisterCombos("before", feelbif.Before, CategoryRange, rangeCombos...)
	r.RegisterCombos("after", feelbif.After, CategoryRange, rangeCombos...)
	r.RegisterCombos("meets", feelbif.Meets, CategoryRange, rangeCombos...)
	r.RegisterCombos("met by", feelbif.MetBy, CategoryRange, rangeCombos...)
	r.RegisterCombos("overlaps", feelbif.Overlaps, CategoryRange, rangeCombos...)
	r.RegisterCombos("overlaps before", feelbif.Overlaps, CategoryRange, rangeCombos...)
	r.RegisterCombos("overlapped by", feelbif.OverlappedBy, CategoryRange, rangeCombos...)
	r.RegisterCombos("overlaps after", feelbif.OverlappedBy, CategoryRange, rangeCombos...)
	r.RegisterCombos("starts", feelbif.Starts, CategoryRange, rangeCombos...)
	r.RegisterCombos("started by", feelbif.StartedBy, CategoryRange, rangeCombos...)
	r.RegisterCombos("finishes", feelbif.Finishes, CategoryRange, rangeCombos...)
	r.RegisterCombos("finished by", feelbif.FinishedBy, CategoryRange, rangeCombos...)
	r.RegisterCombos("during", feelbif.During, CategoryRange, rangeCombos...)
	r.RegisterCombos("includes", feelbif.Includes, CategoryRange, rangeCombos...)
	r.RegisterCombos("coincides", feelbif.Coincides, CategoryRange, rangeCombos...)

	r.Register("is", feelbif.Is, CategoryBoolean, "value1", "value2")
	r.Register("boolean", feelbif.BooleanFn, CategoryBoolean, "from")
	r.Register("not", feelbif.NotFn, CategoryBoolean, "negand")

	return r
}

// Install binds every built-in in r into scope's current (bottom/root)
// frame, so unqualified calls like `sum(xs)` resolve through the normal
// NameRef lookup path feeleval already implements.
func Install(s *feelscope.Scope, r *Registry) {
	for _, name := range r.Names() {
		fn, _ := r.Lookup(name)
		s.SetEntry(feelname.FromString(name), fn)
	}
}
