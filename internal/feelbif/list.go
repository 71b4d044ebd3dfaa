package feelbif

import (
	"sort"

	"github.com/cwbudde/go-dmn-feel/internal/feelcompare"
	"github.com/cwbudde/go-dmn-feel/internal/feelerr"
	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// variadicLists flattens a BIF's argument list into a single element
// sequence, supporting both the `fn(list)` and `fn(a, b, c, ...)` call
// forms the DMN spec allows for list-aggregate functions.
func variadicLists(args []feelvalue.Value) []feelvalue.Value {
	if len(args) == 1 {
		if items, ok := asList(args[0]); ok {
			return items
		}
	}
	return args
}

func ListContains(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("list contains")
	}
	items, ok := asList(args[0])
	if !ok {
		return notAList(args[0])
	}
	for _, it := range items {
		if eq, ok := feelvalue.TernaryEqual(it, args[1]); ok && eq {
			return feelvalue.BooleanValue(true)
		}
	}
	return feelvalue.BooleanValue(false)
}

func Count(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("count")
	}
	items, ok := asList(args[0])
	if !ok {
		return notAList(args[0])
	}
	return feelvalue.NumberValue{N: feelnum.FromInt64(int64(len(items)))}
}

func Min(args []feelvalue.Value) feelvalue.Value {
	items := variadicLists(args)
	if len(items) == 0 {
		return feelvalue.Null()
	}
	best := items[0]
	for _, it := range items[1:] {
		cmp, ok := feelcompare.Compare(it, best)
		if !ok {
			return nullf(feelerr.TypeMismatch, feelerr.MsgIncompatibleTypes, it.TypeOf(), best.TypeOf())
		}
		if cmp < 0 {
			best = it
		}
	}
	return best
}

func Max(args []feelvalue.Value) feelvalue.Value {
	items := variadicLists(args)
	if len(items) == 0 {
		return feelvalue.Null()
	}
	best := items[0]
	for _, it := range items[1:] {
		cmp, ok := feelcompare.Compare(it, best)
		if !ok {
			return nullf(feelerr.TypeMismatch, feelerr.MsgIncompatibleTypes, it.TypeOf(), best.TypeOf())
		}
		if cmp > 0 {
			best = it
		}
	}
	return best
}

func numericList(items []feelvalue.Value) ([]feelnum.Number, bool) {
	out := make([]feelnum.Number, len(items))
	for i, it := range items {
		n, ok := asNumber(it)
		if !ok {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func Sum(args []feelvalue.Value) feelvalue.Value {
	items := variadicLists(args)
	nums, ok := numericList(items)
	if !ok {
		return notANumber(items[0])
	}
	if len(nums) == 0 {
		return feelvalue.NumberValue{N: feelnum.Zero()}
	}
	total := feelnum.Zero()
	for _, n := range nums {
		total = total.Add(n)
	}
	return checkedNumber(total)
}

func Mean(args []feelvalue.Value) feelvalue.Value {
	items := variadicLists(args)
	if len(items) == 0 {
		return feelvalue.Null()
	}
	nums, ok := numericList(items)
	if !ok {
		return notANumber(items[0])
	}
	total := feelnum.Zero()
	for _, n := range nums {
		total = total.Add(n)
	}
	return checkedNumber(total.Div(feelnum.FromInt64(int64(len(nums)))))
}

func Median(args []feelvalue.Value) feelvalue.Value {
	items := variadicLists(args)
	nums, ok := numericList(items)
	if !ok || len(nums) == 0 {
		if len(nums) == 0 {
			return feelvalue.Null()
		}
		return notANumber(items[0])
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i].Cmp(nums[j]) < 0 })
	mid := len(nums) / 2
	if len(nums)%2 == 1 {
		return checkedNumber(nums[mid])
	}
	return checkedNumber(nums[mid-1].Add(nums[mid]).Div(feelnum.Two()))
}

func Mode(args []feelvalue.Value) feelvalue.Value {
	items := variadicLists(args)
	nums, ok := numericList(items)
	if !ok {
		return notANumber(items[0])
	}
	if len(nums) == 0 {
		return feelvalue.ListValue{}
	}
	sorted := append([]feelnum.Number(nil), nums...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Cmp(sorted[j]) < 0 })
	bestCount, count := 0, 0
	var modes []feelnum.Number
	for i := 0; i < len(sorted); i++ {
		count++
		if i+1 == len(sorted) || sorted[i].Cmp(sorted[i+1]) != 0 {
			switch {
			case count > bestCount:
				bestCount = count
				modes = []feelnum.Number{sorted[i]}
			case count == bestCount:
				modes = append(modes, sorted[i])
			}
			count = 0
		}
	}
	out := make([]feelvalue.Value, len(modes))
	for i, m := range modes {
		out[i] = feelvalue.NumberValue{N: m}
	}
	return feelvalue.ListValue{Items: out}
}

func StdDev(args []feelvalue.Value) feelvalue.Value {
	items := variadicLists(args)
	nums, ok := numericList(items)
	if !ok {
		return notANumber(items[0])
	}
	if len(nums) < 2 {
		return feelvalue.Null()
	}
	total := feelnum.Zero()
	for _, n := range nums {
		total = total.Add(n)
	}
	mean := total.Div(feelnum.FromInt64(int64(len(nums))))
	sumSq := feelnum.Zero()
	for _, n := range nums {
		d := n.Sub(mean)
		sumSq = sumSq.Add(d.Mul(d))
	}
	variance := sumSq.Div(feelnum.FromInt64(int64(len(nums) - 1)))
	return checkedNumber(variance.Sqrt())
}

func Product(args []feelvalue.Value) feelvalue.Value {
	items := variadicLists(args)
	nums, ok := numericList(items)
	if !ok {
		return notANumber(items[0])
	}
	if len(nums) == 0 {
		return feelvalue.NumberValue{N: feelnum.One()}
	}
	total := feelnum.One()
	for _, n := range nums {
		total = total.Mul(n)
	}
	return checkedNumber(total)
}

func AllFn(args []feelvalue.Value) feelvalue.Value {
	items := variadicLists(args)
	result := true
	for _, it := range items {
		b, ok := it.(feelvalue.BooleanValue)
		if !ok {
			return feelvalue.Null()
		}
		if !bool(b) {
			result = false
		}
	}
	return feelvalue.BooleanValue(result)
}

func AnyFn(args []feelvalue.Value) feelvalue.Value {
	items := variadicLists(args)
	sawIndeterminate := false
	for _, it := range items {
		b, ok := it.(feelvalue.BooleanValue)
		if !ok {
			sawIndeterminate = true
			continue
		}
		if bool(b) {
			return feelvalue.BooleanValue(true)
		}
	}
	if sawIndeterminate {
		return feelvalue.Null()
	}
	return feelvalue.BooleanValue(false)
}

func Sublist(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 && len(args) != 3 {
		return wrongArity("sublist")
	}
	items, ok := asList(args[0])
	if !ok {
		return notAList(args[0])
	}
	startN, ok := asNumber(args[1])
	if !ok {
		return notANumber(args[1])
	}
	start, err := startN.ToInt64()
	if err != nil {
		return nullf(feelerr.OutOfRange, feelerr.MsgIndexOutOfRange, start, len(items))
	}
	if start < 0 {
		start = int64(len(items)) + start + 1
	}
	if start < 1 || start > int64(len(items)) {
		return nullf(feelerr.OutOfRange, feelerr.MsgIndexOutOfRange, start, len(items))
	}
	length := int64(len(items)) - start + 1
	if len(args) == 3 {
		lenN, ok := asNumber(args[2])
		if !ok {
			return notANumber(args[2])
		}
		length, err = lenN.ToInt64()
		if err != nil {
			return nullf(feelerr.OutOfRange, feelerr.MsgInvalidSubrangeLen, length)
		}
	}
	if length < 0 {
		return nullf(feelerr.OutOfRange, feelerr.MsgInvalidSubrangeLen, length)
	}
	end := start - 1 + length
	if end > int64(len(items)) {
		end = int64(len(items))
	}
	return feelvalue.ListValue{Items: append([]feelvalue.Value(nil), items[start-1:end]...)}
}

func Append(args []feelvalue.Value) feelvalue.Value {
	if len(args) < 1 {
		return wrongArity("append")
	}
	items, ok := asList(args[0])
	if !ok {
		return notAList(args[0])
	}
	out := append([]feelvalue.Value(nil), items...)
	out = append(out, args[1:]...)
	return feelvalue.ListValue{Items: out}
}

func Concatenate(args []feelvalue.Value) feelvalue.Value {
	var out []feelvalue.Value
	for _, a := range args {
		items, ok := asList(a)
		if !ok {
			return notAList(a)
		}
		out = append(out, items...)
	}
	return feelvalue.ListValue{Items: out}
}

func InsertBefore(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 3 {
		return wrongArity("insert before")
	}
	items, ok := asList(args[0])
	if !ok {
		return notAList(args[0])
	}
	posN, ok := asNumber(args[1])
	if !ok {
		return notANumber(args[1])
	}
	pos, err := posN.ToInt64()
	if err != nil || pos < 1 || pos > int64(len(items))+1 {
		return nullf(feelerr.OutOfRange, feelerr.MsgIndexOutOfRange, pos, len(items))
	}
	out := make([]feelvalue.Value, 0, len(items)+1)
	out = append(out, items[:pos-1]...)
	out = append(out, args[2])
	out = append(out, items[pos-1:]...)
	return feelvalue.ListValue{Items: out}
}

func Remove(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("remove")
	}
	items, ok := asList(args[0])
	if !ok {
		return notAList(args[0])
	}
	posN, ok := asNumber(args[1])
	if !ok {
		return notANumber(args[1])
	}
	pos, err := posN.ToInt64()
	if err != nil || pos < 1 || pos > int64(len(items)) {
		return nullf(feelerr.OutOfRange, feelerr.MsgIndexOutOfRange, pos, len(items))
	}
	out := make([]feelvalue.Value, 0, len(items)-1)
	out = append(out, items[:pos-1]...)
	out = append(out, items[pos:]...)
	return feelvalue.ListValue{Items: out}
}

func Reverse(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("reverse")
	}
	items, ok := asList(args[0])
	if !ok {
		return notAList(args[0])
	}
	out := make([]feelvalue.Value, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return feelvalue.ListValue{Items: out}
}

func IndexOf(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("index of")
	}
	items, ok := asList(args[0])
	if !ok {
		return notAList(args[0])
	}
	var out []feelvalue.Value
	for i, it := range items {
		if eq, ok := feelvalue.TernaryEqual(it, args[1]); ok && eq {
			out = append(out, feelvalue.NumberValue{N: feelnum.FromInt64(int64(i + 1))})
		}
	}
	return feelvalue.ListValue{Items: out}
}

func Union(args []feelvalue.Value) feelvalue.Value {
	var out []feelvalue.Value
	for _, a := range args {
		items, ok := asList(a)
		if !ok {
			return notAList(a)
		}
		for _, it := range items {
			out = appendDistinct(out, it)
		}
	}
	return feelvalue.ListValue{Items: out}
}

func appendDistinct(list []feelvalue.Value, v feelvalue.Value) []feelvalue.Value {
	for _, existing := range list {
		if eq, ok := feelvalue.TernaryEqual(existing, v); ok && eq {
			return list
		}
	}
	return append(list, v)
}

func DistinctValues(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("distinct values")
	}
	items, ok := asList(args[0])
	if !ok {
		return notAList(args[0])
	}
	var out []feelvalue.Value
	for _, it := range items {
		out = appendDistinct(out, it)
	}
	return feelvalue.ListValue{Items: out}
}

func Flatten(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("flatten")
	}
	items, ok := asList(args[0])
	if !ok {
		return notAList(args[0])
	}
	return feelvalue.ListValue{Items: flattenInto(nil, items)}
}

func flattenInto(out []feelvalue.Value, items []feelvalue.Value) []feelvalue.Value {
	for _, it := range items {
		if nested, ok := it.(feelvalue.ListValue); ok {
			out = flattenInto(out, nested.Items)
		} else {
			out = append(out, it)
		}
	}
	return out
}

// Sort implements the DMN `sort(list, precedesFn)` BIF: precedesFn is a
// two-parameter FEEL function returning a boolean for "a should sort
// before b".
func Sort(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("sort")
	}
	items, ok := asList(args[0])
	if !ok {
		return notAList(args[0])
	}
	precedes, ok := args[1].(feelvalue.FunctionValue)
	if !ok {
		return nullf(feelerr.TypeMismatch, feelerr.MsgTypeMismatch, "function", args[1].TypeOf())
	}
	out := append([]feelvalue.Value(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		b, ok := precedes.Call([]feelvalue.Value{out[i], out[j]}).(feelvalue.BooleanValue)
		return ok && bool(b)
	})
	return feelvalue.ListValue{Items: out}
}
