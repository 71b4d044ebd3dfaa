package feelvalue

import "github.com/cwbudde/go-dmn-feel/internal/feeltype"

// Coerce implements C4's coerce(target, value):
//  1. If value's type conforms to target, return value unchanged.
//  2. If target is a List<T> and value's type conforms to T, wrap value in
//     a singleton list.
//  3. If value is a singleton List<T> with T conformant to target, unwrap
//     the sole element.
//  4. Otherwise Null.
func Coerce(target feeltype.Type, value Value) Value {
	if value.TypeOf().IsConformant(target) {
		return value
	}
	if target.Kind == feeltype.KindList && target.Elem != nil {
		if value.TypeOf().IsConformant(*target.Elem) {
			return ListValue{Items: []Value{value}}
		}
	}
	if list, ok := value.(ListValue); ok && len(list.Items) == 1 {
		if list.Items[0].TypeOf().IsConformant(target) {
			return list.Items[0]
		}
	}
	return NullWithTracef("cannot coerce value of type %s to %s", value.TypeOf(), target)
}

// GetValueChecked recursively enforces `target` against `value`, pruning a
// Context down to only the entries named by a Context target type, and
// failing with a descriptive Null on mismatch, matching C4's
// get_value_checked.
func GetValueChecked(target feeltype.Type, value Value) Value {
	if target.Kind == feeltype.KindContext {
		ctx, ok := value.(*ContextValue)
		if !ok {
			return NullWithTracef("expected a context conformant to %s, got %s", target, value.TypeOf())
		}
		pruned := NewContext()
		for _, entry := range target.Entries {
			v, present := ctx.GetEntry(entry.Name)
			if !present {
				return NullWithTracef("context is missing required entry '%s'", entry.Name)
			}
			checked := GetValueChecked(entry.Type, v)
			if IsNull(checked) {
				return checked
			}
			pruned.SetEntry(entry.Name, checked)
		}
		return pruned
	}
	return Coerce(target, value)
}
