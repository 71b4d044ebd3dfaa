// Package feeltype implements FeelType (C4): the type lattice FEEL values
// live in, its conformance and equivalence relations, and value coercion.
package feeltype

import (
	"strings"

	"github.com/cwbudde/go-dmn-feel/internal/feelname"
)

// Kind discriminates the FeelType variants. Compound kinds (List, Range,
// Context, Function) carry additional fields on Type; scalar kinds use
// only Kind.
type Kind int

const (
	KindAny Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindDate
	KindTime
	KindDateTime
	KindDaysAndTimeDuration
	KindYearsAndMonthsDuration
	KindList
	KindRange
	KindContext
	KindFunction
)

// ContextEntry is one named, typed entry of a Context type. Order is
// preserved to match FeelContext's own insertion-order invariant, though
// conformance checking (see is_conformant below) does not depend on order.
type ContextEntry struct {
	Name feelname.Name
	Type Type
}

// Type is the tagged union of all FeelType variants (interface-over-struct
// would work equally well here; a single tagged struct is used because the
// compound variants recurse through *Type. and keeping everything in one
// type avoids an explosion of tiny marker-interface implementations for a
// domain this size).
type Type struct {
	Kind Kind

	// List, Range element type.
	Elem *Type

	// Function parameter and result types.
	Params []Type
	Result *Type

	// Context entries, in declaration order.
	Entries []ContextEntry
}

// Convenience scalar constructors.
func Any() Type                     { return Type{Kind: KindAny} }
func Null() Type                    { return Type{Kind: KindNull} }
func Boolean() Type                 { return Type{Kind: KindBoolean} }
func Number() Type                  { return Type{Kind: KindNumber} }
func String() Type                  { return Type{Kind: KindString} }
func Date() Type                    { return Type{Kind: KindDate} }
func Time() Type                    { return Type{Kind: KindTime} }
func DateTime() Type                { return Type{Kind: KindDateTime} }
func DaysAndTimeDuration() Type     { return Type{Kind: KindDaysAndTimeDuration} }
func YearsAndMonthsDuration() Type  { return Type{Kind: KindYearsAndMonthsDuration} }

func List(elem Type) Type  { return Type{Kind: KindList, Elem: &elem} }
func Range(elem Type) Type { return Type{Kind: KindRange, Elem: &elem} }

func Context(entries ...ContextEntry) Type {
	return Type{Kind: KindContext, Entries: entries}
}

func Function(params []Type, result Type) Type {
	return Type{Kind: KindFunction, Params: params, Result: &result}
}

var builtinNames = map[Kind]string{
	KindAny: "Any", KindNull: "Null", KindBoolean: "boolean", KindNumber: "number",
	KindString: "string", KindDate: "date", KindTime: "time", KindDateTime: "date and time",
	KindDaysAndTimeDuration: "days and time duration", KindYearsAndMonthsDuration: "years and months duration",
}

// IsSimpleBuiltInType reports whether t is one of the FEEL simple built-in
// types (as opposed to a compound List/Range/Context/Function type or Any).
func (t Type) IsSimpleBuiltInType() bool {
	switch t.Kind {
	case KindBoolean, KindNumber, KindString, KindDate, KindTime, KindDateTime,
		KindDaysAndTimeDuration, KindYearsAndMonthsDuration:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	if name, ok := builtinNames[t.Kind]; ok {
		return name
	}
	switch t.Kind {
	case KindList:
		return "list<" + t.Elem.String() + ">"
	case KindRange:
		return "range<" + t.Elem.String() + ">"
	case KindContext:
		parts := make([]string, len(t.Entries))
		for i, e := range t.Entries {
			parts[i] = e.Name.String() + ": " + e.Type.String()
		}
		return "context<" + strings.Join(parts, ", ") + ">"
	case KindFunction:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = p.String()
		}
		return "function<(" + strings.Join(parts, ", ") + ") -> " + t.Result.String() + ">"
	default:
		return "Any"
	}
}

// IsEquivalent is structural equality between two types.
func (t Type) IsEquivalent(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindList, KindRange:
		return t.Elem.IsEquivalent(*other.Elem)
	case KindContext:
		if len(t.Entries) != len(other.Entries) {
			return false
		}
		for _, e := range t.Entries {
			found := false
			for _, oe := range other.Entries {
				if e.Name.Equal(oe.Name) && e.Type.IsEquivalent(oe.Type) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	case KindFunction:
		if len(t.Params) != len(other.Params) {
			return false
		}
		for i := range t.Params {
			if !t.Params[i].IsEquivalent(other.Params[i]) {
				return false
			}
		}
		return t.Result.IsEquivalent(*other.Result)
	default:
		return true
	}
}

// IsConformant reports whether a value of type t may be used where `other`
// is expected. Reflexive; Null conforms to every type; every type conforms
// to Any. Compound rules:
//   - List: element-wise.
//   - Context: every entry of `other` (the target) must have a conformant
//     counterpart by name in t (the source); extra entries in t are
//     allowed. This direction is load-bearing: a wider context may be
//     passed where a narrower one is expected.
//   - Function: contravariant in parameters (other's parameter type must
//     conform to t's parameter type — reversed from the usual direction),
//     covariant in result (t's result must conform to other's result).
//   - Range: element-wise, same direction as List.
func (t Type) IsConformant(other Type) bool {
	if t.IsEquivalent(other) {
		return true
	}
	if t.Kind == KindNull {
		return true
	}
	if other.Kind == KindAny {
		return true
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindList, KindRange:
		return t.Elem.IsConformant(*other.Elem)
	case KindContext:
		for _, oe := range other.Entries {
			found := false
			for _, e := range t.Entries {
				if e.Name.Equal(oe.Name) && e.Type.IsConformant(oe.Type) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	case KindFunction:
		if len(t.Params) != len(other.Params) {
			return false
		}
		for i := range t.Params {
			if !other.Params[i].IsConformant(t.Params[i]) {
				return false
			}
		}
		return t.Result.IsConformant(*other.Result)
	default:
		return false
	}
}

// Zip returns t if t and other are equivalent, else Any — used when
// merging the inferred element type of a heterogeneous list.
func (t Type) Zip(other Type) Type {
	if t.IsEquivalent(other) {
		return t
	}
	return Any()
}
