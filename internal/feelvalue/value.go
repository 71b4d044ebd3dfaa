// Package feelvalue implements Value (C5): the single tagged union of all
// FEEL runtime values, following the teacher's ast.Node idiom (a marker
// interface plus one concrete struct per variant) since Go has no native
// sum type.
package feelvalue

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelnum"
	"github.com/cwbudde/go-dmn-feel/internal/feeltime"
	"github.com/cwbudde/go-dmn-feel/internal/feeltype"
)

// Value is the marker interface every FEEL runtime value implements.
// valueNode is unexported so only this package can add variants, matching
// ast.Node's expressionNode()/statementNode() closed-world idiom.
type Value interface {
	fmt.Stringer
	valueNode()
	// TypeOf returns this value's FeelType.
	TypeOf() feeltype.Type
	// ToFeelString renders the value in FEEL's own round-trippable quoted
	// form (e.g. a String value renders as `"text"`, not `text`).
	ToFeelString() string
}

// --- Boolean ---

type BooleanValue bool

func (BooleanValue) valueNode() {}
func (v BooleanValue) TypeOf() feeltype.Type { return feeltype.Boolean() }
func (v BooleanValue) String() string {
	if v {
		return "true"
	}
	return "false"
}
func (v BooleanValue) ToFeelString() string { return v.String() }

// --- Number ---

type NumberValue struct{ N feelnum.Number }

func (NumberValue) valueNode() {}
func (v NumberValue) TypeOf() feeltype.Type  { return feeltype.Number() }
func (v NumberValue) String() string         { return v.N.String() }
func (v NumberValue) ToFeelString() string   { return v.N.String() }

// --- String ---

type StringValue string

func (StringValue) valueNode() {}
func (v StringValue) TypeOf() feeltype.Type { return feeltype.String() }
func (v StringValue) String() string        { return string(v) }

// ToFeelString quotes the string and escapes embedded double quotes,
// matching the source's `value.replace("\"", "\\\"")`.
func (v StringValue) ToFeelString() string {
	escaped := strings.ReplaceAll(string(v), `"`, `\"`)
	return `"` + escaped + `"`
}

// --- Date / Time / DateTime ---

type DateValue struct{ D feeltime.Date }

func (DateValue) valueNode() {}
func (v DateValue) TypeOf() feeltype.Type { return feeltype.Date() }
func (v DateValue) String() string        { return v.D.String() }
func (v DateValue) ToFeelString() string  { return `date("` + v.D.String() + `")` }

type TimeValue struct{ T feeltime.Time }

func (TimeValue) valueNode() {}
func (v TimeValue) TypeOf() feeltype.Type { return feeltype.Time() }
func (v TimeValue) String() string        { return v.T.String() }
func (v TimeValue) ToFeelString() string  { return `time("` + v.T.String() + `")` }

type DateTimeValue struct{ DT feeltime.DateTime }

func (DateTimeValue) valueNode() {}
func (v DateTimeValue) TypeOf() feeltype.Type { return feeltype.DateTime() }
func (v DateTimeValue) String() string        { return v.DT.String() }
func (v DateTimeValue) ToFeelString() string  { return `date and time("` + v.DT.String() + `")` }

// --- Durations ---

type DaysAndTimeDurationValue struct{ D feeltime.DaysAndTimeDuration }

func (DaysAndTimeDurationValue) valueNode() {}
func (v DaysAndTimeDurationValue) TypeOf() feeltype.Type { return feeltype.DaysAndTimeDuration() }
func (v DaysAndTimeDurationValue) String() string        { return v.D.String() }
func (v DaysAndTimeDurationValue) ToFeelString() string  { return `duration("` + v.D.String() + `")` }

type YearsAndMonthsDurationValue struct{ D feeltime.YearsAndMonthsDuration }

func (YearsAndMonthsDurationValue) valueNode() {}
func (v YearsAndMonthsDurationValue) TypeOf() feeltype.Type { return feeltype.YearsAndMonthsDuration() }
func (v YearsAndMonthsDurationValue) String() string        { return v.D.String() }
func (v YearsAndMonthsDurationValue) ToFeelString() string  { return `duration("` + v.D.String() + `")` }

// --- List ---

type ListValue struct{ Items []Value }

func (ListValue) valueNode() {}

func (v ListValue) TypeOf() feeltype.Type {
	if len(v.Items) == 0 {
		return feeltype.List(feeltype.Any())
	}
	elem := v.Items[0].TypeOf()
	for _, it := range v.Items[1:] {
		elem = elem.Zip(it.TypeOf())
	}
	return feeltype.List(elem)
}

func (v ListValue) String() string {
	parts := make([]string, len(v.Items))
	for i, it := range v.Items {
		parts[i] = it.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (v ListValue) ToFeelString() string {
	parts := make([]string, len(v.Items))
	for i, it := range v.Items {
		parts[i] = it.ToFeelString()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// --- Range ---

type RangeValue struct {
	Start       Value
	StartClosed bool
	End         Value
	EndClosed   bool
}

func (RangeValue) valueNode() {}

func (v RangeValue) TypeOf() feeltype.Type {
	return feeltype.Range(v.Start.TypeOf().Zip(v.End.TypeOf()))
}

func (v RangeValue) String() string {
	open, close := "(", ")"
	if v.StartClosed {
		open = "["
	}
	if v.EndClosed {
		close = "]"
	}
	return open + v.Start.String() + ".." + v.End.String() + close
}

func (v RangeValue) ToFeelString() string {
	open, close := "(", ")"
	if v.StartClosed {
		open = "["
	}
	if v.EndClosed {
		close = "]"
	}
	return open + v.Start.ToFeelString() + ".." + v.End.ToFeelString() + close
}

// IsEmpty reports whether the range is empty: start > end, or start == end
// with either bound open. Assumes Start/End are ternary-comparable; callers
// must check that before relying on this.
func (v RangeValue) IsEmpty(cmp int) bool {
	if cmp > 0 {
		return true
	}
	if cmp == 0 {
		return !v.StartClosed || !v.EndClosed
	}
	return false
}

// --- Function ---

// FunctionValue wraps a callable: a user-defined FEEL function closure or a
// built-in (C9). Call is a plain Go closure (not feeleval.Closure, to avoid
// a feelvalue<->feeleval import cycle); the evaluator captures whatever
// Scope/state it needs when it builds Call.
type FunctionValue struct {
	Name       string
	ParamNames []feelname.Name
	ParamTypes []feeltype.Type
	ResultType feeltype.Type
	Call       func(args []Value) Value
	// NamedCall, if set, resolves a named-argument invocation directly from
	// the caller-supplied name->value map, instead of the single fixed
	// ParamNames binding Call otherwise implies. Built-ins that accept more
	// than one named-parameter combination (e.g. `before` over point1+point2,
	// point+range, or range1+range2) set this to try each combination in
	// turn; ordinary functions leave it nil and are bound via ParamNames.
	NamedCall func(named map[string]Value) Value
}

func (FunctionValue) valueNode() {}
func (v FunctionValue) TypeOf() feeltype.Type {
	return feeltype.Function(v.ParamTypes, v.ResultType)
}
func (v FunctionValue) String() string {
	if v.Name != "" {
		return "function " + v.Name
	}
	return "function"
}
func (v FunctionValue) ToFeelString() string { return v.String() }

// --- Null ---

// NullValue is FEEL's null, optionally carrying a diagnostic trace used by
// tests and by the top-level model evaluator to locate the first failing
// subexpression (spec.md §7).
type NullValue struct{ Trace string }

func (NullValue) valueNode() {}
func (v NullValue) TypeOf() feeltype.Type { return feeltype.Null() }
func (v NullValue) String() string {
	if v.Trace == "" {
		return "null"
	}
	return "null(" + v.Trace + ")"
}
func (v NullValue) ToFeelString() string { return "null" }

// Null constructs a NullValue with no diagnostic.
func Null() NullValue { return NullValue{} }

// NullWithTrace constructs a NullValue carrying a diagnostic string.
func NullWithTrace(trace string) NullValue { return NullValue{Trace: trace} }

// NullWithTracef is a Printf-style convenience for NullWithTrace.
func NullWithTracef(format string, args ...any) NullValue {
	return NullValue{Trace: fmt.Sprintf(format, args...)}
}

// IsNull reports whether v is a NullValue, regardless of trace.
func IsNull(v Value) bool {
	_, ok := v.(NullValue)
	return ok
}

// --- Context ---

// ContextEntryPair is one key/value pair in insertion order.
type ContextEntryPair struct {
	Name  feelname.Name
	Value Value
}

// ContextValue is an ordered map Name->Value, preserving insertion order of
// first insertion (spec.md §3's explicit invariant; see DESIGN.md for why
// this deliberately diverges from the Rust source's BTreeMap-backed sorted
// order).
type ContextValue struct {
	entries []ContextEntryPair
	index   map[string]int
}

func NewContext() *ContextValue {
	return &ContextValue{index: make(map[string]int)}
}

func (ContextValue) valueNode() {}

func (c *ContextValue) TypeOf() feeltype.Type {
	entries := make([]feeltype.ContextEntry, len(c.entries))
	for i, e := range c.entries {
		entries[i] = feeltype.ContextEntry{Name: e.Name, Type: e.Value.TypeOf()}
	}
	return feeltype.Context(entries...)
}

func (c *ContextValue) String() string {
	parts := make([]string, len(c.entries))
	for i, e := range c.entries {
		parts[i] = e.Name.String() + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (c *ContextValue) ToFeelString() string {
	parts := make([]string, len(c.entries))
	for i, e := range c.entries {
		parts[i] = e.Name.String() + ": " + e.Value.ToFeelString()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// SetEntry inserts or updates an entry, preserving the original insertion
// position on update.
func (c *ContextValue) SetEntry(name feelname.Name, value Value) {
	key := name.String()
	if i, ok := c.index[key]; ok {
		c.entries[i].Value = value
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, ContextEntryPair{Name: name, Value: value})
}

// GetEntry returns the value for name, or (Null, false) if absent.
func (c *ContextValue) GetEntry(name feelname.Name) (Value, bool) {
	if i, ok := c.index[name.String()]; ok {
		return c.entries[i].Value, true
	}
	return nil, false
}

// ContainsEntry reports whether name is a direct (non-deep) entry.
func (c *ContextValue) ContainsEntry(name feelname.Name) bool {
	_, ok := c.index[name.String()]
	return ok
}

// Entries returns all entries in insertion order.
func (c *ContextValue) Entries() []ContextEntryPair {
	cp := make([]ContextEntryPair, len(c.entries))
	copy(cp, c.entries)
	return cp
}

func (c *ContextValue) Len() int      { return len(c.entries) }
func (c *ContextValue) IsEmpty() bool { return len(c.entries) == 0 }

// Clone returns a shallow copy suitable for a locally-owned mutation
// (spec.md §3: "mutation ... occurs only on a locally owned copy").
func (c *ContextValue) Clone() *ContextValue {
	cp := NewContext()
	for _, e := range c.entries {
		cp.SetEntry(e.Name, e.Value)
	}
	return cp
}

// Zip merges all of other's entries into a clone of c (other wins on
// conflicts), matching the source's `zip`.
func (c *ContextValue) Zip(other *ContextValue) *ContextValue {
	cp := c.Clone()
	for _, e := range other.entries {
		cp.SetEntry(e.Name, e.Value)
	}
	return cp
}

// Overwrite merges only entries of other whose key already exists in c,
// matching the source's `overwrite`.
func (c *ContextValue) Overwrite(other *ContextValue) *ContextValue {
	cp := c.Clone()
	for _, e := range other.entries {
		if cp.ContainsEntry(e.Name) {
			cp.SetEntry(e.Name, e.Value)
		}
	}
	return cp
}

// FlattenKeys returns the breadth-first set of dotted-path keys reachable
// from c, recursing into nested contexts (directly, inside lists, or
// inside a context-typed value's own nested contexts), matching the
// source's flatten_keys.
func (c *ContextValue) FlattenKeys() map[string]struct{} {
	keys := make(map[string]struct{})
	c.flattenKeysInto("", keys)
	return keys
}

func (c *ContextValue) flattenKeysInto(prefix string, keys map[string]struct{}) {
	for _, e := range c.entries {
		path := e.Name.String()
		if prefix != "" {
			path = prefix + "." + path
		}
		keys[path] = struct{}{}
		switch nested := e.Value.(type) {
		case *ContextValue:
			nested.flattenKeysInto(path, keys)
		case ListValue:
			for _, item := range nested.Items {
				if ctx, ok := item.(*ContextValue); ok {
					ctx.flattenKeysInto(path, keys)
				}
			}
		}
	}
}
