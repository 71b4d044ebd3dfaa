// Package dispatch implements C10: the name-to-implementation table for
// C9's built-in function library, grounded on the teacher's
// internal/interp/builtins.Registry (case-insensitive name lookup plus
// category bookkeeping) adapted to FEEL's space-containing, case-sensitive
// names and to feelvalue.FunctionValue as the installed representation.
package dispatch

import (
	"sort"
	"sync"

	"github.com/cwbudde/go-dmn-feel/internal/feelbif"
	"github.com/cwbudde/go-dmn-feel/internal/feelerr"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feeltype"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// Category groups related built-ins for documentation/introspection, as
// the teacher's builtins.Category does.
type Category string

const (
	CategoryNumeric  Category = "numeric"
	CategoryString   Category = "string"
	CategoryList     Category = "list"
	CategoryContext  Category = "context"
	CategoryTemporal Category = "temporal"
	CategoryRange    Category = "range"
	CategoryBoolean  Category = "boolean"
)

// entry holds one built-in's implementation plus the metadata needed to
// wire it into a feelvalue.FunctionValue. paramNameSets holds every
// named-parameter combination the built-in accepts, tried in the given
// order against the caller's supplied names (most built-ins have exactly
// one; polymorphic range/point relations like `before` have several).
type entry struct {
	name          string
	fn            feelbif.BIF
	category      Category
	paramNameSets [][]string
}

// Registry is a lookup table from FEEL built-in name to its
// feelvalue.FunctionValue, built once at init time and read thereafter
// (Register is not meant to be called concurrently with lookups).
type Registry struct {
	mu         sync.RWMutex
	entries    map[string]*entry
	categories map[Category][]string
}

func NewRegistry() *Registry {
	return &Registry{
		entries:    make(map[string]*entry),
		categories: make(map[Category][]string),
	}
}

// Register adds a built-in. paramNames is optional metadata used to build
// the FunctionValue's ParamNames for named-argument invocation; pass nil
// for variadic/overloaded built-ins that only support positional calls.
func (r *Registry) Register(name string, fn feelbif.BIF, category Category, paramNames ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sets [][]string
	if len(paramNames) > 0 {
		sets = [][]string{paramNames}
	}
	if _, exists := r.entries[name]; !exists {
		r.categories[category] = append(r.categories[category], name)
	}
	r.entries[name] = &entry{name: name, fn: fn, category: category, paramNameSets: sets}
}

// RegisterCombos adds a built-in that accepts several alternative
// named-parameter combinations, tried in the given order until one is fully
// satisfied by the caller's supplied names — e.g. `before` tries
// point1+point2, then point+range, then range1+range2 (spec.md's
// polymorphic range/point relation contract), rather than a single fixed
// parameter-name pair.
func (r *Registry) RegisterCombos(name string, fn feelbif.BIF, category Category, combos ...[]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; !exists {
		r.categories[category] = append(r.categories[category], name)
	}
	r.entries[name] = &entry{name: name, fn: fn, category: category, paramNameSets: combos}
}

// Lookup returns the named built-in wrapped as a FunctionValue, ready to
// be bound into a feelscope.Scope's top-level frame.
func (r *Registry) Lookup(name string) (feelvalue.FunctionValue, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return feelvalue.FunctionValue{}, false
	}
	return e.toFunctionValue(), true
}

func (e *entry) toFunctionValue() feelvalue.FunctionValue {
	var paramNames []feelname.Name
	var paramTypes []feeltype.Type
	if len(e.paramNameSets) > 0 {
		primary := e.paramNameSets[0]
		paramNames = make([]feelname.Name, len(primary))
		paramTypes = make([]feeltype.Type, len(primary))
		for i, p := range primary {
			paramNames[i] = feelname.FromString(p)
			paramTypes[i] = feeltype.Any()
		}
	}
	fn := e.fn
	return feelvalue.FunctionValue{
		Name:       e.name,
		ParamNames: paramNames,
		ParamTypes: paramTypes,
		ResultType: feeltype.Any(),
		Call:       func(args []feelvalue.Value) feelvalue.Value { return fn(args) },
		NamedCall:  e.namedCall(),
	}
}

// namedCall builds the NamedCall trial over every registered parameter-name
// combination, in order; the first combination whose names are all present
// in the caller's bound arguments wins. Returns nil for built-ins with no
// combinations registered (positional-only), so feeleval falls back to its
// ordinary ParamNames-based binding (which for these built-ins is also
// empty, correctly failing named invocation per spec.md:197's
// append/concatenate/union exceptions).
func (e *entry) namedCall() func(map[string]feelvalue.Value) feelvalue.Value {
	if len(e.paramNameSets) == 0 {
		return nil
	}
	fn := e.fn
	combos := e.paramNameSets
	return func(bound map[string]feelvalue.Value) feelvalue.Value {
		for _, combo := range combos {
			args := make([]feelvalue.Value, len(combo))
			matched := true
			for i, pname := range combo {
				v, present := bound[pname]
				if !present {
					matched = false
					break
				}
				args[i] = v
			}
			if matched {
				return fn(args)
			}
		}
		return feelvalue.NullWithTrace(feelerr.New(feelerr.ArityMismatch, feelerr.MsgInvalidNamedParams).String())
	}
}

// Names returns every registered built-in name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for n := range r.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ByCategory returns the sorted names registered under category.
func (r *Registry) ByCategory(category Category) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := append([]string(nil), r.categories[category]...)
	sort.Strings(names)
	return names
}

// Count returns the number of registered built-ins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
