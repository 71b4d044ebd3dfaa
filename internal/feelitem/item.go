// Package feelitem implements ItemDefinition (C11): compiles a typed schema
// (simple, referenced, component, or collection-of-*) into a validator
// closure, grounded on original_source's model-evaluator/src/builders/
// item_definition.rs closure-table builder pattern.
package feelitem

import (
	"fmt"
	"sync"

	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feeleval"
	"github.com/cwbudde/go-dmn-feel/internal/feelerr"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelscope"
	"github.com/cwbudde/go-dmn-feel/internal/feeltype"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// nullf builds a diagnostic Null from the feelerr catalog, the same
// convention C6 and C9 use, so an ItemDefinition violation is
// indistinguishable in shape from any other evaluator failure.
func nullf(cat feelerr.Category, format string, args ...any) feelvalue.Value {
	return feelvalue.NullWithTrace(feelerr.New(cat, format, args...).String())
}

// Kind discriminates the shapes an ItemDefinition may take.
type Kind int

const (
	KindSimple Kind = iota
	KindReferenced
	KindComponent
	KindCollectionOfSimple
	KindCollectionOfReferenced
	KindCollectionOfComponent
)

// Component is one named member of a component-shaped item definition.
type Component struct {
	Name       feelname.Name
	Definition *Definition
}

// Definition is a typed schema for a value exchanged with the outside
// world. TypeRef names the schema for Registry lookup (set on every
// top-level definition passed to Build; components and collection element
// types may leave it empty since they're only reachable structurally).
// AllowedValues, if non-nil, is a FEEL unary-tests expression evaluated
// with the candidate value bound to "?"; a non-true result rejects the
// value (spec.md §4.11).
type Definition struct {
	TypeRef        string
	Kind           Kind
	SimpleType     feeltype.Type
	ReferencedType string
	Components     []Component
	AllowedValues  feelast.Node
}

// EvaluatorFn is a compiled validator: given a candidate value and the
// registry it was built against (needed to resolve referenced types
// late), it returns either the (possibly rebuilt) conforming value or a
// diagnostic Null.
type EvaluatorFn func(value feelvalue.Value, reg *Registry) feelvalue.Value

// Registry holds one compiled EvaluatorFn per registered type reference
// name. Referenced types resolve by name at evaluation time rather than by
// structural recursion at build time, so self-referential or mutually
// cyclic schemas compile without infinite recursion (spec.md: "Cyclic
// references in ItemDefinition").
type Registry struct {
	mu         sync.RWMutex
	evaluators map[string]EvaluatorFn
}

func NewRegistry() *Registry {
	return &Registry{evaluators: make(map[string]EvaluatorFn)}
}

// Build compiles each definition and registers it under its TypeRef. A
// definition with an empty TypeRef is compiled but not registered (useful
// for one-off validation without exposing the schema to referenced-type
// lookups).
func (r *Registry) Build(defs ...*Definition) error {
	for _, def := range defs {
		ev, err := buildEvaluator(def)
		if err != nil {
			return err
		}
		if def.TypeRef == "" {
			continue
		}
		r.mu.Lock()
		r.evaluators[def.TypeRef] = ev
		r.mu.Unlock()
	}
	return nil
}

// Eval validates value against the item definition registered under
// typeRef, returning a diagnostic Null if no such definition exists.
func (r *Registry) Eval(typeRef string, value feelvalue.Value) feelvalue.Value {
	result, ok := r.eval(typeRef, value)
	if !ok {
		return nullf(feelerr.ItemDefinitionViol, "no item definition registered for type reference '%s'", typeRef)
	}
	return result
}

// Get returns the compiled evaluator registered under typeRef, if any.
func (r *Registry) Get(typeRef string) (EvaluatorFn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ev, ok := r.evaluators[typeRef]
	return ev, ok
}

func (r *Registry) eval(typeRef string, value feelvalue.Value) (feelvalue.Value, bool) {
	r.mu.RLock()
	ev, ok := r.evaluators[typeRef]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return ev(value, r), true
}

// buildEvaluator dispatches on def.Kind to produce the compiled validator.
func buildEvaluator(def *Definition) (EvaluatorFn, error) {
	av := compileAllowedValues(def.AllowedValues)
	switch def.Kind {
	case KindSimple:
		return buildSimpleTypeEvaluator(def.SimpleType, av)
	case KindReferenced:
		return buildReferencedTypeEvaluator(def.ReferencedType), nil
	case KindComponent:
		return buildComponentTypeEvaluator(def, av)
	case KindCollectionOfSimple:
		return buildCollectionOfSimpleTypeEvaluator(def.SimpleType, av)
	case KindCollectionOfReferenced:
		return buildCollectionOfReferencedTypeEvaluator(def.ReferencedType, av), nil
	case KindCollectionOfComponent:
		return buildCollectionOfComponentTypeEvaluator(def, av)
	default:
		return nil, fmt.Errorf("feelitem: unknown item definition kind %d", def.Kind)
	}
}

// compileAllowedValues wraps an allowedValues unary-tests node as `? in
// <node>` and compiles it once, matching the source's AstNode::In wrapping
// of the parsed unary tests around the implicit "?" subject.
func compileAllowedValues(node feelast.Node) feeleval.Closure {
	if node == nil {
		return nil
	}
	return feeleval.Compile(feelast.In{Left: feelast.NameRef{Text: "?"}, Right: node})
}

// checkAllowedValues evaluates the compiled allowedValues closure (if any)
// against value bound to "?"; a non-true result rejects the value.
func checkAllowedValues(value feelvalue.Value, av feeleval.Closure) feelvalue.Value {
	if av == nil {
		return value
	}
	scope := feelscope.New()
	scope.SetEntry(feelname.Of("?"), value)
	if av(scope) == feelvalue.BooleanValue(true) {
		return value
	}
	return nullf(feelerr.ItemDefinitionViol, "value not allowed")
}

// simpleTypeCheck reports whether a candidate value's dynamic Go type
// matches the FEEL simple type named by label.
type simpleTypeCheck struct {
	label string
	match func(feelvalue.Value) bool
}

func simpleTypeCheckFor(t feeltype.Type) (simpleTypeCheck, error) {
	switch t.Kind {
	case feeltype.KindString:
		return simpleTypeCheck{"string", func(v feelvalue.Value) bool { _, ok := v.(feelvalue.StringValue); return ok }}, nil
	case feeltype.KindNumber:
		return simpleTypeCheck{"number", func(v feelvalue.Value) bool { _, ok := v.(feelvalue.NumberValue); return ok }}, nil
	case feeltype.KindBoolean:
		return simpleTypeCheck{"boolean", func(v feelvalue.Value) bool { _, ok := v.(feelvalue.BooleanValue); return ok }}, nil
	case feeltype.KindDate:
		return simpleTypeCheck{"date", func(v feelvalue.Value) bool { _, ok := v.(feelvalue.DateValue); return ok }}, nil
	case feeltype.KindTime:
		return simpleTypeCheck{"time", func(v feelvalue.Value) bool { _, ok := v.(feelvalue.TimeValue); return ok }}, nil
	case feeltype.KindDateTime:
		return simpleTypeCheck{"date and time", func(v feelvalue.Value) bool { _, ok := v.(feelvalue.DateTimeValue); return ok }}, nil
	case feeltype.KindDaysAndTimeDuration:
		return simpleTypeCheck{"days and time duration", func(v feelvalue.Value) bool {
			_, ok := v.(feelvalue.DaysAndTimeDurationValue)
			return ok
		}}, nil
	case feeltype.KindYearsAndMonthsDuration:
		return simpleTypeCheck{"years and months duration", func(v feelvalue.Value) bool {
			_, ok := v.(feelvalue.YearsAndMonthsDurationValue)
			return ok
		}}, nil
	default:
		return simpleTypeCheck{}, fmt.Errorf("feelitem: unsupported simple feel type '%s'", t.String())
	}
}

func buildSimpleTypeEvaluator(t feeltype.Type, av feeleval.Closure) (EvaluatorFn, error) {
	check, err := simpleTypeCheckFor(t)
	if err != nil {
		return nil, err
	}
	return func(value feelvalue.Value, _ *Registry) feelvalue.Value {
		if !check.match(value) {
			return nullf(feelerr.TypeMismatch, "expected type '%s', actual type is '%s' in value '%s'", check.label, value.TypeOf(), value)
		}
		return checkAllowedValues(value, av)
	}, nil
}

func buildReferencedTypeEvaluator(refType string) EvaluatorFn {
	return func(value feelvalue.Value, reg *Registry) feelvalue.Value {
		if result, ok := reg.eval(refType, value); ok {
			return result
		}
		return nullf(feelerr.ItemDefinitionViol, "no evaluator defined for type reference '%s'", refType)
	}
}

type componentEvaluator struct {
	name feelname.Name
	eval EvaluatorFn
}

func buildComponentEvaluators(components []Component) ([]componentEvaluator, error) {
	evals := make([]componentEvaluator, 0, len(components))
	for _, c := range components {
		ev, err := buildEvaluator(c.Definition)
		if err != nil {
			return nil, err
		}
		evals = append(evals, componentEvaluator{name: c.Name, eval: ev})
	}
	return evals, nil
}

// componentContextType builds the feeltype.Type surrogate that
// GetValueChecked needs to enforce "is a context and names every declared
// component" — the structural half of component validation. Each entry's
// declared type is Any: the per-component type/allowedValues check itself
// is still each componentEvaluator's job, run afterward in evaluateComponents.
func componentContextType(comps []componentEvaluator) feeltype.Type {
	entries := make([]feeltype.ContextEntry, len(comps))
	for i, c := range comps {
		entries[i] = feeltype.ContextEntry{Name: c.name, Type: feeltype.Any()}
	}
	return feeltype.Context(entries...)
}

func buildComponentTypeEvaluator(def *Definition, av feeleval.Closure) (EvaluatorFn, error) {
	comps, err := buildComponentEvaluators(def.Components)
	if err != nil {
		return nil, err
	}
	return func(value feelvalue.Value, reg *Registry) feelvalue.Value {
		ctx, ok := value.(*feelvalue.ContextValue)
		if !ok {
			return nullf(feelerr.TypeMismatch, "expected context value, actual value is '%s'", value)
		}
		result := evaluateComponents(comps, ctx, reg)
		if feelvalue.IsNull(result) {
			return result
		}
		return checkAllowedValues(result, av)
	}, nil
}

// evaluateComponents runs every component evaluator against its named
// entry in ctx. The structural part (is ctx a context, is every declared
// name present) is delegated to feelvalue.GetValueChecked so component
// validation shares the same pruning/missing-name mechanism get_value_checked
// gives the rest of C4, rather than reimplementing it here; the pruned
// entries are then run through each component's own evaluator (which
// handles nested kinds, referenced-type resolution, and allowedValues that
// GetValueChecked itself knows nothing about).
func evaluateComponents(comps []componentEvaluator, ctx *feelvalue.ContextValue, reg *Registry) feelvalue.Value {
	pruned := feelvalue.GetValueChecked(componentContextType(comps), ctx)
	prunedCtx, ok := pruned.(*feelvalue.ContextValue)
	if !ok {
		return pruned
	}
	result := feelvalue.NewContext()
	for _, c := range comps {
		v, _ := prunedCtx.GetEntry(c.name)
		evaluated := c.eval(v, reg)
		if feelvalue.IsNull(evaluated) {
			return evaluated
		}
		result.SetEntry(c.name, evaluated)
	}
	return result
}

func buildCollectionOfSimpleTypeEvaluator(t feeltype.Type, av feeleval.Closure) (EvaluatorFn, error) {
	check, err := simpleTypeCheckFor(t)
	if err != nil {
		return nil, err
	}
	return func(value feelvalue.Value, _ *Registry) feelvalue.Value {
		items, ok := value.(feelvalue.ListValue)
		if !ok {
			return nullf(feelerr.TypeMismatch, "expected list, actual value is not a list")
		}
		for _, item := range items.Items {
			if !check.match(item) {
				return nullf(feelerr.TypeMismatch, "expected item of type '%s', actual type is '%s' in value '%s'", check.label, item.TypeOf(), item)
			}
		}
		return checkAllowedValues(value, av)
	}, nil
}

func buildCollectionOfReferencedTypeEvaluator(refType string, av feeleval.Closure) EvaluatorFn {
	return func(value feelvalue.Value, reg *Registry) feelvalue.Value {
		items, ok := value.(feelvalue.ListValue)
		if !ok {
			return nullf(feelerr.TypeMismatch, "expected list, actual type is '%s' in value '%s'", value.TypeOf(), value)
		}
		if _, ok := reg.Get(refType); !ok {
			return nullf(feelerr.ItemDefinitionViol, "no evaluator defined for type reference '%s'", refType)
		}
		evaluated := make([]feelvalue.Value, len(items.Items))
		for i, item := range items.Items {
			result, _ := reg.eval(refType, item)
			evaluated[i] = result
		}
		return checkAllowedValues(feelvalue.ListValue{Items: evaluated}, av)
	}
}

func buildCollectionOfComponentTypeEvaluator(def *Definition, av feeleval.Closure) (EvaluatorFn, error) {
	comps, err := buildComponentEvaluators(def.Components)
	if err != nil {
		return nil, err
	}
	return func(value feelvalue.Value, reg *Registry) feelvalue.Value {
		items, ok := value.(feelvalue.ListValue)
		if !ok {
			return nullf(feelerr.TypeMismatch, "expected list, actual type is '%s' in value '%s'", value.TypeOf(), value)
		}
		evaluated := make([]feelvalue.Value, len(items.Items))
		for i, item := range items.Items {
			ctx, ok := item.(*feelvalue.ContextValue)
			if !ok {
				return nullf(feelerr.TypeMismatch, "expected context, actual type is '%s' in value '%s'", item.TypeOf(), item)
			}
			result := evaluateComponents(comps, ctx, reg)
			if feelvalue.IsNull(result) {
				return result
			}
			evaluated[i] = result
		}
		return checkAllowedValues(feelvalue.ListValue{Items: evaluated}, av)
	}, nil
}
