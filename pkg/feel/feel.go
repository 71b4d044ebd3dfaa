// Package feel is the stable public facade over the FEEL expression engine
// (internal/feelast, internal/feeleval, internal/feelbif, internal/feelitem
// and friends), mirroring the role the teacher's pkg/dwscript plays over
// internal/interp: callers outside this module only ever import this
// package and internal/feelast (to build the AST they want evaluated) and
// internal/feelvalue (to read results back out).
//
// Parsing FEEL source text and the DMN XML/DRG metamodel are explicit
// Non-goals (spec.md §1); callers construct or otherwise obtain an
// internal/feelast.Node and hand it to Evaluate.
package feel

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feelbif/dispatch"
	"github.com/cwbudde/go-dmn-feel/internal/feeleval"
	"github.com/cwbudde/go-dmn-feel/internal/feelitem"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelscope"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// Value re-exports feelvalue.Value so callers rarely need to import the
// internal package directly.
type Value = feelvalue.Value

// Node re-exports feelast.Node for the same reason.
type Node = feelast.Node

// Context is one FEEL evaluation environment: the built-in function
// table and any registered ItemDefinitions, both immutable once built, and
// a fresh input frame per Evaluate call. A Context is safe for concurrent
// use by multiple goroutines evaluating different expressions, since
// feelscope.Scope (the only mutable piece) is created per call, never
// shared (spec.md §5).
type Context struct {
	builtins *dispatch.Registry
	items    *feelitem.Registry
}

// New builds a Context with the standard built-in function library
// installed. Pass ItemDefinitions built from feelitem.Definition via
// WithItemDefinitions if the expressions being evaluated reference
// type-checked input data.
func New() *Context {
	return &Context{
		builtins: dispatch.Default(),
		items:    feelitem.NewRegistry(),
	}
}

// WithItemDefinitions compiles and registers the given item definitions,
// making them available to ValidateInput. Returns an error if a definition
// names an unsupported simple FEEL type.
func (c *Context) WithItemDefinitions(defs ...*feelitem.Definition) error {
	return c.items.Build(defs...)
}

// ValidateInput runs the ItemDefinition registered under typeRef against
// value, returning either the (possibly rebuilt) conforming value or a
// diagnostic Null (spec.md §4.11).
func (c *Context) ValidateInput(typeRef string, value Value) Value {
	return c.items.Eval(typeRef, value)
}

// Evaluate compiles and runs node against the given input context
// (typically the decision's input data, already validated via
// ValidateInput where an ItemDefinition applies), returning its FEEL
// value. Evaluate never panics and never returns a Go error: every
// failure materializes as a feelvalue.NullValue carrying a diagnostic
// trace (spec.md §7), exactly like C6's Closure contract.
func (c *Context) Evaluate(node Node, input *feelvalue.ContextValue) Value {
	scope := c.newScope(input)
	return feeleval.Compile(node)(scope)
}

// newScope builds a Scope whose bottom frame has every built-in bound
// under its canonical FEEL name and whose top frame holds input (or an
// empty context if input is nil), so a user-defined name of the same
// spelling in input shadows the built-in, matching FEEL's own name
// resolution order (spec.md §3).
func (c *Context) newScope(input *feelvalue.ContextValue) *feelscope.Scope {
	if input == nil {
		input = feelvalue.NewContext()
	}
	scope := feelscope.New()
	dispatch.Install(scope, c.builtins)
	scope.PushFrame(input)
	return scope
}

// LookupBuiltin returns the built-in registered under name, e.g. for
// embedding into a caller-constructed FunctionInvocation without going
// through Evaluate's scope wiring.
func (c *Context) LookupBuiltin(name string) (feelvalue.FunctionValue, bool) {
	return c.builtins.Lookup(name)
}

// ResolveName wraps feelname.FromString for callers building
// feelast.NameRef-adjacent structures without importing internal/feelname
// directly.
func ResolveName(s string) feelname.Name { return feelname.FromString(s) }
