package feeleval

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feelerr"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelscope"
	"github.com/cwbudde/go-dmn-feel/internal/feeltype"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// compileFunctionDefinition builds a closure over the scope active at the
// point the function literal is evaluated (its lexical defining scope),
// matching the source's closure-over-environment function value. External
// (Java/PMML-backed) function bodies are out of scope (spec.md Non-goals);
// FunctionBody.IsExternal bodies compile to a Null-returning stub.
func compileFunctionDefinition(n feelast.FunctionDefinition) Closure {
	paramNames := make([]feelname.Name, len(n.Params))
	paramTypes := make([]feeltype.Type, len(n.Params))
	for i, p := range n.Params {
		paramNames[i] = feelname.FromString(p.Name)
		paramTypes[i] = resolveType(p.Type)
	}
	resultType := resolveType(n.ResultType)

	var body Closure
	if n.Body.IsExternal {
		body = func(*feelscope.Scope) feelvalue.Value {
			return nullf(feelerr.ParseFailure, "externally implemented functions are not supported")
		}
	} else {
		body = Compile(n.Body.Expr)
	}

	return func(defScope *feelscope.Scope) feelvalue.Value {
		call := func(args []feelvalue.Value) feelvalue.Value {
			if len(args) != len(paramNames) {
				return nullf(feelerr.ArityMismatch, feelerr.MsgArityMismatch)
			}
			defScope.Push()
			defer defScope.Pop()
			for i, name := range paramNames {
				bound := feelvalue.Coerce(paramTypes[i], args[i])
				if feelvalue.IsNull(bound) && !feelvalue.IsNull(args[i]) {
					return bound
				}
				defScope.SetEntry(name, bound)
			}
			return feelvalue.Coerce(resultType, body(defScope))
		}
		return feelvalue.FunctionValue{
			ParamNames: paramNames,
			ParamTypes: paramTypes,
			ResultType: resultType,
			Call:       call,
		}
	}
}

type namedArg struct {
	name  feelname.Name
	value Closure
}

// compileFunctionInvocation supports both positional and named argument
// forms (spec.md §4.6's FunctionInvocation/PositionalParameters/
// NamedParameters); named arguments are resolved against the callee's
// declared ParamNames, so named invocation only works against a
// FunctionValue that actually declares parameter names (user-defined
// functions and any built-in that populates ParamNames).
func compileFunctionInvocation(n feelast.FunctionInvocation) Closure {
	callee := Compile(n.Callee)

	switch args := n.Args.(type) {
	case feelast.PositionalParameters:
		compiled := make([]Closure, len(args.Items))
		for i, a := range args.Items {
			compiled[i] = Compile(a)
		}
		return func(s *feelscope.Scope) feelvalue.Value {
			fn, ok := callee(s).(feelvalue.FunctionValue)
			if !ok {
				return nullf(feelerr.TypeMismatch, feelerr.MsgNotAContext)
			}
			values := make([]feelvalue.Value, len(compiled))
			for i, a := range compiled {
				values[i] = a(s)
			}
			return fn.Call(values)
		}

	case feelast.NamedParameters:
		compiled := make([]namedArg, len(args.Items))
		for i, a := range args.Items {
			compiled[i] = namedArg{name: feelname.FromString(a.Name), value: Compile(a.Expr)}
		}
		return func(s *feelscope.Scope) feelvalue.Value {
			fn, ok := callee(s).(feelvalue.FunctionValue)
			if !ok {
				return nullf(feelerr.TypeMismatch, feelerr.MsgNotAContext)
			}
			bound := make(map[string]feelvalue.Value, len(compiled))
			for _, a := range compiled {
				bound[a.name.String()] = a.value(s)
			}
			if fn.NamedCall != nil {
				return fn.NamedCall(bound)
			}
			values := make([]feelvalue.Value, len(fn.ParamNames))
			for i, pname := range fn.ParamNames {
				v, present := bound[pname.String()]
				if !present {
					return nullf(feelerr.ArityMismatch, feelerr.MsgNamedArityMismatch, pname.String())
				}
				values[i] = v
			}
			return fn.Call(values)
		}

	default:
		return func(*feelscope.Scope) feelvalue.Value {
			return nullf(feelerr.ParseFailure, "unsupported invocation argument node %T", n.Args)
		}
	}
}
