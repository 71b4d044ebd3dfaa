package feeleval

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feeltype"
)

// resolveType turns a type-annotation AST node into a feeltype.Type. A nil
// node (an undeclared formal parameter type, or a function with no
// declared result type) resolves to Any, matching FEEL's optional typing.
func resolveType(n feelast.Node) feeltype.Type {
	switch t := n.(type) {
	case nil:
		return feeltype.Any()
	case feelast.FeelTypeNode:
		return t.Type
	case feelast.ListTypeNode:
		return feeltype.List(resolveType(t.Elem))
	case feelast.RangeTypeNode:
		return feeltype.Range(resolveType(t.Elem))
	case feelast.ContextTypeNode:
		entries := make([]feeltype.ContextEntry, len(t.Entries))
		for i, e := range t.Entries {
			entries[i] = feeltype.ContextEntry{Name: feelname.FromString(e.Key.Name), Type: resolveType(e.Type)}
		}
		return feeltype.Context(entries...)
	case feelast.FunctionTypeNode:
		params := make([]feeltype.Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = resolveType(p)
		}
		return feeltype.Function(params, resolveType(t.Result))
	default:
		return feeltype.Any()
	}
}
