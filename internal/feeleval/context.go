package feeleval

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelast"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelscope"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

type compiledContextEntry struct {
	name  feelname.Name
	value Closure
}

// compileContext builds a context literal using sequential scope: each
// entry's value expression may reference any entry already added, matching
// spec.md §4.6's context construction order (insertion order, not
// alphabetical).
func compileContext(n feelast.Context) Closure {
	entries := make([]compiledContextEntry, len(n.Entries))
	for i, e := range n.Entries {
		entries[i] = compiledContextEntry{name: feelname.FromString(e.Key.Name), value: Compile(e.Value)}
	}
	return func(s *feelscope.Scope) feelvalue.Value {
		s.Push()
		defer s.Pop()
		ctx := feelvalue.NewContext()
		for _, e := range entries {
			v := e.value(s)
			ctx.SetEntry(e.name, v)
			s.SetEntry(e.name, v)
		}
		return ctx
	}
}
