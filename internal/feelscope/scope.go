// Package feelscope implements Scope (C4): a mutable stack of
// feelvalue.ContextValue frames used for name resolution during evaluation.
package feelscope

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// Scope is a stack of context frames. get_entry walks top-down; set_entry
// writes into the topmost frame. A Scope is created per top-level
// invocation and discarded when the invocation returns (spec.md §3); it is
// never shared across concurrent evaluations (spec.md §5).
type Scope struct {
	frames []*feelvalue.ContextValue
}

// New creates a Scope with a single root frame.
func New() *Scope {
	return &Scope{frames: []*feelvalue.ContextValue{feelvalue.NewContext()}}
}

// NewWithRoot creates a Scope whose bottom frame is the given context
// (e.g. the invocation's input parameters).
func NewWithRoot(root *feelvalue.ContextValue) *Scope {
	return &Scope{frames: []*feelvalue.ContextValue{root}}
}

// Push introduces a new, initially empty frame, used by context
// expressions, function calls, iteration, and filters.
func (s *Scope) Push() {
	s.frames = append(s.frames, feelvalue.NewContext())
}

// PushFrame introduces a new frame pre-populated with ctx.
func (s *Scope) PushFrame(ctx *feelvalue.ContextValue) {
	s.frames = append(s.frames, ctx)
}

// Pop discards the topmost frame.
func (s *Scope) Pop() {
	if len(s.frames) == 0 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// GetEntry resolves name by walking frames top-down.
func (s *Scope) GetEntry(name feelname.Name) (feelvalue.Value, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i].GetEntry(name); ok {
			return v, true
		}
	}
	return nil, false
}

// SetEntry writes into the topmost frame.
func (s *Scope) SetEntry(name feelname.Name, value feelvalue.Value) {
	s.frames[len(s.frames)-1].SetEntry(name, value)
}

// Top returns the topmost frame directly, for callers (context-expression
// evaluation) that need to both read and write it across a sequence of
// steps without repeated frame lookups.
func (s *Scope) Top() *feelvalue.ContextValue {
	return s.frames[len(s.frames)-1]
}

// Depth reports the number of active frames, chiefly for tests.
func (s *Scope) Depth() int { return len(s.frames) }
