package feelvalue

import "github.com/cwbudde/go-dmn-feel/internal/feelname"

// ContainsDeep reports whether the dotted path `names` resolves to a value,
// recursing through nested contexts, matching the source's contains_deep.
func (c *ContextValue) ContainsDeep(names []feelname.Name) bool {
	if len(names) == 0 {
		return false
	}
	value, ok := c.GetEntry(names[0])
	if !ok {
		return false
	}
	if len(names) == 1 {
		return true
	}
	nested, ok := value.(*ContextValue)
	if !ok {
		return false
	}
	return nested.ContainsDeep(names[1:])
}

// SearchDeep returns the innermost value reached by walking `names`, which
// may itself be an intermediate Context if `names` names one, matching the
// source's search_deep.
func (c *ContextValue) SearchDeep(names []feelname.Name) (Value, bool) {
	if len(names) == 0 {
		return nil, false
	}
	value, ok := c.GetEntry(names[0])
	if !ok {
		return nil, false
	}
	if len(names) == 1 {
		return value, true
	}
	nested, ok := value.(*ContextValue)
	if !ok {
		return nil, false
	}
	return nested.SearchDeep(names[1:])
}

// CreateDeep sets `value` at the dotted path `names`, creating intermediate
// contexts as needed, matching the source's create_deep.
func (c *ContextValue) CreateDeep(names []feelname.Name, value Value) {
	if len(names) == 0 {
		return
	}
	if len(names) == 1 {
		c.SetEntry(names[0], value)
		return
	}
	existing, ok := c.GetEntry(names[0])
	nested, isContext := existing.(*ContextValue)
	if !ok || !isContext {
		nested = NewContext()
		c.SetEntry(names[0], nested)
	}
	nested.CreateDeep(names[1:], value)
}
