package feelbif

import (
	"github.com/cwbudde/go-dmn-feel/internal/feelerr"
	"github.com/cwbudde/go-dmn-feel/internal/feelname"
	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// GetValue implements `get value(context, key)`.
func GetValue(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("get value")
	}
	ctx, ok := asContext(args[0])
	if !ok {
		return nullf(feelerr.TypeMismatch, feelerr.MsgNotAContext)
	}
	key, ok := asString(args[1])
	if !ok {
		return notAString(args[1])
	}
	v, found := ctx.GetEntry(feelname.FromString(key))
	if !found {
		return feelvalue.Null()
	}
	return v
}

// GetEntries implements `get entries(context)`, returning a list of
// single-entry contexts with "key" and "value" fields, in insertion order.
func GetEntries(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("get entries")
	}
	ctx, ok := asContext(args[0])
	if !ok {
		return nullf(feelerr.TypeMismatch, feelerr.MsgNotAContext)
	}
	entries := ctx.Entries()
	out := make([]feelvalue.Value, len(entries))
	for i, e := range entries {
		pair := feelvalue.NewContext()
		pair.SetEntry(feelname.FromString("key"), feelvalue.StringValue(e.Name.String()))
		pair.SetEntry(feelname.FromString("value"), e.Value)
		out[i] = pair
	}
	return feelvalue.ListValue{Items: out}
}

// ContextFn implements `context(entries)`, building a context from a list
// of single-entry "key"/"value" contexts (the inverse of GetEntries).
func ContextFn(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("context")
	}
	items, ok := asList(args[0])
	if !ok {
		return notAList(args[0])
	}
	out := feelvalue.NewContext()
	for _, it := range items {
		entry, ok := asContext(it)
		if !ok {
			return nullf(feelerr.TypeMismatch, feelerr.MsgNotAContext)
		}
		keyVal, found := entry.GetEntry(feelname.FromString("key"))
		if !found {
			return nullf(feelerr.MissingName, feelerr.MsgMissingName, "key")
		}
		key, ok := asString(keyVal)
		if !ok {
			return notAString(keyVal)
		}
		value, found := entry.GetEntry(feelname.FromString("value"))
		if !found {
			return nullf(feelerr.MissingName, feelerr.MsgMissingName, "value")
		}
		out.SetEntry(feelname.FromString(key), value)
	}
	return out
}

// ContextMerge implements `context merge(contexts)`: a left-to-right zip of
// a list of contexts, later entries winning on key conflicts.
func ContextMerge(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("context merge")
	}
	items, ok := asList(args[0])
	if !ok {
		return notAList(args[0])
	}
	out := feelvalue.NewContext()
	for _, it := range items {
		c, ok := asContext(it)
		if !ok {
			return nullf(feelerr.TypeMismatch, feelerr.MsgNotAContext)
		}
		out = out.Zip(c)
	}
	return out
}

// ContextPut implements `context put(context, key, value)`.
func ContextPut(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 3 {
		return wrongArity("context put")
	}
	ctx, ok := asContext(args[0])
	if !ok {
		return nullf(feelerr.TypeMismatch, feelerr.MsgNotAContext)
	}
	key, ok := asString(args[1])
	if !ok {
		return notAString(args[1])
	}
	cp := ctx.Clone()
	cp.SetEntry(feelname.FromString(key), args[2])
	return cp
}

// ContextPutAll implements `context put all(contexts...)`, a variadic
// left-to-right zip matching ContextMerge but accepting either a single
// list argument or multiple context arguments.
func ContextPutAll(args []feelvalue.Value) feelvalue.Value {
	items := variadicLists(args)
	out := feelvalue.NewContext()
	for _, it := range items {
		c, ok := asContext(it)
		if !ok {
			return nullf(feelerr.TypeMismatch, feelerr.MsgNotAContext)
		}
		out = out.Zip(c)
	}
	return out
}
