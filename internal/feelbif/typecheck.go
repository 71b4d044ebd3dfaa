package feelbif

import "github.com/cwbudde/go-dmn-feel/internal/feelvalue"

// Is implements `is(value, value)`: true iff both operands have the same
// runtime type, regardless of their actual equality.
func Is(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 2 {
		return wrongArity("is")
	}
	return feelvalue.BooleanValue(args[0].TypeOf().IsEquivalent(args[1].TypeOf()))
}

// BooleanFn implements the `boolean(string)` conversion, which the DMN
// spec defines only for the literal strings "true"/"false" (anything
// else, including non-strings, converts to Null rather than failing).
func BooleanFn(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("boolean")
	}
	s, ok := asString(args[0])
	if !ok {
		return feelvalue.Null()
	}
	switch s {
	case "true":
		return feelvalue.BooleanValue(true)
	case "false":
		return feelvalue.BooleanValue(false)
	default:
		return feelvalue.Null()
	}
}

func NotFn(args []feelvalue.Value) feelvalue.Value {
	if len(args) != 1 {
		return wrongArity("not")
	}
	b, ok := asBool(args[0])
	if !ok {
		return feelvalue.Null()
	}
	return feelvalue.BooleanValue(!b)
}
