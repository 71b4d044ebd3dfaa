// Package feelerr gives the FEEL evaluator's diagnostics a consistent
// shape. Nothing in this package is ever returned as a Go error from the
// evaluator's hot path (internal/feeleval never returns error): every
// failure materializes as a feelvalue.Null carrying a diagnostic string
// built here. The catalog exists purely so that diagnostic text is
// consistent and greppable across the codebase, mirroring the role
// internal/interp/errors plays for the teacher's compiler diagnostics.
package feelerr

import "fmt"

// Category classifies a FEEL evaluation failure. It is carried alongside
// the diagnostic string for tests that want to assert on failure kind
// rather than exact wording.
type Category string

const (
	TypeMismatch        Category = "TypeMismatch"
	OutOfRange          Category = "OutOfRange"
	DivisionByZero      Category = "DivisionByZero"
	NonFiniteArithmetic Category = "NonFiniteArithmetic"
	MissingName         Category = "MissingName"
	ArityMismatch       Category = "ArityMismatch"
	ParseFailure        Category = "ParseFailure"
	ItemDefinitionViol  Category = "ItemDefinitionViolation"
)

// Diagnostic is the payload carried by a Null value produced on failure.
// It is deliberately small and string-based: the Value layer (feelvalue)
// only needs to store and print it, never branch on it.
type Diagnostic struct {
	Category Category
	Message  string
}

func (d Diagnostic) String() string {
	if d.Message == "" {
		return string(d.Category)
	}
	return d.Message
}

// New builds a Diagnostic by formatting one of the Msg* catalog constants.
func New(cat Category, format string, args ...any) Diagnostic {
	return Diagnostic{Category: cat, Message: fmt.Sprintf(format, args...)}
}
