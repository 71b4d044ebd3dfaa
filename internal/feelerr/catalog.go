package feelerr

// Message catalog. Conventions (matching the teacher's error catalog):
// messages start lowercase, use present tense, and stay concise enough to
// embed in a test assertion without wrapping.

const (
	MsgTypeMismatch        = "expected %s, actual type is %s"
	MsgTypeMismatchBinOp   = "operator %s is not defined for %s and %s"
	MsgIncompatibleTypes   = "incompatible types: %s and %s"
	MsgNotAContext         = "value is not a context"
	MsgNotAList            = "value is not a list"
	MsgNotABoolean         = "value is not a boolean"
	MsgNotATemporal        = "value is not a date, time, or date-and-time"
	MsgNoSuchProperty      = "no such property '%s' on a %s"
)

const (
	MsgIndexOutOfRange   = "index %d is out of range for a list of length %d"
	MsgInvalidScale      = "scale %d is out of range"
	MsgInvalidDatePart   = "%s %d is out of range"
	MsgInvalidSubrangeLen = "length %d is invalid"
)

const (
	MsgDivisionByZero = "division by zero"
	MsgModuloByZero   = "modulo by zero"
)

const (
	MsgOverflow  = "arithmetic overflow"
	MsgUnderflow = "arithmetic underflow"
	MsgNonFinite = "non-finite arithmetic result: %s"
)

const (
	MsgMissingName = "context has no value for key '%s'"
)

const (
	MsgArityMismatch      = "invalid number of arguments"
	MsgNamedArityMismatch = "missing named parameter '%s'"
)

const (
	MsgInvalidNumber   = "'%s' is not a valid number"
	MsgInvalidDate     = "'%s' is not a valid date"
	MsgInvalidTime     = "'%s' is not a valid time"
	MsgInvalidDateTime = "'%s' is not a valid date and time"
	MsgInvalidDuration = "'%s' is not a valid duration"
	MsgInvalidRegex    = "'%s' is not a valid regular expression: %s"
	MsgInvalidNamedParams = "invalid named parameters"
	MsgUnknownBif         = "unknown built-in function '%s'"
)

const (
	MsgItemDefinitionMismatch = "value at '%s' does not conform to the expected type"
	MsgAllowedValuesRejected  = "value does not satisfy the allowed values constraint"
)
