package timespan

import "errors"

// Errors returned by constructors, the formatter, the parser, and the
// operand dispatch layer. All are surfaced synchronously and wrapped with
// call-site context; match them with errors.Is.
var (
	// ErrInvalidInput reports a NaN or infinite component or scalar.
	ErrInvalidInput = errors.New("non-finite value")

	// ErrRange reports a total that does not fit the int64 microsecond tick.
	ErrRange = errors.New("value out of range")

	// ErrFormat reports an unrecognized directive key in a template.
	ErrFormat = errors.New("invalid format directive")

	// ErrDuplicateUnit reports a canonical component matched more than once
	// in parsed text, possibly via different aliases.
	ErrDuplicateUnit = errors.New("duplicate unit")

	// ErrUnknownUnit reports a unit token present in no alias list.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrTypeMismatch reports an operand combination the dispatch layer does
	// not define. Dispatch retries commutative operations with the operands
	// reversed before returning it.
	ErrTypeMismatch = errors.New("unsupported operand type")

	// ErrDivisionByZero reports division or modulo by a zero-length operand.
	ErrDivisionByZero = errors.New("division by zero")
)
