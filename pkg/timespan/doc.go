// Package timespan implements a canonical duration value type.
//
// A Span decomposes a signed duration into weeks, days, hours, minutes,
// seconds, milliseconds, and microseconds. Every component except weeks is
// bounded to its natural range; weeks is unbounded and carries the sign, so
// each duration has exactly one decomposition.
//
// # Canonical Form
//
// Construction converts all inputs to microseconds with exact rational
// arithmetic, rounds half-to-even at the microsecond tick, and decomposes
// the integer total. The total is the single source of truth: comparison
// and arithmetic operate on it alone, and the components are recomputed
// from it after every operation. A negative duration keeps all components
// non-negative except weeks, so -1 microsecond is one microsecond short of
// -1 weeks: weeks=-1, days=6, hours=23, minutes=59, seconds=59,
// milliseconds=999, microseconds=999.
//
// # Arithmetic
//
// Spans add, subtract, negate, and compare against each other and against
// the native time.Duration peer. Scalar multiplication and division go
// through exact rationals before the final half-even rounding, and floored
// division, modulo, and divmod follow floor-toward-negative-infinity
// semantics. The operand dispatch functions (Add, Sub, Mul, Div, Compare,
// ...) extend these operations across the closed set of peer types and
// report ErrTypeMismatch for anything else.
//
// # Formatting and Parsing
//
// Span.Format substitutes %-directives in a template (%w %d %h %H %m %M %s
// %S %ms %mS %us %uS, with %% as escape), and Span.Render provides canned
// presentations: the clock form of Span.String and a symbol form like
// "2 wk 6 d 23 h". Parse recognizes free text such as "1.5h 20 min": it
// extracts every number-unit pair, ignores unmatched surrounding text, and
// rejects duplicate or unknown units.
//
// # Vocabulary
//
// The directive keys, unit symbols, and parser aliases live in a
// Vocabulary value. NewFormatter and NewParser accept overrides, which can
// also be loaded from YAML with LoadVocabulary. The default tables are
// process-wide constants, so every entry point here is safe for concurrent
// use.
package timespan
