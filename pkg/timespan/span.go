package timespan

import (
	"fmt"
	"math"
	"math/big"
	"time"
)

// Span is an immutable duration value in canonical decomposed form.
//
// A Span is defined entirely by its signed total microsecond count; the
// seven components are a presentation-layer decomposition of that total.
// Every component except weeks is bounded to its natural range, and when
// the total is negative the sign is carried entirely by the weeks
// component. The zero value is the zero-length span.
//
// All operations return new values; a Span is safe to copy and to share
// between goroutines.
type Span struct {
	weeks        int64
	days         int
	hours        int
	minutes      int
	seconds      int
	milliseconds int
	microseconds int

	total int64
}

// Weeks returns the signed week component. It is unbounded and carries the
// sign of the whole span.
func (s Span) Weeks() int64 { return s.weeks }

// Days returns the day component, in [0, 7).
func (s Span) Days() int { return s.days }

// Hours returns the hour component, in [0, 24).
func (s Span) Hours() int { return s.hours }

// Minutes returns the minute component, in [0, 60).
func (s Span) Minutes() int { return s.minutes }

// Seconds returns the second component, in [0, 60).
func (s Span) Seconds() int { return s.seconds }

// Milliseconds returns the millisecond component, in [0, 1000).
func (s Span) Milliseconds() int { return s.milliseconds }

// Microseconds returns the microsecond component, in [0, 1000).
func (s Span) Microseconds() int { return s.microseconds }

// TotalMicroseconds returns the exact signed microsecond count. It always
// equals the weighted sum of the seven components.
func (s Span) TotalMicroseconds() int64 { return s.total }

// Split returns all seven components at once.
func (s Span) Split() (weeks int64, days, hours, minutes, seconds, milliseconds, microseconds int) {
	return s.weeks, s.days, s.hours, s.minutes, s.seconds, s.milliseconds, s.microseconds
}

// component returns one canonical component as an int64.
func (s Span) component(u unit) int64 {
	switch u {
	case unitWeeks:
		return s.weeks
	case unitDays:
		return int64(s.days)
	case unitHours:
		return int64(s.hours)
	case unitMinutes:
		return int64(s.minutes)
	case unitSeconds:
		return int64(s.seconds)
	case unitMilliseconds:
		return int64(s.milliseconds)
	default:
		return int64(s.microseconds)
	}
}

// IsZero reports whether the span has zero length.
func (s Span) IsZero() bool { return s.total == 0 }

// Cmp compares two spans by total microseconds: -1 if s < o, 0 if equal,
// +1 if s > o.
func (s Span) Cmp(o Span) int {
	switch {
	case s.total < o.total:
		return -1
	case s.total > o.total:
		return 1
	}
	return 0
}

// Equal reports whether two spans have the same length.
func (s Span) Equal(o Span) bool { return s.total == o.total }

// CmpDuration compares the span against the native time.Duration peer.
func (s Span) CmpDuration(d time.Duration) int { return s.Cmp(FromDuration(d)) }

// Add returns s + o. Totals beyond the int64 microsecond range wrap,
// mirroring time.Duration arithmetic.
func (s Span) Add(o Span) Span { return fromTotal(s.total + o.total) }

// Sub returns s - o.
func (s Span) Sub(o Span) Span { return fromTotal(s.total - o.total) }

// Neg returns the span with its sign flipped.
func (s Span) Neg() Span { return fromTotal(-s.total) }

// Abs returns the non-negative span with the same magnitude.
func (s Span) Abs() Span {
	if s.total < 0 {
		return s.Neg()
	}
	return s
}

// Mul scales the span by a real factor. The product is computed exactly and
// rounded half-to-even to the microsecond tick. Returns ErrInvalidInput for
// a non-finite factor and ErrRange when the result does not fit.
func (s Span) Mul(f float64) (Span, error) { return s.scale(f, false) }

// Div divides the span by a real divisor using true division, rounding
// half-to-even to the microsecond tick.
func (s Span) Div(f float64) (Span, error) { return s.scale(f, true) }

func (s Span) scale(f float64, invert bool) (Span, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Span{}, fmt.Errorf("scalar %v: %w", f, ErrInvalidInput)
	}
	factor := new(big.Rat).SetFloat64(f)
	if invert {
		if factor.Sign() == 0 {
			return Span{}, ErrDivisionByZero
		}
		factor.Inv(factor)
	}
	factor.Mul(factor, new(big.Rat).SetInt64(s.total))
	return fromRat(factor)
}

// MulInt scales the span by an integer factor exactly.
func (s Span) MulInt(n int64) (Span, error) {
	r := new(big.Rat).SetInt64(s.total)
	r.Mul(r, new(big.Rat).SetInt64(n))
	return fromRat(r)
}

// DivInt divides the span by an integer divisor using true division,
// rounding half-to-even to the microsecond tick.
func (s Span) DivInt(n int64) (Span, error) {
	if n == 0 {
		return Span{}, ErrDivisionByZero
	}
	return fromRat(big.NewRat(s.total, n))
}

// Ratio returns the dimensionless quotient s / o.
func (s Span) Ratio(o Span) (float64, error) {
	if o.total == 0 {
		return 0, ErrDivisionByZero
	}
	f, _ := new(big.Rat).SetFrac64(s.total, o.total).Float64()
	return f, nil
}

// FloorDiv returns the integer quotient s // o, floored toward negative
// infinity.
func (s Span) FloorDiv(o Span) (int64, error) {
	if o.total == 0 {
		return 0, ErrDivisionByZero
	}
	return floorDiv(s.total, o.total), nil
}

// FloorDivInt divides the span by an integer divisor, flooring the total to
// the microsecond tick.
func (s Span) FloorDivInt(n int64) (Span, error) {
	if n == 0 {
		return Span{}, ErrDivisionByZero
	}
	return fromTotal(floorDiv(s.total, n)), nil
}

// Mod returns the floor-division remainder of s by o.
func (s Span) Mod(o Span) (Span, error) {
	if o.total == 0 {
		return Span{}, ErrDivisionByZero
	}
	return fromTotal(floorMod(s.total, o.total)), nil
}

// DivMod returns the floor quotient and remainder together. For any nonzero
// o, the results satisfy s == o scaled by the quotient, plus the remainder.
func (s Span) DivMod(o Span) (int64, Span, error) {
	q, err := s.FloorDiv(o)
	if err != nil {
		return 0, Span{}, err
	}
	r, _ := s.Mod(o)
	return q, r, nil
}

// AsDuration converts the span to the native time.Duration peer. Spans
// beyond the peer's range overflow the way int64 nanosecond arithmetic
// does; that behavior is delegated to the peer type.
func (s Span) AsDuration() time.Duration {
	return time.Duration(s.total) * time.Microsecond
}

// AddTo returns the point in time t + s.
func (s Span) AddTo(t time.Time) time.Time { return t.Add(s.AsDuration()) }

// SubFrom returns the point in time t - s.
func (s Span) SubFrom(t time.Time) time.Time { return t.Add(-s.AsDuration()) }

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod is the remainder of floorDiv; it takes the sign of b.
func floorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}
