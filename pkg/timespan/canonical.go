package timespan

import (
	"fmt"
	"math"
	"math/big"
	"time"
)

// Components holds raw input quantities for New. Each field may be
// fractional, negative, or overflow its natural range; New reduces the set
// to the unique canonical decomposition.
type Components struct {
	Weeks        float64
	Days         float64
	Hours        float64
	Minutes      float64
	Seconds      float64
	Milliseconds float64
	Microseconds float64
}

// New builds a canonical Span from raw component quantities.
//
// Every input is converted losslessly to a rational, weighted to
// microseconds, and summed, so fractional inputs lose no precision before
// the final rounding step. The exact total is then rounded half-to-even to
// the nearest microsecond and decomposed.
//
// Returns ErrInvalidInput for NaN or infinite inputs and ErrRange when the
// rounded total does not fit int64 microseconds.
func New(c Components) (Span, error) {
	raw := [numUnits]float64{
		c.Weeks, c.Days, c.Hours, c.Minutes, c.Seconds, c.Milliseconds, c.Microseconds,
	}
	total := new(big.Rat)
	for u, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Span{}, fmt.Errorf("%s %v: %w", unitName[u], v, ErrInvalidInput)
		}
		if v == 0 {
			continue
		}
		term := new(big.Rat).SetFloat64(v)
		term.Mul(term, new(big.Rat).SetInt64(unitWeight[u]))
		total.Add(total, term)
	}
	return fromRat(total)
}

// FromMicroseconds builds a Span from an exact microsecond count.
func FromMicroseconds(us int64) Span {
	return fromTotal(us)
}

// FromDuration converts the native time.Duration peer to a Span. The
// nanosecond count is rounded half-to-even to the microsecond tick.
func FromDuration(d time.Duration) Span {
	return fromTotal(roundHalfEvenInt(int64(d), int64(time.Microsecond)))
}

// fromRat rounds an exact microsecond total half-to-even and decomposes it.
func fromRat(total *big.Rat) (Span, error) {
	n := roundHalfEven(total)
	if !n.IsInt64() {
		return Span{}, fmt.Errorf("%s microseconds: %w", n.String(), ErrRange)
	}
	return fromTotal(n.Int64()), nil
}

// fromTotal decomposes an integer microsecond total into the unique bounded
// form. Weeks is the floor of total/Week, so for negative totals the sign
// lands entirely in the weeks component and the remainder is non-negative
// and strictly below one week.
func fromTotal(total int64) Span {
	weeks := total / Week
	rem := total % Week
	if rem < 0 {
		weeks--
		rem += Week
	}

	s := Span{total: total, weeks: weeks}
	s.days = int(rem / Day)
	rem %= Day
	s.hours = int(rem / Hour)
	rem %= Hour
	s.minutes = int(rem / Minute)
	rem %= Minute
	s.seconds = int(rem / Second)
	rem %= Second
	s.milliseconds = int(rem / Millisecond)
	s.microseconds = int(rem % Millisecond)
	return s
}

var bigOne = big.NewInt(1)

// roundHalfEven rounds a rational to the nearest integer, ties to even.
func roundHalfEven(r *big.Rat) *big.Int {
	q, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if rem.Sign() == 0 {
		return q
	}
	twice := new(big.Int).Abs(rem)
	twice.Lsh(twice, 1)
	switch twice.Cmp(r.Denom()) {
	case -1:
		return q
	case 0:
		if q.Bit(0) == 0 {
			return q
		}
	}
	if r.Sign() < 0 {
		return q.Sub(q, bigOne)
	}
	return q.Add(q, bigOne)
}

// roundHalfEvenInt divides a by positive b, rounding half to even.
func roundHalfEvenInt(a, b int64) int64 {
	q, r := a/b, a%b
	if r == 0 {
		return q
	}
	if r < 0 {
		r = -r
	}
	if 2*r > b || (2*r == b && q&1 != 0) {
		if a < 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}
