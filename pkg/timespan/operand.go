package timespan

import (
	"errors"
	"fmt"
	"time"
)

// Operand dispatch over the closed set of types a Span interoperates with:
// Span, time.Duration, time.Time, and int, int64, or float64 scalars. Each
// function handles the combinations defined for it and returns
// ErrTypeMismatch for everything else. Commutative operations retry with
// the operands reversed before giving up, mirroring reflected-operator
// dispatch.

// Add adds two operands. Defined for Span+Span, Span+time.Duration, and
// Span+time.Time in either order. Adding a time yields a time.Time;
// everything else yields a Span.
func Add(a, b any) (any, error) {
	v, err := addOnce(a, b)
	if !errors.Is(err, ErrTypeMismatch) {
		return v, err
	}
	v, err = addOnce(b, a)
	if errors.Is(err, ErrTypeMismatch) {
		return nil, opErr("+", a, b)
	}
	return v, err
}

func addOnce(a, b any) (any, error) {
	s, ok := a.(Span)
	if !ok {
		return nil, ErrTypeMismatch
	}
	switch o := b.(type) {
	case Span:
		return s.Add(o), nil
	case time.Duration:
		return s.Add(FromDuration(o)), nil
	case time.Time:
		return s.AddTo(o), nil
	}
	return nil, ErrTypeMismatch
}

// Sub subtracts b from a. Defined for Span-Span, Span-time.Duration,
// time.Duration-Span, and time.Time-Span (which yields a time.Time).
func Sub(a, b any) (any, error) {
	switch x := a.(type) {
	case Span:
		switch y := b.(type) {
		case Span:
			return x.Sub(y), nil
		case time.Duration:
			return x.Sub(FromDuration(y)), nil
		}
	case time.Duration:
		if y, ok := b.(Span); ok {
			return FromDuration(x).Sub(y), nil
		}
	case time.Time:
		if y, ok := b.(Span); ok {
			return y.SubFrom(x), nil
		}
	}
	return nil, opErr("-", a, b)
}

// Mul scales a span by a scalar, in either operand order. Integer scalars
// multiply exactly; float scalars are converted to exact rationals before
// the half-even rounding step.
func Mul(a, b any) (any, error) {
	v, err := mulOnce(a, b)
	if !errors.Is(err, ErrTypeMismatch) {
		return v, err
	}
	v, err = mulOnce(b, a)
	if errors.Is(err, ErrTypeMismatch) {
		return nil, opErr("*", a, b)
	}
	return v, err
}

func mulOnce(a, b any) (any, error) {
	s, ok := a.(Span)
	if !ok {
		return nil, ErrTypeMismatch
	}
	switch n := b.(type) {
	case int:
		return s.MulInt(int64(n))
	case int64:
		return s.MulInt(n)
	case float64:
		return s.Mul(n)
	}
	return nil, ErrTypeMismatch
}

// Div divides a by b. Span/Span and Span/time.Duration yield a
// dimensionless float64 ratio; Span/scalar yields a new Span via true
// division.
func Div(a, b any) (any, error) {
	s, ok := a.(Span)
	if !ok {
		return nil, opErr("/", a, b)
	}
	switch y := b.(type) {
	case Span:
		return ratioOperand(s, y)
	case time.Duration:
		return ratioOperand(s, FromDuration(y))
	case int:
		return s.DivInt(int64(y))
	case int64:
		return s.DivInt(y)
	case float64:
		return s.Div(y)
	}
	return nil, opErr("/", a, b)
}

func ratioOperand(a, b Span) (any, error) {
	r, err := a.Ratio(b)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// FloorDiv floor-divides a by b. Span//Span yields an int64 quotient;
// Span//integer yields a new Span.
func FloorDiv(a, b any) (any, error) {
	s, ok := a.(Span)
	if !ok {
		return nil, opErr("//", a, b)
	}
	switch y := b.(type) {
	case Span:
		q, err := s.FloorDiv(y)
		if err != nil {
			return nil, err
		}
		return q, nil
	case int:
		return s.FloorDivInt(int64(y))
	case int64:
		return s.FloorDivInt(y)
	}
	return nil, opErr("//", a, b)
}

// Mod returns the floor-division remainder of a by b, for Span%Span and
// Span%time.Duration.
func Mod(a, b any) (any, error) {
	s, ok := a.(Span)
	if !ok {
		return nil, opErr("%", a, b)
	}
	switch y := b.(type) {
	case Span:
		return s.Mod(y)
	case time.Duration:
		return s.Mod(FromDuration(y))
	}
	return nil, opErr("%", a, b)
}

// DivMod returns the floor quotient and remainder of two spans together.
func DivMod(a, b any) (any, any, error) {
	s, ok := a.(Span)
	if !ok {
		return nil, nil, opErr("divmod", a, b)
	}
	o, ok := b.(Span)
	if !ok {
		return nil, nil, opErr("divmod", a, b)
	}
	q, r, err := s.DivMod(o)
	if err != nil {
		return nil, nil, err
	}
	return q, r, nil
}

// Compare orders two operands: Span against Span or time.Duration, in
// either order. Returns -1, 0, or +1.
func Compare(a, b any) (int, error) {
	c, err := cmpOnce(a, b)
	if !errors.Is(err, ErrTypeMismatch) {
		return c, err
	}
	c, err = cmpOnce(b, a)
	if errors.Is(err, ErrTypeMismatch) {
		return 0, opErr("cmp", a, b)
	}
	return -c, err
}

func cmpOnce(a, b any) (int, error) {
	s, ok := a.(Span)
	if !ok {
		return 0, ErrTypeMismatch
	}
	switch y := b.(type) {
	case Span:
		return s.Cmp(y), nil
	case time.Duration:
		return s.CmpDuration(y), nil
	}
	return 0, ErrTypeMismatch
}

func opErr(op string, a, b any) error {
	return fmt.Errorf("%T %s %T: %w", a, op, b, ErrTypeMismatch)
}
