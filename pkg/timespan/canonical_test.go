package timespan

import (
	"errors"
	"math"
	"testing"
	"time"
)

// components collects the decomposition for easy comparison.
type components struct {
	weeks                                                int64
	days, hours, minutes, seconds, milliseconds, microseconds int
}

func split(s Span) components {
	w, d, h, m, sec, ms, us := s.Split()
	return components{w, d, h, m, sec, ms, us}
}

func TestNewPositive(t *testing.T) {
	tests := []struct {
		name string
		in   Components
		want components
	}{
		{
			name: "already canonical",
			in:   Components{Weeks: 1, Days: 2, Hours: 3, Minutes: 4, Seconds: 5, Milliseconds: 6, Microseconds: 7},
			want: components{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name: "max values",
			in:   Components{Weeks: 1, Days: 6, Hours: 23, Minutes: 59, Seconds: 59, Milliseconds: 999, Microseconds: 999},
			want: components{1, 6, 23, 59, 59, 999, 999},
		},
		{
			name: "zero",
			in:   Components{},
			want: components{},
		},
		{
			name: "single unit overflow",
			in:   Components{Seconds: 90},
			want: components{0, 0, 0, 1, 30, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, err := New(tt.in)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := split(span); got != tt.want {
				t.Errorf("New() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewOverflow(t *testing.T) {
	// One microsecond past the largest sub-week decomposition rolls the
	// whole span over to the next week.
	span, err := New(Components{Weeks: 1, Days: 6, Hours: 23, Minutes: 59, Seconds: 59, Milliseconds: 999, Microseconds: 1000})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got, want := split(span), (components{weeks: 2}); got != want {
		t.Errorf("New() = %+v, want %+v", got, want)
	}
}

func TestNewNegative(t *testing.T) {
	span, err := New(Components{Microseconds: -1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	want := components{-1, 6, 23, 59, 59, 999, 999}
	if got := split(span); got != want {
		t.Errorf("New() = %+v, want %+v", got, want)
	}
	if span.TotalMicroseconds() != -1 {
		t.Errorf("TotalMicroseconds() = %d, want -1", span.TotalMicroseconds())
	}
}

func TestNewFractional(t *testing.T) {
	tests := []struct {
		name string
		in   Components
		want int64
	}{
		{"half second", Components{Seconds: 0.5}, 500000},
		{"quarter hour", Components{Hours: 0.25}, 15 * Minute},
		{"half microsecond rounds to even", Components{Microseconds: 0.5}, 0},
		{"one and a half rounds to even", Components{Microseconds: 1.5}, 2},
		{"two and a half rounds to even", Components{Microseconds: 2.5}, 2},
		{"negative tie rounds to even", Components{Microseconds: -1.5}, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, err := New(tt.in)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if span.TotalMicroseconds() != tt.want {
				t.Errorf("TotalMicroseconds() = %d, want %d", span.TotalMicroseconds(), tt.want)
			}
		})
	}
}

func TestNewNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := New(Components{Hours: v})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("New(hours=%v) error = %v, want ErrInvalidInput", v, err)
		}
	}
}

func TestNewOutOfRange(t *testing.T) {
	_, err := New(Components{Weeks: 1e30})
	if !errors.Is(err, ErrRange) {
		t.Errorf("New(weeks=1e30) error = %v, want ErrRange", err)
	}
}

// TestInvariants sweeps totals across signs and magnitudes and checks that
// the decomposition is bounded, carries the sign in weeks only, and
// reconstructs the total exactly.
func TestInvariants(t *testing.T) {
	totals := []int64{
		0, 1, -1, 999, 1000, -1000, Second - 1, Second, -Second,
		Day, -Day, Week - 1, Week, Week + 1, -Week, -Week - 1,
		123456789012345, -123456789012345,
		math.MaxInt64, math.MinInt64, math.MinInt64 + 1,
	}
	// Deterministic pseudo-random fill.
	x := int64(0x2545F4914F6CDD1D)
	for i := 0; i < 200; i++ {
		x ^= x << 13
		x ^= x >> 7
		x ^= x << 17
		totals = append(totals, x)
	}

	for _, total := range totals {
		s := FromMicroseconds(total)

		if s.Days() < 0 || s.Days() >= 7 ||
			s.Hours() < 0 || s.Hours() >= 24 ||
			s.Minutes() < 0 || s.Minutes() >= 60 ||
			s.Seconds() < 0 || s.Seconds() >= 60 ||
			s.Milliseconds() < 0 || s.Milliseconds() >= 1000 ||
			s.Microseconds() < 0 || s.Microseconds() >= 1000 {
			t.Fatalf("total %d: component out of bounds: %+v", total, split(s))
		}

		if total < 0 && s.Weeks() > -1 {
			t.Errorf("total %d: weeks = %d, want <= -1", total, s.Weeks())
		}
		if total >= 0 && s.Weeks() < 0 {
			t.Errorf("total %d: weeks = %d, want >= 0", total, s.Weeks())
		}

		sum := s.Weeks()*Week + int64(s.Days())*Day + int64(s.Hours())*Hour +
			int64(s.Minutes())*Minute + int64(s.Seconds())*Second +
			int64(s.Milliseconds())*Millisecond + int64(s.Microseconds())
		if sum != total {
			t.Errorf("total %d: weighted sum = %d", total, sum)
		}

		if again := FromMicroseconds(s.TotalMicroseconds()); split(again) != split(s) {
			t.Errorf("total %d: re-canonicalization differs: %+v vs %+v", total, split(again), split(s))
		}
	}
}

func TestFromDurationRounding(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want int64
	}{
		{1500 * time.Nanosecond, 2},
		{2500 * time.Nanosecond, 2},
		{-1500 * time.Nanosecond, -2},
		{1499 * time.Nanosecond, 1},
		{time.Second, 1000000},
	}
	for _, tt := range tests {
		if got := FromDuration(tt.d).TotalMicroseconds(); got != tt.want {
			t.Errorf("FromDuration(%v) = %d µs, want %d", tt.d, got, tt.want)
		}
	}
}
