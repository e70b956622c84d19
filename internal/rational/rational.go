// Package rational implements exact fractions over int64.
//
// A Rational is always stored in lowest terms with a positive denominator.
// The zero value reads as 0/1.
package rational

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrDomain reports an attempt to build a fraction with a non-positive denominator.
var ErrDomain = errors.New("rational domain error")

// DomainError carries the rejected numerator and denominator.
type DomainError struct {
	Num int64
	Den int64
}

func (e *DomainError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: denominator of %d/%d must be positive", ErrDomain.Error(), e.Num, e.Den)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// ErrOverflow reports a result whose reduced terms do not fit in an int64.
var ErrOverflow = errors.New("rational overflow")

type Rational struct {
	num int64
	den int64
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, d) is |d|.
func GCD[T constraints.Integer](a, b T) T {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of |a| and |b|, or 0 if either is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return abs(a) / GCD(a, b) * abs(b)
}

func abs[T constraints.Integer](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Reduce divides n and d by their greatest common divisor.
func Reduce(n, d int64) (int64, int64, error) {
	if d <= 0 {
		return 0, 0, &DomainError{Num: n, Den: d}
	}
	g := GCD(n, d)
	return n / g, d / g, nil
}

// New returns n/d in lowest terms.
func New(n, d int64) (Rational, error) {
	rn, rd, err := Reduce(n, d)
	if err != nil {
		return Rational{}, err
	}
	return Rational{num: rn, den: rd}, nil
}

// MustNew is New for compile-time constants; it panics on a domain error.
func MustNew(n, d int64) Rational {
	r, err := New(n, d)
	if err != nil {
		panic(err)
	}
	return r
}

// Zero returns 0/1.
func Zero() Rational { return Rational{num: 0, den: 1} }

// FromInt returns n/1.
func FromInt(n int64) Rational { return Rational{num: n, den: 1} }

func (r Rational) Num() int64 { return r.num }

// Den returns the denominator; it is 1 for the zero value so that a
// zero-valued Rational still behaves as 0/1.
func (r Rational) Den() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// Add returns r + o over the least common denominator. It wraps on int64
// overflow; use AddChecked for sums of unbounded depth.
func (r Rational) Add(o Rational) Rational {
	rd, od := r.Den(), o.Den()
	d := LCM(rd, od)
	n := r.num*(d/rd) + o.num*(d/od)
	out, _ := New(n, d)
	return out
}

// AddChecked is Add that fails with ErrOverflow instead of wrapping.
func (r Rational) AddChecked(o Rational) (Rational, error) {
	rd, od := r.Den(), o.Den()
	d, ok := mul64(rd/GCD(rd, od), od)
	if !ok {
		return Rational{}, overflowf("%s + %s", r, o)
	}
	a, ok1 := mul64(r.num, d/rd)
	b, ok2 := mul64(o.num, d/od)
	n, ok3 := add64(a, b)
	if !ok1 || !ok2 || !ok3 {
		return Rational{}, overflowf("%s + %s", r, o)
	}
	return New(n, d)
}

// Mul returns r * o. Like Add it wraps on overflow; see MulChecked.
func (r Rational) Mul(o Rational) Rational {
	out, _ := r.mul(o)
	return out
}

// MulChecked is Mul that fails with ErrOverflow instead of wrapping.
func (r Rational) MulChecked(o Rational) (Rational, error) {
	out, ok := r.mul(o)
	if !ok {
		return Rational{}, overflowf("%s * %s", r, o)
	}
	return out, nil
}

func (r Rational) mul(o Rational) (Rational, bool) {
	// cross-reduce first to keep intermediate products small
	g1 := GCD(r.num, o.Den())
	g2 := GCD(o.num, r.Den())
	if g1 == 0 {
		g1 = 1
	}
	if g2 == 0 {
		g2 = 1
	}
	n, ok1 := mul64(r.num/g1, o.num/g2)
	d, ok2 := mul64(r.Den()/g2, o.Den()/g1)
	out, _ := New(n, d)
	return out, ok1 && ok2
}

// Quo returns r / o; it fails when o is zero.
func (r Rational) Quo(o Rational) (Rational, error) {
	if o.num == 0 {
		return Rational{}, &DomainError{Num: r.num * o.Den(), Den: 0}
	}
	n, ok1 := mul64(r.num, o.Den())
	d, ok2 := mul64(r.Den(), o.num)
	if !ok1 || !ok2 {
		return Rational{}, overflowf("%s / %s", r, o)
	}
	if d < 0 {
		n, d = -n, -d
	}
	return New(n, d)
}

// Cmp returns -1, 0 or +1 depending on whether r is less than, equal to or
// greater than o.
func (r Rational) Cmp(o Rational) int {
	lhs, rhs := r.num*o.Den(), o.num*r.Den()
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	}
	return 0
}

func (r Rational) Equal(o Rational) bool {
	return r.num == o.num && r.Den() == o.Den()
}

func (r Rational) IsZero() bool { return r.num == 0 }

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.Den())
}

func overflowf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrOverflow}, args...)...)
}

func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	return c, c/b == a
}

func add64(a, b int64) (int64, bool) {
	c := a + b
	return c, (c > a) == (b > 0)
}
