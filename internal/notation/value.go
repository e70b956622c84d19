package notation

import (
	"strconv"
	"strings"
)

// Base is an un-dotted note length; Whole is 1/1 and each step halves it.
type Base uint8

const (
	Whole Base = iota
	Half
	Quarter
	Eighth
	Sixteenth
	ThirtySecond
	SixtyFourth
)

// MaxDots bounds the augmentation dots a value may carry.
const MaxDots = 2

var baseNames = [...]string{"whole", "half", "quarter", "eighth", "sixteenth", "thirtysecond", "sixtyfourth"}

func (b Base) Valid() bool { return b <= SixtyFourth }

// Denominator returns 2^b, the denominator of the base's duration.
func (b Base) Denominator() int { return 1 << b }

func (b Base) String() string {
	if !b.Valid() {
		return "Base(" + strconv.Itoa(int(b)) + ")"
	}
	return baseNames[b]
}

// Value is a base length plus zero to two augmentation dots.
type Value struct {
	base Base
	dots uint8
}

// NewValue builds a dotted value.
func NewValue(base Base, dots int) (Value, error) {
	if !base.Valid() {
		return Value{}, invalidValuef("unknown base %d", base)
	}
	if dots < 0 || dots > MaxDots {
		return Value{}, invalidValuef("value may carry at most %d dots, got %d", MaxDots, dots)
	}
	return Value{base: base, dots: uint8(dots)}, nil
}

func WholeValue() Value        { return Value{base: Whole} }
func HalfValue() Value         { return Value{base: Half} }
func QuarterValue() Value      { return Value{base: Quarter} }
func EighthValue() Value       { return Value{base: Eighth} }
func SixteenthValue() Value    { return Value{base: Sixteenth} }
func ThirtySecondValue() Value { return Value{base: ThirtySecond} }
func SixtyFourthValue() Value  { return Value{base: SixtyFourth} }

var allValues = [...]Value{
	{base: Whole},
	{base: Half},
	{base: Quarter},
	{base: Eighth},
	{base: Sixteenth},
	{base: ThirtySecond},
	{base: SixtyFourth},
}

// AllValues returns the un-dotted base values, longest first.
func AllValues() []Value {
	out := make([]Value, len(allValues))
	copy(out, allValues[:])
	return out
}

// ValueForDenominator looks up the un-dotted value whose duration is 1/d.
func ValueForDenominator(d int) (Value, bool) {
	for _, v := range allValues {
		if v.base.Denominator() == d {
			return v, true
		}
	}
	return Value{}, false
}

func (v Value) isTableValue() bool { return v.dots == 0 && v.base.Valid() }

func (v Value) Base() Base { return v.base }
func (v Value) Dots() int  { return int(v.dots) }

// Denominator returns the denominator of the un-dotted base.
func (v Value) Denominator() int { return v.base.Denominator() }

// Dot returns v with one more augmentation dot.
func (v Value) Dot() (Value, error) {
	return NewValue(v.base, int(v.dots)+1)
}

// Duration returns base * (2 - 1/2^dots).
func (v Value) Duration() Duration {
	n := int64(1)<<(v.dots+1) - 1
	d := int64(1) << (uint(v.base) + uint(v.dots))
	return mustDuration(n, d)
}

// Cmp orders values by their duration.
func (v Value) Cmp(o Value) int { return v.Duration().Cmp(o.Duration()) }

func (v Value) String() string {
	return strconv.Itoa(v.Denominator()) + strings.Repeat(".", int(v.dots))
}

// Scale returns the table value whose duration is exactly inner * den / num,
// the notated value of a num:den tuplet spanning inner.
func Scale(num, den int, inner Duration) (Value, error) {
	if num <= 0 || den <= 0 {
		return Value{}, &InvalidTupletError{Num: num, Den: den, Inner: inner, Outer: ZeroDuration()}
	}
	outer, err := NewDuration(inner.Num()*int64(den), inner.Den()*int64(num))
	if err != nil {
		return Value{}, err
	}
	for _, v := range allValues {
		if outer.Equal(v.Duration()) {
			return v, nil
		}
	}
	return Value{}, &InvalidTupletError{Num: num, Den: den, Inner: inner, Outer: outer}
}
