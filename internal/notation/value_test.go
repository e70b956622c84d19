package notation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueDurations(t *testing.T) {
	tests := []struct {
		name string
		base Base
		dots int
		want string
	}{
		{"whole", Whole, 0, "1/1"},
		{"half", Half, 0, "1/2"},
		{"quarter", Quarter, 0, "1/4"},
		{"dotted quarter", Quarter, 1, "3/8"},
		{"double dotted quarter", Quarter, 2, "7/16"},
		{"dotted whole", Whole, 1, "3/2"},
		{"double dotted sixty-fourth", SixtyFourth, 2, "7/256"},
		{"eighth", Eighth, 0, "1/8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewValue(tt.base, tt.dots)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Duration().String())
		})
	}
}

func TestValueDotLimit(t *testing.T) {
	v := QuarterValue()
	v, err := v.Dot()
	require.NoError(t, err)
	v, err = v.Dot()
	require.NoError(t, err)
	assert.Equal(t, 2, v.Dots())

	_, err = v.Dot()
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = NewValue(Base(9), 0)
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = NewValue(Quarter, -1)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValueOrdering(t *testing.T) {
	all := AllValues()
	require.Len(t, all, 7)
	for i := 1; i < len(all); i++ {
		assert.Equal(t, 1, all[i-1].Cmp(all[i]), "%s should be longer than %s", all[i-1], all[i])
	}
	dotted, _ := NewValue(Eighth, 1)
	assert.Equal(t, -1, dotted.Cmp(QuarterValue()))
	dotted, _ = NewValue(Quarter, 1)
	assert.Equal(t, 1, dotted.Cmp(QuarterValue()))
}

func TestValueString(t *testing.T) {
	v, _ := NewValue(Quarter, 1)
	assert.Equal(t, "4.", v.String())
	v, _ = NewValue(Sixteenth, 2)
	assert.Equal(t, "16..", v.String())
	assert.Equal(t, "1", WholeValue().String())
}

func TestValueForDenominator(t *testing.T) {
	for _, d := range []int{1, 2, 4, 8, 16, 32, 64} {
		v, ok := ValueForDenominator(d)
		require.True(t, ok, "denominator %d", d)
		assert.Equal(t, d, v.Denominator())
		assert.Equal(t, 0, v.Dots())
	}
	_, ok := ValueForDenominator(3)
	assert.False(t, ok)
	_, ok = ValueForDenominator(128)
	assert.False(t, ok)
}

func TestAllValuesIsACopy(t *testing.T) {
	all := AllValues()
	all[0] = SixtyFourthValue()
	assert.Equal(t, WholeValue(), AllValues()[0])
}

func TestScale(t *testing.T) {
	quarter := QuarterValue().Duration()

	// three eighths in the time of two: 3/8 * 2/3 = 1/4
	inner, _ := NewDuration(3, 8)
	v, err := Scale(3, 2, inner)
	require.NoError(t, err)
	assert.Equal(t, QuarterValue(), v)

	v, err = Scale(1, 1, quarter)
	require.NoError(t, err)
	assert.Equal(t, QuarterValue(), v)

	// 1/4 * 2/3 = 1/6 matches nothing in the table
	_, err = Scale(3, 2, quarter)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTuplet))
	var te *InvalidTupletError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 3, te.Num)
	assert.Equal(t, 2, te.Den)
	assert.Equal(t, "1/4", te.Inner.String())
	assert.Equal(t, "1/6", te.Outer.String())
	assert.Contains(t, err.Error(), "3/2:{1/4} = 1/6")

	// dotted results are never produced
	inner, _ = NewDuration(3, 4)
	_, err = Scale(2, 1, inner)
	assert.ErrorIs(t, err, ErrInvalidTuplet)

	_, err = Scale(0, 2, quarter)
	assert.ErrorIs(t, err, ErrInvalidTuplet)
}

func TestDurationAdd(t *testing.T) {
	q := QuarterValue().Duration()
	assert.Equal(t, "1/2", q.Add(q).String())
	assert.True(t, ZeroDuration().Add(q).Equal(q))
	assert.True(t, q.Less(HalfValue().Duration()))

	_, err := NewDuration(1, 0)
	assert.Error(t, err)
}
