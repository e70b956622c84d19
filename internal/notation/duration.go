package notation

import "github.com/cbegin/stan-go/internal/rational"

// Duration is an exact length measured in whole notes; 1/4 is a quarter note.
type Duration struct {
	r rational.Rational
}

// NewDuration returns n/d whole notes, reduced.
func NewDuration(n, d int64) (Duration, error) {
	r, err := rational.New(n, d)
	if err != nil {
		return Duration{}, err
	}
	return Duration{r: r}, nil
}

func mustDuration(n, d int64) Duration {
	return Duration{r: rational.MustNew(n, d)}
}

func DurationFromRational(r rational.Rational) Duration { return Duration{r: r} }

func ZeroDuration() Duration { return Duration{r: rational.Zero()} }

func (d Duration) Rational() rational.Rational { return d.r }
func (d Duration) Num() int64                  { return d.r.Num() }
func (d Duration) Den() int64                  { return d.r.Den() }
func (d Duration) IsZero() bool                { return d.r.IsZero() }
func (d Duration) String() string              { return d.r.String() }

func (d Duration) Add(o Duration) Duration { return Duration{r: d.r.Add(o.r)} }

// Mul scales d by a ratio.
func (d Duration) Mul(o rational.Rational) Duration { return Duration{r: d.r.Mul(o)} }

func (d Duration) Cmp(o Duration) int    { return d.r.Cmp(o.r) }
func (d Duration) Equal(o Duration) bool { return d.r.Equal(o.r) }
func (d Duration) Less(o Duration) bool  { return d.Cmp(o) < 0 }
