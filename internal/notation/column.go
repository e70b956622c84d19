package notation

import (
	"slices"
	"strconv"

	"github.com/cbegin/stan-go/internal/rational"
)

// Kind identifies a Column variant.
type Kind int

const (
	KindRest Kind = iota + 1
	KindNote
	KindChord
	KindBeam
	KindTuplet
)

func (k Kind) String() string {
	switch k {
	case KindRest:
		return "rest"
	case KindNote:
		return "note"
	case KindChord:
		return "chord"
	case KindBeam:
		return "beam"
	case KindTuplet:
		return "tuplet"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Column is anything that occupies notated rhythmic time. The set of
// implementations is closed: Rest, Note, Chord, Beam and Tuplet.
type Column interface {
	Kind() Kind
	column()
}

type Rest struct {
	value Value
}

func NewRest(v Value) Rest { return Rest{value: v} }

func (r Rest) Value() Value { return r.value }
func (Rest) Kind() Kind     { return KindRest }
func (Rest) column()        {}

type Note struct {
	value Value
	pitch Pitch
}

func NewNote(v Value, p Pitch) Note { return Note{value: v, pitch: p} }

func (n Note) Value() Value { return n.value }
func (n Note) Pitch() Pitch { return n.pitch }
func (Note) Kind() Kind     { return KindNote }
func (Note) column()        {}

// Chord is several pitches sharing one value.
type Chord struct {
	value   Value
	pitches []Pitch
}

// NewChord requires at least one pitch.
func NewChord(v Value, pitches ...Pitch) (Chord, error) {
	if len(pitches) == 0 {
		return Chord{}, invalidValuef("chord must contain at least one pitch")
	}
	return Chord{value: v, pitches: slices.Clone(pitches)}, nil
}

func (c Chord) Value() Value     { return c.value }
func (c Chord) Pitches() []Pitch { return slices.Clone(c.pitches) }
func (c Chord) Len() int         { return len(c.pitches) }
func (Chord) Kind() Kind         { return KindChord }
func (Chord) column()            {}

// Beam groups short values; its duration is the sum of its elements.
// The zero Beam has no elements and is not a valid column; build one with
// NewBeam.
type Beam struct {
	elements []Column
}

// NewBeam validates the elements; see validateBeam for the rules.
func NewBeam(elements ...Column) (Beam, error) {
	if err := validateBeam(elements); err != nil {
		return Beam{}, err
	}
	return Beam{elements: cloneColumns(elements)}, nil
}

func (b Beam) Elements() []Column { return cloneColumns(b.elements) }
func (b Beam) Len() int           { return len(b.elements) }
func (Beam) Kind() Kind           { return KindBeam }
func (Beam) column()              {}

// Tuplet is a group whose notated value differs from the sum of its parts.
// The zero Tuplet has no elements and is not a valid column; it has zero
// duration. Build one with NewTuplet or NewTupletRatio.
type Tuplet struct {
	value    Value
	elements []Column
}

// NewTuplet requires at least two elements and an un-dotted value from
// AllValues.
func NewTuplet(v Value, elements ...Column) (Tuplet, error) {
	if err := validateTuplet(elements); err != nil {
		return Tuplet{}, err
	}
	if !v.isTableValue() {
		inner := sumDurations(elements)
		num, den := int64(0), int64(1)
		if r, err := inner.Rational().Quo(v.Duration().Rational()); err == nil {
			num, den = r.Num(), r.Den()
		}
		return Tuplet{}, &InvalidTupletError{Num: int(num), Den: int(den), Inner: inner, Outer: v.Duration()}
	}
	return Tuplet{value: v, elements: cloneColumns(elements)}, nil
}

// NewTupletRatio builds a num:den tuplet over elements, deriving its value
// from the summed element durations via Scale.
func NewTupletRatio(num, den int, elements ...Column) (Tuplet, error) {
	if err := validateTuplet(elements); err != nil {
		return Tuplet{}, err
	}
	v, err := Scale(num, den, sumDurations(elements))
	if err != nil {
		return Tuplet{}, err
	}
	return Tuplet{value: v, elements: cloneColumns(elements)}, nil
}

func (t Tuplet) Value() Value       { return t.value }
func (t Tuplet) Elements() []Column { return cloneColumns(t.elements) }
func (t Tuplet) Len() int           { return len(t.elements) }
func (Tuplet) Kind() Kind           { return KindTuplet }
func (Tuplet) column()              {}

// Inner is the unscaled sum of the tuplet's element durations.
func (t Tuplet) Inner() Duration { return sumDurations(t.elements) }

// Ratio is inner/value reduced, the num:den that NewTupletRatio would need to
// rebuild t. A tuplet with no elements reports 0/1.
func (t Tuplet) Ratio() rational.Rational {
	r, err := t.Inner().Rational().Quo(t.value.Duration().Rational())
	if err != nil {
		return rational.Zero()
	}
	return r
}

// DurationOf returns the time c occupies. Beams sum their elements; every
// other kind reports its own value.
func DurationOf(c Column) Duration {
	switch v := c.(type) {
	case Rest:
		return v.value.Duration()
	case Note:
		return v.value.Duration()
	case Chord:
		return v.value.Duration()
	case Beam:
		return sumDurations(v.elements)
	case Tuplet:
		if len(v.elements) == 0 {
			return ZeroDuration()
		}
		return v.value.Duration()
	}
	return ZeroDuration()
}

func sumDurations(cols []Column) Duration {
	total := ZeroDuration()
	for _, c := range cols {
		total = total.Add(DurationOf(c))
	}
	return total
}

// cloneColumns copies the slice; elements have no mutators.
func cloneColumns(cols []Column) []Column {
	if cols == nil {
		return nil
	}
	return slices.Clone(cols)
}
