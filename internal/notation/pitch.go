package notation

import "strconv"

// Accidental is a chromatic alteration in semitones.
type Accidental int8

const (
	DoubleFlat Accidental = iota - 2
	Flat
	Natural
	Sharp
	DoubleSharp
)

var accidentalSuffix = map[Accidental]string{
	DoubleFlat:  "ff",
	Flat:        "f",
	Natural:     "",
	Sharp:       "s",
	DoubleSharp: "ss",
}

func (a Accidental) Valid() bool { return a >= DoubleFlat && a <= DoubleSharp }

// Suffix is the LilyPond spelling appended to the letter name.
func (a Accidental) Suffix() string { return accidentalSuffix[a] }

// PitchClass is one of the 35 letter/accidental combinations, ordered by
// letter (a..g) and then from double-flat to double-sharp.
type PitchClass uint8

const accidentalsPerLetter = 5

const (
	ADoubleFlat PitchClass = iota
	AFlat
	A
	ASharp
	ADoubleSharp
	BDoubleFlat
	BFlat
	B
	BSharp
	BDoubleSharp
	CDoubleFlat
	CFlat
	C
	CSharp
	CDoubleSharp
	DDoubleFlat
	DFlat
	D
	DSharp
	DDoubleSharp
	EDoubleFlat
	EFlat
	E
	ESharp
	EDoubleSharp
	FDoubleFlat
	FFlat
	F
	FSharp
	FDoubleSharp
	GDoubleFlat
	GFlat
	G
	GSharp
	GDoubleSharp

	pitchClassCount
)

const letters = "abcdefg"

// NewPitchClass combines a letter in a..g with an accidental.
func NewPitchClass(letter byte, acc Accidental) (PitchClass, error) {
	idx := -1
	for i := 0; i < len(letters); i++ {
		if letters[i] == letter {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, invalidValuef("unknown pitch letter %q", letter)
	}
	if !acc.Valid() {
		return 0, invalidValuef("unknown accidental %d", acc)
	}
	return PitchClass(idx*accidentalsPerLetter + int(acc-DoubleFlat)), nil
}

// PitchClassByName resolves a LilyPond spelling such as "cs" or "bff".
func PitchClassByName(name string) (PitchClass, bool) {
	for pc := PitchClass(0); pc < pitchClassCount; pc++ {
		if pc.Name() == name {
			return pc, true
		}
	}
	return 0, false
}

func (pc PitchClass) Valid() bool { return pc < pitchClassCount }

func (pc PitchClass) Letter() byte { return letters[int(pc)/accidentalsPerLetter] }

func (pc PitchClass) Accidental() Accidental {
	return Accidental(int(pc)%accidentalsPerLetter) + DoubleFlat
}

// Name is the LilyPond spelling, e.g. "cs" for C-sharp.
func (pc PitchClass) Name() string {
	if !pc.Valid() {
		return "PitchClass(" + strconv.Itoa(int(pc)) + ")"
	}
	return string(pc.Letter()) + pc.Accidental().Suffix()
}

func (pc PitchClass) String() string { return pc.Name() }

const (
	MinOctave     = 0
	MaxOctave     = 7
	DefaultOctave = 4
)

// Pitch is a pitch class in a register. The zero value is A-double-flat
// in octave 0; use NewPitch for anything else.
type Pitch struct {
	class  PitchClass
	octave uint8
}

func NewPitch(class PitchClass, octave int) (Pitch, error) {
	if !class.Valid() {
		return Pitch{}, invalidValuef("unknown pitch class %d", class)
	}
	if octave < MinOctave || octave > MaxOctave {
		return Pitch{}, invalidValuef("octave %d out of range [%d,%d]", octave, MinOctave, MaxOctave)
	}
	return Pitch{class: class, octave: uint8(octave)}, nil
}

// MustPitch panics on an invalid pitch; for tables and tests.
func MustPitch(class PitchClass, octave int) Pitch {
	p, err := NewPitch(class, octave)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pitch) Class() PitchClass { return p.class }
func (p Pitch) Octave() int       { return int(p.octave) }

func (p Pitch) String() string {
	return p.class.Name() + strconv.Itoa(int(p.octave))
}
