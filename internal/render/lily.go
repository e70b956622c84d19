package render

import (
	"strconv"
	"strings"

	"github.com/cbegin/stan-go/internal/notation"
)

// Lily renders c as notation text relative to notation.DefaultOctave.
// Parsing the result with tuplets enabled yields a column equal to c.
func Lily(c notation.Column) string {
	return LilyOctave(c, notation.DefaultOctave)
}

// LilyOctave is Lily for a parser whose unmarked pitches sit in
// defaultOctave.
func LilyOctave(c notation.Column, defaultOctave int) string {
	w := lilyWriter{defaultOctave: defaultOctave}
	var b strings.Builder
	w.column(&b, c)
	return b.String()
}

type lilyWriter struct {
	defaultOctave int
}

func (w lilyWriter) column(b *strings.Builder, c notation.Column) {
	switch c := c.(type) {
	case notation.Rest:
		b.WriteByte('r')
		b.WriteString(Value(c.Value()))
	case notation.Note:
		w.pitch(b, c.Pitch())
		b.WriteString(Value(c.Value()))
	case notation.Chord:
		b.WriteByte('<')
		for i, p := range c.Pitches() {
			if i > 0 {
				b.WriteByte(' ')
			}
			w.pitch(b, p)
		}
		b.WriteByte('>')
		b.WriteString(Value(c.Value()))
	case notation.Beam:
		b.WriteByte('[')
		writeElements(b, c.Elements(), w.column)
		b.WriteByte(']')
	case notation.Tuplet:
		ratio := c.Ratio()
		b.WriteString(`\tuplet `)
		b.WriteString(strconv.FormatInt(ratio.Num(), 10))
		b.WriteByte('/')
		b.WriteString(strconv.FormatInt(ratio.Den(), 10))
		b.WriteString(" { ")
		writeElements(b, c.Elements(), w.column)
		b.WriteString(" }")
	}
}

func (w lilyWriter) pitch(b *strings.Builder, p notation.Pitch) {
	b.WriteString(p.Class().Name())
	shift := p.Octave() - w.defaultOctave
	mark := "'"
	if shift < 0 {
		mark, shift = ",", -shift
	}
	b.WriteString(strings.Repeat(mark, shift))
}
