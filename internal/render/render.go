// Package render turns notation trees back into text. Column produces the
// compact diagnostic form used in logs and test output; Lily produces
// notation the parser reads back.
package render

import (
	"strings"

	"github.com/cbegin/stan-go/internal/notation"
	"github.com/cbegin/stan-go/internal/rational"
)

// Rational renders r as "n/d".
func Rational(r rational.Rational) string { return r.String() }

// Pitch renders a pitch as its class spelling followed by the octave digit,
// e.g. "cs7".
func Pitch(p notation.Pitch) string { return p.String() }

// Value renders the base denominator followed by one '.' per dot.
func Value(v notation.Value) string { return v.String() }

// Column renders c in the diagnostic form:
//
//	rest    r:<value>
//	note    <pitch>:<value>
//	chord   <<pitch> <pitch> ...>:<value>
//	beam    [<elem> <elem> ...]
//	tuplet  <value>:{<elem> <elem> ...}
//
// A nil column renders as the empty string.
func Column(c notation.Column) string {
	var b strings.Builder
	writeColumn(&b, c)
	return b.String()
}

func writeColumn(b *strings.Builder, c notation.Column) {
	switch c := c.(type) {
	case notation.Rest:
		b.WriteString("r:")
		b.WriteString(Value(c.Value()))
	case notation.Note:
		b.WriteString(Pitch(c.Pitch()))
		b.WriteByte(':')
		b.WriteString(Value(c.Value()))
	case notation.Chord:
		b.WriteByte('<')
		for i, p := range c.Pitches() {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(Pitch(p))
		}
		b.WriteString(">:")
		b.WriteString(Value(c.Value()))
	case notation.Beam:
		b.WriteByte('[')
		writeElements(b, c.Elements(), writeColumn)
		b.WriteByte(']')
	case notation.Tuplet:
		b.WriteString(Value(c.Value()))
		b.WriteString(":{")
		writeElements(b, c.Elements(), writeColumn)
		b.WriteByte('}')
	}
}

func writeElements(b *strings.Builder, elems []notation.Column, write func(*strings.Builder, notation.Column)) {
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		write(b, e)
	}
}
