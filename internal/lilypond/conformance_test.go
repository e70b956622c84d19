package lilypond

import (
	"errors"
	"testing"

	"github.com/cbegin/stan-go/internal/notation"
)

func TestConformance_QuarterNote(t *testing.T) {
	p, err := NewParser(DefaultParserConfig())
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	col, err := p.Parse("c4")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	note, ok := col.(notation.Note)
	if !ok {
		t.Fatalf("expected note, got %T", col)
	}
	if note.Pitch().Class() != notation.C || note.Pitch().Octave() != 4 {
		t.Fatalf("unexpected pitch %s", note.Pitch())
	}
	if note.Value() != notation.QuarterValue() || note.Value().Dots() != 0 {
		t.Fatalf("unexpected value %s", note.Value())
	}
}

func TestConformance_EighthRest(t *testing.T) {
	col, err := Parse("r8")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !notation.Equal(col, notation.NewRest(notation.EighthValue())) {
		t.Fatalf("expected eighth rest, got %#v", col)
	}
}

func TestConformance_OctaveTicksRaiseFromDefault(t *testing.T) {
	col, err := Parse("cs''8")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	note := col.(notation.Note)
	if note.Pitch().Class() != notation.CSharp {
		t.Fatalf("expected c-sharp, got %s", note.Pitch().Class())
	}
	if note.Pitch().Octave() != notation.DefaultOctave+2 {
		t.Fatalf("expected octave %d, got %d", notation.DefaultOctave+2, note.Pitch().Octave())
	}
}

func TestConformance_ChordKeepsPitchOrder(t *testing.T) {
	col, err := Parse("<c e g>4")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	chord := col.(notation.Chord)
	got := chord.Pitches()
	want := []notation.PitchClass{notation.C, notation.E, notation.G}
	if len(got) != len(want) {
		t.Fatalf("expected %d pitches, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Class() != want[i] || got[i].Octave() != 4 {
			t.Fatalf("pitch %d: got %s", i, got[i])
		}
	}
}

func TestConformance_BeamOfEighths(t *testing.T) {
	col, err := Parse("[c8 d8]")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	beam, ok := col.(notation.Beam)
	if !ok || beam.Len() != 2 {
		t.Fatalf("expected two element beam, got %#v", col)
	}
	if d := notation.DurationOf(col); d.String() != "1/4" {
		t.Fatalf("expected beam duration 1/4, got %s", d)
	}
}

func TestConformance_TrailingInput(t *testing.T) {
	_, err := Parse("c4 x")
	if !errors.Is(err, ErrTrailingInput) {
		t.Fatalf("expected trailing input error, got %v", err)
	}
}

func TestConformance_GrammarMismatch(t *testing.T) {
	_, err := Parse("q4")
	if !errors.Is(err, ErrGrammarMismatch) {
		t.Fatalf("expected grammar mismatch, got %v", err)
	}
}

func TestConformance_SingleElementBeamIsInvalid(t *testing.T) {
	_, err := Parse("[c8]")
	var be *notation.InvalidBeamError
	if !errors.As(err, &be) {
		t.Fatalf("expected invalid beam, got %v", err)
	}
}
