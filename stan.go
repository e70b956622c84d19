// Package stan parses LilyPond-style rhythmic notation into a validated tree
// of rests, notes, chords, beams and tuplets with exact rational durations.
package stan

import (
	"fmt"
	"os"

	"github.com/cbegin/stan-go/internal/lilypond"
	"github.com/cbegin/stan-go/internal/notation"
	"github.com/cbegin/stan-go/internal/render"
	"github.com/cbegin/stan-go/internal/timeline"
)

type (
	Column     = notation.Column
	ParseError = lilypond.ParseError
	Event      = timeline.Event
)

var (
	ErrGrammarMismatch = lilypond.ErrGrammarMismatch
	ErrTrailingInput   = lilypond.ErrTrailingInput
	ErrInvalidValue    = notation.ErrInvalidValue
	ErrInvalidBeam     = notation.ErrInvalidBeam
	ErrInvalidTuplet   = notation.ErrInvalidTuplet
)

type ReaderOption func(*lilypond.ParserConfig)

// WithTuplets enables or disables the \tuplet syntax.
func WithTuplets(enabled bool) ReaderOption {
	return func(cfg *lilypond.ParserConfig) {
		cfg.Tuplets = enabled
	}
}

// WithDefaultOctave sets the octave of a pitch written without marks.
func WithDefaultOctave(octave int) ReaderOption {
	return func(cfg *lilypond.ParserConfig) {
		cfg.DefaultOctave = octave
	}
}

// Reader parses notation text. It is safe for concurrent use.
type Reader struct {
	parser *lilypond.Parser
}

func NewReader(opts ...ReaderOption) (*Reader, error) {
	cfg := lilypond.DefaultParserConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	p, err := lilypond.NewParser(cfg)
	if err != nil {
		return nil, err
	}
	return &Reader{parser: p}, nil
}

// Parse reads exactly one column from text.
func (r *Reader) Parse(text string) (Column, error) {
	return r.parser.Parse(text)
}

// ParseFile reads and parses the whole file at path.
func (r *Reader) ParseFile(path string) (Column, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := r.parser.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Lily renders c so that this reader parses it back to an equal column.
func (r *Reader) Lily(c Column) string {
	return render.LilyOctave(c, r.parser.Config().DefaultOctave)
}

// Parse reads one column with the default configuration.
func Parse(text string) (Column, error) { return lilypond.Parse(text) }

// Render returns the diagnostic rendering of c.
func Render(c Column) string { return render.Column(c) }

// Lily returns notation text for c relative to the default octave.
func Lily(c Column) string { return render.Lily(c) }

// Duration returns the exact length of c in whole notes.
func Duration(c Column) notation.Duration { return notation.DurationOf(c) }

// Events flattens c into onset-ordered leaf events. It fails when tuplets are
// nested too deeply for exact int64 positions.
func Events(c Column) ([]Event, error) {
	tl, err := timeline.New(c)
	if err != nil {
		return nil, err
	}
	return tl.Events(), nil
}
