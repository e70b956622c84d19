package lilypond

import (
	"fmt"

	"github.com/cbegin/stan-go/internal/notation"
)

type ParserConfig struct {
	// DefaultOctave is the register of a pitch without ticks or commas. The
	// number of accepted ticks and commas follows from it.
	DefaultOctave int
	// Tuplets enables the `\tuplet n/d { ... }` column form.
	Tuplets bool
}

func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		DefaultOctave: notation.DefaultOctave,
		Tuplets:       true,
	}
}

func (c ParserConfig) Validate() error {
	if c.DefaultOctave < notation.MinOctave || c.DefaultOctave > notation.MaxOctave {
		return fmt.Errorf("default octave %d out of range [%d,%d]", c.DefaultOctave, notation.MinOctave, notation.MaxOctave)
	}
	return nil
}
