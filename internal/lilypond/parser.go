package lilypond

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/cbegin/stan-go/internal/notation"
)

var accidentalRuns = map[byte][2]notation.Accidental{
	'f': {notation.Flat, notation.DoubleFlat},
	's': {notation.Sharp, notation.DoubleSharp},
}

// baseValues maps the digits of a value token to its un-dotted value.
// Two-digit entries are tried first so "16" is never read as "1".
var baseValues = []struct {
	text  string
	value notation.Value
}{
	{"16", notation.SixteenthValue()},
	{"32", notation.ThirtySecondValue()},
	{"64", notation.SixtyFourthValue()},
	{"1", notation.WholeValue()},
	{"2", notation.HalfValue()},
	{"4", notation.QuarterValue()},
	{"8", notation.EighthValue()},
}

const tupletKeyword = `\tuplet`

// maxRatioDigits bounds tuplet ratio operands.
const maxRatioDigits = 4

type Parser struct{ cfg ParserConfig }

func NewParser(cfg ParserConfig) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Parser{cfg: cfg}, nil
}

var defaultParser = &Parser{cfg: DefaultParserConfig()}

// Parse reads one column with the default configuration.
func Parse(input string) (notation.Column, error) {
	return defaultParser.Parse(input)
}

func (p *Parser) Config() ParserConfig { return p.cfg }

// Parse reads exactly one column from input. Whitespace between tokens is
// ignored. Validation failures from the notation constructors are returned
// wrapped with the offset of the offending group.
func (p *Parser) Parse(input string) (notation.Column, error) {
	sc := &scanner{src: input, cfg: p.cfg, far: -1}
	col, next, err := sc.column(0)
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return nil, sc.mismatch()
		}
		return nil, err
	}
	next = sc.skipSpace(next)
	if next < len(input) {
		return nil, &ParseError{Kind: TrailingInput, Pos: next, Found: snippet(input, next)}
	}
	return col, nil
}

type scanner struct {
	src      string
	cfg      ParserConfig
	far      int
	expected []string
}

// expect records a failed expectation and returns errNoMatch.
func (sc *scanner) expect(at int, what string) error {
	switch {
	case at > sc.far:
		sc.far = at
		sc.expected = []string{what}
	case at == sc.far && !slices.Contains(sc.expected, what):
		sc.expected = append(sc.expected, what)
	}
	return errNoMatch
}

func (sc *scanner) mismatch() *ParseError {
	pos := sc.far
	if pos < 0 {
		pos = 0
	}
	return &ParseError{
		Kind:     GrammarMismatch,
		Pos:      pos,
		Expected: slices.Clone(sc.expected),
		Found:    snippet(sc.src, pos),
	}
}

func (sc *scanner) skipSpace(at int) int {
	for at < len(sc.src) && isSpace(sc.src[at]) {
		at++
	}
	return at
}

func (sc *scanner) column(at int) (notation.Column, int, error) {
	at = sc.skipSpace(at)
	if at >= len(sc.src) {
		return nil, at, sc.expect(at, "column")
	}
	switch ch := sc.src[at]; {
	case ch == 'r':
		return sc.rest(at)
	case isLetter(ch):
		return sc.note(at)
	case ch == '<':
		return sc.chord(at)
	case ch == '[':
		return sc.beam(at)
	case ch == '\\' && sc.cfg.Tuplets:
		return sc.tuplet(at)
	}
	return nil, at, sc.expect(at, "column")
}

func (sc *scanner) rest(at int) (notation.Column, int, error) {
	v, next, err := sc.value(at + 1)
	if err != nil {
		return nil, at, err
	}
	return notation.NewRest(v), next, nil
}

func (sc *scanner) note(at int) (notation.Column, int, error) {
	p, next, err := sc.pitch(at)
	if err != nil {
		return nil, at, err
	}
	v, next, err := sc.value(next)
	if err != nil {
		return nil, at, err
	}
	return notation.NewNote(v, p), next, nil
}

func (sc *scanner) chord(at int) (notation.Column, int, error) {
	i := at + 1
	var pitches []notation.Pitch
	for {
		p, next, err := sc.pitch(i)
		if err != nil {
			if errors.Is(err, errNoMatch) && len(pitches) > 0 {
				break
			}
			return nil, at, err
		}
		pitches = append(pitches, p)
		i = next
	}
	i = sc.skipSpace(i)
	if i >= len(sc.src) || sc.src[i] != '>' {
		return nil, at, sc.expect(i, `">"`)
	}
	v, next, err := sc.value(i + 1)
	if err != nil {
		return nil, at, err
	}
	c, err := notation.NewChord(v, pitches...)
	if err != nil {
		return nil, at, fmt.Errorf("chord at %d: %w", at, err)
	}
	return c, next, nil
}

func (sc *scanner) beam(at int) (notation.Column, int, error) {
	elems, next, err := sc.columns(at+1, ']')
	if err != nil {
		return nil, at, err
	}
	b, err := notation.NewBeam(elems...)
	if err != nil {
		return nil, at, fmt.Errorf("beam at %d: %w", at, err)
	}
	return b, next, nil
}

// tuplet reads `\tuplet num/den { column+ }`; the value is derived from
// the ratio and the summed element durations.
func (sc *scanner) tuplet(at int) (notation.Column, int, error) {
	if !hasPrefixAt(sc.src, at, tupletKeyword) {
		return nil, at, sc.expect(at, tupletKeyword)
	}
	num, i, err := sc.integer(at + len(tupletKeyword))
	if err != nil {
		return nil, at, err
	}
	i = sc.skipSpace(i)
	if i >= len(sc.src) || sc.src[i] != '/' {
		return nil, at, sc.expect(i, `"/"`)
	}
	den, i, err := sc.integer(i + 1)
	if err != nil {
		return nil, at, err
	}
	i = sc.skipSpace(i)
	if i >= len(sc.src) || sc.src[i] != '{' {
		return nil, at, sc.expect(i, `"{"`)
	}
	elems, next, err := sc.columns(i+1, '}')
	if err != nil {
		return nil, at, err
	}
	t, err := notation.NewTupletRatio(num, den, elems...)
	if err != nil {
		return nil, at, fmt.Errorf("tuplet at %d: %w", at, err)
	}
	return t, next, nil
}

// columns reads column+ followed by the closing delimiter.
func (sc *scanner) columns(at int, closer byte) ([]notation.Column, int, error) {
	var elems []notation.Column
	i := at
	for {
		c, next, err := sc.column(i)
		if err != nil {
			if errors.Is(err, errNoMatch) && len(elems) > 0 {
				break
			}
			return nil, at, err
		}
		elems = append(elems, c)
		i = next
	}
	i = sc.skipSpace(i)
	if i >= len(sc.src) || sc.src[i] != closer {
		return nil, at, sc.expect(i, strconv.Quote(string(closer)))
	}
	return elems, i + 1, nil
}

func (sc *scanner) pitch(at int) (notation.Pitch, int, error) {
	at = sc.skipSpace(at)
	if at >= len(sc.src) || !isLetter(sc.src[at]) {
		return notation.Pitch{}, at, sc.expect(at, "pitch")
	}
	letter := sc.src[at]
	acc, i := sc.accidental(at + 1)
	class, err := notation.NewPitchClass(letter, acc)
	if err != nil {
		return notation.Pitch{}, at, err
	}
	octave, i := sc.octave(i)
	p, err := notation.NewPitch(class, octave)
	if err != nil {
		return notation.Pitch{}, at, fmt.Errorf("pitch at %d: %w", at, err)
	}
	return p, i, nil
}

// accidental reads the longest of "ff", "f", "s", "ss" directly after the
// letter; no whitespace is allowed inside a pitch name.
func (sc *scanner) accidental(at int) (notation.Accidental, int) {
	if at >= len(sc.src) {
		return notation.Natural, at
	}
	run, ok := accidentalRuns[sc.src[at]]
	if !ok {
		return notation.Natural, at
	}
	if at+1 < len(sc.src) && sc.src[at+1] == sc.src[at] {
		return run[1], at + 2
	}
	return run[0], at + 1
}

// octave reads up to MaxOctave-DefaultOctave ticks or up to
// DefaultOctave-MinOctave commas. The two marks never mix.
func (sc *scanner) octave(at int) (int, int) {
	i := sc.skipSpace(at)
	if i >= len(sc.src) {
		return sc.cfg.DefaultOctave, at
	}
	var mark byte
	var limit, step int
	switch sc.src[i] {
	case '\'':
		mark, limit, step = '\'', notation.MaxOctave-sc.cfg.DefaultOctave, 1
	case ',':
		mark, limit, step = ',', sc.cfg.DefaultOctave-notation.MinOctave, -1
	default:
		return sc.cfg.DefaultOctave, at
	}
	octave, next := sc.cfg.DefaultOctave, at
	for n := 0; n < limit; n++ {
		j := sc.skipSpace(next)
		if j >= len(sc.src) || sc.src[j] != mark {
			break
		}
		octave += step
		next = j + 1
	}
	return octave, next
}

// value reads a base length and up to two dots.
func (sc *scanner) value(at int) (notation.Value, int, error) {
	at = sc.skipSpace(at)
	var v notation.Value
	i := -1
	for _, bv := range baseValues {
		if hasPrefixAt(sc.src, at, bv.text) {
			v = bv.value
			i = at + len(bv.text)
			break
		}
	}
	if i < 0 {
		return notation.Value{}, at, sc.expect(at, "value")
	}
	for n := 0; n < notation.MaxDots; n++ {
		j := sc.skipSpace(i)
		if j >= len(sc.src) || sc.src[j] != '.' {
			break
		}
		dotted, err := v.Dot()
		if err != nil {
			return notation.Value{}, at, err
		}
		v, i = dotted, j+1
	}
	return v, i, nil
}

func (sc *scanner) integer(at int) (int, int, error) {
	at = sc.skipSpace(at)
	i := at
	for i < len(sc.src) && i-at < maxRatioDigits && isDigit(sc.src[i]) {
		i++
	}
	if i == at {
		return 0, at, sc.expect(at, "integer")
	}
	n, err := strconv.Atoi(sc.src[at:i])
	if err != nil {
		return 0, at, err
	}
	return n, i, nil
}

func hasPrefixAt(s string, at int, prefix string) bool {
	return at <= len(s) && len(s)-at >= len(prefix) && s[at:at+len(prefix)] == prefix
}

func isSpace(b byte) bool  { return b == ' ' || b == '\n' || b == '\r' || b == '\t' }
func isLetter(b byte) bool { return b >= 'a' && b <= 'g' }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
