package lilypond

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cbegin/stan-go/internal/notation"
	"github.com/cbegin/stan-go/internal/rational"
)

var (
	ErrGrammarMismatch = errors.New("parse error")
	ErrTrailingInput   = errors.New("incomplete parse")
)

// errNoMatch is returned by grammar rules that do not apply at a position;
// callers may backtrack past it. Any other error aborts the parse.
var errNoMatch = errors.New("no match")

type ErrorKind int

const (
	GrammarMismatch ErrorKind = iota + 1
	TrailingInput
)

func (k ErrorKind) String() string {
	switch k {
	case GrammarMismatch:
		return CodeGrammarMismatch
	case TrailingInput:
		return CodeTrailingInput
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError reports input that is not a single well-formed column.
// For GrammarMismatch, Pos is the furthest offset any rule reached and
// Expected lists what would have been accepted there.
type ParseError struct {
	Kind     ErrorKind
	Pos      int
	Expected []string
	Found    string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	found := "end of input"
	if e.Found != "" {
		found = fmt.Sprintf("%q", e.Found)
	}
	switch e.Kind {
	case TrailingInput:
		return fmt.Sprintf("%s at %d: unexpected %s", ErrTrailingInput.Error(), e.Pos, found)
	default:
		if len(e.Expected) == 0 {
			return fmt.Sprintf("%s at %d: unexpected %s", ErrGrammarMismatch.Error(), e.Pos, found)
		}
		return fmt.Sprintf("%s at %d: expected %s, found %s",
			ErrGrammarMismatch.Error(), e.Pos, strings.Join(e.Expected, " or "), found)
	}
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	if e.Kind == TrailingInput {
		return ErrTrailingInput
	}
	return ErrGrammarMismatch
}

const maxFound = 16

func snippet(src string, at int) string {
	if at >= len(src) {
		return ""
	}
	end := at + maxFound
	if end > len(src) {
		end = len(src)
	}
	return src[at:end]
}

// Error codes reported by Code.
const (
	CodeGrammarMismatch = "grammar_mismatch"
	CodeTrailingInput   = "trailing_input"
	CodeInvalidBeam     = "invalid_beam"
	CodeInvalidTuplet   = "invalid_tuplet"
	CodeInvalidValue    = "invalid_value"
	CodeDomain          = "domain"
	CodeOverflow        = "overflow"
	CodeUnknown         = "unknown"
)

// Code classifies an error returned by Parse, or by later exact arithmetic
// over a parsed column, into a stable string. A nil error has the empty code.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrGrammarMismatch):
		return CodeGrammarMismatch
	case errors.Is(err, ErrTrailingInput):
		return CodeTrailingInput
	case errors.Is(err, notation.ErrInvalidBeam):
		return CodeInvalidBeam
	case errors.Is(err, notation.ErrInvalidTuplet):
		return CodeInvalidTuplet
	case errors.Is(err, notation.ErrInvalidValue):
		return CodeInvalidValue
	case errors.Is(err, rational.ErrDomain):
		return CodeDomain
	case errors.Is(err, rational.ErrOverflow):
		return CodeOverflow
	}
	return CodeUnknown
}
