package manifest

import (
	"fmt"

	"github.com/cbegin/stan-go/internal/lilypond"
	"github.com/cbegin/stan-go/internal/notation"
	"github.com/cbegin/stan-go/internal/render"
)

// Parser is the subset of *lilypond.Parser a suite needs.
type Parser interface {
	Parse(input string) (notation.Column, error)
}

// Result is the outcome of one case.
type Result struct {
	Name     string
	Failures []string
}

func (r Result) Passed() bool { return len(r.Failures) == 0 }

// Report collects the results of a run in case order.
type Report struct {
	Suite   string
	Results []Result
}

// Failed returns the number of failing cases.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

func (r Report) Passed() int { return len(r.Results) - r.Failed() }

// Run parses every case with p and compares the outcome against the case's
// expectations.
func (s *Suite) Run(p Parser) Report {
	rep := Report{Suite: s.Name, Results: make([]Result, 0, len(s.Cases))}
	for _, c := range s.Cases {
		rep.Results = append(rep.Results, runCase(p, c))
	}
	return rep
}

func runCase(p Parser, c Case) Result {
	res := Result{Name: c.Name}
	fail := func(format string, args ...any) {
		res.Failures = append(res.Failures, fmt.Sprintf(format, args...))
	}

	col, err := p.Parse(c.Input)
	if c.Error != "" {
		if got := lilypond.Code(err); got != c.Error {
			if err == nil {
				fail("expected error %s, parsed %s", c.Error, render.Column(col))
			} else {
				fail("expected error %s, got %s: %v", c.Error, got, err)
			}
		}
		return res
	}
	if err != nil {
		fail("unexpected error: %v", err)
		return res
	}

	if c.Render != "" {
		if got := render.Column(col); got != c.Render {
			fail("render: got %q, want %q", got, c.Render)
		}
	}
	if c.Lily != "" {
		if got := render.Lily(col); got != c.Lily {
			fail("lily: got %q, want %q", got, c.Lily)
		}
	}
	if c.Duration != "" {
		if got := notation.DurationOf(col).String(); got != c.Duration {
			fail("duration: got %s, want %s", got, c.Duration)
		}
	}
	return res
}
