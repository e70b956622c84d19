// Package manifest loads TOML conformance suites: named notation inputs
// paired with the rendering, duration or error they must produce.
package manifest

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

var (
	// ErrMissingField indicates a required case field is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrDuplicateCase indicates two cases share a name.
	ErrDuplicateCase = errors.New("duplicate case name")
	// ErrConflictingExpectation indicates a case expects both an error and output.
	ErrConflictingExpectation = errors.New("case expects both an error and a result")
)

// Case is one input and what parsing it must yield. Empty expectations are
// not checked; a case with none only requires the input to parse.
type Case struct {
	Name     string `toml:"name"`
	Input    string `toml:"input"`
	Render   string `toml:"render,omitempty"`
	Lily     string `toml:"lily,omitempty"`
	Duration string `toml:"duration,omitempty"`
	Error    string `toml:"error,omitempty"`
}

// Suite is the decoded form of a suite file.
type Suite struct {
	Name  string `toml:"name"`
	Cases []Case `toml:"case"`

	// Path is the file the suite was loaded from, if any.
	Path string `toml:"-"`
}

// Load reads and validates a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite: %w", err)
	}
	s, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// Decode parses and validates suite TOML.
func Decode(data []byte) (*Suite, error) {
	var s Suite
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing suite: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every case is named uniquely and is self-consistent.
func (s *Suite) Validate() error {
	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("case %d: name: %w", i, ErrMissingField)
		}
		if seen[c.Name] {
			return fmt.Errorf("case %q: %w", c.Name, ErrDuplicateCase)
		}
		seen[c.Name] = true
		if c.Error != "" && (c.Render != "" || c.Lily != "" || c.Duration != "") {
			return fmt.Errorf("case %q: %w", c.Name, ErrConflictingExpectation)
		}
	}
	return nil
}

// Encode writes s back to TOML.
func Encode(s *Suite) ([]byte, error) {
	data, err := toml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding suite: %w", err)
	}
	return data, nil
}
