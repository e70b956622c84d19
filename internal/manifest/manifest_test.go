package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbegin/stan-go/internal/lilypond"
	"github.com/cbegin/stan-go/internal/notation"
)

func defaultParser(t *testing.T) *lilypond.Parser {
	t.Helper()
	p, err := lilypond.NewParser(lilypond.DefaultParserConfig())
	require.NoError(t, err)
	return p
}

func TestLoadTestdataSuitePasses(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "suite.toml"))
	require.NoError(t, err)
	assert.Equal(t, "core notation", s.Name)
	assert.Len(t, s.Cases, 12)
	assert.Equal(t, filepath.Join("testdata", "suite.toml"), s.Path)

	rep := s.Run(defaultParser(t))
	for _, res := range rep.Results {
		assert.True(t, res.Passed(), "%s: %v", res.Name, res.Failures)
	}
	assert.Equal(t, 0, rep.Failed())
	assert.Equal(t, 12, rep.Passed())
}

func TestRunReportsMismatches(t *testing.T) {
	s, err := Decode([]byte(`
name = "broken"

[[case]]
name = "wrong render"
input = "c4"
render = "d4:4"
duration = "1/8"

[[case]]
name = "should fail"
input = "c4"
error = "grammar_mismatch"

[[case]]
name = "wrong error"
input = "q4"
error = "trailing_input"

[[case]]
name = "should parse"
input = "[c8]"

[[case]]
name = "ok"
input = "r1"
`))
	require.NoError(t, err)

	rep := s.Run(defaultParser(t))
	require.Len(t, rep.Results, 5)
	assert.Equal(t, 4, rep.Failed())
	assert.Equal(t, 1, rep.Passed())

	assert.Len(t, rep.Results[0].Failures, 2)
	assert.Contains(t, rep.Results[1].Failures[0], "parsed c4:4")
	assert.Contains(t, rep.Results[2].Failures[0], "got grammar_mismatch")
	assert.Contains(t, rep.Results[3].Failures[0], "unexpected error")
	assert.True(t, rep.Results[4].Passed())
}

type stubParser struct{ col notation.Column }

func (s stubParser) Parse(string) (notation.Column, error) { return s.col, nil }

func TestRunUsesGivenParser(t *testing.T) {
	s := &Suite{Cases: []Case{{Name: "stub", Input: "anything", Render: "r:2"}}}
	rep := s.Run(stubParser{col: notation.NewRest(notation.HalfValue())})
	assert.Equal(t, 0, rep.Failed())
}

func TestDecodeValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"missing name", "[[case]]\ninput = \"c4\"\n", ErrMissingField},
		{"duplicate", "[[case]]\nname = \"a\"\ninput = \"c4\"\n[[case]]\nname = \"a\"\ninput = \"d4\"\n", ErrDuplicateCase},
		{"conflict", "[[case]]\nname = \"a\"\ninput = \"c4\"\nrender = \"c4:4\"\nerror = \"grammar_mismatch\"\n", ErrConflictingExpectation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Decode([]byte("name = "))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncodeRoundTrip(t *testing.T) {
	s := &Suite{Name: "rt", Cases: []Case{
		{Name: "one", Input: "c4", Render: "c4:4"},
		{Name: "two", Input: "q4", Error: "grammar_mismatch"},
	}}
	data, err := Encode(s)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, s.Name, back.Name)
	assert.Equal(t, s.Cases, back.Cases)
}
