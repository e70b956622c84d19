package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseCommand(t *testing.T) {
	out, _, err := execute(t, "parse", "--format", "debug", "--events=false", "c4", "[c8 d8]")
	require.NoError(t, err)
	assert.Equal(t, "c4:4\tduration 1/4\n[c4:8 d4:8]\tduration 1/4\n", out)
}

func TestParseCommandLilyWithEvents(t *testing.T) {
	out, _, err := execute(t, "parse", "--format", "lily", "--events", `\tuplet 3/2 { c8 d8 e8 }`)
	require.NoError(t, err)
	assert.Contains(t, out, `\tuplet 3/2 { c8 d8 e8 }`+"\tduration 1/4\n")
	assert.Contains(t, out, "  1/12 +1/12 note d4\n")
}

func TestParseCommandReportsFailures(t *testing.T) {
	_, errOut, err := execute(t, "parse", "--format", "debug", "--events=false", "c4", "q4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 inputs failed")
	assert.Contains(t, errOut, "q4: parse error at 0")
}

func TestParseCommandDeepTuplets(t *testing.T) {
	deep := strings.Repeat(`\tuplet 3/2 { `, 46) + `\tuplet 3/2 { c8 d8 e8 }` + strings.Repeat(` c8 }`, 46)

	out, _, err := execute(t, "parse", "--format", "debug", "--events=false", deep)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\tduration 1/4\n"), out)

	_, errOut, err := execute(t, "parse", "--format", "debug", "--events", deep)
	require.Error(t, err)
	assert.Contains(t, errOut, "rational overflow")
}

func TestParseCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.ly")
	require.NoError(t, os.WriteFile(path, []byte("<c e g>2\n"), 0o644))
	out, _, err := execute(t, "parse", "--format", "debug", "--events=false", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "<c4 e4 g4>:2\tduration 1/2\n", out)

	_, _, err = execute(t, "parse", "--format", "debug", "--file", "")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	out, _, err := execute(t, "check", filepath.Join("..", "..", "internal", "manifest", "testdata", "suite.toml"))
	require.NoError(t, err)
	assert.Contains(t, out, "PASS quarter note")
	assert.Contains(t, out, "12 passed, 0 failed")

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[case]]\nname = \"x\"\ninput = \"c4\"\nrender = \"d4:4\"\n"), 0o644))
	out, _, err = execute(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL x")
}
