package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/domino14/boggle/testhelpers"
)

func TestRunText(t *testing.T) {
	dict := testhelpers.WriteWordList(t, t.TempDir(), "dict.txt", "cat", "cats", "scat", "acts", "tacs", "at")
	var out bytes.Buffer
	require.NoError(t, run([]string{dict, "CA/ST"}, &out))
	assert.Equal(t, "ACTS\nCATS\nSCAT\nTACS\nCAT\nScore = 5\n", out.String())
}

func TestRunBoardFile(t *testing.T) {
	dict := testhelpers.WriteWordList(t, t.TempDir(), "dict.txt", "QUIT", "QUITS", "SUIT")
	boardFile := testhelpers.WriteWordList(t, t.TempDir(), "board.txt", "2 2", "Qu I", "S T")
	var out bytes.Buffer
	require.NoError(t, run([]string{"--threads", "2", dict, boardFile}, &out))
	// SUIT needs a bare U, which a Qu cell cannot give.
	assert.Equal(t, "QUITS\nQUIT\nScore = 3\n", out.String())
}

func TestRunYAML(t *testing.T) {
	dict := testhelpers.WriteWordList(t, t.TempDir(), "dict.txt", "cat", "cats", "at")
	var out bytes.Buffer
	require.NoError(t, run([]string{"--format", "yaml", "--ternary-trie", dict, "CA/ST"}, &out))

	var r report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &r))
	assert.Equal(t, []string{"CA", "ST"}, r.Board)
	assert.Equal(t, 2, r.Total)
	require.Len(t, r.Words, 2)
	assert.Equal(t, "CATS", r.Words[0].Word)
}

func TestRunErrors(t *testing.T) {
	dict := testhelpers.WriteWordList(t, t.TempDir(), "dict.txt", "CAT")
	var out bytes.Buffer
	assert.ErrorIs(t, run([]string{dict}, &out), errUsage)
	assert.Error(t, run([]string{"--format", "xml", dict, "CAT"}, &out))
	assert.Error(t, run([]string{dict, "CA/T"}, &out))
	assert.Error(t, run([]string{filepath.Join(t.TempDir(), "nope.txt"), "CAT"}, &out))
	assert.Error(t, run([]string{"--bogus", dict, "CAT"}, &out))
}
