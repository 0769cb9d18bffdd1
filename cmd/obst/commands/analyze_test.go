package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyzeCommand_Textbook reports the four statistics of the optimal
// tree for the classic instance.
func TestAnalyzeCommand_Textbook(t *testing.T) {
	t.Parallel()

	cmd := NewAnalyzeCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(textbookArgs())

	require.NoError(t, cmd.Execute())

	s := out.String()
	assert.Contains(t, s, "Height of the Tree: 2")
	assert.Contains(t, s, "Total Number of Nodes: 3")
	assert.Contains(t, s, "Number of Leaf Nodes: 2")
	assert.Contains(t, s, "Average Depth of Nodes: 0.666667")
}

// TestAnalyzeCommand_SingleKey degenerates to a one node tree.
func TestAnalyzeCommand_SingleKey(t *testing.T) {
	t.Parallel()

	cmd := NewAnalyzeCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--labels", "K", "--p", "2"})

	require.NoError(t, cmd.Execute())

	s := out.String()
	assert.Contains(t, s, "Height of the Tree: 1")
	assert.Contains(t, s, "Total Number of Nodes: 1")
	assert.Contains(t, s, "Number of Leaf Nodes: 1")
	assert.Contains(t, s, "Average Depth of Nodes: 0")
}

// TestAnalyzeCommand_NoInput rejects a bare invocation.
func TestAnalyzeCommand_NoInput(t *testing.T) {
	t.Parallel()

	cmd := NewAnalyzeCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	require.ErrorIs(t, cmd.Execute(), ErrNoInput)
}
