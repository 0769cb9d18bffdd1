package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textbookArgs passes the classic three key instance inline.
func textbookArgs(extra ...string) []string {
	args := []string{"--labels", "A,B,C", "--p", "3,3,1", "--q", "2,3,1,1"}

	return append(args, extra...)
}

// TestSolveCommand_Textbook checks cost, weight and the sideways tree for
// the classic instance.
func TestSolveCommand_Textbook(t *testing.T) {
	t.Parallel()

	cmd := NewSolveCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(textbookArgs())

	require.NoError(t, cmd.Execute())

	s := out.String()
	assert.Contains(t, s, "Optimal cost: 25")
	assert.Contains(t, s, "Total weight: 14")
	assert.Contains(t, s, "  C\nB\n  A")
	assert.NotContains(t, s, "E[i][j]")
}

// TestSolveCommand_Tables adds the derived tables behind --tables.
func TestSolveCommand_Tables(t *testing.T) {
	t.Parallel()

	cmd := NewSolveCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(textbookArgs("--tables"))

	require.NoError(t, cmd.Execute())

	s := out.String()
	assert.Contains(t, s, "E[i][j]")
	assert.Contains(t, s, "W[i][j]")
	assert.Contains(t, s, "Root[i][j]")
}

// TestSolveCommand_FromFile reads the same instance from a dataset file.
func TestSolveCommand_FromFile(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, `
labels: [A, B, C]
p: [3, 3, 1]
q: [2, 3, 1, 1]
`)

	cmd := NewSolveCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--file", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Optimal cost: 25")
}

// TestSolveCommand_NoInput rejects a bare invocation.
func TestSolveCommand_NoInput(t *testing.T) {
	t.Parallel()

	cmd := NewSolveCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	require.ErrorIs(t, cmd.Execute(), ErrNoInput)
}

// TestSolveCommand_InputConflict rejects mixing --file with inline flags.
func TestSolveCommand_InputConflict(t *testing.T) {
	t.Parallel()

	cmd := NewSolveCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--file", "data.yaml", "--labels", "A", "--p", "1"})

	require.ErrorIs(t, cmd.Execute(), ErrInputConflict)
}
