package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/obst/cmd/obst/config"
	"github.com/katalvlaran/obst/viz"
)

type fakeRenderer struct {
	calls     int
	dotPath   string
	imagePath string
	err       error
}

func (r *fakeRenderer) Render(_ context.Context, dotPath, imagePath string) error {
	r.calls++
	r.dotPath, r.imagePath = dotPath, imagePath

	return r.err
}

type fakeOpener struct {
	calls int
	path  string
	err   error
}

func (o *fakeOpener) Open(path string) error {
	o.calls++
	o.path = path

	return o.err
}

// stubConfig returns a loader that ignores the path and yields a fixed
// config rooted at dir.
func stubConfig(dir string) configLoader {
	return func(string) (*config.Config, error) {
		return &config.Config{
			Style: viz.DefaultStyle(),
			Output: config.OutputConfig{
				Dir:         dir,
				DOTFile:     "tree.dot",
				ImageFile:   "tree.png",
				ImageFormat: "png",
			},
		}, nil
	}
}

// TestVisualizeCommand_WritesDOTAndRenders drives the full path with a
// fake renderer and checks the DOT file on disk.
func TestVisualizeCommand_WritesDOTAndRenders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	renderer := &fakeRenderer{}
	opener := &fakeOpener{}

	cmd := newVisualizeCommandWithDeps(stubConfig(dir), renderer, opener)

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(textbookArgs())

	require.NoError(t, cmd.Execute())

	dotPath := filepath.Join(dir, "tree.dot")

	data, readErr := os.ReadFile(dotPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "digraph OBST {")
	assert.Contains(t, string(data), "\"B\" -> \"A\";")
	assert.Contains(t, string(data), "\"B\" -> \"C\";")

	assert.Equal(t, 1, renderer.calls)
	assert.Equal(t, dotPath, renderer.dotPath)
	assert.Equal(t, filepath.Join(dir, "tree.png"), renderer.imagePath)
	assert.Zero(t, opener.calls)

	assert.Contains(t, out.String(), "DOT written to")
	assert.Contains(t, out.String(), "Image written to")
}

// TestVisualizeCommand_DotOnly skips the renderer and the image message.
func TestVisualizeCommand_DotOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	renderer := &fakeRenderer{}

	cmd := newVisualizeCommandWithDeps(stubConfig(dir), renderer, &fakeOpener{})

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(textbookArgs("--dot-only"))

	require.NoError(t, cmd.Execute())

	_, statErr := os.Stat(filepath.Join(dir, "tree.dot"))
	require.NoError(t, statErr)

	assert.Zero(t, renderer.calls)
	assert.Contains(t, out.String(), "DOT written to")
	assert.NotContains(t, out.String(), "Image written to")
}

// TestVisualizeCommand_Open launches the opener on the rendered image.
func TestVisualizeCommand_Open(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	opener := &fakeOpener{}

	cmd := newVisualizeCommandWithDeps(stubConfig(dir), &fakeRenderer{}, opener)

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(textbookArgs("--open"))

	require.NoError(t, cmd.Execute())

	assert.Equal(t, 1, opener.calls)
	assert.Equal(t, filepath.Join(dir, "tree.png"), opener.path)
}

// TestVisualizeCommand_RendererError propagates the failure.
func TestVisualizeCommand_RendererError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	renderer := &fakeRenderer{err: boom}

	cmd := newVisualizeCommandWithDeps(stubConfig(t.TempDir()), renderer, &fakeOpener{})

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(textbookArgs())

	require.ErrorIs(t, cmd.Execute(), boom)
}

// TestVisualizeCommand_ConfigError propagates the loader failure.
func TestVisualizeCommand_ConfigError(t *testing.T) {
	t.Parallel()

	bad := errors.New("bad config")
	loader := func(string) (*config.Config, error) { return nil, bad }

	cmd := newVisualizeCommandWithDeps(loader, &fakeRenderer{}, &fakeOpener{})

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(textbookArgs())

	require.ErrorIs(t, cmd.Execute(), bad)
}
