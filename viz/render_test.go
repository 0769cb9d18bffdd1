package viz_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/obst/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records the paths it was asked to render and returns a
// canned error.
type fakeRenderer struct {
	dotPath   string
	imagePath string
	err       error
}

func (f *fakeRenderer) Render(_ context.Context, dotPath, imagePath string) error {
	f.dotPath = dotPath
	f.imagePath = imagePath

	return f.err
}

// TestVisualize_WritesAndRenders verifies the full pipeline: the DOT
// file lands on disk and the renderer receives both paths.
func TestVisualize_WritesAndRenders(t *testing.T) {
	dir := t.TempDir()
	dotPath := filepath.Join(dir, "tree.dot")
	imagePath := filepath.Join(dir, "tree.png")
	fake := &fakeRenderer{}

	err := viz.Visualize(context.Background(), balanced(), viz.DefaultStyle(), dotPath, imagePath, fake)
	require.NoError(t, err)

	data, err := os.ReadFile(dotPath)
	require.NoError(t, err, "dot file written")
	assert.Contains(t, string(data), "digraph OBST {", "digraph content")

	assert.Equal(t, dotPath, fake.dotPath, "renderer got the dot path")
	assert.Equal(t, imagePath, fake.imagePath, "renderer got the image path")
}

// TestVisualize_DOTOnly verifies a nil renderer stops after the export.
func TestVisualize_DOTOnly(t *testing.T) {
	dotPath := filepath.Join(t.TempDir(), "tree.dot")

	err := viz.Visualize(context.Background(), balanced(), viz.DefaultStyle(), dotPath, "", nil)
	require.NoError(t, err, "nil renderer means DOT-only export")

	_, err = os.Stat(dotPath)
	assert.NoError(t, err, "dot file exists")
}

// TestVisualize_RendererError verifies renderer failures propagate.
func TestVisualize_RendererError(t *testing.T) {
	boom := errors.New("no dot binary")
	fake := &fakeRenderer{err: boom}
	dir := t.TempDir()

	err := viz.Visualize(context.Background(), balanced(), viz.DefaultStyle(),
		filepath.Join(dir, "t.dot"), filepath.Join(dir, "t.png"), fake)
	assert.ErrorIs(t, err, boom, "renderer error surfaces")
}

// TestVisualize_NilTree verifies the nil guard fires before any file is
// created.
func TestVisualize_NilTree(t *testing.T) {
	dotPath := filepath.Join(t.TempDir(), "t.dot")

	err := viz.Visualize(context.Background(), nil, viz.DefaultStyle(), dotPath, "", nil)
	assert.ErrorIs(t, err, viz.ErrNilTree)

	_, statErr := os.Stat(dotPath)
	assert.True(t, os.IsNotExist(statErr), "no file for a nil tree")
}

// TestVisualize_BadPath verifies create failures wrap with context.
func TestVisualize_BadPath(t *testing.T) {
	dotPath := filepath.Join(t.TempDir(), "missing", "tree.dot")

	err := viz.Visualize(context.Background(), balanced(), viz.DefaultStyle(), dotPath, "", nil)
	require.Error(t, err, "missing directory must fail")
	assert.Contains(t, err.Error(), "create", "error names the failing step")
}
