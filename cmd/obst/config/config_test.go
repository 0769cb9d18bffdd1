package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/obst/cmd/obst/config"
)

// TestLoad_Defaults loads with no config file and expects the stock style
// and output locations.
func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "Optimal Binary Search Tree", cfg.Style.GraphLabel)
	assert.Equal(t, "circle", cfg.Style.NodeShape)
	assert.Equal(t, "lightblue", cfg.Style.NodeColor)
	assert.Equal(t, 14, cfg.Style.NodeFontSize)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "obst.dot", cfg.Output.DOTFile)
	assert.Equal(t, "obst.png", cfg.Output.ImageFile)
	assert.Equal(t, "png", cfg.Output.ImageFormat)
	assert.False(t, cfg.NoColor)
}

// TestLoad_FromFile overrides a handful of keys from a YAML file and keeps
// defaults for the rest.
func TestLoad_FromFile(t *testing.T) {
	t.Parallel()

	configContent := `
style:
  graph_label: "Dictionary OBST"
  node_color: "palegreen"

output:
  dir: "out"
  image_format: "svg"

no_color: true
`

	tmpFile, err := os.CreateTemp(t.TempDir(), "obst-*.yaml")
	require.NoError(t, err)

	_, writeErr := tmpFile.WriteString(configContent)
	require.NoError(t, writeErr)

	tmpFile.Close()

	cfg, loadErr := config.Load(tmpFile.Name())
	require.NoError(t, loadErr)

	assert.Equal(t, "Dictionary OBST", cfg.Style.GraphLabel)
	assert.Equal(t, "palegreen", cfg.Style.NodeColor)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, "svg", cfg.Output.ImageFormat)
	assert.True(t, cfg.NoColor)

	// Untouched keys keep their defaults.
	assert.Equal(t, "circle", cfg.Style.NodeShape)
	assert.Equal(t, "obst.dot", cfg.Output.DOTFile)
}

// TestLoad_MissingExplicitFile expects an error when the named config file
// does not exist; only the implicit lookup may fall back to defaults.
func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load("/nonexistent/obst.yaml")
	require.Error(t, err)
}

// TestLoad_Validation rejects configs the visualize command cannot act on.
func TestLoad_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "zero graph font size",
			content: "style:\n  graph_font_size: 0\n",
			wantErr: config.ErrInvalidFontSize,
		},
		{
			name:    "negative node font size",
			content: "style:\n  node_font_size: -3\n",
			wantErr: config.ErrInvalidFontSize,
		},
		{
			name:    "blank node shape",
			content: "style:\n  node_shape: \"  \"\n",
			wantErr: config.ErrEmptyNodeShape,
		},
		{
			name:    "blank output dir",
			content: "output:\n  dir: \"\"\n",
			wantErr: config.ErrEmptyOutputDir,
		},
		{
			name:    "blank image format",
			content: "output:\n  image_format: \" \"\n",
			wantErr: config.ErrEmptyImageFormat,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tmpFile, err := os.CreateTemp(t.TempDir(), "obst-*.yaml")
			require.NoError(t, err)

			_, writeErr := tmpFile.WriteString(tc.content)
			require.NoError(t, writeErr)

			tmpFile.Close()

			_, loadErr := config.Load(tmpFile.Name())
			require.ErrorIs(t, loadErr, tc.wantErr)
		})
	}
}

// TestLoad_EnvOverride checks that OBST_* environment variables take
// precedence over defaults.
func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("OBST_STYLE_NODE_SHAPE", "box")
	t.Setenv("OBST_OUTPUT_IMAGE_FORMAT", "svg")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "box", cfg.Style.NodeShape)
	assert.Equal(t, "svg", cfg.Output.ImageFormat)
}
