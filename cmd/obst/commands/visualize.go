package commands

import (
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/obst/cmd/obst/config"
	"github.com/katalvlaran/obst/obst"
	"github.com/katalvlaran/obst/viz"
)

// configLoader resolves a config path into a loaded configuration.
type configLoader func(path string) (*config.Config, error)

// VisualizeCommand holds flags and dependencies for the visualize command.
type VisualizeCommand struct {
	input      inputFlags
	configPath string
	dotOnly    bool
	open       bool

	loadConfig configLoader
	renderer   viz.Renderer
	opener     viz.Opener
}

// NewVisualizeCommand creates the visualize command.
func NewVisualizeCommand() *cobra.Command {
	return newVisualizeCommandWithDeps(config.Load, viz.GraphvizRenderer{}, viz.SystemOpener{})
}

func newVisualizeCommandWithDeps(loadConfig configLoader, renderer viz.Renderer, opener viz.Opener) *cobra.Command {
	vc := &VisualizeCommand{
		loadConfig: loadConfig,
		renderer:   renderer,
		opener:     opener,
	}

	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Export the optimal tree as Graphviz DOT and render an image",
		Long: "Build the optimal tree, write it as a Graphviz DOT file and render an\n" +
			"image through the dot executable. Styling and output paths come from\n" +
			"the config file and OBST_* environment variables.",
		Args: cobra.NoArgs,
		RunE: vc.run,
	}

	vc.input.register(cmd)
	cmd.Flags().StringVar(&vc.configPath, "config", "", "Config file (default obst.yaml in the working directory)")
	cmd.Flags().BoolVar(&vc.dotOnly, "dot-only", false, "Write the DOT file without invoking Graphviz")
	cmd.Flags().BoolVar(&vc.open, "open", false, "Open the rendered image with the system viewer")

	return cmd
}

func (vc *VisualizeCommand) run(cmd *cobra.Command, _ []string) error {
	set, err := vc.input.keySet()
	if err != nil {
		return err
	}

	cfg, loadErr := vc.loadConfig(vc.configPath)
	if loadErr != nil {
		return loadErr
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	t, buildErr := obst.BuildSet(set)
	if buildErr != nil {
		return buildErr
	}

	dotPath := filepath.Join(cfg.Output.Dir, cfg.Output.DOTFile)
	imagePath := filepath.Join(cfg.Output.Dir, cfg.Output.ImageFile)

	var renderer viz.Renderer
	if !vc.dotOnly {
		renderer = withFormat(vc.renderer, cfg.Output.ImageFormat)
	}

	slog.Debug("visualizing", "dot", dotPath, "image", imagePath, "dot_only", vc.dotOnly)

	visErr := viz.Visualize(cmd.Context(), t, cfg.Style, dotPath, imagePath, renderer)
	if visErr != nil {
		return visErr
	}

	out := cmd.OutOrStdout()

	color.New(color.FgGreen).Fprintf(out, "DOT written to %s\n", dotPath)

	if vc.dotOnly {
		return nil
	}

	color.New(color.FgGreen).Fprintf(out, "Image written to %s\n", imagePath)

	if vc.open {
		return vc.opener.Open(imagePath)
	}

	return nil
}
