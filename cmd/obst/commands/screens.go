package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/obst/render"
	"github.com/katalvlaran/obst/viz"
)

// screen shows a body under a banner and waits for the user to back out.
func (s *Shell) screen(title, body string) error {
	s.clear()
	s.header(title)
	fmt.Fprintln(s.out, strings.TrimRight(body, "\n"))

	prompt := "\n" + s.styles.Muted.Render("Press [0] to back to main menu") + "\n"

	_, err := s.readChoice(0, prompt)

	return err
}

// displayTree shows the tree sideways, root at the left.
func (s *Shell) displayTree() error {
	if s.t.IsEmpty() {
		return s.alert("The tree is empty! Please create a tree first.")
	}

	return s.screen("Displaying Tree", render.SidewaysString(s.t))
}

// displayEnteredData lists labels with their hit and miss weights.
func (s *Shell) displayEnteredData() error {
	if s.set.Len() == 0 {
		return s.alert("No data entered yet! Please create a tree first.")
	}

	return s.screen("Display Entered Data", render.KeySetTable(s.set))
}

// displayDerivedTables prints the E, W and Root tables of the last build.
func (s *Shell) displayDerivedTables() error {
	if s.set.Len() == 0 {
		return s.alert("No data entered yet! Please create a tree first.")
	}

	return s.screen("Display Derived Tables", render.TablesString(s.tb))
}

// analyzeTree reports height, node counts and average depth.
func (s *Shell) analyzeTree() error {
	if s.t.IsEmpty() {
		return s.alert("The tree is empty! Please create a tree first.")
	}

	return s.screen("Tree Analysis", render.StatsString(s.t.Analyze()))
}

// visualizeTree exports the tree through Graphviz and opens the image.
func (s *Shell) visualizeTree(ctx context.Context) error {
	s.clear()

	if s.t.IsEmpty() {
		return s.alert("The tree is empty! Please create a tree first.")
	}

	fmt.Fprintln(s.out, "Visualizing the tree...")

	dotPath := filepath.Join(s.cfg.Output.Dir, s.cfg.Output.DOTFile)
	imagePath := filepath.Join(s.cfg.Output.Dir, s.cfg.Output.ImageFile)

	visErr := viz.Visualize(ctx, s.t, s.cfg.Style, dotPath, imagePath, withFormat(s.renderer, s.cfg.Output.ImageFormat))
	if visErr != nil {
		return s.alert(fmt.Sprintf("Visualization failed: %v", visErr))
	}

	openErr := s.opener.Open(imagePath)
	if openErr != nil {
		return s.alert(fmt.Sprintf("Could not open the image: %v", openErr))
	}

	return s.notice("Image written to " + imagePath)
}

// withFormat applies the configured image format to a Graphviz renderer.
// Injected renderers pass through untouched.
func withFormat(r viz.Renderer, format string) viz.Renderer {
	if gr, ok := r.(viz.GraphvizRenderer); ok {
		gr.Format = format

		return gr
	}

	return r
}
