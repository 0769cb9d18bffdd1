package viz

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/katalvlaran/obst/tree"
)

// Renderer turns a DOT file into an image file. Implementations own the
// choice of tool and format; the context bounds the external process.
type Renderer interface {
	Render(ctx context.Context, dotPath, imagePath string) error
}

// GraphvizRenderer renders through the dot executable, which must be on
// PATH. Format selects the -T output type and defaults to png.
type GraphvizRenderer struct {
	Format string
}

// Render runs dot -T<format> dotPath -o imagePath under ctx.
func (r GraphvizRenderer) Render(ctx context.Context, dotPath, imagePath string) error {
	format := r.Format
	if format == "" {
		format = "png"
	}
	cmd := exec.CommandContext(ctx, "dot", "-T"+format, dotPath, "-o", imagePath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("viz: dot -T%s failed: %w: %s", format, err, bytes.TrimSpace(out))
	}

	return nil
}

// Opener shows a rendered file to the user.
type Opener interface {
	Open(path string) error
}

// SystemOpener launches the platform's default viewer: open on macOS,
// start on Windows, xdg-open elsewhere.
type SystemOpener struct{}

// Open fires the viewer and does not wait for it to exit.
func (SystemOpener) Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("viz: open %s: %w", path, err)
	}

	return nil
}

// Visualize writes the DOT file for t and, when renderer is non-nil,
// renders it to imagePath. A nil renderer means DOT-only export, the
// path frontends take for --dot-only.
func Visualize(ctx context.Context, t *tree.Tree, style Style, dotPath, imagePath string, renderer Renderer) error {
	if t == nil {
		return ErrNilTree
	}
	f, err := os.Create(dotPath)
	if err != nil {
		return fmt.Errorf("viz: create %s: %w", dotPath, err)
	}
	if err = WriteDOT(f, t, style); err != nil {
		_ = f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("viz: close %s: %w", dotPath, err)
	}
	if renderer == nil {
		return nil
	}

	return renderer.Render(ctx, dotPath, imagePath)
}
