package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/obst/cmd/obst/config"
	"github.com/katalvlaran/obst/keyset"
	"github.com/katalvlaran/obst/obst"
	"github.com/katalvlaran/obst/tree"
	"github.com/katalvlaran/obst/viz"
)

// ShellCommand holds flags and dependencies for the interactive shell.
type ShellCommand struct {
	input      inputFlags
	configPath string

	loadConfig configLoader
	renderer   viz.Renderer
	opener     viz.Opener
}

// NewShellCommand creates the interactive shell command.
func NewShellCommand() *cobra.Command {
	return newShellCommandWithDeps(config.Load, viz.GraphvizRenderer{}, viz.SystemOpener{})
}

func newShellCommandWithDeps(loadConfig configLoader, renderer viz.Renderer, opener viz.Opener) *cobra.Command {
	shc := &ShellCommand{
		loadConfig: loadConfig,
		renderer:   renderer,
		opener:     opener,
	}

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu for building and exploring a tree",
		Long: "Walk the menus of the interactive shell: enter labels and weights,\n" +
			"edit them node by node, and inspect the optimal tree, its tables and\n" +
			"statistics between edits. Start empty or preload a dataset with --file.",
		Args: cobra.NoArgs,
		RunE: shc.run,
	}

	shc.input.register(cmd)
	cmd.Flags().StringVar(&shc.configPath, "config", "", "Config file (default obst.yaml in the working directory)")

	return cmd
}

func (shc *ShellCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := shc.loadConfig(shc.configPath)
	if err != nil {
		return err
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	set := keyset.New()
	useQ := false

	if shc.input.hasAny() {
		set, err = shc.input.keySet()
		if err != nil {
			return err
		}

		useQ = set.UsesMissWeights()
	}

	sh := &Shell{
		in:       bufio.NewReader(cmd.InOrStdin()),
		out:      cmd.OutOrStdout(),
		styles:   newShellStyles(color.NoColor),
		cfg:      cfg,
		renderer: shc.renderer,
		opener:   shc.opener,
		set:      set,
		useQ:     useQ,
	}

	rebuildErr := sh.rebuild()
	if rebuildErr != nil {
		return rebuildErr
	}

	loopErr := sh.loop(cmd.Context())
	if loopErr != nil && !errors.Is(loopErr, io.EOF) {
		return loopErr
	}

	return nil
}

// shellStyles carries the lipgloss styles for the interactive screens.
type shellStyles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Alert   lipgloss.Style
	Muted   lipgloss.Style
}

// newShellStyles builds the shell palette, or pass-through styles when
// color is disabled.
func newShellStyles(noColor bool) shellStyles {
	if noColor {
		plain := lipgloss.NewStyle()

		return shellStyles{Title: plain, Success: plain, Alert: plain, Muted: plain}
	}

	return shellStyles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Alert:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Shell drives the interactive menus over a reader/writer pair. The key
// set is the single source of truth; tree and tables are rebuilt from it
// after every edit.
type Shell struct {
	in       *bufio.Reader
	out      io.Writer
	styles   shellStyles
	cfg      *config.Config
	renderer viz.Renderer
	opener   viz.Opener

	set  *keyset.KeySet
	t    *tree.Tree
	tb   *obst.Tables
	useQ bool
}

// rebuild recomputes the optimal tree and tables from the key set.
func (s *Shell) rebuild() error {
	t, tb, err := obst.Solve(s.set.Labels(), s.set.P(), s.set.Q())
	if err != nil {
		return err
	}

	s.t, s.tb = t, tb

	slog.Debug("rebuilt", "keys", s.set.Len(), "cost", tb.Cost())

	return nil
}

// loop runs the main menu until the user exits or input ends.
func (s *Shell) loop(ctx context.Context) error {
	for {
		s.clear()
		s.header("Optimal Binary Search Tree")
		fmt.Fprintln(s.out, "1. Edit Tree")
		fmt.Fprintln(s.out, "2. Display Tree")
		fmt.Fprintln(s.out, "3. Display Entered Data")
		fmt.Fprintln(s.out, "4. Display Derived Tables")
		fmt.Fprintln(s.out, "5. Analyze Tree")
		fmt.Fprintln(s.out, "6. Visualize Tree")
		fmt.Fprintln(s.out, "0. Exit")

		choice, err := s.readChoice(6, "\nEnter your choice: ")
		if err != nil {
			return err
		}

		var screenErr error

		switch choice {
		case 1:
			screenErr = s.editTree()
		case 2:
			screenErr = s.displayTree()
		case 3:
			screenErr = s.displayEnteredData()
		case 4:
			screenErr = s.displayDerivedTables()
		case 5:
			screenErr = s.analyzeTree()
		case 6:
			screenErr = s.visualizeTree(ctx)
		case 0:
			fmt.Fprintln(s.out, "Goodbye!")

			return nil
		}

		if screenErr != nil {
			return screenErr
		}
	}
}

// clear resets the terminal between screens.
func (s *Shell) clear() {
	fmt.Fprint(s.out, "\x1b[2J\x1b[H")
}

// header prints a screen title in the original banner shape.
func (s *Shell) header(title string) {
	fmt.Fprintf(s.out, "\n%s\n", s.styles.Title.Render("===== "+title+" ====="))
}

// alert shows a blocking warning, then waits for Enter.
func (s *Shell) alert(msg string) error {
	fmt.Fprintf(s.out, "\n%s\n", s.styles.Alert.Render(msg))

	return s.pause()
}

// notice shows a blocking success message, then waits for Enter.
func (s *Shell) notice(msg string) error {
	fmt.Fprintf(s.out, "\n%s\n", s.styles.Success.Render(msg))

	return s.pause()
}

// pause blocks until the user presses Enter. Input ending here is not an
// error; the caller's next read reports it.
func (s *Shell) pause() error {
	_, err := s.readLine("\nPress [Enter] to continue...")
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// readLine prints a prompt and returns the next input line, trimmed.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)

	line, err := s.in.ReadString('\n')

	line = strings.TrimSpace(line)
	if line == "" && err != nil {
		return "", err
	}

	return line, nil
}

// readChoice re-prompts until it parses an integer in [0, max].
func (s *Shell) readChoice(max int, prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}

		n, parseErr := strconv.Atoi(line)
		if parseErr != nil || n < 0 || n > max {
			fmt.Fprintln(s.out, s.styles.Alert.Render("Invalid choice."))

			continue
		}

		return n, nil
	}
}

// readLabel re-prompts until it gets a non-empty label for which taken
// returns false. A nil taken accepts any non-empty input.
func (s *Shell) readLabel(prompt string, taken func(string) bool) (string, error) {
	for {
		label, err := s.readLine(prompt)
		if err != nil {
			return "", err
		}

		if label == "" {
			fmt.Fprint(s.out, "Invalid input!! ")

			continue
		}

		if taken != nil && taken(label) {
			fmt.Fprint(s.out, "Invalid input; please enter a non-duplicated label: ")

			continue
		}

		return label, nil
	}
}

// readFloat re-prompts until it parses a finite float that is positive,
// or merely non-negative when zeroOK.
func (s *Shell) readFloat(prompt string, zeroOK bool) (float64, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}

		v, parseErr := strconv.ParseFloat(line, 64)
		if parseErr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fmt.Fprint(s.out, "Invalid input!! ")

			continue
		}

		if v > 0 || (zeroOK && v == 0) {
			return v, nil
		}

		fmt.Fprint(s.out, "Invalid input; please enter a positive number: ")
	}
}

// readCount re-prompts until it parses a positive integer.
func (s *Shell) readCount(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}

		n, parseErr := strconv.Atoi(line)
		if parseErr != nil || n < 1 {
			fmt.Fprint(s.out, "Invalid input; please enter a positive number: ")

			continue
		}

		return n, nil
	}
}

// joinFloats formats values with %g, space separated, the way the entered
// data summary lists them.
func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strings.Join(parts, " ")
}
