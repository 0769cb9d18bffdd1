package commands

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/obst/obst"
	"github.com/katalvlaran/obst/render"
)

// SolveCommand holds flags for the solve command.
type SolveCommand struct {
	input  inputFlags
	tables bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	sc := &SolveCommand{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build the optimal tree and print its cost and shape",
		Long: "Build the optimal binary search tree for the given labels and weights,\n" +
			"then print the expected search cost and the tree sideways (root at the\n" +
			"left, right subtree above, left subtree below).",
		Args: cobra.NoArgs,
		RunE: sc.run,
	}

	sc.input.register(cmd)
	cmd.Flags().BoolVar(&sc.tables, "tables", false, "Also print the E, W and Root tables")

	return cmd
}

func (sc *SolveCommand) run(cmd *cobra.Command, _ []string) error {
	set, err := sc.input.keySet()
	if err != nil {
		return err
	}

	slog.Debug("solving", "keys", set.Len(), "miss_weights", set.UsesMissWeights())

	t, tb, solveErr := obst.Solve(set.Labels(), set.P(), set.Q())
	if solveErr != nil {
		return solveErr
	}

	out := cmd.OutOrStdout()

	color.New(color.FgGreen, color.Bold).Fprintf(out, "Optimal cost: %g\n", tb.Cost())
	fmt.Fprintf(out, "Total weight: %g\n\n", tb.Weight())
	fmt.Fprint(out, render.SidewaysString(t))

	if sc.tables {
		fmt.Fprintf(out, "\n%s\n", render.TablesString(tb))
	}

	return nil
}
