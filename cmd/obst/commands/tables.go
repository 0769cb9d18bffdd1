package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/obst/obst"
	"github.com/katalvlaran/obst/render"
)

// TablesCommand holds flags for the tables command.
type TablesCommand struct {
	input inputFlags
}

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	tc := &TablesCommand{}

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the cost, weight and root tables of the dynamic program",
		Long: "Print the three tables the optimizer derives: expected costs E[i][j],\n" +
			"accumulated weights W[i][j] and optimal root indices Root[i][j].",
		Args: cobra.NoArgs,
		RunE: tc.run,
	}

	tc.input.register(cmd)

	return cmd
}

func (tc *TablesCommand) run(cmd *cobra.Command, _ []string) error {
	set, err := tc.input.keySet()
	if err != nil {
		return err
	}

	tb, computeErr := obst.ComputeTables(set.P(), set.Q())
	if computeErr != nil {
		return computeErr
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.TablesString(tb))

	return nil
}
