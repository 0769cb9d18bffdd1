package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/obst/obst"
	"github.com/katalvlaran/obst/render"
)

// AnalyzeCommand holds flags for the analyze command.
type AnalyzeCommand struct {
	input inputFlags
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	ac := &AnalyzeCommand{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report height, node counts and average depth of the optimal tree",
		Args:  cobra.NoArgs,
		RunE:  ac.run,
	}

	ac.input.register(cmd)

	return cmd
}

func (ac *AnalyzeCommand) run(cmd *cobra.Command, _ []string) error {
	set, err := ac.input.keySet()
	if err != nil {
		return err
	}

	t, buildErr := obst.BuildSet(set)
	if buildErr != nil {
		return buildErr
	}

	fmt.Fprint(cmd.OutOrStdout(), render.StatsString(t.Analyze()))

	return nil
}
