// Package main provides the entry point for the obst CLI tool.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/obst/cmd/obst/commands"
)

var (
	verbose bool
	noColor bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "obst",
		Short: "Optimal binary search trees from weighted key sets",
		Long: `obst builds the binary search tree that minimizes expected lookup cost
for keys with known hit weights and optional miss weights.

Commands:
  solve      Build the optimal tree and print its cost and shape
  analyze    Report height, node counts and average depth
  tables     Print the E, W and Root tables of the dynamic program
  visualize  Export the tree as Graphviz DOT and render an image
  shell      Interactive menu for building and exploring a tree`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if noColor {
				color.NoColor = true
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add commands.
	rootCmd.AddCommand(
		commands.NewSolveCommand(),
		commands.NewAnalyzeCommand(),
		commands.NewTablesCommand(),
		commands.NewVisualizeCommand(),
		commands.NewShellCommand(),
		versionCmd(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "obst %s\n", versioninfo.Short())
		},
	}
}
