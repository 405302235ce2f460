// Package commands implements the bowerbird CLI commands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/pbohannon/bowerbird"
	"github.com/pbohannon/bowerbird/internal/output"
)

// NewRootCmd creates the root bowerbird command.
func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "bowerbird",
		Short: "Scaffold full-stack monorepos from a feature configuration",
		Long: `Bowerbird generates full-stack monorepos: a FastAPI backend, a React,
Vue, or Svelte frontend, shared TypeScript types, and the docker, CI, and
editor configuration to go with them. Every part of the tree is driven by
feature toggles, so the generated project contains exactly what you asked
for and nothing else.`,
		Version:       bowerbird.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	cmd.AddCommand(NewNewCmd())

	return cmd
}
