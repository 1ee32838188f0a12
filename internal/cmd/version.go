package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dendrascience/setupver/version"
)

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return version.Fprint(cmd.OutOrStdout(), appName)
		},
	}
}
