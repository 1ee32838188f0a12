package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dendrascience/setupver/updater"
)

// newReadCmd creates the read subcommand, which prints the declared version.
func newReadCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read [FILE]",
		Short: "Print the version declared in a setup.py file",
		Long: `Print the version declared by the first version line of FILE.

FILE defaults to $SETUPVER_FILE, or setup.py when unset. Use "-" to read
from standard input. The command fails when FILE has no version line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfg.File
			if len(args) == 1 {
				path = args[0]
			}

			contents, err := readContents(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			v, err := updater.ReadVersion(contents)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			opts.logger.Debug("read version", "file", path, "version", v)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}

	return cmd
}
