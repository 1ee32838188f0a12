package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dendrascience/setupver/updater"
)

// ErrMissingVersion is returned by write when neither an argument nor
// $SETUPVER_VERSION supplies the new version.
var ErrMissingVersion = errors.New("no version given")

// newWriteCmd creates the write subcommand, which replaces the declared version.
func newWriteCmd(opts *rootOptions) *cobra.Command {
	var (
		dryRun bool
		check  bool
	)

	cmd := &cobra.Command{
		Use:   "write [VERSION] [FILE]",
		Short: "Rewrite the version line of a setup.py file",
		Long: `Replace every version line of FILE with "    version='VERSION',".

VERSION defaults to $SETUPVER_VERSION and FILE to $SETUPVER_FILE, or setup.py
when unset. Use "-" as FILE to read standard input and write the result to
standard output. Other lines are left untouched.

A file without a version line is left as is unless --check is given, in which
case the command fails. The file is replaced atomically and only when its
contents change.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := opts.cfg.Version
			path := opts.cfg.File
			if len(args) > 0 {
				v = args[0]
			}
			if len(args) > 1 {
				path = args[1]
			}
			if v == "" {
				return ErrMissingVersion
			}

			return runWrite(cmd, opts, path, v, dryRun, check)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the updated contents instead of writing FILE")
	cmd.Flags().BoolVar(&check, "check", false, "Fail when FILE has no version line")

	return cmd
}

func runWrite(cmd *cobra.Command, opts *rootOptions, path, v string, dryRun, check bool) error {
	contents, err := readContents(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	old, err := updater.ReadVersion(contents)
	if err != nil {
		if check {
			return fmt.Errorf("%s: %w", path, err)
		}
		opts.logger.Warn("no version line found", "file", path)
	}

	updated := updater.WriteVersion(contents, v)

	if dryRun || path == stdinPath {
		_, err := io.WriteString(cmd.OutOrStdout(), updated)
		return err
	}

	if updated == contents {
		opts.logger.Info("version unchanged", "file", path, "version", old)
		return nil
	}

	if err := writeFileAtomic(path, []byte(updated)); err != nil {
		return err
	}
	opts.logger.Info("updated version", "file", path, "from", old, "to", v)

	return nil
}
