package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/dendrascience/setupver/internal/config"
	"github.com/dendrascience/setupver/internal/log"
	"github.com/dendrascience/setupver/version"
)

const appName = "setupver"

// rootOptions is shared by every subcommand. The logger is replaced once
// persistent flags are parsed.
type rootOptions struct {
	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd creates and returns the root cobra command for the setupver CLI.
// Environment defaults are read once, when the command is created.
func NewRootCmd() *cobra.Command {
	cfg, cfgErr := config.Load()

	opts := &rootOptions{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "setupver - read and rewrite the version line of setup.py files",
		Long: `setupver reads and rewrites the version declared in a setup.py file.

A version line starts with exactly four spaces followed by "version=", as in

    version='0.1.11',

Use subcommands to perform different operations:
  - read: print the current version
  - write: replace the version on every version line
  - version: print build information`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("log-level", cfg.LogLevel, "Set the log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", cfg.LogFormat, "Set the log format (text, logfmt, json)")

	rootCmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		if cfgErr != nil {
			return cfgErr
		}

		logLevel, _ := cc.Flags().GetString("log-level")
		logFormat, _ := cc.Flags().GetString("log-format")

		// Report every bad flag, not just the first.
		var merr error

		level, err := log.GetLevel(logLevel)
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		formatter, err := log.GetFormatter(logFormat)
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("invalid logging flags: %w", merr)
		}

		logger := log.NewWithOptions(cc.ErrOrStderr(), level, formatter)
		opts.logger = slog.New(logger)

		return nil
	}

	groupFiles := "files"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFiles,
		Title: "Version File Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	readCmd := newReadCmd(opts)
	writeCmd := newWriteCmd(opts)
	versionCmd := NewVersionCmd()

	readCmd.GroupID = groupFiles
	writeCmd.GroupID = groupFiles
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
