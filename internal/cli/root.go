// Package cli implements the specjoin command line.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// Version is the build version. Typically injected via ldflags.
var Version = "dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string

	// Logger is configured before any subcommand runs.
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the specjoin CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "specjoin",
		Short: "Stitch and convert optical spectra",
		Long: `specjoin stitches spectra recorded over overlapping wavelength ranges into
one continuous spectrum and converts wavelength spectra to photon energy with
the Jacobian intensity correction.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ./"+ConfigFileName+" if present)")

	cmd.AddCommand(NewJoinCommand(opts))
	cmd.AddCommand(NewEnergyCommand(opts))
	cmd.AddCommand(NewNAirCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
