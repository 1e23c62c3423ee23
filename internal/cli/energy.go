package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectro/internal/specio"
	"github.com/cwbudde/algo-spectro/spectro/convert"
)

// EnergyOptions holds flags for the energy command.
type EnergyOptions struct {
	*RootOptions
	Output string
}

// NewEnergyCommand creates the energy command.
func NewEnergyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EnergyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "energy <file>",
		Short: "Convert a wavelength spectrum to photon energy",
		Long: `Convert a spectrum on a wavelength axis (nm or µm) to an energy axis in eV.

Intensities are multiplied by the Jacobian so that integrated counts are
preserved. Wavelengths are taken as measured in air.

Example:
  specjoin energy -o lamp-ev.csv lamp.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnergy(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (.csv or .fits)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runEnergy(cmd *cobra.Command, opts *EnergyOptions, path string) error {
	s, err := specio.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := convert.SpectrumToEnergy(s)
	if err != nil {
		return err
	}
	if err := specio.WriteFile(opts.Output, out); err != nil {
		return err
	}
	opts.Logger.Debug("converted spectrum", "from", path, "to", opts.Output)

	ax := out.Axis()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d samples [%.4f, %.4f] %s\n",
		opts.Output, ax.Len(), ax.At(0), ax.At(ax.Len()-1), ax.Unit())
	return nil
}
