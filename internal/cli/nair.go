package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectro/spectro/convert"
)

// NAirOptions holds flags for the nair command.
type NAirOptions struct {
	*RootOptions
	From, To, Step float64
}

// NewNAirCommand creates the nair command.
func NewNAirCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NAirOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "nair",
		Short: "Print the refractive index of air and photon energies",
		Long: `Print the refractive index of standard air and the matching photon energy
for a range of wavelengths (185 nm to 1700 nm is the valid range).

Example:
  specjoin nair --from 300 --to 900 --step 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNAir(cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.From, "from", 200, "first wavelength in nm")
	cmd.Flags().Float64Var(&opts.To, "to", 1600, "last wavelength in nm")
	cmd.Flags().Float64Var(&opts.Step, "step", 100, "wavelength step in nm")

	return cmd
}

func runNAir(cmd *cobra.Command, opts *NAirOptions) error {
	if opts.Step <= 0 {
		return fmt.Errorf("step must be > 0, got %g", opts.Step)
	}
	if opts.To < opts.From {
		return fmt.Errorf("empty range [%g, %g]", opts.From, opts.To)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Wavelength (nm)\tn_air\tEnergy (eV)")
	fmt.Fprintln(w, "---------------\t-----\t-----------")
	for i := 0; ; i++ {
		nm := opts.From + float64(i)*opts.Step
		if nm > opts.To+opts.Step*1e-9 {
			break
		}
		fmt.Fprintf(w, "%.1f\t%.7f\t%.5f\n", nm, convert.NAir(nm), convert.WavelengthToEnergy(nm))
	}
	return w.Flush()
}
