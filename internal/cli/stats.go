package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectro/internal/specio"
	"github.com/cwbudde/algo-spectro/spectro/stats"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>...",
		Short: "Print peak and shape descriptors of spectra",
		Long: `Print peak position, centroid, spread, 85% rolloff and FWHM for every row
of every given spectrum. Values are in the unit of the signal axis.

Example:
  specjoin stats joined.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "File\tRow\tUnit\tPeak\tMax\tCentroid\tSpread\tRolloff\tFWHM\tIntegral")
			for _, path := range args {
				s, err := specio.ReadFile(path)
				if err != nil {
					return err
				}
				rootOpts.Logger.Debug("computing stats", "file", path, "rows", s.Rows())
				unit := s.Axis().Unit()
				for i, st := range stats.ForSpectrum(s) {
					fmt.Fprintf(w, "%s\t%d\t%s\t%.4f\t%.4g\t%.4f\t%.4f\t%.4f\t%.4f\t%.6g\n",
						path, i, unit, st.Peak, st.Max, st.Centroid, st.Spread, st.Rolloff, st.FWHM, st.Integral)
				}
			}
			return w.Flush()
		},
	}
}
