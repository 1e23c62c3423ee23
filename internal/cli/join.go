package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectro/internal/specio"
	"github.com/cwbudde/algo-spectro/internal/specplot"
	"github.com/cwbudde/algo-spectro/spectro/convert"
	"github.com/cwbudde/algo-spectro/spectro/join"
	"github.com/cwbudde/algo-spectro/spectro/spectrum"
)

// JoinOptions holds flags for the join command.
type JoinOptions struct {
	*RootOptions
	Output string
	Plot   string
}

// NewJoinCommand creates the join command.
func NewJoinCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &JoinOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "join <file> <file>...",
		Short: "Stitch overlapping spectra",
		Long: `Stitch spectra with overlapping signal ranges into one spectrum.

Files must be given in order of ascending wavelength. Each following spectrum
is rescaled to match the previous one around the middle of the overlap.

Example:
  specjoin join -o joined.csv blue.csv red.csv
  specjoin join -r 20 --average --kind cubic -o joined.fits a.fits b.fits c.fits
  specjoin join --to-energy --plot joined.png -o joined.csv a.csv b.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJoin(cmd, opts, args)
		},
	}

	def := DefaultConfig()
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (.csv or .fits)")
	cmd.Flags().StringVar(&opts.Plot, "plot", "", "write a plot of inputs and result (.png, .svg, .pdf)")
	cmd.Flags().IntP("half-window", "r", def.HalfWindow, "half width of the scaling window in samples")
	cmd.Flags().Bool("average", def.Average, "blend the overlap instead of cutting at its center")
	cmd.Flags().String("kind", def.Kind, "interpolation kind for uniform axes")
	cmd.Flags().Bool("to-energy", def.ToEnergy, "convert the joined spectrum to energy")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runJoin(cmd *cobra.Command, opts *JoinOptions, files []string) error {
	log := opts.Logger
	cfg, err := loadConfig(opts.ConfigPath, cmd.Flags())
	if err != nil {
		return err
	}
	joinOpts, err := cfg.JoinOptions()
	if err != nil {
		return err
	}
	joinOpts = append(joinOpts, join.WithLogger(log))

	inputs := make([]*spectrum.Spectrum, len(files))
	for i, path := range files {
		s, err := specio.ReadFile(path)
		if err != nil {
			return err
		}
		log.Info("loaded spectrum", "file", path, "samples", s.Axis().Len(), "rows", s.Rows())
		inputs[i] = s
	}

	out, report, err := join.JoinWithReport(inputs, joinOpts...)
	if err != nil {
		return err
	}
	for i, seam := range report.Seams {
		log.Info("seam", "index", i+1, "center", seam.Center, "factors", seam.Factors)
	}

	if cfg.ToEnergy {
		if out, err = convert.SpectrumToEnergy(out); err != nil {
			return err
		}
	}
	if err := specio.WriteFile(opts.Output, out); err != nil {
		return err
	}
	log.Info("wrote spectrum", "file", opts.Output, "samples", out.Axis().Len())

	if opts.Plot != "" {
		series := make([]specplot.Series, 0, len(inputs)+1)
		if !cfg.ToEnergy {
			for i, s := range inputs {
				series = append(series, specplot.Series{Label: label(s, files[i]), Spectrum: s})
			}
		}
		series = append(series, specplot.Series{Label: "joined", Spectrum: out, Width: 1.5})
		if err := specplot.Save(opts.Plot, filepath.Base(opts.Output), series...); err != nil {
			return err
		}
		log.Info("wrote plot", "file", opts.Plot)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d spectra, %d samples [%g, %g] %s\n",
		opts.Output, len(inputs), out.Axis().Len(),
		out.Axis().At(0), out.Axis().At(out.Axis().Len()-1), out.Axis().Unit())
	return nil
}

func label(s *spectrum.Spectrum, path string) string {
	if title := s.Metadata()[specio.TitleKey]; title != "" {
		return title
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
