package join

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/spectro/axis"
	"github.com/cwbudde/algo-spectro/spectro/spectrum"
)

// Seam describes one merge step.
type Seam struct {
	// Center is the middle of the overlap region.
	Center float64
	// Ind1 and Ind2 are the seam indices in the accumulated and next spectrum.
	Ind1, Ind2 int
	// Factors holds one scaling factor per navigation row; NaN where the
	// window of the next spectrum held only zeros.
	Factors []float64
}

// Report lists the seams of a join in fold order.
type Report struct {
	Seams []Seam
}

// Join merges spectra, ordered by ascending signal range, into one spectrum.
//
// Every adjacent pair is checked for overlap before any merging starts. The
// result carries the metadata and navigation shape of spectra[0]; inputs are
// never modified.
func Join(spectra []*spectrum.Spectrum, opts ...Option) (*spectrum.Spectrum, error) {
	out, _, err := JoinWithReport(spectra, opts...)
	return out, err
}

// JoinWithReport is like [Join] and also returns per-seam diagnostics.
func JoinWithReport(spectra []*spectrum.Spectrum, opts ...Option) (*spectrum.Spectrum, *Report, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	if err := validate(spectra); err != nil {
		return nil, nil, err
	}

	acc := spectra[0].Clone()
	report := &Report{}
	for i := 1; i < len(spectra); i++ {
		next, seam, err := merge(acc, spectra[i], cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("joining spectrum %d: %w", i, err)
		}
		cfg.logger.Debug("joined spectrum",
			"index", i,
			"center", seam.Center,
			"ind1", seam.Ind1,
			"ind2", seam.Ind2,
			"factors", seam.Factors,
			"size", next.Axis().Len(),
		)
		report.Seams = append(report.Seams, seam)
		acc = next
	}
	return acc, report, nil
}

func validate(spectra []*spectrum.Spectrum) error {
	if len(spectra) == 0 {
		return ErrNoSpectra
	}
	for i, s := range spectra {
		if s == nil {
			return fmt.Errorf("%w: spectrum %d is nil", ErrNoSpectra, i)
		}
	}
	for i := 1; i < len(spectra); i++ {
		prev, next := spectra[i-1].Axis(), spectra[i].Axis()
		if axis.High(prev) < axis.Low(next) {
			return fmt.Errorf("%w: spectrum %d ends at %v, spectrum %d starts at %v",
				ErrOverlap, i-1, axis.High(prev), i, axis.Low(next))
		}
		if !spectra[0].SameNavigation(spectra[i]) {
			return fmt.Errorf("%w: spectrum %d has navigation %v, want %v",
				ErrShape, i, spectra[i].Navigation(), spectra[0].Navigation())
		}
	}
	return nil
}
