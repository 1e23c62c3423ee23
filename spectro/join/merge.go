package join

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectro/spectro/axis"
	"github.com/cwbudde/algo-spectro/spectro/spectrum"
)

// merge joins b onto the accumulator a and returns a new spectrum.
func merge(a, b *spectrum.Spectrum, cfg config) (*spectrum.Spectrum, Seam, error) {
	ax1, ax2 := a.Axis(), b.Axis()
	r := cfg.r

	center := (axis.High(ax1) + axis.Low(ax2)) / 2
	seam := Seam{Center: center}

	ind1, err := ax1.ValueToIndex(center)
	if err != nil {
		return nil, seam, fmt.Errorf("%w: overlap center: %w", ErrOverlap, err)
	}
	ind2, err := ax2.ValueToIndex(center)
	if err != nil {
		return nil, seam, fmt.Errorf("%w: overlap center: %w", ErrOverlap, err)
	}
	// Keep the seam samples in physical order.
	if ax1.At(ind1) > ax2.At(ind2) {
		ind2++
	}
	seam.Ind1, seam.Ind2 = ind1, ind2

	if avail := ax1.Len() - 1 - ind1; avail <= r {
		return nil, seam, fmt.Errorf("%w: r = %d, %d samples right of the seam", ErrRange, r, avail)
	}
	if ind1-r < 0 || ind2-r < 0 || ind2+r > ax2.Len() {
		return nil, seam, fmt.Errorf("%w: r = %d, seam at %d/%d of %d/%d samples",
			ErrRange, r, ind1, ind2, ax1.Len(), ax2.Len())
	}

	factors, err := ScalingFactors(a, b, ind1, ind2, r)
	if err != nil {
		return nil, seam, err
	}
	seam.Factors = factors

	bdata := b.Data()
	if r > 0 {
		n := ax2.Len()
		for row, f := range factors {
			vecmath.ScaleBlockInPlace(bdata[row*n:(row+1)*n], f)
		}
	}

	var (
		out    axis.Axis
		merged []float64
	)
	switch u := ax1.(type) {
	case *axis.Uniform:
		out, merged, err = mergeUniform(a, u, ax2, bdata, ind1, ind2, cfg)
	default:
		// NonUniform and Functional axes are concatenated sample by sample.
		out, merged, err = mergeNonUniform(a, ax2, bdata, ind1, ind2, cfg)
	}
	if err != nil {
		return nil, seam, err
	}
	s, err := a.With(out, merged)
	return s, seam, err
}

// mergeUniform interpolates the scaled data of the next spectrum onto the
// grid of u, extended to the end of ax2.
func mergeUniform(a *spectrum.Spectrum, u *axis.Uniform, ax2 axis.Axis, bdata []float64, ind1, ind2 int, cfg config) (axis.Axis, []float64, error) {
	r := cfg.r
	average := cfg.average && r > 0
	bx := ax2.Values()
	nb := len(bx)

	tail := math.Floor((bx[nb-1] - u.At(ind1)) / u.Scale())
	size := ind1 + int(tail)
	if size < ind1+max(r, 1) {
		return nil, nil, fmt.Errorf("%w: merged axis of %d samples ends inside the seam window", ErrRange, size)
	}
	out, err := u.Resize(size)
	if err != nil {
		return nil, nil, err
	}
	t := out.Values()

	// Output samples from cut onwards come from the interpolant, which is
	// fitted on the next spectrum from sample from onwards.
	cut, from := ind1+1, ind2
	if average {
		cut = ind1 - r + 1
		from, err = ax2.ValueToIndex(u.At(ind1 - r))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: averaging window: %w", ErrRange, err)
		}
	}

	rows := a.Rows()
	merged := make([]float64, 0, rows*size)
	for row := 0; row < rows; row++ {
		arow := a.Row(row)
		brow := bdata[row*nb : (row+1)*nb]
		vals, err := cfg.interpolator.Interpolate(bx[from:], brow[from:], t[cut:])
		if err != nil {
			return nil, nil, fmt.Errorf("join: interpolating spectrum: %w", err)
		}
		merged = append(merged, arow[:cut]...)
		if average {
			band := 2*r - 1
			vecmath.AddBlockInPlace(vals[:band], arow[cut:cut+band])
			vecmath.ScaleBlockInPlace(vals[:band], 0.5)
		}
		merged = append(merged, vals...)
	}
	return out, merged, nil
}

// mergeNonUniform concatenates both spectra at the seam indices without
// interpolation.
func mergeNonUniform(a *spectrum.Spectrum, ax2 axis.Axis, bdata []float64, ind1, ind2 int, cfg config) (axis.Axis, []float64, error) {
	r := cfg.r
	out, err := axis.Concat(a.Axis().Materialize(), ind1, ax2.Materialize(), ind2)
	if err != nil {
		return nil, nil, fmt.Errorf("join: concatenating axes: %w", err)
	}

	nb := ax2.Len()
	rows := a.Rows()
	merged := make([]float64, 0, rows*out.Len())
	for row := 0; row < rows; row++ {
		arow := a.Row(row)
		brow := bdata[row*nb : (row+1)*nb]
		if !cfg.average || r == 0 {
			merged = append(merged, arow[:ind1]...)
			merged = append(merged, brow[ind2:]...)
			continue
		}
		band := make([]float64, 2*r)
		vecmath.AddBlock(band, arow[ind1-r:ind1+r], brow[ind2-r:ind2+r])
		vecmath.ScaleBlockInPlace(band, 0.5)
		merged = append(merged, arow[:ind1-r]...)
		merged = append(merged, band...)
		merged = append(merged, brow[ind2+r:]...)
	}
	return out, merged, nil
}
