// Package stats computes peak and shape descriptors of spectra.
//
// All descriptors are evaluated on the signal axis values, so they work for
// uniform and non-uniform axes alike and are reported in axis units.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-spectro/spectro/spectrum"
)

// DefaultRolloff is the area fraction used by [Calculate] for Stats.Rolloff.
const DefaultRolloff = 0.85

// Stats holds descriptors of one spectrum row.
type Stats struct {
	Samples  int
	Max      float64
	Peak     float64 // axis position of Max
	Min      float64
	MinAt    float64
	Sum      float64
	Integral float64 // trapezoidal area over the axis
	// Shape descriptors, in axis units.
	Centroid float64 // area-weighted mean position
	Spread   float64 // standard deviation around Centroid
	Rolloff  float64 // position below which 85% of the area lies
	FWHM     float64 // full width at half maximum around Peak
}

// Calculate computes all descriptors of y sampled at x.
// x must be increasing and as long as y.
func Calculate(x, y []float64) Stats {
	n := len(y)
	if n == 0 || len(x) != n {
		return Stats{}
	}

	var s Stats
	s.Samples = n
	maxIdx, minIdx := floats.MaxIdx(y), floats.MinIdx(y)
	s.Max, s.Peak = y[maxIdx], x[maxIdx]
	s.Min, s.MinAt = y[minIdx], x[minIdx]
	s.Sum = floats.Sum(y)
	if n == 1 {
		s.Centroid = x[0]
		s.Rolloff = x[0]
		return s
	}

	s.Integral = integrate.Trapezoidal(x, y)
	s.Centroid = centroid(x, y, s.Integral)
	s.Spread = spread(x, y, s.Centroid, s.Integral)
	s.Rolloff = rolloff(x, y, DefaultRolloff, s.Integral)
	s.FWHM = fwhm(x, y, maxIdx)
	return s
}

// ForSpectrum computes the descriptors of every row of s.
func ForSpectrum(s *spectrum.Spectrum) []Stats {
	x := s.Axis().Values()
	out := make([]Stats, s.Rows())
	for i := range out {
		out[i] = Calculate(x, s.Row(i))
	}
	return out
}

// Centroid returns the area-weighted mean position.
//
//	centroid = ∫ x·y dx / ∫ y dx
func Centroid(x, y []float64) float64 {
	if len(y) < 2 {
		return math.NaN()
	}
	return centroid(x, y, integrate.Trapezoidal(x, y))
}

func centroid(x, y []float64, area float64) float64 {
	if area == 0 {
		return 0
	}
	xy := make([]float64, len(y))
	floats.MulTo(xy, x, y)
	return integrate.Trapezoidal(x, xy) / area
}

func spread(x, y []float64, cent, area float64) float64 {
	if area == 0 {
		return 0
	}
	w := make([]float64, len(y))
	for i := range w {
		d := x[i] - cent
		w[i] = d * d * y[i]
	}
	return math.Sqrt(math.Max(integrate.Trapezoidal(x, w)/area, 0))
}

// Rolloff returns the position below which fraction (0..1) of the area lies.
func Rolloff(x, y []float64, fraction float64) float64 {
	if len(y) < 2 {
		return math.NaN()
	}
	return rolloff(x, y, fraction, integrate.Trapezoidal(x, y))
}

func rolloff(x, y []float64, fraction, area float64) float64 {
	if area <= 0 {
		return x[0]
	}
	target := fraction * area
	acc := 0.0
	for i := 1; i < len(x); i++ {
		seg := 0.5 * (y[i-1] + y[i]) * (x[i] - x[i-1])
		if acc+seg >= target && seg > 0 {
			return x[i-1] + (target-acc)/seg*(x[i]-x[i-1])
		}
		acc += seg
	}
	return x[len(x)-1]
}

// FWHM returns the full width at half maximum around the global peak.
//
// The half-maximum crossings on both sides of the peak are located by linear
// interpolation between samples. A side that never drops below half maximum
// extends to the axis end.
func FWHM(x, y []float64) float64 {
	if len(y) < 2 {
		return 0
	}
	return fwhm(x, y, floats.MaxIdx(y))
}

func fwhm(x, y []float64, peak int) float64 {
	n := len(y)
	if y[peak] <= 0 {
		return 0
	}
	half := y[peak] / 2

	lower := x[0]
	for i := peak; i >= 1; i-- {
		if y[i-1] <= half && y[i] > half {
			lower = crossing(x[i-1], x[i], y[i-1], y[i], half)
			break
		}
	}
	upper := x[n-1]
	for i := peak; i < n-1; i++ {
		if y[i+1] <= half && y[i] > half {
			upper = crossing(x[i], x[i+1], y[i], y[i+1], half)
			break
		}
	}
	return math.Max(upper-lower, 0)
}

// crossing linearly interpolates the position where y crosses level between
// (x0, y0) and (x1, y1).
func crossing(x0, x1, y0, y1, level float64) float64 {
	denom := y1 - y0
	if denom == 0 {
		return (x0 + x1) / 2
	}
	t := (level - y0) / denom
	return x0 + t*(x1-x0)
}
