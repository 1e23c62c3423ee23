// Package specplot renders spectra as line plots.
package specplot

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-spectro/spectro/spectrum"
)

// ErrNoSeries indicates a plot request without any data.
var ErrNoSeries = errors.New("specplot: nothing to plot")

// Series is one labelled curve: the first row of a spectrum.
type Series struct {
	Label    string
	Spectrum *spectrum.Spectrum
	// Width overrides the default line width in points.
	Width float64
}

var palette = []color.RGBA{
	{R: 27, G: 170, B: 139, A: 255},
	{R: 201, G: 104, B: 146, A: 255},
	{R: 99, G: 124, B: 198, A: 255},
	{R: 183, G: 139, B: 89, A: 255},
	{R: 188, G: 117, B: 255, A: 255},
	{R: 18, G: 102, B: 99, A: 255},
}

// New builds a plot of the given series sharing the axis label of the first.
func New(title string, series ...Series) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}
	p := plot.New()
	p.Title.Text = title
	ax := series[0].Spectrum.Axis()
	p.X.Label.Text = fmt.Sprintf("%s (%s)", ax.Name(), ax.Unit())
	p.Y.Label.Text = "Intensity"
	p.Add(plotter.NewGrid())

	for i, s := range series {
		line, err := plotter.NewLine(xys(s.Spectrum))
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.Color = palette[i%len(palette)]
		line.Width = vg.Points(1)
		if s.Width > 0 {
			line.Width = vg.Points(s.Width)
		}
		p.Add(line)
		if s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
	}
	p.Legend.Top = true
	return p, nil
}

// Save renders the series to path. The extension selects the image format.
func Save(path, title string, series ...Series) error {
	p, err := New(title, series...)
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func xys(s *spectrum.Spectrum) plotter.XYs {
	ax := s.Axis()
	pts := make(plotter.XYs, ax.Len())
	if s.Rows() == 0 {
		return pts[:0]
	}
	row := s.Row(0)
	for i := range pts {
		pts[i].X = ax.At(i)
		pts[i].Y = row[i]
	}
	return pts
}
