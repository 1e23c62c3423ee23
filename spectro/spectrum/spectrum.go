package spectrum

import (
	"errors"
	"fmt"
	"maps"

	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-spectro/spectro/axis"
)

// ErrShape indicates data whose length does not match axis and navigation shape.
var ErrShape = errors.New("spectrum: data shape does not match axis")

// Metadata is auxiliary information carried opaquely through operations.
type Metadata map[string]string

// Spectrum is a signal axis paired with intensity data.
type Spectrum struct {
	axis axis.Axis
	nav  []int
	data []float64
	meta Metadata
}

// Option configures a new spectrum.
type Option func(*Spectrum)

// WithNavigation sets the navigation shape (leading dimensions).
// Without it the spectrum holds a single row.
func WithNavigation(dims ...int) Option {
	return func(s *Spectrum) {
		s.nav = append([]int(nil), dims...)
	}
}

// WithMetadata attaches a copy of m.
func WithMetadata(m Metadata) Option {
	return func(s *Spectrum) {
		s.meta = maps.Clone(m)
	}
}

// New creates a spectrum. data is copied; len(data) must equal the product of
// the navigation shape times ax.Len().
func New(ax axis.Axis, data []float64, opts ...Option) (*Spectrum, error) {
	if ax == nil {
		return nil, fmt.Errorf("%w: nil axis", ErrShape)
	}
	s := &Spectrum{axis: ax}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	rows := 1
	for _, d := range s.nav {
		if d <= 0 {
			return nil, fmt.Errorf("%w: navigation dimension must be > 0: %v", ErrShape, s.nav)
		}
		rows *= d
	}
	if len(data) != rows*ax.Len() {
		return nil, fmt.Errorf("%w: len(data) = %d, want %d (%d rows x %d samples)",
			ErrShape, len(data), rows*ax.Len(), rows, ax.Len())
	}
	s.data = append([]float64(nil), data...)
	if s.meta == nil {
		s.meta = Metadata{}
	}
	return s, nil
}

// FromRows creates a spectrum with a one-dimensional navigation shape from
// equal-length rows.
func FromRows(ax axis.Axis, rows [][]float64, opts ...Option) (*Spectrum, error) {
	data := make([]float64, 0, len(rows)*ax.Len())
	for _, r := range rows {
		data = append(data, r...)
	}
	if len(rows) == 1 {
		return New(ax, data, opts...)
	}
	return New(ax, data, append([]Option{WithNavigation(len(rows))}, opts...)...)
}

// Axis returns the signal axis.
func (s *Spectrum) Axis() axis.Axis { return s.axis }

// Navigation returns a copy of the navigation shape.
func (s *Spectrum) Navigation() []int { return append([]int(nil), s.nav...) }

// Rows returns the number of spectra (product of the navigation shape).
func (s *Spectrum) Rows() int {
	if s.axis.Len() == 0 {
		return 0
	}
	return len(s.data) / s.axis.Len()
}

// Row returns a copy of row i.
func (s *Spectrum) Row(i int) []float64 {
	n := s.axis.Len()
	return append([]float64(nil), s.data[i*n:(i+1)*n]...)
}

// Data returns a copy of the flat row-major data.
func (s *Spectrum) Data() []float64 { return append([]float64(nil), s.data...) }

// Metadata returns a copy of the auxiliary metadata.
func (s *Spectrum) Metadata() Metadata { return maps.Clone(s.meta) }

// Clone returns a deep copy.
func (s *Spectrum) Clone() *Spectrum {
	return &Spectrum{
		axis: s.axis,
		nav:  s.Navigation(),
		data: s.Data(),
		meta: s.Metadata(),
	}
}

// With returns a spectrum with the navigation shape and metadata of s but a
// new axis and data. data is not copied; callers hand over ownership.
func (s *Spectrum) With(ax axis.Axis, data []float64) (*Spectrum, error) {
	rows := s.Rows()
	if len(data) != rows*ax.Len() {
		return nil, fmt.Errorf("%w: len(data) = %d, want %d", ErrShape, len(data), rows*ax.Len())
	}
	return &Spectrum{axis: ax, nav: s.Navigation(), data: data, meta: s.Metadata()}, nil
}

// SameNavigation reports whether s and o have identical navigation shapes.
func (s *Spectrum) SameNavigation(o *Spectrum) bool {
	if s.Rows() != o.Rows() || len(s.nav) != len(o.nav) {
		return false
	}
	for i := range s.nav {
		if s.nav[i] != o.nav[i] {
			return false
		}
	}
	return true
}

// Integrate returns the trapezoidal integral of every row over the signal axis.
func (s *Spectrum) Integrate() []float64 {
	x := s.axis.Values()
	out := make([]float64, s.Rows())
	if len(x) < 2 {
		return out
	}
	n := len(x)
	for r := range out {
		out[r] = integrate.Trapezoidal(x, s.data[r*n:(r+1)*n])
	}
	return out
}
