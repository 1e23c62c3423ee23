package interp

import (
	"errors"
	"fmt"
	"sort"

	gonuminterp "gonum.org/v1/gonum/interp"
)

var (
	// ErrUnknownKind indicates an unsupported interpolation name or kind.
	ErrUnknownKind = errors.New("interp: unknown kind")
	// ErrTooFewPoints indicates fewer samples than the kind needs.
	ErrTooFewPoints = errors.New("interp: too few points")
	// ErrInvalidSamples indicates mismatched or unordered sample pairs.
	ErrInvalidSamples = errors.New("interp: invalid samples")
)

// Interpolator evaluates a curve through (x, y) at the coordinates in at.
// x must be strictly increasing and len(x) == len(y).
type Interpolator interface {
	Interpolate(x, y, at []float64) ([]float64, error)
}

// Func adapts an ordinary function to [Interpolator].
type Func func(x, y, at []float64) ([]float64, error)

// Interpolate calls f.
func (f Func) Interpolate(x, y, at []float64) ([]float64, error) { return f(x, y, at) }

// New returns the interpolator for kind.
func New(kind Kind) (Interpolator, error) {
	switch kind {
	case SLinear, Linear:
		return fitted{kind: kind, fp: func() gonuminterp.FittablePredictor { return &gonuminterp.PiecewiseLinear{} }}, nil
	case Next:
		return fitted{kind: kind, fp: func() gonuminterp.FittablePredictor { return &gonuminterp.PiecewiseConstant{} }}, nil
	case Cubic:
		return fitted{kind: kind, fp: func() gonuminterp.FittablePredictor { return &gonuminterp.NotAKnotCubic{} }}, nil
	case Natural:
		return fitted{kind: kind, fp: func() gonuminterp.FittablePredictor { return &gonuminterp.NaturalCubic{} }}, nil
	case Akima:
		return fitted{kind: kind, fp: func() gonuminterp.FittablePredictor { return &gonuminterp.AkimaSpline{} }}, nil
	case PCHIP:
		return fitted{kind: kind, fp: func() gonuminterp.FittablePredictor { return &gonuminterp.FritschButland{} }}, nil
	case Nearest, Previous:
		return step{kind: kind}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// MustNew is like [New] but panics on an unknown kind.
func MustNew(kind Kind) Interpolator {
	ip, err := New(kind)
	if err != nil {
		panic(err)
	}
	return ip
}

func validate(kind Kind, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: x/y length mismatch: %d != %d", ErrInvalidSamples, len(x), len(y))
	}
	if len(x) < kind.minPoints() {
		return fmt.Errorf("%w: %s needs %d, got %d", ErrTooFewPoints, kind, kind.minPoints(), len(x))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("%w: x must be strictly increasing at index %d", ErrInvalidSamples, i)
		}
	}
	return nil
}

// fitted wraps a gonum predictor and clamps targets to the data range.
type fitted struct {
	kind Kind
	fp   func() gonuminterp.FittablePredictor
}

func (f fitted) Interpolate(x, y, at []float64) ([]float64, error) {
	if err := validate(f.kind, x, y); err != nil {
		return nil, err
	}
	p := f.fp()
	if err := p.Fit(x, y); err != nil {
		return nil, fmt.Errorf("interp: %s fit: %w", f.kind, err)
	}
	last := len(x) - 1
	out := make([]float64, len(at))
	for i, q := range at {
		switch {
		case q <= x[0]:
			out[i] = y[0]
		case q >= x[last]:
			out[i] = y[last]
		default:
			out[i] = p.Predict(q)
		}
	}
	return out, nil
}

// step implements the piecewise-constant kinds gonum does not provide.
type step struct {
	kind Kind
}

func (s step) Interpolate(x, y, at []float64) ([]float64, error) {
	if err := validate(s.kind, x, y); err != nil {
		return nil, err
	}
	last := len(x) - 1
	out := make([]float64, len(at))
	for i, q := range at {
		if q <= x[0] {
			out[i] = y[0]
			continue
		}
		if q >= x[last] {
			out[i] = y[last]
			continue
		}
		j := sort.SearchFloat64s(x, q)
		switch {
		case x[j] == q:
			out[i] = y[j]
		case s.kind == Previous:
			out[i] = y[j-1]
		case q-x[j-1] <= x[j]-q:
			// Nearest: ties resolve to the lower sample.
			out[i] = y[j-1]
		default:
			out[i] = y[j]
		}
	}
	return out, nil
}
