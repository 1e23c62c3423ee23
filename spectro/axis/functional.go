package axis

import (
	"errors"
	"fmt"
)

// Functional is a parametric axis: sample i is fn(x.At(i)).
//
// fn must be strictly increasing over the range of x.
type Functional struct {
	info
	samples []float64
}

// NewFunctional creates a parametric axis over the uniform axis x.
func NewFunctional(x *Uniform, fn func(float64) float64, opts ...Option) (*Functional, error) {
	if x == nil || fn == nil {
		return nil, errors.New("axis: functional axis needs x and fn")
	}
	samples := make([]float64, x.Len())
	for i := range samples {
		samples[i] = fn(x.At(i))
	}
	if err := validateSamples(samples); err != nil {
		return nil, fmt.Errorf("functional axis: %w", err)
	}
	return &Functional{info: applyOptions(opts), samples: samples}, nil
}

// Len returns the number of samples.
func (f *Functional) Len() int { return len(f.samples) }

// At returns sample i.
func (f *Functional) At(i int) float64 { return f.samples[i] }

// Values returns a copy of the evaluated samples.
func (f *Functional) Values() []float64 {
	out := make([]float64, len(f.samples))
	copy(out, f.samples)
	return out
}

// ValueToIndex returns the index of the nearest evaluated sample.
func (f *Functional) ValueToIndex(v float64) (int, error) {
	return f.Materialize().ValueToIndex(v)
}

// IsUniform reports false.
func (f *Functional) IsUniform() bool { return false }

// Materialize converts the parametric axis into an explicit sample list.
func (f *Functional) Materialize() *NonUniform {
	return &NonUniform{info: f.info, samples: f.Values()}
}
