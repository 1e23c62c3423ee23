package axis

import (
	"fmt"
	"math"
)

// Uniform is an evenly spaced axis: sample i is offset + i*scale.
type Uniform struct {
	info
	offset float64
	scale  float64
	size   int
}

// NewUniform creates a uniform axis. scale must be > 0 and size > 0.
func NewUniform(offset, scale float64, size int, opts ...Option) (*Uniform, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	if err := validateScale(scale); err != nil {
		return nil, err
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil, fmt.Errorf("axis: offset must be finite: %v", offset)
	}
	return &Uniform{info: applyOptions(opts), offset: offset, scale: scale, size: size}, nil
}

// Offset returns the first sample.
func (u *Uniform) Offset() float64 { return u.offset }

// Scale returns the sample step.
func (u *Uniform) Scale() float64 { return u.scale }

// Len returns the number of samples.
func (u *Uniform) Len() int { return u.size }

// At returns sample i.
func (u *Uniform) At(i int) float64 { return u.offset + float64(i)*u.scale }

// Values returns all samples.
func (u *Uniform) Values() []float64 {
	out := make([]float64, u.size)
	for i := range out {
		out[i] = u.At(i)
	}
	return out
}

// ValueToIndex rounds (v-offset)/scale half to even and checks the result
// against the axis length.
func (u *Uniform) ValueToIndex(v float64) (int, error) {
	idx := math.RoundToEven((v - u.offset) / u.scale)
	if math.IsNaN(idx) || idx < 0 || idx >= float64(u.size) {
		return 0, fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfRange, v, u.At(0), u.At(u.size-1))
	}
	return int(idx), nil
}

// IsUniform reports true.
func (u *Uniform) IsUniform() bool { return true }

// Materialize returns the samples as a non-uniform axis with the same metadata.
func (u *Uniform) Materialize() *NonUniform {
	return &NonUniform{info: u.info, samples: u.Values()}
}

// Resize returns a copy of u with the same offset and scale but size samples.
func (u *Uniform) Resize(size int) (*Uniform, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	out := *u
	out.size = size
	return &out, nil
}
