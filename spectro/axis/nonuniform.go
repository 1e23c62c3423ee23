package axis

import (
	"fmt"
	"sort"
)

// NonUniform is an axis defined by an explicit, strictly increasing sample list.
type NonUniform struct {
	info
	samples []float64
}

// NewNonUniform creates a non-uniform axis. samples is copied.
func NewNonUniform(samples []float64, opts ...Option) (*NonUniform, error) {
	if err := validateSamples(samples); err != nil {
		return nil, err
	}
	s := make([]float64, len(samples))
	copy(s, samples)
	return &NonUniform{info: applyOptions(opts), samples: s}, nil
}

// Len returns the number of samples.
func (n *NonUniform) Len() int { return len(n.samples) }

// At returns sample i.
func (n *NonUniform) At(i int) float64 { return n.samples[i] }

// Values returns a copy of the samples.
func (n *NonUniform) Values() []float64 {
	out := make([]float64, len(n.samples))
	copy(out, n.samples)
	return out
}

// ValueToIndex returns the index of the nearest sample. Ties resolve to the
// lower index.
func (n *NonUniform) ValueToIndex(v float64) (int, error) {
	last := len(n.samples) - 1
	if !(v >= n.samples[0] && v <= n.samples[last]) {
		return 0, fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfRange, v, n.samples[0], n.samples[last])
	}
	j := sort.SearchFloat64s(n.samples, v)
	if j == 0 {
		return 0, nil
	}
	if v-n.samples[j-1] <= n.samples[j]-v {
		return j - 1, nil
	}
	return j, nil
}

// IsUniform reports false.
func (n *NonUniform) IsUniform() bool { return false }

// Materialize returns n itself; NonUniform is immutable.
func (n *NonUniform) Materialize() *NonUniform { return n }

// Concat returns the samples of a[:i] followed by b[j:], carrying a's
// metadata. The result must still be strictly increasing.
func Concat(a Axis, i int, b Axis, j int) (*NonUniform, error) {
	if i < 0 || i > a.Len() || j < 0 || j > b.Len() {
		return nil, fmt.Errorf("%w: concat indices %d/%d for lengths %d/%d", ErrOutOfRange, i, j, a.Len(), b.Len())
	}
	samples := make([]float64, 0, i+b.Len()-j)
	for k := 0; k < i; k++ {
		samples = append(samples, a.At(k))
	}
	for k := j; k < b.Len(); k++ {
		samples = append(samples, b.At(k))
	}
	return NewNonUniform(samples, infoOptions(a)...)
}
