package join

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectro/spectro/spectrum"
)

// ScalingFactors returns, per navigation row, the mean of a/b over the
// windows a[ind1-r : ind1+r] and b[ind2-r : ind2+r].
//
// Ratios with a zero denominator or a NaN result are skipped; a row without
// any valid ratio yields NaN. r == 0 gives an empty window and factors of 1.
func ScalingFactors(a, b *spectrum.Spectrum, ind1, ind2, r int) ([]float64, error) {
	rows := a.Rows()
	if b.Rows() != rows {
		return nil, fmt.Errorf("%w: %d rows vs %d rows", ErrShape, rows, b.Rows())
	}
	factors := make([]float64, rows)
	if r == 0 {
		for i := range factors {
			factors[i] = 1
		}
		return factors, nil
	}
	wa, err := a.Slice(ind1-r, ind1+r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRange, err)
	}
	wb, err := b.Slice(ind2-r, ind2+r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRange, err)
	}
	w := 2 * r
	for row := range factors {
		sum, n := 0.0, 0
		for k := row * w; k < (row+1)*w; k++ {
			if wb[k] == 0 {
				continue
			}
			q := wa[k] / wb[k]
			if math.IsNaN(q) {
				continue
			}
			sum += q
			n++
		}
		if n == 0 {
			factors[row] = math.NaN()
			continue
		}
		factors[row] = sum / float64(n)
	}
	return factors, nil
}
