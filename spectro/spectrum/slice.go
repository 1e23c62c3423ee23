package spectrum

import "fmt"

// Window copies the signal-index range [lo, hi) of every row into dst, which
// must hold Rows()*(hi-lo) values. Rows are laid out back to back.
func (s *Spectrum) Window(dst []float64, lo, hi int) error {
	n := s.axis.Len()
	if lo < 0 || hi > n || lo > hi {
		return fmt.Errorf("%w: window [%d, %d) outside [0, %d)", ErrShape, lo, hi, n)
	}
	w := hi - lo
	if len(dst) != s.Rows()*w {
		return fmt.Errorf("%w: window buffer len %d, want %d", ErrShape, len(dst), s.Rows()*w)
	}
	for r := 0; r < s.Rows(); r++ {
		copy(dst[r*w:(r+1)*w], s.data[r*n+lo:r*n+hi])
	}
	return nil
}

// Slice returns the values at signal indices [lo, hi) of every row.
func (s *Spectrum) Slice(lo, hi int) ([]float64, error) {
	if lo > hi {
		return nil, fmt.Errorf("%w: window [%d, %d)", ErrShape, lo, hi)
	}
	out := make([]float64, s.Rows()*(hi-lo))
	if err := s.Window(out, lo, hi); err != nil {
		return nil, err
	}
	return out, nil
}
