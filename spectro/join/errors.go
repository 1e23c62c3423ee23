package join

import "errors"

var (
	// ErrNoSpectra indicates an empty input sequence.
	ErrNoSpectra = errors.New("join: no spectra")
	// ErrOverlap indicates adjacent spectra whose signal axes do not overlap.
	ErrOverlap = errors.New("join: signal axes not overlapping")
	// ErrRange indicates a half window r larger than the overlap allows.
	ErrRange = errors.New("join: r is too large")
	// ErrShape indicates spectra with different navigation shapes.
	ErrShape = errors.New("join: navigation shapes differ")
)
