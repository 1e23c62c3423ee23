package axis

import (
	"errors"
	"fmt"
)

var (
	// ErrNotIncreasing indicates axis samples that are not strictly increasing.
	ErrNotIncreasing = errors.New("axis: samples must be strictly increasing")
	// ErrOutOfRange indicates a value outside the axis range.
	ErrOutOfRange = errors.New("axis: value out of range")
	// ErrEmpty indicates an axis without samples.
	ErrEmpty = errors.New("axis: axis must have at least one sample")
)

func validateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: size %d", ErrEmpty, size)
	}
	return nil
}

func validateScale(scale float64) error {
	if !(scale > 0) {
		return fmt.Errorf("%w: scale must be > 0: %v", ErrNotIncreasing, scale)
	}
	return nil
}

func validateSamples(samples []float64) error {
	if len(samples) == 0 {
		return ErrEmpty
	}
	for i := 1; i < len(samples); i++ {
		if !(samples[i] > samples[i-1]) {
			return fmt.Errorf("%w: index %d (%v after %v)", ErrNotIncreasing, i, samples[i], samples[i-1])
		}
	}
	return nil
}
