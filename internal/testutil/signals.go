package testutil

import (
	"math"
	"math/rand"
)

// Gaussian evaluates amplitude*exp(-(x-center)²/(2σ²)) at every x.
func Gaussian(x []float64, amplitude, center, sigma float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := (v - center) / sigma
		out[i] = amplitude * math.Exp(-0.5*d*d)
	}
	return out
}

// Constant returns n copies of value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// JitteredSamples returns n strictly increasing samples starting at lo with
// mean step and a reproducible jitter of up to ±jitter*step per sample.
// jitter must be < 0.5 to keep the samples ordered.
func JitteredSamples(seed int64, lo, step, jitter float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + step*(float64(i)+(rng.Float64()*2-1)*jitter)
	}
	return out
}
