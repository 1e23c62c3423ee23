package convert

// NAir returns the refractive index of air at the wavelength nm.
//
// The dispersion formula is valid for 185-1700 nm. Outside that range the
// result is extrapolated and physically meaningless; callers keep inputs in
// range.
func NAir(nm float64) float64 {
	um := nm / 1000
	inv := 1 / (um * um)
	return 1 + 806051e-10 + 2480990e-8/(132274e-3-inv) + 174557e-9/(3932957e-5-inv)
}

// NAirSlice evaluates [NAir] for each wavelength in nm.
func NAirSlice(nm []float64) []float64 {
	out := make([]float64, len(nm))
	for i, v := range nm {
		out[i] = NAir(v)
	}
	return out
}
