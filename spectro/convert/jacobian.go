package convert

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectro/spectro/axis"
	"github.com/cwbudde/algo-spectro/spectro/spectrum"
)

// JacobianFactors returns the per-sample multipliers that turn an intensity
// density per unit wavelength into one per unit energy.
//
// wavelength is the axis before conversion, in its original ascending order;
// it is reversed here so that sample i lines up with sample i of energy.
func JacobianFactors(factor float64, wavelength, energy axis.Axis) ([]float64, error) {
	if wavelength.Len() != energy.Len() {
		return nil, fmt.Errorf("convert: axis length mismatch: %d != %d", wavelength.Len(), energy.Len())
	}
	nm, _ := wavelengthsNM(wavelength)
	floats.Reverse(nm)
	out := make([]float64, len(nm))
	for i, wl := range nm {
		e := energy.At(i)
		out[i] = factor * hcOverE / (NAir(wl) * e * e)
	}
	return out, nil
}

// TransformToEnergyDensity rescales data, laid out as rows of energy.Len()
// samples already in ascending-energy order, from counts per wavelength to
// counts per energy. A new slice is returned.
func TransformToEnergyDensity(data []float64, factor float64, wavelength, energy axis.Axis) ([]float64, error) {
	jac, err := JacobianFactors(factor, wavelength, energy)
	if err != nil {
		return nil, err
	}
	n := len(jac)
	if n == 0 || len(data)%n != 0 {
		return nil, fmt.Errorf("convert: data length %d is not a multiple of %d", len(data), n)
	}
	out := make([]float64, len(data))
	for off := 0; off < len(data); off += n {
		vecmath.MulBlock(out[off:off+n], data[off:off+n], jac)
	}
	return out, nil
}

// SpectrumToEnergy re-expresses a wavelength spectrum on an energy axis.
//
// The axis is converted with [AxisToEnergy], every row is reversed to follow
// the reversed axis, and the intensities are rescaled with the Jacobian of
// the pre-conversion axis.
func SpectrumToEnergy(s *spectrum.Spectrum) (*spectrum.Spectrum, error) {
	wl := s.Axis()
	ev, factor, err := AxisToEnergy(wl)
	if err != nil {
		return nil, err
	}
	data := s.Data()
	n := wl.Len()
	for off := 0; off < len(data); off += n {
		floats.Reverse(data[off : off+n])
	}
	out, err := TransformToEnergyDensity(data, factor, wl, ev)
	if err != nil {
		return nil, err
	}
	return s.With(ev, out)
}
