package convert

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectro/spectro/axis"
)

// Physical constants (SI 2019 exact values).
const (
	Planck         = 6.62607015e-34 // J s
	SpeedOfLight   = 299792458.0    // m/s
	ElectronCharge = 1.602176634e-19
)

// hcOverE is h*c/e in eV*m.
const hcOverE = Planck * SpeedOfLight / ElectronCharge

// approxHC is the rounded h*c/e in eV*nm used to estimate the wavelength at
// which the refractive index is evaluated in [EnergyToWavelength].
const approxHC = 1239.5

// ErrUnit indicates a conversion requested on an axis already in the target unit.
var ErrUnit = errors.New("convert: signal unit is already eV")

// WavelengthToEnergy converts a wavelength in nm (in air) to photon energy in eV.
func WavelengthToEnergy(nm float64) float64 {
	return 1e9 * hcOverE / (NAir(nm) * nm)
}

// EnergyToWavelength converts a photon energy in eV to a wavelength in nm
// (in air).
//
// The refractive index is evaluated at the approximate wavelength 1239.5/eV
// rather than solved self-consistently, so this is not an exact inverse of
// [WavelengthToEnergy]. Round trips agree to well below 0.5 nm in the valid
// range of [NAir].
func EnergyToWavelength(eV float64) float64 {
	wl := approxHC / eV
	return 1e9 * hcOverE / (NAir(wl) * eV)
}

// WavelengthsToEnergies applies [WavelengthToEnergy] to every element.
func WavelengthsToEnergies(nm []float64) []float64 {
	out := make([]float64, len(nm))
	for i, v := range nm {
		out[i] = WavelengthToEnergy(v)
	}
	return out
}

// EnergiesToWavelengths applies [EnergyToWavelength] to every element.
func EnergiesToWavelengths(eV []float64) []float64 {
	out := make([]float64, len(eV))
	for i, v := range eV {
		out[i] = EnergyToWavelength(v)
	}
	return out
}

// AxisToEnergy converts a wavelength axis to an energy axis.
//
// Axes in µm are rescaled to nm first and yield an intensity factor of 1e3;
// any other non-energy unit is treated as nm and yields 1e6. Because energy
// falls with wavelength the converted samples are reversed, so the returned
// axis is ascending again. The result is a non-navigation axis named
// "Energy" in eV.
func AxisToEnergy(ax axis.Axis) (*axis.NonUniform, float64, error) {
	if ax.Unit().IsEnergy() {
		return nil, 0, fmt.Errorf("%w: axis %q", ErrUnit, ax.Name())
	}
	nm, factor := wavelengthsNM(ax)
	ev := WavelengthsToEnergies(nm)
	floats.Reverse(ev)
	out, err := axis.NewNonUniform(ev,
		axis.WithName("Energy"),
		axis.WithUnit(axis.ElectronVolt),
		axis.WithNavigate(false),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("convert: energy axis: %w", err)
	}
	return out, factor, nil
}

// wavelengthsNM returns the axis samples in nm and the matching intensity
// factor.
func wavelengthsNM(ax axis.Axis) ([]float64, float64) {
	v := ax.Values()
	if ax.Unit() == axis.Micrometre {
		floats.Scale(1000, v)
		return v, 1e3
	}
	return v, 1e6
}
