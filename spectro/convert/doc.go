// Package convert converts spectral signal axes between wavelength and photon
// energy.
//
// Conversions use the wavelength-dependent refractive index of air (Peck &
// Reeder, J. Opt. Soc. Am. 62, 958 (1972)), so energies refer to vacuum
// photon energies while wavelengths are measured in air.
//
// Intensities recorded per unit wavelength must be rescaled when the axis is
// re-expressed in energy so that integrated counts are preserved. The
// Jacobian transform follows Wang and Townsend, J. Lumin. 142, 202 (2013):
//
//	I(E) = I(λ) · factor · h·c / (e · n(λ) · E²)
//
// where factor selects the output density (counts per meV for nm and µm input).
package convert
