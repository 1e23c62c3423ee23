// Package specio reads and writes spectra as CSV text or FITS binary tables.
//
// Both formats store the signal axis as the first column followed by one
// intensity column per spectrum row. Axis name and unit survive a round
// trip; the axis variant is recovered from the sample spacing.
package specio
