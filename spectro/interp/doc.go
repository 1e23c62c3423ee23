// Package interp provides the interpolation primitives used when spectra on
// different axes are merged.
//
// An [Interpolator] maps sample pairs (x, y) and target coordinates to
// interpolated values. [New] selects an implementation by [Kind]:
//
//   - [Linear], [SLinear]: piecewise linear (first-order spline)
//   - [Nearest], [Previous], [Next]: piecewise constant
//   - [Cubic]:   not-a-knot cubic spline
//   - [Natural]: natural cubic spline
//   - [Akima]:   Akima spline
//   - [PCHIP]:   monotone Fritsch-Butland cubic
//
// Targets outside [x[0], x[n-1]] take the nearest end value.
package interp
