// Package axis provides the signal axis types used by spectra.
//
// An [Axis] is an ordered, strictly increasing sequence of sample coordinates
// tagged with a physical [Unit]. Three variants exist:
//
//   - [Uniform]:    offset + i*scale, defined by origin, step and length
//   - [NonUniform]: an explicit sample list
//   - [Functional]: a parametric axis, fn applied to an underlying uniform axis
//
// Code that needs explicit samples (for example concatenation) calls
// [Axis.Materialize], which always yields a [NonUniform].
package axis
