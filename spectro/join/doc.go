// Package join stitches overlapping partial spectra into one continuous
// spectrum.
//
// Spectra are folded left to right. For every adjacent pair the seam is
// placed at the center of the overlap region. The second spectrum is scaled
// by the mean intensity ratio over a window of r samples either side of the
// seam, which equalizes detector or grating gain changes between partial
// measurements. Uniform accumulators interpolate the next spectrum onto their
// own grid; non-uniform accumulators concatenate samples directly.
//
// With [WithAverage] the hard cut at the seam is replaced by the mean of both
// spectra across the window.
package join
