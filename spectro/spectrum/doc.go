// Package spectrum provides an immutable container pairing a signal axis with
// intensity data.
//
// Data is stored row-major with the signal axis as the last (fastest)
// dimension. Leading navigation dimensions are carried through unchanged;
// every row holds one spectrum of length Axis().Len().
package spectrum
