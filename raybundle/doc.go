// Package raybundle defines the read-only data contract polviz renders from.
//
// A ray bundle is a fixed number of rays traced together through a sequence
// of optical surfaces. For a given surface every per-ray sequence (footprint
// coordinates, direction cosines, angle of incidence, Jones and PRT matrix
// elements) has exactly RayCount entries, and index i names the same ray in
// all of them. The tracing and polarization engines that fill a bundle live
// outside this module; [Memory] is the plain in-memory form they hand over.
//
// Surfaces are chosen with a [Surface] selector rather than integer
// sentinels:
//
//	raybundle.At(2)   // third surface along the optical path
//	raybundle.Last()  // final (image) surface
//	raybundle.Total() // system-accumulated matrices
package raybundle
