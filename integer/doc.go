// Package integer packs signed integers into short big-endian byte strings.
//
// The sign travels in the lowest bit and the magnitude in the bits above it:
//
//	+0   -> 0000_0000
//	+1   -> 0000_0010
//	-1   -> 0000_0011
//	+127 -> 1111_1110
//	-127 -> 1111_1111
//
// Small magnitudes of either sign therefore take a single byte.
package integer
