// Package decimal provides a compact binary record for number.Number.
//
// The equation for a recorded number is:
//
//	number = value * 10 ^ scale
//
// Where value is the normalized mantissa and scale is the base 10 exponent.
// For example:
//
//	12.5 = 125000000 * 10^-7
//
// # Encoding
//
// A record is a header byte followed by the value bytes and then the scale
// bytes. Both integers are encoded big-endian with a trailing sign bit (aka
// zigzag, see package integer). The header holds the byte length of each
// integer and the form of the number:
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|-----------|-----------|-------|
//	| value len | scale len | form  |
//	|-----------|-----------|-------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// A length of zero means the integer is zero and has no bytes. The form is
// encoded as two bits:
//
//	| 6 | 7 | Form          |
//	|-------|---------------|
//	| 0 . 0 | Finite        |
//	| 0 . 1 | +Inf          | Lengths must be zero.
//	| 1 . 0 | -Inf          | Lengths must be zero.
//	| 1 . 1 | Invalid       |
//	|-------|---------------|
//
// # Examples
//
// Zero (1 byte)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|-----------|-----------|-------|
//	| 0 . 0 . 0 | 0 . 0 . 0 | 0 . 0 |
//	|-----------|-----------|-------|
//
// +Inf (1 byte)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|-----------|-----------|-------|
//	| 0 . 0 . 0 | 0 . 0 . 0 | 0 . 1 |
//	|-----------|-----------|-------|
//
// One (6 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|-----------|-----------|-------|
//	| 1 . 0 . 0 | 0 . 0 . 1 | 0 . 0 | 4 value bytes, 1 scale byte.
//	|-------------------------------|
//	| 0 . 0 . 0 . 0 . 1 . 0 . 1 . 1 | Value of +100000000
//	| 1 . 1 . 1 . 0 . 1 . 0 . 1 . 1 |
//	| 1 . 1 . 0 . 0 . 0 . 0 . 1 . 0 |
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 | 0 |
//	|-------------------------------|
//	| 0 . 0 . 0 . 1 . 0 . 0 . 0 | 1 | Scale of -8.
//	|-------------------------------|
//
// A mantissa always fits in 4 bytes and a scale in 5, so a record is at
// most 10 bytes long.
//
// # Streams
//
// Records are self delimiting. Encoder writes them back to back and Decoder
// reads them one at a time.
package decimal
