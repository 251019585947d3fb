// Package number provides a fixed width, lossy, base 10 scientific notation
// number.
//
// The equation for a number is:
//
//	number = mantissa * 10 ^ exponent
//
// Where mantissa and exponent are both signed 32 bit integers. The mantissa is
// always normalized to exactly 9 significant decimal digits:
//
//	100_000_000 <= |mantissa| < 1_000_000_000
//
// For example:
//
//	1.23     = 123_000_000 * 10^-8
//	-5       = -500_000_000 * 10^-8
//	7 * 10^9 = 700_000_000 * 10^1
//
// Zero is the only exception and always has a mantissa and exponent of 0. The
// zero value of Number is therefore ready to use and equal to Zero.
//
// Because every value has exactly one representation, two numbers are equal
// if and only if their structs are equal. Numbers may be compared with == and
// used as map keys.
//
// # Precision
//
// Digits beyond the ninth are discarded (truncated) by every operation. The
// range on the other hand is enormous: the exponent covers roughly
// 10^-2147483648 to 10^2147483647. This trade off suits simulations where
// quantities grow without bound but only the leading digits are interesting.
//
// Addition ignores an operand that is 9 or more orders of magnitude smaller
// than the other:
//
//	5 * 10^9 + 1 = 5 * 10^9
//	5 * 10^8 + 1 = 500_000_001
//
// # Infinity
//
// Positive and negative infinity exist as distinct forms. They appear when a
// float infinity is converted or when an exponent overflows. There is no NaN;
// operations that would produce one (for example +Inf + -Inf) produce Zero.
//
// # Formatting
//
// String renders plain decimal text and Scientific renders d.ddde±x text.
// Text accepts a format tag and an optional list of Formatters that are
// consulted first, which is how callers plug in alternate renderings.
//
// # Records
//
// Persistence layers may treat a number as an opaque pair of 32 bit integers,
// see Number.Record and FromRecord.
package number
