package number

import "math"

// Form distinguishes finite numbers from the infinities.
type Form uint8

// Forms
const (
	Finite Form = iota
	PositiveInfinite
	NegativeInfinite
)

func (f Form) String() string {
	switch f {
	case Finite:
		return "finite"
	case PositiveInfinite:
		return "+inf"
	case NegativeInfinite:
		return "-inf"
	}

	return "invalid"
}

const (
	// Digits is the number of significant decimal digits in a normalized
	// mantissa.
	Digits = 9

	minMantissa = 100_000_000
	maxMantissa = 1_000_000_000

	zeroExponent = 0

	// infRecordExponent is the exponent recorded for an infinity. It is
	// the exponent bit pattern of a single precision float infinity.
	infRecordExponent = 0x7F80_0000

	// maxShift bounds exponent adjustments so that they can't overflow an
	// int64 while still saturating any int32 exponent.
	maxShift = 1 << 33
)

// Number is a normalized mantissa * 10^exponent.
type Number struct {
	mantissa int32
	exponent int32
	form     Form
}

// Constants
var (
	Zero             = Number{exponent: zeroExponent}
	One              = New(1, 0)
	PositiveInfinity = Number{form: PositiveInfinite}
	NegativeInfinity = Number{form: NegativeInfinite}
)

// New returns mantissa * 10^exponent normalized.
func New(mantissa, exponent int32) Number {
	return normalize(int64(mantissa), int64(exponent))
}

// Normalize returns mantissa * 10^exponent with the mantissa reduced (by
// truncation) or expanded to exactly Digits significant digits.
//
// If the resulting exponent no longer fits in an int32 the result saturates
// to an infinity (too large) or Zero (too small).
func Normalize(mantissa int64, exponent int32) Number {
	return normalize(mantissa, int64(exponent))
}

// normalize is the single gate every constructor and operator passes
// through.
func normalize(mantissa int64, exponent int64) Number {
	if mantissa == 0 {
		return Zero
	}

	negative := mantissa < 0

	magnitude := uint64(mantissa)
	if negative {
		magnitude = uint64(-(mantissa + 1)) + 1
	}

	for magnitude < minMantissa {
		magnitude *= 10
		exponent--
	}

	for magnitude >= maxMantissa {
		magnitude /= 10
		exponent++
	}

	switch {
	case exponent > math.MaxInt32:
		if negative {
			return NegativeInfinity
		}

		return PositiveInfinity
	case exponent < math.MinInt32:
		return Zero
	}

	m := int32(magnitude)
	if negative {
		m = -m
	}

	return Number{
		mantissa: m,
		exponent: int32(exponent),
	}
}

// FromRecord is the inverse of Record.
func FromRecord(mantissa, exponent int32) Number {
	if exponent == infRecordExponent {
		switch mantissa {
		case 1:
			return PositiveInfinity
		case -1:
			return NegativeInfinity
		}
	}

	return New(mantissa, exponent)
}

// Record returns the number as a pair of integers suitable for storage.
//
// Finite numbers return their mantissa and exponent. Infinities return ±1
// and 0x7F800000; a normalized mantissa is never ±1 so the pair can't be
// confused with a finite number.
func (n Number) Record() (mantissa, exponent int32) {
	switch n.form {
	case PositiveInfinite:
		return 1, infRecordExponent
	case NegativeInfinite:
		return -1, infRecordExponent
	}

	return n.mantissa, n.exponent
}

// Mantissa returns the normalized mantissa. It is 0 for zero and the
// infinities.
func (n Number) Mantissa() int32 {
	return n.mantissa
}

// Exponent returns the base 10 exponent. It is 0 for zero and the
// infinities.
func (n Number) Exponent() int32 {
	return n.exponent
}

// Form returns whether n is finite or infinite.
func (n Number) Form() Form {
	return n.form
}

// IsZero reports whether n is zero.
func (n Number) IsZero() bool {
	return n == Zero
}

// IsInf reports whether n is an infinity, according to sign. If sign > 0,
// IsInf reports whether n is positive infinity. If sign < 0, IsInf reports
// whether n is negative infinity. If sign == 0, IsInf reports whether n is
// either infinity.
func (n Number) IsInf(sign int) bool {
	return sign >= 0 && n.form == PositiveInfinite ||
		sign <= 0 && n.form == NegativeInfinite
}

// Sign returns:
//
//	-1 if n < 0
//	 0 if n == 0
//	+1 if n > 0
func (n Number) Sign() int {
	switch {
	case n.form == PositiveInfinite, n.mantissa > 0:
		return 1
	case n.form == NegativeInfinite, n.mantissa < 0:
		return -1
	}

	return 0
}

// Abs returns |n|.
func (n Number) Abs() Number {
	if n.Sign() < 0 {
		return n.Neg()
	}

	return n
}

// Shift returns n * 10^k.
func (n Number) Shift(k int64) Number {
	if n.form != Finite || n.mantissa == 0 {
		return n
	}

	switch {
	case k > maxShift:
		k = maxShift
	case k < -maxShift:
		k = -maxShift
	}

	return normalize(int64(n.mantissa), int64(n.exponent)+k)
}
