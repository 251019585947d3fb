package number

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Precision offsets used when converting floats. A float32 carries about 7
// significant digits and a float64 about 9 worth keeping, so the conversion
// scales the value to that many integer digits before rounding.
const (
	float32Offset = 6
	float64Offset = 8
)

// FromInt64 returns v as a Number. Digits beyond the ninth are truncated.
func FromInt64(v int64) Number {
	return normalize(v, 0)
}

// FromInteger returns v as a Number. Digits beyond the ninth are truncated.
func FromInteger[T constraints.Integer](v T) Number {
	if v < 0 {
		return normalize(int64(v), 0)
	}

	u := uint64(v)
	if u > math.MaxInt64 {
		return normalize(int64(u/10), 1)
	}

	return normalize(int64(u), 0)
}

// FromFloat32 returns v as a Number rounded to 7 significant digits.
//
// Infinities convert to the matching infinite form and NaN converts to Zero.
func FromFloat32(v float32) Number {
	return fromFloat(float64(v), float32Offset, math.SmallestNonzeroFloat32)
}

// FromFloat64 returns v as a Number rounded to 9 significant digits.
//
// Infinities convert to the matching infinite form and NaN converts to Zero.
func FromFloat64(v float64) Number {
	return fromFloat(v, float64Offset, math.SmallestNonzeroFloat64)
}

// FromFloat dispatches to FromFloat32 or FromFloat64.
func FromFloat[T constraints.Float](v T) Number {
	if f, ok := any(v).(float32); ok {
		return FromFloat32(f)
	}

	return FromFloat64(float64(v))
}

func fromFloat(v float64, offset int, smallest float64) Number {
	switch {
	case math.IsNaN(v):
		return Zero
	case math.IsInf(v, 1):
		return PositiveInfinity
	case math.IsInf(v, -1):
		return NegativeInfinity
	case math.Abs(v) < smallest:
		return Zero
	}

	exponent := int(math.Floor(math.Log10(math.Abs(v)))) - offset
	mantissa := math.RoundToEven(scale10(v, -exponent))

	return normalize(int64(mantissa), int64(exponent))
}

// Float64 returns the nearest float64 to n.
//
// Numbers beyond the float64 range (including the infinities) saturate to
// ±math.MaxFloat64; Float64 never returns an infinity. Numbers too small to
// represent return 0.
func (n Number) Float64() float64 {
	switch n.form {
	case PositiveInfinite:
		return math.MaxFloat64
	case NegativeInfinite:
		return -math.MaxFloat64
	}

	if n.mantissa == 0 {
		return 0
	}

	switch order := int64(n.exponent) + Digits - 1; {
	case order > float64ExpMax:
		return saturate(n.mantissa, math.MaxFloat64)
	case order < float64ExpMin:
		return 0
	}

	f := scale10(float64(n.mantissa), int(n.exponent))
	if math.IsInf(f, 0) {
		return saturate(n.mantissa, math.MaxFloat64)
	}

	return f
}

// Float32 returns the nearest float32 to n with the same saturation rules as
// Float64.
func (n Number) Float32() float32 {
	switch n.form {
	case PositiveInfinite:
		return math.MaxFloat32
	case NegativeInfinite:
		return -math.MaxFloat32
	}

	if n.mantissa == 0 {
		return 0
	}

	switch order := int64(n.exponent) + Digits - 1; {
	case order > float32ExpMax:
		return float32(saturate(n.mantissa, math.MaxFloat32))
	case order < float32ExpMin:
		return 0
	}

	f := scale10(float64(n.mantissa), int(n.exponent))
	if math.Abs(f) > math.MaxFloat32 {
		return float32(saturate(n.mantissa, math.MaxFloat32))
	}

	return float32(f)
}

func saturate(mantissa int32, limit float64) float64 {
	if mantissa < 0 {
		return -limit
	}

	return limit
}
