package number

import "cmp"

// Cmp compares n and e and returns:
//
//	-1 if n < e
//	 0 if n == e
//	+1 if n > e
//
// Normalization makes most comparisons a matter of signs and exponents; the
// mantissas are only consulted when an operand is zero or the exponents
// match.
func (n Number) Cmp(e Number) int {
	if n.form != Finite || e.form != Finite {
		return cmp.Compare(rank(n), rank(e))
	}

	if n.mantissa == 0 || e.mantissa == 0 || n.exponent == e.exponent {
		return cmp.Compare(n.mantissa, e.mantissa)
	}

	switch {
	case n.mantissa > 0 && e.mantissa < 0:
		return 1
	case n.mantissa < 0 && e.mantissa > 0:
		return -1
	}

	c := cmp.Compare(n.exponent, e.exponent)
	if n.mantissa < 0 {
		return -c
	}

	return c
}

// rank orders the forms: every finite number sits between the infinities.
func rank(n Number) int {
	switch n.form {
	case PositiveInfinite:
		return 1
	case NegativeInfinite:
		return -1
	}

	return 0
}

// CmpAny is like Cmp, but accepts any Go integer or float as well as Number
// and *Number. A nil operand compares less than every number. Any other type
// returns ErrUnsupportedType.
func (n Number) CmpAny(v any) (int, error) {
	var e Number

	switch x := v.(type) {
	case nil:
		return 1, nil
	case Number:
		e = x
	case *Number:
		if x == nil {
			return 1, nil
		}
		e = *x
	case int:
		e = FromInteger(x)
	case int8:
		e = FromInteger(x)
	case int16:
		e = FromInteger(x)
	case int32:
		e = FromInteger(x)
	case int64:
		e = FromInteger(x)
	case uint:
		e = FromInteger(x)
	case uint8:
		e = FromInteger(x)
	case uint16:
		e = FromInteger(x)
	case uint32:
		e = FromInteger(x)
	case uint64:
		e = FromInteger(x)
	case float32:
		e = FromFloat32(x)
	case float64:
		e = FromFloat64(x)
	default:
		return 0, ErrUnsupportedType
	}

	return n.Cmp(e), nil
}

// Equal reports whether n == e.
func (n Number) Equal(e Number) bool {
	return n == e
}

// Less reports whether n < e.
func (n Number) Less(e Number) bool {
	return n.Cmp(e) < 0
}

// LessEqual reports whether n <= e.
func (n Number) LessEqual(e Number) bool {
	return n.Cmp(e) <= 0
}

// Greater reports whether n > e.
func (n Number) Greater(e Number) bool {
	return n.Cmp(e) > 0
}

// GreaterEqual reports whether n >= e.
func (n Number) GreaterEqual(e Number) bool {
	return n.Cmp(e) >= 0
}

// Max returns the larger of a and b.
func Max(a, b Number) Number {
	if a.Cmp(b) > 0 {
		return a
	}

	return b
}

// Min returns the smaller of a and b.
func Min(a, b Number) Number {
	if a.Cmp(b) < 0 {
		return a
	}

	return b
}

// Lerp linearly interpolates between a and b. The weight t is clamped to
// [0, 1], so Lerp(a, b, t) is always between a and b.
func Lerp(a, b, t Number) Number {
	switch {
	case t.Less(Zero):
		t = Zero
	case t.Greater(One):
		t = One
	}

	return a.Add(b.Sub(a).Mul(t))
}
