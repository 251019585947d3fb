package number

// FloorDigits truncates n to at most digits fractional decimal places. It
// returns ErrOutOfRange if digits is negative.
//
// Truncation is toward zero: the discarded digits are dropped from the
// mantissa, so FloorDigits(-1.25, 1) is -1.2. Infinities are returned
// unchanged.
func (n Number) FloorDigits(digits int) (Number, error) {
	if digits < 0 {
		return Zero, ErrOutOfRange
	}

	if n.form != Finite || n.mantissa == 0 {
		return n, nil
	}

	// k is the count of low mantissa digits that lie below 10^-digits.
	k := -int64(digits) - int64(n.exponent)

	switch {
	case k >= Digits:
		return Zero, nil
	case k <= 0:
		return n, nil
	}

	p := pow10[k]

	return normalize(int64(n.mantissa)/p*p, int64(n.exponent)), nil
}

// Floor truncates n to an integer (toward zero).
func (n Number) Floor() Number {
	f, _ := n.FloorDigits(0)

	return f
}
