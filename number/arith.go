package number

// Neg returns -n.
func (n Number) Neg() Number {
	switch n.form {
	case PositiveInfinite:
		return NegativeInfinity
	case NegativeInfinite:
		return PositiveInfinity
	}

	return Number{
		mantissa: -n.mantissa,
		exponent: n.exponent,
	}
}

// Add returns n + e.
//
// If the exponents differ by Digits or more the smaller operand can't affect
// the normalized result and the larger operand is returned unchanged.
func (n Number) Add(e Number) Number {
	if n.form != Finite || e.form != Finite {
		return addInf(n, e)
	}

	switch {
	case n.mantissa == 0:
		return e
	case e.mantissa == 0:
		return n
	}

	a, b := n, e
	if a.exponent < b.exponent {
		a, b = b, a
	}

	diff := int64(a.exponent) - int64(b.exponent)
	if diff >= Digits {
		return a
	}

	return normalize(
		int64(a.mantissa)*pow10[diff]+int64(b.mantissa),
		int64(b.exponent),
	)
}

func addInf(n, e Number) Number {
	switch {
	case n.form == Finite:
		return e
	case e.form == Finite, n.form == e.form:
		return n
	}

	// +Inf + -Inf
	return Zero
}

// Sub returns n - e.
func (n Number) Sub(e Number) Number {
	return n.Add(e.Neg())
}

// Mul returns n * e.
func (n Number) Mul(e Number) Number {
	if n.form != Finite || e.form != Finite {
		return signedInf(n.Sign() * e.Sign())
	}

	return normalize(
		int64(n.mantissa)*int64(e.mantissa),
		int64(n.exponent)+int64(e.exponent),
	)
}

// Quo returns n / e. It returns ErrDivisionByZero if e is zero.
//
// The dividend is scaled by 10^Digits before the integer division so that
// the quotient keeps a full mantissa worth of digits.
func (n Number) Quo(e Number) (Number, error) {
	switch {
	case e.IsZero():
		return Zero, ErrDivisionByZero
	case e.form != Finite:
		return Zero, nil
	case n.form != Finite:
		return signedInf(n.Sign() * e.Sign()), nil
	}

	return normalize(
		int64(n.mantissa)*maxMantissa/int64(e.mantissa),
		int64(n.exponent)-Digits-int64(e.exponent),
	), nil
}

// MustQuo is like Quo but panics if e is zero.
func (n Number) MustQuo(e Number) Number {
	q, err := n.Quo(e)
	if err != nil {
		panic(err)
	}

	return q
}

// Inc returns n + 1.
func (n Number) Inc() Number {
	return n.Add(One)
}

// Dec returns n - 1.
func (n Number) Dec() Number {
	return n.Sub(One)
}

func signedInf(sign int) Number {
	switch {
	case sign > 0:
		return PositiveInfinity
	case sign < 0:
		return NegativeInfinity
	}

	return Zero
}
