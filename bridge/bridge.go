// Package bridge converts numbers to and from arbitrary precision decimals.
//
// Conversions into a decimal are exact. Conversions out of a decimal keep
// the leading significant digits and truncate the rest, like every other
// Number constructor.
package bridge

import (
	"math/big"

	"github.com/calebcase/norify/number"
	"github.com/cockroachdb/apd/v3"
	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("bridge")

// Errors
var (
	ErrNotFinite = Error.New("not finite")
	ErrNaN       = Error.New("not a number")
)

// coefficientDigits is how many leading digits of a coefficient are kept
// before handing it to number.FromInt64. It is the most that fit an int64.
const coefficientDigits = 18

// ToAPD returns n as an apd decimal. Infinities map to apd infinities.
func ToAPD(n number.Number) *apd.Decimal {
	switch n.Form() {
	case number.PositiveInfinite:
		return &apd.Decimal{Form: apd.Infinite}
	case number.NegativeInfinite:
		return &apd.Decimal{Form: apd.Infinite, Negative: true}
	}

	return apd.New(int64(n.Mantissa()), n.Exponent())
}

// FromAPD returns d as a number. It returns ErrNaN for either NaN form.
func FromAPD(d *apd.Decimal) (number.Number, error) {
	switch d.Form {
	case apd.Infinite:
		if d.Negative {
			return number.NegativeInfinity, nil
		}

		return number.PositiveInfinity, nil
	case apd.NaN, apd.NaNSignaling:
		return number.Zero, ErrNaN
	}

	var c apd.BigInt
	c.Set(&d.Coeff)

	exp := int64(d.Exponent)

	if digits := d.NumDigits(); digits > coefficientDigits {
		shift := digits - coefficientDigits

		p := apd.NewBigInt(10)
		p.Exp(p, apd.NewBigInt(shift), nil)
		c.Quo(&c, p)

		exp += shift
	}

	v := c.Int64()
	if d.Negative {
		v = -v
	}

	return number.FromInt64(v).Shift(exp), nil
}

// ToShopspring returns n as a shopspring decimal. It returns ErrNotFinite
// for the infinities, which shopspring can't represent.
func ToShopspring(n number.Number) (decimal.Decimal, error) {
	if n.Form() != number.Finite {
		return decimal.Zero, ErrNotFinite
	}

	return decimal.New(int64(n.Mantissa()), n.Exponent()), nil
}

// FromShopspring returns d as a number.
func FromShopspring(d decimal.Decimal) number.Number {
	c := d.Coefficient()
	exp := int64(d.Exponent())

	if digits := int64(len(new(big.Int).Abs(c).Text(10))); digits > coefficientDigits {
		shift := digits - coefficientDigits

		p := new(big.Int).Exp(big.NewInt(10), big.NewInt(shift), nil)
		c.Quo(c, p)

		exp += shift
	}

	return number.FromInt64(c.Int64()).Shift(exp)
}
