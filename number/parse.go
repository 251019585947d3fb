package number

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches [sign] digits [. digits] [e|E [sign] digits].
var numberPattern = regexp.MustCompile(`^([+-]?[0-9]+(?:\.[0-9]+)?)(?:[eE]([+-]?[0-9]+))?$`)

// FromString returns the number represented by s or Zero if s can't be
// parsed. It never fails; use Parse to detect malformed input.
func FromString(s string) Number {
	n, _ := Parse(s)

	return n
}

// Parse returns the number represented by s.
//
// The accepted syntax is:
//
//	[+|-] digits [. digits] [(e|E) [+|-] digits]
//
// The digits are read directly, so any number String or Scientific produces
// parses back to the same value, however large its exponent. Digits beyond
// the ninth significant one are truncated. Anything else that strconv can
// parse as a float64 (e.g. ".5", "Inf") is accepted as well. Surrounding
// white space is ignored.
func Parse(s string) (Number, error) {
	s = strings.TrimSpace(s)

	if m := numberPattern.FindStringSubmatch(s); m != nil {
		return parseParts(m[1], m[2]), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Zero, Error.New("invalid syntax: %q", s)
	}

	return FromFloat64(f), nil
}

// MustParse is like Parse but panics if s can't be parsed.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}

// parseDigits is how many significant digits are accumulated before the
// rest are only counted. It is the most that fit an int64.
const parseDigits = 18

// parseParts builds a number from a mantissa matching [+-]digits[.digits]
// and an optional exponent matching [+-]digits.
func parseParts(mantissa, exponent string) Number {
	negative := false

	switch mantissa[0] {
	case '-':
		negative = true
		mantissa = mantissa[1:]
	case '+':
		mantissa = mantissa[1:]
	}

	var (
		m        int64
		kept     int
		dropped  int64
		frac     int64
		fraction bool
	)

	for i := 0; i < len(mantissa); i++ {
		c := mantissa[i]
		if c == '.' {
			fraction = true

			continue
		}

		if kept >= parseDigits {
			if !fraction {
				dropped++
			}

			continue
		}

		m = m*10 + int64(c-'0')
		if m != 0 {
			kept++
		}

		if fraction {
			frac++
		}
	}

	var exp int64

	if exponent != "" {
		// On overflow ParseInt returns the extreme value of the right
		// sign, which the clamp below saturates.
		exp, _ = strconv.ParseInt(exponent, 10, 64)
	}

	switch {
	case exp > maxShift:
		exp = maxShift
	case exp < -maxShift:
		exp = -maxShift
	}

	if negative {
		m = -m
	}

	return normalize(m, exp-frac+dropped)
}
