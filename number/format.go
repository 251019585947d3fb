package number

import (
	"fmt"
	"io"
	"strconv"
)

// String implements the fmt.Stringer interface and returns the number in
// plain decimal notation:
//
//	12.5
//	-0.0000000123
//	400000000000000000000
//
// Trailing fractional zeros are dropped and a decimal point only appears
// when there is a fractional digit to show. Infinities are rendered as +Inf
// and -Inf.
//
// The text grows with the magnitude of the exponent. Use Scientific for
// numbers that may be very large or very small.
func (n Number) String() string {
	switch n.form {
	case PositiveInfinite:
		return "+Inf"
	case NegativeInfinite:
		return "-Inf"
	}

	if n.exponent >= 0 {
		buf := make([]byte, 0, Digits+2+int(n.exponent))
		buf = strconv.AppendInt(buf, int64(n.mantissa), 10)
		for i := int32(0); i < n.exponent; i++ {
			buf = append(buf, '0')
		}

		return string(buf)
	}

	frac := -int64(n.exponent)

	var (
		buf  = make([]byte, frac+Digits+3)
		pos  = len(buf)
		t    = magnitude(n.mantissa)
		kept = false
	)

	// Fractional digits, least significant first. Zeros are skipped until
	// the first non-zero digit is kept.
	for i := int64(0); i < frac; i++ {
		r := t % 10
		if kept || r != 0 {
			kept = true
			pos--
			buf[pos] = byte(r) + '0'
		}
		t /= 10
	}

	if kept {
		pos--
		buf[pos] = '.'
	}

	// Integer digits
	if t == 0 {
		pos--
		buf[pos] = '0'
	}
	for ; t > 0; t /= 10 {
		pos--
		buf[pos] = byte(t%10) + '0'
	}

	if n.mantissa < 0 {
		pos--
		buf[pos] = '-'
	}

	return string(buf[pos:])
}

// Scientific returns the number in scientific notation:
//
//	1.25e1
//	-1.23e-8
//	5
//
// The exponent is omitted when it is zero.
func (n Number) Scientific() string {
	return n.scientific('e')
}

func (n Number) scientific(marker byte) string {
	switch n.form {
	case PositiveInfinite:
		return "+Inf"
	case NegativeInfinite:
		return "-Inf"
	}

	var (
		frac [Digits]byte
		pos  = len(frac)
		t    = magnitude(n.mantissa)
		kept = false
		exp  = int64(n.exponent)
	)

	for ; t >= 10; t /= 10 {
		r := t % 10
		if kept || r != 0 {
			kept = true
			pos--
			frac[pos] = byte(r) + '0'
		}
		exp++
	}

	buf := make([]byte, 0, 2*Digits+4)
	if n.mantissa < 0 {
		buf = append(buf, '-')
	}
	buf = append(buf, byte(t)+'0')

	if kept {
		buf = append(buf, '.')
		buf = append(buf, frac[pos:]...)
	}

	if exp != 0 {
		buf = append(buf, marker)
		buf = strconv.AppendInt(buf, exp, 10)
	}

	return string(buf)
}

func magnitude(mantissa int32) uint32 {
	if mantissa < 0 {
		return uint32(-int64(mantissa))
	}

	return uint32(mantissa)
}

// Format implements the fmt.Formatter interface. The following verbs are
// available:
//
//	%s, %v: 12.5
//	%e:     1.25e1
//	%E:     1.25E1
//	%q:     "12.5"
func (n Number) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		io.WriteString(state, n.String())
	case 'e', 'E':
		io.WriteString(state, n.scientific(byte(verb)))
	case 'q':
		io.WriteString(state, strconv.Quote(n.String()))
	default:
		fmt.Fprintf(state, "%%!%c(number.Number=%s)", verb, n.String())
	}
}

// Text returns the number rendered according to tag.
//
// The formatters are consulted in order and the first one to handle the
// request wins. Otherwise tag "e" (or "E") selects Scientific and any other
// tag selects String.
func (n Number) Text(tag string, formatters ...Formatter) string {
	if s, ok := Formatters(formatters).Format(n, tag); ok {
		return s
	}

	switch tag {
	case "e":
		return n.scientific('e')
	case "E":
		return n.scientific('E')
	}

	return n.String()
}

// Formatter renders numbers for Text. It returns false when it doesn't
// handle the number or tag.
type Formatter interface {
	Format(n Number, tag string) (s string, ok bool)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(n Number, tag string) (s string, ok bool)

// Format calls f(n, tag).
func (f FormatterFunc) Format(n Number, tag string) (string, bool) {
	return f(n, tag)
}

// Formatters is an ordered registry of formatters. It is itself a
// Formatter.
type Formatters []Formatter

// Format returns the result of the first formatter that handles n and tag.
func (fs Formatters) Format(n Number, tag string) (string, bool) {
	for _, f := range fs {
		if f == nil {
			continue
		}

		if s, ok := f.Format(n, tag); ok {
			return s, true
		}
	}

	return "", false
}

// ScientificFormatter renders every number in scientific notation
// regardless of tag.
var ScientificFormatter Formatter = FormatterFunc(func(n Number, _ string) (string, bool) {
	return n.Scientific(), true
})

// ScientificAbove returns a formatter that renders numbers in scientific
// notation once the magnitude of their decimal order (the exponent of the
// leading digit) reaches order. Smaller numbers are left to the next
// formatter.
func ScientificAbove(order int64) Formatter {
	return FormatterFunc(func(n Number, _ string) (string, bool) {
		if n.form != Finite {
			return n.Scientific(), true
		}

		if n.mantissa == 0 {
			return "", false
		}

		o := int64(n.exponent) + Digits - 1
		if o < 0 {
			o = -o
		}

		if o < order {
			return "", false
		}

		return n.Scientific(), true
	})
}
