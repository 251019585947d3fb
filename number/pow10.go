package number

import "strconv"

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]int64{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// Decimal orders of magnitude that floats can hold. Below the minimum a
// value rounds to zero.
const (
	float64ExpMax = 308
	float64ExpMin = -324

	float32ExpMax = 38
	float32ExpMin = -46

	// scaleLimit is a power of 10 past which no finite nonzero float64
	// survives scaling.
	scaleLimit = 700
)

// float64Pow10 is a cache of float powers of 10, where float64Pow10[x] =
// 10^x. Entries are parsed rather than multiplied so each one is the
// correctly rounded value.
var float64Pow10 = func() (p [float64ExpMax + 1]float64) {
	for i := range p {
		p[i], _ = strconv.ParseFloat("1e"+strconv.Itoa(i), 64)
	}

	return p
}()

// scale10 returns v * 10^p. Powers beyond the float64 range are applied in
// steps so that intermediate values stay finite whenever the result is.
func scale10(v float64, p int) float64 {
	switch {
	case p > scaleLimit:
		p = scaleLimit
	case p < -scaleLimit:
		p = -scaleLimit
	}

	for p > 300 {
		v *= float64Pow10[300]
		p -= 300
	}

	for p < -300 {
		v /= float64Pow10[300]
		p += 300
	}

	if p < 0 {
		return v / float64Pow10[-p]
	}

	return v * float64Pow10[p]
}
