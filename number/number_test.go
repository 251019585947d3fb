package number

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// requireNormal checks the normal form invariant.
func requireNormal(t *testing.T, n Number, msgAndArgs ...interface{}) {
	t.Helper()

	if n.form != Finite {
		require.Zero(t, n.mantissa, msgAndArgs...)
		require.Zero(t, n.exponent, msgAndArgs...)

		return
	}

	if n.mantissa == 0 {
		require.Equal(t, int32(zeroExponent), n.exponent, msgAndArgs...)

		return
	}

	m := magnitude(n.mantissa)
	if m < minMantissa || m >= maxMantissa {
		t.Logf("Number: %s", spew.Sdump(n))
	}
	require.GreaterOrEqual(t, m, uint32(minMantissa), msgAndArgs...)
	require.Less(t, m, uint32(maxMantissa), msgAndArgs...)
}

func TestNormalize(t *testing.T) {
	type TC struct {
		m        int64
		e        int32
		expected Number
		Mark     error
	}

	tcs := []TC{
		{
			m:        0,
			e:        5,
			expected: Number{},
			Mark:     oops.New("unexpected"),
		},
		{
			m:        1,
			e:        0,
			expected: Number{mantissa: 100_000_000, exponent: -8},
			Mark:     oops.New("unexpected"),
		},
		{
			m:        -1,
			e:        0,
			expected: Number{mantissa: -100_000_000, exponent: -8},
			Mark:     oops.New("unexpected"),
		},
		{
			m:        123,
			e:        2,
			expected: Number{mantissa: 123_000_000, exponent: -4},
			Mark:     oops.New("unexpected"),
		},
		{
			m:        1_000_000_000,
			e:        0,
			expected: Number{mantissa: 100_000_000, exponent: 1},
			Mark:     oops.New("unexpected"),
		},
		{
			m:        -1_987_654_321,
			e:        0,
			expected: Number{mantissa: -198_765_432, exponent: 1},
			Mark:     oops.New("unexpected"),
		},
		{
			m:        math.MaxInt64,
			e:        0,
			expected: Number{mantissa: 922_337_203, exponent: 10},
			Mark:     oops.New("unexpected"),
		},
		{
			m:        math.MinInt64,
			e:        0,
			expected: Number{mantissa: -922_337_203, exponent: 10},
			Mark:     oops.New("unexpected"),
		},
		{
			m:        1,
			e:        math.MaxInt32,
			expected: Number{mantissa: 100_000_000, exponent: math.MaxInt32 - 8},
			Mark:     oops.New("unexpected"),
		},
		{
			m:        1_000_000_000,
			e:        math.MaxInt32,
			expected: PositiveInfinity,
			Mark:     oops.New("unexpected"),
		},
		{
			m:        -1_000_000_000,
			e:        math.MaxInt32,
			expected: NegativeInfinity,
			Mark:     oops.New("unexpected"),
		},
		{
			m:        1,
			e:        math.MinInt32,
			expected: Zero,
			Mark:     oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%de%d", i, tc.m, tc.e), func(t *testing.T) {
			n := Normalize(tc.m, tc.e)
			require.Equal(t, tc.expected, n, tc.Mark)
			requireNormal(t, n, tc.Mark)

			// Normalizing a normalized number is a no-op.
			if n.form == Finite {
				require.Equal(t, n, Normalize(int64(n.mantissa), n.exponent), tc.Mark)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	type TC struct {
		a, b Number
	}

	tcs := []TC{
		{New(50000, 0), New(500, 2)},
		{FromFloat32(5e4), New(500, 2)},
		{New(-31400000, -7), New(-314, -2)},
		{FromInt64(1000), New(1, 3)},
		{FromInt64(1000), New(10, 2)},
		{Zero, New(0, 12)},
		{Zero, Number{}},
		{One, FromInt64(1)},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.a), func(t *testing.T) {
			require.True(t, tc.a == tc.b)
			require.True(t, tc.a.Equal(tc.b))
			require.True(t, tc.b.Equal(tc.a))
			require.Equal(t, 0, tc.a.Cmp(tc.b))
		})
	}

	t.Run("map key", func(t *testing.T) {
		m := map[Number]string{
			New(50000, 0): "fifty thousand",
		}
		require.Equal(t, "fifty thousand", m[New(5, 4)])
	})
}

func TestRecord(t *testing.T) {
	type TC struct {
		n    Number
		m, e int32
	}

	tcs := []TC{
		{Zero, 0, 0},
		{One, 100_000_000, -8},
		{New(-314, -2), -314_000_000, -8},
		{PositiveInfinity, 1, 0x7F80_0000},
		{NegativeInfinity, -1, 0x7F80_0000},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.n), func(t *testing.T) {
			m, e := tc.n.Record()
			require.Equal(t, tc.m, m)
			require.Equal(t, tc.e, e)
			require.Equal(t, tc.n, FromRecord(m, e))
		})
	}

	t.Run("unnormalized", func(t *testing.T) {
		require.Equal(t, New(5, 2), FromRecord(5, 2))
		require.Equal(t, Number{mantissa: 200_000_000, exponent: 0x7F80_0000 - 8}, FromRecord(2, 0x7F80_0000))
	})
}

func TestPredicates(t *testing.T) {
	require.True(t, Zero.IsZero())
	require.False(t, One.IsZero())
	require.False(t, PositiveInfinity.IsZero())

	require.True(t, PositiveInfinity.IsInf(1))
	require.True(t, PositiveInfinity.IsInf(0))
	require.False(t, PositiveInfinity.IsInf(-1))
	require.True(t, NegativeInfinity.IsInf(-1))
	require.False(t, One.IsInf(0))

	require.Equal(t, 1, One.Sign())
	require.Equal(t, -1, One.Neg().Sign())
	require.Equal(t, 0, Zero.Sign())
	require.Equal(t, 1, PositiveInfinity.Sign())
	require.Equal(t, -1, NegativeInfinity.Sign())

	require.Equal(t, FromInt64(7), FromInt64(-7).Abs())
	require.Equal(t, FromInt64(7), FromInt64(7).Abs())
	require.Equal(t, PositiveInfinity, NegativeInfinity.Abs())

	require.Equal(t, Finite, One.Form())
	require.Equal(t, "+inf", PositiveInfinity.Form().String())
	require.Equal(t, int32(100_000_000), One.Mantissa())
	require.Equal(t, int32(-8), One.Exponent())
}

func TestShift(t *testing.T) {
	require.Equal(t, FromInt64(1000), One.Shift(3))
	require.Equal(t, New(1, -3), One.Shift(-3))
	require.Equal(t, Zero, Zero.Shift(5))
	require.Equal(t, PositiveInfinity, One.Shift(math.MaxInt64))
	require.Equal(t, NegativeInfinity, One.Neg().Shift(math.MaxInt64))
	require.Equal(t, Zero, One.Shift(math.MinInt64))
	require.Equal(t, NegativeInfinity, NegativeInfinity.Shift(-5))
}
