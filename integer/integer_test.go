package integer

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		blk  Block
		data []byte
		Mark error
	}

	tcs := []TC{
		{
			name: "+0",
			blk: Block{
				Value:    0,
				Negative: false,
			},
			data: []byte{
				0b0000_0000,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "+1",
			blk: Block{
				Value:    1,
				Negative: false,
			},
			data: []byte{
				0b0000_0010,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "-1",
			blk: Block{
				Value:    1,
				Negative: true,
			},
			data: []byte{
				0b0000_0011,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "-127",
			blk: Block{
				Value:    127,
				Negative: true,
			},
			data: []byte{
				0b1111_1111,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "+127",
			blk: Block{
				Value:    127,
				Negative: false,
			},
			data: []byte{
				0b1111_1110,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "+128",
			blk: Block{
				Value:    128,
				Negative: false,
			},
			data: []byte{
				0b0000_0001,
				0b0000_0000,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "+32767",
			blk: Block{
				Value:    32767,
				Negative: false,
			},
			data: []byte{
				0b1111_1111,
				0b1111_1110,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "-200000000",
			blk: Block{
				Value:    200_000_000,
				Negative: true,
			},
			data: []byte{
				0x17,
				0xD7,
				0x84,
				0x01,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name: "+18446744073709551615",
			blk: Block{
				Value:    math.MaxUint64,
				Negative: false,
			},
			data: []byte{
				0b0000_0001,
				0b1111_1111,
				0b1111_1111,
				0b1111_1111,
				0b1111_1111,
				0b1111_1111,
				0b1111_1111,
				0b1111_1111,
				0b1111_1110,
			},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				data, err := tc.blk.MarshalBinary()
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.data, data, tc.Mark)
			})

			t.Run("unmarshal", func(t *testing.T) {
				blk := Block{}
				err := blk.UnmarshalBinary(tc.data)
				require.NoError(t, err, tc.Mark)

				if blk != tc.blk {
					t.Logf("Block: %s", spew.Sdump(blk))
				}
				require.Equal(t, tc.blk, blk, tc.Mark)

				// These checks ensure that our test case name matches the value.
				i := new(big.Int)
				err = i.UnmarshalText([]byte(tc.name))
				require.NoError(t, err, tc.Mark)

				require.True(t, i.IsUint64() || i.Sign() < 0, tc.Mark)
				require.Equal(t, new(big.Int).Abs(i).Uint64(), blk.Value, tc.Mark)
				require.Equal(t, i.Sign() < 0, blk.Negative, tc.Mark)
			})
		})
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	type TC struct {
		name string
		data []byte
	}

	tcs := []TC{
		{
			name: "empty",
			data: nil,
		},
		{
			name: "65 bits",
			data: []byte{
				0b0000_0010,
				0b0000_0000,
				0b0000_0000,
				0b0000_0000,
				0b0000_0000,
				0b0000_0000,
				0b0000_0000,
				0b0000_0000,
				0b0000_0000,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			blk := Block{Value: 7}
			err := blk.UnmarshalBinary(tc.data)
			require.Error(t, err)
			require.True(t, Error.Has(err))

			// The block is left untouched.
			require.Equal(t, Block{Value: 7}, blk)
		})
	}
}

func TestInt64(t *testing.T) {
	vs := []int64{
		0,
		1,
		-1,
		127,
		-128,
		math.MaxInt32,
		math.MinInt32,
		math.MaxInt64,
		math.MinInt64,
	}

	for i, v := range vs {
		t.Run(fmt.Sprintf("[%d]%d", i, v), func(t *testing.T) {
			blk := FromInt64(v)
			require.Equal(t, v < 0, blk.Negative)

			actual, err := blk.Int64()
			require.NoError(t, err)
			require.Equal(t, v, actual)

			data, err := blk.MarshalBinary()
			require.NoError(t, err)

			var decoded Block
			require.NoError(t, decoded.UnmarshalBinary(data))
			require.Equal(t, blk, decoded)
		})
	}

	t.Run("range", func(t *testing.T) {
		_, err := Block{Value: 1 << 63}.Int64()
		require.ErrorIs(t, err, ErrRange)

		v, err := Block{Value: 1 << 63, Negative: true}.Int64()
		require.NoError(t, err)
		require.Equal(t, int64(math.MinInt64), v)

		_, err = Block{Value: 1<<63 + 1, Negative: true}.Int64()
		require.ErrorIs(t, err, ErrRange)

		v, err = Block{Negative: true}.Int64()
		require.NoError(t, err)
		require.Zero(t, v)
	})
}

func TestInt32(t *testing.T) {
	v, err := FromInt64(math.MinInt32).Int32()
	require.NoError(t, err)
	require.Equal(t, int32(math.MinInt32), v)

	v, err = FromInt64(-8).Int32()
	require.NoError(t, err)
	require.Equal(t, int32(-8), v)

	_, err = FromInt64(math.MaxInt32 + 1).Int32()
	require.ErrorIs(t, err, ErrRange)

	_, err = FromInt64(math.MinInt32 - 1).Int32()
	require.ErrorIs(t, err, ErrRange)

	_, err = Block{Value: math.MaxUint64}.Int32()
	require.ErrorIs(t, err, ErrRange)
}
