package integer

import (
	"math"
	"math/big"
)

// maxBits is the widest magnitude a Block holds.
const maxBits = 64

// Block is a signed integer stored as a magnitude and a sign.
type Block struct {
	Value    uint64
	Negative bool
}

// FromInt64 returns v as a block.
func FromInt64(v int64) Block {
	if v < 0 {
		return Block{
			Value:    uint64(-(v + 1)) + 1,
			Negative: true,
		}
	}

	return Block{
		Value: uint64(v),
	}
}

// IsZero reports whether the block holds zero (of either sign).
func (b Block) IsZero() bool {
	return b.Value == 0
}

// Int64 returns the block as an int64. It returns ErrRange if the value
// doesn't fit.
func (b Block) Int64() (int64, error) {
	switch {
	case b.Value == 0:
		return 0, nil
	case b.Negative && b.Value <= 1<<63:
		return -int64(b.Value-1) - 1, nil
	case !b.Negative && b.Value <= math.MaxInt64:
		return int64(b.Value), nil
	}

	return 0, ErrRange
}

// Int32 returns the block as an int32. It returns ErrRange if the value
// doesn't fit.
func (b Block) Int32() (int32, error) {
	v, err := b.Int64()
	if err != nil {
		return 0, err
	}

	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, ErrRange
	}

	return int32(v), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The magnitude is shifted left one bit and the sign is stored in the low
// bit (aka zigzag), then written big-endian in as few bytes as possible.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetUint64(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return Error.New("empty")
	}

	i := new(big.Int).SetBytes(data)

	negative := i.Bit(0) == 1
	i.Rsh(i, 1)

	if i.BitLen() > maxBits {
		return Error.New("too large: %d bits", i.BitLen())
	}

	b.Value = i.Uint64()
	b.Negative = negative

	return nil
}
