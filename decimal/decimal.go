package decimal

import (
	"github.com/calebcase/norify/integer"
	"github.com/calebcase/norify/number"
)

// Header layout.
const (
	formMask = 0b0000_0011

	valueShift = 5
	scaleShift = 2
	sizeMask   = 0b0000_0111

	// maxSize is the longest payload a three bit length can describe.
	maxSize = sizeMask
)

// Form bits.
const (
	formFinite           = 0b00
	formPositiveInfinite = 0b01
	formNegativeInfinite = 0b10
)

// Block is a decimal number in its record form.
type Block struct {
	Form  number.Form
	Value integer.Block
	Scale integer.Block
}

// FromNumber returns the record of n.
func FromNumber(n number.Number) Block {
	if n.Form() != number.Finite {
		return Block{Form: n.Form()}
	}

	return Block{
		Form:  number.Finite,
		Value: integer.FromInt64(int64(n.Mantissa())),
		Scale: integer.FromInt64(int64(n.Exponent())),
	}
}

// Number returns the number the block records. Blocks that weren't produced
// by FromNumber are normalized.
func (b Block) Number() (n number.Number, err error) {
	defer Error.WrapP(&err)

	switch b.Form {
	case number.PositiveInfinite:
		return number.PositiveInfinity, nil
	case number.NegativeInfinite:
		return number.NegativeInfinity, nil
	case number.Finite:
	default:
		return number.Zero, Error.New("invalid form: %d", b.Form)
	}

	m, err := b.Value.Int64()
	if err != nil {
		return number.Zero, err
	}

	e, err := b.Scale.Int32()
	if err != nil {
		return number.Zero, err
	}

	return number.Normalize(m, e), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	switch b.Form {
	case number.PositiveInfinite:
		return []byte{formPositiveInfinite}, nil
	case number.NegativeInfinite:
		return []byte{formNegativeInfinite}, nil
	case number.Finite:
	default:
		return nil, Error.New("invalid form: %d", b.Form)
	}

	value, err := payload(b.Value)
	if err != nil {
		return nil, err
	}

	scale, err := payload(b.Scale)
	if err != nil {
		return nil, err
	}

	data = make([]byte, 0, 1+len(value)+len(scale))
	data = append(data, byte(len(value))<<valueShift|byte(len(scale))<<scaleShift|formFinite)
	data = append(data, value...)
	data = append(data, scale...)

	return data, nil
}

// payload returns the encoded integer. Zero has no payload.
func payload(b integer.Block) (data []byte, err error) {
	if b.IsZero() {
		return nil, nil
	}

	data, err = b.MarshalBinary()
	if err != nil {
		return nil, err
	}

	if len(data) > maxSize {
		return nil, Error.New("too large: %d bytes", len(data))
	}

	return data, nil
}

// header splits a header byte into its payload sizes and form.
func header(h byte) (valueSize, scaleSize int, form number.Form, err error) {
	valueSize = int(h>>valueShift) & sizeMask
	scaleSize = int(h>>scaleShift) & sizeMask

	switch h & formMask {
	case formFinite:
		form = number.Finite
	case formPositiveInfinite:
		form = number.PositiveInfinite
	case formNegativeInfinite:
		form = number.NegativeInfinite
	default:
		return 0, 0, 0, Error.New("invalid header: %08b", h)
	}

	if form != number.Finite && (valueSize != 0 || scaleSize != 0) {
		return 0, 0, 0, Error.New("invalid header: %08b", h)
	}

	return valueSize, scaleSize, form, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return Error.New("empty")
	}

	valueSize, scaleSize, form, err := header(data[0])
	if err != nil {
		return err
	}

	if len(data) != 1+valueSize+scaleSize {
		return Error.New("invalid length: %d (expected %d)", len(data), 1+valueSize+scaleSize)
	}

	blk := Block{Form: form}

	if valueSize > 0 {
		err = blk.Value.UnmarshalBinary(data[1 : 1+valueSize])
		if err != nil {
			return err
		}
	}

	if scaleSize > 0 {
		err = blk.Scale.UnmarshalBinary(data[1+valueSize:])
		if err != nil {
			return err
		}
	}

	*b = blk

	return nil
}
