package decimal

import (
	"errors"
	"io"

	"github.com/calebcase/norify/number"
	"github.com/calebcase/oops"
)

// Encoder writes decimal records to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes the record of n to the stream.
func (e *Encoder) Encode(n number.Number) (err error) {
	defer Error.WrapP(&err)

	data, err := FromNumber(n).MarshalBinary()
	if err != nil {
		return err
	}

	_, err = e.w.Write(data)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

// Decoder reads decimal records from an input stream.
type Decoder struct {
	r io.Reader

	buf [1 + 2*maxSize]byte
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder reads exactly the bytes of each record, so r may be shared
// with other readers between calls.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Decode reads the next record from the stream into n.
//
// At the end of the stream Decode returns io.EOF unwrapped. A record cut
// short returns an error matching io.ErrUnexpectedEOF.
func (d *Decoder) Decode(n *number.Number) (err error) {
	_, err = io.ReadFull(d.r, d.buf[:1])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}

		return Error.Wrap(oops.Trace(err))
	}

	valueSize, scaleSize, _, err := header(d.buf[0])
	if err != nil {
		return err
	}

	data := d.buf[:1+valueSize+scaleSize]

	_, err = io.ReadFull(d.r, data[1:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Error.Wrap(io.ErrUnexpectedEOF)
		}

		return Error.Wrap(oops.Trace(err))
	}

	blk := Block{}

	err = blk.UnmarshalBinary(data)
	if err != nil {
		return err
	}

	v, err := blk.Number()
	if err != nil {
		return err
	}

	*n = v

	return nil
}
