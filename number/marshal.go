package number

import (
	"encoding"
	"encoding/binary"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ encoding.TextMarshaler     = Number{}
	_ encoding.TextUnmarshaler   = (*Number)(nil)
	_ encoding.BinaryMarshaler   = Number{}
	_ encoding.BinaryUnmarshaler = (*Number)(nil)
	_ json.Marshaler             = Number{}
	_ json.Unmarshaler           = (*Number)(nil)
	_ msgpack.CustomEncoder      = Number{}
	_ msgpack.CustomDecoder      = (*Number)(nil)
)

// recordSize is the size of the binary record: two big-endian int32s.
const recordSize = 8

// MarshalText implements encoding.TextMarshaler. The text is the scientific
// notation so that its length stays bounded for any exponent.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.Scientific()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Also see Parse.
func (n *Number) UnmarshalText(text []byte) (err error) {
	*n, err = Parse(string(text))

	return err
}

// MarshalJSON implements json.Marshaler. Numbers are encoded as JSON strings
// in scientific notation since their range exceeds that of JSON consumers.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Scientific())
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a JSON string or a
// JSON number. A JSON null leaves n unchanged.
func (n *Number) UnmarshalJSON(data []byte) (err error) {
	if string(data) == "null" {
		return nil
	}

	var text string

	if len(data) > 0 && data[0] == '"' {
		err = json.Unmarshal(data, &text)
		if err != nil {
			return Error.Wrap(err)
		}
	} else {
		var num json.Number

		err = json.Unmarshal(data, &num)
		if err != nil {
			return Error.Wrap(err)
		}

		text = num.String()
	}

	*n, err = Parse(text)

	return err
}

// MarshalBinary implements encoding.BinaryMarshaler. The data is the Record
// as two big-endian int32s.
func (n Number) MarshalBinary() ([]byte, error) {
	m, e := n.Record()

	data := make([]byte, recordSize)
	binary.BigEndian.PutUint32(data[0:4], uint32(m))
	binary.BigEndian.PutUint32(data[4:8], uint32(e))

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (n *Number) UnmarshalBinary(data []byte) error {
	if len(data) != recordSize {
		return Error.New("invalid binary length: %d", len(data))
	}

	*n = FromRecord(
		int32(binary.BigEndian.Uint32(data[0:4])),
		int32(binary.BigEndian.Uint32(data[4:8])),
	)

	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder. The Record is encoded as a
// two element array.
func (n Number) EncodeMsgpack(enc *msgpack.Encoder) (err error) {
	m, e := n.Record()

	err = enc.EncodeArrayLen(2)
	if err != nil {
		return err
	}

	err = enc.EncodeInt32(m)
	if err != nil {
		return err
	}

	return enc.EncodeInt32(e)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (n *Number) DecodeMsgpack(dec *msgpack.Decoder) (err error) {
	l, err := dec.DecodeArrayLen()
	if err != nil {
		return Error.Wrap(err)
	}

	if l != 2 {
		return Error.New("invalid msgpack array length: %d", l)
	}

	m, err := dec.DecodeInt32()
	if err != nil {
		return Error.Wrap(err)
	}

	e, err := dec.DecodeInt32()
	if err != nil {
		return Error.Wrap(err)
	}

	*n = FromRecord(m, e)

	return nil
}
