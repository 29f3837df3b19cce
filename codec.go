package imei

import (
	"database/sql/driver"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Every decode hook below routes through New so that no serialized form can
// produce an IMEI that skipped validation. Encode hooks emit the plain digit
// string with no framing of their own.

// MarshalText implements encoding.TextMarshaler. encoding/json picks this up
// too, so an IMEI serializes as a JSON string of its digits.
func (i IMEI) MarshalText() ([]byte, error) {
	return []byte(i.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *IMEI) UnmarshalText(text []byte) error {
	v, err := New(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (i IMEI) MarshalYAML() (any, error) {
	return i.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *IMEI) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := New(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (i IMEI) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(i.value)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (i *IMEI) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v, err := New(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// Value implements driver.Valuer for storing an IMEI in a text column.
func (i IMEI) Value() (driver.Value, error) {
	return i.value, nil
}

// Scan implements sql.Scanner. It accepts string and []byte column values and
// re-validates them; anything else cannot hold a valid IMEI.
func (i *IMEI) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return i.UnmarshalText([]byte(v))
	case []byte:
		return i.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into IMEI: %w", src, ErrInvalidIMEI)
	}
}
