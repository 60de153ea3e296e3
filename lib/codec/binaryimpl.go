package codec

import (
	"encoding/binary"
	"fmt"
)

// NewUint32Codec creates a fixed-width value codec for uint32 counters.
// Values are encoded as 4 bytes big-endian.
func NewUint32Codec() IValueCodec[uint32] {
	return uint32CodecImpl{}
}

// uint32CodecImpl implements the IValueCodec interface with a fixed-width
// big-endian encoding
type uint32CodecImpl struct {
}

func (c uint32CodecImpl) Serialize(value uint32) ([]byte, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, value)
	return b, nil
}

func (c uint32CodecImpl) Deserialize(b []byte, value *uint32) error {
	if len(b) != 4 {
		return fmt.Errorf("invalid uint32 encoding: expected 4 bytes, got %d", len(b))
	}
	*value = binary.BigEndian.Uint32(b)
	return nil
}

// NewUint64Codec creates a fixed-width value codec for uint64 values.
// Values are encoded as 8 bytes big-endian.
func NewUint64Codec() IValueCodec[uint64] {
	return uint64CodecImpl{}
}

// uint64CodecImpl implements the IValueCodec interface with a fixed-width
// big-endian encoding
type uint64CodecImpl struct {
}

func (c uint64CodecImpl) Serialize(value uint64) ([]byte, error) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, value)
	return b, nil
}

func (c uint64CodecImpl) Deserialize(b []byte, value *uint64) error {
	if len(b) != 8 {
		return fmt.Errorf("invalid uint64 encoding: expected 8 bytes, got %d", len(b))
	}
	*value = binary.BigEndian.Uint64(b)
	return nil
}
