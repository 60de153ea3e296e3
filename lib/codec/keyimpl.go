package codec

import (
	"encoding/binary"
	"fmt"
)

// --------------------------------------------------------------------------
// String Keys
// --------------------------------------------------------------------------

// StringKeyCodec encodes string keys as their raw bytes. Byte-lexicographic
// order of the encoding equals the natural string order.
type StringKeyCodec struct {
}

func (c StringKeyCodec) EncodeKey(key string) []byte {
	return []byte(key)
}

func (c StringKeyCodec) DecodeKey(b []byte) (string, error) {
	return string(b), nil
}

// --------------------------------------------------------------------------
// Raw Byte Keys
// --------------------------------------------------------------------------

// BytesKeyCodec passes byte-slice keys through unchanged.
type BytesKeyCodec struct {
}

func (c BytesKeyCodec) EncodeKey(key []byte) []byte {
	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)
	return keyCopy
}

func (c BytesKeyCodec) DecodeKey(b []byte) ([]byte, error) {
	keyCopy := make([]byte, len(b))
	copy(keyCopy, b)
	return keyCopy, nil
}

// --------------------------------------------------------------------------
// Uint64 Keys
// --------------------------------------------------------------------------

// Uint64KeyCodec encodes uint64 keys as 8 bytes big-endian so that the
// byte-lexicographic order of the encodings equals the numeric order.
type Uint64KeyCodec struct {
}

func (c Uint64KeyCodec) EncodeKey(key uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, key)
	return b
}

func (c Uint64KeyCodec) DecodeKey(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("invalid uint64 key encoding: expected 8 bytes, got %d", len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}
