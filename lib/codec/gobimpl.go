package codec

import (
	"bytes"
	"encoding/gob"
)

// NewGOBCodec creates a new value codec using Go's binary gob format
func NewGOBCodec[T any]() IValueCodec[T] {
	return gobCodecImpl[T]{}
}

// gobCodecImpl implements the IValueCodec interface using gob encoding
type gobCodecImpl[T any] struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.IValueCodec)
// --------------------------------------------------------------------------

func (g gobCodecImpl[T]) Serialize(value T) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g gobCodecImpl[T]) Deserialize(b []byte, value *T) error {
	buf := bytes.NewBuffer(b)
	dec := gob.NewDecoder(buf)
	return dec.Decode(value)
}
