package codec

import "encoding/json"

// NewJSONCodec creates a new value codec using json encoding
func NewJSONCodec[T any]() IValueCodec[T] {
	return jsonCodecImpl[T]{}
}

// jsonCodecImpl implements the IValueCodec interface using json encoding
type jsonCodecImpl[T any] struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.IValueCodec)
// --------------------------------------------------------------------------

func (j jsonCodecImpl[T]) Serialize(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (j jsonCodecImpl[T]) Deserialize(b []byte, value *T) error {
	return json.Unmarshal(b, value)
}
