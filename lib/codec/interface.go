package codec

// IValueCodec is the interface for all value codecs. A value codec maps a
// typed value to an opaque byte string and back.
type IValueCodec[T any] interface {
	// Serialize serializes a value into a byte array
	// It returns the serialized byte array and an error if any
	Serialize(value T) ([]byte, error)
	// Deserialize deserializes a byte array into a value
	// It takes a byte array and a pointer to a value as parameters
	// It returns an error if any
	Deserialize(b []byte, value *T) error
}

// IKeyCodec is the interface for all key codecs. A key codec maps a typed key
// to a byte string whose byte-lexicographic order matches the logical order
// of the keys. This ordering property is what makes range scans over encoded
// keys behave correctly; implementations must preserve it.
type IKeyCodec[K any] interface {
	// EncodeKey encodes a key into an order-preserving byte array
	EncodeKey(key K) []byte
	// DecodeKey decodes a byte array back into a key
	// It returns an error if the bytes do not form a valid key
	DecodeKey(b []byte) (K, error)
}
