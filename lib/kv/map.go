package kv

import (
	"fmt"

	"github.com/ValentinKolb/sKV/lib/codec"
	"github.com/ValentinKolb/sKV/lib/kv/keys"
	"github.com/ValentinKolb/sKV/lib/storage"
)

// Map is a typed key-value table over a byte-keyed storage engine. It is a
// stateless facade: it holds only its namespace prefix and codecs, all data
// lives in the storage engine, which is passed to every operation. A Map may
// therefore be constructed repeatedly (and cheaply) without side effects.
//
// Concurrency: the Map itself is safe for concurrent use since it is
// immutable after construction; serialization of the calls against a single
// logical storage engine is the caller's responsibility.
type Map[K any, T any] struct {
	prefix []byte
	keys   codec.IKeyCodec[K]
	values codec.IValueCodec[T]
}

// NewMap creates a typed map bound to the given namespace. Distinct
// namespaces on the same storage engine are fully isolated from each other.
func NewMap[K any, T any](namespace string, keyCodec codec.IKeyCodec[K], valueCodec codec.IValueCodec[T]) Map[K, T] {
	return Map[K, T]{
		prefix: keys.Prefix([]byte(namespace)),
		keys:   keyCodec,
		values: valueCodec,
	}
}

// storageKey builds the raw byte key for a logical key.
func (m Map[K, T]) storageKey(key K) []byte {
	return keys.Join(m.prefix, m.keys.EncodeKey(key))
}

// --------------------------------------------------------------------------
// Write Operations
// --------------------------------------------------------------------------

// Save inserts or updates the value stored under key.
func (m Map[K, T]) Save(s storage.IStorage, key K, value T) error {
	b, err := m.values.Serialize(value)
	if err != nil {
		return NewError(RetCInternalError, fmt.Sprintf("failed to serialize value: %v", err))
	}
	return s.Set(m.storageKey(key), b)
}

// Remove deletes the entry stored under key. Removing an absent key is not
// an error.
func (m Map[K, T]) Remove(s storage.IStorage, key K) error {
	return s.Delete(m.storageKey(key))
}

// --------------------------------------------------------------------------
// Read Operations
// --------------------------------------------------------------------------

// Load returns the value stored under key. It fails with a NotFound error if
// no value is stored, and with a ParseError if the stored bytes do not
// decode.
func (m Map[K, T]) Load(s storage.IStorage, key K) (T, error) {
	var zero T
	value, err := m.MayLoad(s, key)
	if err != nil {
		return zero, err
	}
	if value == nil {
		return zero, NewError(RetCNotFound, "no value stored under key")
	}
	return *value, nil
}

// MayLoad returns the value stored under key, or nil if no value is stored.
// It still fails with a ParseError if stored bytes do not decode.
func (m Map[K, T]) MayLoad(s storage.IStorage, key K) (*T, error) {
	b, found, err := s.Get(m.storageKey(key))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var value T
	if err := m.values.Deserialize(b, &value); err != nil {
		return nil, NewError(RetCParseError, fmt.Sprintf("failed to deserialize value: %v", err))
	}
	return &value, nil
}

// Has reports whether a value is stored under key without decoding it.
func (m Map[K, T]) Has(s storage.IStorage, key K) (bool, error) {
	_, found, err := s.Get(m.storageKey(key))
	return found, err
}

// --------------------------------------------------------------------------
// Update Operation
// --------------------------------------------------------------------------

// Update loads the value stored under key, applies action and saves the
// result. action receives the current value, or nil if no value is stored,
// and is invoked synchronously in the same call stack. If action returns an
// error, nothing is written and the error is returned to the caller
// unchanged.
func (m Map[K, T]) Update(s storage.IStorage, key K, action func(old *T) (T, error)) (T, error) {
	var zero T

	input, err := m.MayLoad(s, key)
	if err != nil {
		return zero, err
	}

	output, err := action(input)
	if err != nil {
		return zero, err
	}

	if err := m.Save(s, key, output); err != nil {
		return zero, err
	}
	return output, nil
}
