// Package codec defines the serialization boundary between typed keys and
// values and the raw byte strings the storage engines operate on.
//
// Two capabilities are distinguished:
//
//   - IValueCodec maps values to bytes and back. Any reversible encoding
//     works; the package ships a JSON codec (human-readable, schema-free),
//     a gob codec (compact, Go-native) and fixed-width big-endian codecs
//     for counter values.
//
//   - IKeyCodec maps keys to bytes with the additional contract that
//     byte-lexicographic order of the encodings must match the logical order
//     of the keys. This is what makes range scans over encoded keys correct.
//     The shipped implementations (string, raw bytes, big-endian uint64) all
//     preserve order; custom key types must take the same care — in
//     particular, little-endian or variable-width integer encodings break
//     the contract silently.
//
// Deserialization failures are returned as plain errors here; the typed map
// layer in lib/kv translates them into its ParseError code.
package codec
