package keys

import "encoding/binary"

// maxNamespaceLen is the largest namespace the 2-byte length header can hold.
const maxNamespaceLen = 1<<16 - 1

// Prefix builds the storage prefix for a namespace: a 2-byte big-endian
// length header followed by the namespace bytes.
//
// The length header is what keeps regions derived from one base name
// disjoint. Without it, a primary-table key "__changelogX" under namespace
// "snap" would produce the same bytes as changelog namespace
// "snap__changelog" followed by key "X". With the header the two encodings
// differ in their first two bytes already.
//
// Panics if the namespace exceeds 64KiB; namespaces are compile-time
// constants in practice.
func Prefix(namespace []byte) []byte {
	if len(namespace) > maxNamespaceLen {
		panic("keys: namespace exceeds maximum length")
	}
	out := make([]byte, 2+len(namespace))
	binary.BigEndian.PutUint16(out, uint16(len(namespace)))
	copy(out[2:], namespace)
	return out
}

// Join appends a terminal (unprefixed) key to a namespace prefix. Used for
// single-component keys where nothing sorts after the key within the region.
func Join(prefix, key []byte) []byte {
	out := make([]byte, 0, len(prefix)+len(key))
	out = append(out, prefix...)
	out = append(out, key...)
	return out
}

// CompositePrefix appends a non-terminal key component to a namespace
// prefix: a 2-byte big-endian length header followed by the key bytes. The
// header makes entries of different keys occupy disjoint byte ranges even
// when one key is a strict prefix of another, so a scan bounded to one key's
// range never leaks entries of a longer key.
func CompositePrefix(prefix, key []byte) []byte {
	if len(key) > maxNamespaceLen {
		panic("keys: key component exceeds maximum length")
	}
	out := make([]byte, 0, len(prefix)+2+len(key))
	out = append(out, prefix...)
	out = binary.BigEndian.AppendUint16(out, uint16(len(key)))
	out = append(out, key...)
	return out
}

// Composite builds the full changelog entry key: the composite prefix of
// (namespace, key) followed by the height as 8 bytes big-endian. Entries
// therefore sort primarily by key and secondarily by numeric height.
func Composite(prefix, key []byte, height uint64) []byte {
	out := CompositePrefix(prefix, key)
	return binary.BigEndian.AppendUint64(out, height)
}

// CompositeHeight extracts the height from a key built by Composite.
// The second return value is false if the key is too short to carry one.
func CompositeHeight(compositeKey []byte) (uint64, bool) {
	if len(compositeKey) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(compositeKey[len(compositeKey)-8:]), true
}

// PrefixEnd returns the smallest byte string that is greater than every
// string starting with p, for use as an exclusive scan upper bound. Returns
// nil (unbounded) if p is empty or consists only of 0xff bytes.
func PrefixEnd(p []byte) []byte {
	out := make([]byte, len(p))
	copy(out, p)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] != 0xff {
			out[i]++
			return out[:i+1]
		}
	}
	return nil
}
