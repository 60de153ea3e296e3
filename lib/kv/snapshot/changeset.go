package snapshot

import (
	"fmt"

	"github.com/ValentinKolb/sKV/lib/codec"
	"github.com/ValentinKolb/sKV/lib/kv"
)

// ChangeSet records the value that existed immediately before a write. A nil
// Old means the key held no value before the write; this is distinct from
// "no changelog entry exists at all".
type ChangeSet[T any] struct {
	Old *T
}

// encoding flags for the presence byte
const (
	changeSetAbsent  byte = 0x00
	changeSetPresent byte = 0x01
)

// encodeChangeSet frames a ChangeSet as one presence byte optionally
// followed by the value-codec bytes of the old value.
func encodeChangeSet[T any](values codec.IValueCodec[T], cs ChangeSet[T]) ([]byte, error) {
	if cs.Old == nil {
		return []byte{changeSetAbsent}, nil
	}
	b, err := values.Serialize(*cs.Old)
	if err != nil {
		return nil, kv.NewError(kv.RetCInternalError,
			fmt.Sprintf("failed to serialize changelog value: %v", err))
	}
	out := make([]byte, 0, 1+len(b))
	out = append(out, changeSetPresent)
	out = append(out, b...)
	return out, nil
}

// decodeChangeSet is the inverse of encodeChangeSet. Malformed framing and
// undecodable value bytes both surface as ParseError.
func decodeChangeSet[T any](values codec.IValueCodec[T], b []byte) (ChangeSet[T], error) {
	if len(b) == 0 {
		return ChangeSet[T]{}, kv.NewError(kv.RetCParseError, "empty changelog entry")
	}
	switch b[0] {
	case changeSetAbsent:
		if len(b) != 1 {
			return ChangeSet[T]{}, kv.NewError(kv.RetCParseError,
				"trailing bytes after absent marker in changelog entry")
		}
		return ChangeSet[T]{}, nil
	case changeSetPresent:
		var value T
		if err := values.Deserialize(b[1:], &value); err != nil {
			return ChangeSet[T]{}, kv.NewError(kv.RetCParseError,
				fmt.Sprintf("failed to deserialize changelog value: %v", err))
		}
		return ChangeSet[T]{Old: &value}, nil
	default:
		return ChangeSet[T]{}, kv.NewError(kv.RetCParseError,
			fmt.Sprintf("unknown changelog presence flag 0x%02x", b[0]))
	}
}
