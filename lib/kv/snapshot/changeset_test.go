package snapshot

import (
	"testing"

	"github.com/ValentinKolb/sKV/lib/codec"
	"github.com/ValentinKolb/sKV/lib/kv"
)

func TestChangeSetDistinguishesAbsentFromZero(t *testing.T) {
	values := codec.NewJSONCodec[uint64]()

	// absent pre-image
	absent, err := encodeChangeSet(values, ChangeSet[uint64]{})
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := decodeChangeSet(values, absent)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Old != nil {
		t.Errorf("Expected absent pre-image, got %d", *decoded.Old)
	}

	// present zero value must not collapse into absent
	zero := uint64(0)
	present, err := encodeChangeSet(values, ChangeSet[uint64]{Old: &zero})
	if err != nil {
		t.Fatal(err)
	}
	decoded, err = decodeChangeSet(values, present)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Old == nil || *decoded.Old != 0 {
		t.Errorf("Expected present zero pre-image, got %v", decoded.Old)
	}
}

func TestChangeSetDecodeRejectsMalformedFraming(t *testing.T) {
	values := codec.NewJSONCodec[uint64]()

	cases := map[string][]byte{
		"empty":                  {},
		"unknown flag":           {0xab},
		"trailing after absent":  {changeSetAbsent, 0x01},
		"undecodable value body": {changeSetPresent, 'n', 'o', 'p', 'e'},
	}
	for name, input := range cases {
		if _, err := decodeChangeSet(values, input); !kv.IsParseError(err) {
			t.Errorf("%s: expected ParseError, got %v", name, err)
		}
	}
}
