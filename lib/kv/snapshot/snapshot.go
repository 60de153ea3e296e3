package snapshot

import (
	"github.com/ValentinKolb/sKV/lib/codec"
	"github.com/ValentinKolb/sKV/lib/kv"
	"github.com/ValentinKolb/sKV/lib/kv/keys"
	"github.com/ValentinKolb/sKV/lib/storage"
)

// --------------------------------------------------------------------------
// Namespaces
// --------------------------------------------------------------------------

// Names holds the three storage namespaces a snapshot map occupies. They are
// derived deterministically from one base name; the length-prefixed encoding
// in lib/kv/keys keeps the regions disjoint against each other and against
// any other map sharing the engine.
type Names struct {
	Primary     string
	Checkpoints string
	Changelog   string
}

// NewNames derives the three region names from a base name.
func NewNames(base string) Names {
	return Names{
		Primary:     base,
		Checkpoints: base + "__checkpoints",
		Changelog:   base + "__changelog",
	}
}

// --------------------------------------------------------------------------
// Snapshot Map
// --------------------------------------------------------------------------

// Map is a typed key-value table that maintains snapshots of one or more
// checkpoints: alongside the current value it records, per (key, height),
// the value that existed immediately before a write, which allows reading
// state as of an earlier height.
//
// Like kv.Map this is a stateless facade; it holds only namespace prefixes,
// codecs and the strategy, and the storage engine is passed to every call.
//
// Heights are caller-supplied logical timestamps. The map assumes a
// correctly ordered, single-writer-per-height call sequence: it does not
// enforce monotonicity, and two writes to the same key at the same height
// overwrite each other's changelog entry, losing the true original
// pre-image. Callers must guarantee at most one mutation per key per height.
type Map[K any, T any] struct {
	primary kv.Map[K, T]

	// maps height to number of keys checkpointed at that height
	// (reserved for StrategySelected, unused by the implemented strategies)
	checkpoints kv.Map[uint64, uint32]

	// raw prefix of the changelog region; entries are keyed by (key, height)
	changelogPrefix []byte

	keys     codec.IKeyCodec[K]
	values   codec.IValueCodec[T]
	strategy Strategy
}

// NewMap creates a snapshot map rooted at the given base name. The three
// backing regions are derived via NewNames.
func NewMap[K any, T any](name string, strategy Strategy, keyCodec codec.IKeyCodec[K], valueCodec codec.IValueCodec[T]) Map[K, T] {
	names := NewNames(name)
	return Map[K, T]{
		primary:         kv.NewMap[K, T](names.Primary, keyCodec, valueCodec),
		checkpoints:     kv.NewMap[uint64, uint32](names.Checkpoints, codec.Uint64KeyCodec{}, codec.NewUint32Codec()),
		changelogPrefix: keys.Prefix([]byte(names.Changelog)),
		keys:            keyCodec,
		values:          valueCodec,
		strategy:        strategy,
	}
}

// Strategy returns the checkpoint strategy the map was constructed with.
func (m Map[K, T]) Strategy() Strategy {
	return m.strategy
}

// changelogKey builds the raw byte key of the changelog entry for (key, height).
func (m Map[K, T]) changelogKey(key K, height uint64) []byte {
	return keys.Composite(m.changelogPrefix, m.keys.EncodeKey(key), height)
}

// --------------------------------------------------------------------------
// Write Path
// --------------------------------------------------------------------------

// writeChange loads the current value and stores it as the changelog entry
// for (key, height).
func (m Map[K, T]) writeChange(s storage.IStorage, key K, height uint64) error {
	old, err := m.primary.MayLoad(s, key)
	if err != nil {
		return err
	}
	return m.saveChangeSet(s, key, height, ChangeSet[T]{Old: old})
}

// saveChangeSet stores a pre-built changelog entry for (key, height).
func (m Map[K, T]) saveChangeSet(s storage.IStorage, key K, height uint64, cs ChangeSet[T]) error {
	b, err := encodeChangeSet(m.values, cs)
	if err != nil {
		return err
	}
	return s.Set(m.changelogKey(key, height), b)
}

// Save inserts or updates the value stored under key at the given height.
// Under a checkpointing strategy the pre-write value is recorded in the
// changelog first.
func (m Map[K, T]) Save(s storage.IStorage, key K, value T, height uint64) error {
	checkpoint, err := m.strategy.isCheckpoint()
	if err != nil {
		return err
	}
	if checkpoint {
		if err := m.writeChange(s, key, height); err != nil {
			return err
		}
	}
	return m.primary.Save(s, key, value)
}

// Remove deletes the entry stored under key at the given height. Under a
// checkpointing strategy the pre-removal value is recorded in the changelog
// first. Removing an absent key is not an error (though it does record a
// changelog entry with an absent pre-image).
func (m Map[K, T]) Remove(s storage.IStorage, key K, height uint64) error {
	checkpoint, err := m.strategy.isCheckpoint()
	if err != nil {
		return err
	}
	if checkpoint {
		if err := m.writeChange(s, key, height); err != nil {
			return err
		}
	}
	return m.primary.Remove(s, key)
}

// --------------------------------------------------------------------------
// Read Path
// --------------------------------------------------------------------------

// Load returns the current value stored under key. It fails with a NotFound
// error if no value is stored, and with a ParseError if the stored bytes do
// not decode. Current reads never consult the changelog.
func (m Map[K, T]) Load(s storage.IStorage, key K) (T, error) {
	return m.primary.Load(s, key)
}

// MayLoad returns the current value stored under key, or nil if no value is
// stored. It still fails with a ParseError if stored bytes do not decode.
func (m Map[K, T]) MayLoad(s storage.IStorage, key K) (*T, error) {
	return m.primary.MayLoad(s, key)
}

// Has reports whether a value is currently stored under key.
func (m Map[K, T]) Has(s storage.IStorage, key K) (bool, error) {
	return m.primary.Has(s, key)
}

// MayLoadAtHeight returns the value that was in force at the given height,
// or nil if the key held no value then.
//
// The result is only guaranteed to be correct if every mutation of the key
// at a height >= the queried height was performed under StrategyEveryBlock.
// Under StrategyNever the method degrades to MayLoad (the height argument is
// ignored since no history exists to consult).
//
// Boundary semantics: a changelog entry recorded exactly at the queried
// height yields the PRE-image, i.e. the value before the write at that
// height. Callers that want the post-image of a write at height h query
// h + 1.
//
// The lookup scans the changelog restricted to the key, ascending from the
// first entry at a height >= the queried height: that entry marks the
// earliest later point at which the value changed, so its recorded old value
// is the value that was in force at the queried height. If no such entry
// exists the current value has been stable since at or before the queried
// height, and the primary table answers.
func (m Map[K, T]) MayLoadAtHeight(s storage.IStorage, key K, height uint64) (*T, error) {
	if m.strategy == StrategyNever {
		return m.primary.MayLoad(s, key)
	}

	if !s.SupportsFeature(storage.FeatureScan) {
		return nil, kv.NewError(kv.RetCUnsupportedOperation,
			"historical reads require a storage engine with ordered range scans")
	}

	keyPrefix := keys.CompositePrefix(m.changelogPrefix, m.keys.EncodeKey(key))
	start := m.changelogKey(key, height)
	end := keys.PrefixEnd(keyPrefix)

	it, err := s.Scan(start, end, storage.Ascending)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	if it.Valid() {
		cs, err := decodeChangeSet(m.values, it.Value())
		if err != nil {
			return nil, err
		}
		return cs.Old, nil
	}
	if err := it.Error(); err != nil {
		return nil, err
	}

	return m.primary.MayLoad(s, key)
}

// --------------------------------------------------------------------------
// Update Operation
// --------------------------------------------------------------------------

// Update loads the current value stored under key, applies action and saves
// the result at the given height, recording the changelog entry from the
// value read at the start rather than reading a second time.
//
// action receives the current value, or nil if no value is stored, and is
// invoked synchronously in the same call stack. It must not modify the old
// value in place, since that value also populates the changelog entry. If
// action returns an error, no changelog entry and no primary write occur and
// the error is returned to the caller unchanged.
func (m Map[K, T]) Update(s storage.IStorage, key K, height uint64, action func(old *T) (T, error)) (T, error) {
	var zero T

	checkpoint, err := m.strategy.isCheckpoint()
	if err != nil {
		return zero, err
	}

	input, err := m.primary.MayLoad(s, key)
	if err != nil {
		return zero, err
	}
	diff := ChangeSet[T]{Old: input}

	output, err := action(input)
	if err != nil {
		return zero, err
	}

	// optimize the save: reuse the value read above instead of the extra
	// read in writeChange
	if checkpoint {
		if err := m.saveChangeSet(s, key, height, diff); err != nil {
			return zero, err
		}
	}
	if err := m.primary.Save(s, key, output); err != nil {
		return zero, err
	}
	return output, nil
}
