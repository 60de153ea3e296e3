package pebble

import (
	"bytes"

	"github.com/ValentinKolb/sKV/lib/storage"
	pebbledb "github.com/cockroachdb/pebble"
)

// --------------------------------------------------------------------------
// Options
// --------------------------------------------------------------------------

// Options configures the pebble engine during initialization
type Options struct {
	SyncWrites bool // Sync every write to disk before returning
}

// DefaultOptions returns the default pebble engine options
func DefaultOptions() *Options {
	return &Options{
		SyncWrites: true,
	}
}

// --------------------------------------------------------------------------
// Engine Structure
// --------------------------------------------------------------------------

// pebbleImpl implements a persistent ordered storage engine on top of
// cockroachdb/pebble. Errors returned by pebble are propagated unchanged.
type pebbleImpl struct {
	db        *pebbledb.DB
	writeOpts *pebbledb.WriteOptions
}

// NewPebbleStorage opens (or creates) a pebble database in the given
// directory with the specified options (optional).
//
// Thread-safety: This function is not thread-safe and should only be called
// once per directory during initialization.
func NewPebbleStorage(dir string, opts *Options) (storage.IStorage, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	db, err := pebbledb.Open(dir, &pebbledb.Options{})
	if err != nil {
		return nil, err
	}

	writeOpts := pebbledb.NoSync
	if opts.SyncWrites {
		writeOpts = pebbledb.Sync
	}

	return &pebbleImpl{
		db:        db,
		writeOpts: writeOpts,
	}, nil
}

// --------------------------------------------------------------------------
// Interface Methods - Write Operations (docu see storage.IStorage)
// --------------------------------------------------------------------------

func (p *pebbleImpl) Set(key, value []byte) error {
	return p.db.Set(key, value, p.writeOpts)
}

func (p *pebbleImpl) Delete(key []byte) error {
	return p.db.Delete(key, p.writeOpts)
}

// --------------------------------------------------------------------------
// Interface Methods - Read Operations (docu see storage.IStorage)
// --------------------------------------------------------------------------

func (p *pebbleImpl) Get(key []byte) ([]byte, bool, error) {
	stored, closer, err := p.db.Get(key)
	if err == pebbledb.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	// copy value, the stored slice is only valid until closer.Close()
	value := make([]byte, len(stored))
	copy(value, stored)

	if err := closer.Close(); err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (p *pebbleImpl) Scan(start, end []byte, order storage.Order) (storage.Iterator, error) {
	it := p.db.NewIter(&pebbledb.IterOptions{
		LowerBound: start,
		UpperBound: end,
	})

	wrapped := &pebbleIterator{it: it, order: order}
	if order == storage.Descending {
		it.Last()
	} else {
		it.First()
	}
	return wrapped, nil
}

// --------------------------------------------------------------------------
// Interface Methods - Features and Metadata (docu see storage.IStorage)
// --------------------------------------------------------------------------

func (p *pebbleImpl) SupportsFeature(feature storage.Feature) bool {
	supportedFeatures := storage.FeatureGet |
		storage.FeatureSet |
		storage.FeatureDelete |
		storage.FeatureScan |
		storage.FeaturePersist
	return supportedFeatures&feature == feature
}

func (p *pebbleImpl) GetInfo() storage.StorageInfo {
	// rough upper bound over the whole key space
	sizeBytes, err := p.db.EstimateDiskUsage([]byte{}, bytes.Repeat([]byte{0xff}, 16))
	if err != nil {
		sizeBytes = 0
	}

	meta := &struct {
		Info string `json:"info"`
	}{
		Info: "SizeBytes is the estimated on-disk usage and may lag behind recent writes.",
	}

	return storage.StorageInfo{
		SizeBytes:   int(sizeBytes),
		StorageType: storage.ImplPebble,
		SupportedFeatures: []storage.Feature{
			storage.FeatureGet, storage.FeatureSet, storage.FeatureDelete,
			storage.FeatureScan, storage.FeaturePersist,
		},
		Metadata: meta,
	}
}

func (p *pebbleImpl) Close() error {
	return p.db.Close()
}

// --------------------------------------------------------------------------
// Iterator
// --------------------------------------------------------------------------

// pebbleIterator adapts a pebble iterator to the storage.Iterator interface.
type pebbleIterator struct {
	it    *pebbledb.Iterator
	order storage.Order
}

func (it *pebbleIterator) Valid() bool {
	return it.it.Valid()
}

func (it *pebbleIterator) Next() {
	if it.order == storage.Descending {
		it.it.Prev()
	} else {
		it.it.Next()
	}
}

func (it *pebbleIterator) Key() []byte {
	return it.it.Key()
}

func (it *pebbleIterator) Value() []byte {
	return it.it.Value()
}

func (it *pebbleIterator) Error() error {
	return it.it.Error()
}

func (it *pebbleIterator) Close() error {
	return it.it.Close()
}
