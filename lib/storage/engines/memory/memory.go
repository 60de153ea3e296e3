package memory

import (
	"bytes"
	"sync"

	"github.com/ValentinKolb/sKV/lib/storage"
	"github.com/ValentinKolb/sKV/lib/storage/util"
	"github.com/google/btree"
)

// --------------------------------------------------------------------------
// Options
// --------------------------------------------------------------------------

// Options configures the memory engine during initialization
type Options struct {
	Degree int // B-tree degree (0 = use default)
}

// DefaultOptions returns the default memory engine options
func DefaultOptions() *Options {
	return &Options{
		Degree: 32,
	}
}

// --------------------------------------------------------------------------
// Engine Structure
// --------------------------------------------------------------------------

// item is the B-tree entry type. Ordering is byte-lexicographic on the key.
type item struct {
	key   []byte
	value []byte
}

func (i *item) Less(than btree.Item) bool {
	return bytes.Compare(i.key, than.(*item).key) < 0
}

// memoryImpl implements an ordered in-memory storage engine on top of a
// B-tree. All operations take defensive copies of keys and values so that
// callers can freely reuse or modify their buffers.
type memoryImpl struct {
	mutex  sync.RWMutex
	tree   *btree.BTree
	degree int
}

// NewMemoryStorage creates a new in-memory ordered storage engine with the
// specified options (optional).
func NewMemoryStorage(opts *Options) storage.IStorage {
	if opts == nil {
		opts = DefaultOptions()
	}
	degree := opts.Degree
	if degree <= 0 {
		degree = DefaultOptions().Degree
	}
	return &memoryImpl{
		tree:   btree.New(degree),
		degree: degree,
	}
}

// --------------------------------------------------------------------------
// Interface Methods - Write Operations (docu see storage.IStorage)
// --------------------------------------------------------------------------

func (m *memoryImpl) Set(key, value []byte) error {
	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.tree.ReplaceOrInsert(&item{key: keyCopy, value: valueCopy})
	return nil
}

func (m *memoryImpl) Delete(key []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.tree.Delete(&item{key: key})
	return nil
}

// --------------------------------------------------------------------------
// Interface Methods - Read Operations (docu see storage.IStorage)
// --------------------------------------------------------------------------

func (m *memoryImpl) Get(key []byte) ([]byte, bool, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	found := m.tree.Get(&item{key: key})
	if found == nil {
		return nil, false, nil
	}

	// copy value to prevent modification of stored data
	stored := found.(*item)
	value := make([]byte, len(stored.value))
	copy(value, stored.value)
	return value, true, nil
}

func (m *memoryImpl) Scan(start, end []byte, order storage.Order) (storage.Iterator, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	// collect the matching entries as copies; the iterator is a stable
	// snapshot and stays valid independent of later writes
	var keys, values [][]byte
	collect := func(i btree.Item) bool {
		stored := i.(*item)
		keyCopy := make([]byte, len(stored.key))
		copy(keyCopy, stored.key)
		valueCopy := make([]byte, len(stored.value))
		copy(valueCopy, stored.value)
		keys = append(keys, keyCopy)
		values = append(values, valueCopy)
		return true
	}

	switch {
	case start == nil && end == nil:
		m.tree.Ascend(collect)
	case start == nil:
		m.tree.AscendLessThan(&item{key: end}, collect)
	case end == nil:
		m.tree.AscendGreaterOrEqual(&item{key: start}, collect)
	default:
		m.tree.AscendRange(&item{key: start}, &item{key: end}, collect)
	}

	if order == storage.Descending {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
			values[i], values[j] = values[j], values[i]
		}
	}

	return &snapshotIterator{keys: keys, values: values}, nil
}

// --------------------------------------------------------------------------
// Interface Methods - Features and Metadata (docu see storage.IStorage)
// --------------------------------------------------------------------------

func (m *memoryImpl) SupportsFeature(feature storage.Feature) bool {
	supportedFeatures := storage.FeatureGet |
		storage.FeatureSet |
		storage.FeatureDelete |
		storage.FeatureScan
	return supportedFeatures&feature == feature
}

func (m *memoryImpl) GetInfo() storage.StorageInfo {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	entries := m.tree.Len()

	// sample a bounded number of entries for the size estimate
	histogram := util.NewSizeHistogram()
	samples := 0
	m.tree.Ascend(func(i btree.Item) bool {
		histogram.AddSample(len(i.(*item).value))
		samples++
		return samples < 1000
	})

	// weighted per-entry estimate (60% median, 40% average)
	entryOverhead := 48 // key slice + value slice + tree node share
	perEntry := (histogram.MedianEstimate()*60+histogram.AverageSize()*40)/100 + entryOverhead

	meta := &struct {
		Entries int    `json:"entries"`
		Degree  int    `json:"degree"`
		Info    string `json:"info"`
	}{
		Entries: entries,
		Degree:  m.degree,
		Info:    "All values (including SizeBytes) are estimates and may vary depending on the engine state.",
	}

	return storage.StorageInfo{
		SizeBytes:   perEntry * entries,
		StorageType: storage.ImplMemory,
		SupportedFeatures: []storage.Feature{
			storage.FeatureGet, storage.FeatureSet,
			storage.FeatureDelete, storage.FeatureScan,
		},
		Metadata: meta,
	}
}

func (m *memoryImpl) Close() error {
	return nil
}

// --------------------------------------------------------------------------
// Iterator
// --------------------------------------------------------------------------

// snapshotIterator walks a pre-collected slice of entries.
type snapshotIterator struct {
	keys   [][]byte
	values [][]byte
	pos    int
}

func (it *snapshotIterator) Valid() bool {
	return it.pos < len(it.keys)
}

func (it *snapshotIterator) Next() {
	it.pos++
}

func (it *snapshotIterator) Key() []byte {
	return it.keys[it.pos]
}

func (it *snapshotIterator) Value() []byte {
	return it.values[it.pos]
}

func (it *snapshotIterator) Error() error {
	return nil
}

func (it *snapshotIterator) Close() error {
	return nil
}
