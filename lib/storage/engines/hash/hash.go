package hash

import (
	"github.com/ValentinKolb/sKV/lib/storage"
	"github.com/ValentinKolb/sKV/lib/storage/util"
	"github.com/puzpuzpuz/xsync/v3"
)

// hashImpl implements an unordered in-memory storage engine on top of a
// concurrent hash map. Point operations are lock-free and fast; ordered range
// scans are not supported (see SupportsFeature).
type hashImpl struct {
	data *xsync.MapOf[string, []byte]
}

// NewHashStorage creates a new unordered in-memory storage engine.
//
// Thread-safety: all methods of the returned engine are safe for concurrent
// use; the map shards internally.
func NewHashStorage() storage.IStorage {
	return &hashImpl{
		data: xsync.NewMapOf[string, []byte](),
	}
}

// --------------------------------------------------------------------------
// Interface Methods - Write Operations (docu see storage.IStorage)
// --------------------------------------------------------------------------

func (h *hashImpl) Set(key, value []byte) error {
	// copy value to prevent memory corruption; the string conversion
	// already copies the key
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	h.data.Store(string(key), valueCopy)
	return nil
}

func (h *hashImpl) Delete(key []byte) error {
	h.data.Delete(string(key))
	return nil
}

// --------------------------------------------------------------------------
// Interface Methods - Read Operations (docu see storage.IStorage)
// --------------------------------------------------------------------------

func (h *hashImpl) Get(key []byte) ([]byte, bool, error) {
	stored, found := h.data.Load(string(key))
	if !found {
		return nil, false, nil
	}

	value := make([]byte, len(stored))
	copy(value, stored)
	return value, true, nil
}

func (h *hashImpl) Scan(_, _ []byte, _ storage.Order) (storage.Iterator, error) {
	return nil, storage.NewError(storage.RetCUnsupportedOperation,
		"hash engine does not keep keys ordered, Scan is not supported")
}

// --------------------------------------------------------------------------
// Interface Methods - Features and Metadata (docu see storage.IStorage)
// --------------------------------------------------------------------------

func (h *hashImpl) SupportsFeature(feature storage.Feature) bool {
	supportedFeatures := storage.FeatureGet |
		storage.FeatureSet |
		storage.FeatureDelete
	return supportedFeatures&feature == feature
}

func (h *hashImpl) GetInfo() storage.StorageInfo {
	entries := h.data.Size()

	// sample a bounded number of entries for the size estimate
	histogram := util.NewSizeHistogram()
	samples := 0
	h.data.Range(func(_ string, value []byte) bool {
		histogram.AddSample(len(value))
		samples++
		return samples < 1000
	})

	// weighted per-entry estimate (60% median, 40% average)
	entryOverhead := 40 // key string + value slice + map bucket share
	perEntry := (histogram.MedianEstimate()*60+histogram.AverageSize()*40)/100 + entryOverhead

	meta := &struct {
		Entries int    `json:"entries"`
		Info    string `json:"info"`
	}{
		Entries: entries,
		Info:    "All values (including SizeBytes) are estimates and may vary depending on the engine state.",
	}

	return storage.StorageInfo{
		SizeBytes:   perEntry * entries,
		StorageType: storage.ImplHash,
		SupportedFeatures: []storage.Feature{
			storage.FeatureGet, storage.FeatureSet, storage.FeatureDelete,
		},
		Metadata: meta,
	}
}

func (h *hashImpl) Close() error {
	return nil
}
