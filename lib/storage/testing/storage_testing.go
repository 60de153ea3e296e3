package testing

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/ValentinKolb/sKV/lib/storage"
)

// StorageFactory is a function that creates a new instance of an IStorage
// implementation. It receives the testing handle so that engines needing
// scratch directories can use tb.TempDir.
type StorageFactory func(tb testing.TB) storage.IStorage

// RunStorageTests runs a comprehensive test suite for an IStorage implementation.
func RunStorageTests(t *testing.T, name string, factory StorageFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, factory(t))
		})

		t.Run("Overwrite", func(t *testing.T) {
			testOverwrite(t, factory(t))
		})

		t.Run("Delete", func(t *testing.T) {
			testDelete(t, factory(t))
		})

		t.Run("ScanAscending", func(t *testing.T) {
			testScanAscending(t, factory(t))
		})

		t.Run("ScanDescending", func(t *testing.T) {
			testScanDescending(t, factory(t))
		})

		t.Run("ScanBounds", func(t *testing.T) {
			testScanBounds(t, factory(t))
		})

		t.Run("ScanUnsupported", func(t *testing.T) {
			testScanUnsupported(t, factory(t))
		})

		t.Run("ValueSafety", func(t *testing.T) {
			testValueSafety(t, factory(t))
		})

		t.Run("GetInfo", func(t *testing.T) {
			testGetInfo(t, factory(t))
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// Checks if the engine supports the specified feature
// Skip the test if it is not supported
func requireFeature(t testing.TB, s storage.IStorage, feature storage.Feature) {
	if !s.SupportsFeature(feature) {
		t.Skip()
	}
}

// mustSet fails the test on a Set error
func mustSet(t testing.TB, s storage.IStorage, key, value string) {
	t.Helper()
	if err := s.Set([]byte(key), []byte(value)); err != nil {
		t.Fatalf("Set(%q) failed: %v", key, err)
	}
}

// collect drains an iterator into key and value slices
func collect(t testing.TB, it storage.Iterator) (keys, values []string) {
	t.Helper()
	defer it.Close()
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
		values = append(values, string(it.Value()))
	}
	if err := it.Error(); err != nil {
		t.Fatalf("iterator error: %v", err)
	}
	return keys, values
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testSetGet(t *testing.T, s storage.IStorage) {
	defer s.Close()

	requireFeature(t, s, storage.FeatureSet|storage.FeatureGet)

	mustSet(t, s, "test-key", "test-value")

	value, found, err := s.Get([]byte("test-key"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Errorf("Expected key to exist after Set")
	}
	if !bytes.Equal(value, []byte("test-value")) {
		t.Errorf("Expected value %q, got %q", "test-value", value)
	}

	_, found, err = s.Get([]byte("nonexistent-key"))
	if err != nil {
		t.Fatalf("Get of missing key failed: %v", err)
	}
	if found {
		t.Errorf("Expected nonexistent key to return found=false")
	}
}

func testOverwrite(t *testing.T, s storage.IStorage) {
	defer s.Close()

	requireFeature(t, s, storage.FeatureSet|storage.FeatureGet)

	mustSet(t, s, "key", "first")
	mustSet(t, s, "key", "second")

	value, found, err := s.Get([]byte("key"))
	if err != nil || !found {
		t.Fatalf("Get after overwrite: found=%v err=%v", found, err)
	}
	if !bytes.Equal(value, []byte("second")) {
		t.Errorf("Expected overwritten value %q, got %q", "second", value)
	}
}

func testDelete(t *testing.T, s storage.IStorage) {
	defer s.Close()

	requireFeature(t, s, storage.FeatureSet|storage.FeatureGet|storage.FeatureDelete)

	mustSet(t, s, "key", "value")

	if err := s.Delete([]byte("key")); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, found, err := s.Get([]byte("key"))
	if err != nil {
		t.Fatalf("Get after Delete failed: %v", err)
	}
	if found {
		t.Errorf("Expected key to be gone after Delete")
	}

	// deleting an absent key must not fail
	if err := s.Delete([]byte("never-existed")); err != nil {
		t.Errorf("Delete of absent key failed: %v", err)
	}
}

func testScanAscending(t *testing.T, s storage.IStorage) {
	defer s.Close()

	requireFeature(t, s, storage.FeatureSet|storage.FeatureScan)

	// insert out of order on purpose
	for _, key := range []string{"c", "a", "e", "b", "d"} {
		mustSet(t, s, key, "v-"+key)
	}

	it, err := s.Scan(nil, nil, storage.Ascending)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	keys, values := collect(t, it)

	expected := []string{"a", "b", "c", "d", "e"}
	if len(keys) != len(expected) {
		t.Fatalf("Expected %d entries, got %d (%v)", len(expected), len(keys), keys)
	}
	for i, key := range expected {
		if keys[i] != key {
			t.Errorf("Position %d: expected key %q, got %q", i, key, keys[i])
		}
		if values[i] != "v-"+key {
			t.Errorf("Position %d: expected value %q, got %q", i, "v-"+key, values[i])
		}
	}
}

func testScanDescending(t *testing.T, s storage.IStorage) {
	defer s.Close()

	requireFeature(t, s, storage.FeatureSet|storage.FeatureScan)

	for _, key := range []string{"a", "b", "c"} {
		mustSet(t, s, key, "v-"+key)
	}

	it, err := s.Scan(nil, nil, storage.Descending)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	keys, _ := collect(t, it)

	expected := []string{"c", "b", "a"}
	if fmt.Sprint(keys) != fmt.Sprint(expected) {
		t.Errorf("Expected descending order %v, got %v", expected, keys)
	}
}

func testScanBounds(t *testing.T, s storage.IStorage) {
	defer s.Close()

	requireFeature(t, s, storage.FeatureSet|storage.FeatureScan)

	for _, key := range []string{"a", "b", "c", "d", "e"} {
		mustSet(t, s, key, "v-"+key)
	}

	// half-open [b, d): start inclusive, end exclusive
	it, err := s.Scan([]byte("b"), []byte("d"), storage.Ascending)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	keys, _ := collect(t, it)
	if fmt.Sprint(keys) != fmt.Sprint([]string{"b", "c"}) {
		t.Errorf("Expected [b c], got %v", keys)
	}

	// open start
	it, err = s.Scan(nil, []byte("c"), storage.Ascending)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	keys, _ = collect(t, it)
	if fmt.Sprint(keys) != fmt.Sprint([]string{"a", "b"}) {
		t.Errorf("Expected [a b], got %v", keys)
	}

	// open end
	it, err = s.Scan([]byte("d"), nil, storage.Ascending)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	keys, _ = collect(t, it)
	if fmt.Sprint(keys) != fmt.Sprint([]string{"d", "e"}) {
		t.Errorf("Expected [d e], got %v", keys)
	}

	// empty range
	it, err = s.Scan([]byte("x"), []byte("z"), storage.Ascending)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	keys, _ = collect(t, it)
	if len(keys) != 0 {
		t.Errorf("Expected empty result, got %v", keys)
	}
}

func testScanUnsupported(t *testing.T, s storage.IStorage) {
	defer s.Close()

	if s.SupportsFeature(storage.FeatureScan) {
		t.Skip()
	}

	_, err := s.Scan(nil, nil, storage.Ascending)
	if err == nil {
		t.Fatalf("Expected Scan to fail on an engine without FeatureScan")
	}
	storageErr, ok := err.(*storage.Error)
	if !ok || storageErr.Code != storage.RetCUnsupportedOperation {
		t.Errorf("Expected RetCUnsupportedOperation, got %v", err)
	}
}

func testValueSafety(t *testing.T, s storage.IStorage) {
	defer s.Close()

	requireFeature(t, s, storage.FeatureSet|storage.FeatureGet)

	input := []byte("original")
	if err := s.Set([]byte("key"), input); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// mutating the input buffer after Set must not affect stored data
	input[0] = 'X'

	value, _, err := s.Get([]byte("key"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(value, []byte("original")) {
		t.Errorf("Stored value was corrupted by caller-side mutation: %q", value)
	}

	// mutating the returned buffer must not affect stored data
	value[0] = 'Y'
	again, _, err := s.Get([]byte("key"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(again, []byte("original")) {
		t.Errorf("Stored value was corrupted by result-side mutation: %q", again)
	}
}

func testGetInfo(t *testing.T, s storage.IStorage) {
	defer s.Close()

	requireFeature(t, s, storage.FeatureSet)

	for i := 0; i < 10; i++ {
		mustSet(t, s, fmt.Sprintf("key-%d", i), "some-value")
	}

	info := s.GetInfo()
	if info.StorageType == "" {
		t.Errorf("Expected StorageType to be set")
	}
	if len(info.SupportedFeatures) == 0 {
		t.Errorf("Expected SupportedFeatures to be reported")
	}
	for _, feature := range info.SupportedFeatures {
		if !s.SupportsFeature(feature) {
			t.Errorf("Reported feature %v is not actually supported", feature)
		}
	}
}
