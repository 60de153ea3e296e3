package kv_test

import (
	"errors"
	"testing"

	"github.com/ValentinKolb/sKV/lib/codec"
	"github.com/ValentinKolb/sKV/lib/kv"
	"github.com/ValentinKolb/sKV/lib/storage"
	"github.com/ValentinKolb/sKV/lib/storage/engines/hash"
	"github.com/ValentinKolb/sKV/lib/storage/engines/memory"
)

func newTestMap() kv.Map[string, uint64] {
	return kv.NewMap[string, uint64]("test", codec.StringKeyCodec{}, codec.NewJSONCodec[uint64]())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := memory.NewMemoryStorage(nil)
	defer s.Close()
	m := newTestMap()

	if err := m.Save(s, "answer", 42); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	value, err := m.Load(s, "answer")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if value != 42 {
		t.Errorf("Expected 42, got %d", value)
	}
}

func TestLoadMissingFails(t *testing.T) {
	s := memory.NewMemoryStorage(nil)
	defer s.Close()
	m := newTestMap()

	_, err := m.Load(s, "missing")
	if !kv.IsNotFound(err) {
		t.Errorf("Expected NotFound error, got %v", err)
	}
}

func TestMayLoadMissingReturnsNil(t *testing.T) {
	s := memory.NewMemoryStorage(nil)
	defer s.Close()
	m := newTestMap()

	value, err := m.MayLoad(s, "missing")
	if err != nil {
		t.Fatalf("MayLoad failed: %v", err)
	}
	if value != nil {
		t.Errorf("Expected nil for missing key, got %v", *value)
	}
}

func TestMayLoadParseError(t *testing.T) {
	s := memory.NewMemoryStorage(nil)
	defer s.Close()
	m := newTestMap()

	if err := m.Save(s, "key", 1); err != nil {
		t.Fatal(err)
	}

	// a second map on the same namespace with an incompatible value type
	// sees a parse error, not a silent zero value
	broken := kv.NewMap[string, struct{ Nested []string }]("test",
		codec.StringKeyCodec{}, codec.NewJSONCodec[struct{ Nested []string }]())
	if _, err := broken.MayLoad(s, "key"); !kv.IsParseError(err) {
		t.Errorf("Expected ParseError, got %v", err)
	}
	if _, err := broken.Load(s, "key"); !kv.IsParseError(err) {
		t.Errorf("Expected ParseError from Load, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	s := memory.NewMemoryStorage(nil)
	defer s.Close()
	m := newTestMap()

	if err := m.Save(s, "key", 1); err != nil {
		t.Fatal(err)
	}
	if err := m.Remove(s, "key"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	value, err := m.MayLoad(s, "key")
	if err != nil || value != nil {
		t.Errorf("Expected key to be absent after Remove, got %v (err %v)", value, err)
	}

	// removing again is fine
	if err := m.Remove(s, "key"); err != nil {
		t.Errorf("Remove of absent key failed: %v", err)
	}
}

func TestHas(t *testing.T) {
	s := memory.NewMemoryStorage(nil)
	defer s.Close()
	m := newTestMap()

	found, err := m.Has(s, "key")
	if err != nil || found {
		t.Errorf("Expected Has to be false for absent key")
	}

	if err := m.Save(s, "key", 1); err != nil {
		t.Fatal(err)
	}

	found, err = m.Has(s, "key")
	if err != nil || !found {
		t.Errorf("Expected Has to be true after Save")
	}
}

func TestUpdate(t *testing.T) {
	s := memory.NewMemoryStorage(nil)
	defer s.Close()
	m := newTestMap()

	// first update sees no prior value
	value, err := m.Update(s, "counter", func(old *uint64) (uint64, error) {
		if old != nil {
			t.Errorf("Expected no prior value, got %d", *old)
		}
		return 1, nil
	})
	if err != nil || value != 1 {
		t.Fatalf("Update failed: value=%d err=%v", value, err)
	}

	// second update sees the previous value
	value, err = m.Update(s, "counter", func(old *uint64) (uint64, error) {
		if old == nil {
			t.Fatalf("Expected prior value")
		}
		return *old + 1, nil
	})
	if err != nil || value != 2 {
		t.Fatalf("Update failed: value=%d err=%v", value, err)
	}

	stored, err := m.Load(s, "counter")
	if err != nil || stored != 2 {
		t.Errorf("Expected stored value 2, got %d (err %v)", stored, err)
	}
}

func TestUpdateActionErrorAborts(t *testing.T) {
	s := memory.NewMemoryStorage(nil)
	defer s.Close()
	m := newTestMap()

	if err := m.Save(s, "key", 7); err != nil {
		t.Fatal(err)
	}

	actionErr := errors.New("domain failure")
	_, err := m.Update(s, "key", func(_ *uint64) (uint64, error) {
		return 0, actionErr
	})
	// the closure error must come back unchanged
	if !errors.Is(err, actionErr) {
		t.Fatalf("Expected action error to propagate unchanged, got %v", err)
	}

	// and nothing may have been written
	value, err := m.Load(s, "key")
	if err != nil || value != 7 {
		t.Errorf("Expected value to be untouched after failed update, got %d (err %v)", value, err)
	}
}

func TestNamespaceIsolation(t *testing.T) {
	s := memory.NewMemoryStorage(nil)
	defer s.Close()

	first := kv.NewMap[string, uint64]("first", codec.StringKeyCodec{}, codec.NewJSONCodec[uint64]())
	second := kv.NewMap[string, uint64]("second", codec.StringKeyCodec{}, codec.NewJSONCodec[uint64]())

	if err := first.Save(s, "key", 1); err != nil {
		t.Fatal(err)
	}

	value, err := second.MayLoad(s, "key")
	if err != nil {
		t.Fatal(err)
	}
	if value != nil {
		t.Errorf("Write to one namespace is visible in another: %d", *value)
	}
}

func TestMapWorksOnHashEngine(t *testing.T) {
	// the plain map never scans, so it must work on engines without
	// FeatureScan as well
	s := storageWithoutScan(t)
	defer s.Close()
	m := newTestMap()

	if err := m.Save(s, "key", 9); err != nil {
		t.Fatal(err)
	}
	value, err := m.Load(s, "key")
	if err != nil || value != 9 {
		t.Errorf("Expected 9, got %d (err %v)", value, err)
	}
}

func storageWithoutScan(t *testing.T) storage.IStorage {
	t.Helper()
	s := hash.NewHashStorage()
	if s.SupportsFeature(storage.FeatureScan) {
		t.Fatalf("test requires an engine without FeatureScan")
	}
	return s
}
