package pebble

import (
	"bytes"
	"testing"

	"github.com/ValentinKolb/sKV/lib/storage"
	storagetesting "github.com/ValentinKolb/sKV/lib/storage/testing"
)

func Test(t *testing.T) {
	storagetesting.RunStorageTests(t, "PebbleStorage", func(tb testing.TB) storage.IStorage {
		s, err := NewPebbleStorage(tb.TempDir(), nil)
		if err != nil {
			tb.Fatalf("failed to open pebble storage: %v", err)
		}
		return s
	})
}

func Benchmark(b *testing.B) {
	storagetesting.RunStorageBenchmarks(b, "PebbleStorage", func(tb testing.TB) storage.IStorage {
		// don't sync every write, the benchmark measures engine overhead
		s, err := NewPebbleStorage(tb.TempDir(), &Options{SyncWrites: false})
		if err != nil {
			tb.Fatalf("failed to open pebble storage: %v", err)
		}
		return s
	})
}

// TestPersistence verifies that data written before Close is visible again
// after reopening the same directory.
func TestPersistence(t *testing.T) {
	dir := t.TempDir()

	s, err := NewPebbleStorage(dir, nil)
	if err != nil {
		t.Fatalf("failed to open pebble storage: %v", err)
	}
	if err := s.Set([]byte("persistent-key"), []byte("persistent-value")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewPebbleStorage(dir, nil)
	if err != nil {
		t.Fatalf("failed to reopen pebble storage: %v", err)
	}
	defer reopened.Close()

	value, found, err := reopened.Get([]byte("persistent-key"))
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatalf("Expected key to survive reopen")
	}
	if !bytes.Equal(value, []byte("persistent-value")) {
		t.Errorf("Expected %q, got %q", "persistent-value", value)
	}
}
