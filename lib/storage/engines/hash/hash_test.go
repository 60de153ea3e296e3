package hash

import (
	"testing"

	"github.com/ValentinKolb/sKV/lib/storage"
	storagetesting "github.com/ValentinKolb/sKV/lib/storage/testing"
)

func Test(t *testing.T) {
	storagetesting.RunStorageTests(t, "HashStorage", func(_ testing.TB) storage.IStorage {
		return NewHashStorage()
	})
}

func Benchmark(b *testing.B) {
	storagetesting.RunStorageBenchmarks(b, "HashStorage", func(_ testing.TB) storage.IStorage {
		return NewHashStorage()
	})
}
