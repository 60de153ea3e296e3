package testing

import (
	"fmt"
	"testing"
	"time"

	"github.com/ValentinKolb/sKV/lib/storage"
	gometrics "github.com/rcrowley/go-metrics"
)

// RunStorageBenchmarks runs all benchmarks for an IStorage implementation.
// In addition to the usual ns/op output, each benchmark reports p50/p99
// latencies collected with a go-metrics timer.
func RunStorageBenchmarks(b *testing.B, name string, factory StorageFactory) {
	b.Run(name, func(b *testing.B) {
		b.Run("Set", func(b *testing.B) {
			benchmarkSet(b, factory(b))
		})

		b.Run("Get", func(b *testing.B) {
			benchmarkGet(b, factory(b))
		})

		b.Run("Delete", func(b *testing.B) {
			benchmarkDelete(b, factory(b))
		})

		b.Run("Scan", func(b *testing.B) {
			benchmarkScan(b, factory(b))
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// timed runs fn b.N times, recording each call in a go-metrics timer and
// reporting percentile latencies alongside the standard benchmark output.
func timed(b *testing.B, fn func(i int)) {
	timer := gometrics.NewTimer()
	defer timer.Stop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		start := time.Now()
		fn(i)
		timer.Update(time.Since(start))
	}
	b.StopTimer()

	b.ReportMetric(timer.Percentile(0.50), "p50-ns")
	b.ReportMetric(timer.Percentile(0.99), "p99-ns")
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

func benchmarkSet(b *testing.B, s storage.IStorage) {
	b.Cleanup(func() {
		s.Close()
	})

	requireFeature(b, s, storage.FeatureSet)

	value := []byte("benchmark-value")
	timed(b, func(i int) {
		_ = s.Set([]byte(fmt.Sprintf("key-%d", i%10000)), value)
	})
}

func benchmarkGet(b *testing.B, s storage.IStorage) {
	b.Cleanup(func() {
		s.Close()
	})

	requireFeature(b, s, storage.FeatureSet|storage.FeatureGet)

	value := []byte("benchmark-value")
	for i := 0; i < 10000; i++ {
		_ = s.Set([]byte(fmt.Sprintf("key-%d", i)), value)
	}

	timed(b, func(i int) {
		_, _, _ = s.Get([]byte(fmt.Sprintf("key-%d", i%10000)))
	})
}

func benchmarkDelete(b *testing.B, s storage.IStorage) {
	b.Cleanup(func() {
		s.Close()
	})

	requireFeature(b, s, storage.FeatureSet|storage.FeatureDelete)

	value := []byte("benchmark-value")
	for i := 0; i < 10000; i++ {
		_ = s.Set([]byte(fmt.Sprintf("key-%d", i)), value)
	}

	timed(b, func(i int) {
		_ = s.Delete([]byte(fmt.Sprintf("key-%d", i%10000)))
	})
}

func benchmarkScan(b *testing.B, s storage.IStorage) {
	b.Cleanup(func() {
		s.Close()
	})

	requireFeature(b, s, storage.FeatureSet|storage.FeatureScan)

	value := []byte("benchmark-value")
	for i := 0; i < 1000; i++ {
		_ = s.Set([]byte(fmt.Sprintf("key-%04d", i)), value)
	}

	timed(b, func(i int) {
		it, err := s.Scan([]byte("key-0100"), []byte("key-0200"), storage.Ascending)
		if err != nil {
			b.Fatalf("Scan failed: %v", err)
		}
		for ; it.Valid(); it.Next() {
		}
		_ = it.Close()
	})
}
