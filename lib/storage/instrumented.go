package storage

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

// NewInstrumented wraps a storage engine with per-operation counters.
// The counters are registered in the default VictoriaMetrics registry under
// the metric skv_storage_ops_total with the labels name (the caller-supplied
// instance name) and op, plus skv_storage_errors_total for failed operations.
//
// The wrapper forwards every call unchanged; it never alters results or
// error values.
func NewInstrumented(name string, inner IStorage) IStorage {
	counter := func(op string) *metrics.Counter {
		return metrics.GetOrCreateCounter(
			fmt.Sprintf(`skv_storage_ops_total{name=%q,op=%q}`, name, op))
	}
	return &instrumentedStorage{
		inner:   inner,
		gets:    counter("get"),
		sets:    counter("set"),
		deletes: counter("delete"),
		scans:   counter("scan"),
		errors: metrics.GetOrCreateCounter(
			fmt.Sprintf(`skv_storage_errors_total{name=%q}`, name)),
	}
}

type instrumentedStorage struct {
	inner IStorage

	gets    *metrics.Counter
	sets    *metrics.Counter
	deletes *metrics.Counter
	scans   *metrics.Counter
	errors  *metrics.Counter
}

// --------------------------------------------------------------------------
// Interface Methods (docu see storage.IStorage)
// --------------------------------------------------------------------------

func (s *instrumentedStorage) Set(key, value []byte) error {
	s.sets.Inc()
	err := s.inner.Set(key, value)
	if err != nil {
		s.errors.Inc()
	}
	return err
}

func (s *instrumentedStorage) Delete(key []byte) error {
	s.deletes.Inc()
	err := s.inner.Delete(key)
	if err != nil {
		s.errors.Inc()
	}
	return err
}

func (s *instrumentedStorage) Get(key []byte) ([]byte, bool, error) {
	s.gets.Inc()
	value, found, err := s.inner.Get(key)
	if err != nil {
		s.errors.Inc()
	}
	return value, found, err
}

func (s *instrumentedStorage) Scan(start, end []byte, order Order) (Iterator, error) {
	s.scans.Inc()
	it, err := s.inner.Scan(start, end, order)
	if err != nil {
		s.errors.Inc()
	}
	return it, err
}

func (s *instrumentedStorage) SupportsFeature(feature Feature) bool {
	return s.inner.SupportsFeature(feature)
}

func (s *instrumentedStorage) GetInfo() StorageInfo {
	return s.inner.GetInfo()
}

func (s *instrumentedStorage) Close() error {
	return s.inner.Close()
}
