// Package storage provides a standardized interface for flat, byte-keyed
// storage engines. It defines the IStorage interface that allows for
// consistent interaction with various engine backends while abstracting
// implementation details.
//
// The package focuses on:
//   - A unified interface for raw byte-keyed operations (Get, Set, Delete)
//   - Ordered range scans over half-open byte-key ranges via the Iterator type
//   - Feature discovery through capability flags
//   - Standardized metadata reporting
//
// Key Components:
//
//   - IStorage Interface: The core interface that all engine implementations
//     must satisfy. It deliberately exposes only the primitives that the typed
//     layers in lib/kv are built on: point reads and writes plus an ordered
//     range scan. Keys and values are opaque byte strings; any ordering
//     semantics beyond byte-lexicographic comparison belong to the layers
//     above (see lib/kv/keys).
//
//   - Feature Flags: The Feature type defines capability flags that
//     implementations can advertise through the SupportsFeature method. Not
//     every engine keeps its keys ordered; engines without FeatureScan return
//     an UnsupportedOperation error from Scan, and higher layers degrade
//     accordingly instead of failing at construction time.
//
//   - Error System: A structured error reporting mechanism using typed error
//     codes and descriptive messages. Errors produced by an underlying
//     third-party engine are propagated unchanged, never wrapped.
//
//   - Instrumentation: NewInstrumented wraps any IStorage with per-operation
//     counters exported through the VictoriaMetrics metrics registry.
//
// Implementations (see lib/storage/engines):
//
//   - memory: an ordered in-memory engine backed by a B-tree. Supports all
//     features except persistence. The default engine for tests and for
//     callers that checkpoint state elsewhere.
//
//   - hash: an in-memory hash engine backed by a concurrent map. Fast point
//     operations, no ordered scans. Suitable for workloads that never need
//     historical reads.
//
//   - pebble: a persistent engine backed by cockroachdb/pebble. Supports all
//     features including persistence across Close and reopen.
package storage
