// Package testing provides a shared test and benchmark suite for IStorage
// implementations. Engines register themselves by calling RunStorageTests
// and RunStorageBenchmarks from their own test files with a factory that
// creates fresh instances.
//
// The suite only exercises the capabilities an engine actually advertises
// through SupportsFeature; tests for unsupported features are skipped, and
// one test explicitly verifies that engines without FeatureScan reject Scan
// with an UnsupportedOperation error instead of silently misbehaving.
package testing
