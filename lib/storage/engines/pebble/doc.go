// Package pebble implements a persistent ordered storage engine on top of
// cockroachdb/pebble. It supports the full feature set of the storage
// interface including persistence: data written before Close is visible
// again after reopening the same directory.
//
// Error handling follows the contract of the storage interface: errors
// produced by pebble itself are returned unchanged so that callers can
// inspect them directly; only "key not found" is translated into the
// (value, found, err) result shape.
//
// By default every write is synced to disk before the call returns. Callers
// whose host environment provides its own durability boundary (e.g. writes
// that are only considered committed as part of a larger unit) can disable
// this via Options.SyncWrites.
package pebble
