// Package kv provides the typed map layer between application code and the
// raw byte-keyed storage engines. It adds three things to the storage
// primitives: typed keys and values via the codecs in lib/codec, namespace
// isolation via the key composition scheme in lib/kv/keys, and a unified
// error system.
//
// The package focuses on:
//   - Map: a stateless, generically typed current-value table. The storage
//     engine is passed to every call rather than captured at construction,
//     which keeps the table a pure facade and leaves the decision which
//     engine (and which transactional context) to use with the caller.
//   - Error System: typed error codes (NotFound, ParseError, ...) with
//     errors.As-compatible inspection helpers. Errors originating in the
//     storage backend or in caller-supplied closures are never wrapped.
//
// The snapshot-aware map with checkpointing and historical reads builds on
// this package and lives in lib/kv/snapshot.
package kv
