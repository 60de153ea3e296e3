// Package snapshot provides a typed key-value map that can answer two
// questions: "what is the value now?" and "what was the value as of an
// earlier height?". Heights are caller-supplied, monotonically progressing
// logical timestamps; every mutation is parameterized by one.
//
// The map is composed of three regions over a single storage engine, all
// derived from one base name:
//
//   - primary ("<name>"): the ordinary current-value table
//   - checkpoints ("<name>__checkpoints"): per-height checkpoint counters,
//     reserved for the unimplemented Selected strategy
//   - changelog ("<name>__changelog"): per (key, height) the value that
//     existed immediately before the write at that height
//
// On every mutation the configured Strategy decides whether a changelog
// entry is recorded. Historical reads never replay writes; they exploit the
// pre-image structure of the changelog directly: the first recorded change
// at or after the queried height carries exactly the value that was in force
// at that height, and if no such change exists the current value has been
// stable since then. This reconstructs any historical value with a single
// bounded range scan instead of storing full copies per height.
//
// Correctness of historical reads requires that every relevant mutation was
// checkpointed (StrategyEveryBlock). Mixing strategies over the lifetime of
// one map, or writing heights out of order, yields undefined historical
// results; current-value reads are unaffected either way.
//
// Known sharp edge: changelog entries are keyed by (key, height) without a
// sub-height sequence number, so a second write to the same key at the same
// height overwrites the first write's recorded pre-image. Single writer per
// key per height is a caller obligation.
//
// The map provides no multi-key atomicity: a write consists of up to one
// changelog Set plus one primary Set or Delete, and a failure between the
// two leaves the regions inconsistent. It is designed for host environments
// that commit the underlying storage as a whole (or not at all) around the
// calling code.
package snapshot
