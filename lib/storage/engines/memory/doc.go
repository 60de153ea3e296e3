// Package memory implements an ordered in-memory storage engine on top of a
// B-tree (github.com/google/btree). Keys are ordered byte-lexicographically,
// which makes the engine suitable for every feature the storage interface
// declares except persistence.
//
// Range scans return a stable snapshot of the matching entries: the iterator
// stays valid and consistent even if the tree is modified while the caller is
// still consuming it. This trades memory for simplicity and matches the
// single-writer usage pattern of the layers built on top.
//
// The engine is the default choice for tests and for applications whose
// durability story lives elsewhere (e.g. state that is rebuilt or restored by
// the host environment).
package memory
