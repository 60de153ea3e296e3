// Package keys implements the byte-level key composition scheme shared by
// all typed map layers. It turns (namespace, key) and (namespace, key,
// height) tuples into byte strings whose lexicographic order matches the
// intended logical order, and provides the scan-bound helpers that go with
// them.
//
// Two rules keep the scheme collision-free:
//
//  1. Namespaces are length-prefixed, so regions deterministically derived
//     from one base name ("x", "x__checkpoints", "x__changelog") occupy
//     disjoint byte ranges no matter what keys are stored inside them.
//
//  2. Non-terminal key components (a key that is followed by a height) are
//     length-prefixed as well, so variable-length keys sort by (key, height)
//     instead of by raw concatenation — "ab"+height never interleaves with
//     "a"+suffix entries.
//
// Heights are encoded as fixed-width 8-byte big-endian integers, which makes
// byte order equal numeric order.
package keys
