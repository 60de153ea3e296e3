// Package hash implements an unordered in-memory storage engine on top of a
// sharded concurrent map (github.com/puzpuzpuz/xsync). It supports only point
// operations: Get, Set and Delete.
//
// Because the map does not keep keys ordered, Scan returns an
// UnsupportedOperation error and the engine does not advertise FeatureScan.
// Layers that need ordered iteration (most notably historical reads in
// lib/kv/snapshot) either degrade gracefully or surface the same error; maps
// operated with the Never checkpoint strategy work unrestricted on this
// engine since they never scan.
package hash
