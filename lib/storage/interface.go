package storage

import "fmt"

// --------------------------------------------------------------------------
// Helper Types
// --------------------------------------------------------------------------

type Implementation string

const (
	ImplMemory Implementation = "memory"
	ImplHash   Implementation = "hash"
	ImplPebble Implementation = "pebble"
)

// Feature represents storage engine capabilities as bit flags
type Feature uint64

const (
	FeatureGet     Feature = 1 << iota // Support for Get operations
	FeatureSet                         // Support for Set operations
	FeatureDelete                      // Support for Delete operations
	FeatureScan                        // Support for ordered range scans
	FeaturePersist                     // Data survives Close and reopen
)

func (f Feature) String() string {
	switch f {
	case FeatureGet:
		return "Get"
	case FeatureSet:
		return "Set"
	case FeatureDelete:
		return "Delete"
	case FeatureScan:
		return "Scan"
	case FeaturePersist:
		return "Persist"
	default:
		return "Unknown"
	}
}

// Order specifies the direction of a range scan.
type Order int

const (
	Ascending Order = iota
	Descending
)

type StorageInfo struct {
	SizeBytes         int            `json:"size_bytes"`
	StorageType       Implementation `json:"storage_type"`
	SupportedFeatures []Feature      `json:"supported_features"`
	Metadata          interface{}    `json:"metadata"`
}

// --------------------------------------------------------------------------
// Storage Interface
// --------------------------------------------------------------------------

// IStorage is the generic interface for a flat, byte-keyed storage engine.
// It provides the primitives higher layers are built on: point reads and
// writes plus an ordered range scan over raw byte keys.
// Implementations can vary in their feature support, which can be queried
// with SupportsFeature.
type IStorage interface {

	// --------------------------------------------------------------------------
	// Write Operations
	// --------------------------------------------------------------------------

	// Set inserts or updates the value stored under key.
	// If the key already exists, the old value is overwritten.
	Set(key, value []byte) (err error)

	// Delete removes the entry stored under key.
	// Deleting an absent key is not an error.
	Delete(key []byte) (err error)

	// --------------------------------------------------------------------------
	// Read Operations
	// --------------------------------------------------------------------------

	// Get retrieves the value for an exact key.
	// The boolean return value indicates whether a value for the key was found;
	// an absent key is not an error.
	Get(key []byte) (value []byte, found bool, err error)

	// Scan returns an iterator over the half-open key range [start, end) in
	// the given order. A nil start or end leaves that side unbounded. The
	// returned iterator is positioned on the first matching entry (if any);
	// callers must Close it.
	//
	// Engines that do not keep keys ordered return an error with code
	// RetCUnsupportedOperation (see also FeatureScan).
	Scan(start, end []byte, order Order) (it Iterator, err error)

	// --------------------------------------------------------------------------
	// Feature Support
	// --------------------------------------------------------------------------

	// SupportsFeature checks if the storage implementation supports the specified feature.
	// Multiple features can be checked at once using bitwise OR (|) operator.
	SupportsFeature(feature Feature) (ok bool)

	// GetInfo returns information about the storage engine.
	// It is not guaranteed that all fields are filled in or that the information is up-to-date!
	GetInfo() (info StorageInfo)

	// Close closes the storage engine.
	Close() (err error)
}

// Iterator walks the entries produced by a Scan. Typical usage:
//
//	it, err := s.Scan(start, end, storage.Ascending)
//	if err != nil { ... }
//	defer it.Close()
//	for ; it.Valid(); it.Next() {
//	    ... it.Key(), it.Value() ...
//	}
//	if err := it.Error(); err != nil { ... }
type Iterator interface {
	// Valid reports whether the iterator is positioned on an entry.
	Valid() (ok bool)
	// Next advances the iterator to the next entry in scan order.
	Next()
	// Key returns the key of the current entry. The returned slice is only
	// guaranteed to be valid until the next call to Next or Close.
	Key() (key []byte)
	// Value returns the value of the current entry. The returned slice is
	// only guaranteed to be valid until the next call to Next or Close.
	Value() (value []byte)
	// Error returns any error accumulated while iterating.
	Error() (err error)
	// Close releases the iterator's resources.
	Close() (err error)
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	errorCode := ""
	switch e.Code {
	case RetCInternalError:
		errorCode = "InternalError"
	case RetCUnsupportedOperation:
		errorCode = "UnsupportedOperation"
	default:
		errorCode = "Unknown"
	}

	return fmt.Sprintf("StorageError (code %s): %s", errorCode, e.Msg)
}

// NewError creates a new storage Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess              RetCode = iota // 0: Operation executed successfully.
	RetCInternalError                       // 1: Operation failed due to an internal error.
	RetCUnsupportedOperation                // 2: Operation is not supported by the storage engine.
)
