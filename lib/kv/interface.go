package kv

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
//
// Only failures originating in this layer are reported as *Error; errors
// produced by the storage backend or by a caller-supplied update closure are
// propagated unchanged so that callers can inspect them directly.
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
	case RetCNotFound:
		errorCode = "NotFound"
	case RetCParseError:
		errorCode = "ParseError"
	case RetCStrategyUnsupported:
		errorCode = "StrategyUnsupported"
	case RetCUnsupportedOperation:
		errorCode = "UnsupportedOperation"
	default:
		errorCode = "Unknown"
	}

	return fmt.Sprintf("KVError (code %s): %s", errorCode, e.Msg)
}

// NewError creates a new kv Error with the given code and message.
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
	RetCNotFound                            // 2: Load of an absent key.
	RetCParseError                          // 3: Stored bytes do not decode to the expected type.
	RetCStrategyUnsupported                 // 4: The configured checkpoint strategy is not implemented.
	RetCUnsupportedOperation                // 5: Operation is not supported by the underlying storage engine.
)

// --------------------------------------------------------------------------
// Error Inspection Helpers
// --------------------------------------------------------------------------

// hasCode reports whether err is (or wraps) a *Error with the given code.
func hasCode(err error, code RetCode) bool {
	var kvErr *Error
	if errors.As(err, &kvErr) {
		return kvErr.Code == code
	}
	return false
}

// IsNotFound reports whether err signals a load of an absent key.
func IsNotFound(err error) bool {
	return hasCode(err, RetCNotFound)
}

// IsParseError reports whether err signals undecodable stored bytes.
func IsParseError(err error) bool {
	return hasCode(err, RetCParseError)
}

// IsStrategyUnsupported reports whether err signals an unimplemented
// checkpoint strategy.
func IsStrategyUnsupported(err error) bool {
	return hasCode(err, RetCStrategyUnsupported)
}

// IsUnsupportedOperation reports whether err signals an operation the
// underlying storage engine cannot perform.
func IsUnsupportedOperation(err error) bool {
	return hasCode(err, RetCUnsupportedOperation)
}
