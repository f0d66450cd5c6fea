// Package errors provides unified error handling for querykit.
// It implements structured error types with machine-readable error codes,
// operation context, and cause chains compatible with the standard library
// errors.Is/As/Unwrap protocol.
package errors
