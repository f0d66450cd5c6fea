package errors

import (
	stderrors "errors"
	"fmt"
)

// QueryError is the unified error type for query evaluation failures.
type QueryError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Op is the terminal or operator that produced the error, e.g. "query.Single".
	Op string `json:"op"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *QueryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s (cause: %v)", e.Op, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *QueryError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *QueryError) WithCause(cause error) *QueryError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *QueryError) WithDetails(details map[string]any) *QueryError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *QueryError) WithDetail(key string, value any) *QueryError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new QueryError.
func New(code ErrorCode, op, message string) *QueryError {
	return &QueryError{Code: code, Op: op, Message: message}
}

// --- Common Error Constructors ---

// EmptySequence creates a QueryError for a fold over zero elements.
func EmptySequence(op string) *QueryError {
	return &QueryError{
		Code: ErrCodeEmptySequence, Op: op,
		Message: "sequence contains no elements",
	}
}

// EmptyResult creates a QueryError for a search that matched zero elements.
func EmptyResult(op string) *QueryError {
	return &QueryError{
		Code: ErrCodeEmptyResult, Op: op,
		Message: "no element satisfies the condition",
	}
}

// AmbiguousResult creates a QueryError for a search that matched more than one element.
func AmbiguousResult(op string) *QueryError {
	return &QueryError{
		Code: ErrCodeAmbiguousResult, Op: op,
		Message: "more than one element satisfies the condition",
	}
}

// DuplicateKey creates a QueryError for map materialization over a repeated key.
func DuplicateKey(op string, key any) *QueryError {
	return &QueryError{
		Code: ErrCodeDuplicateKey, Op: op,
		Message: fmt.Sprintf("key %v produced by more than one element", key),
		Details: map[string]any{"key": fmt.Sprint(key)},
	}
}

// CallerFunction creates a QueryError wrapping a failure returned by a
// caller-supplied function. The original error remains reachable through
// errors.Is/As via the cause chain.
func CallerFunction(op string, cause error) *QueryError {
	return &QueryError{
		Code: ErrCodeCallerFunction, Op: op,
		Message: "caller-supplied function failed",
		Cause:   cause,
	}
}

// InvalidInput creates a QueryError for an invalid operator argument.
func InvalidInput(op, reason string) *QueryError {
	return &QueryError{
		Code: ErrCodeInvalidInput, Op: op,
		Message: reason,
	}
}

// Internal creates a QueryError for an unexpected engine failure.
func Internal(op string, cause error) *QueryError {
	return &QueryError{
		Code: ErrCodeInternal, Op: op,
		Message: "internal error",
		Cause:   cause,
	}
}

// --- Inspection helpers ---

// From extracts a *QueryError from err's chain. Returns nil if none exists.
func From(err error) *QueryError {
	var qe *QueryError
	if stderrors.As(err, &qe) {
		return qe
	}
	return nil
}

// CodeOf returns the error code of err, or "" if err carries no QueryError.
func CodeOf(err error) ErrorCode {
	if qe := From(err); qe != nil {
		return qe.Code
	}
	return ""
}

// IsCode reports whether err carries a QueryError with the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
