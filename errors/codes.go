package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Evaluation errors: a terminal operator could not produce a result from the
// sequence it was given.
const (
	// ErrCodeEmptySequence indicates a fold over zero elements that has no
	// identity value (Average, Min, Max, seedless Aggregate).
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"
	// ErrCodeEmptyResult indicates a search terminal matched zero elements.
	ErrCodeEmptyResult ErrorCode = "EMPTY_RESULT"
	// ErrCodeAmbiguousResult indicates Single matched more than one qualifying element.
	ErrCodeAmbiguousResult ErrorCode = "AMBIGUOUS_RESULT"
	// ErrCodeDuplicateKey indicates map materialization saw a repeated key.
	ErrCodeDuplicateKey ErrorCode = "DUPLICATE_KEY"
)

// Caller errors
const (
	// ErrCodeCallerFunction indicates a caller-supplied function returned an
	// error during evaluation. The original error is the cause.
	ErrCodeCallerFunction ErrorCode = "CALLER_FUNCTION"
	// ErrCodeInvalidInput indicates an operator was given an invalid argument.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected engine failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
