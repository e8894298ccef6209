package errors

// Code represents an error code
type Code string

// General error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Generation pipeline error codes. These four are the recoverable failure
// modes of a prompt round-trip; the lifecycle controller maps each of them
// to a retryable state rather than letting them propagate.
const (
	CodeEmptyResponse        Code = "EMPTY_RESPONSE"
	CodeMalformedJSON        Code = "MALFORMED_JSON"
	CodeMissingRequiredField Code = "MISSING_REQUIRED_FIELD"
	CodeTransportFailure     Code = "TRANSPORT_FAILURE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Retryable reports whether the code belongs to the recoverable generation
// taxonomy. Anything retryable can be replayed verbatim against the
// generation service without losing accumulated state.
func (c Code) Retryable() bool {
	switch c {
	case CodeEmptyResponse, CodeMalformedJSON, CodeMissingRequiredField, CodeTransportFailure:
		return true
	default:
		return false
	}
}
