package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsOutOfRange checks if an error is an out of range error
func IsOutOfRange(err error) bool {
	return GetCode(err) == CodeOutOfRange
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsEmptyResponse checks if an error is an empty response error
func IsEmptyResponse(err error) bool {
	return GetCode(err) == CodeEmptyResponse
}

// IsMalformedJSON checks if an error is a malformed JSON error
func IsMalformedJSON(err error) bool {
	return GetCode(err) == CodeMalformedJSON
}

// IsMissingRequiredField checks if an error is a missing required field error
func IsMissingRequiredField(err error) bool {
	return GetCode(err) == CodeMissingRequiredField
}

// IsTransportFailure checks if an error is a transport failure error
func IsTransportFailure(err error) bool {
	return GetCode(err) == CodeTransportFailure
}

// IsRetryable checks if an error belongs to the recoverable generation taxonomy
func IsRetryable(err error) bool {
	return GetCode(err).Retryable()
}
