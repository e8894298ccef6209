package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riftline/encounter-engine/internal/errors"
)

func TestError_Error(t *testing.T) {
	err := errors.New(errors.CodeMalformedJSON, "no JSON body found")
	assert.Equal(t, "MALFORMED_JSON: no JSON body found", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("unexpected end of input"), "parse failed")
	assert.Equal(t, "INTERNAL: parse failed: unexpected end of input", wrapped.Error())
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.MissingRequiredField("combatStats is required")
	outer := errors.Wrap(inner, "action response rejected")

	assert.Equal(t, errors.CodeMissingRequiredField, errors.GetCode(outer))
	assert.True(t, errors.IsMissingRequiredField(outer))
	assert.True(t, errors.IsRetryable(outer))
}

func TestWrapWithCode(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := errors.WrapWithCode(cause, errors.CodeTransportFailure, "generation call failed")

	assert.Equal(t, errors.CodeTransportFailure, errors.GetCode(err))
	assert.ErrorIs(t, err, cause)
}

func TestGetCode_PlainError(t *testing.T) {
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("boom")))
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
}

func TestCode_Retryable(t *testing.T) {
	retryable := []errors.Code{
		errors.CodeEmptyResponse,
		errors.CodeMalformedJSON,
		errors.CodeMissingRequiredField,
		errors.CodeTransportFailure,
	}
	for _, c := range retryable {
		assert.True(t, c.Retryable(), c.String())
	}
	assert.False(t, errors.CodeInvalidArgument.Retryable())
	assert.False(t, errors.CodeInternal.Retryable())
}

func TestValidationBuilder(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("Repo").
		InvalidField("Index", "negative").
		Build()

	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Repo")

	assert.NoError(t, errors.NewValidationBuilder().Build())
}

func TestWithMeta(t *testing.T) {
	err := errors.NotFound("no snapshot").WithMeta("session_key", "chat_42")
	assert.Equal(t, "chat_42", err.Meta["session_key"])
	assert.True(t, errors.IsNotFound(err))
}
