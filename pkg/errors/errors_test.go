package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := New(CodeValidationFailed, "recipe", "cuisine is required", nil)
	assert.Equal(t, "[recipe:VALIDATION_FAILED] cuisine is required", err.Error())

	wrapped := New(CodeNetworkError, "ai", "chat completion failed", fmt.Errorf("dial tcp: refused"))
	assert.Contains(t, wrapped.Error(), "NETWORK_ERROR")
	assert.Contains(t, wrapped.Error(), "dial tcp: refused")
}

func TestErrorIsMatchesOnCode(t *testing.T) {
	a := New(CodeNotFound, "history", "generation abc not found", nil)
	b := New(CodeNotFound, "other", "different message", nil)

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, New(CodeIoError, "history", "x", nil)))
}

func TestUnwrapReachesCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := New(CodeInternalError, "server", "handler failed", cause)

	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestCodeOf(t *testing.T) {
	inner := New(CodeEmptyCompletion, "ai", "no completion received", nil)
	outer := fmt.Errorf("generating recipes: %w", inner)

	assert.Equal(t, CodeEmptyCompletion, CodeOf(outer))
	assert.Equal(t, CodeUnknown, CodeOf(fmt.Errorf("plain")))
	assert.Equal(t, CodeUnknown, CodeOf(nil))
}
